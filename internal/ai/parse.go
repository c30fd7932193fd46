package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseMixPlan decodes a mix plan from model output. Models occasionally
// wrap the JSON object in prose even when asked not to, so a failed
// direct decode falls back to the outermost brace-delimited substring.
// Only total unparseability is an error; missing fields keep their zero
// values.
func ParseMixPlan(text string) (MixPlan, error) {
	if plan, ok := parsePlanJSON(text); ok {
		return plan, nil
	}
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		if plan, ok := parsePlanJSON(text[start : end+1]); ok {
			return plan, nil
		}
	}
	return MixPlan{}, fmt.Errorf("failed to parse mix plan from ai response")
}

func parsePlanJSON(raw string) (MixPlan, bool) {
	var plan MixPlan
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		return MixPlan{}, false
	}
	return plan, true
}
