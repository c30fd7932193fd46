package session

import "strings"

// History is the rolling lesson memory for one session: an append-only
// ordered list read at the start of a run and appended to after a
// successful generation. It is not safe for concurrent runs; callers
// must not interleave two runs against the same history.
type History struct {
	lessons []string
}

func NewHistory(lessons ...string) *History {
	return &History{lessons: append([]string(nil), lessons...)}
}

func (h *History) Append(lesson string) {
	h.lessons = append(h.lessons, lesson)
}

func (h *History) Len() int {
	if h == nil {
		return 0
	}
	return len(h.lessons)
}

// Lessons returns a copy in append order.
func (h *History) Lessons() []string {
	if h == nil {
		return nil
	}
	return append([]string(nil), h.lessons...)
}

// Render formats the history as the bulleted block embedded in the
// generation prompt. An empty history renders as "".
func (h *History) Render() string {
	if h == nil || len(h.lessons) == 0 {
		return ""
	}
	lines := make([]string, 0, len(h.lessons))
	for _, lesson := range h.lessons {
		lines = append(lines, "- "+lesson)
	}
	return strings.Join(lines, "\n")
}
