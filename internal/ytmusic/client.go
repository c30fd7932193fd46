package ytmusic

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Client talks to a ytmusicapi-compatible search endpoint, typically a
// local proxy in front of YouTube Music. Responses are the proxy's raw
// search rows.
type Client struct {
	BaseURL string

	http   *http.Client
	logger *log.Logger
}

func NewClient(baseURL string, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.Default()
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 20 * time.Second,
		},
		logger: logger,
	}
}

// Search runs one catalog query and returns the candidates in the
// catalog's own ranking order.
func (c *Client) Search(ctx context.Context, query string) ([]Candidate, error) {
	endpoint := c.BaseURL + "/search?q=" + url.QueryEscape(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("searching catalog", "query", query)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("ytmusic api error: %d", resp.StatusCode)
	}

	var candidates []Candidate
	if err := json.NewDecoder(resp.Body).Decode(&candidates); err != nil {
		return nil, err
	}
	return candidates, nil
}
