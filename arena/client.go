package arena

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the public ML Arena instance.
const DefaultBaseURL = "https://ml-arena.com"

// Client talks to the ML Arena SDK API. It remembers the agent id and
// competition of the most recent successful submission and uses them as
// defaults for Status and Leaderboard. A Client must not be shared across
// goroutines.
type Client struct {
	baseURL      string
	keyID        string
	keyPass      string
	userAgent    string
	httpClient   *http.Client
	uploadClient *http.Client
	logger       zerolog.Logger

	lastAgentID     string
	lastCompetition string
}

// Connect validates the API key and returns a configured client.
//
// apiKey must be formatted as "key_id:key_pass" (from the Profile page on
// ML Arena). baseURL defaults to DefaultBaseURL when empty.
func Connect(apiKey, baseURL string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	keyID, keyPass, ok := strings.Cut(apiKey, ":")
	if !ok {
		return nil, &AuthenticationError{
			Message: "invalid api key format, expected 'key_id:key_pass' (get your keys from your Profile page on ML Arena)",
		}
	}
	if keyID == "" || keyPass == "" {
		return nil, &AuthenticationError{Message: "both key_id and key_pass must be non-empty"}
	}

	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimRight(strings.ToLower(strings.TrimSpace(baseURL)), "/")

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	client := &Client{
		baseURL:      baseURL,
		keyID:        keyID,
		keyPass:      keyPass,
		userAgent:    options.userAgent,
		httpClient:   &http.Client{Timeout: options.timeout},
		uploadClient: &http.Client{Timeout: options.submitTimeout},
		logger:       logger,
	}
	if options.httpClient != nil {
		client.httpClient = options.httpClient
		client.uploadClient = options.httpClient
	}

	return client, nil
}

// BaseURL returns the normalized server URL the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// LastAgentID returns the agent id recorded by the most recent successful
// submission, or "" when none exists.
func (c *Client) LastAgentID() string {
	return c.lastAgentID
}

// LastCompetition returns the competition recorded by the most recent
// successful submission, or "" when none exists.
func (c *Client) LastCompetition() string {
	return c.lastCompetition
}

func (c *Client) url(path string) string {
	return fmt.Sprintf("%s/api/sdk%s", c.baseURL, path)
}

func (c *Client) authorization() string {
	return fmt.Sprintf("Bearer %s:%s", c.keyID, c.keyPass)
}

// doGet performs a GET request and returns the status code and body.
// Transport failures propagate wrapped, never mapped into the API error
// taxonomy.
func (c *Client) doGet(ctx context.Context, path string, authenticated bool) (int, []byte, error) {
	url := c.url(path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if authenticated {
		req.Header.Set("Authorization", c.authorization())
	}

	c.logger.Debug().Str("method", http.MethodGet).Str("url", url).Msg("ML Arena API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return resp.StatusCode, body, nil
}

// mapStatus translates authentication and not-found statuses into typed
// errors. Other statuses are left to the caller.
func mapStatus(statusCode int, body []byte) error {
	switch statusCode {
	case http.StatusUnauthorized:
		return &AuthenticationError{Message: "invalid API credentials, check your key_id and key_pass"}
	case http.StatusForbidden:
		return &AuthenticationError{Message: errorField(body, "access denied")}
	case http.StatusNotFound:
		return &CompetitionNotFoundError{Message: errorField(body, "not found")}
	}
	return nil
}

// errorField extracts the "error" field of a JSON error body, falling back
// to the raw body and then to fallback.
func errorField(body []byte, fallback string) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	if msg := strings.TrimSpace(string(body)); msg != "" {
		return msg
	}
	return fallback
}

// Status fetches the status of a submitted agent. agentID defaults to the
// last successfully submitted agent when empty.
func (c *Client) Status(ctx context.Context, agentID string) (Result, error) {
	if agentID == "" {
		agentID = c.lastAgentID
	}
	if agentID == "" {
		return nil, &SubmissionError{Message: "no agent_id provided and no previous submission found"}
	}

	statusCode, body, err := c.doGet(ctx, "/status/"+agentID, true)
	if err != nil {
		return nil, err
	}
	if err := mapStatus(statusCode, body); err != nil {
		return nil, err
	}
	if statusCode < 200 || statusCode >= 300 {
		return nil, &APIError{StatusCode: statusCode, Body: string(body)}
	}

	var result Result
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse status response: %w", err)
	}
	return result, nil
}

// Leaderboard fetches the leaderboard of a competition as an ordered table.
// competition defaults to the last submitted competition when empty. The
// call is unauthenticated.
func (c *Client) Leaderboard(ctx context.Context, competition string) (*Table, error) {
	if competition == "" {
		competition = c.lastCompetition
	}
	if competition == "" {
		return nil, &SubmissionError{Message: "no competition specified and no previous submission found"}
	}

	statusCode, body, err := c.doGet(ctx, "/leaderboard/"+competition, false)
	if err != nil {
		return nil, err
	}
	if err := mapStatus(statusCode, body); err != nil {
		return nil, err
	}
	if statusCode < 200 || statusCode >= 300 {
		return nil, &APIError{StatusCode: statusCode, Body: string(body)}
	}

	table, err := DecodeTable(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse leaderboard response: %w", err)
	}
	return table, nil
}

// Competitions lists active competitions as an ordered table. The call is
// unauthenticated.
func (c *Client) Competitions(ctx context.Context) (*Table, error) {
	statusCode, body, err := c.doGet(ctx, "/competitions", false)
	if err != nil {
		return nil, err
	}
	if statusCode < 200 || statusCode >= 300 {
		return nil, &APIError{StatusCode: statusCode, Body: string(body)}
	}

	table, err := DecodeTable(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse competitions response: %w", err)
	}
	return table, nil
}
