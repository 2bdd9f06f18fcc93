package arena

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
)

// AgentFileName is the filename inline source is staged under. Servers
// expect every submission to contain it.
const AgentFileName = "agent.py"

// Submission describes one agent upload. Exactly one of Source and Files
// must be set.
type Submission struct {
	// Source is inline agent code, uploaded as a single file named
	// agent.py. The caller supplies the text explicitly; there is no
	// runtime source capture.
	Source string

	// Files is an ordered list of paths to upload. Base filenames are
	// preserved and the set must include agent.py for the server to
	// accept it.
	Files []string

	// AgentName is an optional display name for the agent.
	AgentName string
}

// Submit uploads an agent to a competition and returns the decoded server
// response. On success the returned agent id and the competition name are
// recorded as defaults for Status and Leaderboard.
func (c *Client) Submit(ctx context.Context, competition string, sub Submission) (Result, error) {
	if sub.Source == "" && len(sub.Files) == 0 {
		return nil, &SubmissionError{Message: "provide either Source (agent code) or Files (list of paths)"}
	}
	if sub.Source != "" && len(sub.Files) > 0 {
		return nil, &SubmissionError{Message: "provide either Source or Files, not both"}
	}

	files := sub.Files
	if sub.Source != "" {
		tmpDir, err := os.MkdirTemp("", "mlarena-agent-")
		if err != nil {
			return nil, fmt.Errorf("failed to create staging directory: %w", err)
		}
		defer os.RemoveAll(tmpDir)

		path := filepath.Join(tmpDir, AgentFileName)
		if err := os.WriteFile(path, []byte(sub.Source), 0o644); err != nil {
			return nil, fmt.Errorf("failed to stage agent source: %w", err)
		}
		files = []string{path}
	}

	body, contentType, err := buildMultipartBody(files, sub.AgentName)
	if err != nil {
		return nil, err
	}

	url := c.url("/submit/" + competition)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", c.authorization())
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug().
		Str("competition", competition).
		Int("files", len(files)).
		Msg("Submitting agent")

	resp, err := c.uploadClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if err := mapStatus(resp.StatusCode, respBody); err != nil {
		return nil, err
	}
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
	default:
		return nil, &SubmissionError{Message: errorField(respBody, resp.Status)}
	}

	var result Result
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to parse submit response: %w", err)
	}

	c.lastAgentID = result.AgentID()
	c.lastCompetition = competition

	c.logger.Info().
		Str("competition", competition).
		Str("agent_id", c.lastAgentID).
		Str("status", result.Status()).
		Msg("Agent submitted")

	return result, nil
}

// buildMultipartBody stages the given paths into an in-memory multipart
// form under the "files" field. Every opened handle is closed before
// returning, on success and on error alike.
func buildMultipartBody(paths []string, agentName string) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for _, path := range paths {
		if err := appendFormFile(writer, path); err != nil {
			return nil, "", err
		}
	}

	if agentName != "" {
		if err := writer.WriteField("agent_name", agentName); err != nil {
			return nil, "", fmt.Errorf("failed to write agent_name field: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize upload body: %w", err)
	}

	return body, writer.FormDataContentType(), nil
}

func appendFormFile(writer *multipart.Writer, path string) error {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return &SubmissionError{Message: fmt.Sprintf("file not found: %s", path)}
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	part, err := writer.CreateFormFile("files", filepath.Base(path))
	if err != nil {
		return fmt.Errorf("failed to create form file for %s: %w", path, err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	return nil
}
