package arena

// Result is a decoded JSON object returned by the submit and status
// endpoints. The client does not validate its shape beyond extracting the
// agent identifier.
type Result map[string]any

// AgentID returns the agent identifier carried by the result, or "" when
// absent or not a string.
func (r Result) AgentID() string {
	id, _ := r["agent_id"].(string)
	return id
}

// Status returns the status string carried by the result, or "" when
// absent or not a string.
func (r Result) Status() string {
	s, _ := r["status"].(string)
	return s
}

// Message returns the human-readable message carried by the result, if any.
func (r Result) Message() string {
	m, _ := r["message"].(string)
	return m
}
