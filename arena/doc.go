// Package arena provides a client for the ML Arena SDK API.
//
// ML Arena is a competition platform for machine-learning agents. This
// package covers the four SDK operations: submitting an agent, polling its
// status, and fetching leaderboard and competition listings.
//
// # Usage
//
// Create a client with your API key ("key_id:key_pass", from your Profile
// page):
//
//	logger := zerolog.New(os.Stderr)
//	client, err := arena.Connect("id:pass", arena.DefaultBaseURL, logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := client.Submit(ctx, "kuhn-poker", arena.Submission{
//		Files:     []string{"agent.py", "model.bin"},
//		AgentName: "my-agent",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// The submitted agent id becomes the default for Status.
//	status, err := client.Status(ctx, "")
//
// A successful submission records its agent id and competition on the
// client; Status and Leaderboard fall back to them when called without an
// argument. Nothing persists across processes.
//
// # Error Handling
//
// Failures map to a small taxonomy:
//
//   - AuthenticationError: malformed API key, HTTP 401/403
//   - CompetitionNotFoundError: HTTP 404
//   - SubmissionError: invalid submit arguments, missing local files,
//     rejected submissions, missing session defaults
//   - APIError: any other non-success status
//
// Transport failures (timeouts, connection errors) are wrapped with
// context but never converted into the taxonomy. Use errors.As or the
// Is* helpers to classify:
//
//	if arena.IsCompetitionNotFound(err) {
//		// unknown competition
//	}
//
// # Tabular Responses
//
// Leaderboard and Competitions return a Table: ordered records with the
// server's column order preserved, whether the reply was column-oriented
// or a plain array of objects.
package arena
