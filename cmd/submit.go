package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ml-arena/mlarena-go/arena"
)

var (
	agentName    string
	sourcePath   string
	waitStatus   bool
	pollInterval time.Duration
	waitTimeout  time.Duration
)

// submitCmd represents the submit command
var submitCmd = &cobra.Command{
	Use:   "submit <competition> [files...]",
	Short: "Submit an agent to a competition",
	Long: `Submit an agent to a competition, either as a set of files (the set
must include agent.py) or as a single source file uploaded as agent.py
via --source.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSubmit,
}

func init() {
	rootCmd.AddCommand(submitCmd)

	submitCmd.Flags().StringVarP(&agentName, "name", "n", "", "display name for the agent")
	submitCmd.Flags().StringVar(&sourcePath, "source", "", "submit this file's contents as agent.py")
	submitCmd.Flags().BoolVarP(&waitStatus, "wait", "w", false, "poll status until the agent leaves the queue")
	submitCmd.Flags().DurationVar(&pollInterval, "poll-interval", 5*time.Second, "interval between status polls with --wait")
	submitCmd.Flags().DurationVar(&waitTimeout, "wait-timeout", 10*time.Minute, "give up polling after this long")
}

func runSubmit(cmd *cobra.Command, args []string) error {
	competition := args[0]
	files := args[1:]

	sub := arena.Submission{
		Files:     files,
		AgentName: agentName,
	}
	if sourcePath != "" {
		if len(files) > 0 {
			return fmt.Errorf("provide either --source or file arguments, not both")
		}
		source, err := os.ReadFile(sourcePath)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", sourcePath, err)
		}
		sub.Source = string(source)
		sub.Files = nil
	}

	ctx := context.Background()
	result, err := client.Submit(ctx, competition, sub)
	if err != nil {
		return err
	}

	if cfg.Output.Format == "json" && !waitStatus {
		return printJSON(result)
	}

	fmt.Printf("✓ Submitted to %s\n", competition)
	fmt.Printf("  Agent ID: %s\n", result.AgentID())
	if result.Status() != "" {
		fmt.Printf("  Status:   %s\n", result.Status())
	}
	if result.Message() != "" {
		fmt.Printf("  Message:  %s\n", result.Message())
	}

	if !waitStatus {
		return nil
	}

	return waitForAgent(ctx, result.AgentID())
}

// waitForAgent polls the status endpoint until the agent leaves the
// queued/running states or the timeout elapses.
func waitForAgent(ctx context.Context, agentID string) error {
	deadline := time.Now().Add(waitTimeout)

	for {
		if time.Now().After(deadline) {
			return fmt.Errorf("timed out after %s waiting for agent %s", waitTimeout, agentID)
		}
		time.Sleep(pollInterval)

		result, err := client.Status(ctx, agentID)
		if err != nil {
			return err
		}

		status := result.Status()
		logger.Debug().Str("agent_id", agentID).Str("status", status).Msg("Polled agent status")

		switch status {
		case "queued", "pending", "running":
			fmt.Printf("  Status:   %s\n", status)
		default:
			fmt.Printf("  Status:   %s\n", status)
			if cfg.Output.Format == "json" {
				return printJSON(result)
			}
			return nil
		}
	}
}
