package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status <agent-id>",
	Short: "Show the status of a submitted agent",
	Long: `Show the status of a submitted agent. The agent id is printed by
the submit command; submission defaults do not survive across
processes, so it must be passed explicitly here.`,
	Args: cobra.ExactArgs(1),
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	result, err := client.Status(context.Background(), args[0])
	if err != nil {
		return err
	}

	if cfg.Output.Format == "json" {
		return printJSON(result)
	}

	fmt.Printf("Agent %s\n", args[0])
	if result.Status() != "" {
		fmt.Printf("  Status:  %s\n", result.Status())
	}
	if result.Message() != "" {
		fmt.Printf("  Message: %s\n", result.Message())
	}
	for key, value := range result {
		switch key {
		case "agent_id", "status", "message":
			continue
		}
		fmt.Printf("  %s: %v\n", key, value)
	}

	return nil
}
