package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// competitionsCmd represents the competitions command
var competitionsCmd = &cobra.Command{
	Use:   "competitions",
	Short: "List active competitions",
	RunE:  runCompetitions,
}

func init() {
	rootCmd.AddCommand(competitionsCmd)
}

func runCompetitions(cmd *cobra.Command, args []string) error {
	table, err := client.Competitions(context.Background())
	if err != nil {
		return err
	}
	return printTable(table)
}
