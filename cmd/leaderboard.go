package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ml-arena/mlarena-go/arena"
	"github.com/ml-arena/mlarena-go/filter"
)

var (
	filterExpr string
	limit      int
)

// leaderboardCmd represents the leaderboard command
var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard <competition> [competition...]",
	Short: "Show competition leaderboards",
	Long: `Show the leaderboard for one or more competitions. Rows can be
narrowed with an expr filter over the leaderboard columns, e.g.

  mlarena leaderboard kuhn-poker --filter 'score > 1200'
  mlarena leaderboard chess --filter 'contains(name, "bot")'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLeaderboard,
}

func init() {
	rootCmd.AddCommand(leaderboardCmd)

	leaderboardCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression over leaderboard columns")
	leaderboardCmd.Flags().IntVarP(&limit, "limit", "l", 0, "show at most N rows per competition (0 = all)")
}

func runLeaderboard(cmd *cobra.Command, args []string) error {
	var rowFilter *filter.RowFilter
	if filterExpr != "" {
		var err error
		rowFilter, err = filter.Compile(filterExpr)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
	}

	// Read-only calls with explicit competition names; the client's
	// submission defaults are never touched here.
	tables := make([]*arena.Table, len(args))
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(4)
	for i, competition := range args {
		g.Go(func() error {
			table, err := client.Leaderboard(ctx, competition)
			if err != nil {
				return fmt.Errorf("%s: %w", competition, err)
			}
			tables[i] = table
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, table := range tables {
		if rowFilter != nil {
			table = table.Filter(rowFilter.Evaluate)
		}
		if limit > 0 {
			table = table.Head(limit)
		}

		if len(args) > 1 && cfg.Output.Format != "json" {
			fmt.Printf("\n%s\n", args[i])
		}
		if err := printTable(table); err != nil {
			return err
		}
	}

	return nil
}
