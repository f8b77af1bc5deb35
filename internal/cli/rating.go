package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/example/deskflow/internal/ports/primary"
	"github.com/example/deskflow/internal/wire"
)

var ratingCmd = &cobra.Command{
	Use:   "rating",
	Short: "Record and list rating changes",
}

var ratingRecordCmd = &cobra.Command{
	Use:   "record [ticker] [old-rating] [new-rating]",
	Short: "Record a rating change on a covered ticker",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := resolveContext(cmd)
		if err != nil {
			return err
		}

		change, err := wire.RatingService().RecordChange(actorContext(cmd, ctx), primary.RecordRatingRequest{
			PortfolioID: ctx.PortfolioID,
			Ticker:      args[0],
			OldRating:   args[1],
			NewRating:   args[2],
			ChangedAt:   time.Now(),
		})
		if err != nil {
			return fmt.Errorf("failed to record rating change: %w", err)
		}

		fmt.Printf("✓ Recorded %s: %s → %s\n", change.Ticker, change.OldRating, change.NewRating)
		return nil
	},
}

var ratingListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent rating changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := resolveContext(cmd)
		if err != nil {
			return err
		}
		days, _ := cmd.Flags().GetInt("days")

		changes, err := wire.RatingService().ListRecent(cmd.Context(), ctx.PortfolioID, time.Now().AddDate(0, 0, -days))
		if err != nil {
			return fmt.Errorf("failed to list rating changes: %w", err)
		}
		if len(changes) == 0 {
			fmt.Println("No recent rating changes")
			return nil
		}

		tw := table.NewWriter()
		tw.SetOutputMirror(os.Stdout)
		tw.AppendHeader(table.Row{"Ticker", "Old", "New", "Changed"})
		for _, c := range changes {
			tw.AppendRow(table.Row{c.Ticker, c.OldRating, c.NewRating, c.ChangedAt.Format("2006-01-02")})
		}
		tw.Render()
		return nil
	},
}

// RatingCmd returns the rating command
func RatingCmd() *cobra.Command {
	addContextFlags(ratingRecordCmd)
	ratingListCmd.Flags().Int("days", 14, "Lookback window in days")
	addContextFlags(ratingListCmd)

	ratingCmd.AddCommand(ratingRecordCmd)
	ratingCmd.AddCommand(ratingListCmd)
	return ratingCmd
}
