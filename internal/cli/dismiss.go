package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/deskflow/internal/ports/primary"
	"github.com/example/deskflow/internal/wire"
)

var dismissCmd = &cobra.Command{
	Use:   "dismiss [item-type]",
	Short: "Suppress an attention item type for a while",
	Long: `Suppress items of the given type for this analyst and portfolio.
Red items are never dismissible.

Item types: proposal_stalled, idea_not_simulated, execution_not_confirmed,
opportunity_no_idea, thesis_stale, rating_no_followup

Examples:
  deskflow dismiss idea_not_simulated
  deskflow dismiss thesis_stale --days 14`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := resolveContext(cmd)
		if err != nil {
			return err
		}
		days, _ := cmd.Flags().GetInt("days")
		now := time.Now()

		dismissal, err := wire.DismissalService().Dismiss(actorContext(cmd, ctx), primary.DismissRequest{
			AnalystID:   ctx.AnalystID,
			PortfolioID: ctx.PortfolioID,
			ItemType:    args[0],
			Until:       now.AddDate(0, 0, days),
			Now:         now,
		})
		if err != nil {
			return fmt.Errorf("failed to dismiss: %w", err)
		}

		fmt.Printf("✓ Suppressed %s until %s\n", dismissal.ItemType, dismissal.SuppressedUntil.Format("2006-01-02"))
		return nil
	},
}

var dismissListCmd = &cobra.Command{
	Use:   "list",
	Short: "List active suppressions",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := resolveContext(cmd)
		if err != nil {
			return err
		}

		dismissals, err := wire.DismissalService().ListActive(cmd.Context(), ctx.AnalystID, ctx.PortfolioID, time.Now())
		if err != nil {
			return fmt.Errorf("failed to list dismissals: %w", err)
		}
		if len(dismissals) == 0 {
			fmt.Println("No active suppressions")
			return nil
		}

		for _, d := range dismissals {
			fmt.Printf("  %s until %s\n", d.ItemType, d.SuppressedUntil.Format("2006-01-02"))
		}
		return nil
	},
}

var dismissPurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Remove expired suppressions",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := wire.DismissalService().Purge(cmd.Context(), time.Now())
		if err != nil {
			return fmt.Errorf("failed to purge dismissals: %w", err)
		}
		fmt.Printf("✓ Removed %d expired suppressions\n", n)
		return nil
	},
}

// DismissCmd returns the dismiss command
func DismissCmd() *cobra.Command {
	dismissCmd.Flags().Int("days", 7, "Suppression window in days")
	addContextFlags(dismissCmd)
	addContextFlags(dismissListCmd)

	dismissCmd.AddCommand(dismissListCmd)
	dismissCmd.AddCommand(dismissPurgeCmd)
	return dismissCmd
}
