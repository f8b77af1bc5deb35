package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/deskflow/internal/wire"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the five-stage workflow summary",
	Long: `Show where the portfolio sits in the research → idea → proposal →
decision → execution pipeline. Each stage reads done, pending, blocked,
or none.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := resolveContext(cmd)
		if err != nil {
			return err
		}

		s, err := wire.SummaryService().Compute(cmd.Context(), ctx.PortfolioID, time.Now())
		if err != nil {
			return fmt.Errorf("failed to compute summary: %w", err)
		}

		fmt.Printf("\nPortfolio %s\n", ctx.PortfolioID)
		fmt.Printf("  research:  %s\n", stageString(s.Research))
		fmt.Printf("  idea:      %s\n", stageString(s.Idea))
		fmt.Printf("  proposal:  %s\n", stageString(s.Proposal))
		fmt.Printf("  decision:  %s\n", stageString(s.Decision))
		fmt.Printf("  execution: %s\n", stageString(s.Execution))
		fmt.Println()
		return nil
	},
}

// SummaryCmd returns the summary command
func SummaryCmd() *cobra.Command {
	addContextFlags(summaryCmd)
	return summaryCmd
}
