package cli

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/example/deskflow/internal/wire"
)

var portfolioCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Manage portfolios (coverage areas)",
	Long:  "Create, list, and manage portfolios in the deskflow ledger",
}

var portfolioCreateCmd = &cobra.Command{
	Use:   "create [id] [name]",
	Short: "Create a new portfolio",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		analystID, _ := cmd.Flags().GetString("analyst")
		if analystID == "" {
			ctx, err := resolveContextAnalystOnly(cmd)
			if err != nil {
				return err
			}
			analystID = ctx.AnalystID
		}

		portfolio, err := wire.PortfolioService().CreatePortfolio(cmd.Context(), args[0], args[1], analystID)
		if err != nil {
			return fmt.Errorf("failed to create portfolio: %w", err)
		}

		fmt.Printf("✓ Created portfolio %s: %s\n", portfolio.ID, portfolio.Name)
		return nil
	},
}

var portfolioListCmd = &cobra.Command{
	Use:   "list",
	Short: "List portfolios under coverage",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := resolveContextAnalystOnly(cmd)
		if err != nil {
			return err
		}

		portfolios, err := wire.PortfolioService().ListPortfolios(cmd.Context(), ctx.AnalystID)
		if err != nil {
			return fmt.Errorf("failed to list portfolios: %w", err)
		}
		if len(portfolios) == 0 {
			fmt.Println("No portfolios found")
			return nil
		}

		tw := table.NewWriter()
		tw.SetOutputMirror(os.Stdout)
		tw.AppendHeader(table.Row{"ID", "Name", "Thesis Reviewed", "Expected Return"})
		for _, p := range portfolios {
			thesis := "-"
			if p.ThesisUpdatedAt.Valid {
				thesis = p.ThesisUpdatedAt.Time.Format("2006-01-02")
			}
			ev := "-"
			if p.ExpectedReturn.Valid {
				ev = fmt.Sprintf("%+.2f%%", p.ExpectedReturn.Float64*100)
			}
			tw.AppendRow(table.Row{p.ID, p.Name, thesis, ev})
		}
		tw.Render()
		return nil
	},
}

var portfolioReviewThesisCmd = &cobra.Command{
	Use:   "review-thesis [portfolio-id]",
	Short: "Record a thesis review (resets staleness)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := wire.PortfolioService().ReviewThesis(cmd.Context(), args[0], time.Now()); err != nil {
			return fmt.Errorf("failed to record thesis review: %w", err)
		}
		fmt.Printf("✓ Thesis review recorded for %s\n", args[0])
		return nil
	},
}

var portfolioSetEVCmd = &cobra.Command{
	Use:   "set-ev [portfolio-id] [expected-return]",
	Short: "Set the expected-value signal (e.g. 0.22 for +22%)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ev, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid expected return %q: %w", args[1], err)
		}
		if err := wire.PortfolioService().SetExpectedReturn(cmd.Context(), args[0], ev); err != nil {
			return fmt.Errorf("failed to set expected return: %w", err)
		}
		fmt.Printf("✓ Expected return for %s set to %+.2f%%\n", args[0], ev*100)
		return nil
	},
}

// resolveContextAnalystOnly resolves the analyst without requiring a
// portfolio selection.
func resolveContextAnalystOnly(cmd *cobra.Command) (cliContext, error) {
	ctx, err := resolveContext(cmd)
	if err == nil || ctx.AnalystID != "" {
		return ctx, nil
	}
	return ctx, err
}

// PortfolioCmd returns the portfolio command
func PortfolioCmd() *cobra.Command {
	portfolioCreateCmd.Flags().String("analyst", "", "Analyst ID (overrides config)")
	portfolioListCmd.Flags().String("analyst", "", "Analyst ID (overrides config)")

	portfolioCmd.AddCommand(portfolioCreateCmd)
	portfolioCmd.AddCommand(portfolioListCmd)
	portfolioCmd.AddCommand(portfolioReviewThesisCmd)
	portfolioCmd.AddCommand(portfolioSetEVCmd)
	return portfolioCmd
}
