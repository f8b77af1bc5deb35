package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/example/deskflow/internal/core/triage"
	"github.com/example/deskflow/internal/ports/primary"
	"github.com/example/deskflow/internal/wire"
)

var triageCmd = &cobra.Command{
	Use:   "triage",
	Short: "Show ranked attention items for a portfolio",
	Long: `Evaluate the portfolio's workflow state and list what needs
attention, most urgent first. Items an analyst has dismissed stay hidden
until their suppression window passes.

Examples:
  deskflow triage
  deskflow triage --portfolio PF-001
  deskflow triage --all          # include suppressed items`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := resolveContext(cmd)
		if err != nil {
			return err
		}
		includeSuppressed, _ := cmd.Flags().GetBool("all")

		items, err := wire.TriageService().Evaluate(cmd.Context(), primary.TriageRequest{
			AnalystID:         ctx.AnalystID,
			PortfolioID:       ctx.PortfolioID,
			Now:               time.Now(),
			IncludeSuppressed: includeSuppressed,
		})
		if err != nil {
			return fmt.Errorf("failed to evaluate triage: %w", err)
		}
		if len(items) == 0 {
			fmt.Println("Nothing needs attention")
			return nil
		}

		tw := table.NewWriter()
		tw.SetOutputMirror(os.Stdout)
		tw.AppendHeader(table.Row{"Severity", "Category", "Description", "Age", "Next Step"})
		for _, it := range items {
			tw.AppendRow(table.Row{
				severityString(it.Severity),
				string(it.Category),
				describeItem(it),
				fmt.Sprintf("%dd", it.AgeDays),
				it.Primary.Command,
			})
		}
		tw.Render()
		return nil
	},
}

// describeItem joins the description template with its chips so proper
// nouns appear without being baked into the template text.
func describeItem(it triage.Item) string {
	if len(it.Chips) == 0 {
		return it.Description
	}
	parts := make([]string, 0, len(it.Chips))
	for _, chip := range it.Chips {
		parts = append(parts, fmt.Sprintf("%s=%s", chip.Label, chip.Value))
	}
	return fmt.Sprintf("%s [%s]", it.Description, strings.Join(parts, " "))
}

// TriageCmd returns the triage command
func TriageCmd() *cobra.Command {
	triageCmd.Flags().Bool("all", false, "Include suppressed items")
	addContextFlags(triageCmd)
	return triageCmd
}
