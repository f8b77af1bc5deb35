package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/deskflow/internal/core/cockpit"
	"github.com/example/deskflow/internal/ports/primary"
	"github.com/example/deskflow/internal/wire"
)

var cockpitCmd = &cobra.Command{
	Use:   "cockpit",
	Short: "Show the banded stack view over attention items",
	Long: `Group attention items into kind stacks and arrange them in four
urgency bands. Each stack carries an attention score, its oldest and
median age, and portfolio/ticker breakdowns.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := resolveContext(cmd)
		if err != nil {
			return err
		}

		view, err := wire.TriageService().Cockpit(cmd.Context(), primary.TriageRequest{
			AnalystID:   ctx.AnalystID,
			PortfolioID: ctx.PortfolioID,
			Now:         time.Now(),
		})
		if err != nil {
			return fmt.Errorf("failed to build cockpit: %w", err)
		}

		empty := true
		for _, band := range view.Bands {
			if len(band.Stacks) == 0 {
				continue
			}
			empty = false
			fmt.Printf("\n%s\n", color.New(color.Bold).Sprint(bandLabel(string(band.Band))))
			for _, stack := range band.Stacks {
				printStack(stack)
			}
		}
		if empty {
			fmt.Println("Nothing needs attention")
		}
		fmt.Println()
		return nil
	},
}

func printStack(stack cockpit.Stack) {
	fmt.Printf("  %s  score %d  (%d items, oldest %dd, median %dd)\n",
		stack.Kind, stack.AttentionScore, len(stack.Items), stack.OldestAgeDays, stack.MedianAgeDays)

	if len(stack.PortfolioBreakdown) > 0 {
		fmt.Printf("    portfolios: %s\n", formatBreakdown(stack.PortfolioBreakdown))
	}
	if len(stack.TickerBreakdown) > 0 {
		fmt.Printf("    tickers:    %s\n", formatBreakdown(stack.TickerBreakdown))
	}
	for _, it := range stack.Items {
		fmt.Printf("    - %s %s\n", severityString(it.Severity), describeItem(it))
	}
}

func formatBreakdown(entries []cockpit.BreakdownEntry) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, fmt.Sprintf("%s (%d)", e.Key, e.Count))
	}
	return strings.Join(parts, ", ")
}

// CockpitCmd returns the cockpit command
func CockpitCmd() *cobra.Command {
	addContextFlags(cockpitCmd)
	return cockpitCmd
}
