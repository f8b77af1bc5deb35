// Package cli contains the cobra commands for the deskflow binary.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/deskflow/internal/config"
	"github.com/example/deskflow/internal/core/summary"
	"github.com/example/deskflow/internal/core/triage"
	"github.com/example/deskflow/internal/ctxutil"
)

// cliContext carries the resolved analyst and portfolio for a command
// invocation. Flags override config; config is optional for commands that
// take explicit IDs.
type cliContext struct {
	AnalystID   string
	PortfolioID string
}

// resolveContext merges .deskflow/config.json with the command's
// --analyst/--portfolio flags. Flags win.
func resolveContext(cmd *cobra.Command) (cliContext, error) {
	var ctx cliContext

	cwd, err := os.Getwd()
	if err == nil {
		if cfg, err := config.LoadConfig(cwd); err == nil {
			ctx.AnalystID = cfg.AnalystID
			ctx.PortfolioID = cfg.PortfolioID
		}
	}

	if v, _ := cmd.Flags().GetString("analyst"); v != "" {
		ctx.AnalystID = v
	}
	if v, _ := cmd.Flags().GetString("portfolio"); v != "" {
		ctx.PortfolioID = v
	}

	if ctx.AnalystID == "" {
		return ctx, fmt.Errorf("no analyst configured: run 'deskflow init' or pass --analyst")
	}
	if ctx.PortfolioID == "" {
		return ctx, fmt.Errorf("no portfolio selected: set portfolio_id in .deskflow/config.json or pass --portfolio")
	}
	return ctx, nil
}

// addContextFlags registers the shared --analyst/--portfolio flags.
func addContextFlags(cmd *cobra.Command) {
	cmd.Flags().String("analyst", "", "Analyst ID (overrides config)")
	cmd.Flags().String("portfolio", "", "Portfolio ID (overrides config)")
}

// actorContext embeds the analyst in the command context so repository
// audit entries carry the acting analyst.
func actorContext(cmd *cobra.Command, c cliContext) context.Context {
	return ctxutil.WithActorID(cmd.Context(), c.AnalystID)
}

// severityString renders a severity with its conventional color.
func severityString(s triage.Severity) string {
	switch s {
	case triage.SeverityRed:
		return color.New(color.FgRed, color.Bold).Sprint("RED")
	case triage.SeverityOrange:
		return color.New(color.FgYellow).Sprint("ORANGE")
	case triage.SeverityGray:
		return color.New(color.FgHiBlack).Sprint("GRAY")
	default:
		return string(s)
	}
}

// stageString renders a workflow stage status with its conventional color.
func stageString(s summary.StageStatus) string {
	switch s {
	case summary.StatusDone:
		return color.New(color.FgHiGreen).Sprint("done")
	case summary.StatusPending:
		return color.New(color.FgYellow).Sprint("pending")
	case summary.StatusBlocked:
		return color.New(color.FgRed, color.Bold).Sprint("blocked")
	case summary.StatusNone:
		return color.New(color.FgHiBlack).Sprint("none")
	default:
		return string(s)
	}
}

// bandLabel maps band identifiers to display headings.
func bandLabel(band string) string {
	switch band {
	case "decide_now":
		return "DECIDE NOW"
	case "needs_progress":
		return "NEEDS PROGRESS"
	case "for_awareness":
		return "FOR AWARENESS"
	case "watchlist":
		return "WATCHLIST"
	default:
		return band
	}
}
