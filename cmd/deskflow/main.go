package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/deskflow/internal/cli"
	"github.com/example/deskflow/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "deskflow",
		Short:   "deskflow - triage for investment analyst workflows",
		Version: version.String(),
		Long: `deskflow tracks the research → idea → proposal → decision → execution
pipeline per portfolio and surfaces what needs an analyst's attention next.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.PortfolioCmd())
	rootCmd.AddCommand(cli.IdeaCmd())
	rootCmd.AddCommand(cli.ProposalCmd())
	rootCmd.AddCommand(cli.RatingCmd())
	rootCmd.AddCommand(cli.TriageCmd())
	rootCmd.AddCommand(cli.CockpitCmd())
	rootCmd.AddCommand(cli.SummaryCmd())
	rootCmd.AddCommand(cli.DismissCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
