package cli

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/example/deskflow/internal/ports/primary"
	"github.com/example/deskflow/internal/wire"
)

var ideaCmd = &cobra.Command{
	Use:   "idea",
	Short: "Manage trade ideas",
	Long:  "Create, list, simulate, and close trade ideas",
}

var ideaCreateCmd = &cobra.Command{
	Use:   "create [ticker] [title]",
	Short: "Open a new trade idea",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := resolveContext(cmd)
		if err != nil {
			return err
		}
		notes, _ := cmd.Flags().GetString("notes")

		idea, err := wire.IdeaService().CreateIdea(actorContext(cmd, ctx), primary.CreateIdeaRequest{
			PortfolioID: ctx.PortfolioID,
			Ticker:      args[0],
			Title:       args[1],
			Notes:       notes,
		})
		if err != nil {
			return fmt.Errorf("failed to create idea: %w", err)
		}

		fmt.Printf("✓ Created idea %s: %s (%s)\n", idea.ID, idea.Title, idea.Ticker)
		return nil
	},
}

var ideaListCmd = &cobra.Command{
	Use:   "list",
	Short: "List active ideas",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := resolveContext(cmd)
		if err != nil {
			return err
		}
		onlyUnsimulated, _ := cmd.Flags().GetBool("unsimulated")

		ideas, err := wire.IdeaService().ListIdeas(cmd.Context(), ctx.PortfolioID, onlyUnsimulated)
		if err != nil {
			return fmt.Errorf("failed to list ideas: %w", err)
		}
		if len(ideas) == 0 {
			fmt.Println("No ideas found")
			return nil
		}

		tw := table.NewWriter()
		tw.SetOutputMirror(os.Stdout)
		tw.AppendHeader(table.Row{"ID", "Ticker", "Title", "Simulated", "Created"})
		for _, idea := range ideas {
			simulated := "no"
			if idea.Simulated {
				simulated = "yes"
			}
			tw.AppendRow(table.Row{idea.ID, idea.Ticker, idea.Title, simulated, idea.CreatedAt.Format("2006-01-02")})
		}
		tw.Render()
		return nil
	},
}

var ideaSimulateCmd = &cobra.Command{
	Use:   "simulate [idea-id]",
	Short: "Record a simulation run for an idea",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := wire.IdeaService().SimulateIdea(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to simulate idea: %w", err)
		}
		fmt.Printf("✓ Simulation recorded for %s\n", args[0])
		return nil
	},
}

var ideaCloseCmd = &cobra.Command{
	Use:   "close [idea-id]",
	Short: "Close an active idea",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := wire.IdeaService().CloseIdea(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to close idea: %w", err)
		}
		fmt.Printf("✓ Closed idea %s\n", args[0])
		return nil
	},
}

// IdeaCmd returns the idea command
func IdeaCmd() *cobra.Command {
	ideaCreateCmd.Flags().StringP("notes", "n", "", "Free-form notes")
	addContextFlags(ideaCreateCmd)
	ideaListCmd.Flags().Bool("unsimulated", false, "Only ideas without a simulation run")
	addContextFlags(ideaListCmd)

	ideaCmd.AddCommand(ideaCreateCmd)
	ideaCmd.AddCommand(ideaListCmd)
	ideaCmd.AddCommand(ideaSimulateCmd)
	ideaCmd.AddCommand(ideaCloseCmd)
	return ideaCmd
}
