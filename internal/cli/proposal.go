package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/example/deskflow/internal/models"
	"github.com/example/deskflow/internal/ports/primary"
	"github.com/example/deskflow/internal/wire"
)

var proposalCmd = &cobra.Command{
	Use:   "proposal",
	Short: "Manage proposals and their decisions",
	Long:  "Submit proposals, record decisions, and confirm executions",
}

var proposalSubmitCmd = &cobra.Command{
	Use:   "submit [ticker]",
	Short: "Submit a proposal for decision",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := resolveContext(cmd)
		if err != nil {
			return err
		}
		ideaID, _ := cmd.Flags().GetString("idea")

		proposal, err := wire.ProposalService().SubmitProposal(actorContext(cmd, ctx), primary.SubmitProposalRequest{
			IdeaID:      ideaID,
			PortfolioID: ctx.PortfolioID,
			Ticker:      args[0],
			SubmittedAt: time.Now(),
		})
		if err != nil {
			return fmt.Errorf("failed to submit proposal: %w", err)
		}

		fmt.Printf("✓ Submitted proposal %s (%s)\n", proposal.ID, proposal.Ticker)
		return nil
	},
}

var proposalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List pending proposals, oldest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := resolveContext(cmd)
		if err != nil {
			return err
		}

		proposals, err := wire.ProposalService().ListPending(cmd.Context(), ctx.PortfolioID)
		if err != nil {
			return fmt.Errorf("failed to list proposals: %w", err)
		}
		if len(proposals) == 0 {
			fmt.Println("No pending proposals")
			return nil
		}

		tw := table.NewWriter()
		tw.SetOutputMirror(os.Stdout)
		tw.AppendHeader(table.Row{"ID", "Ticker", "Submitted", "From Idea"})
		for _, p := range proposals {
			ideaID := "-"
			if p.IdeaID.Valid {
				ideaID = p.IdeaID.String
			}
			tw.AppendRow(table.Row{p.ID, p.Ticker, p.SubmittedAt.Format("2006-01-02"), ideaID})
		}
		tw.Render()
		return nil
	},
}

var proposalShowCmd = &cobra.Command{
	Use:   "show [proposal-id]",
	Short: "Show proposal details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := wire.ProposalService().GetProposal(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get proposal: %w", err)
		}

		fmt.Printf("\nProposal: %s\n", p.ID)
		fmt.Printf("Ticker:    %s\n", p.Ticker)
		fmt.Printf("Status:    %s\n", p.Status)
		fmt.Printf("Submitted: %s\n", p.SubmittedAt.Format("2006-01-02"))
		if p.IdeaID.Valid {
			fmt.Printf("Idea:      %s\n", p.IdeaID.String)
		}
		if p.DecidedAt.Valid {
			fmt.Printf("Decided:   %s\n", p.DecidedAt.Time.Format("2006-01-02"))
		}
		fmt.Println()
		return nil
	},
}

var proposalApproveCmd = &cobra.Command{
	Use:   "approve [proposal-id]",
	Short: "Approve a pending proposal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		decision, err := wire.ProposalService().DecideProposal(cmd.Context(), args[0], models.DecisionOutcomeApproved, time.Now())
		if err != nil {
			return fmt.Errorf("failed to approve proposal: %w", err)
		}
		fmt.Printf("✓ Approved %s (decision %s) - confirm execution with 'deskflow proposal execute %s'\n", args[0], decision.ID, decision.ID)
		return nil
	},
}

var proposalRejectCmd = &cobra.Command{
	Use:   "reject [proposal-id]",
	Short: "Reject a pending proposal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		decision, err := wire.ProposalService().DecideProposal(cmd.Context(), args[0], models.DecisionOutcomeRejected, time.Now())
		if err != nil {
			return fmt.Errorf("failed to reject proposal: %w", err)
		}
		fmt.Printf("✓ Rejected %s (decision %s)\n", args[0], decision.ID)
		return nil
	},
}

var proposalExecuteCmd = &cobra.Command{
	Use:   "execute [decision-id]",
	Short: "Confirm execution of an approved decision",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := wire.ProposalService().ConfirmExecution(cmd.Context(), args[0], time.Now()); err != nil {
			return fmt.Errorf("failed to confirm execution: %w", err)
		}
		fmt.Printf("✓ Execution confirmed for %s\n", args[0])
		return nil
	},
}

// ProposalCmd returns the proposal command
func ProposalCmd() *cobra.Command {
	proposalSubmitCmd.Flags().String("idea", "", "Idea ID the proposal derives from")
	addContextFlags(proposalSubmitCmd)
	addContextFlags(proposalListCmd)

	proposalCmd.AddCommand(proposalSubmitCmd)
	proposalCmd.AddCommand(proposalListCmd)
	proposalCmd.AddCommand(proposalShowCmd)
	proposalCmd.AddCommand(proposalApproveCmd)
	proposalCmd.AddCommand(proposalRejectCmd)
	proposalCmd.AddCommand(proposalExecuteCmd)
	return proposalCmd
}
