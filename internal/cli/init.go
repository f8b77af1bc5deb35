package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/deskflow/internal/config"
	"github.com/example/deskflow/internal/db"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize deskflow in the current directory",
	Long: `Initialize deskflow: write .deskflow/config.json, create the
database schema, and optionally seed demo fixtures.

Examples:
  deskflow init --analyst analyst-1
  deskflow init --analyst analyst-1 --portfolio PF-001 --seed`,
	RunE: func(cmd *cobra.Command, args []string) error {
		analystID, _ := cmd.Flags().GetString("analyst")
		portfolioID, _ := cmd.Flags().GetString("portfolio")
		seed, _ := cmd.Flags().GetBool("seed")

		if analystID == "" {
			return fmt.Errorf("--analyst is required")
		}

		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}

		cfg := &config.Config{
			Version:     "1.0",
			AnalystID:   analystID,
			PortfolioID: portfolioID,
		}
		if err := config.SaveConfig(cwd, cfg); err != nil {
			return err
		}

		database, err := db.GetDB()
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}

		if seed {
			if err := db.SeedFixtures(database); err != nil {
				return fmt.Errorf("failed to seed fixtures: %w", err)
			}
			fmt.Println("✓ Seeded demo fixtures")
		}

		dbPath, _ := db.GetDBPath()
		fmt.Printf("✓ Initialized deskflow for %s (db: %s)\n", analystID, dbPath)
		return nil
	},
}

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	initCmd.Flags().String("analyst", "", "Analyst ID to store in config")
	initCmd.Flags().String("portfolio", "", "Default portfolio ID")
	initCmd.Flags().Bool("seed", false, "Seed demo fixtures")
	return initCmd
}
