package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Start over: delete saves and history",
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagForce, "force", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}

func runReset(_ *cobra.Command, _ []string) error {
	cfg := loadConfigOrDefault()

	if !flagForce {
		fmt.Print("  This deletes your game, quiz profile, and history. Type 'reset' to confirm: ")
		var confirm string
		if _, err := fmt.Scanln(&confirm); err != nil || confirm != "reset" {
			fmt.Println("  Cancelled.")
			return nil
		}
	}

	for _, path := range []string{playerPath(cfg), profilePath(cfg)} {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing %s: %w", path, err)
		}
	}
	if ledger := openLedger(cfg); ledger != nil {
		defer ledger.Close()
		if err := ledger.Reset(); err != nil {
			return fmt.Errorf("clearing history: %w", err)
		}
	}

	fmt.Println("  Fresh start. Month 1 awaits.")
	return nil
}
