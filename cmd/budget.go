package cmd

import (
	"fmt"

	"moneyquest/internal/cli"
	"moneyquest/internal/save"

	"github.com/spf13/cobra"
)

var (
	flagNeeds       float64
	flagWants       float64
	flagSavingsFrac float64
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Show or change your needs/wants/savings split",
	Long: "Set how each month's net pay is divided. The three shares are " +
		"fractions of net income and may sum to at most 1; anything " +
		"unallocated rolls into leftover cash.",
	RunE: runBudget,
}

func init() {
	budgetCmd.Flags().Float64Var(&flagNeeds, "needs", -1, "Needs share (0-1)")
	budgetCmd.Flags().Float64Var(&flagWants, "wants", -1, "Wants share (0-1)")
	budgetCmd.Flags().Float64Var(&flagSavingsFrac, "savings", -1, "Savings share (0-1)")
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(cmd *cobra.Command, _ []string) error {
	cfg := loadConfigOrDefault()

	state, err := loadPlayer(cfg)
	if err != nil {
		return err
	}

	next := state.Budget
	changed := false
	if cmd.Flags().Changed("needs") {
		next.Needs = flagNeeds
		changed = true
	}
	if cmd.Flags().Changed("wants") {
		next.Wants = flagWants
		changed = true
	}
	if cmd.Flags().Changed("savings") {
		next.Savings = flagSavingsFrac
		changed = true
	}

	if changed {
		if next.Needs < 0 || next.Wants < 0 || next.Savings < 0 {
			return fmt.Errorf("budget shares cannot be negative")
		}
		if sum := next.Needs + next.Wants + next.Savings; sum > 1.0001 {
			return fmt.Errorf("budget shares sum to %s, must be at most 100%%", cli.FormatPercent(sum))
		}
		state.Budget = next
		if err := save.WritePlayer(playerPath(cfg), state); err != nil {
			return err
		}
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Budget split",
		Headers: []string{"Bucket", "Share"},
		Rows: [][]string{
			{"Needs", cli.FormatPercent(state.Budget.Needs)},
			{"Wants", cli.FormatPercent(state.Budget.Wants)},
			{"Savings", cli.FormatPercent(state.Budget.Savings)},
		},
	}))
	fmt.Println()

	return nil
}
