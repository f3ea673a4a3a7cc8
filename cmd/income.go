package cmd

import (
	"fmt"

	"moneyquest/internal/cli"
	"moneyquest/internal/finance"
	"moneyquest/internal/save"

	"github.com/spf13/cobra"
)

var (
	flagHours       float64
	flagWage        float64
	flagWithholding float64
)

var incomeCmd = &cobra.Command{
	Use:   "income",
	Short: "Show or change your job parameters",
	RunE:  runIncome,
}

func init() {
	incomeCmd.Flags().Float64Var(&flagHours, "hours", -1, "Hours worked per week")
	incomeCmd.Flags().Float64Var(&flagWage, "wage", -1, "Hourly wage in dollars")
	incomeCmd.Flags().Float64Var(&flagWithholding, "withholding", -1, "Withholding rate (0-1)")
	rootCmd.AddCommand(incomeCmd)
}

func runIncome(cmd *cobra.Command, _ []string) error {
	cfg := loadConfigOrDefault()

	state, err := loadPlayer(cfg)
	if err != nil {
		return err
	}

	changed := false
	if cmd.Flags().Changed("hours") {
		if flagHours < 0 || flagHours > 80 {
			return fmt.Errorf("hours must be between 0 and 80")
		}
		state.Income.HoursPerWeek = flagHours
		changed = true
	}
	if cmd.Flags().Changed("wage") {
		if flagWage < 0 {
			return fmt.Errorf("wage cannot be negative")
		}
		state.Income.WagePerHour = flagWage
		changed = true
	}
	if cmd.Flags().Changed("withholding") {
		if flagWithholding < 0 || flagWithholding > 1 {
			return fmt.Errorf("withholding must be between 0 and 1")
		}
		state.Income.WithholdingRate = flagWithholding
		changed = true
	}

	if changed {
		if err := save.WritePlayer(playerPath(cfg), state); err != nil {
			return err
		}
	}

	gross, withheld, net := finance.ComputeNetPay(
		state.Income.HoursPerWeek, state.Income.WagePerHour, state.Income.WithholdingRate,
	)

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Income",
		Headers: []string{"", "Value"},
		Rows: [][]string{
			{"Hours/week", fmt.Sprintf("%.1f", state.Income.HoursPerWeek)},
			{"Wage", cli.FormatMoneyF(state.Income.WagePerHour)},
			{"Withholding", cli.FormatPercent(state.Income.WithholdingRate)},
			{"---"},
			{"Monthly gross", cli.FormatMoneyF(gross)},
			{"Monthly withheld", cli.FormatMoneyF(withheld)},
			{"Monthly net", cli.FormatMoneyF(net)},
		},
	}))
	fmt.Println()

	return nil
}
