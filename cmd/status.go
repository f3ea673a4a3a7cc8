package cmd

import (
	"fmt"

	"moneyquest/internal/cli"
	"moneyquest/internal/finance"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Current balances, budget, and quiz streak",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	cfg := loadConfigOrDefault()

	state, err := loadPlayer(cfg)
	if err != nil {
		return err
	}
	profile, err := loadProfile(cfg)
	if err != nil {
		return err
	}

	gross, withheld, net := finance.ComputeNetPay(
		state.Income.HoursPerWeek, state.Income.WagePerHour, state.Income.WithholdingRate,
	)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("MONEYQUEST  Month %d", state.Month)))
	fmt.Println()

	netWorth := state.Cash + state.Savings - state.Debt
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Balances",
		Headers: []string{"", "Amount"},
		Rows: [][]string{
			{"Cash", cli.FormatMoney(state.Cash)},
			{"Savings", cli.FormatMoney(state.Savings)},
			{"Debt", cli.FormatMoney(state.Debt)},
			{"Net worth", cli.FormatMoney(netWorth)},
			{"Credit score", cli.FormatNumber(int64(state.CreditScore))},
		},
	}))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Monthly paycheck",
		Headers: []string{"", "Amount"},
		Rows: [][]string{
			{"Gross", cli.FormatMoneyF(gross)},
			{"Withheld", cli.FormatMoneyF(withheld)},
			{"Net", cli.FormatMoneyF(net)},
		},
	}))
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

	streakLine := fmt.Sprintf("  Quiz: %s, %d day streak, %d freezes left",
		cli.FormatPoints(profile.TotalPoints), profile.Streak, profile.StreakFreezes)
	fmt.Println(streakLine)
	if profile.LastPlayed != "" {
		fmt.Println(cli.MutedStyle.Render("  Last played " + profile.LastPlayed))
	}
	fmt.Println()

	return nil
}
