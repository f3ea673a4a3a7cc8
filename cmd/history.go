package cmd

import (
	"fmt"
	"sort"

	"moneyquest/internal/cli"
	"moneyquest/internal/model"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Closed months and recorded quiz days",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	cfg := loadConfigOrDefault()

	state, err := loadPlayer(cfg)
	if err != nil {
		return err
	}
	profile, err := loadProfile(cfg)
	if err != nil {
		return err
	}

	// The ledger mirrors the saves; prefer it when available since it
	// survives a player reset.
	months := state.History
	days := profile.History
	categories := profile.CategoryStats
	if ledger := openLedger(cfg); ledger != nil {
		defer ledger.Close()
		if m, err := ledger.ListSnapshots(); err == nil && len(m) > 0 {
			months = m
		}
		if d, err := ledger.ListDays(); err == nil && len(d) > 0 {
			days = d
		}
		if c, err := ledger.CategoryTotals(); err == nil && len(c) > 0 {
			categories = c
		}
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("HISTORY"))
	fmt.Println()

	if len(months) == 0 {
		fmt.Println("  No months closed yet. Run `moneyquest close`.")
		fmt.Println()
	} else {
		printMonths(months)
	}

	if len(days) == 0 {
		fmt.Println("  No quiz days recorded yet. Run `moneyquest play`.")
		fmt.Println()
	} else {
		printDays(days)
	}

	if len(categories) > 0 {
		printCategories(categories)
	}

	return nil
}

func printMonths(months []model.MonthlySnapshot) {
	rows := make([][]string, 0, len(months))
	values := make([]float64, 0, len(months))
	for i, m := range months {
		delta := ""
		if i > 0 {
			delta = cli.FormatDelta(m.NetWorth, months[i-1].NetWorth)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", m.Month),
			cli.FormatMoney(m.Cash),
			cli.FormatMoney(m.Savings),
			cli.FormatMoney(m.Debt),
			cli.FormatNumber(int64(m.CreditScore)),
			cli.FormatMoney(m.NetWorth),
			delta,
		})
		values = append(values, float64(m.NetWorth))
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Months",
		Headers: []string{"Month", "Cash", "Savings", "Debt", "Score", "Net worth", "Change"},
		Rows:    rows,
	}))
	fmt.Println("  Net worth trend: " + cli.RenderSparkline(values))
	fmt.Println()
}

func printDays(days []model.DayResult) {
	rows := make([][]string, 0, len(days))
	for _, d := range days {
		finish := "full set"
		if d.FinishedProgress {
			finish = "progress bar"
		}
		rows = append(rows, []string{
			d.Date,
			cli.FormatNumber(int64(d.Score)),
			fmt.Sprintf("%d/%d", d.Correct, d.Total),
			cli.FormatDuration(int64(d.TimeSecs)),
			finish,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Quiz days",
		Headers: []string{"Date", "Score", "Correct", "Time", "Finish"},
		Rows:    rows,
	}))
	fmt.Println()
}

func printCategories(stats map[string]model.CategoryStat) {
	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("  Category accuracy")
	for _, name := range names {
		s := stats[name]
		frac := 0.0
		if s.Attempted > 0 {
			frac = float64(s.Correct) / float64(s.Attempted)
		}
		fmt.Println(cli.RenderHorizontalBar(name, cli.FormatAccuracy(s.Correct, s.Attempted), frac, 24))
	}
	fmt.Println()
}
