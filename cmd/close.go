package cmd

import (
	"fmt"

	"moneyquest/internal/cli"
	"moneyquest/internal/finance"
	"moneyquest/internal/save"

	"github.com/spf13/cobra"
)

var flagPreview bool

var closeCmd = &cobra.Command{
	Use:   "close",
	Short: "Close out the month and collect your paycheck",
	RunE:  runClose,
}

func init() {
	closeCmd.Flags().BoolVar(&flagPreview, "preview", false, "Show the month outcome without saving")
	rootCmd.AddCommand(closeCmd)
}

func runClose(_ *cobra.Command, _ []string) error {
	cfg := loadConfigOrDefault()

	state, err := loadPlayer(cfg)
	if err != nil {
		return err
	}
	catalog, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	fixedNeeds := finance.FixedNeedsFromChoices(catalog, state.Choices)
	closingMonth := state.Month

	snapshot, pay, alloc := finance.CloseMonth(state, fixedNeeds, finance.DefaultCreditLimit)

	fmt.Println()
	if flagPreview {
		fmt.Println(cli.RenderTitle(fmt.Sprintf("MONTH %d PREVIEW", closingMonth)))
	} else {
		fmt.Println(cli.RenderTitle(fmt.Sprintf("MONTH %d CLOSED", closingMonth)))
	}
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Paycheck",
		Headers: []string{"", "Amount"},
		Rows: [][]string{
			{"Gross", cli.FormatMoneyF(pay.Gross)},
			{"Withheld", cli.FormatMoneyF(pay.Withheld)},
			{"Net", cli.FormatMoneyF(pay.Net)},
		},
	}))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Where it went",
		Headers: []string{"Bucket", "Amount"},
		Rows: [][]string{
			{"Needs (incl. fixed costs)", cli.FormatMoneyF(alloc.NeedsSpend)},
			{"Wants", cli.FormatMoneyF(alloc.WantsSpend)},
			{"Savings", cli.FormatMoneyF(alloc.SavingsAdded)},
			{"Leftover cash", cli.FormatMoneyF(alloc.Leftover)},
		},
	}))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "End of month",
		Headers: []string{"", "Amount"},
		Rows: [][]string{
			{"Cash", cli.FormatMoney(snapshot.Cash)},
			{"Savings", cli.FormatMoney(snapshot.Savings)},
			{"Debt", cli.FormatMoney(snapshot.Debt)},
			{"Net worth", cli.FormatMoney(snapshot.NetWorth)},
			{"Credit score", cli.FormatNumber(int64(snapshot.CreditScore))},
		},
	}))
	fmt.Println()

	if flagPreview {
		fmt.Println(cli.MutedStyle.Render("  Preview only. Nothing saved."))
		fmt.Println()
		return nil
	}

	if err := save.WritePlayer(playerPath(cfg), state); err != nil {
		return err
	}
	if ledger := openLedger(cfg); ledger != nil {
		defer ledger.Close()
		if err := ledger.SaveSnapshot(snapshot); err != nil && !flagQuiet {
			fmt.Printf("  Could not write history: %v\n", err)
		}
	}

	fmt.Printf("  Welcome to month %d.\n\n", state.Month)
	return nil
}
