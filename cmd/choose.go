package cmd

import (
	"fmt"
	"strings"

	"moneyquest/internal/cli"
	"moneyquest/internal/finance"
	"moneyquest/internal/save"

	"github.com/spf13/cobra"
)

var chooseCmd = &cobra.Command{
	Use:   "choose [decision] [option]",
	Short: "Make a monthly spending decision",
	Long: "With no arguments, lists the decision catalog and your current " +
		"picks. With a decision and option id, locks that pick in for the " +
		"month close.",
	Args: cobra.MaximumNArgs(2),
	RunE: runChoose,
}

func init() {
	rootCmd.AddCommand(chooseCmd)
}

func runChoose(_ *cobra.Command, args []string) error {
	cfg := loadConfigOrDefault()

	state, err := loadPlayer(cfg)
	if err != nil {
		return err
	}
	catalog, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		printCatalog(catalog, state.Choices)
		return nil
	}
	if len(args) == 1 {
		choice, ok := finance.FindChoice(catalog, args[0])
		if !ok {
			return fmt.Errorf("unknown decision %q, run `moneyquest choose` to list them", args[0])
		}
		printCatalog([]finance.Choice{choice}, state.Choices)
		return nil
	}

	choiceID, optionID := args[0], args[1]
	choice, ok := finance.FindChoice(catalog, choiceID)
	if !ok {
		return fmt.Errorf("unknown decision %q, run `moneyquest choose` to list them", choiceID)
	}
	opt, ok := choice.Options[optionID]
	if !ok {
		return fmt.Errorf("decision %q has no option %q (options: %s)",
			choiceID, optionID, strings.Join(choice.OptionIDs(), ", "))
	}

	state.Choices[choiceID] = optionID
	if err := save.WritePlayer(playerPath(cfg), state); err != nil {
		return err
	}

	fixed := finance.FixedNeedsFromChoices(catalog, state.Choices)
	fmt.Printf("\n  %s: %s\n", choice.Title, opt.Label)
	fmt.Printf("  Fixed monthly costs are now %s.\n\n", cli.FormatMoneyF(fixed))
	return nil
}

func printCatalog(catalog []finance.Choice, selected map[string]string) {
	fmt.Println()
	for _, c := range catalog {
		rows := make([][]string, 0, len(c.Options))
		for _, id := range c.OptionIDs() {
			opt := c.Options[id]
			marker := ""
			if selected[c.ID] == id {
				marker = "current"
			}
			rows = append(rows, []string{id, opt.Label, cli.FormatMoneyF(opt.Cost), marker})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   fmt.Sprintf("%s (%s)", c.Title, c.ID),
			Headers: []string{"Option", "Description", "Cost", ""},
			Rows:    rows,
		}))
		fmt.Println(cli.MutedStyle.Render("  " + c.Prompt))
		fmt.Println()
	}
}
