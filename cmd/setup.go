package cmd

import (
	"fmt"
	"strings"

	"moneyquest/internal/config"
	"moneyquest/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	name := cfg.Quiz.DisplayName
	themeName := cfg.Appearance.Theme
	if themeName == "" {
		themeName = "flexoki-dark"
	}
	dataDirIn := cfg.General.DataDir

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What should we call you?").
				Placeholder("You").
				Value(&name),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&themeName),
			huh.NewInput().
				Title("Data directory").
				Description("Where saves and history live. Leave blank for the default.").
				Value(&dataDirIn),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("setup: %w", err)
	}

	cfg.Quiz.DisplayName = strings.TrimSpace(name)
	cfg.Appearance.Theme = themeName
	cfg.General.DataDir = strings.TrimSpace(dataDirIn)

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	theme.SetActive(cfg.Appearance.Theme)

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `moneyquest setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
