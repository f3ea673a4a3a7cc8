package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"moneyquest/internal/config"
	"moneyquest/internal/finance"
	"moneyquest/internal/model"
	"moneyquest/internal/quiz"
	"moneyquest/internal/save"
	"moneyquest/internal/store"
	"moneyquest/internal/tui/theme"

	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagBank    string
	flagDate    string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "moneyquest",
	Short: "Personal finance practice game",
	Long:  "Run your month, make spending choices, and keep a daily money-quiz streak.",
	RunE:  runStatus,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory (saves, history, question bank)")
	rootCmd.PersistentFlags().StringVar(&flagBank, "bank", "", "Question bank file")
	rootCmd.PersistentFlags().StringVar(&flagDate, "date", "", "Play as this date (YYYY-MM-DD)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress decorative output")
}

// loadConfigOrDefault applies the saved config, falling back to
// defaults when it is missing or corrupted.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	theme.SetActive(cfg.Appearance.Theme)
	return cfg
}

func dataDir(cfg config.Config) string {
	if flagDataDir != "" {
		return flagDataDir
	}
	return config.DataDir(cfg)
}

func playerPath(cfg config.Config) string {
	return filepath.Join(dataDir(cfg), save.PlayerFile)
}

func profilePath(cfg config.Config) string {
	return filepath.Join(dataDir(cfg), save.ProfileFile)
}

func ledgerPath(cfg config.Config) string {
	return filepath.Join(dataDir(cfg), "history.db")
}

func bankPath(cfg config.Config) string {
	if flagBank != "" {
		return flagBank
	}
	if flagDataDir != "" && cfg.Quiz.BankPath == "" {
		return filepath.Join(flagDataDir, "question_bank.json")
	}
	return config.BankPath(cfg)
}

// gameDate resolves the --date flag, defaulting to today.
func gameDate() (time.Time, error) {
	if flagDate == "" {
		return time.Now(), nil
	}
	d, err := time.Parse(quiz.DateFormat, flagDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad --date %q, want YYYY-MM-DD", flagDate)
	}
	return d, nil
}

// openLedger opens the history database. Ledger failures degrade to a
// warning; the TOML saves stay authoritative.
func openLedger(cfg config.Config) *store.Ledger {
	l, err := store.Open(ledgerPath(cfg))
	if err != nil {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  History database unavailable: %v\n", err)
		}
		return nil
	}
	return l
}

func loadCatalog(cfg config.Config) ([]finance.Choice, error) {
	return finance.LoadCatalog(cfg.General.CatalogPath)
}

func loadPlayer(cfg config.Config) (*model.PlayerState, error) {
	return save.LoadPlayer(playerPath(cfg))
}

func loadProfile(cfg config.Config) (*model.QuizSaveState, error) {
	p, err := save.LoadProfile(profilePath(cfg))
	if err != nil {
		return nil, err
	}
	if cfg.Quiz.DisplayName != "" && p.DisplayName == "You" {
		p.DisplayName = cfg.Quiz.DisplayName
	}
	return p, nil
}
