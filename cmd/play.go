package cmd

import (
	"fmt"

	"moneyquest/internal/bank"
	"moneyquest/internal/cli"
	"moneyquest/internal/quiz"
	"moneyquest/internal/save"
	"moneyquest/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play today's money quiz",
	RunE:  runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg := loadConfigOrDefault()

	date, err := gameDate()
	if err != nil {
		return err
	}
	day := date.Format(quiz.DateFormat)

	profile, err := loadProfile(cfg)
	if err != nil {
		return err
	}
	if profile.LastRecorded == day {
		fmt.Printf("\n  Already played on %s. Come back tomorrow!\n\n", day)
		return nil
	}

	b, err := bank.Load(bankPath(cfg))
	if err != nil {
		return err
	}
	if n := b.Skipped(); n > 0 && !flagQuiet {
		fmt.Printf("  Skipped %d malformed question(s) in the bank.\n", n)
	}

	questions := b.QuestionsFor(date)
	if len(questions) == 0 {
		fmt.Printf("\n  No questions in the bank for %s.\n\n", day)
		return nil
	}

	session, err := quiz.NewSession(date, questions)
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewApp(session, profile), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("quiz screen: %w", err)
	}

	app, ok := final.(tui.App)
	if !ok || app.Aborted() || !app.Session().Completed() {
		fmt.Println("\n  Quiz abandoned. Nothing recorded.")
		return nil
	}

	s := app.Session()
	freezesBefore := profile.StreakFreezes
	badgesBefore := make(map[string]bool, len(profile.Badges))
	for id := range profile.Badges {
		badgesBefore[id] = true
	}
	if !quiz.Record(profile, s) {
		fmt.Println("\n  Day already recorded.")
		return nil
	}

	if err := save.WriteProfile(profilePath(cfg), profile); err != nil {
		return err
	}

	if ledger := openLedger(cfg); ledger != nil {
		defer ledger.Close()
		dayResult := profile.History[len(profile.History)-1]
		if err := ledger.SaveDay(dayResult, s.Results); err != nil && !flagQuiet {
			fmt.Printf("  Could not write history: %v\n", err)
		}
	}

	fmt.Println()
	fmt.Printf("  Recorded %s: %s, %d/%d correct in %s.\n",
		day,
		cli.FormatPoints(s.Score),
		s.CorrectCount(), len(s.Questions),
		cli.FormatDuration(int64(s.ElapsedSecs())),
	)
	fmt.Printf("  Streak: %d day(s). Total: %s.\n", profile.Streak, cli.FormatPoints(profile.TotalPoints))
	if profile.StreakFreezes < freezesBefore {
		fmt.Printf("  A streak freeze kept your run alive (%d left).\n", profile.StreakFreezes)
	}
	for id := range profile.Badges {
		if !badgesBefore[id] {
			fmt.Printf("  New badge: %s\n", badgeLabel(id))
		}
	}
	fmt.Println()

	return nil
}
