package cmd

import (
	"fmt"

	"moneyquest/internal/cli"
	"moneyquest/internal/quiz"
	"moneyquest/internal/save"

	"github.com/spf13/cobra"
)

var flagName string

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Quiz profile: points, streak, and badges",
	RunE:  runProfile,
}

var roomCmd = &cobra.Command{
	Use:   "room [code]",
	Short: "Show, generate, or join a classroom room code",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRoom,
}

func init() {
	profileCmd.Flags().StringVar(&flagName, "name", "", "Set your display name")
	profileCmd.AddCommand(roomCmd)
	rootCmd.AddCommand(profileCmd)
}

func badgeLabel(id string) string {
	switch id {
	case quiz.BadgePerfectDay:
		return "Perfect Day (every answer right)"
	case quiz.BadgeStreak5:
		return "On Fire (5 day streak)"
	case quiz.BadgeStreak10:
		return "Unstoppable (10 day streak)"
	case quiz.BadgeCenturion:
		return "Centurion (100 points in one day)"
	default:
		return id
	}
}

func runProfile(cmd *cobra.Command, _ []string) error {
	cfg := loadConfigOrDefault()

	profile, err := loadProfile(cfg)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("name") {
		if flagName == "" {
			return fmt.Errorf("display name cannot be empty")
		}
		profile.DisplayName = flagName
		if err := save.WriteProfile(profilePath(cfg), profile); err != nil {
			return err
		}
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(profile.DisplayName))
	fmt.Println()

	rows := [][]string{
		{"Total points", cli.FormatNumber(int64(profile.TotalPoints))},
		{"Streak", fmt.Sprintf("%d day(s)", profile.Streak)},
		{"Streak freezes", fmt.Sprintf("%d", profile.StreakFreezes)},
		{"Days played", fmt.Sprintf("%d", len(profile.History))},
	}
	if profile.LastPlayed != "" {
		rows = append(rows, []string{"Last played", profile.LastPlayed})
	}
	if profile.RoomCode != "" {
		rows = append(rows, []string{"Room code", profile.RoomCode})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Profile",
		Headers: []string{"", "Value"},
		Rows:    rows,
	}))
	fmt.Println()

	if len(profile.Badges) == 0 {
		fmt.Println(cli.MutedStyle.Render("  No badges yet. Keep playing!"))
	} else {
		fmt.Println("  Badges")
		for _, id := range []string{quiz.BadgePerfectDay, quiz.BadgeStreak5, quiz.BadgeStreak10, quiz.BadgeCenturion} {
			if profile.Badges[id] {
				fmt.Println("   🏅 " + badgeLabel(id))
			}
		}
	}
	fmt.Println()

	return nil
}

func runRoom(_ *cobra.Command, args []string) error {
	cfg := loadConfigOrDefault()

	profile, err := loadProfile(cfg)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		code, err := quiz.ParseRoomCode(args[0])
		if err != nil {
			return err
		}
		profile.RoomCode = code
		if err := save.WriteProfile(profilePath(cfg), profile); err != nil {
			return err
		}
	} else if profile.RoomCode == "" {
		profile.RoomCode = quiz.NewRoomCode()
		if err := save.WriteProfile(profilePath(cfg), profile); err != nil {
			return err
		}
	}

	fmt.Printf("\n  Room code: %s\n", profile.RoomCode)
	fmt.Println(cli.MutedStyle.Render("  Share it with your class to compare streaks."))
	fmt.Println()
	return nil
}
