package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var flagReset bool

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Show the high score",
	Long: `Display the stored high score, or reset it to 0.

Examples:
  tetris score
  tetris score --reset`,
	Args: cobra.NoArgs,
	Run:  runScore,
}

func init() {
	scoreCmd.Flags().BoolVar(&flagReset, "reset", false, "Reset the high score to 0")
}

var (
	scoreLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	scoreValueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	scoreHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func runScore(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	store, err := openStore(cfg)
	if err != nil {
		logger.Fatal("could not open score store", "error", err)
	}
	defer store.Close()

	if flagReset {
		if err := store.Save(0); err != nil {
			logger.Fatal("could not reset high score", "error", err)
		}
		logger.Info("high score reset", "path", cfg.ScorePath())
		return
	}

	best, err := store.Load()
	if err != nil {
		logger.Warn("could not read high score", "error", err)
	}

	fmt.Println(scoreLabelStyle.Render("High Score: ") + scoreValueStyle.Render(fmt.Sprint(best)))
	if best == 0 {
		fmt.Println(scoreHintStyle.Render("Play 'tetris' to set the first high score!"))
	}
	if s, ok := store.(*storage.SQLiteStore); ok && best > 0 {
		if at, err := s.UpdatedAt(); err == nil && !at.IsZero() {
			fmt.Println(scoreHintStyle.Render("Set " + at.Format("2006-01-02 15:04")))
		}
	}
}
