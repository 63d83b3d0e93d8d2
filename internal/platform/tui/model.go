package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// view is the screen the model is showing.
type view int

const (
	viewTitle view = iota
	viewGame
)

// Options configures a Model.
type Options struct {
	Config core.RuntimeConfig
	Theme  tetris.Theme
	Store  storage.HighScoreStore // Optional; nil disables high scores
	Logger *log.Logger            // Optional; nil discards
}

// Model is the Bubble Tea model for the game.
type Model struct {
	game       *tetris.Game
	screen     *core.Screen
	store      storage.HighScoreStore
	logger     *log.Logger
	config     core.RuntimeConfig
	theme      tetris.Theme
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	view       view
	highScore  int
	scoreSaved bool // Whether the score has been recorded for this game over
	quitting   bool
}

// NewModel creates a model showing the title screen.
func NewModel(opts Options) Model {
	cfg := opts.Config
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-1),
		store:      opts.Store,
		logger:     logger,
		config:     cfg,
		theme:      opts.Theme,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		view:       viewTitle,
	}
	m.help.Width = cfg.ScreenW
	m.highScore = m.loadHighScore()
	m.game = m.newGame()
	return m
}

func (m Model) loadHighScore() int {
	if m.store == nil {
		return 0
	}
	score, err := m.store.Load()
	if err != nil {
		m.logger.Warn("could not load high score", "error", err)
		return 0
	}
	return score
}

func (m Model) newGame() *tetris.Game {
	g := tetris.New(m.config)
	g.SetTheme(m.theme)
	g.SetHighScore(m.highScore)
	return g
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case m.view == viewTitle:
		// Any other key starts the game.
		m.view = viewGame
		m.logger.Debug("game started", "seed", m.config.Seed)

	case m.game.Phase() == tetris.PhaseGameOver:
		if action == core.ActionRestart {
			m.restart()
		}

	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize keeps the screen one row short of the window for the help line.
// The game itself is unaffected; the renderer re-centers on the next frame.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-1)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one frame of the simulation.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.view == viewGame && m.game.Phase() == tetris.PhasePlaying {
		result := m.game.Step(m.inputFrame, now)
		if result.Cleared > 0 {
			m.logger.Debug("rows cleared",
				"rows", result.Cleared,
				"score", result.State.Score,
				"level", result.State.Level,
			)
		}
		if result.State.GameOver {
			m.logger.Info("game over",
				"score", result.State.Score,
				"lines", result.State.Lines,
				"level", result.State.Level,
			)
			m.recordScore(result.State.Score)
		}
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// recordScore saves score as the new best if it beats the stored one.
// It runs once per game over; failures are logged and play goes on.
func (m *Model) recordScore(score int) {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	if score > m.highScore {
		m.highScore = score
	}
	if m.store == nil {
		return
	}

	saved, err := storage.Record(m.store, score)
	if err != nil {
		m.logger.Error("could not save high score", "score", score, "error", err)
		return
	}
	if saved {
		m.logger.Info("new high score", "score", score)
	}
}

// restart replaces the finished game with a fresh one.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game = m.newGame()
	m.scoreSaved = false
	m.inputFrame.Clear()
	m.logger.Debug("game restarted", "seed", m.config.Seed)
}

// saveScreenshot saves the current screen to ~/.tetris/screenshots.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".tetris", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// draw renders the current view into the screen buffer.
func (m Model) draw() {
	if m.view == viewTitle {
		tetris.RenderTitle(m.screen, m.highScore)
		return
	}
	m.game.Render(m.screen)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()

	keys := m.keys
	playing := m.view == viewGame && m.game.Phase() == tetris.PhasePlaying
	for _, b := range []*key.Binding{&keys.Left, &keys.Right, &keys.Rotate, &keys.SoftDrop, &keys.HardDrop} {
		b.SetEnabled(playing)
	}
	keys.Restart.SetEnabled(m.view == viewGame && !playing)

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(keys))
}

// HighScore returns the best score known to the model.
func (m Model) HighScore() int {
	return m.highScore
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
