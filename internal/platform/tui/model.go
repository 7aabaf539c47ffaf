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
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ecocatch/internal/config"
	"github.com/vovakirdan/ecocatch/internal/core"
	"github.com/vovakirdan/ecocatch/internal/games/ecocatch"
	"github.com/vovakirdan/ecocatch/internal/storage"
)

// Model is the Bubble Tea model running one game of Eco Catch.
type Model struct {
	game    *ecocatch.Game
	screen  *core.Screen
	store   *storage.Store
	config  core.RuntimeConfig
	keys    KeyMap
	help    help.Model
	hold    *HoldTracker
	logger  *log.Logger
	player  string
	now     func() time.Time
	restart bool // Restart requested since the last tick
	best    int  // Best score before the round that just ended
	hasBest bool
	played  int
	local   int // Best score of this model, used without a store
	quit    bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithLogger sets the logger for round events.
func WithLogger(logger *log.Logger) ModelOption {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithPlayer sets the player name stored with each round.
func WithPlayer(name string) ModelOption {
	return func(m *Model) {
		m.player = name
	}
}

// WithClock replaces the wall clock used for key hold timing.
func WithClock(now func() time.Time) ModelOption {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

// NewModel creates a model with a fresh game. store may be nil, in which
// case rounds are not recorded.
func NewModel(eco config.EcoConfig, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:   ecocatch.New(eco, cfg.Seed),
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   newHintHelp(cfg.ScreenW),
		hold:   NewHoldTracker(DefaultInitialHold, DefaultRepeatHold),
		logger: log.New(io.Discard),
		player: "local",
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// newHintHelp returns a help model that produces plain text, since the hint
// is drawn into screen cells rather than printed.
func newHintHelp(screenW int) help.Model {
	h := help.New()
	plain := lipgloss.NewStyle()
	h.Styles = help.Styles{
		Ellipsis:       plain,
		ShortKey:       plain,
		ShortDesc:      plain,
		ShortSeparator: plain,
		FullKey:        plain,
		FullDesc:       plain,
		FullSeparator:  plain,
	}
	h.Width = hintWidth(screenW)
	return h
}

// hintWidth leaves the left half of the top row to the score.
func hintWidth(screenW int) int {
	return core.Max(screenW/2-1, 0)
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
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Keys only set input state; the game
// sees it on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quit = true
		return m, tea.Quit
	case core.ActionLeft:
		m.hold.Press(-1, m.now())
	case core.ActionRight:
		m.hold.Press(1, m.now())
	case core.ActionRestart:
		m.restart = true
	}
	return m, nil
}

// handleResize changes only the cell grid. The logical playfield is fixed,
// so the game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = hintWidth(msg.Width)
	return m, nil
}

// handleTick runs one simulation frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.restart {
		m.restart = false
		if m.game.Restart() {
			m.hold.Release()
			m.logger.Debug("round restarted", "player", m.player)
		}
	}

	res := m.game.Update(m.hold.Sample(m.now()))
	if res.Ended {
		m.recordRound()
	}

	return m, tickCmd(m.config.TickRate)
}

// recordRound stores the round that just ended and refreshes the best score
// shown on the game over screen.
func (m *Model) recordRound() {
	m.best, m.hasBest = m.previousBest()

	score := m.game.Score()
	caught, trash := m.game.Tally()
	round := storage.Round{
		Player:            m.player,
		Score:             score,
		CaughtRecyclables: caught,
		CaughtTrash:       trash,
		MissedRecyclables: m.game.MissedRecyclables(),
		Frames:            m.game.Frame(),
	}

	if m.played == 0 || score > m.local {
		m.local = score
	}
	m.played++

	if m.store == nil {
		m.logger.Info("round finished", "player", m.player, "score", score)
		return
	}
	id, err := m.store.Record(round)
	if err != nil {
		m.logger.Warn("could not record round", "error", err)
		return
	}
	m.logger.Info("round finished", "player", m.player, "score", score, "round", id)
}

// previousBest is the best score recorded before the current round.
func (m *Model) previousBest() (int, bool) {
	if m.store != nil {
		best, ok, err := m.store.BestScore()
		if err == nil {
			return best, ok
		}
		m.logger.Warn("could not read best score", "error", err)
	}
	return m.local, m.played > 0
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".ecocatch", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", ecocatch.ID, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// draw renders the current game state into the screen buffer.
func (m *Model) draw() {
	ecocatch.Render(m.screen, m.game.Snapshot(), ecocatch.HUD{
		Hint:        m.help.View(m.keys),
		SessionBest: m.best,
		HasBest:     m.hasBest,
	})
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quit {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen)
}

// Game returns the running game.
func (m Model) Game() *ecocatch.Game {
	return m.game
}

// Run starts a local game in the current terminal and blocks until the
// player quits.
func Run(eco config.EcoConfig, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(eco, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
