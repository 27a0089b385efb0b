package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-eel/internal/core"
	"github.com/vovakirdan/tui-eel/internal/platform"
	"github.com/vovakirdan/tui-eel/internal/registry"
)

// fastHold is how long a shifted direction key keeps "fast" asserted.
// Terminals report key repeats, not key state, so holding shift+key is seen
// as a stream of presses closer together than this.
const fastHold = 200 * time.Millisecond

// resizer is implemented by games that can re-layout without a reset.
type resizer interface {
	Resize(screenW, screenH int)
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	session    *platform.Session
	screen     *core.Screen
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	fastUntil  time.Time
	status     string
	width      int
	height     int
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, session *platform.Session, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if session == nil {
		session = platform.NewSession(game, nil, nil)
	}

	m := Model{
		game:       game,
		session:    session,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
	m.help.Width = cfg.ScreenW
	m.config.ScreenH = m.boardHeight()
	m.screen = core.NewScreen(m.config.ScreenW, m.config.ScreenH)

	// Start the game here: Init has a value receiver and cannot keep state.
	m.session.Start(m.config)
	m.gameState = game.State()
	return m
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
		return m.handleResize(msg.Width, msg.Height)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()
	m.status = ""

	switch {
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m.handleResize(m.width, m.height)
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.session.Finish()
		return m, tea.Quit
	}

	if m.keyMapper.IsFast(msg) {
		m.fastUntil = time.Now().Add(fastHold)
	} else if action, _ := m.keyMapper.MapKey(msg); action.IsDirection() {
		m.fastUntil = time.Time{}
	}

	return m, nil
}

// handleResize processes window resize events and help toggles.
func (m Model) handleResize(width, height int) (tea.Model, tea.Cmd) {
	m.width = width
	m.height = height
	m.help.Width = width

	m.config.ScreenW = width
	m.config.ScreenH = m.boardHeight()
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)

	// Keep the running eel when the game can re-layout; otherwise restart.
	if r, ok := m.game.(resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else if !m.gameState.GameOver {
		m.session.Start(m.config)
	}

	return m, nil
}

// boardHeight is the screen height left for the game above the help footer.
func (m Model) boardHeight() int {
	return max(0, m.height-lipgloss.Height(m.helpView()))
}

func (m Model) helpView() string {
	return m.help.View(m.keyMapper.Keys())
}

// handleTick processes one platform frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.lastTick.IsZero() {
		m.inputFrame.Elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	if now.Before(m.fastUntil) {
		m.inputFrame.Set(core.ActionFast)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.session.Observe(result)

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	path, err := platform.WriteScreenshot(m.game.ID(), m.screen)
	if err != nil {
		m.status = "screenshot failed: " + err.Error()
		m.session.Logger().Warn("screenshot failed", "error", err)
		return
	}
	m.status = "saved " + path
	m.session.Logger().Info("screenshot saved", "path", path)
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")

	footer := m.helpView()
	if m.status != "" && !m.help.ShowAll {
		footer = statusStyle.Render(m.status)
	}
	b.WriteString(footer)
	return b.String()
}

// Run starts the Bubble Tea program for the game.
func Run(game registry.Game, session *platform.Session, cfg core.RuntimeConfig) error {
	model := NewModel(game, session, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
