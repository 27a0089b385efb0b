// Package fb runs a game directly on a tcell screen: a raw terminal shell
// without the Bubble Tea message loop. Events are read on their own
// goroutine and the frame loop runs off a ticker.
package fb

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-eel/internal/core"
	"github.com/vovakirdan/tui-eel/internal/platform"
	"github.com/vovakirdan/tui-eel/internal/registry"
)

// fastHold is how long a shifted direction key keeps "fast" asserted.
const fastHold = 200 * time.Millisecond

// resizer is implemented by games that can re-layout without a reset.
type resizer interface {
	Resize(screenW, screenH int)
}

// Shell drives one game on a tcell screen.
type Shell struct {
	screen  tcell.Screen
	game    registry.Game
	session *platform.Session
	config  core.RuntimeConfig
	buf     *core.Screen
	frame   core.InputFrame

	fastUntil time.Time
	lastFrame time.Time
	status    string
}

// NewShell prepares a shell on an initialized screen.
func NewShell(screen tcell.Screen, game registry.Game, session *platform.Session, cfg core.RuntimeConfig) *Shell {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if session == nil {
		session = platform.NewSession(game, nil, nil)
	}
	cfg.ScreenW, cfg.ScreenH = screen.Size()

	return &Shell{
		screen:  screen,
		game:    game,
		session: session,
		config:  cfg,
		buf:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		frame:   core.NewInputFrame(),
	}
}

// Run opens the terminal, plays until the user quits and restores the terminal.
func Run(game registry.Game, session *platform.Session, cfg core.RuntimeConfig) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("fb: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("fb: %w", err)
	}
	defer screen.Fini()

	screen.HideCursor()
	NewShell(screen, game, session, cfg).Loop()
	return nil
}

// Loop runs frames until a quit key arrives.
func (s *Shell) Loop() {
	s.session.Start(s.config)
	defer s.session.Finish()

	ticker := time.NewTicker(s.config.FrameInterval())
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	s.draw()
	for {
		select {
		case ev := <-events:
			if !s.handleEvent(ev) {
				return
			}

		case now := <-ticker.C:
			s.tick(now)
			s.draw()
		}
	}
}

// handleEvent processes one terminal event. Returns false to quit.
func (s *Shell) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		s.status = ""
		if ev.Key() == tcell.KeyCtrlS {
			s.screenshot()
			return true
		}

		action, fast, quit := MapKey(ev)
		if quit {
			return false
		}
		if action != core.ActionNone {
			s.frame.Set(action)
		}
		switch {
		case fast:
			s.frame.Set(core.ActionFast)
			s.fastUntil = time.Now().Add(fastHold)
		case action.IsDirection():
			s.fastUntil = time.Time{}
		}

	case *tcell.EventResize:
		s.resize()
	}

	return true
}

// tick runs one game frame with the wall-clock time since the previous one.
func (s *Shell) tick(now time.Time) {
	if !s.lastFrame.IsZero() {
		s.frame.Elapsed = now.Sub(s.lastFrame)
	}
	s.lastFrame = now

	if now.Before(s.fastUntil) {
		s.frame.Set(core.ActionFast)
	}

	s.session.Observe(s.game.Step(s.frame))
	s.frame.Clear()
}

func (s *Shell) resize() {
	s.screen.Sync()
	s.config.ScreenW, s.config.ScreenH = s.screen.Size()
	s.buf.Resize(s.config.ScreenW, s.config.ScreenH)

	if r, ok := s.game.(resizer); ok {
		r.Resize(s.config.ScreenW, s.config.ScreenH)
	} else if !s.game.State().GameOver {
		s.session.Start(s.config)
	}
}

func (s *Shell) screenshot() {
	s.game.Render(s.buf)
	path, err := platform.WriteScreenshot(s.game.ID(), s.buf)
	if err != nil {
		s.status = "screenshot failed: " + err.Error()
		s.session.Logger().Warn("screenshot failed", "error", err)
		return
	}
	s.status = "saved " + path
	s.session.Logger().Info("screenshot saved", "path", path)
}

// draw renders the game into the buffer and copies it to the terminal.
func (s *Shell) draw() {
	s.game.Render(s.buf)
	if s.status != "" {
		s.buf.DrawTextColored(0, s.buf.Height()-1, s.status, core.ColorGray)
	}

	s.screen.Clear()
	for y := range s.buf.Height() {
		for x := range s.buf.Width() {
			cell := s.buf.GetCell(x, y)
			if cell.Rune == ' ' {
				continue
			}
			s.screen.SetContent(x, y, cell.Rune, nil, Style(cell))
		}
	}
	s.screen.Show()
}
