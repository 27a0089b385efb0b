// Package platform holds what the terminal, framebuffer and window shells
// share: event logging and the eat chime hook.
package platform

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-eel/internal/core"
	"github.com/vovakirdan/tui-eel/internal/registry"
)

// Chime plays a short sound when food is eaten. reward is the food's value.
type Chime interface {
	Play(reward int)
}

// fielder is implemented by games that can describe themselves for logs.
type fielder interface {
	LogFields() []any
}

// Session follows one game run for a shell: it logs starts, speed changes
// and game overs, and rings the chime on every meal.
type Session struct {
	game    registry.Game
	logger  *log.Logger
	chime   Chime
	started time.Time
	over    bool
	rounds  int
}

// NewLogger returns a logger writing to w, or a discarding logger when w is nil.
func NewLogger(w io.Writer, prefix string) *log.Logger {
	if w == nil {
		w = io.Discard
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}

// NewSession creates a session. logger and chime may be nil.
func NewSession(game registry.Game, logger *log.Logger, chime Chime) *Session {
	if logger == nil {
		logger = NewLogger(nil, "")
	}
	return &Session{
		game:   game,
		logger: logger,
		chime:  chime,
	}
}

// Logger returns the session logger.
func (s *Session) Logger() *log.Logger {
	return s.logger
}

// Start resets the game and logs the start.
func (s *Session) Start(cfg core.RuntimeConfig) {
	s.game.Reset(cfg)
	s.begin("game started", "seed", cfg.Seed, "screen_w", cfg.ScreenW, "screen_h", cfg.ScreenH)
}

func (s *Session) begin(msg string, kv ...any) {
	s.started = time.Now()
	s.over = false
	s.rounds++
	s.logger.Info(msg, append([]any{"game", s.game.ID(), "round", s.rounds}, append(kv, s.fields()...)...)...)
}

// Observe reacts to the result of one Game.Step.
func (s *Session) Observe(res core.StepResult) {
	if s.over && !res.State.GameOver {
		s.begin("game restarted")
	}

	for _, e := range res.Events {
		switch e.Kind {
		case core.EventAte:
			s.logger.Debug("ate", "reward", e.Value, "length", res.State.Score)
			if s.chime != nil {
				s.chime.Play(e.Value)
			}
		case core.EventSpeedChanged:
			s.logger.Info("speed changed", "speed", e.Value)
		case core.EventDied:
			s.logger.Info("game over",
				append([]any{"duration", time.Since(s.started).Round(time.Millisecond)}, s.fields()...)...)
		}
	}

	s.over = res.State.GameOver
}

// Finish logs the end of the session.
func (s *Session) Finish() {
	s.logger.Info("session ended", append([]any{"rounds", s.rounds}, s.fields()...)...)
}

func (s *Session) fields() []any {
	if f, ok := s.game.(fielder); ok {
		return f.LogFields()
	}
	return []any{"score", s.game.State().Score}
}
