package brightness

import (
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrNotStarted = errors.New("brightness: screen not started")

type ScreenConfig struct {
	Initial float64
	Step    float64
}

func DefaultScreenConfig() ScreenConfig {
	return ScreenConfig{Initial: DefaultValue, Step: DefaultStep}
}

// Screen owns the brightness state for one session and forwards every
// change to its sinks before returning. It is not safe for concurrent use.
type Screen struct {
	projector Projector
	state     *State
	session   string
	base      *zap.Logger
	log       *zap.Logger
}

func NewScreen(display DisplaySetter, progress ProgressSink, text TextSink, logger *zap.Logger) *Screen {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Screen{
		projector: Projector{Display: display, Progress: progress, Text: text},
		base:      logger,
		log:       logger,
	}
}

// OnStart creates the state and pushes the initial projection.
func (s *Screen) OnStart(cfg ScreenConfig) (Projection, error) {
	state, err := NewState(cfg.Initial, cfg.Step)
	if err != nil {
		return Projection{}, err
	}

	s.state = state
	s.session = uuid.NewString()
	s.log = s.base.With(zap.String("session", s.session))
	s.projector.Logger = s.log

	s.log.Info("screen started",
		zap.Float64("initial", state.Value()),
		zap.Float64("step", state.Step()),
	)
	return s.projector.Apply(state.Value())
}

// Increase is the increase control.
func (s *Screen) Increase() (Projection, error) {
	if s.state == nil {
		return Projection{}, ErrNotStarted
	}
	s.state.Increment()
	s.log.Debug("increase", zap.Float64("value", s.state.Value()))
	return s.projector.Apply(s.state.Value())
}

// Decrease is the decrease control.
func (s *Screen) Decrease() (Projection, error) {
	if s.state == nil {
		return Projection{}, ErrNotStarted
	}
	s.state.Decrement()
	s.log.Debug("decrease", zap.Float64("value", s.state.Value()))
	return s.projector.Apply(s.state.Value())
}

func (s *Screen) Current() (Projection, error) {
	if s.state == nil {
		return Projection{}, ErrNotStarted
	}
	return Project(s.state.Value()), nil
}

func (s *Screen) Session() string { return s.session }

// SetDisplay swaps the display sink. The next change is written to it.
func (s *Screen) SetDisplay(display DisplaySetter) {
	s.projector.Display = display
}

// Stop drops the state. Nothing is persisted.
func (s *Screen) Stop() {
	if s.state == nil {
		return
	}
	s.log.Info("screen stopped", zap.Float64("value", s.state.Value()))
	s.state = nil
}
