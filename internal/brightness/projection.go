package brightness

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"
)

const (
	MaxLevel     = 32
	LabelCaption = "Progress: "
)

// Projection is what a brightness value looks like to its sinks.
type Projection struct {
	DisplayBrightness float64 `json:"brightness"`
	ProgressLevel     int     `json:"level"`
	Label             string  `json:"label"`
}

// Project maps a brightness value onto the display setting, a progress
// level in [0, MaxLevel] and a label. Out of range input is clamped.
func Project(value float64) Projection {
	v := Clamp(value)
	level := int(math.Floor(v * MaxLevel))
	if level > MaxLevel {
		level = MaxLevel
	}
	return Projection{
		DisplayBrightness: v,
		ProgressLevel:     level,
		Label:             FormatLabel(v),
	}
}

// FormatLabel uses %.2f, which rounds the exact binary value half to even:
// 0.125 formats as "0.12" and 0.375 as "0.38".
func FormatLabel(value float64) string {
	return fmt.Sprintf("%s%.2f", LabelCaption, value)
}

// Projector pushes projections to its three sinks.
type Projector struct {
	Display  DisplaySetter
	Progress ProgressSink
	Text     TextSink
	Logger   *zap.Logger
}

// Apply projects value and writes to every sink unconditionally. A failing
// sink does not stop the remaining ones; all errors are joined.
func (p *Projector) Apply(value float64) (Projection, error) {
	pr := Project(value)
	log := p.logger()

	display, progress, text := p.sinks()

	var errs []error
	if err := display.SetBrightness(pr.DisplayBrightness); err != nil {
		log.Warn("display sink failed", zap.Float64("brightness", pr.DisplayBrightness), zap.Error(err))
		errs = append(errs, fmt.Errorf("display: %w", err))
	}
	if err := progress.SetProgress(pr.ProgressLevel); err != nil {
		log.Warn("progress sink failed", zap.Int("level", pr.ProgressLevel), zap.Error(err))
		errs = append(errs, fmt.Errorf("progress: %w", err))
	}
	if err := text.SetText(pr.Label); err != nil {
		log.Warn("text sink failed", zap.String("label", pr.Label), zap.Error(err))
		errs = append(errs, fmt.Errorf("text: %w", err))
	}

	log.Debug("projection applied",
		zap.Float64("brightness", pr.DisplayBrightness),
		zap.Int("level", pr.ProgressLevel),
		zap.String("label", pr.Label),
	)
	return pr, errors.Join(errs...)
}

func (p *Projector) logger() *zap.Logger {
	if p.Logger == nil {
		return zap.NewNop()
	}
	return p.Logger
}

func (p *Projector) sinks() (DisplaySetter, ProgressSink, TextSink) {
	var (
		display  DisplaySetter = Discard
		progress ProgressSink  = Discard
		text     TextSink      = Discard
	)
	if p.Display != nil {
		display = p.Display
	}
	if p.Progress != nil {
		progress = p.Progress
	}
	if p.Text != nil {
		text = p.Text
	}
	return display, progress, text
}
