package cmd

import (
	"github.com/hoppxi/brightbar/internal/brightness"
	"github.com/hoppxi/brightbar/internal/manager"
	"github.com/hoppxi/brightbar/internal/watchers"
	"github.com/hoppxi/brightbar/pkg/operation"
)

func buildDisplay(s *manager.Settings) (brightness.DisplaySetter, error) {
	return operation.NewDisplay(s.Display.Backend, s.Display.Device)
}

// buildWidgetSinks returns the eww sinks when enabled, discarding sinks
// otherwise.
func buildWidgetSinks(s *manager.Settings) (brightness.ProgressSink, brightness.TextSink) {
	if !s.Eww.Enabled {
		return brightness.Discard, brightness.Discard
	}
	eww := &watchers.EwwSink{LevelVar: s.Eww.LevelVar, LabelVar: s.Eww.LabelVar}
	return eww, eww
}
