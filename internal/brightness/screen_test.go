package brightness

import (
	"errors"
	"testing"
)

func TestScreenNotStarted(t *testing.T) {
	s := NewScreen(nil, nil, nil, nil)
	if _, err := s.Increase(); !errors.Is(err, ErrNotStarted) {
		t.Errorf("Increase() error = %v, want ErrNotStarted", err)
	}
	if _, err := s.Decrease(); !errors.Is(err, ErrNotStarted) {
		t.Errorf("Decrease() error = %v, want ErrNotStarted", err)
	}
	if _, err := s.Current(); !errors.Is(err, ErrNotStarted) {
		t.Errorf("Current() error = %v, want ErrNotStarted", err)
	}
}

func TestScreenOnStartAppliesInitialProjection(t *testing.T) {
	rec := &recorder{}
	s := NewScreen(rec, rec, rec, nil)

	pr, err := s.OnStart(DefaultScreenConfig())
	if err != nil {
		t.Fatalf("OnStart() error = %v", err)
	}
	if pr.ProgressLevel != 16 || pr.Label != "Progress: 0.50" || pr.DisplayBrightness != 0.5 {
		t.Errorf("OnStart() = %+v", pr)
	}
	if len(rec.calls) != 3 {
		t.Errorf("sinks called %d times, want 3", len(rec.calls))
	}
	if s.Session() == "" {
		t.Error("Session() is empty after OnStart")
	}
}

func TestScreenOnStartInvalidStep(t *testing.T) {
	rec := &recorder{}
	s := NewScreen(rec, rec, rec, nil)
	if _, err := s.OnStart(ScreenConfig{Initial: 0.5, Step: 0}); !errors.Is(err, ErrInvalidStep) {
		t.Fatalf("OnStart() error = %v, want ErrInvalidStep", err)
	}
	if len(rec.calls) != 0 {
		t.Errorf("sinks called on failed start: %v", rec.calls)
	}
}

func TestScreenScenarios(t *testing.T) {
	tests := []struct {
		name      string
		initial   float64
		presses   int
		up        bool
		wantValue float64
		wantLevel int
		wantLabel string
	}{
		{"one increment from default", 0.5, 1, true, 0.55, 17, "Progress: 0.55"},
		{"increment clamps at ceiling", 0.98, 1, true, 1, 32, "Progress: 1.00"},
		{"decrement clamps at floor", 0.02, 1, false, 0, 0, "Progress: 0.00"},
		{"twenty increments saturate", 0.5, 20, true, 1, 32, "Progress: 1.00"},
		{"one decrement from default", 0.5, 1, false, 0.45, 14, "Progress: 0.45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			s := NewScreen(rec, rec, rec, nil)
			if _, err := s.OnStart(ScreenConfig{Initial: tt.initial, Step: DefaultStep}); err != nil {
				t.Fatal(err)
			}

			var pr Projection
			var err error
			for i := 0; i < tt.presses; i++ {
				if tt.up {
					pr, err = s.Increase()
				} else {
					pr, err = s.Decrease()
				}
				if err != nil {
					t.Fatal(err)
				}
			}

			if pr.DisplayBrightness != tt.wantValue {
				t.Errorf("DisplayBrightness = %v, want %v", pr.DisplayBrightness, tt.wantValue)
			}
			if pr.ProgressLevel != tt.wantLevel {
				t.Errorf("ProgressLevel = %d, want %d", pr.ProgressLevel, tt.wantLevel)
			}
			if pr.Label != tt.wantLabel {
				t.Errorf("Label = %q, want %q", pr.Label, tt.wantLabel)
			}

			// one push per sink for start plus one per press
			if want := 3 * (tt.presses + 1); len(rec.calls) != want {
				t.Errorf("sink calls = %d, want %d", len(rec.calls), want)
			}
			last := len(rec.levels) - 1
			if rec.levels[last] != tt.wantLevel || rec.labels[last] != tt.wantLabel {
				t.Errorf("last pushes = %d %q", rec.levels[last], rec.labels[last])
			}
		})
	}
}

func TestScreenSetDisplay(t *testing.T) {
	first, second := &recorder{}, &recorder{}
	s := NewScreen(first, nil, nil, nil)
	if _, err := s.OnStart(DefaultScreenConfig()); err != nil {
		t.Fatal(err)
	}

	s.SetDisplay(second)
	if _, err := s.Increase(); err != nil {
		t.Fatal(err)
	}

	if len(first.brightness) != 1 {
		t.Errorf("old display got %d writes, want 1", len(first.brightness))
	}
	if len(second.brightness) != 1 || second.brightness[0] != 0.55 {
		t.Errorf("new display writes = %v, want [0.55]", second.brightness)
	}
}

func TestScreenStop(t *testing.T) {
	s := NewScreen(nil, nil, nil, nil)
	if _, err := s.OnStart(DefaultScreenConfig()); err != nil {
		t.Fatal(err)
	}
	s.Stop()
	if _, err := s.Increase(); !errors.Is(err, ErrNotStarted) {
		t.Errorf("Increase() after Stop error = %v, want ErrNotStarted", err)
	}
	s.Stop()
}

func TestScreenSinkErrorStillMovesState(t *testing.T) {
	rec := &recorder{failOn: "progress"}
	s := NewScreen(rec, rec, rec, nil)
	if _, err := s.OnStart(DefaultScreenConfig()); err == nil {
		t.Fatal("OnStart() error = nil, want progress error")
	}
	pr, err := s.Increase()
	if err == nil {
		t.Fatal("Increase() error = nil, want progress error")
	}
	if pr.DisplayBrightness != 0.55 {
		t.Errorf("DisplayBrightness = %v, want 0.55", pr.DisplayBrightness)
	}
}
