package manager

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/hoppxi/brightbar/internal/brightness"
)

func startedScreen(t *testing.T, display brightness.DisplaySetter) *brightness.Screen {
	t.Helper()
	s := brightness.NewScreen(display, nil, nil, nil)
	if _, err := s.OnStart(brightness.DefaultScreenConfig()); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestExecute(t *testing.T) {
	m := NewAppManager()
	if got := m.Execute(CmdUp); got != "ERR: no screen attached" {
		t.Errorf("Execute(UP) without screen = %q", got)
	}

	m.Attach(startedScreen(t, nil))

	tests := []struct {
		cmd  string
		want string
	}{
		{CmdStatus, "OK: 0.50 16 Progress: 0.50"},
		{CmdUp, "OK: 0.55 17 Progress: 0.55"},
		{CmdDown, "OK: 0.50 16 Progress: 0.50"},
		{CmdDown, "OK: 0.45 14 Progress: 0.45"},
		{"SIDEWAYS", "ERR: unknown command"},
	}
	for _, tt := range tests {
		if got := m.Execute(tt.cmd); got != tt.want {
			t.Errorf("Execute(%q) = %q, want %q", tt.cmd, got, tt.want)
		}
	}
}

func TestExecuteSinkError(t *testing.T) {
	m := NewAppManager()
	calls := 0
	m.Attach(startedScreen(t, brightness.DisplayFunc(func(float64) error {
		calls++
		if calls > 1 {
			return errors.New("permission denied")
		}
		return nil
	})))

	got := m.Execute(CmdUp)
	if !strings.HasPrefix(got, "ERR: display: permission denied") {
		t.Errorf("Execute(UP) = %q", got)
	}
	if got := m.Execute(CmdStatus); got != "OK: 0.55 17 Progress: 0.55" {
		t.Errorf("state should still move, STATUS = %q", got)
	}
}

func TestSetDisplay(t *testing.T) {
	m := NewAppManager()
	m.Attach(startedScreen(t, nil))

	var got []float64
	m.SetDisplay(brightness.DisplayFunc(func(v float64) error {
		got = append(got, v)
		return nil
	}))
	m.Execute(CmdUp)
	if len(got) != 1 || got[0] != 0.55 {
		t.Errorf("new display got %v, want [0.55]", got)
	}
}

func TestIPCRoundTrip(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())

	m := NewAppManager()
	m.Attach(startedScreen(t, nil))
	if err := m.Listen(); err != nil {
		t.Fatal(err)
	}
	go m.Serve()

	for i := 0; i < 20; i++ {
		resp, err := m.SendIPCCommand(CmdUp)
		if err != nil {
			t.Fatalf("SendIPCCommand(UP) error = %v", err)
		}
		if !strings.HasPrefix(resp, "OK: ") {
			t.Fatalf("UP response = %q", resp)
		}
	}

	resp, err := m.SendIPCCommand(CmdStatus)
	if err != nil {
		t.Fatal(err)
	}
	if resp != "OK: 1.00 32 Progress: 1.00" {
		t.Errorf("STATUS = %q, want saturated", resp)
	}

	resp, err = m.SendIPCCommand(CmdStop)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(resp, "Shutting down") {
		t.Errorf("STOP = %q", resp)
	}

	select {
	case <-m.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("Done not closed after STOP")
	}

	if _, err := m.ConnectIPC(); err == nil {
		t.Error("socket still accepting after STOP")
	}
}

func TestStartWatcherRestartsAndStops(t *testing.T) {
	m := NewAppManager()
	runs := make(chan struct{}, 8)

	m.StartWatcher(func(stop <-chan struct{}) {
		runs <- struct{}{}
		<-stop
	})

	select {
	case <-runs:
	case <-time.After(time.Second):
		t.Fatal("watcher never ran")
	}

	done := make(chan struct{})
	go func() {
		m.StopAll()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("StopAll did not return")
	}
}
