package operation

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/hoppxi/brightbar/pkg/displayinfo"
)

func stubCommand(t *testing.T, fail error) *[][]string {
	t.Helper()
	var calls [][]string
	old := runCommand
	runCommand = func(name string, args ...string) error {
		calls = append(calls, append([]string{name}, args...))
		return fail
	}
	t.Cleanup(func() { runCommand = old })
	return &calls
}

func TestNewDisplay(t *testing.T) {
	for _, b := range Backends {
		if _, err := NewDisplay(b, ""); err != nil {
			t.Errorf("NewDisplay(%q) error = %v", b, err)
		}
	}
	if _, err := NewDisplay("xrandr", ""); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("NewDisplay(xrandr) error = %v, want ErrUnknownBackend", err)
	}
}

func TestBrightnessctl(t *testing.T) {
	calls := stubCommand(t, nil)

	d, _ := NewDisplay(BackendBrightnessctl, "")
	if err := d.SetBrightness(0.55); err != nil {
		t.Fatal(err)
	}
	d.Device = "intel_backlight"
	if err := d.SetBrightness(1); err != nil {
		t.Fatal(err)
	}

	want := [][]string{
		{"brightnessctl", "set", "55%"},
		{"brightnessctl", "-d", "intel_backlight", "set", "100%"},
	}
	if !reflect.DeepEqual(*calls, want) {
		t.Errorf("calls = %v, want %v", *calls, want)
	}
}

func TestBrightnessctlFailure(t *testing.T) {
	stubCommand(t, errors.New("exit status 1"))

	d, _ := NewDisplay(BackendBrightnessctl, "")
	err := d.SetBrightness(0.3)
	if err == nil || !strings.Contains(err.Error(), "failed to set brightness") {
		t.Errorf("SetBrightness() error = %v", err)
	}
}

func TestSysfs(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "intel_backlight")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	os.WriteFile(filepath.Join(dir, "brightness"), []byte("0\n"), 0o644)
	os.WriteFile(filepath.Join(dir, "max_brightness"), []byte("19200\n"), 0o644)

	old := displayinfo.SysfsRoot
	displayinfo.SysfsRoot = root
	t.Cleanup(func() { displayinfo.SysfsRoot = old })

	d, _ := NewDisplay(BackendSysfs, "")
	if err := d.SetBrightness(0.55); err != nil {
		t.Fatalf("SetBrightness() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "brightness"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "10560" {
		t.Errorf("brightness = %q, want 10560", data)
	}

	d.Device = "missing"
	if err := d.SetBrightness(0.5); err == nil {
		t.Error("SetBrightness() on missing device should fail")
	}
}

func TestNone(t *testing.T) {
	calls := stubCommand(t, nil)
	d, _ := NewDisplay(BackendNone, "")
	if err := d.SetBrightness(0.7); err != nil {
		t.Fatal(err)
	}
	if len(*calls) != 0 {
		t.Errorf("none backend ran commands: %v", *calls)
	}
}

func TestPercentAndRaw(t *testing.T) {
	tests := []struct {
		value   float64
		percent int
		raw     int
	}{
		{0, 0, 0},
		{0.05, 5, 48},
		{0.5, 50, 480},
		{1, 100, 960},
		{1.2, 100, 960},
		{-1, 0, 0},
	}
	for _, tt := range tests {
		if got := Percent(tt.value); got != tt.percent {
			t.Errorf("Percent(%v) = %d, want %d", tt.value, got, tt.percent)
		}
		if got := Raw(tt.value, 960); got != tt.raw {
			t.Errorf("Raw(%v, 960) = %d, want %d", tt.value, got, tt.raw)
		}
	}
}
