package operation

import (
	"errors"
	"fmt"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/godbus/dbus/v5"
	"github.com/hoppxi/brightbar/pkg/displayinfo"
)

const (
	BackendBrightnessctl = "brightnessctl"
	BackendSysfs         = "sysfs"
	BackendLogind        = "logind"
	BackendNone          = "none"
)

var Backends = []string{BackendBrightnessctl, BackendSysfs, BackendLogind, BackendNone}

var ErrUnknownBackend = errors.New("unknown display backend")

// runCommand is swapped in tests.
var runCommand = func(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

// Display writes a brightness in [0, 1] to the backlight through one of the
// supported backends.
type Display struct {
	Backend string
	Device  string
}

func NewDisplay(backend, device string) (*Display, error) {
	switch backend {
	case BackendBrightnessctl, BackendSysfs, BackendLogind, BackendNone:
		return &Display{Backend: backend, Device: device}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
}

func (d *Display) SetBrightness(value float64) error {
	switch d.Backend {
	case BackendBrightnessctl:
		return d.setBrightnessctl(value)
	case BackendSysfs:
		return d.setSysfs(value)
	case BackendLogind:
		return d.setLogind(value)
	case BackendNone:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownBackend, d.Backend)
}

// Percent converts a brightness to the 0-100 scale brightnessctl expects.
func Percent(value float64) int {
	return int(math.Round(clamp(value) * 100))
}

// Raw converts a brightness to a raw device level.
func Raw(value float64, maxBrightness int) int {
	return int(math.Round(clamp(value) * float64(maxBrightness)))
}

func (d *Display) setBrightnessctl(value float64) error {
	args := []string{}
	if d.Device != "" {
		args = append(args, "-d", d.Device)
	}
	args = append(args, "set", strconv.Itoa(Percent(value))+"%")

	if err := runCommand("brightnessctl", args...); err != nil {
		return fmt.Errorf("failed to set brightness: %w", err)
	}
	return nil
}

func (d *Display) setSysfs(value float64) error {
	path, err := displayinfo.DevicePath(d.Device)
	if err != nil {
		return err
	}
	maxVal, err := displayinfo.MaxBrightness(filepath.Base(path))
	if err != nil {
		return err
	}

	raw := strconv.Itoa(Raw(value, maxVal))
	if err := os.WriteFile(filepath.Join(path, "brightness"), []byte(raw), 0o644); err != nil {
		return fmt.Errorf("failed to set brightness: %w", err)
	}
	return nil
}

// setLogind goes through systemd-logind so no write access to sysfs is
// needed.
func (d *Display) setLogind(value float64) error {
	path, err := displayinfo.DevicePath(d.Device)
	if err != nil {
		return err
	}
	device := filepath.Base(path)
	maxVal, err := displayinfo.MaxBrightness(device)
	if err != nil {
		return err
	}

	conn, err := dbus.ConnectSystemBus()
	if err != nil {
		return err
	}
	defer conn.Close()

	obj := conn.Object("org.freedesktop.login1", "/org/freedesktop/login1/session/auto")
	call := obj.Call("org.freedesktop.login1.Session.SetBrightness", 0, "backlight", device, uint32(Raw(value, maxVal)))
	if call.Err != nil {
		return fmt.Errorf("failed to set brightness: %w", call.Err)
	}
	return nil
}

func clamp(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
