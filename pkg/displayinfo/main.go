package displayinfo

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// SysfsRoot is where backlight devices live.
var SysfsRoot = "/sys/class/backlight"

var ErrNoDevice = errors.New("no backlight devices found")

type DisplayInfo struct {
	Device     string  `json:"device"`
	Raw        int     `json:"raw"`
	Max        int     `json:"max"`
	Level      int     `json:"level"`
	Brightness float64 `json:"brightness"`
}

func readInt(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	s := strings.TrimSpace(string(data))
	return strconv.Atoi(s)
}

// Devices lists backlight device names, sorted.
func Devices() ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(SysfsRoot, "*"))
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(paths))
	for _, p := range paths {
		names = append(names, filepath.Base(p))
	}
	sort.Strings(names)
	return names, nil
}

// DevicePath resolves device to its sysfs directory. An empty name picks
// the first device.
func DevicePath(device string) (string, error) {
	if device == "" {
		names, err := Devices()
		if err != nil {
			return "", err
		}
		if len(names) == 0 {
			return "", ErrNoDevice
		}
		device = names[0]
	}

	path := filepath.Join(SysfsRoot, device)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("backlight %q: %w", device, err)
	}
	return path, nil
}

// MaxBrightness reads max_brightness for device.
func MaxBrightness(device string) (int, error) {
	path, err := DevicePath(device)
	if err != nil {
		return 0, err
	}
	maxVal, err := readInt(filepath.Join(path, "max_brightness"))
	if err != nil {
		return 0, err
	}
	if maxVal <= 0 {
		return 0, errors.New("invalid max_brightness value")
	}
	return maxVal, nil
}

func GetDisplayInfo(device string) (*DisplayInfo, error) {
	path, err := DevicePath(device)
	if err != nil {
		return nil, err
	}

	current, err := readInt(filepath.Join(path, "brightness"))
	if err != nil {
		return nil, err
	}

	maxVal, err := readInt(filepath.Join(path, "max_brightness"))
	if err != nil {
		return nil, err
	}

	if maxVal <= 0 {
		return nil, errors.New("invalid max_brightness value")
	}

	ratio := float64(current) / float64(maxVal)
	if ratio < 0 {
		ratio = 0
	} else if ratio > 1 {
		ratio = 1
	}

	return &DisplayInfo{
		Device:     filepath.Base(path),
		Raw:        current,
		Max:        maxVal,
		Level:      int(math.Round(ratio * 100)),
		Brightness: ratio,
	}, nil
}

func GetDisplayInfoJSON(device string) ([]byte, error) {
	info, err := GetDisplayInfo(device)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(info, "", "  ")
}
