package manager

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/hoppxi/brightbar/internal/brightness"
	"github.com/hoppxi/brightbar/pkg/operation"
	"github.com/spf13/viper"
)

const (
	ConfigName = "brightbar.yaml"
	EnvPrefix  = "BRIGHTBAR"
)

type Settings struct {
	Brightness struct {
		Initial float64 `mapstructure:"initial" yaml:"initial"`
		Step    float64 `mapstructure:"step" yaml:"step"`
	} `mapstructure:"brightness" yaml:"brightness"`
	Display struct {
		Backend string `mapstructure:"backend" yaml:"backend"`
		Device  string `mapstructure:"device" yaml:"device"`
	} `mapstructure:"display" yaml:"display"`
	Eww struct {
		Enabled  bool   `mapstructure:"enabled" yaml:"enabled"`
		LevelVar string `mapstructure:"level_var" yaml:"level_var"`
		LabelVar string `mapstructure:"label_var" yaml:"label_var"`
	} `mapstructure:"eww" yaml:"eww"`
	Log struct {
		Level string `mapstructure:"level" yaml:"level"`
		File  string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"log" yaml:"log"`
}

func (s *Settings) Validate() error {
	var errs []error
	if b := s.Brightness.Step; b < brightness.MinStep || b > 1 {
		errs = append(errs, fmt.Errorf("brightness.step %v not in [%v, 1]", b, brightness.MinStep))
	}
	if b := s.Brightness.Initial; b < 0 || b > 1 {
		errs = append(errs, fmt.Errorf("brightness.initial %v not in [0, 1]", b))
	}
	if !slices.Contains(operation.Backends, s.Display.Backend) {
		errs = append(errs, fmt.Errorf("display.backend %q not one of %s", s.Display.Backend, strings.Join(operation.Backends, ", ")))
	}
	if s.Eww.Enabled && (s.Eww.LevelVar == "" || s.Eww.LabelVar == "") {
		errs = append(errs, errors.New("eww.level_var and eww.label_var must be set when eww is enabled"))
	}
	return errors.Join(errs...)
}

func (s *Settings) ScreenConfig() brightness.ScreenConfig {
	return brightness.ScreenConfig{
		Initial: s.Brightness.Initial,
		Step:    s.Brightness.Step,
	}
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("brightness.initial", brightness.DefaultValue)
	v.SetDefault("brightness.step", brightness.DefaultStep)
	v.SetDefault("display.backend", operation.BackendBrightnessctl)
	v.SetDefault("display.device", "")
	v.SetDefault("eww.enabled", false)
	v.SetDefault("eww.level_var", "BRIGHTBAR_LEVEL")
	v.SetDefault("eww.label_var", "BRIGHTBAR_LABEL")
	v.SetDefault("log.level", "")
	v.SetDefault("log.file", "")
}

// ConfigDir is $XDG_CONFIG_HOME/brightbar.
func ConfigDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "brightbar")
	}
	return filepath.Join(configDir, "brightbar")
}

func DefaultConfigPath() string {
	return filepath.Join(ConfigDir(), ConfigName)
}

type ConfigManager struct {
	mu   sync.Mutex
	v    *viper.Viper
	path string
}

var Config = &ConfigManager{}

// NewConfigManager reads path, or the default location when path is empty.
// A missing file is fine, defaults and environment still apply.
func NewConfigManager(path string) *ConfigManager {
	if path == "" {
		path = DefaultConfigPath()
	}

	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &ConfigManager{v: v, path: path}
}

// Init points the global Config at path.
func (c *ConfigManager) Init(path string) {
	n := NewConfigManager(path)
	c.mu.Lock()
	c.v, c.path = n.v, n.path
	c.mu.Unlock()
}

func (c *ConfigManager) Path() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.path
}

// Load reads the file (if present) and returns validated settings.
func (c *ConfigManager) Load() (*Settings, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.v == nil {
		n := NewConfigManager("")
		c.v, c.path = n.v, n.path
	}

	if err := c.v.ReadInConfig(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var s Settings
	if err := c.v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", c.path, err)
	}
	return &s, nil
}

// Watch calls onChange with freshly loaded settings whenever the file
// changes. Invalid edits are reported through onError and ignored.
func (c *ConfigManager) Watch(onChange func(*Settings), onError func(error)) {
	c.mu.Lock()
	v := c.v
	c.mu.Unlock()

	v.OnConfigChange(func(e fsnotify.Event) {
		s, err := c.Load()
		if err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}
		onChange(s)
	})
	v.WatchConfig()
}
