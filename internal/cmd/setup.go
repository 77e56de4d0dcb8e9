package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/hoppxi/brightbar/internal/brightness"
	"github.com/hoppxi/brightbar/internal/manager"
	"github.com/hoppxi/brightbar/pkg/operation"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var generateConfigCmd = &cobra.Command{
	Use:   "generate-config",
	Short: "Write brightbar.yaml interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		reader := bufio.NewReader(os.Stdin)
		path := manager.Config.Path()

		if _, err := os.Stat(path); !os.IsNotExist(err) {
			if !confirm(reader, os.Stdout, path+" already exists. Overwrite with new settings?") {
				return nil
			}
		}

		conf := promptSettings(reader, os.Stdout)
		if err := writeSettings(conf, path); err != nil {
			return err
		}
		fmt.Println("Config written to", path)
		return nil
	},
}

func promptSettings(r *bufio.Reader, w io.Writer) *manager.Settings {
	conf := &manager.Settings{}

	conf.Brightness.Initial = promptFloat(r, w, "Initial brightness (0-1)", brightness.DefaultValue)
	conf.Brightness.Step = promptFloat(r, w, "Step per press (0-1]", brightness.DefaultStep)

	backend := prompt(r, w, "Display backend ("+strings.Join(operation.Backends, "/")+")", operation.BackendBrightnessctl)
	if !slices.Contains(operation.Backends, backend) {
		fmt.Fprintf(w, "Unknown backend %q, using %s\n", backend, operation.BackendBrightnessctl)
		backend = operation.BackendBrightnessctl
	}
	conf.Display.Backend = backend
	conf.Display.Device = prompt(r, w, "Backlight device (empty for first)", "")

	conf.Eww.Enabled = confirm(r, w, "Publish level and label to eww?")
	conf.Eww.LevelVar = prompt(r, w, "eww level variable", "BRIGHTBAR_LEVEL")
	conf.Eww.LabelVar = prompt(r, w, "eww label variable", "BRIGHTBAR_LABEL")

	return conf
}

func writeSettings(conf *manager.Settings, path string) error {
	if err := conf.Validate(); err != nil {
		return err
	}
	d, err := yaml.Marshal(conf)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, d, 0o644)
}

func prompt(r *bufio.Reader, w io.Writer, label, defaultValue string) string {
	fmt.Fprintf(w, "%s [%s]: ", label, defaultValue)
	input, _ := r.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return defaultValue
	}
	return input
}

func promptFloat(r *bufio.Reader, w io.Writer, label string, defaultValue float64) float64 {
	for {
		input := prompt(r, w, label, strconv.FormatFloat(defaultValue, 'f', -1, 64))
		v, err := strconv.ParseFloat(input, 64)
		if err == nil {
			return v
		}
		fmt.Fprintf(w, "Not a number: %q\n", input)
		if _, err := r.Peek(1); err != nil {
			return defaultValue
		}
	}
}

func confirm(r *bufio.Reader, w io.Writer, message string) bool {
	fmt.Fprintf(w, "%s (y/N): ", message)
	input, _ := r.ReadString('\n')
	input = strings.ToLower(strings.TrimSpace(input))
	return input == "y" || input == "yes"
}
