package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hoppxi/brightbar/internal/logging"
	"github.com/hoppxi/brightbar/internal/manager"
	"github.com/spf13/cobra"
)

var Version = "0.1.0"

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:     "brightbar",
	Version: Version,
	Short:   "Step display brightness up and down",
	Long:    "brightbar moves the display brightness in fixed steps and mirrors it on a 32 level bar",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		manager.Config.Init(configPath)
		return nil
	},
	SilenceUsage: true,
}

func Execute() {
	defer logging.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// loadSettings reads the config and sets up logging from it. The
// --log-level flag wins over the file. fallbackLog is used when log.file is
// unset; empty means stdout.
func loadSettings(fallbackLog string) (*manager.Settings, error) {
	settings, err := manager.Config.Load()
	if err != nil {
		return nil, err
	}

	level := settings.Log.Level
	if logLevel != "" {
		level = logLevel
	}
	output := settings.Log.File
	if output == "" && fallbackLog != "" {
		if err := os.MkdirAll(filepath.Dir(fallbackLog), 0o755); err != nil {
			return nil, err
		}
		output = fallbackLog
	}
	if err := logging.Initialize(level, output); err != nil {
		return nil, err
	}
	return settings, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/brightbar/brightbar.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(upCmd)
	rootCmd.AddCommand(downCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(killCmd)
	rootCmd.AddCommand(reloadCmd)
	rootCmd.AddCommand(displayCmd)
	rootCmd.AddCommand(generateConfigCmd)
}
