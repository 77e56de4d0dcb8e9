package cmd

import (
	"os"
	"path/filepath"

	"github.com/hoppxi/brightbar/internal/logging"
	"github.com/hoppxi/brightbar/internal/ui"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive brightness screen",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(tuiLogPath())
		if err != nil {
			return err
		}

		display, err := buildDisplay(settings)
		if err != nil {
			return err
		}

		return ui.Run(display, settings.ScreenConfig(), logging.Named("screen"))
	},
}

// tuiLogPath keeps log output off the terminal the screen is drawn on.
func tuiLogPath() string {
	return filepath.Join(os.TempDir(), "brightbar", "tui.log")
}
