package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hoppxi/brightbar/internal/brightness"
	"github.com/hoppxi/brightbar/internal/logging"
	"github.com/hoppxi/brightbar/internal/manager"
	"github.com/hoppxi/brightbar/internal/watchers"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Run the brightness daemon for widget buttons",
	RunE: func(cmd *cobra.Command, args []string) error {
		if conn, err := manager.Manage.ConnectIPC(); err == nil {
			conn.Close()
			fmt.Println("Daemon already running.")
			return nil
		}

		settings, err := loadSettings("")
		if err != nil {
			return err
		}

		display, err := buildDisplay(settings)
		if err != nil {
			return err
		}
		progress, text := buildWidgetSinks(settings)

		screen := brightness.NewScreen(display, progress, text, logging.Named("screen"))
		if _, err := screen.OnStart(settings.ScreenConfig()); err != nil {
			if _, notStarted := screen.Current(); notStarted != nil {
				return err
			}
			logging.Warn("initial projection incomplete", zap.Error(err))
		}
		defer screen.Stop()

		manager.Manage.Attach(screen)
		if err := manager.Manage.Listen(); err != nil {
			return err
		}
		go manager.Manage.Serve()

		dw := watchers.NewDisplayWatcher(settings.Display.Device, settings.Eww.Enabled, logging.Named("backlight"))
		manager.Manage.StartWatcher(dw.Run)

		manager.Config.Watch(func(s *manager.Settings) {
			d, err := buildDisplay(s)
			if err != nil {
				logging.Warn("config reload rejected", zap.Error(err))
				return
			}
			manager.Manage.SetDisplay(d)
			logging.Info("display backend reloaded",
				zap.String("backend", s.Display.Backend),
				zap.String("device", s.Display.Device),
			)
		}, func(err error) {
			logging.Warn("config reload rejected", zap.Error(err))
		})

		fmt.Println("Daemon started. Press Ctrl+C to stop.")

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		select {
		case <-sigChan:
			fmt.Println("\nReceived shutdown signal, stopping...")
		case <-manager.Manage.Done():
		}

		manager.Manage.Shutdown()
		manager.Manage.StopAll()
		return nil
	},
}
