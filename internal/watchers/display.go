package watchers

import (
	"github.com/hoppxi/brightbar/internal/subscribe"
	"github.com/hoppxi/brightbar/pkg/displayinfo"
	"go.uber.org/zap"
)

const DeviceVar = "BRIGHTBAR_DEVICE"

// DisplayWatcher reports backlight changes made outside brightbar (hotkeys,
// other tools). It never touches the brightness state.
type DisplayWatcher struct {
	Device  string
	Eww     bool
	Logger  *zap.Logger
	Events  func(stop <-chan struct{}) <-chan struct{}
	publish func(module string, data any) error
}

func NewDisplayWatcher(device string, eww bool, logger *zap.Logger) *DisplayWatcher {
	return &DisplayWatcher{
		Device:  device,
		Eww:     eww,
		Logger:  logger,
		Events:  subscribe.DisplayEvents,
		publish: updateEww,
	}
}

func (w *DisplayWatcher) Run(stop <-chan struct{}) {
	w.report()

	events := w.Events(stop)

	for {
		select {
		case <-stop:
			return
		case _, ok := <-events:
			if !ok {
				return
			}
			w.report()
		}
	}
}

func (w *DisplayWatcher) report() {
	info, err := displayinfo.GetDisplayInfo(w.Device)
	if err != nil {
		w.Logger.Debug("backlight unreadable", zap.String("device", w.Device), zap.Error(err))
		return
	}

	w.Logger.Info("backlight level",
		zap.String("device", info.Device),
		zap.Int("raw", info.Raw),
		zap.Int("percent", info.Level),
	)

	if w.Eww {
		if err := w.publish(DeviceVar, info); err != nil {
			w.Logger.Warn("eww update failed", zap.String("var", DeviceVar), zap.Error(err))
		}
	}
}
