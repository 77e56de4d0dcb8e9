package subscribe

import (
	"errors"
	"strings"
	"syscall"

	"github.com/hoppxi/brightbar/internal/logging"
	"go.uber.org/zap"
)

// IsBacklightChange reports whether a kobject uevent describes a backlight
// level change.
func IsBacklightChange(msg string) bool {
	return strings.Contains(msg, "SUBSYSTEM=backlight") && strings.Contains(msg, "ACTION=change")
}

// DisplayEvents emits on every backlight change uevent until stop is closed.
func DisplayEvents(stop <-chan struct{}) <-chan struct{} {
	events := make(chan struct{}, 1)

	go func() {
		defer close(events)

		fd, err := syscall.Socket(syscall.AF_NETLINK, syscall.SOCK_RAW, syscall.NETLINK_KOBJECT_UEVENT)
		if err != nil {
			logging.Warn("subscribe: failed to open netlink socket", zap.Error(err))
			return
		}
		defer syscall.Close(fd)

		addr := &syscall.SockaddrNetlink{
			Family: syscall.AF_NETLINK,
			Groups: 1, // listen to broadcast uevents
		}
		if err := syscall.Bind(fd, addr); err != nil {
			logging.Warn("subscribe: failed to bind netlink socket", zap.Error(err))
			return
		}

		// wake up once a second to notice stop
		tv := syscall.Timeval{Sec: 1}
		_ = syscall.SetsockoptTimeval(fd, syscall.SOL_SOCKET, syscall.SO_RCVTIMEO, &tv)

		buf := make([]byte, 4096)
		for {
			select {
			case <-stop:
				return
			default:
			}

			n, _, err := syscall.Recvfrom(fd, buf, 0)
			if err != nil {
				if errors.Is(err, syscall.EAGAIN) || errors.Is(err, syscall.EINTR) {
					continue
				}
				logging.Debug("subscribe: netlink recv error", zap.Error(err))
				continue
			}

			if IsBacklightChange(string(buf[:n])) {
				select {
				case events <- struct{}{}:
				default:
				}
			}
		}
	}()

	return events
}
