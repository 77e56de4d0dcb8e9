package manager

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/hoppxi/brightbar/internal/brightness"
	"github.com/hoppxi/brightbar/internal/logging"
	"go.uber.org/zap"
)

// IPC commands understood by the daemon.
const (
	CmdUp     = "UP"
	CmdDown   = "DOWN"
	CmdStatus = "STATUS"
	CmdStop   = "STOP"
)

type AppManager struct {
	mu       sync.Mutex
	screen   *brightness.Screen
	stops    []chan struct{}
	wg       sync.WaitGroup
	listener net.Listener
	done     chan struct{}
	doneOnce sync.Once
}

var Manage = NewAppManager()

func NewAppManager() *AppManager {
	return &AppManager{done: make(chan struct{})}
}

func SocketPath() string {
	var baseDir string
	if runtimeDir := os.Getenv("XDG_RUNTIME_DIR"); runtimeDir != "" {
		baseDir = runtimeDir
	} else {
		baseDir = os.TempDir()
	}

	socketDir := filepath.Join(baseDir, "brightbar")
	if err := os.MkdirAll(socketDir, 0o755); err != nil {
		return filepath.Join(os.TempDir(), "brightbar-socket.sock")
	}
	return filepath.Join(socketDir, "socket.sock")
}

// Attach hands the started screen to the daemon.
func (m *AppManager) Attach(screen *brightness.Screen) {
	m.mu.Lock()
	m.screen = screen
	m.mu.Unlock()
}

// SetDisplay swaps the display sink of the attached screen.
func (m *AppManager) SetDisplay(display brightness.DisplaySetter) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.screen != nil {
		m.screen.SetDisplay(display)
	}
}

// Done is closed once the daemon received STOP or Shutdown was called.
func (m *AppManager) Done() <-chan struct{} {
	return m.done
}

// Listen binds the unix socket. Serve must be called afterwards.
func (m *AppManager) Listen() error {
	socketPath := SocketPath()
	_ = os.Remove(socketPath)

	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		return fmt.Errorf("error listening on socket: %w", err)
	}

	m.mu.Lock()
	m.listener = listener
	m.mu.Unlock()

	logging.Info("IPC server listening", zap.String("socket", socketPath))
	return nil
}

// Serve accepts connections one at a time, so every button press runs to
// completion before the next one is read.
func (m *AppManager) Serve() {
	m.mu.Lock()
	listener := m.listener
	m.mu.Unlock()
	if listener == nil {
		return
	}
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			continue
		}
		m.handleConnection(conn)
	}
}

func (m *AppManager) handleConnection(conn net.Conn) {
	defer conn.Close()
	_ = conn.SetDeadline(time.Now().Add(2 * time.Second))

	buf := make([]byte, 1024)
	n, err := conn.Read(buf)
	if err != nil {
		return
	}

	command := strings.TrimSpace(string(buf[:n]))
	_, _ = conn.Write([]byte(m.Execute(command)))

	if command == CmdStop {
		m.Shutdown()
	}
}

// Execute runs one IPC command against the attached screen and returns the
// reply line.
func (m *AppManager) Execute(command string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if command == CmdStop {
		logging.Info("received STOP via IPC, shutting down")
		return "OK: Shutting down."
	}

	if m.screen == nil {
		return "ERR: no screen attached"
	}

	var (
		pr  brightness.Projection
		err error
	)
	switch command {
	case CmdUp:
		pr, err = m.screen.Increase()
	case CmdDown:
		pr, err = m.screen.Decrease()
	case CmdStatus:
		pr, err = m.screen.Current()
	default:
		return "ERR: unknown command"
	}

	if err != nil {
		return "ERR: " + strings.ReplaceAll(err.Error(), "\n", "; ")
	}
	return FormatReply(pr)
}

func FormatReply(pr brightness.Projection) string {
	return fmt.Sprintf("OK: %.2f %d %s", pr.DisplayBrightness, pr.ProgressLevel, pr.Label)
}

func (m *AppManager) StartWatcher(f func(stop <-chan struct{})) {
	stop := make(chan struct{})
	m.mu.Lock()
	m.stops = append(m.stops, stop)
	m.mu.Unlock()

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		for {
			func() {
				defer func() {
					if r := recover(); r != nil {
						logging.Error("watcher panic", zap.Any("panic", r))
					}
				}()
				f(stop)
			}()

			select {
			case <-stop:
				return
			case <-time.After(2 * time.Second):
				logging.Info("restarting watcher")
			}
		}
	}()
}

// StopAll stops the watchers and waits for them to return.
func (m *AppManager) StopAll() {
	m.mu.Lock()
	stops := m.stops
	m.stops = nil
	m.mu.Unlock()

	for _, s := range stops {
		close(s)
	}
	m.wg.Wait()
}

// Shutdown closes the listener and releases Done. Safe to call twice.
func (m *AppManager) Shutdown() {
	m.doneOnce.Do(func() {
		m.mu.Lock()
		if m.listener != nil {
			_ = m.listener.Close()
		}
		m.mu.Unlock()
		close(m.done)
	})
}

func (m *AppManager) ConnectIPC() (net.Conn, error) {
	return net.DialTimeout("unix", SocketPath(), 500*time.Millisecond)
}

func (m *AppManager) SendIPCCommand(cmd string) (string, error) {
	conn, err := m.ConnectIPC()
	if err != nil {
		return "", err
	}
	defer conn.Close()

	if _, err := conn.Write([]byte(cmd)); err != nil {
		return "", err
	}

	buf := make([]byte, 1024)
	n, err := conn.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}

	return string(buf[:n]), nil
}
