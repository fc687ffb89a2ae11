package probe

import (
	"bufio"
	"context"
	"io"
	"net"
	"os"
	"strings"
)

const (
	// DefaultSBDConfig is where SBD keeps its watchdog setting.
	DefaultSBDConfig = "/etc/sysconfig/sbd"
	// DefaultWatchdogDevice is used when SBD does not name one.
	DefaultWatchdogDevice = "/dev/watchdog"
)

// Host abstracts host identity and name resolution for testability.
type Host interface {
	Hostname() (string, error)
	Resolve(ctx context.Context, name string) error
	// WatchdogDevice is best effort; ok is false when none is found.
	WatchdogDevice() (path string, ok bool)
}

// RealHost queries the running system.
type RealHost struct {
	Resolver  *net.Resolver // default: net.DefaultResolver
	SBDConfig string        // default: /etc/sysconfig/sbd
}

// Hostname returns the node name of the local host.
func (h *RealHost) Hostname() (string, error) {
	return os.Hostname()
}

// Resolve looks up name through the system resolver (hosts file and DNS).
func (h *RealHost) Resolve(ctx context.Context, name string) error {
	r := h.Resolver
	if r == nil {
		r = net.DefaultResolver
	}
	_, err := r.LookupHost(ctx, name)
	return err
}

// WatchdogDevice returns the device configured for SBD, falling back to
// /dev/watchdog if it exists.
func (h *RealHost) WatchdogDevice() (string, bool) {
	cfg := h.SBDConfig
	if cfg == "" {
		cfg = DefaultSBDConfig
	}
	if f, err := os.Open(cfg); err == nil { //nolint:gosec // fixed configuration path
		dev := ParseSBDWatchdog(f)
		_ = f.Close()
		if dev != "" {
			return dev, true
		}
	}
	if _, err := os.Stat(DefaultWatchdogDevice); err == nil {
		return DefaultWatchdogDevice, true
	}
	return "", false
}

// ParseSBDWatchdog extracts SBD_WATCHDOG_DEV from an sbd sysconfig file.
// It returns "" when the setting is absent or empty.
func ParseSBDWatchdog(r io.Reader) string {
	dev := ""
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found || strings.TrimSpace(key) != "SBD_WATCHDOG_DEV" {
			continue
		}
		dev = strings.Trim(strings.TrimSpace(value), `"'`)
	}
	return dev
}
