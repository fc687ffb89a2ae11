package probe

import (
	"context"
	"strings"
)

// Services answers service manager queries.
// Every method returns false, never an error, for units that do not exist.
type Services interface {
	IsActive(ctx context.Context, name string) bool
	IsEnabled(ctx context.Context, name string) bool
	IsAvailable(ctx context.Context, name string) bool
}

// Systemctl implements Services with systemctl run through a Runner.
type Systemctl struct {
	Runner Runner
}

// IsActive reports whether the unit is currently running.
func (s *Systemctl) IsActive(ctx context.Context, name string) bool {
	return s.succeeds(ctx, "systemctl is-active --quiet "+Quote(name))
}

// IsEnabled reports whether the unit starts at boot.
func (s *Systemctl) IsEnabled(ctx context.Context, name string) bool {
	return s.succeeds(ctx, "systemctl is-enabled --quiet "+Quote(name))
}

// IsAvailable reports whether a unit file with this name is installed.
func (s *Systemctl) IsAvailable(ctx context.Context, name string) bool {
	res, err := s.Runner.Run(ctx, "systemctl list-unit-files --no-legend --no-pager "+Quote(name))
	if err != nil || !res.OK() {
		return false
	}
	return listsUnit(res.Stdout, name)
}

func (s *Systemctl) succeeds(ctx context.Context, cmdline string) bool {
	res, err := s.Runner.Run(ctx, cmdline)
	return err == nil && res.OK()
}

// listsUnit scans "systemctl list-unit-files" output for name.
// A bare name matches its ".service" unit.
func listsUnit(output, name string) bool {
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == name || fields[0] == name+".service" {
			return true
		}
	}
	return false
}
