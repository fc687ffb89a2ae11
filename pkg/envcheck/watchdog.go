package envcheck

import (
	"context"
	"errors"

	"github.com/vertti/clustercheck/pkg/check"
	"github.com/vertti/clustercheck/pkg/probe"
)

// WatchdogModuleCmd lists loaded kernel modules that look like watchdog drivers.
const WatchdogModuleCmd = `lsmod | grep -E "(wd|dog)"`

// Watchdog verifies a watchdog driver is loaded, which SBD fencing needs.
type Watchdog struct {
	Probes probe.Probes
}

func (c *Watchdog) Title() string { return "Checking watchdog" }

// Run executes the watchdog check.
func (c *Watchdog) Run(ctx context.Context) check.Result {
	result := check.New(c.Title())

	if dev, ok := c.Probes.Host.WatchdogDevice(); ok {
		result.Infof("Watchdog device: %s", dev)
	}

	res, err := c.Probes.Runner.Run(ctx, WatchdogModuleCmd)
	switch {
	case errors.Is(err, probe.ErrTimeout):
		result.Error(probe.FailureMessage(WatchdogModuleCmd, res, err))
	case err != nil || !res.OK():
		result.Warn("Watchdog device must be configured if want to use SBD!")
	}
	return result
}
