package envcheck

import (
	"context"

	"github.com/vertti/clustercheck/pkg/check"
	"github.com/vertti/clustercheck/pkg/probe"
)

// DefaultTimeServices are probed in order; the first available one is checked.
var DefaultTimeServices = []string{"chronyd.service", "ntp.service", "ntpd.service"}

// TimeService verifies a time synchronization service is installed,
// enabled and running.
type TimeService struct {
	Probes     probe.Probes
	Candidates []string
}

func (c *TimeService) Title() string { return "Checking time service" }

// Run executes the time service check.
func (c *TimeService) Run(ctx context.Context) check.Result {
	result := check.New(c.Title())
	svc := c.Probes.Services

	var timekeeper string
	for _, name := range c.Candidates {
		if svc.IsAvailable(ctx, name) {
			timekeeper = name
			break
		}
	}

	if timekeeper == "" {
		return *result.Warn("No NTP service found.")
	}

	result.Infof("%s is available", timekeeper)

	if svc.IsEnabled(ctx, timekeeper) {
		result.Infof("%s is enabled", timekeeper)
	} else {
		result.Warnf("%s is disabled", timekeeper)
	}

	if svc.IsActive(ctx, timekeeper) {
		result.Infof("%s is active", timekeeper)
	} else {
		result.Warnf("%s is not active", timekeeper)
	}

	return result
}
