package clustercheck

import (
	"context"
	"errors"
	"fmt"

	"github.com/vertti/clustercheck/pkg/check"
	"github.com/vertti/clustercheck/pkg/crmmon"
	"github.com/vertti/clustercheck/pkg/probe"
)

const (
	// StonithEnabledCmd queries the stonith-enabled cluster property.
	StonithEnabledCmd = "crm_attribute -t crm_config -n stonith-enabled -q"
	// StonithResourcesCmd lists configured fencing resources.
	StonithResourcesCmd = "crm_mon -r1 | grep '(stonith:.*):'"
	// SBDService must run when an sbd fencing agent is in use.
	SBDService = "sbd"
)

// Fencing verifies fencing is enabled and a fencing resource is running.
type Fencing struct {
	Probes probe.Probes
}

func (c *Fencing) Title() string { return "Checking Stonith/Fence" }

// Run executes the fencing check.
func (c *Fencing) Run(ctx context.Context) check.Result {
	result := check.New(c.Title())

	res, err := c.Probes.Runner.Run(ctx, StonithEnabledCmd)
	switch {
	case errors.Is(err, probe.ErrTimeout):
		result.Error(probe.FailureMessage(StonithEnabledCmd, res, err))
	case err == nil && res.OK() && crmmon.ParseStonithEnabled(res.Stdout):
		result.Info(`stonith-enabled is "true"`)
	default:
		result.Warn("stonith is disabled")
	}

	res, err = c.Probes.Runner.Run(ctx, StonithResourcesCmd)
	if errors.Is(err, probe.ErrTimeout) {
		return *result.Error(probe.FailureMessage(StonithResourcesCmd, res, err))
	}

	var resources []crmmon.StonithResource
	if err == nil && res.OK() {
		resources = crmmon.ParseStonithResources(res.Stdout)
	}
	if len(resources) == 0 {
		return *result.Warn("No stonith resource configured!")
	}

	useSBD := false
	for _, r := range resources {
		common := fmt.Sprintf("stonith resource %s(%s)", r.Name, r.Agent)
		result.Infof("%s is configured", common)
		if r.Started() {
			result.Infof("%s is %s", common, r.State)
		} else {
			result.Warnf("%s is %s", common, r.State)
		}
		if r.UsesSBD() {
			useSBD = true
		}
	}

	if useSBD {
		if c.Probes.Services.IsActive(ctx, SBDService) {
			result.Infof("%s service is running", SBDService)
		} else {
			result.Warnf("%s service is not running!", SBDService)
		}
	}

	return result
}
