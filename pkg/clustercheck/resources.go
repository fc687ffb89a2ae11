package clustercheck

import (
	"context"

	"github.com/vertti/clustercheck/pkg/check"
	"github.com/vertti/clustercheck/pkg/crmmon"
	"github.com/vertti/clustercheck/pkg/probe"
)

const (
	stoppedFilter = `awk '` + unbullet + ` $3=="Stopped"||$0~/FAILED/{print $0}' | wc -l`
	startedFilter = `awk '` + unbullet + ` $3=="Started"{print $0}' | wc -l`

	// StoppedResourcesCmd counts stopped or failed resources.
	StoppedResourcesCmd = StatusCmd + " | " + stoppedFilter
	// StartedResourcesCmd counts started resources.
	StartedResourcesCmd = StatusCmd + " | " + startedFilter
)

// Resources reports how many resources are started and stopped.
type Resources struct {
	Probes probe.Probes
	Status string // status source (default: crm_mon -r1)
}

func (c *Resources) Title() string { return "Checking resources" }

// Run executes the resource status check.
func (c *Resources) Run(ctx context.Context) check.Result {
	result := check.New(c.Title())
	c.count(ctx, &result, pipe(c.Status, stoppedFilter), "Stopped/FAILED resources")
	c.count(ctx, &result, pipe(c.Status, startedFilter), "Started resources")
	return result
}

func (c *Resources) count(ctx context.Context, result *check.Result, cmdline, label string) {
	res, err := c.Probes.Runner.Run(ctx, cmdline)
	if err != nil || !res.OK() {
		result.Error(probe.FailureMessage(cmdline, res, err))
		return
	}
	if n, ok := crmmon.ParseCount(res.Stdout); ok {
		result.Infof("%s: %d", label, n)
		return
	}
	result.Warnf("%s: unexpected output %q", label, res.Stdout)
}
