package clustercheck

import (
	"context"

	"github.com/vertti/clustercheck/pkg/check"
	"github.com/vertti/clustercheck/pkg/probe"
)

// DefaultServices must all be running on a cluster node.
var DefaultServices = []string{"corosync", "pacemaker"}

// Services verifies each cluster service is running.
type Services struct {
	Probes probe.Probes
	Names  []string
}

func (c *Services) Title() string { return "Checking cluster service" }

// Run executes the cluster service check.
func (c *Services) Run(ctx context.Context) check.Result {
	result := check.New(c.Title())
	for _, s := range c.Names {
		if c.Probes.Services.IsActive(ctx, s) {
			result.Infof("%s service is running", s)
		} else {
			result.Errorf("%s service is not running!", s)
		}
	}
	return result
}
