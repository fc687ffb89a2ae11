package envcheck

import (
	"context"

	"github.com/vertti/clustercheck/pkg/check"
	"github.com/vertti/clustercheck/pkg/probe"
)

// Hostname verifies the local node name resolves.
type Hostname struct {
	Probes probe.Probes
}

func (c *Hostname) Title() string { return "Checking hostname resolvable" }

// Run executes the hostname check.
func (c *Hostname) Run(ctx context.Context) check.Result {
	result := check.New(c.Title())

	name, err := c.Probes.Host.Hostname()
	if err != nil {
		return *result.Errorf("Unable to read hostname: %v", err)
	}

	if err := c.Probes.Host.Resolve(ctx, name); err != nil {
		result.Errorf("Hostname %q is unresolvable. Please add an entry to /etc/hosts or configure DNS.", name)
	}
	return result
}
