package clustercheck

import (
	"context"

	"github.com/vertti/clustercheck/pkg/check"
	"github.com/vertti/clustercheck/pkg/crmmon"
	"github.com/vertti/clustercheck/pkg/probe"
)

const nodesFilter = `awk '` + unbullet + ` $1=="Current"||$1=="Online:"||$1=="OFFLINE:"||$3=="UNCLEAN"{print $0}'`

// NodesCmd keeps the DC, membership and UNCLEAN lines of the cluster status.
const NodesCmd = StatusCmd + " | " + nodesFilter

// Nodes reports the DC, quorum and node membership.
type Nodes struct {
	Probes probe.Probes
	Status string // status source (default: crm_mon -r1)
}

func (c *Nodes) Title() string { return "Checking nodes" }

// Run executes the node status check.
func (c *Nodes) Run(ctx context.Context) check.Result {
	result := check.New(c.Title())

	cmdline := pipe(c.Status, nodesFilter)
	res, err := c.Probes.Runner.Run(ctx, cmdline)
	if err != nil || !res.OK() {
		return *result.Error(probe.FailureMessage(cmdline, res, err))
	}

	status := crmmon.ParseNodeStatus(res.Stdout)

	if status.DC != "" {
		result.Infof("DC node: %s", status.DC)
	} else {
		result.Warn("No DC node found")
	}

	if status.Quorum {
		result.Info("Cluster have quorum")
	} else {
		result.Warn("Cluster lost quorum!")
	}

	if status.Online != "" {
		result.Infof("Online nodes: %s", status.Online)
	}

	if status.Offline != "" {
		result.Warnf("OFFLINE nodes: %s", status.Offline)
	}

	for _, node := range status.Unclean {
		result.Warnf("Node %s is UNCLEAN!", node)
	}

	return result
}
