// Package clustercheck checks the state of the corosync/pacemaker stack.
package clustercheck

import (
	"github.com/vertti/clustercheck/pkg/check"
	"github.com/vertti/clustercheck/pkg/probe"
)

// GroupTitle is the banner of the cluster group.
const GroupTitle = "Checking cluster state"

// Group returns the cluster checks in run order.
func Group(p probe.Probes) check.Group {
	return check.Group{
		Title: GroupTitle,
		Checks: []check.Checker{
			&Services{Probes: p, Names: DefaultServices},
			&Fencing{Probes: p},
			&Nodes{Probes: p},
			&Resources{Probes: p},
		},
	}
}
