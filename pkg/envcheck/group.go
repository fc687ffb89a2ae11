// Package envcheck checks the host environment a cluster node depends on:
// name resolution, time synchronization and the watchdog.
package envcheck

import (
	"github.com/vertti/clustercheck/pkg/check"
	"github.com/vertti/clustercheck/pkg/probe"
)

// GroupTitle is the banner of the environment group.
const GroupTitle = "Checking environment"

// Group returns the environment checks in run order.
func Group(p probe.Probes) check.Group {
	return check.Group{
		Title: GroupTitle,
		Checks: []check.Checker{
			&Hostname{Probes: p},
			&TimeService{Probes: p, Candidates: DefaultTimeServices},
			&Watchdog{Probes: p},
		},
	}
}
