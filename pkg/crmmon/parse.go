// Package crmmon extracts facts from pacemaker command output.
//
// The output formats belong to pacemaker. Every parser treats a missing
// pattern as "no information" and reports it through zero values or a false
// ok result, never an error.
package crmmon

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	dcRegex      = regexp.MustCompile(`Current DC: (\S+) \(`)
	onlineRegex  = regexp.MustCompile(`Online:\s+(\[.*\])`)
	offlineRegex = regexp.MustCompile(`OFFLINE:\s+(\[.*\])`)
	uncleanRegex = regexp.MustCompile(`Node (\S+): UNCLEAN`)
	stonithRegex = regexp.MustCompile(`(\S+)\s+\(stonith:([^)]+)\):\s+(\S+)`)
)

// NodeStatus is the node membership summary found in "crm_mon -r1" output.
type NodeStatus struct {
	DC      string   // designated controller, "" if not found
	Quorum  bool     // "partition with quorum" present
	Online  string   // bracketed online list, e.g. "[ node1 node2 ]"
	Offline string   // bracketed offline list, "" if none
	Unclean []string // nodes marked UNCLEAN, in line order
}

// ParseNodeStatus scans cluster status text for membership facts.
func ParseNodeStatus(text string) NodeStatus {
	var s NodeStatus
	if m := dcRegex.FindStringSubmatch(text); m != nil {
		s.DC = m[1]
	}
	s.Quorum = strings.Contains(text, "partition with quorum")
	if m := onlineRegex.FindStringSubmatch(text); m != nil {
		s.Online = m[1]
	}
	if m := offlineRegex.FindStringSubmatch(text); m != nil {
		s.Offline = m[1]
	}
	for _, line := range strings.Split(text, "\n") {
		if m := uncleanRegex.FindStringSubmatch(line); m != nil {
			s.Unclean = append(s.Unclean, m[1])
		}
	}
	return s
}

// StonithResource is one fencing resource line.
type StonithResource struct {
	Name  string
	Agent string // e.g. "external/sbd", "fence_sbd"
	State string // e.g. "Started", "Stopped"
}

// Started returns true if the resource runs.
func (r StonithResource) Started() bool {
	return r.State == "Started"
}

// UsesSBD returns true if the agent belongs to the sbd family, which
// needs the sbd daemon to be running.
func (r StonithResource) UsesSBD() bool {
	return strings.HasSuffix(r.Agent, "sbd")
}

// ParseStonithResources returns every "<name> (stonith:<agent>): <state>"
// entry in order of appearance.
func ParseStonithResources(text string) []StonithResource {
	var resources []StonithResource
	for _, m := range stonithRegex.FindAllStringSubmatch(text, -1) {
		resources = append(resources, StonithResource{Name: m[1], Agent: m[2], State: m[3]})
	}
	return resources
}

// ParseCount reads the number printed by a "| wc -l" pipeline.
func ParseCount(text string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseStonithEnabled interprets "crm_attribute -n stonith-enabled -q" output.
func ParseStonithEnabled(text string) bool {
	return strings.EqualFold(strings.TrimSpace(text), "true")
}
