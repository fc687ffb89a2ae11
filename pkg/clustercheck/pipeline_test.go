//go:build unix

package clustercheck

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vertti/clustercheck/pkg/probe"
	"github.com/vertti/clustercheck/pkg/testutil"
)

// shellRunner runs the real awk pipelines with a fixture standing in for crm_mon.
func shellRunner(t *testing.T) probe.Probes {
	t.Helper()
	for _, tool := range []string{probe.DefaultShell, "awk", "wc", "cat"} {
		if _, err := exec.LookPath(tool); err != nil {
			t.Skipf("%s not available: %v", tool, err)
		}
	}
	return testutil.Probes(&probe.ShellRunner{Timeout: 10 * time.Second}, &testutil.FakeServices{}, &testutil.FakeHost{})
}

func statusFrom(fixture string) string {
	return "cat " + probe.Quote("testdata/"+fixture)
}

func TestNodes_StatusFormats(t *testing.T) {
	tests := []struct {
		fixture   string
		wantLines []string
	}{
		{
			fixture: "pacemaker1.txt",
			wantLines: []string{
				"INFO DC node: node1",
				"INFO Cluster have quorum",
				"INFO Online nodes: [ node1 node2 ]",
			},
		},
		{
			fixture: "pacemaker2.txt",
			wantLines: []string{
				"INFO DC node: alpha",
				"INFO Cluster have quorum",
				"INFO Online nodes: [ alpha beta ]",
				"WARN Node gamma is UNCLEAN!",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.fixture, func(t *testing.T) {
			c := &Nodes{Probes: shellRunner(t), Status: statusFrom(tt.fixture)}
			result := c.Run(context.Background())
			assert.Equal(t, tt.wantLines, testutil.Lines(result))
		})
	}
}

func TestResources_StatusFormats(t *testing.T) {
	tests := []struct {
		fixture   string
		wantLines []string
	}{
		{
			fixture: "pacemaker1.txt",
			wantLines: []string{
				"INFO Stopped/FAILED resources: 1",
				"INFO Started resources: 2",
			},
		},
		{
			fixture: "pacemaker2.txt",
			wantLines: []string{
				"INFO Stopped/FAILED resources: 2",
				"INFO Started resources: 2",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.fixture, func(t *testing.T) {
			c := &Resources{Probes: shellRunner(t), Status: statusFrom(tt.fixture)}
			result := c.Run(context.Background())
			assert.Equal(t, tt.wantLines, testutil.Lines(result))
		})
	}
}

func TestDefaultCommandsUseStatusCmd(t *testing.T) {
	assert.Equal(t, NodesCmd, pipe("", nodesFilter))
	assert.Equal(t, StoppedResourcesCmd, pipe("", stoppedFilter))
	assert.Equal(t, StartedResourcesCmd, pipe("", startedFilter))
	assert.Contains(t, NodesCmd, `sub(/^[ \t]*\* /,"")`)
}
