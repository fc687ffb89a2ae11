package main

import (
	"github.com/spf13/cobra"

	"github.com/vertti/clustercheck/pkg/clustercheck"
)

var clusterCmd = &cobra.Command{
	Use:   "cluster",
	Short: "Check cluster services, fencing, nodes and resources",
	Long: `Query corosync, pacemaker and sbd and report their state.

Examples:
  clustercheck cluster
  clustercheck cluster --timeout 10s --output json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runGroups(cmd, clustercheck.Group)
	},
}

func init() {
	rootCmd.AddCommand(clusterCmd)
}
