package main

import (
	"github.com/spf13/cobra"

	"github.com/vertti/clustercheck/pkg/envcheck"
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Check hostname resolution, time service and watchdog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runGroups(cmd, envcheck.Group)
	},
}

func init() {
	rootCmd.AddCommand(envCmd)
}
