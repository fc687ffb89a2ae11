package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vertti/clustercheck/pkg/clustercheck"
	"github.com/vertti/clustercheck/pkg/envcheck"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "clustercheck",
	Short: "Diagnose the configuration and state of a cluster node",
	Long: `Clustercheck inspects a corosync/pacemaker node and reports findings per check.

Without a subcommand both the environment and the cluster checks run.
Nothing on the node is changed.`,
	Version:      Version,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runGroups(cmd, envcheck.Group, clustercheck.Group)
	},
}
