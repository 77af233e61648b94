package main

import (
	"github.com/spf13/cobra"

	"github.com/wolfeidau/node-quotas/internal/version"
)

func newVersionCmd() *cobra.Command {
	noop := func(*cobra.Command, []string) error { return nil }
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		// клиент для версии не нужен
		PersistentPreRunE:  noop,
		PersistentPostRunE: noop,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return version.Fprint(cmd.OutOrStdout())
		},
	}
}
