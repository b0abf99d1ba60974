package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "linelog",
		Short:         "Render log events as single formatted lines",
		Long:          `Render JSON-lines log events with a configurable option set and inspect option strings`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newFormatCmd())
	root.AddCommand(newDescribeCmd())
	return root
}
