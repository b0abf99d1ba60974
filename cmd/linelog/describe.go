package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/philipp01105/linelog/formatter"
)

func newDescribeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe [option...]",
		Short: "Print the canonical description of an option set",
		Long: `Combine the given option names, each of which may itself be a "|"-separated list,
and print the set in declaration order. With no arguments the default set is described.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := formatter.DefaultOptions
			if len(args) > 0 {
				var err error
				opts, err = formatter.ParseOptions(strings.Join(args, "|"))
				if err != nil {
					return err
				}
			}

			verbose, _ := cmd.Flags().GetBool("verbose")
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, opts)
			if verbose {
				fmt.Fprintf(out, "options: %d\n", opts.Len())
				fmt.Fprintf(out, "bits: %#x\n", uint16(opts))
			}
			return nil
		},
	}

	cmd.Flags().BoolP("verbose", "v", false, "also print the option count and bit value")
	return cmd
}
