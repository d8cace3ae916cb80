package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fluxbase/fluxbase/internal/config"
)

// run builds and executes the root command, printing the C++
// original's "Error: <message>" convention to stderr and returning the
// process exit status: 0 on success, 1 on any failure.
func run() int {
	defaults, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 1
	}

	root := newRootCmd(defaults)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 1
	}
	return 0
}

func newRootCmd(defaults config.Defaults) *cobra.Command {
	root := &cobra.Command{
		Use:           "fluxbase",
		Short:         "Encode and decode files against an arbitrary-radix printable alphabet",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newEncodeCmd(defaults))
	root.AddCommand(newDecodeCmd(defaults))
	return root
}
