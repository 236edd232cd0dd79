// Command zinflate is the driver program for the zinflate library:
// read a zlib stream from a file, decompress or inspect it, report
// the result.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "zinflate: failed to initialize logger:", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	if err := newRootCmd(logger).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(logger *zap.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "zinflate",
		Short:         "Decompress zlib-wrapped DEFLATE streams",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newDecompressCmd(logger))
	root.AddCommand(newInspectCmd(logger))
	return root
}
