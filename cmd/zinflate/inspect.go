package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tlinford/zinflate"
)

// newInspectCmd prints the zlib header fields and the (unverified)
// Adler-32 trailer without requiring the caller to care whether the
// body fully decodes. Useful for triaging streams the decompress
// command rejects.
func newInspectCmd(logger *zap.Logger) *cobra.Command {
	var inputFile string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print zlib header fields and the Adler-32 trailer of a stream",
		RunE: func(cmd *cobra.Command, args []string) error {
			if inputFile == "" {
				return cmd.Usage()
			}

			data, err := os.ReadFile(inputFile)
			if err != nil {
				logger.Error("reading input file", zap.String("path", inputFile), zap.Error(err))
				return err
			}

			header, err := zinflate.InspectHeader(data)
			if header == nil {
				logger.Error("parsing zlib header", zap.String("path", inputFile), zap.Error(err))
				return err
			}

			fmt.Printf("CM=%d CINFO=%d FDICT=%v\n", header.CM, header.CINFO, header.FDICT)
			if err != nil {
				fmt.Printf("body: malformed or unsupported: %v\n", err)
				return nil
			}
			if header.CM != 8 || header.CINFO > 7 || header.FDICT {
				fmt.Println("body: not decoded (unsupported header)")
				return nil
			}
			fmt.Printf("Adler-32 (parsed, not verified): %#08x\n", header.Adler32)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "input file (zlib stream)")
	return cmd
}
