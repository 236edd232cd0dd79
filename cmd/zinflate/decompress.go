package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tlinford/zinflate"
)

// newDecompressCmd reads the whole input file, decompresses it, and
// writes the whole output file.
func newDecompressCmd(logger *zap.Logger) *cobra.Command {
	var inputFile, outputFile string

	cmd := &cobra.Command{
		Use:   "decompress",
		Short: "Decompress a zlib stream from a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if inputFile == "" || outputFile == "" {
				return cmd.Usage()
			}

			compressed, err := os.ReadFile(inputFile)
			if err != nil {
				logger.Error("reading input file", zap.String("path", inputFile), zap.Error(err))
				return err
			}

			decoded, err := zinflate.Decompress(compressed)
			if err != nil {
				logger.Error("decompressing stream",
					zap.String("path", inputFile),
					zap.Bool("unsupported", errors.Is(err, zinflate.ErrUnsupportedInput)),
					zap.Error(err))
				return err
			}

			if err := os.WriteFile(outputFile, decoded, 0o644); err != nil {
				logger.Error("writing output file", zap.String("path", outputFile), zap.Error(err))
				return err
			}

			logger.Info("decompressed",
				zap.String("input", inputFile),
				zap.Int("input_bytes", len(compressed)),
				zap.String("output", outputFile),
				zap.Int("output_bytes", len(decoded)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "input file (zlib stream)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (decompressed bytes)")
	return cmd
}
