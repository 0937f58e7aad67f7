package main

import (
	"fmt"
	"os"

	"github.com/davesmith10/bitpix/internal/imagefile"
	"github.com/davesmith10/bitpix/internal/pipeline"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Decode the message stored in a carrier image",
	RunE:  runDecode,
}

func init() {
	decodeCmd.Flags().StringP("input", "i", "", "Input image file")
	decodeCmd.Flags().Bool("raw", false, "Emit the decoded bytes as is instead of UTF-8 text")
	decodeCmd.Flags().StringP("output", "o", "", "Write the raw bytes to this file (with --raw)")
	decodeCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	raw, _ := cmd.Flags().GetBool("raw")
	outputPath, _ := cmd.Flags().GetString("output")

	if outputPath != "" && !raw {
		return fmt.Errorf("--output requires --raw")
	}

	data, err := imagefile.Load(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	result, err := pipeline.Decode(data, pipeline.DecodeOptions{Text: !raw})
	if err != nil {
		return fmt.Errorf("decoding %s: %w", inputPath, err)
	}

	switch {
	case outputPath != "":
		if err := os.WriteFile(outputPath, result.Payload, 0644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Decoded %dx%d %s → %s (%d bytes)\n",
			result.Width, result.Height, result.Format, outputPath, len(result.Payload))
	case raw:
		if _, err := cmd.OutOrStdout().Write(result.Payload); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	default:
		fmt.Fprintln(cmd.OutOrStdout(), string(result.Payload))
	}
	return nil
}
