package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/davesmith10/bitpix/internal/imagefile"
	"github.com/davesmith10/bitpix/internal/pipeline"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode a message or file into a carrier image",
	RunE:  runEncode,
}

func init() {
	encodeCmd.Flags().StringP("message", "m", "", "Text message to encode")
	encodeCmd.Flags().String("input", "", "File whose raw bytes are encoded instead of --message")
	encodeCmd.Flags().StringP("output", "o", "", "Output image file")
	encodeCmd.Flags().String("format", "", "Container format (png, jpeg, gif, bmp, tiff, qoi); default from --output extension")
	encodeCmd.Flags().Int("quality", 90, "JPEG quality (1-100)")
	encodeCmd.MarkFlagRequired("output")
	encodeCmd.MarkFlagsOneRequired("message", "input")
	encodeCmd.MarkFlagsMutuallyExclusive("message", "input")
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	message, _ := cmd.Flags().GetString("message")
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	formatName, _ := cmd.Flags().GetString("format")
	quality, _ := cmd.Flags().GetInt("quality")

	format, err := resolveFormat(formatName, outputPath)
	if err != nil {
		return err
	}

	payload := []byte(message)
	if inputPath != "" {
		payload, err = os.ReadFile(inputPath)
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	}

	result, err := pipeline.Encode(payload, pipeline.EncodeOptions{
		Format:  format,
		Quality: quality,
	})
	if errors.Is(err, imagefile.ErrEmptyImage) {
		return errors.New("nothing to encode: payload is empty")
	}
	if errors.Is(err, imagefile.ErrTooLarge) {
		return fmt.Errorf("%d bytes do not fit in a %s carrier (max %d pixels wide): %w",
			len(payload), format, format.MaxDimension(), err)
	}
	if err != nil {
		return err
	}

	if err := imagefile.Save(outputPath, result.Data); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Encoded %d bytes → %dx%d %s %s (%d bytes)\n",
		len(payload), result.Width, result.Height, result.Format, outputPath, len(result.Data))
	if !format.IsLossless() {
		fmt.Fprintf(cmd.OutOrStdout(), "Warning: %s is lossy; decoding relies on the channel threshold\n", format)
	}
	return nil
}

func resolveFormat(name, outputPath string) (imagefile.Format, error) {
	if name != "" {
		return imagefile.ParseFormat(name)
	}
	format, err := imagefile.FormatFromPath(outputPath)
	if err != nil {
		return "", fmt.Errorf("choosing output format (use --format): %w", err)
	}
	return format, nil
}
