// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/xmind2md/internal/convert"
	"github.com/pdiddy/xmind2md/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert one .xmind file to a Markdown outline",
	Long: `Convert reads one .xmind archive and writes the active sheet as an
outline. Missing parent directories of the output are created and an
existing output file is replaced.

The sheet is the one recorded as active in metadata.json, or the first
sheet when none is recorded. Use --sheet to pick another by ID or title.`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("input", "", "path to the .xmind file")
	convertCmd.Flags().String("output", "", "path of the file to write")
	convertCmd.Flags().String("format", "markdown", "output format: markdown, html, yaml, or json")
	convertCmd.Flags().String("sheet", "", "render this sheet (ID or title) instead of the active one")
	_ = convertCmd.MarkFlagRequired("input")
	_ = convertCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")
	sheet, _ := cmd.Flags().GetString("sheet")

	ocfg, err := outlineConfig(cmd)
	if err != nil {
		return err
	}
	cfg := types.ConversionConfig{
		OutlineConfig: ocfg,
		SheetRef:      sheet,
	}

	out, err := convert.ConvertFile(convert.NewOutlineConverter(cfg), input, output)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Generated: %s\n", out)
	return nil
}
