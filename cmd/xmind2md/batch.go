// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/xmind2md/internal/convert"
	"github.com/pdiddy/xmind2md/pkg/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Convert every .xmind file in a directory",
	Long: `Batch converts each .xmind file directly inside --input-dir and writes
one output per file into --output-dir, named after the input. Outputs that
already exist are skipped unless --force is given. Files are processed in
name order; a failure is reported and the run continues.`,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().String("input-dir", "", "directory containing .xmind files")
	batchCmd.Flags().String("output-dir", "", "directory for the rendered outlines")
	batchCmd.Flags().String("format", "markdown", "output format: markdown, html, yaml, or json")
	batchCmd.Flags().Bool("force", false, "overwrite outputs that already exist")
	_ = batchCmd.MarkFlagRequired("input-dir")
	_ = batchCmd.MarkFlagRequired("output-dir")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	inputDir, _ := cmd.Flags().GetString("input-dir")
	outputDir, _ := cmd.Flags().GetString("output-dir")
	force, _ := cmd.Flags().GetBool("force")

	ocfg, err := outlineConfig(cmd)
	if err != nil {
		return err
	}
	cfg := types.ConversionConfig{OutlineConfig: ocfg, Force: force}

	inputs, err := convert.FindInputs(inputDir)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No .xmind files found in %s\n", inputDir)
		return nil
	}

	opts := convert.BatchOptions{
		OutputDir: outputDir,
		Ext:       cfg.Format.Extension(),
		Force:     cfg.Force,
	}
	result := convert.ConvertBatch(convert.NewOutlineConverter(cfg), inputs, opts, cmd.OutOrStdout())
	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed conversion", result.Failed)
	}
	return nil
}
