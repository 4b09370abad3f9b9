// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/xmind2md/internal/convert"
	"github.com/pdiddy/xmind2md/internal/outline"
	"github.com/pdiddy/xmind2md/internal/xmind"
)

var sheetsCmd = &cobra.Command{
	Use:   "sheets",
	Short: "List the sheets in an .xmind file",
	Long: `Sheets lists every sheet in the archive with its ID, title, root topic
and number of top-level topics. The sheet convert would render by default
is marked with "*".`,
	RunE: runSheets,
}

func init() {
	sheetsCmd.Flags().String("input", "", "path to the .xmind file")
	sheetsCmd.Flags().Bool("json", false, "output the sheet list as JSON")
	_ = sheetsCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(sheetsCmd)
}

func runSheets(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	if err := convert.ValidateInput(input); err != nil {
		return err
	}
	doc, err := xmind.Open(input)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatSheets(cmd.OutOrStdout(), xmind.Summaries(doc), jsonOutput)
}

func formatSheets(w io.Writer, sheets []xmind.SheetSummary, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(sheets)
	}

	if len(sheets) == 0 {
		fmt.Fprintln(w, "No sheets found.")
		return nil
	}

	fmt.Fprintf(w, "%-1s  %-3s  %-24s  %-30s  %-30s  %s\n", "", "#", "ID", "Title", "Root", "Topics")
	fmt.Fprintln(w, strings.Repeat("-", 104))
	for _, s := range sheets {
		mark := ""
		if s.Active {
			mark = "*"
		}
		fmt.Fprintf(w, "%-1s  %-3d  %-24s  %-30s  %-30s  %d\n",
			mark, s.Index, truncate(s.ID, 24), truncate(outline.Normalize(s.Title), 30),
			truncate(outline.Normalize(s.Root), 30), s.Topics)
	}
	return nil
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
