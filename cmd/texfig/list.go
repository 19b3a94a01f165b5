// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/texfig/internal/latex"
	"github.com/pdiddy/texfig/internal/report"
	"github.com/pdiddy/texfig/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show how the images directory will be grouped",
	Long: `List decodes the image filenames in the images directory and prints them
grouped by subsection in document order, as a table, YAML or JSON. Nothing is
written to disk.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().String("format", "table", "output format: table, yaml or json")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	dir := viper.GetString(keyImagesDir)

	records, err := report.Inspect(dir)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintf(out, "No images found in %s.\n", dir)
		return nil
	}

	subsections, err := latex.Group(records)
	if err != nil {
		return err
	}
	return formatListOutput(out, subsections, format)
}

func formatListOutput(w io.Writer, subsections []types.Subsection, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(subsections); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(subsections)
	case "table", "":
		writeListTable(w, subsections)
		return nil
	default:
		return fmt.Errorf("unsupported format %q: use table, yaml or json", format)
	}
}

func writeListTable(w io.Writer, subsections []types.Subsection) {
	fmt.Fprintf(w, "%-4s  %-5s  %-30s  %s\n", "Sub", "Index", "Heading", "File")
	fmt.Fprintln(w, strings.Repeat("-", 72))

	figures := 0
	for _, s := range subsections {
		if s.IsEmpty() {
			fmt.Fprintf(w, "%-4d  %-5s  %-30s  %s\n", s.Number, "-", s.Heading(), "(no images)")
			continue
		}
		for _, r := range s.Figures {
			index := "-"
			if r.HasIndex() {
				index = r.IndexString()
			}
			heading := truncate(s.Heading(), 30)
			fmt.Fprintf(w, "%-4d  %-5s  %-30s  %s\n", s.Number, index, heading, r.Filename)
			figures++
		}
	}

	fmt.Fprintf(w, "\n%d images in %d subsections\n", figures, len(subsections))
}

// truncate shortens s to at most limit runes, marking the cut with "...".
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}
