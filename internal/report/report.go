// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report runs one generation: it scans an image directory, builds
// the LaTeX body and writes the filled template to disk.
// Implements: run orchestration (ScanDir, Inspect, Generate, Write, Run);
//
//	DESIGN.md § Layout, § Grounding ledger.
//
// A run either writes the whole document or nothing. Every error is
// returned before the output file is touched, and the write itself goes
// through a temporary file that is renamed into place.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/pdiddy/texfig/internal/images"
	"github.com/pdiddy/texfig/internal/latex"
	"github.com/pdiddy/texfig/pkg/types"
)

// Result holds the generated document and counts describing it.
type Result struct {
	Document string

	// Figures is the number of images placed in the document.
	Figures int
	// Subsections is the number of \subsection headings written.
	Subsections int
	// EmptySubsections counts headings without figures (titled "None").
	EmptySubsections int
	// NoneLabels counts figure labels written as "fig:<n>.None".
	NoneLabels int
}

// ScanDir lists dir without recursing and returns the names of regular
// entries that follow the image naming grammar. Directory errors are
// returned as is.
func ScanDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	return images.Match(names), nil
}

// Inspect scans dir and decodes every matching image name.
func Inspect(dir string) ([]types.ImageRecord, error) {
	names, err := ScanDir(dir)
	if err != nil {
		return nil, err
	}
	return images.DecodeAll(names)
}

// Generate builds the document for cfg without writing anything.
func Generate(cfg types.GenerationConfig) (*Result, error) {
	records, err := Inspect(cfg.ImagesDir)
	if err != nil {
		return nil, err
	}

	subsections, err := latex.Group(records)
	if err != nil {
		return nil, err
	}
	content := latex.Join(subsections, cfg.Render)

	template, err := os.ReadFile(cfg.TemplatePath)
	if err != nil {
		return nil, err
	}

	placeholder := cfg.Placeholder
	if placeholder == "" {
		placeholder = types.DefaultPlaceholder
	}
	doc, err := latex.FillTemplate(string(template), placeholder, content)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Document:    doc,
		Figures:     len(records),
		Subsections: len(subsections),
	}
	for _, s := range subsections {
		if s.IsEmpty() {
			res.EmptySubsections++
		}
	}
	if cfg.Render.Labels != types.LabelOmitMissing {
		for _, r := range records {
			if !r.HasIndex() {
				res.NoneLabels++
			}
		}
	}
	return res, nil
}

// Write stores doc at path, creating the parent directory when needed.
// The file is replaced atomically, so readers never see a partial document.
func Write(path, doc string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return atomic.WriteFile(path, strings.NewReader(doc))
}

// Run generates the document for cfg and writes it to cfg.OutputPath,
// printing a summary to w.
func Run(cfg types.GenerationConfig, w io.Writer) (*Result, error) {
	res, err := Generate(cfg)
	if err != nil {
		return nil, err
	}
	if err := Write(cfg.OutputPath, res.Document); err != nil {
		return nil, err
	}

	fmt.Fprintf(w, "wrote: %s (%d figures in %d subsections)\n", cfg.OutputPath, res.Figures, res.Subsections)
	if res.EmptySubsections > 0 {
		fmt.Fprintf(w, "warning: %d subsection(s) have no images and are titled None\n", res.EmptySubsections)
	}
	if res.NoneLabels > 0 {
		fmt.Fprintf(w, "note: %d figure label(s) end in .None; use --labels %s to drop the index segment\n",
			res.NoneLabels, types.LabelOmitMissing)
	}
	return res, nil
}
