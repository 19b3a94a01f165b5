//go:build mage

// Package main contains Mage build targets for texfig developer tooling.
// Implements: developer tooling (Init, Build, Report, Stats); DESIGN.md § Layout.
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "texfig"
	cmdPkg  = "./cmd/texfig"

	sampleImagesDir = "report/images"
	sampleTemplate  = "templates/report_template.tex"
)

// projectDirs lists the working directories a report project expects.
var projectDirs = []string{
	sampleImagesDir,
	"templates",
}

// starterTemplate is written by Init when no template exists yet.
const starterTemplate = `\documentclass[a4paper,12pt]{article}
\usepackage[utf8]{inputenc}
\usepackage{graphicx}
\graphicspath{{images/}}

\begin{document}

\section{Results}
<CONTENT>

\end{document}
`

// Init creates the report directory structure and a starter template.
func Init() error {
	for _, dir := range projectDirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Println("  ", dir)
	}
	if _, err := os.Stat(sampleTemplate); os.IsNotExist(err) {
		if err := os.WriteFile(sampleTemplate, []byte(starterTemplate), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", sampleTemplate, err)
		}
		fmt.Println("  ", sampleTemplate)
	}
	fmt.Println("Project directories initialized.")
	return nil
}

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Report builds the binary and generates the document for the project in
// the current directory.
func Report() error {
	mg.Deps(Build)
	if err := sh.RunV(filepath.Join(binDir, binName), "generate"); err != nil {
		return fmt.Errorf("texfig generate: %w", err)
	}
	return nil
}

// Stats prints non-blank Go line counts for production and test code.
func Stats() error {
	var prod, tests int
	err := filepath.WalkDir(".", func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), "_") || d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		n := countNonBlank(data)
		if strings.HasSuffix(path, "_test.go") {
			tests += n
		} else {
			prod += n
		}
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prod)
	fmt.Printf("Lines of code (Go, tests):      %d\n", tests)
	return nil
}

func countNonBlank(data []byte) int {
	n := 0
	for _, line := range bytes.Split(data, []byte("\n")) {
		if len(bytes.TrimSpace(line)) > 0 {
			n++
		}
	}
	return n
}
