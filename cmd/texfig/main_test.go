// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/texfig/internal/images"
	"github.com/pdiddy/texfig/internal/latex"
	"github.com/pdiddy/texfig/pkg/types"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"empty input", latex.ErrEmptyInput, exitInput},
		{"wrapped empty input", fmt.Errorf("run: %w", latex.ErrEmptyInput), exitInput},
		{"subsection range", fmt.Errorf("%w: x", latex.ErrSubsectionRange), exitInput},
		{"template", &latex.TemplateError{Placeholder: "<CONTENT>"}, exitInput},
		{"malformed name", &images.MalformedFilenameError{Name: "a##x.png", Reason: "invalid subsection"}, exitInput},
		{"io", os.ErrPermission, exitFailure},
		{"other", errors.New("boom"), exitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestGenerationConfigDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg, err := generationConfig(v)
	require.NoError(t, err)

	assert.Equal(t, defaultImagesDir, cfg.ImagesDir)
	assert.Equal(t, defaultTemplate, cfg.TemplatePath)
	assert.Equal(t, defaultOutput, cfg.OutputPath)
	assert.Equal(t, types.DefaultPlaceholder, cfg.Placeholder)
	assert.Equal(t, types.LabelLegacy, cfg.Render.Labels)
	require.NotNil(t, cfg.Render.Size.Width)
	assert.Equal(t, 15.5, *cfg.Render.Size.Width)
	assert.Nil(t, cfg.Render.Size.Height)
	assert.Equal(t, "width=15.5cm", cfg.Render.Size.Clause())
}

func TestGenerationConfigOverrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set(keyWidth, 0)
	v.Set(keyHeight, 6.5)
	v.Set(keyLabels, "omit-missing")
	v.Set(keyPlaceholder, "%%BODY%%")

	cfg, err := generationConfig(v)
	require.NoError(t, err)

	assert.Nil(t, cfg.Render.Size.Width)
	require.NotNil(t, cfg.Render.Size.Height)
	assert.Equal(t, "height=6.5cm", cfg.Render.Size.Clause())
	assert.Equal(t, types.LabelOmitMissing, cfg.Render.Labels)
	assert.Equal(t, "%%BODY%%", cfg.Placeholder)
}

func TestGenerationConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "texfig.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`images_dir: sprawozdanie/images
output: sprawozdanie/sprawozdanie.tex
image:
  width: 12
  height: 8
`), 0o644))

	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := generationConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "sprawozdanie/images", cfg.ImagesDir)
	assert.Equal(t, "sprawozdanie/sprawozdanie.tex", cfg.OutputPath)
	assert.Equal(t, defaultTemplate, cfg.TemplatePath)
	assert.Equal(t, "width=12cm,height=8cm", cfg.Render.Size.Clause())
}

func TestGenerationConfigBadLabels(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set(keyLabels, "fixed")

	_, err := generationConfig(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown label mode")
}

func sampleSubsections() []types.Subsection {
	idx := 2
	return []types.Subsection{
		{Number: 1, Figures: []types.ImageRecord{
			{Filename: "Setup##1.png", Label: "Setup", Subsection: 1},
			{Filename: "Setup##1.2.png", Label: "Setup", Subsection: 1, FigureIndex: &idx},
		}},
		{Number: 2, Figures: []types.ImageRecord{}},
	}
}

func TestFormatListOutputTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, formatListOutput(&buf, sampleSubsections(), "table"))

	out := buf.String()
	assert.Contains(t, out, "Setup##1.png")
	assert.Contains(t, out, "Setup##1.2.png")
	assert.Contains(t, out, "(no images)")
	assert.Contains(t, out, "2 images in 2 subsections")
}

func TestFormatListOutputYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, formatListOutput(&buf, sampleSubsections(), "yaml"))

	var got []types.Subsection
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Setup", got[0].Heading())
	require.NotNil(t, got[0].Figures[1].FigureIndex)
	assert.Equal(t, 2, *got[0].Figures[1].FigureIndex)
	assert.True(t, got[1].IsEmpty())
}

func TestFormatListOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, formatListOutput(&buf, sampleSubsections(), "json"))
	assert.Contains(t, buf.String(), `"figure_index": 2`)
	assert.Contains(t, buf.String(), `"filename": "Setup##1.png"`)
}

func TestFormatListOutputUnknown(t *testing.T) {
	err := formatListOutput(&bytes.Buffer{}, sampleSubsections(), "csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestGenerateCommand(t *testing.T) {
	root := t.TempDir()
	imgDir := filepath.Join(root, "images")
	require.NoError(t, os.MkdirAll(imgDir, 0o755))
	for _, name := range []string{"Setup##1.png", "Setup##1.2.png", "Result##2.1.png", "ignored.png"} {
		require.NoError(t, os.WriteFile(filepath.Join(imgDir, name), nil, 0o644))
	}
	tmpl := filepath.Join(root, "template.tex")
	require.NoError(t, os.WriteFile(tmpl, []byte("BEGIN\n<CONTENT>\nEND\n"), 0o644))
	output := filepath.Join(root, "out", "report.tex")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"generate", "--images-dir", imgDir, "--template", tmpl, "--output", output})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	doc := string(data)
	assert.Contains(t, doc, "\\subsection{Setup}")
	assert.Contains(t, doc, "\\subsection{Result}")
	assert.Contains(t, doc, "\\includegraphics[width=15.5cm]{Setup##1.2.png}")
	assert.NotContains(t, doc, "ignored.png")
	assert.Contains(t, out.String(), "wrote: "+output)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in    string
		limit int
		want  string
	}{
		{"short", "Setup", 30, "Setup"},
		{"exact", "abcdef", 6, "abcdef"},
		{"ascii", "abcdefghij", 6, "abc..."},
		{"multibyte", "Charakterystyka żółtej diody świecącej", 20, "Charakterystyka ż..."},
		{"all multibyte", "ąęółśżźćń", 5, "ąę..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.limit)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestFormatListOutputTableLongLabel(t *testing.T) {
	label := strings.Repeat("ż", 40)
	subsections := []types.Subsection{{Number: 1, Figures: []types.ImageRecord{
		{Filename: label + "##1.png", Label: label, Subsection: 1},
	}}}

	var buf bytes.Buffer
	require.NoError(t, formatListOutput(&buf, subsections, "table"))
	assert.True(t, utf8.Valid(buf.Bytes()))
	assert.Contains(t, buf.String(), strings.Repeat("ż", 27)+"...")
}
