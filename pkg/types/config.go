// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultPlaceholder is the template token replaced by the generated content.
const DefaultPlaceholder = "<CONTENT>"

// ImageSize holds the optional \includegraphics dimensions in centimeters.
// Nil fields are left out of the size clause.
type ImageSize struct {
	Width  *float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Height *float64 `json:"height,omitempty" yaml:"height,omitempty"`
}

// Clause renders the size as "width=15.5cm,height=4cm". Width always comes
// before height. An empty string is returned when both are absent.
func (s ImageSize) Clause() string {
	var parts []string
	if s.Width != nil {
		parts = append(parts, "width="+formatCentimeters(*s.Width))
	}
	if s.Height != nil {
		parts = append(parts, "height="+formatCentimeters(*s.Height))
	}
	return strings.Join(parts, ",")
}

func formatCentimeters(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "cm"
}

// LabelMode selects how \label tokens are built for figures without an index.
type LabelMode string

const (
	// LabelLegacy writes "fig:<subsection>.None" for unindexed figures,
	// matching documents produced by earlier versions of the tool.
	LabelLegacy LabelMode = "legacy"

	// LabelOmitMissing writes "fig:<subsection>" for unindexed figures.
	LabelOmitMissing LabelMode = "omit-missing"
)

// ParseLabelMode converts a config or flag value into a LabelMode.
// The empty string selects LabelLegacy.
func ParseLabelMode(s string) (LabelMode, error) {
	switch LabelMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", LabelLegacy:
		return LabelLegacy, nil
	case LabelOmitMissing:
		return LabelOmitMissing, nil
	default:
		return "", fmt.Errorf("unknown label mode %q: use %s or %s", s, LabelLegacy, LabelOmitMissing)
	}
}

// RenderOptions controls how a single figure block is written.
type RenderOptions struct {
	Size   ImageSize `json:"size" yaml:"size"`
	Labels LabelMode `json:"labels" yaml:"labels"`
}

// GenerationConfig holds everything one generation run needs.
type GenerationConfig struct {
	// ImagesDir is scanned non-recursively for image files.
	ImagesDir string `json:"images_dir" yaml:"images_dir"`

	// TemplatePath is the UTF-8 template containing the placeholder.
	TemplatePath string `json:"template" yaml:"template"`

	// OutputPath receives the filled template.
	OutputPath string `json:"output" yaml:"output"`

	// Placeholder is the token replaced in the template (default "<CONTENT>").
	Placeholder string `json:"placeholder" yaml:"placeholder"`

	Render RenderOptions `json:"render" yaml:"render"`
}
