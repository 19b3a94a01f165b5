// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strconv"

// noneMarker is the text used where a value is absent: the heading of an
// empty subsection and, in legacy label mode, the index of an unindexed figure.
const noneMarker = "None"

// MaxSubsection is the highest subsection number accepted. Every number up
// to the maximum found gets a heading, so the bound also caps the size of
// the generated document.
const MaxSubsection = 1000

// ImageRecord describes one image file decoded from its filename.
// Records are created by the decoder and never modified afterwards.
type ImageRecord struct {
	// Filename is the on-disk name, used as the \includegraphics reference.
	Filename string `json:"filename" yaml:"filename"`

	// Label is the part of the filename before "##"; it titles the subsection.
	Label string `json:"label" yaml:"label"`

	// Subsection is the grouping key, between 1 and MaxSubsection.
	Subsection int `json:"subsection" yaml:"subsection"`

	// FigureIndex orders figures within a subsection. Nil means unordered;
	// unordered figures come first.
	FigureIndex *int `json:"figure_index,omitempty" yaml:"figure_index,omitempty"`
}

// HasIndex reports whether the record carries a figure index.
func (r ImageRecord) HasIndex() bool {
	return r.FigureIndex != nil
}

// IndexString returns the figure index as text, or "None" when absent.
func (r ImageRecord) IndexString() string {
	if r.FigureIndex == nil {
		return noneMarker
	}
	return strconv.Itoa(*r.FigureIndex)
}

// Subsection is one numbered group of figures, in output order.
type Subsection struct {
	Number  int           `json:"number" yaml:"number"`
	Figures []ImageRecord `json:"figures" yaml:"figures"`
}

// Heading returns the subsection title: the label of the first figure,
// or "None" for a subsection without figures.
func (s Subsection) Heading() string {
	if len(s.Figures) == 0 {
		return noneMarker
	}
	return s.Figures[0].Label
}

// IsEmpty reports whether no image belongs to the subsection.
func (s Subsection) IsEmpty() bool {
	return len(s.Figures) == 0
}
