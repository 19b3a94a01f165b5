// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package latex turns decoded image records into LaTeX: it groups them by
// subsection, renders one figure environment per image and fills the
// result into a document template.
// Implements: Subsection Grouper, Figure Renderer, Document Assembler;
//
//	DESIGN.md § Layout, § Grounding ledger.
//
// All functions are pure. Nothing is cached between calls, so generating
// twice from the same records yields identical text.
package latex

import (
	"errors"
	"fmt"
	"sort"

	"github.com/pdiddy/texfig/pkg/types"
)

// ErrEmptyInput is returned when there are no records to bound the
// subsection range.
var ErrEmptyInput = errors.New("no images found: nothing to generate")

// ErrSubsectionRange is returned when a record's subsection lies outside
// 1..types.MaxSubsection.
var ErrSubsectionRange = errors.New("subsection out of range")

// Group partitions records into subsections 1..max, where max is the
// highest subsection among the records. Every number in the range is
// present in the result, with an empty figure list when no image uses it.
// Records with a subsection outside 1..types.MaxSubsection fail with
// ErrSubsectionRange before anything is allocated.
// Within a subsection figures are ordered by figure index; unindexed
// figures come first and ties keep their input order.
func Group(records []types.ImageRecord) ([]types.Subsection, error) {
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	maxSubsection := 0
	for _, r := range records {
		if r.Subsection < 1 || r.Subsection > types.MaxSubsection {
			return nil, fmt.Errorf("%w: %s has subsection %d, want 1..%d",
				ErrSubsectionRange, r.Filename, r.Subsection, types.MaxSubsection)
		}
		if r.Subsection > maxSubsection {
			maxSubsection = r.Subsection
		}
	}

	subsections := make([]types.Subsection, maxSubsection)
	for i := range subsections {
		subsections[i] = types.Subsection{Number: i + 1, Figures: []types.ImageRecord{}}
	}
	for _, r := range records {
		s := &subsections[r.Subsection-1]
		s.Figures = append(s.Figures, r)
	}

	for i := range subsections {
		sortFigures(subsections[i].Figures)
	}
	return subsections, nil
}

func sortFigures(figures []types.ImageRecord) {
	sort.SliceStable(figures, func(i, j int) bool {
		a, b := figures[i].FigureIndex, figures[j].FigureIndex
		switch {
		case a == nil:
			return b != nil
		case b == nil:
			return false
		default:
			return *a < *b
		}
	})
}
