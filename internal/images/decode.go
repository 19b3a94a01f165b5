// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package images

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/texfig/pkg/types"
)

// MalformedFilenameError reports a filename whose id cannot be decoded.
type MalformedFilenameError struct {
	Name   string
	Reason string
	Err    error
}

func (e *MalformedFilenameError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed image filename %q: %s: %v", e.Name, e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed image filename %q: %s", e.Name, e.Reason)
}

func (e *MalformedFilenameError) Unwrap() error {
	return e.Err
}

// Decode extracts the label, subsection and figure index from a filename.
//
// The name is split on the first "##". The remainder is split on "." where
// the first part is the subsection and the last part the extension. A
// figure index is read from the second part only when there are at least
// three parts, so "a##1.png" has no index and "a##1.2.png" has index 2.
//
// Decode does not rely on Match having filtered the name.
func Decode(name string) (types.ImageRecord, error) {
	label, id, ok := strings.Cut(name, delimiter)
	if !ok {
		return types.ImageRecord{}, &MalformedFilenameError{Name: name, Reason: "missing " + delimiter + " delimiter"}
	}

	parts := strings.Split(id, separator)
	if len(parts) < 2 {
		return types.ImageRecord{}, &MalformedFilenameError{Name: name, Reason: "missing file extension"}
	}

	subsection, err := parseNumber(parts[0])
	if err != nil {
		return types.ImageRecord{}, &MalformedFilenameError{Name: name, Reason: "invalid subsection", Err: err}
	}
	if subsection < 1 {
		return types.ImageRecord{}, &MalformedFilenameError{Name: name, Reason: "subsection must be at least 1"}
	}
	if subsection > types.MaxSubsection {
		return types.ImageRecord{}, &MalformedFilenameError{
			Name:   name,
			Reason: "subsection out of range",
			Err:    fmt.Errorf("%d exceeds the maximum of %d", subsection, types.MaxSubsection),
		}
	}

	rec := types.ImageRecord{
		Filename:   name,
		Label:      label,
		Subsection: subsection,
	}
	if len(parts) > 2 {
		index, err := parseNumber(parts[1])
		if err != nil {
			return types.ImageRecord{}, &MalformedFilenameError{Name: name, Reason: "invalid figure index", Err: err}
		}
		rec.FigureIndex = &index
	}
	return rec, nil
}

// DecodeAll decodes names in order and stops at the first malformed one.
func DecodeAll(names []string) ([]types.ImageRecord, error) {
	records := make([]types.ImageRecord, 0, len(names))
	for _, name := range names {
		rec, err := Decode(name)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseNumber(s string) (int, error) {
	if !isDigits(s) {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return strconv.Atoi(s)
}
