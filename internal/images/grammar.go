// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package images recognizes and decodes image filenames that carry a
// subsection number and an optional figure index.
// Implements: Filename Matcher, Filename Decoder;
//
//	DESIGN.md § Layout, § Grounding ledger.
//
// The naming grammar is
//
//	name    = label "##" id "." ext
//	label   = { any character except "#" }
//	id      = digits [ "." digits ]
//	ext     = "png" | "jpg" | "jpeg"        (case-insensitive)
//
// Subsection numbers start at 1, so an id whose subsection is all zeros
// ("x##0.png", "x##00.1.png") is outside the convention.
//
// For example "Setup##1.png" is subsection 1 without an index and
// "Setup##1.2.png" is subsection 1, figure 2.
package images

import "strings"

const (
	// delimiter separates the label from the id.
	delimiter = "##"
	// separator splits the id into subsection, figure index and extension.
	separator = "."
)

// extensions lists the accepted image extensions in lower case.
var extensions = []string{"png", "jpg", "jpeg"}

// Match returns the names that follow the naming grammar, in input order.
// Everything else is dropped silently.
func Match(names []string) []string {
	var matched []string
	for _, name := range names {
		if IsImageName(name) {
			matched = append(matched, name)
		}
	}
	return matched
}

// IsImageName reports whether name follows the naming grammar.
func IsImageName(name string) bool {
	label, id, ok := strings.Cut(name, delimiter)
	if !ok || strings.Contains(label, "#") {
		return false
	}

	segments := strings.Split(id, separator)
	if len(segments) < 2 || len(segments) > 3 {
		return false
	}
	if !isImageExtension(segments[len(segments)-1]) {
		return false
	}
	for _, s := range segments[:len(segments)-1] {
		if !isDigits(s) {
			return false
		}
	}
	return !isZero(segments[0])
}

// isZero reports whether the digit run s has the value 0.
func isZero(s string) bool {
	return strings.Trim(s, "0") == ""
}

func isImageExtension(ext string) bool {
	for _, e := range extensions {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}

// isDigits reports whether s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
