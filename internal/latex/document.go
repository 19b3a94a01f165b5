// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"fmt"
	"strings"

	"github.com/pdiddy/texfig/pkg/types"
)

// subsectionBreak separates consecutive subsections in the generated body.
const subsectionBreak = "\n\n\\pagebreak\\quad\n"

// TemplateError reports a template that cannot receive the generated content.
type TemplateError struct {
	Placeholder string
}

func (e *TemplateError) Error() string {
	if e.Placeholder == "" {
		return "template placeholder is empty"
	}
	return fmt.Sprintf("template does not contain placeholder %q", e.Placeholder)
}

// SubsectionContent renders a \subsection heading followed by the figures
// of sub in order. An empty subsection is titled "None".
func SubsectionContent(sub types.Subsection, opts types.RenderOptions) string {
	var b strings.Builder
	b.WriteString("\n\\subsection{" + sub.Heading() + "}\n")
	for _, rec := range sub.Figures {
		b.WriteString(RenderFigure(rec, opts))
	}
	return b.String()
}

// Content groups records and joins the rendered subsections with page
// breaks. It returns ErrEmptyInput when records is empty.
func Content(records []types.ImageRecord, opts types.RenderOptions) (string, error) {
	subsections, err := Group(records)
	if err != nil {
		return "", err
	}
	return Join(subsections, opts), nil
}

// Join renders already grouped subsections.
func Join(subsections []types.Subsection, opts types.RenderOptions) string {
	parts := make([]string, len(subsections))
	for i, s := range subsections {
		parts[i] = SubsectionContent(s, opts)
	}
	return strings.Join(parts, subsectionBreak)
}

// FillTemplate replaces every occurrence of placeholder in template with
// content. All other template text passes through unchanged.
func FillTemplate(template, placeholder, content string) (string, error) {
	if placeholder == "" || !strings.Contains(template, placeholder) {
		return "", &TemplateError{Placeholder: placeholder}
	}
	return strings.ReplaceAll(template, placeholder, content), nil
}
