// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"strconv"
	"strings"

	"github.com/pdiddy/texfig/pkg/types"
)

// figureIndent is the indentation of the commands inside a figure environment.
const figureIndent = "    "

// RenderFigure writes one figure environment for rec. The block starts with
// a newline and has no trailing newline:
//
//	\begin{figure}[!htb]
//	    \centering
//	    \includegraphics[width=15.5cm]{Setup##1.2.png}
//	    \caption{}
//	    \label{fig:1.2}
//	\end{figure}
func RenderFigure(rec types.ImageRecord, opts types.RenderOptions) string {
	var b strings.Builder
	b.WriteString("\n\\begin{figure}[!htb]\n")
	b.WriteString(figureIndent + "\\centering\n")
	b.WriteString(figureIndent + "\\includegraphics[" + opts.Size.Clause() + "]{" + rec.Filename + "}\n")
	b.WriteString(figureIndent + "\\caption{}\n")
	b.WriteString(figureIndent + "\\label{" + FigureLabel(rec, opts.Labels) + "}\n")
	b.WriteString("\\end{figure}")
	return b.String()
}

// FigureLabel returns the \label key for rec. In LabelLegacy mode a missing
// index is written as "None" ("fig:3.None"); LabelOmitMissing drops the
// index segment instead ("fig:3").
func FigureLabel(rec types.ImageRecord, mode types.LabelMode) string {
	prefix := "fig:" + strconv.Itoa(rec.Subsection)
	if !rec.HasIndex() && mode == types.LabelOmitMissing {
		return prefix
	}
	return prefix + "." + rec.IndexString()
}
