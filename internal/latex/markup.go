// Package latex converts the résumé LaTeX dialect to an editable Document and
// back again.
//
// The dialect is deliberately small: a body bracketed by \begin{document} and
// \end{document}, an optional centered header, and starred sections holding
// either an itemize list or free prose. Anything else is treated as opaque
// text. Structural editing is lossy: formatting commands are stripped on the
// way in and fixed templates are applied on the way out.
package latex

import (
	"regexp"
	"time"

	"github.com/dlclark/regexp2"
)

const (
	beginDocument = `\begin{document}`
	endDocument   = `\end{document}`
	beginCenter   = `\begin{center}`
	endCenter     = `\end{center}`
	beginItemize  = `\begin{itemize}`
	endItemize    = `\end{itemize}`

	// listOption is always written back, whatever option the source used.
	listOption = "[noitemsep]"
	// headerSpacing follows the name line in the header.
	headerSpacing = "[2mm]"

	// PlaceholderItem is the text of a freshly appended item.
	PlaceholderItem = "New item"
)

// DefaultPreamble is used when the source carried no preamble of its own.
const DefaultPreamble = `\documentclass[11pt,a4paper]{article}
\usepackage[utf8]{inputenc}
\usepackage[margin=1in]{geometry}
\usepackage{enumitem}
`

// spacing matches a bracketed length such as [2mm] or [ 0.5em ].
const spacing = `\[\s*-?\d*\.?\d+\s*(?:mm|cm|pt|em|ex|in|bp|sp)\s*\]`

var (
	documentRe = regexp.MustCompile(`(?s)^(.*?)\\begin\{document\}(.*)\\end\{document\}`)
	centerRe   = regexp.MustCompile(`(?s)\\begin\{center\}(.*?)\\end\{center\}`)
	itemizeRe  = regexp.MustCompile(`(?s)\\begin\{itemize\}(?:\[[^\]]*\])?(.*?)\\end\{itemize\}`)
	itemRe     = regexp.MustCompile(`\\item\b\s*`)
	lineBreak  = regexp.MustCompile(`\\\\(?:` + spacing + `)?`)

	// sectionRe needs lookahead to stop a section body at the next heading,
	// which RE2 cannot express.
	sectionRe = newSectionRe()
)

// sectionScanTimeout bounds a single backtracking match.
const sectionScanTimeout = 2 * time.Second

func newSectionRe() *regexp2.Regexp {
	re := regexp2.MustCompile(`\\section\*\{([^}]*)\}([\s\S]*?)(?=\\section\*|\z)`, regexp2.None)
	re.MatchTimeout = sectionScanTimeout
	return re
}
