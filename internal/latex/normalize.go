package latex

import (
	"regexp"
	"strings"
)

type substitution struct {
	re   *regexp.Regexp
	repl string
}

// normalizers run in order; later rules assume earlier ones already ran.
var normalizers = []substitution{
	// emphasis, compound form first so its outer braces go with it
	{regexp.MustCompile(`\{\\Large\\textbf\{([^}]+)\}\}`), "$1"},
	{regexp.MustCompile(`\\textbf\{([^}]+)\}`), "$1"},
	{regexp.MustCompile(`\\textit\{([^}]+)\}`), "$1"},
	// size and weight switches
	{regexp.MustCompile(`\\(?:tiny|scriptsize|footnotesize|small|normalsize|large|Large|LARGE|huge|Huge|bfseries|itshape)\b`), ""},
	{lineBreak, " "},
	{regexp.MustCompile(`\\hfill\b`), " | "},
	{regexp.MustCompile(spacing), ""},
	{regexp.MustCompile(`[{}]`), ""},
	{regexp.MustCompile(`\s+`), " "},
}

// Normalize turns a span of markup into display text. Formatting commands
// are discarded, not remembered.
func Normalize(span string) string {
	for _, s := range normalizers {
		span = s.re.ReplaceAllString(span, s.repl)
	}
	return strings.TrimSpace(span)
}
