package latex

import "strings"

// Serialize renders a Document in canonical form. The output parses back
// to a Document that serializes to the same text.
//
// Blank header lines and blank items are left out since a re-parse would
// drop them anyway.
func Serialize(doc *Document) string {
	var b strings.Builder

	preamble := doc.Preamble
	if preamble == "" {
		preamble = DefaultPreamble
	}
	b.WriteString(preamble)
	b.WriteString(beginDocument + "\n\n")

	for _, block := range doc.Blocks {
		switch blk := block.(type) {
		case *HeaderBlock:
			writeHeader(&b, blk)
		case *SectionBlock:
			writeSection(&b, blk)
		}
	}

	b.WriteString(endDocument)
	return b.String()
}

func writeHeader(b *strings.Builder, h *HeaderBlock) {
	lines := nonBlank(h.Lines)

	b.WriteString(beginCenter + "\n")
	for i, line := range lines {
		switch {
		case i == 0:
			b.WriteString(`{\Large\textbf{` + line + `}}\\` + headerSpacing + "\n")
		case i < len(lines)-1:
			b.WriteString(line + `\\` + "\n")
		default:
			b.WriteString(line + "\n")
		}
	}
	b.WriteString(endCenter + "\n\n")
}

func writeSection(b *strings.Builder, s *SectionBlock) {
	b.WriteString(`\section*{` + s.Title + "}\n")

	// A prefix only stays a prefix in front of a list; otherwise it parses
	// back as the start of the prose, so it is written that way.
	if items := nonBlank(s.Items); len(items) > 0 {
		if strings.TrimSpace(s.Prefix) != "" {
			b.WriteString(s.Prefix + "\n")
		}
		b.WriteString(beginItemize + listOption + "\n")
		for _, item := range items {
			b.WriteString(`  \item ` + item + "\n")
		}
		b.WriteString(endItemize + "\n")
	} else if prose := nonBlank([]string{s.Prefix, s.Content}); len(prose) > 0 {
		b.WriteString(strings.Join(prose, " ") + "\n")
	}
	b.WriteString("\n")
}

func nonBlank(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
