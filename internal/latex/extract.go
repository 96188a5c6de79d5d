package latex

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// Parse builds a Document from a complete résumé source. A source missing
// either body marker, or whose body holds neither a header nor a section,
// yields a Document with no blocks.
func Parse(text string) *Document {
	m := documentRe.FindStringSubmatch(text)
	if m == nil {
		return &Document{}
	}
	return &Document{
		Preamble: m[1],
		Blocks:   Extract(m[2]),
	}
}

// Extract scans a document body (the text between the body markers) and
// returns its blocks in source order, header first.
func Extract(body string) []Block {
	return extract(sectionRe, body)
}

func extract(re sectionScanner, body string) []Block {
	sections, err := extractSections(re, body)
	if err != nil {
		// a partial scan would drop sections on the next save
		return nil
	}
	var blocks []Block
	if h := extractHeader(body); h != nil {
		blocks = append(blocks, h)
	}
	return append(blocks, sections...)
}

func extractHeader(body string) *HeaderBlock {
	m := centerRe.FindStringSubmatch(body)
	if m == nil {
		return nil
	}
	h := &HeaderBlock{Lines: []string{}}
	for _, line := range lineBreak.Split(strings.TrimSpace(m[1]), -1) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line = Normalize(line); line != "" {
			h.Lines = append(h.Lines, line)
		}
	}
	return h
}

// sectionScanner is the part of *regexp2.Regexp the section scan uses.
type sectionScanner interface {
	FindStringMatch(s string) (*regexp2.Match, error)
	FindNextMatch(m *regexp2.Match) (*regexp2.Match, error)
}

// extractSections fails only when a match times out.
func extractSections(re sectionScanner, body string) ([]Block, error) {
	var blocks []Block
	m, err := re.FindStringMatch(body)
	for err == nil && m != nil {
		groups := m.Groups()
		blocks = append(blocks, parseSection(groups[1].String(), groups[2].String()))
		m, err = re.FindNextMatch(m)
	}
	if err != nil {
		return nil, err
	}
	return blocks, nil
}

func parseSection(title, raw string) *SectionBlock {
	s := &SectionBlock{Title: title}
	raw = strings.TrimSpace(raw)

	if loc := itemizeRe.FindStringSubmatchIndex(raw); loc != nil {
		s.Prefix = Normalize(raw[:loc[0]])
		s.Items = splitItems(raw[loc[2]:loc[3]])
		// anything after \end{itemize} is dropped
		return s
	}
	if raw != "" {
		s.Content = Normalize(raw)
	}
	return s
}

func splitItems(list string) []string {
	var items []string
	for _, item := range itemRe.Split(strings.TrimSpace(list), -1) {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if item = Normalize(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
