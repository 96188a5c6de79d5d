package latex

import "encoding/json"

// BlockKind discriminates the two block variants.
type BlockKind string

const (
	KindHeader  BlockKind = "header"
	KindSection BlockKind = "section"
)

// Block is either a *HeaderBlock or a *SectionBlock.
type Block interface {
	Kind() BlockKind
}

// HeaderBlock holds the centered lines at the top of the résumé, name first.
type HeaderBlock struct {
	Lines []string
}

func (*HeaderBlock) Kind() BlockKind { return KindHeader }

func (h *HeaderBlock) MarshalJSON() ([]byte, error) {
	lines := h.Lines
	if lines == nil {
		lines = []string{}
	}
	return json.Marshal(struct {
		Type  BlockKind `json:"type"`
		Lines []string  `json:"lines"`
	}{KindHeader, lines})
}

// SectionBlock is one \section* with its body. At most one of Items and
// Content carries the body; an empty Prefix or Content means absent.
// Items is nil when the section has no list, and empty (not nil) after the
// last item has been removed.
type SectionBlock struct {
	Title   string
	Prefix  string
	Items   []string
	Content string
}

func (*SectionBlock) Kind() BlockKind { return KindSection }

func (s *SectionBlock) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    BlockKind `json:"type"`
		Title   string    `json:"title"`
		Prefix  *string   `json:"prefix"`
		Items   []string  `json:"items"`
		Content *string   `json:"content"`
	}{KindSection, s.Title, nullable(s.Prefix), s.Items, nullable(s.Content)})
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Document is the editable form of a résumé. It lives only as long as the
// editing session that built it; the serialized text is what gets stored.
type Document struct {
	Preamble string  `json:"-"`
	Blocks   []Block `json:"blocks"`
}

// Structured reports whether any structure was recognized.
func (d *Document) Structured() bool {
	return len(d.Blocks) > 0
}

// Header returns the header block, or nil if the document has none.
func (d *Document) Header() *HeaderBlock {
	if len(d.Blocks) == 0 {
		return nil
	}
	h, _ := d.Blocks[0].(*HeaderBlock)
	return h
}

// The mutators below trust their indices: callers only target blocks and
// items taken from the document they are editing. Editor.Apply checks them
// before calling in.

func (d *Document) header(block int) *HeaderBlock {
	return d.Blocks[block].(*HeaderBlock)
}

func (d *Document) section(block int) *SectionBlock {
	return d.Blocks[block].(*SectionBlock)
}

func (d *Document) SetHeaderLine(block, line int, value string) {
	d.header(block).Lines[line] = value
}

func (d *Document) SetTitle(block int, value string) {
	d.section(block).Title = value
}

func (d *Document) SetPrefix(block int, value string) {
	d.section(block).Prefix = value
}

func (d *Document) SetContent(block int, value string) {
	d.section(block).Content = value
}

func (d *Document) SetItem(block, item int, value string) {
	d.section(block).Items[item] = value
}

// AddItem appends a placeholder item and returns its index. Prose in a
// section without items becomes its first item, so the section never holds
// both.
func (d *Document) AddItem(block int) int {
	s := d.section(block)
	if s.Items == nil {
		s.Items = []string{}
	}
	if len(s.Items) == 0 && s.Content != "" {
		s.Items = append(s.Items, s.Content)
		s.Content = ""
	}
	s.Items = append(s.Items, PlaceholderItem)
	return len(s.Items) - 1
}

func (d *Document) RemoveItem(block, item int) {
	s := d.section(block)
	s.Items = append(s.Items[:item], s.Items[item+1:]...)
}
