package latex

import (
	"errors"
	"fmt"
	"strings"
)

// State is where an Editor stands with respect to its current text.
type State int

const (
	// Unparsed means no structure was recognized; only raw-text editing
	// is possible until a new text arrives.
	Unparsed State = iota
	Structured
)

func (s State) String() string {
	if s == Structured {
		return "structured"
	}
	return "unparsed"
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Op names a single structural edit.
type Op string

const (
	OpSetHeaderLine Op = "set_header_line"
	OpSetTitle      Op = "set_title"
	OpSetPrefix     Op = "set_prefix"
	OpSetContent    Op = "set_content"
	OpSetItem       Op = "set_item"
	OpAddItem       Op = "add_item"
	OpRemoveItem    Op = "remove_item"
)

// Edit is one mutation aimed at a block of the current document. Item is
// the header line for OpSetHeaderLine and the item for the item ops.
type Edit struct {
	Op    Op
	Block int
	Item  int
	Value string
}

// Field names the part of a block a Selection points at.
type Field string

const (
	FieldLine    Field = "line"
	FieldTitle   Field = "title"
	FieldPrefix  Field = "prefix"
	FieldContent Field = "content"
	FieldItem    Field = "item"
)

// Selection is the block, item and field the user is currently editing.
type Selection struct {
	Block int   `json:"block"`
	Item  *int  `json:"item"`
	Field Field `json:"field"`
}

var (
	ErrUnparsed   = errors.New("latex: no structure recognized, edit the raw text instead")
	ErrReadOnly   = errors.New("latex: editor is read-only")
	ErrBlockIndex = errors.New("latex: block index out of range")
	ErrItemIndex  = errors.New("latex: item index out of range")
	ErrBlockKind  = errors.New("latex: edit does not apply to this kind of block")
	ErrUnknownOp  = errors.New("latex: unknown edit op")
	ErrTitleBrace = errors.New("latex: section title cannot contain braces")
)

// Editor is one editing session over a résumé. It is not safe for
// concurrent use.
type Editor struct {
	text      string
	doc       *Document
	readOnly  bool
	onChange  func(string)
	selection *Selection
}

// EditorOption configures an Editor.
type EditorOption func(*Editor)

// WithReadOnly rejects every edit.
func WithReadOnly(readOnly bool) EditorOption {
	return func(e *Editor) { e.readOnly = readOnly }
}

// WithOnChange registers fn to receive the serialized text after each edit.
func WithOnChange(fn func(text string)) EditorOption {
	return func(e *Editor) { e.onChange = fn }
}

func NewEditor(text string, opts ...EditorOption) *Editor {
	e := &Editor{}
	for _, opt := range opts {
		opt(e)
	}
	e.SetText(text)
	return e
}

// SetText replaces the text from outside the editor. The document is
// rebuilt from scratch and the selection cleared.
func (e *Editor) SetText(text string) {
	e.text = text
	e.doc = Parse(text)
	e.selection = nil
}

// EditRaw is SetText for text the user typed into the raw view: it honours
// read-only and reports the new text to OnChange like any other edit.
func (e *Editor) EditRaw(text string) error {
	if e.readOnly {
		return ErrReadOnly
	}
	e.SetText(text)
	if e.onChange != nil {
		e.onChange(e.text)
	}
	return nil
}

func (e *Editor) Text() string { return e.text }
func (e *Editor) Document() *Document { return e.doc }
func (e *Editor) ReadOnly() bool { return e.readOnly }
func (e *Editor) Selection() *Selection { return e.selection }

func (e *Editor) State() State {
	if e.doc.Structured() {
		return Structured
	}
	return Unparsed
}

// Select moves the focus. A selection outside the document is rejected.
func (e *Editor) Select(sel Selection) error {
	if e.State() == Unparsed {
		return ErrUnparsed
	}
	if err := e.checkSelection(sel); err != nil {
		return err
	}
	e.selection = &sel
	return nil
}

func (e *Editor) checkSelection(sel Selection) error {
	block, err := e.block(sel.Block)
	if err != nil {
		return err
	}
	switch blk := block.(type) {
	case *HeaderBlock:
		if sel.Field != FieldLine {
			return ErrBlockKind
		}
		if sel.Item == nil {
			return ErrItemIndex
		}
		return checkIndex(*sel.Item, len(blk.Lines))
	case *SectionBlock:
		switch sel.Field {
		case FieldTitle, FieldPrefix, FieldContent:
			return nil
		case FieldItem:
			if sel.Item == nil {
				return ErrItemIndex
			}
			return checkIndex(*sel.Item, len(blk.Items))
		}
	}
	return ErrBlockKind
}

// Apply performs edit on the current document and returns the new text.
// The new text is kept as the editor's text without being parsed again:
// the in-memory document stays authoritative until SetText is called.
func (e *Editor) Apply(edit Edit) (string, error) {
	if e.readOnly {
		return "", ErrReadOnly
	}
	if e.State() == Unparsed {
		return "", ErrUnparsed
	}
	if err := e.check(edit); err != nil {
		return "", fmt.Errorf("%s on block %d: %w", edit.Op, edit.Block, err)
	}

	d := e.doc
	switch edit.Op {
	case OpSetHeaderLine:
		d.SetHeaderLine(edit.Block, edit.Item, edit.Value)
	case OpSetTitle:
		d.SetTitle(edit.Block, edit.Value)
	case OpSetPrefix:
		d.SetPrefix(edit.Block, edit.Value)
	case OpSetContent:
		d.SetContent(edit.Block, edit.Value)
	case OpSetItem:
		d.SetItem(edit.Block, edit.Item, edit.Value)
	case OpAddItem:
		i := d.AddItem(edit.Block)
		e.selection = &Selection{Block: edit.Block, Item: &i, Field: FieldItem}
	case OpRemoveItem:
		d.RemoveItem(edit.Block, edit.Item)
		if sel := e.selection; sel != nil && sel.Block == edit.Block && sel.Field == FieldItem {
			e.selection = nil
		}
	}

	e.text = Serialize(d)
	if e.onChange != nil {
		e.onChange(e.text)
	}
	return e.text, nil
}

func (e *Editor) check(edit Edit) error {
	block, err := e.block(edit.Block)
	if err != nil {
		return err
	}
	switch edit.Op {
	case OpSetHeaderLine:
		h, ok := block.(*HeaderBlock)
		if !ok {
			return ErrBlockKind
		}
		return checkIndex(edit.Item, len(h.Lines))
	case OpSetTitle:
		if _, ok := block.(*SectionBlock); !ok {
			return ErrBlockKind
		}
		// \section*{...} ends at the first closing brace
		if strings.ContainsAny(edit.Value, "{}") {
			return ErrTitleBrace
		}
		return nil
	case OpSetPrefix, OpAddItem:
		if _, ok := block.(*SectionBlock); !ok {
			return ErrBlockKind
		}
		return nil
	case OpSetContent:
		s, ok := block.(*SectionBlock)
		if !ok {
			return ErrBlockKind
		}
		// a list section writes its items, never its prose
		if len(s.Items) > 0 {
			return ErrBlockKind
		}
		return nil
	case OpSetItem, OpRemoveItem:
		s, ok := block.(*SectionBlock)
		if !ok {
			return ErrBlockKind
		}
		return checkIndex(edit.Item, len(s.Items))
	}
	return ErrUnknownOp
}

func (e *Editor) block(i int) (Block, error) {
	if i < 0 || i >= len(e.doc.Blocks) {
		return nil, ErrBlockIndex
	}
	return e.doc.Blocks[i], nil
}

func checkIndex(i, n int) error {
	if i < 0 || i >= n {
		return ErrItemIndex
	}
	return nil
}
