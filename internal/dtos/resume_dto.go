package dtos

import "github.com/justsurfingit/uncooked/internal/latex"

type ResumeContentRequest struct {
	Latex string `json:"latex" binding:"required"`
}

type TailorRequest struct {
	JobID uint `json:"job_id" binding:"required"`
}

// EditorSessionRequest opens an editor either over raw text or over a
// stored résumé ("master" or a tailored résumé id).
type EditorSessionRequest struct {
	Latex    string `json:"latex" binding:"required_without=Resume"`
	Resume   string `json:"resume"`
	ReadOnly bool   `json:"read_only"`
}

type EditorTextRequest struct {
	Latex string `json:"latex"`
}

type EditRequest struct {
	Op    latex.Op `json:"op" binding:"required,oneof=set_header_line set_title set_prefix set_content set_item add_item remove_item"`
	Block int      `json:"block"`
	Item  int      `json:"item"`
	Value string   `json:"value"`
}

func (r *EditRequest) Edit() latex.Edit {
	return latex.Edit{Op: r.Op, Block: r.Block, Item: r.Item, Value: r.Value}
}

type SelectionRequest struct {
	Block int         `json:"block"`
	Item  *int        `json:"item"`
	Field latex.Field `json:"field" binding:"required,oneof=line title prefix content item"`
}

// DocumentView is what the editor UI renders from.
type DocumentView struct {
	State     latex.State      `json:"state"`
	ReadOnly  bool             `json:"read_only"`
	Blocks    []latex.Block    `json:"blocks"`
	Selection *latex.Selection `json:"selection"`
	Latex     string           `json:"latex"`
	Message   string           `json:"message,omitempty"`
}

// UnparsedMessage is shown instead of structured fields.
const UnparsedMessage = "Unable to parse LaTeX content. Switch to LaTeX Code mode to edit directly."

func NewDocumentView(e *latex.Editor) DocumentView {
	v := DocumentView{
		State:     e.State(),
		ReadOnly:  e.ReadOnly(),
		Blocks:    e.Document().Blocks,
		Selection: e.Selection(),
		Latex:     e.Text(),
	}
	if v.Blocks == nil {
		v.Blocks = []latex.Block{}
	}
	if v.State == latex.Unparsed {
		v.Message = UnparsedMessage
	}
	return v
}
