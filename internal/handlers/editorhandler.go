package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/uncooked/internal/dtos"
	"github.com/justsurfingit/uncooked/internal/latex"
	"github.com/justsurfingit/uncooked/internal/services"
)

// ResumeStore is the slice of ResumeService the editor needs to bind a
// session to a stored résumé.
type ResumeStore interface {
	Load(ref string) (string, error)
	Persister(ref string) func(string)
}

type EditorHandler struct {
	Editors *services.EditorService
	Resumes ResumeStore
}

func NewEditorHandler(editors *services.EditorService, resumes ResumeStore) *EditorHandler {
	return &EditorHandler{Editors: editors, Resumes: resumes}
}

// OpenSession is POST /editor/sessions
func (h *EditorHandler) OpenSession(c *gin.Context) {
	var req dtos.EditorSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	text := req.Latex
	var onChange func(string)
	if req.Resume != "" {
		stored, err := h.Resumes.Load(req.Resume)
		if err != nil {
			respondError(c, err)
			return
		}
		text = stored
		onChange = h.Resumes.Persister(req.Resume)
	}

	id, editor := h.Editors.Open(text, req.ReadOnly, onChange)
	c.JSON(http.StatusCreated, gin.H{
		"session_id": id,
		"editor":     dtos.NewDocumentView(editor),
	})
}

func (h *EditorHandler) GetSession(c *gin.Context) {
	h.withEditor(c, func(e *latex.Editor) error { return nil })
}

// SetText is PUT /editor/sessions/:id/text, the raw-text path. A session
// bound to a stored résumé saves the new text like any other edit.
func (h *EditorHandler) SetText(c *gin.Context) {
	var req dtos.EditorTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	h.withEditor(c, func(e *latex.Editor) error {
		return e.EditRaw(req.Latex)
	})
}

// ApplyEdit is POST /editor/sessions/:id/edits
func (h *EditorHandler) ApplyEdit(c *gin.Context) {
	var req dtos.EditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	h.withEditor(c, func(e *latex.Editor) error {
		_, err := e.Apply(req.Edit())
		return err
	})
}

// Select is PUT /editor/sessions/:id/selection
func (h *EditorHandler) Select(c *gin.Context) {
	var req dtos.SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	h.withEditor(c, func(e *latex.Editor) error {
		return e.Select(latex.Selection{Block: req.Block, Item: req.Item, Field: req.Field})
	})
}

func (h *EditorHandler) CloseSession(c *gin.Context) {
	if err := h.Editors.Close(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// withEditor runs fn under the session lock and answers with the editor's
// resulting view.
func (h *EditorHandler) withEditor(c *gin.Context, fn func(e *latex.Editor) error) {
	var view dtos.DocumentView
	err := h.Editors.Do(c.Param("id"), func(e *latex.Editor) error {
		if err := fn(e); err != nil {
			return err
		}
		view = dtos.NewDocumentView(e)
		return nil
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func editorStatus(err error) (int, bool) {
	switch {
	case errors.Is(err, latex.ErrUnparsed), errors.Is(err, latex.ErrReadOnly):
		return http.StatusConflict, true
	case errors.Is(err, latex.ErrBlockIndex),
		errors.Is(err, latex.ErrItemIndex),
		errors.Is(err, latex.ErrBlockKind),
		errors.Is(err, latex.ErrUnknownOp),
		errors.Is(err, latex.ErrTitleBrace):
		return http.StatusBadRequest, true
	}
	return 0, false
}
