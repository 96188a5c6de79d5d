package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/uncooked/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const janeDoe = `\begin{document}\begin{center}{\Large\textbf{Jane Doe}}\\[2mm]
Email: j@x.com\end{center}\section*{Skills}\begin{itemize}[noitemsep]
\item Python
\item Go
\end{itemize}\end{document}`

type fakeResumes struct {
	stored map[string]string
}

func (f *fakeResumes) Load(ref string) (string, error) {
	text, ok := f.stored[ref]
	if !ok {
		return "", services.ErrNotFound
	}
	return text, nil
}

func (f *fakeResumes) Persister(ref string) func(string) {
	return func(text string) { f.stored[ref] = text }
}

type view struct {
	State     string            `json:"state"`
	ReadOnly  bool              `json:"read_only"`
	Blocks    []json.RawMessage `json:"blocks"`
	Selection *struct {
		Block int    `json:"block"`
		Item  *int   `json:"item"`
		Field string `json:"field"`
	} `json:"selection"`
	Latex   string `json:"latex"`
	Message string `json:"message"`
}

type section struct {
	Type    string   `json:"type"`
	Title   string   `json:"title"`
	Prefix  *string  `json:"prefix"`
	Items   []string `json:"items"`
	Content *string  `json:"content"`
}

func newEditorRouter(t *testing.T, store *fakeResumes) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterEditorRoutes(r.Group("/api/v1"), NewEditorHandler(services.NewEditorService(time.Minute, false), store))
	return r
}

func do(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func openSession(t *testing.T, r http.Handler, body interface{}) (string, view) {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/v1/editor/sessions", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		SessionID string `json:"session_id"`
		Editor    view   `json:"editor"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.SessionID)
	return resp.SessionID, resp.Editor
}

func decodeView(t *testing.T, w *httptest.ResponseRecorder) view {
	t.Helper()
	var v view
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestEditorHandler_EditFlow(t *testing.T) {
	r := newEditorRouter(t, &fakeResumes{})
	id, v := openSession(t, r, gin.H{"latex": janeDoe})
	assert.Equal(t, "structured", v.State)
	require.Len(t, v.Blocks, 2)

	w := do(t, r, http.MethodPost, "/api/v1/editor/sessions/"+id+"/edits",
		gin.H{"op": "set_item", "block": 1, "item": 1, "value": "Go, Rust"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	v = decodeView(t, w)
	assert.Contains(t, v.Latex, "  \\item Python\n  \\item Go, Rust\n")

	var s section
	require.NoError(t, json.Unmarshal(v.Blocks[1], &s))
	assert.Equal(t, "section", s.Type)
	assert.Equal(t, []string{"Python", "Go, Rust"}, s.Items)
	assert.Nil(t, s.Prefix)
	assert.Nil(t, s.Content)
}

func TestEditorHandler_AddItemSelectsIt(t *testing.T) {
	r := newEditorRouter(t, &fakeResumes{})
	id, _ := openSession(t, r, gin.H{"latex": janeDoe})

	w := do(t, r, http.MethodPost, "/api/v1/editor/sessions/"+id+"/edits", gin.H{"op": "add_item", "block": 1})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	v := decodeView(t, w)
	require.NotNil(t, v.Selection)
	require.NotNil(t, v.Selection.Item)
	assert.Equal(t, 1, v.Selection.Block)
	assert.Equal(t, 2, *v.Selection.Item)
	assert.Equal(t, "item", v.Selection.Field)
	assert.Contains(t, v.Latex, `\item New item`)
}

func TestEditorHandler_UnparsedFallback(t *testing.T) {
	r := newEditorRouter(t, &fakeResumes{})
	id, v := openSession(t, r, gin.H{"latex": `\begin{document}\section*{Skills}`})
	assert.Equal(t, "unparsed", v.State)
	assert.Empty(t, v.Blocks)
	assert.NotEmpty(t, v.Message)

	w := do(t, r, http.MethodPost, "/api/v1/editor/sessions/"+id+"/edits", gin.H{"op": "set_title", "block": 0, "value": "x"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, r, http.MethodPut, "/api/v1/editor/sessions/"+id+"/text", gin.H{"latex": janeDoe})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "structured", decodeView(t, w).State)
}

func TestEditorHandler_BadEdits(t *testing.T) {
	r := newEditorRouter(t, &fakeResumes{})
	id, _ := openSession(t, r, gin.H{"latex": janeDoe})

	tests := []struct {
		name string
		body gin.H
		code int
	}{
		{"unknown op", gin.H{"op": "rename", "block": 1}, http.StatusBadRequest},
		{"block out of range", gin.H{"op": "set_title", "block": 7, "value": "x"}, http.StatusBadRequest},
		{"wrong kind", gin.H{"op": "set_title", "block": 0, "value": "x"}, http.StatusBadRequest},
		{"item out of range", gin.H{"op": "remove_item", "block": 1, "item": 4}, http.StatusBadRequest},
		{"brace in title", gin.H{"op": "set_title", "block": 1, "value": "C{++}"}, http.StatusBadRequest},
		{"content on list section", gin.H{"op": "set_content", "block": 1, "value": "x"}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, http.MethodPost, "/api/v1/editor/sessions/"+id+"/edits", tt.body)
			assert.Equal(t, tt.code, w.Code, w.Body.String())
		})
	}
}

func TestEditorHandler_ReadOnlySession(t *testing.T) {
	r := newEditorRouter(t, &fakeResumes{})
	id, v := openSession(t, r, gin.H{"latex": janeDoe, "read_only": true})
	assert.True(t, v.ReadOnly)

	w := do(t, r, http.MethodPost, "/api/v1/editor/sessions/"+id+"/edits", gin.H{"op": "add_item", "block": 1})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, r, http.MethodPut, "/api/v1/editor/sessions/"+id+"/text", gin.H{"latex": "replaced"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestEditorHandler_StoredResumeIsPersisted(t *testing.T) {
	store := &fakeResumes{stored: map[string]string{"master": janeDoe}}
	r := newEditorRouter(t, store)
	id, v := openSession(t, r, gin.H{"resume": "master"})
	assert.Equal(t, janeDoe, v.Latex)

	w := do(t, r, http.MethodPost, "/api/v1/editor/sessions/"+id+"/edits",
		gin.H{"op": "set_header_line", "block": 0, "item": 1, "value": "Email: jane@x.com"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, store.stored["master"], "Email: jane@x.com")
	assert.Equal(t, decodeView(t, w).Latex, store.stored["master"])
}

func TestEditorHandler_RawTextIsPersisted(t *testing.T) {
	store := &fakeResumes{stored: map[string]string{"master": `\begin{document}broken`}}
	r := newEditorRouter(t, store)
	id, v := openSession(t, r, gin.H{"resume": "master"})
	require.Equal(t, "unparsed", v.State)

	w := do(t, r, http.MethodPut, "/api/v1/editor/sessions/"+id+"/text", gin.H{"latex": janeDoe})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "structured", decodeView(t, w).State)
	assert.Equal(t, janeDoe, store.stored["master"])
}

func TestEditorHandler_UnknownResume(t *testing.T) {
	r := newEditorRouter(t, &fakeResumes{stored: map[string]string{}})
	w := do(t, r, http.MethodPost, "/api/v1/editor/sessions", gin.H{"resume": "12"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEditorHandler_SelectAndClose(t *testing.T) {
	r := newEditorRouter(t, &fakeResumes{})
	id, _ := openSession(t, r, gin.H{"latex": janeDoe})

	w := do(t, r, http.MethodPut, "/api/v1/editor/sessions/"+id+"/selection", gin.H{"block": 1, "field": "title"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	v := decodeView(t, w)
	require.NotNil(t, v.Selection)
	assert.Equal(t, "title", v.Selection.Field)
	assert.Nil(t, v.Selection.Item)

	w = do(t, r, http.MethodPut, "/api/v1/editor/sessions/"+id+"/selection", gin.H{"block": 1, "field": "sideways"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodDelete, "/api/v1/editor/sessions/"+id, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, r, http.MethodGet, "/api/v1/editor/sessions/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEditorHandler_MissingBody(t *testing.T) {
	r := newEditorRouter(t, &fakeResumes{})
	w := do(t, r, http.MethodPost, "/api/v1/editor/sessions", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
