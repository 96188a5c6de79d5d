package services

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/justsurfingit/uncooked/internal/latex"
)

var ErrSessionNotFound = errors.New("editor session not found")

// editorSession wraps one latex.Editor. The editor itself is single-threaded,
// so every access goes through mu.
type editorSession struct {
	mu       sync.Mutex
	editor   *latex.Editor
	lastUsed time.Time
}

// EditorService keeps the open editing sessions in memory. Sessions that
// go unused for longer than TTL are dropped by the janitor.
type EditorService struct {
	TTL      time.Duration
	ReadOnly bool

	mu       sync.Mutex
	sessions map[string]*editorSession
	now      func() time.Time
}

func NewEditorService(ttl time.Duration, readOnly bool) *EditorService {
	return &EditorService{
		TTL:      ttl,
		ReadOnly: readOnly,
		sessions: make(map[string]*editorSession),
		now:      time.Now,
	}
}

// Open starts a session over text. onChange, if set, receives the text
// produced by every edit.
func (s *EditorService) Open(text string, readOnly bool, onChange func(string)) (string, *latex.Editor) {
	opts := []latex.EditorOption{latex.WithReadOnly(readOnly || s.ReadOnly)}
	if onChange != nil {
		opts = append(opts, latex.WithOnChange(onChange))
	}
	sess := &editorSession{
		editor:   latex.NewEditor(text, opts...),
		lastUsed: s.now(),
	}
	id := uuid.NewString()

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	if sess.editor.State() == latex.Unparsed {
		log.Printf("⚠️  Editor %s: no structure recognized, raw-text mode only", id)
	}
	return id, sess.editor
}

// Do runs fn against a session's editor while holding the session lock.
func (s *EditorService) Do(id string, fn func(e *latex.Editor) error) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	s.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.lastUsed = s.now()
	return fn(sess.editor)
}

func (s *EditorService) Close(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

// Len is the number of open sessions.
func (s *EditorService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops sessions idle for longer than TTL and returns how many went.
func (s *EditorService) Sweep() int {
	cutoff := s.now().Add(-s.TTL)

	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, sess := range s.sessions {
		sess.mu.Lock()
		idle := sess.lastUsed.Before(cutoff)
		sess.mu.Unlock()
		if idle {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

// StartJanitor sweeps expired sessions in the background until stop is closed.
func (s *EditorService) StartJanitor(stop <-chan struct{}) {
	if s.TTL <= 0 {
		log.Println("⚠️ Editor session expiry disabled (TTL <= 0).")
		return
	}
	ticker := time.NewTicker(s.TTL / 2)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n := s.Sweep(); n > 0 {
					log.Printf("🧹 Dropped %d idle editor sessions", n)
				}
			case <-stop:
				return
			}
		}
	}()
}
