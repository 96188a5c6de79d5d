package services

import (
	"sync"
	"testing"
	"time"

	"github.com/justsurfingit/uncooked/internal/latex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const skillsResume = `\begin{document}\section*{Skills}\begin{itemize}[noitemsep]
\item Python
\item Go
\end{itemize}\end{document}`

func TestEditorService_OpenDoClose(t *testing.T) {
	svc := NewEditorService(time.Minute, false)

	var saved []string
	id, e := svc.Open(skillsResume, false, func(text string) { saved = append(saved, text) })
	require.NotEmpty(t, id)
	assert.Equal(t, latex.Structured, e.State())
	assert.Equal(t, 1, svc.Len())

	err := svc.Do(id, func(e *latex.Editor) error {
		_, err := e.Apply(latex.Edit{Op: latex.OpSetItem, Block: 0, Item: 1, Value: "Go, Rust"})
		return err
	})
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Contains(t, saved[0], `\item Go, Rust`)

	require.NoError(t, svc.Close(id))
	assert.ErrorIs(t, svc.Close(id), ErrSessionNotFound)
	assert.ErrorIs(t, svc.Do(id, func(*latex.Editor) error { return nil }), ErrSessionNotFound)
}

func TestEditorService_ReadOnlyOverride(t *testing.T) {
	svc := NewEditorService(time.Minute, true)
	_, e := svc.Open(skillsResume, false, nil)
	assert.True(t, e.ReadOnly())
}

func TestEditorService_Sweep(t *testing.T) {
	svc := NewEditorService(10*time.Minute, false)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	stale, _ := svc.Open(skillsResume, false, nil)
	now = now.Add(8 * time.Minute)
	fresh, _ := svc.Open(skillsResume, false, nil)
	now = now.Add(5 * time.Minute)

	assert.Equal(t, 1, svc.Sweep())
	assert.ErrorIs(t, svc.Do(stale, func(*latex.Editor) error { return nil }), ErrSessionNotFound)
	assert.NoError(t, svc.Do(fresh, func(*latex.Editor) error { return nil }))
}

func TestEditorService_ConcurrentEditsSerialize(t *testing.T) {
	svc := NewEditorService(time.Minute, false)
	id, _ := svc.Open(skillsResume, false, nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = svc.Do(id, func(e *latex.Editor) error {
				_, err := e.Apply(latex.Edit{Op: latex.OpAddItem, Block: 0})
				return err
			})
		}()
	}
	wg.Wait()

	_ = svc.Do(id, func(e *latex.Editor) error {
		assert.Len(t, e.Document().Blocks[0].(*latex.SectionBlock).Items, 22)
		return nil
	})
}

func TestParseResumeID(t *testing.T) {
	id, err := ParseResumeID("42")
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	for _, bad := range []string{"", "0", "-3", "abc"} {
		_, err := ParseResumeID(bad)
		assert.ErrorIs(t, err, ErrBadResumeRef, bad)
	}
}
