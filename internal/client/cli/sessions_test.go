package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/iudanet/resumeai/internal/client/api"
	pkgapi "github.com/iudanet/resumeai/pkg/api"
)

func createSessions(t *testing.T, h *harness, n int) []pkgapi.InterviewSession {
	t.Helper()
	out := make([]pkgapi.InterviewSession, 0, n)
	for range n {
		s, err := h.api.CreateSession(context.Background(), pkgapi.CreateSessionRequest{Language: pkgapi.LanguageEN})
		require.NoError(t, err)
		out = append(out, *s)
	}
	return out
}

func TestSessionsScreen_PagingDeleteComplete(t *testing.T) {
	h := newHarness(t, Options{PageSize: 2})
	h.signUp(t, "alice")
	created := createSessions(t, h, 3)
	newest := created[2]

	h.typeLines("m", "m", "d 1", "y", "c 1", "x", "o 9", "q")
	require.NoError(t, h.run(t, "sessions"))

	out := h.output()
	assert.Contains(t, out, "=== Interview Sessions ===")
	assert.Contains(t, out, "Showing 2 of 3")
	assert.Contains(t, out, "Type 'm' to load more.")
	assert.Contains(t, out, "Showing 3 of 3")
	assert.Contains(t, out, "All sessions are loaded.")
	assert.Contains(t, out, "Delete session "+shortID(newest.ID)+"? This cannot be undone. [y/N]: ")
	assert.Contains(t, out, "✓ Session deleted")
	assert.Contains(t, out, "✓ Interview completed, resume ")
	assert.Contains(t, out, "   Resume: Test User (")
	assert.Contains(t, out, `Unknown command "x".`)
	assert.Contains(t, out, `Error: invalid number "9": expected 1..2`)

	_, err := h.api.GetSession(context.Background(), newest.ID)
	assert.Equal(t, 404, clientapi.StatusOf(err))

	completed, err := h.api.GetSession(context.Background(), created[1].ID)
	require.NoError(t, err)
	assert.Equal(t, pkgapi.StatusCompleted, completed.Status)
}

func TestSessionsScreen_DeclineDelete(t *testing.T) {
	h := newHarness(t, Options{})
	h.signUp(t, "alice")
	created := createSessions(t, h, 1)

	h.typeLines("d 1", "n")
	require.NoError(t, h.run(t, "sessions"))

	assert.NotContains(t, h.output(), "✓ Session deleted")
	_, err := h.api.GetSession(context.Background(), created[0].ID)
	require.NoError(t, err)
}

func TestSessionsScreen_Empty(t *testing.T) {
	h := newHarness(t, Options{})
	h.signUp(t, "alice")

	require.NoError(t, h.run(t, "sessions"))
	assert.Contains(t, h.output(), "No sessions yet. Run 'resumeai start' to begin an interview.")
}

func TestSessionsScreen_OpenCompleted(t *testing.T) {
	h := newHarness(t, Options{})
	h.signUp(t, "alice")
	_, resume := h.completedSession(t)

	h.typeLines("c 1", "o 1")
	require.NoError(t, h.run(t, "sessions"))

	out := h.output()
	assert.Contains(t, out, "[completed]  [####################] 100%")
	assert.Contains(t, out, "   Resume: Ivan Petrov, Go developer ("+resume.ID+")")
	assert.Contains(t, out, "Error: only interviews in progress can be completed")
	assert.Contains(t, out, "=== Your Resume ===")
	assert.Contains(t, out, "Resume ID: "+resume.ID)
}

func TestSessionsScreen_OpenInProgress(t *testing.T) {
	h := newHarness(t, Options{})
	h.signUp(t, "alice")
	created := createSessions(t, h, 1)

	h.typeLines("o 1", "/quit")
	require.NoError(t, h.run(t, "sessions"))

	assert.Contains(t, h.output(), "=== Interview ===")
	assert.Equal(t, created[0].ID, lastSession(t, h))
}
