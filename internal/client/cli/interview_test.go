package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgapi "github.com/iudanet/resumeai/pkg/api"
)

func lastSession(t *testing.T, h *harness) string {
	t.Helper()
	id, err := h.store.GetLastSession(context.Background())
	require.NoError(t, err)
	return id
}

func TestStartScreen_FullInterview(t *testing.T) {
	h := newHarness(t, Options{})
	h.signUp(t, "alice")

	h.typeLines(interviewAnswers...)
	h.typeLines("y")

	require.NoError(t, h.run(t, "start", "en"))

	out := h.output()
	assert.Contains(t, out, "Hello, Test User!")
	assert.Contains(t, out, "AI: Hi!")
	assert.Contains(t, out, "Progress: [####----------------] 20%")
	assert.Contains(t, out, "Progress: [####################] 100%")
	assert.Contains(t, out, "✓ Interview complete!")
	assert.Contains(t, out, "=== Your Resume ===")
	assert.Contains(t, out, "# Ivan Petrov")
	assert.Contains(t, out, "### Go developer, Acme")
	assert.Contains(t, out, "**Technical:** Go, PostgreSQL, Docker")

	sessionID := lastSession(t, h)
	require.NotEmpty(t, sessionID)

	path := filepath.Join(h.dir, "resume-"+shortID(sessionID)+".md")
	assert.Contains(t, out, "✓ Saved to "+path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# Ivan Petrov"))

	lang, err := h.store.GetLanguage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, pkgapi.LanguageEN, lang)
}

func TestStartScreen_LanguagePrompt(t *testing.T) {
	h := newHarness(t, Options{})
	h.signUp(t, "alice")
	require.NoError(t, h.store.SaveLanguage(context.Background(), pkgapi.LanguageEN))

	// пустой ответ берет сохраненный язык, затем EOF закрывает экран
	h.typeLines("")
	require.NoError(t, h.run(t, "start"))

	out := h.output()
	assert.Contains(t, out, "Interview language [ru/en] (default en): ")
	assert.Contains(t, out, "What is your full name")

	h.typeLines("de")
	err := h.run(t, "start")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported language "de"`)
}

func TestInterviewScreen_QuitAndContinue(t *testing.T) {
	h := newHarness(t, Options{})
	h.signUp(t, "alice")

	h.typeLines("Ivan Petrov", "", "/help", "/quit")
	require.NoError(t, h.run(t, "start", "en"))

	sessionID := lastSession(t, h)
	out := h.output()
	assert.Contains(t, out, "Commands: /end finish early, /quit continue later.")
	assert.Contains(t, out, "Continue later with: resumeai interview "+sessionID)

	// история загружается заново, EOF оставляет интервью на потом
	require.NoError(t, h.run(t, "interview"))
	out = h.output()
	assert.Contains(t, out, "You: Ivan Petrov")
	assert.Contains(t, out, "Progress: [####----------------] 20%")
	assert.Contains(t, out, "Your answers are saved.")

	session, err := h.api.GetSession(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, 3, session.MessageCount)
	assert.Equal(t, pkgapi.StatusInProgress, session.Status)
}

func TestInterviewScreen_NothingToContinue(t *testing.T) {
	h := newHarness(t, Options{})
	h.signUp(t, "alice")

	err := h.run(t, "interview")
	require.Error(t, err)
	assert.Contains(t, h.output(), "Error: no interview to continue")

	require.Error(t, h.run(t, "interview", "missing"))
	assert.Contains(t, h.output(), "Error: Session not found")
}

func TestInterviewScreen_EndEarly(t *testing.T) {
	h := newHarness(t, Options{})
	h.signUp(t, "alice")

	h.typeLines("/end", "x", "c")
	require.NoError(t, h.run(t, "start", "en"))

	out := h.output()
	assert.Contains(t, out, "=== Finish the interview? ===")
	assert.Contains(t, out, "Not all sections are covered yet")
	assert.Contains(t, out, "Please choose c, l or b.")
	assert.Contains(t, out, "Completing the interview...")
	assert.Contains(t, out, "# Test User", "profile fills the empty resume")
	assert.NotContains(t, out, "✓ Saved to", "EOF declines saving")

	session, err := h.api.GetSession(context.Background(), lastSession(t, h))
	require.NoError(t, err)
	assert.Equal(t, pkgapi.StatusCompleted, session.Status)
}

func TestInterviewScreen_EndDialogBackAndLater(t *testing.T) {
	h := newHarness(t, Options{})
	h.signUp(t, "alice")

	h.typeLines("/end", "b", "Ivan Petrov", "/end", "l")
	require.NoError(t, h.run(t, "start", "en"))

	out := h.output()
	assert.Equal(t, 2, strings.Count(out, "=== Finish the interview? ==="))
	assert.Contains(t, out, "Continue later with: resumeai interview")

	session, err := h.api.GetSession(context.Background(), lastSession(t, h))
	require.NoError(t, err)
	assert.Equal(t, pkgapi.StatusInProgress, session.Status)
	assert.Equal(t, 20, session.Progress.Percentage)
}

func TestInterviewScreen_CompletedSession(t *testing.T) {
	h := newHarness(t, Options{})
	h.signUp(t, "alice")
	session, resume := h.completedSession(t)

	require.NoError(t, h.run(t, "interview", session.ID))

	out := h.output()
	assert.Contains(t, out, "This interview is already completed.")
	assert.Contains(t, out, "Resume ID: "+resume.ID)
}

func TestCompleteCommand(t *testing.T) {
	h := newHarness(t, Options{})
	h.signUp(t, "alice")

	session, err := h.api.CreateSession(context.Background(), pkgapi.CreateSessionRequest{Language: pkgapi.LanguageEN})
	require.NoError(t, err)

	require.NoError(t, h.run(t, "complete", "--save", session.ID))

	out := h.output()
	assert.Contains(t, out, "Generating your resume...")
	assert.Contains(t, out, "=== Your Resume ===")
	assert.NotContains(t, out, "Save as markdown?")
	assert.FileExists(t, filepath.Join(h.dir, "resume-"+shortID(session.ID)+".md"))

	require.Error(t, h.run(t, "complete"))
	assert.Contains(t, h.output(), "missing argument")
}
