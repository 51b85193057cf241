package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumesCommand(t *testing.T) {
	h := newHarness(t, Options{})
	h.signUp(t, "alice")

	require.NoError(t, h.run(t, "resumes"))
	assert.Contains(t, h.output(), "No resumes found.")

	session, resume := h.completedSession(t)

	require.NoError(t, h.run(t, "resumes"))
	out := h.output()
	assert.Contains(t, out, "1. Ivan Petrov, Go developer")
	assert.Contains(t, out, "   ID:       "+resume.ID)
	assert.Contains(t, out, "   Session:  "+session.ID)
	assert.Contains(t, out, "   Template: modern, language en, version 1")
	assert.Contains(t, out, "Showing 1-1 of 1")
	assert.NotContains(t, out, "More:")

	err := h.run(t, "resumes", "--offset", "-1")
	require.Error(t, err)
	assert.Contains(t, h.output(), "Error: offset must not be negative")
}

func TestResumeCommand(t *testing.T) {
	h := newHarness(t, Options{})
	h.signUp(t, "alice")
	_, resume := h.completedSession(t)

	require.NoError(t, h.run(t, "resume", resume.ID))
	out := h.output()
	assert.True(t, strings.HasPrefix(out, "# Ivan Petrov\n"))
	assert.Contains(t, out, "## Education")
	assert.Contains(t, out, "### BSc Computer Science, MSU")

	require.Error(t, h.run(t, "resume", "missing"))
	assert.Contains(t, h.output(), "Error: Resume not found")
}

func TestDownloadCommand(t *testing.T) {
	h := newHarness(t, Options{})
	h.signUp(t, "alice")
	_, resume := h.completedSession(t)

	t.Run("txt", func(t *testing.T) {
		require.NoError(t, h.run(t, "download", "--format", "txt", resume.ID))

		path := filepath.Join(h.dir, "resume_"+resume.ID+".txt")
		assert.Contains(t, h.output(), "✓ Saved to "+path)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "IVAN PETROV"))
	})

	t.Run("pdf not available", func(t *testing.T) {
		require.Error(t, h.run(t, "download", resume.ID))
		out := h.output()
		assert.Contains(t, out, "Downloading pdf...")
		assert.Contains(t, out, "Error: Export to pdf is not available on this server")
		assert.NoFileExists(t, filepath.Join(h.dir, "resume_"+resume.ID+".pdf"))
	})

	t.Run("unsupported format", func(t *testing.T) {
		require.Error(t, h.run(t, "download", "--format", "odt", resume.ID))
		assert.Contains(t, h.output(), `Error: unsupported format "odt": use pdf, docx or txt`)
	})

	t.Run("missing id", func(t *testing.T) {
		require.Error(t, h.run(t, "download", "--format", "txt"))
		assert.Contains(t, h.output(), "Error: missing argument. Usage: resumeai download")
	})
}

func TestRegenerateCommand(t *testing.T) {
	h := newHarness(t, Options{})
	h.signUp(t, "alice")
	_, resume := h.completedSession(t)

	require.NoError(t, h.run(t, "regenerate", "--template", "classic", "--language", "ru", resume.ID))
	out := h.output()
	assert.Contains(t, out, "✓ Resume regenerated: template classic, language ru, version 2")
	assert.Contains(t, out, "View it with: resumeai resume "+resume.ID)

	require.Error(t, h.run(t, "regenerate", "--template", "fancy", resume.ID))
	out = h.output()
	assert.Contains(t, out, "Error: template must be one of: modern classic minimal creative")
	assert.NotContains(t, out, "Regenerating...")

	require.Error(t, h.run(t, "regenerate", "--bogus", resume.ID))
	assert.Contains(t, h.output(), "Error: invalid arguments")
}
