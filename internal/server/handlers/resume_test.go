package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/resumeai/pkg/api"
)

// completedResume проходит интервью целиком и возвращает id резюме
func (s *testServer) completedResume(t *testing.T, token string) string {
	t.Helper()

	session := s.createSession(t, token, api.LanguageEN)
	for _, answer := range interviewAnswers {
		s.send(t, token, session.ID, answer)
	}

	var resume api.Resume
	s.decode(t, http.MethodGet, "/interview/sessions/"+session.ID+"/resume", token, nil, http.StatusOK, &resume)
	return resume.ID
}

func TestListResumes_Envelope(t *testing.T) {
	srv := newTestServer(t, nil)
	token := srv.register(t, "alice")
	first := srv.completedResume(t, token)
	srv.completedResume(t, token)

	var page api.DataPage[api.Resume]
	srv.decode(t, http.MethodGet, "/resumes?limit=1&offset=1", token, nil, http.StatusOK, &page)

	require.Len(t, page.Data, 1)
	assert.Equal(t, first, page.Data[0].ID, "newest first")
	assert.Equal(t, api.Pagination{Total: 2, Limit: 1, Offset: 1, HasMore: false}, page.Pagination)
}

func TestDownloadResume(t *testing.T) {
	srv := newTestServer(t, nil)
	token := srv.register(t, "alice")
	id := srv.completedResume(t, token)

	t.Run("txt", func(t *testing.T) {
		resp, body := srv.do(t, http.MethodGet, "/resumes/"+id+"/download?format=txt", token, nil)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "text/plain; charset=utf-8", resp.Header.Get("Content-Type"))
		assert.Equal(t, "attachment; filename=resume_"+id+".txt", resp.Header.Get("Content-Disposition"))
		assert.Contains(t, string(body), "IVAN PETROV")
		assert.Contains(t, string(body), "Go developer, Acme")
	})

	t.Run("pdf not implemented", func(t *testing.T) {
		resp, body := srv.do(t, http.MethodGet, "/resumes/"+id+"/download", token, nil)

		assert.Equal(t, http.StatusNotImplemented, resp.StatusCode)
		assert.JSONEq(t, `{"error":{"code":"NOT_IMPLEMENTED","message":"Export to pdf is not available on this server"}}`, string(body))
	})

	t.Run("unknown format", func(t *testing.T) {
		resp, _ := srv.do(t, http.MethodGet, "/resumes/"+id+"/download?format=odt", token, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("missing resume", func(t *testing.T) {
		resp, body := srv.do(t, http.MethodGet, "/resumes/missing/download?format=txt", token, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Contains(t, string(body), "NOT_FOUND")
	})
}

func TestRegenerateResume(t *testing.T) {
	srv := newTestServer(t, nil)
	token := srv.register(t, "alice")
	id := srv.completedResume(t, token)

	var resume api.Resume
	srv.decode(t, http.MethodPost, "/resumes/"+id+"/regenerate", token,
		api.RegenerateResumeRequest{Template: "classic", Language: "ru"}, http.StatusOK, &resume)

	assert.Equal(t, 2, resume.Version)
	assert.Equal(t, "classic", resume.Template)
	assert.Equal(t, api.LanguageRU, resume.Language)

	var stored api.Resume
	srv.decode(t, http.MethodGet, "/resumes/"+id, token, nil, http.StatusOK, &stored)
	assert.Equal(t, 2, stored.Version)

	resp, _ := srv.do(t, http.MethodPost, "/resumes/"+id+"/regenerate", token,
		api.RegenerateResumeRequest{Template: "fancy"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestResume_ForeignUser(t *testing.T) {
	srv := newTestServer(t, nil)
	id := srv.completedResume(t, srv.register(t, "alice"))
	bob := srv.register(t, "bob")

	resp, _ := srv.do(t, http.MethodGet, "/resumes/"+id, bob, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var page api.DataPage[api.Resume]
	srv.decode(t, http.MethodGet, "/resumes", bob, nil, http.StatusOK, &page)
	assert.Empty(t, page.Data)
	assert.NotNil(t, page.Data)
}
