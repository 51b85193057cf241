package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/iudanet/resumeai/internal/models"
	"github.com/iudanet/resumeai/internal/server/interviewer"
	"github.com/iudanet/resumeai/internal/server/respond"
	"github.com/iudanet/resumeai/internal/server/storage"
	"github.com/iudanet/resumeai/internal/validation"
	"github.com/iudanet/resumeai/pkg/api"
)

// ResumeHandler обрабатывает /v1/resumes
type ResumeHandler struct {
	now       func() time.Time
	logger    *slog.Logger
	resumes   storage.ResumeStorage
	validator *validation.Validator
}

// NewResumeHandler создает handler резюме
func NewResumeHandler(logger *slog.Logger, resumes storage.ResumeStorage, v *validation.Validator) *ResumeHandler {
	return &ResumeHandler{
		now:       time.Now,
		logger:    logger,
		resumes:   resumes,
		validator: v,
	}
}

// List обрабатывает GET /v1/resumes. Ответ в формате {data, pagination}.
func (h *ResumeHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pageParams(r)
	if err != nil {
		respond.Detail(w, http.StatusBadRequest, err.Error())
		return
	}

	resumes, total, err := h.resumes.ListResumes(r.Context(), currentUserID(r), limit, offset)
	if err != nil {
		serverError(w, r, h.logger, "failed to list resumes", err)
		return
	}

	items := make([]api.Resume, 0, len(resumes))
	for _, res := range resumes {
		items = append(items, res.API())
	}
	respond.JSON(w, http.StatusOK, api.NewPage(items, total, limit, offset).Envelope())
}

// Get обрабатывает GET /v1/resumes/{id}
func (h *ResumeHandler) Get(w http.ResponseWriter, r *http.Request) {
	resume, ok := h.load(w, r)
	if !ok {
		return
	}
	respond.JSON(w, http.StatusOK, resume.API())
}

// Download обрабатывает GET /v1/resumes/{id}/download?format=.
// Выгрузка поддерживается только в txt, pdf и docx отвечают 501.
func (h *ResumeHandler) Download(w http.ResponseWriter, r *http.Request) {
	format := api.ResumeFormat(r.URL.Query().Get("format"))
	if format == "" {
		format = api.FormatPDF
	}
	if !format.Valid() {
		respond.Error(w, http.StatusBadRequest, respond.CodeBadRequest, fmt.Sprintf("Unsupported format %q", format))
		return
	}

	resume, ok := h.load(w, r)
	if !ok {
		return
	}

	if format != api.FormatTXT {
		respond.Error(w, http.StatusNotImplemented, respond.CodeNotImplemented,
			fmt.Sprintf("Export to %s is not available on this server", format))
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=resume_%s.txt", resume.ID))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(interviewer.RenderText(resume.Data))); err != nil {
		h.logger.WarnContext(r.Context(), "failed to write download", slog.Any("error", err))
	}
}

// Regenerate обрабатывает POST /v1/resumes/{id}/regenerate
func (h *ResumeHandler) Regenerate(w http.ResponseWriter, r *http.Request) {
	var req api.RegenerateResumeRequest
	if !decodeBody(w, r, h.logger, &req, true) {
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respond.Invalid(w, err)
		return
	}

	resume, ok := h.load(w, r)
	if !ok {
		return
	}

	if req.Template != "" {
		resume.Template = req.Template
	}
	if req.Language != "" {
		resume.Language = api.Language(req.Language)
	}
	resume.Title = interviewer.Title(resume.Data, resume.Language)
	resume.Version++
	resume.UpdatedAt = h.now()

	if err := h.resumes.SaveResume(r.Context(), resume); err != nil {
		serverError(w, r, h.logger, "failed to save resume", err)
		return
	}

	h.logger.InfoContext(r.Context(), "resume regenerated",
		slog.String("resume_id", resume.ID),
		slog.Int("version", resume.Version))
	respond.JSON(w, http.StatusOK, resume.API())
}

func (h *ResumeHandler) load(w http.ResponseWriter, r *http.Request) (*models.Resume, bool) {
	resume, err := h.resumes.GetResume(r.Context(), currentUserID(r), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, storage.ErrResumeNotFound) {
			respond.NotFound(w, "Resume not found")
			return nil, false
		}
		serverError(w, r, h.logger, "failed to get resume", err)
		return nil, false
	}
	return resume, true
}
