package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/teamdash/teamdash/internal/api/response"
	"github.com/teamdash/teamdash/internal/api/validation"
	"github.com/teamdash/teamdash/internal/dashboard"
)

// IssueHandler handles issue endpoints. Issues are created under a
// project but addressed by their own id afterwards.
type IssueHandler struct {
	svc *dashboard.Service
}

// NewIssueHandler creates a new IssueHandler.
func NewIssueHandler(svc *dashboard.Service) *IssueHandler {
	return &IssueHandler{svc: svc}
}

// ListForProject handles GET /api/projects/{id}/issues.
func (h *IssueHandler) ListForProject(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := dashboard.IssueFilter{
		Status:   q.Get("status"),
		Priority: q.Get("priority"),
	}
	issues, err := h.svc.ListIssues(r.Context(), chi.URLParam(r, "id"), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, listResponse(issues))
}

// Create handles POST /api/projects/{id}/issues.
func (h *IssueHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in dashboard.IssueInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if fieldErrors := validation.ValidateIssueInput(in); len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors)
		return
	}

	issue, err := h.svc.CreateIssue(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	response.JSON(w, http.StatusCreated, issue)
}

// Get handles GET /api/issues/{id}.
func (h *IssueHandler) Get(w http.ResponseWriter, r *http.Request) {
	issue, err := h.svc.GetIssue(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, issue)
}

// Update handles PATCH /api/issues/{id}.
func (h *IssueHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch dashboard.IssuePatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	if fieldErrors := validation.ValidateIssuePatch(patch); len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors)
		return
	}

	issue, err := h.svc.UpdateIssue(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, issue)
}

// Delete handles DELETE /api/issues/{id}.
func (h *IssueHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteIssue(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	response.NoContent(w)
}
