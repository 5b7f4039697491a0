package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/teamdash/teamdash/internal/api/response"
	"github.com/teamdash/teamdash/internal/api/validation"
	"github.com/teamdash/teamdash/internal/dashboard"
)

type listBody[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func listResponse[T any](data []T) listBody[T] {
	return listBody[T]{Data: data, Total: len(data)}
}

// ProjectMemberHandler handles the project allocation sub-resource.
type ProjectMemberHandler struct {
	svc *dashboard.Service
}

// NewProjectMemberHandler creates a new ProjectMemberHandler.
func NewProjectMemberHandler(svc *dashboard.Service) *ProjectMemberHandler {
	return &ProjectMemberHandler{svc: svc}
}

// List handles GET /api/projects/{id}/members.
func (h *ProjectMemberHandler) List(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.ListProjectMembers(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, listResponse(views))
}

// Add handles POST /api/projects/{id}/members.
func (h *ProjectMemberHandler) Add(w http.ResponseWriter, r *http.Request) {
	var in dashboard.ProjectMemberInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if fieldErrors := validation.ValidateProjectMemberInput(in); len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors)
		return
	}

	view, err := h.svc.AddProjectMember(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	response.JSON(w, http.StatusCreated, view)
}

// Update handles PATCH /api/projects/{id}/members/{memberId}.
func (h *ProjectMemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch dashboard.ProjectMemberPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	if fieldErrors := validation.ValidateProjectMemberPatch(patch); len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors)
		return
	}

	view, err := h.svc.UpdateProjectMember(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "memberId"), patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, view)
}

// Remove handles DELETE /api/projects/{id}/members/{memberId}.
func (h *ProjectMemberHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.RemoveProjectMember(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "memberId")); err != nil {
		writeError(w, r, err)
		return
	}
	response.NoContent(w)
}
