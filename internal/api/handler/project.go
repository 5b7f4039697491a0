package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/teamdash/teamdash/internal/api/response"
	"github.com/teamdash/teamdash/internal/api/validation"
	"github.com/teamdash/teamdash/internal/dashboard"
)

// ProjectHandler handles project CRUD endpoints.
type ProjectHandler struct {
	svc *dashboard.Service
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(svc *dashboard.Service) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// List handles GET /api/projects.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := dashboard.ProjectFilter{
		Type:   q.Get("type"),
		Status: q.Get("status"),
		Search: q.Get("search"),
	}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.PageSize, _ = strconv.Atoi(q.Get("pageSize"))

	list, err := h.svc.ListProjects(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, list)
}

// Create handles POST /api/projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in dashboard.ProjectInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if fieldErrors := validation.ValidateProjectInput(in); len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors)
		return
	}

	p, err := h.svc.CreateProject(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	response.JSON(w, http.StatusCreated, p)
}

// Get handles GET /api/projects/{id}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	detail, err := h.svc.GetProject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, detail)
}

// Update handles PATCH /api/projects/{id}.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch dashboard.ProjectPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	if fieldErrors := validation.ValidateProjectPatch(patch); len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors)
		return
	}

	p, err := h.svc.UpdateProject(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, p)
}

// Delete handles DELETE /api/projects/{id}. Deleting a project cascades
// to its allocations and issues.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteProject(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	response.NoContent(w)
}
