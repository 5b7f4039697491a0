package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/teamdash/teamdash/internal/api/response"
	"github.com/teamdash/teamdash/internal/api/validation"
	"github.com/teamdash/teamdash/internal/dashboard"
)

// TaskHandler handles task endpoints.
type TaskHandler struct {
	svc *dashboard.Service
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(svc *dashboard.Service) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// ListForMember handles GET /api/team-members/{id}/tasks.
func (h *TaskHandler) ListForMember(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.svc.ListTasks(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, listResponse(tasks))
}

// Create handles POST /api/team-members/{id}/tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in dashboard.TaskInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if fieldErrors := validation.ValidateTaskInput(in); len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors)
		return
	}

	task, err := h.svc.CreateTask(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	response.JSON(w, http.StatusCreated, task)
}

// Update handles PATCH /api/tasks/{id}.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch dashboard.TaskPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	if fieldErrors := validation.ValidateTaskPatch(patch); len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors)
		return
	}

	task, err := h.svc.UpdateTask(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, task)
}

// Delete handles DELETE /api/tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteTask(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	response.NoContent(w)
}
