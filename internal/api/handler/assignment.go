package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/teamdash/teamdash/internal/api/response"
	"github.com/teamdash/teamdash/internal/dashboard"
)

type createAssignmentRequest struct {
	InternID string `json:"internId"`
}

type replaceAssignmentsRequest struct {
	InternIDs []string `json:"internIds"`
}

// AssignmentHandler handles the LC intern-assignment sub-resource.
type AssignmentHandler struct {
	svc *dashboard.Service
}

// NewAssignmentHandler creates a new AssignmentHandler.
func NewAssignmentHandler(svc *dashboard.Service) *AssignmentHandler {
	return &AssignmentHandler{svc: svc}
}

// List handles GET /api/team-members/{id}/interns.
func (h *AssignmentHandler) List(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.ListInternAssignments(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, listResponse(views))
}

// Create handles POST /api/team-members/{id}/interns.
func (h *AssignmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAssignmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.InternID == "" {
		response.Err(w, http.StatusBadRequest, "VALIDATION_ERROR", "internId is required")
		return
	}

	row, err := h.svc.CreateInternAssignment(r.Context(), chi.URLParam(r, "id"), req.InternID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	response.JSON(w, http.StatusCreated, row)
}

// Replace handles PUT /api/team-members/{id}/interns: the mentor's
// whole assignment set is swapped for the supplied one.
func (h *AssignmentHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var req replaceAssignmentsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rows, err := h.svc.ReplaceInternAssignments(r.Context(), chi.URLParam(r, "id"), req.InternIDs)
	if err != nil {
		writeError(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, listResponse(rows))
}

// Delete handles DELETE /api/team-members/{id}/interns/{internId}.
func (h *AssignmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteInternAssignment(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "internId")); err != nil {
		writeError(w, r, err)
		return
	}
	response.NoContent(w)
}
