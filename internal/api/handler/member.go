package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/teamdash/teamdash/internal/api/response"
	"github.com/teamdash/teamdash/internal/api/validation"
	"github.com/teamdash/teamdash/internal/dashboard"
)

// MemberHandler handles team member endpoints.
type MemberHandler struct {
	svc *dashboard.Service
}

// NewMemberHandler creates a new MemberHandler.
func NewMemberHandler(svc *dashboard.Service) *MemberHandler {
	return &MemberHandler{svc: svc}
}

// List handles GET /api/team-members.
func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := dashboard.MemberFilter{
		UserRole: q.Get("userRole"),
		Search:   q.Get("search"),
	}
	if v := q.Get("isLC"); v != "" {
		isLC, err := strconv.ParseBool(v)
		if err != nil {
			response.Err(w, http.StatusBadRequest, "INVALID_QUERY", "isLC must be true or false")
			return
		}
		filter.IsLC = &isLC
	}

	list, err := h.svc.ListMembers(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, list)
}

// Create handles POST /api/team-members.
func (h *MemberHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in dashboard.MemberInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if fieldErrors := validation.ValidateMemberInput(in); len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors)
		return
	}

	m, err := h.svc.CreateMember(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	response.JSON(w, http.StatusCreated, m)
}

// Get handles GET /api/team-members/{id}.
func (h *MemberHandler) Get(w http.ResponseWriter, r *http.Request) {
	detail, err := h.svc.GetMember(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, detail)
}

// Update handles PATCH /api/team-members/{id}. A skills field in the
// body replaces the member's whole skill set.
func (h *MemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch dashboard.MemberPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	if fieldErrors := validation.ValidateMemberPatch(patch); len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors)
		return
	}

	m, err := h.svc.UpdateMember(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, m)
}

// Delete handles DELETE /api/team-members/{id}. Rows referencing the
// member are left in place; reads degrade to empty names for them.
func (h *MemberHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteMember(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	response.NoContent(w)
}

// ListProjects handles GET /api/team-members/{id}/projects.
func (h *MemberHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.ListMemberProjects(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, listResponse(views))
}
