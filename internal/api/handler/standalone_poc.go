package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/teamdash/teamdash/internal/api/response"
	"github.com/teamdash/teamdash/internal/api/validation"
	"github.com/teamdash/teamdash/internal/dashboard"
)

// StandalonePOCHandler handles standalone-POC endpoints and their ad
// hoc team sub-resource.
type StandalonePOCHandler struct {
	svc *dashboard.Service
}

// NewStandalonePOCHandler creates a new StandalonePOCHandler.
func NewStandalonePOCHandler(svc *dashboard.Service) *StandalonePOCHandler {
	return &StandalonePOCHandler{svc: svc}
}

// List handles GET /api/standalone-pocs.
func (h *StandalonePOCHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := dashboard.StandalonePOCFilter{
		Status: q.Get("status"),
		Search: q.Get("search"),
	}
	list, err := h.svc.ListStandalonePOCs(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, list)
}

// Create handles POST /api/standalone-pocs.
func (h *StandalonePOCHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in dashboard.StandalonePOCInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if fieldErrors := validation.ValidateStandalonePOCInput(in); len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors)
		return
	}

	poc, err := h.svc.CreateStandalonePOC(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	response.JSON(w, http.StatusCreated, poc)
}

// Get handles GET /api/standalone-pocs/{id}.
func (h *StandalonePOCHandler) Get(w http.ResponseWriter, r *http.Request) {
	poc, err := h.svc.GetStandalonePOC(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, poc)
}

// Update handles PATCH /api/standalone-pocs/{id}. A technologies field
// in the body replaces the POC's whole technology set.
func (h *StandalonePOCHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch dashboard.StandalonePOCPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	if fieldErrors := validation.ValidateStandalonePOCPatch(patch); len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors)
		return
	}

	poc, err := h.svc.UpdateStandalonePOC(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, poc)
}

// Delete handles DELETE /api/standalone-pocs/{id}. Technology and team
// rows cascade.
func (h *StandalonePOCHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteStandalonePOC(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	response.NoContent(w)
}

// ListMembers handles GET /api/standalone-pocs/{id}/members.
func (h *StandalonePOCHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.svc.ListStandalonePOCMembers(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, listResponse(members))
}

// AddMember handles POST /api/standalone-pocs/{id}/members.
func (h *StandalonePOCHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	var in dashboard.StandalonePOCMemberInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if fieldErrors := validation.ValidateStandalonePOCMemberInput(in); len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors)
		return
	}

	row, err := h.svc.AddStandalonePOCMember(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	response.JSON(w, http.StatusCreated, row)
}

// UpdateMember handles PATCH /api/standalone-pocs/{id}/members/{memberId}.
func (h *StandalonePOCHandler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	var patch dashboard.StandalonePOCMemberPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	row, err := h.svc.UpdateStandalonePOCMember(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "memberId"), patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, row)
}

// RemoveMember handles DELETE /api/standalone-pocs/{id}/members/{memberId}.
func (h *StandalonePOCHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.RemoveStandalonePOCMember(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "memberId")); err != nil {
		writeError(w, r, err)
		return
	}
	response.NoContent(w)
}
