package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/teamdash/teamdash/internal/api/response"
	"github.com/teamdash/teamdash/internal/api/validation"
	"github.com/teamdash/teamdash/internal/dashboard"
)

// MemberPOCHandler handles member-POC endpoints.
type MemberPOCHandler struct {
	svc *dashboard.Service
}

// NewMemberPOCHandler creates a new MemberPOCHandler.
func NewMemberPOCHandler(svc *dashboard.Service) *MemberPOCHandler {
	return &MemberPOCHandler{svc: svc}
}

// ListForMember handles GET /api/team-members/{id}/pocs.
func (h *MemberPOCHandler) ListForMember(w http.ResponseWriter, r *http.Request) {
	pocs, err := h.svc.ListMemberPOCs(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, listResponse(pocs))
}

// Create handles POST /api/team-members/{id}/pocs.
func (h *MemberPOCHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in dashboard.MemberPOCInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if fieldErrors := validation.ValidateMemberPOCInput(in); len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors)
		return
	}

	poc, err := h.svc.CreateMemberPOC(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	response.JSON(w, http.StatusCreated, poc)
}

// Update handles PATCH /api/pocs/{id}. A technologies field in the body
// replaces the POC's whole technology set.
func (h *MemberPOCHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch dashboard.MemberPOCPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	if fieldErrors := validation.ValidateMemberPOCPatch(patch); len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors)
		return
	}

	poc, err := h.svc.UpdateMemberPOC(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, poc)
}

// Delete handles DELETE /api/pocs/{id}. Technology rows cascade.
func (h *MemberPOCHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteMemberPOC(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	response.NoContent(w)
}
