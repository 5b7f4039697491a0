package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/teamdash/teamdash/internal/api/response"
	"github.com/teamdash/teamdash/internal/api/validation"
	"github.com/teamdash/teamdash/internal/dashboard"
)

// CertificationHandler handles certification endpoints.
type CertificationHandler struct {
	svc *dashboard.Service
}

// NewCertificationHandler creates a new CertificationHandler.
func NewCertificationHandler(svc *dashboard.Service) *CertificationHandler {
	return &CertificationHandler{svc: svc}
}

// ListForMember handles GET /api/team-members/{id}/certifications.
func (h *CertificationHandler) ListForMember(w http.ResponseWriter, r *http.Request) {
	certs, err := h.svc.ListCertifications(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, listResponse(certs))
}

// Create handles POST /api/team-members/{id}/certifications.
func (h *CertificationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in dashboard.CertificationInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if fieldErrors := validation.ValidateCertificationInput(in); len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors)
		return
	}

	c, err := h.svc.CreateCertification(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	response.JSON(w, http.StatusCreated, c)
}

// Update handles PATCH /api/certifications/{id}.
func (h *CertificationHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch dashboard.CertificationPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	if fieldErrors := validation.ValidateCertificationPatch(patch); len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors)
		return
	}

	c, err := h.svc.UpdateCertification(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, c)
}

// Delete handles DELETE /api/certifications/{id}.
func (h *CertificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteCertification(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	response.NoContent(w)
}
