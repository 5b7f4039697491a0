package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/teamdash/teamdash/internal/api/response"
	"github.com/teamdash/teamdash/internal/dashboard"
)

var notFoundErrors = []error{
	dashboard.ErrProjectNotFound,
	dashboard.ErrTeamMemberNotFound,
	dashboard.ErrProjectMemberNotFound,
	dashboard.ErrIssueNotFound,
	dashboard.ErrCertificationNotFound,
	dashboard.ErrMemberPOCNotFound,
	dashboard.ErrTaskNotFound,
	dashboard.ErrStandalonePOCNotFound,
	dashboard.ErrStandaloneMemberNotFound,
	dashboard.ErrInternAssignmentNotFound,
}

var conflictErrors = []error{
	dashboard.ErrMentorNotLC,
	dashboard.ErrInternNotFound,
	dashboard.ErrDuplicateAssignment,
}

// writeError translates a data-layer error into an HTTP response. The
// facade performs no error translation of its own, so the sentinel's
// message is surfaced to the caller verbatim.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	for _, sentinel := range notFoundErrors {
		if errors.Is(err, sentinel) {
			response.Err(w, http.StatusNotFound, "NOT_FOUND", sentinel.Error())
			return
		}
	}
	for _, sentinel := range conflictErrors {
		if errors.Is(err, sentinel) {
			response.Err(w, http.StatusConflict, "CONFLICT", sentinel.Error())
			return
		}
	}
	slog.Error("request failed", "error", err, "method", r.Method, "path", r.URL.Path)
	response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred")
}

// decodeJSON decodes a request body into v with a 1MB cap. It writes
// the 400 response itself and reports whether decoding succeeded.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON")
		return false
	}
	return true
}
