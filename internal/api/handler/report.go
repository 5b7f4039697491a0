package handler

import (
	"net/http"

	"github.com/teamdash/teamdash/internal/api/response"
	"github.com/teamdash/teamdash/internal/dashboard"
)

type reportSummaryRequest struct {
	ProjectIDs []string `json:"projectIds"`
}

// ReportHandler handles report generation endpoints.
type ReportHandler struct {
	svc *dashboard.Service
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(svc *dashboard.Service) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// Generate handles POST /api/reports/generate.
func (h *ReportHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var filter dashboard.ReportFilter
	if !decodeJSON(w, r, &filter) {
		return
	}

	report, err := h.svc.GenerateReport(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, report)
}

// Summary handles POST /api/reports/summary.
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	var req reportSummaryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sum, err := h.svc.GetReportSummary(r.Context(), req.ProjectIDs)
	if err != nil {
		writeError(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, sum)
}
