package handler

import (
	"net/http"
	"strconv"

	"github.com/teamdash/teamdash/internal/api/response"
	"github.com/teamdash/teamdash/internal/dashboard"
)

// AnalyticsHandler handles the read-only analytics endpoints.
type AnalyticsHandler struct {
	svc *dashboard.Service
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(svc *dashboard.Service) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

// Summary handles GET /api/analytics/summary.
func (h *AnalyticsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.svc.GetSummary(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, sum)
}

// ByType handles GET /api/analytics/by-type.
func (h *AnalyticsHandler) ByType(w http.ResponseWriter, r *http.Request) {
	buckets, err := h.svc.ProjectsByType(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, listResponse(buckets))
}

// ByStatus handles GET /api/analytics/by-status.
func (h *AnalyticsHandler) ByStatus(w http.ResponseWriter, r *http.Request) {
	buckets, err := h.svc.ProjectsByStatus(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, listResponse(buckets))
}

// TeamWorkload handles GET /api/analytics/team-workload?limit=N.
func (h *AnalyticsHandler) TeamWorkload(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, err := h.svc.TeamWorkload(r.Context(), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, listResponse(entries))
}

// Timeline handles GET /api/analytics/timeline.
func (h *AnalyticsHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	buckets, err := h.svc.Timeline(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, listResponse(buckets))
}

// IssueStats handles GET /api/analytics/issue-stats.
func (h *AnalyticsHandler) IssueStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetIssueStats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, stats)
}
