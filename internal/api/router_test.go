package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamdash/teamdash/internal/api"
	"github.com/teamdash/teamdash/internal/dashboard"
)

func newTestServer(t *testing.T) (*httptest.Server, *dashboard.Service) {
	t.Helper()
	svc := dashboard.NewService(dashboard.NewStore(), dashboard.NoLatency{})
	srv := httptest.NewServer(api.NewRouter(api.RouterDeps{Service: svc, Version: "test"}))
	t.Cleanup(srv.Close)
	return srv, svc
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestHealthEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "test", body["version"])
}

func TestProjectCRUDOverHTTP(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/projects", map[string]any{
		"name":      "Alpha",
		"client":    "Acme",
		"type":      "backend",
		"status":    "not-started",
		"startDate": "2025-01-01",
		"endDate":   "2025-06-01",
		"progress":  0,
		"budget":    50000,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	decodeBody(t, resp, &created)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Alpha", created.Name)

	resp = doJSON(t, http.MethodPatch, srv.URL+"/api/projects/"+created.ID, map[string]any{
		"status": "in-progress",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated struct {
		Status string `json:"status"`
		Name   string `json:"name"`
	}
	decodeBody(t, resp, &updated)
	assert.Equal(t, "in-progress", updated.Status)
	assert.Equal(t, "Alpha", updated.Name)

	resp, err := http.Get(srv.URL + "/api/projects")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list struct {
		Data     []json.RawMessage `json:"data"`
		Total    int               `json:"total"`
		Page     int               `json:"page"`
		PageSize int               `json:"pageSize"`
	}
	decodeBody(t, resp, &list)
	assert.Equal(t, 1, list.Total)
	assert.Len(t, list.Data, 1)
	assert.Equal(t, 1, list.Page)

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/projects/"+created.ID, nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/api/projects/" + created.ID)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateProject_ValidationError(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/projects", map[string]any{
		"name":     "",
		"type":     "space-elevator",
		"status":   "not-started",
		"progress": 150,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Details []struct {
				Field string `json:"field"`
			} `json:"details"`
		} `json:"error"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)

	fields := map[string]bool{}
	for _, d := range body.Error.Details {
		fields[d.Field] = true
	}
	assert.True(t, fields["name"])
	assert.True(t, fields["type"])
	assert.True(t, fields["progress"])
}

func TestInvalidJSONBody(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/projects", "application/json", bytes.NewBufferString("{not json"))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "INVALID_JSON", body.Error.Code)
}

func TestNotFoundMapsTo404(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, path := range []string{
		"/api/projects/missing",
		"/api/team-members/missing",
		"/api/issues/missing",
		"/api/standalone-pocs/missing",
	} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)

		var body struct {
			Error struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		decodeBody(t, resp, &body)
		assert.Equal(t, "NOT_FOUND", body.Error.Code, path)
	}
}

func TestAssignmentConflictsMapTo409(t *testing.T) {
	srv, svc := newTestServer(t)
	ctx := context.Background()

	notLC, err := svc.CreateMember(ctx, dashboard.MemberInput{Name: "Dev", Email: "dev@x.dev", UserRole: "developer"})
	require.NoError(t, err)
	mentor, err := svc.CreateMember(ctx, dashboard.MemberInput{Name: "Lead", Email: "lead@x.dev", UserRole: "team-lead", IsLC: true})
	require.NoError(t, err)
	intern, err := svc.CreateMember(ctx, dashboard.MemberInput{Name: "Intern", Email: "intern@x.dev", UserRole: "intern"})
	require.NoError(t, err)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/team-members/"+notLC.ID+"/interns", map[string]any{
		"internId": intern.ID,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/team-members/"+mentor.ID+"/interns", map[string]any{
		"internId": intern.ID,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/team-members/"+mentor.ID+"/interns", map[string]any{
		"internId": intern.ID,
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "CONFLICT", body.Error.Code)
}

func TestListUnderDeletedParentReturnsEmpty(t *testing.T) {
	srv, svc := newTestServer(t)
	ctx := context.Background()

	p, err := svc.CreateProject(ctx, dashboard.ProjectInput{
		Name: "Gone", Client: "X", Type: "backend", Status: "not-started",
	})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteProject(ctx, p.ID))

	resp, err := http.Get(srv.URL + "/api/projects/" + p.ID + "/members")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, "listing under a deleted parent is not an error")

	var body struct {
		Data  []json.RawMessage `json:"data"`
		Total int               `json:"total"`
	}
	decodeBody(t, resp, &body)
	assert.Zero(t, body.Total)
	assert.Empty(t, body.Data)
}

func TestAnalyticsEndpoints(t *testing.T) {
	srv, svc := newTestServer(t)
	ctx := context.Background()

	_, err := svc.CreateProject(ctx, dashboard.ProjectInput{
		Name: "One", Client: "A", Type: "backend", Status: "in-progress", StartDate: "2025-01-10", Progress: 50,
	})
	require.NoError(t, err)

	resp, err := http.Get(srv.URL + "/api/analytics/summary")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var sum struct {
		TotalProjects      int     `json:"totalProjects"`
		InProgressProjects int     `json:"inProgressProjects"`
		AverageProgress    float64 `json:"averageProgress"`
	}
	decodeBody(t, resp, &sum)
	assert.Equal(t, 1, sum.TotalProjects)
	assert.Equal(t, 1, sum.InProgressProjects)
	assert.InDelta(t, 50.0, sum.AverageProgress, 0.001)

	for _, path := range []string{
		"/api/analytics/by-type",
		"/api/analytics/by-status",
		"/api/analytics/team-workload",
		"/api/analytics/timeline",
	} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)

		var body struct {
			Total int `json:"total"`
		}
		decodeBody(t, resp, &body)
		assert.Equal(t, 1, body.Total, path)
	}
}

func TestReportEndpoints(t *testing.T) {
	srv, svc := newTestServer(t)
	ctx := context.Background()

	_, err := svc.CreateProject(ctx, dashboard.ProjectInput{
		Name: "Alpha", Client: "Acme", Type: "backend", Status: "in-progress", Progress: 40, Budget: 1000,
	})
	require.NoError(t, err)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/reports/generate", map[string]any{})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var report struct {
		Report       string `json:"report"`
		ProjectCount int    `json:"projectCount"`
	}
	decodeBody(t, resp, &report)
	assert.Equal(t, 1, report.ProjectCount)
	assert.Contains(t, report.Report, "Alpha")

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/reports/summary", map[string]any{})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var sum struct {
		ProjectCount int     `json:"projectCount"`
		TotalBudget  float64 `json:"totalBudget"`
	}
	decodeBody(t, resp, &sum)
	assert.Equal(t, 1, sum.ProjectCount)
	assert.Equal(t, 1000.0, sum.TotalBudget)
}

func TestMetricsEndpointExposed(t *testing.T) {
	svc := dashboard.NewService(dashboard.NewStore(), dashboard.NoLatency{})
	srv := httptest.NewServer(api.NewRouter(api.RouterDeps{
		Service:  svc,
		Version:  "test",
		Registry: prometheus.NewRegistry(),
	}))
	t.Cleanup(srv.Close)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}
