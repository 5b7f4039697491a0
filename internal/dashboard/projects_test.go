package dashboard_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamdash/teamdash/internal/dashboard"
)

func sampleProjectInput() dashboard.ProjectInput {
	return dashboard.ProjectInput{
		Name:      "Alpha",
		Client:    "Acme",
		Type:      "backend",
		Status:    "not-started",
		StartDate: "2025-01-01",
		EndDate:   "2025-06-01",
		Progress:  0,
		Budget:    50000,
	}
}

func TestCreateProject_RoundTrip(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	in := sampleProjectInput()
	created := createProject(t, svc, in)

	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.UpdatedAt.IsZero())

	got, err := svc.GetProject(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, in.Name, got.Name)
	assert.Equal(t, in.Client, got.Client)
	assert.Equal(t, in.Type, got.Type)
	assert.Equal(t, in.Status, got.Status)
	assert.Equal(t, in.StartDate, got.StartDate)
	assert.Equal(t, in.EndDate, got.EndDate)
	assert.Equal(t, in.Progress, got.Progress)
	assert.Equal(t, in.Budget, got.Budget)
	assert.Empty(t, got.TeamMembers)
	assert.Empty(t, got.Issues)
}

func TestGetProject_NotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.GetProject(context.Background(), "missing")
	assert.ErrorIs(t, err, dashboard.ErrProjectNotFound)
}

func TestListProjects_FilterAndPagination(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	for _, name := range []string{"Alpha", "Beta", "Gamma"} {
		in := sampleProjectInput()
		in.Name = name
		createProject(t, svc, in)
	}
	other := sampleProjectInput()
	other.Name = "Delta"
	other.Type = "frontend"
	createProject(t, svc, other)

	list, err := svc.ListProjects(ctx, dashboard.ProjectFilter{Type: "backend"})
	require.NoError(t, err)
	assert.Equal(t, 3, list.Total)
	assert.Len(t, list.Data, 3)

	paged, err := svc.ListProjects(ctx, dashboard.ProjectFilter{Type: "backend", Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, paged.Total)
	require.Len(t, paged.Data, 1)
	assert.Equal(t, "Gamma", paged.Data[0].Name)

	searched, err := svc.ListProjects(ctx, dashboard.ProjectFilter{Search: "delt"})
	require.NoError(t, err)
	require.Len(t, searched.Data, 1)
	assert.Equal(t, "Delta", searched.Data[0].Name)
}

func TestListProjects_SearchMatchesClient(t *testing.T) {
	svc := newTestService()

	in := sampleProjectInput()
	in.Client = "Meridian Logistics"
	createProject(t, svc, in)

	list, err := svc.ListProjects(context.Background(), dashboard.ProjectFilter{Search: "meridian"})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
}

func TestUpdateProject_PartialMerge(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created := createProject(t, svc, sampleProjectInput())

	updated, err := svc.UpdateProject(ctx, created.ID, dashboard.ProjectPatch{
		Status:   strPtr("in-progress"),
		Progress: intPtr(30),
	})
	require.NoError(t, err)
	assert.Equal(t, "in-progress", updated.Status)
	assert.Equal(t, 30, updated.Progress)
	assert.Equal(t, created.Name, updated.Name, "unpatched fields keep their value")
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestUpdateProject_NotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.UpdateProject(context.Background(), "missing", dashboard.ProjectPatch{Name: strPtr("x")})
	assert.ErrorIs(t, err, dashboard.ErrProjectNotFound)
}

func TestDeleteProject_CascadesMembersAndIssues(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	member := createMember(t, svc, dashboard.MemberInput{Name: "Dev", Email: "dev@x.dev", UserRole: "developer"})

	doomed := createProject(t, svc, sampleProjectInput())
	survivorIn := sampleProjectInput()
	survivorIn.Name = "Survivor"
	survivor := createProject(t, svc, survivorIn)

	for _, projectID := range []string{doomed.ID, survivor.ID} {
		_, err := svc.AddProjectMember(ctx, projectID, dashboard.ProjectMemberInput{
			TeamMemberID:   member.ID,
			Role:           "Developer",
			HoursAllocated: 100,
		})
		require.NoError(t, err)
		_, err = svc.CreateIssue(ctx, projectID, dashboard.IssueInput{
			Title: "Something broke", Priority: "high", Status: "open",
		})
		require.NoError(t, err)
	}

	require.NoError(t, svc.DeleteProject(ctx, doomed.ID))

	_, err := svc.GetProject(ctx, doomed.ID)
	assert.ErrorIs(t, err, dashboard.ErrProjectNotFound)

	orphans, err := svc.ListProjectMembers(ctx, doomed.ID)
	require.NoError(t, err)
	assert.Empty(t, orphans, "cascade removes the project's allocations")

	issues, err := svc.ListIssues(ctx, doomed.ID, dashboard.IssueFilter{})
	require.NoError(t, err)
	assert.Empty(t, issues, "cascade removes the project's issues")

	kept, err := svc.ListProjectMembers(ctx, survivor.ID)
	require.NoError(t, err)
	assert.Len(t, kept, 1, "other projects keep their rows")

	keptIssues, err := svc.ListIssues(ctx, survivor.ID, dashboard.IssueFilter{})
	require.NoError(t, err)
	assert.Len(t, keptIssues, 1)
}

func TestDeleteProject_NotFound(t *testing.T) {
	svc := newTestService()

	err := svc.DeleteProject(context.Background(), "missing")
	assert.ErrorIs(t, err, dashboard.ErrProjectNotFound)
}

func TestProjectLifecycle_SummaryScenario(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	member := createMember(t, svc, dashboard.MemberInput{Name: "M1", Email: "m1@x.dev", UserRole: "developer"})

	before, err := svc.GetSummary(ctx)
	require.NoError(t, err)

	p := createProject(t, svc, sampleProjectInput())
	_, err = svc.AddProjectMember(ctx, p.ID, dashboard.ProjectMemberInput{
		TeamMemberID:   member.ID,
		HoursAllocated: 100,
	})
	require.NoError(t, err)

	after, err := svc.GetSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, before.TotalHoursAllocated+100, after.TotalHoursAllocated)

	require.NoError(t, svc.DeleteProject(ctx, p.ID))

	members, err := svc.ListProjectMembers(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, members)

	_, err = svc.GetProject(ctx, p.ID)
	assert.ErrorIs(t, err, dashboard.ErrProjectNotFound)
}

func TestProjectMembers_JoinResolvesNameAndEmail(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	member := createMember(t, svc, dashboard.MemberInput{Name: "Dana", Email: "dana@x.dev", UserRole: "developer"})
	p := createProject(t, svc, sampleProjectInput())

	view, err := svc.AddProjectMember(ctx, p.ID, dashboard.ProjectMemberInput{
		TeamMemberID:   member.ID,
		Role:           "Backend",
		HoursAllocated: 40,
	})
	require.NoError(t, err)
	assert.Equal(t, "Dana", view.Name)
	assert.Equal(t, "dana@x.dev", view.Email)
}

func TestProjectMembers_DanglingReferenceDegradesToEmpty(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	p := createProject(t, svc, sampleProjectInput())
	_, err := svc.AddProjectMember(ctx, p.ID, dashboard.ProjectMemberInput{
		TeamMemberID:   "no-such-member",
		HoursAllocated: 10,
	})
	require.NoError(t, err)

	views, err := svc.ListProjectMembers(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Empty(t, views[0].Name, "missing member degrades to empty name")
	assert.Empty(t, views[0].Email)
}

func TestUpdateProjectMember_ByPair(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	member := createMember(t, svc, dashboard.MemberInput{Name: "Dana", Email: "dana@x.dev", UserRole: "developer"})
	p := createProject(t, svc, sampleProjectInput())
	_, err := svc.AddProjectMember(ctx, p.ID, dashboard.ProjectMemberInput{TeamMemberID: member.ID, HoursAllocated: 40})
	require.NoError(t, err)

	view, err := svc.UpdateProjectMember(ctx, p.ID, member.ID, dashboard.ProjectMemberPatch{HoursAllocated: intPtr(80)})
	require.NoError(t, err)
	assert.Equal(t, 80, view.HoursAllocated)

	_, err = svc.UpdateProjectMember(ctx, p.ID, "missing", dashboard.ProjectMemberPatch{})
	assert.ErrorIs(t, err, dashboard.ErrProjectMemberNotFound)
}

func TestRemoveProjectMember(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	member := createMember(t, svc, dashboard.MemberInput{Name: "Dana", Email: "dana@x.dev", UserRole: "developer"})
	p := createProject(t, svc, sampleProjectInput())
	_, err := svc.AddProjectMember(ctx, p.ID, dashboard.ProjectMemberInput{TeamMemberID: member.ID})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveProjectMember(ctx, p.ID, member.ID))
	assert.ErrorIs(t, svc.RemoveProjectMember(ctx, p.ID, member.ID), dashboard.ErrProjectMemberNotFound)
}

func TestAddProjectMember_MissingProject(t *testing.T) {
	svc := newTestService()

	_, err := svc.AddProjectMember(context.Background(), "missing", dashboard.ProjectMemberInput{TeamMemberID: "m"})
	assert.ErrorIs(t, err, dashboard.ErrProjectNotFound)
}
