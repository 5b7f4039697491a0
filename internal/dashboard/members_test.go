package dashboard_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamdash/teamdash/internal/dashboard"
)

func boolPtr(b bool) *bool { return &b }

func TestCreateMember_InsertsSkillRows(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	m := createMember(t, svc, dashboard.MemberInput{
		Name:     "Ada",
		Email:    "ada@x.dev",
		UserRole: "developer",
		Skills:   []string{"Go", "SQL"},
	})

	detail, err := svc.GetMember(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "SQL"}, detail.Skills)
}

func TestListMembers_Filters(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	createMember(t, svc, dashboard.MemberInput{Name: "Lead", Email: "lead@x.dev", UserRole: "team-lead", IsLC: true})
	createMember(t, svc, dashboard.MemberInput{Name: "Dev One", Email: "d1@x.dev", UserRole: "developer"})
	createMember(t, svc, dashboard.MemberInput{Name: "Dev Two", Email: "d2@x.dev", UserRole: "developer"})

	devs, err := svc.ListMembers(ctx, dashboard.MemberFilter{UserRole: "developer"})
	require.NoError(t, err)
	assert.Equal(t, 2, devs.Total)

	lcs, err := svc.ListMembers(ctx, dashboard.MemberFilter{IsLC: boolPtr(true)})
	require.NoError(t, err)
	require.Equal(t, 1, lcs.Total)
	assert.Equal(t, "Lead", lcs.Data[0].Name)

	nonLCs, err := svc.ListMembers(ctx, dashboard.MemberFilter{IsLC: boolPtr(false)})
	require.NoError(t, err)
	assert.Equal(t, 2, nonLCs.Total)

	searched, err := svc.ListMembers(ctx, dashboard.MemberFilter{Search: "d2@"})
	require.NoError(t, err)
	require.Equal(t, 1, searched.Total)
	assert.Equal(t, "Dev Two", searched.Data[0].Name)
}

func TestGetMember_DetailJoins(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	m := createMember(t, svc, dashboard.MemberInput{
		Name: "Joined", Email: "joined@x.dev", UserRole: "developer", Skills: []string{"Go"},
	})
	p := createProject(t, svc, sampleProjectInput())

	_, err := svc.AddProjectMember(ctx, p.ID, dashboard.ProjectMemberInput{
		TeamMemberID: m.ID, Role: "Dev", HoursAllocated: 50,
	})
	require.NoError(t, err)
	_, err = svc.CreateCertification(ctx, m.ID, dashboard.CertificationInput{
		Name: "CKA", Provider: "CNCF", Status: "in-progress", Progress: 40,
	})
	require.NoError(t, err)
	_, err = svc.CreateMemberPOC(ctx, m.ID, dashboard.MemberPOCInput{
		Title: "Cache eval", Status: "planning", Technologies: []string{"Redis"},
	})
	require.NoError(t, err)
	_, err = svc.CreateTask(ctx, m.ID, dashboard.TaskInput{
		Title: "Write runbook", Status: "todo", Priority: "low", ProjectID: p.ID,
	})
	require.NoError(t, err)

	detail, err := svc.GetMember(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, detail.Skills)
	require.Len(t, detail.Projects, 1)
	assert.Equal(t, p.Name, detail.Projects[0].ProjectName)
	require.Len(t, detail.Certifications, 1)
	assert.Equal(t, "CKA", detail.Certifications[0].Name)
	require.Len(t, detail.POCs, 1)
	assert.Equal(t, []string{"Redis"}, detail.POCs[0].Technologies)
	require.Len(t, detail.Tasks, 1)
	assert.Equal(t, p.Name, detail.Tasks[0].ProjectName)
	assert.Empty(t, detail.Interns, "non-LC members carry no intern list")
}

func TestGetMember_InternsOnlyForLC(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	mentor := createMember(t, svc, dashboard.MemberInput{Name: "Mentor", Email: "mentor@x.dev", UserRole: "team-lead", IsLC: true})
	intern := createMember(t, svc, dashboard.MemberInput{Name: "Intern", Email: "intern@x.dev", UserRole: "intern"})

	_, err := svc.CreateInternAssignment(ctx, mentor.ID, intern.ID)
	require.NoError(t, err)

	detail, err := svc.GetMember(ctx, mentor.ID)
	require.NoError(t, err)
	require.Len(t, detail.Interns, 1)
	assert.Equal(t, "Intern", detail.Interns[0].Name)
	assert.Equal(t, "intern@x.dev", detail.Interns[0].Email)
}

func TestUpdateMember_SkillsFullReplace(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	m := createMember(t, svc, dashboard.MemberInput{
		Name: "Ada", Email: "ada@x.dev", UserRole: "developer", Skills: []string{"Go", "SQL", "Bash"},
	})

	_, err := svc.UpdateMember(ctx, m.ID, dashboard.MemberPatch{
		Skills: &[]string{"Rust"},
	})
	require.NoError(t, err)

	detail, err := svc.GetMember(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Rust"}, detail.Skills, "replace discards the old set entirely")

	// A nil Skills pointer leaves the set alone.
	_, err = svc.UpdateMember(ctx, m.ID, dashboard.MemberPatch{Name: strPtr("Ada L.")})
	require.NoError(t, err)

	detail, err = svc.GetMember(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Rust"}, detail.Skills)
	assert.Equal(t, "Ada L.", detail.Name)
}

func TestUpdateMember_EmptySkillsClearsSet(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	m := createMember(t, svc, dashboard.MemberInput{
		Name: "Ada", Email: "ada@x.dev", UserRole: "developer", Skills: []string{"Go"},
	})

	_, err := svc.UpdateMember(ctx, m.ID, dashboard.MemberPatch{Skills: &[]string{}})
	require.NoError(t, err)

	detail, err := svc.GetMember(ctx, m.ID)
	require.NoError(t, err)
	assert.Empty(t, detail.Skills)
}

func TestDeleteMember_LeavesRelatedRowsOrphaned(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	m := createMember(t, svc, dashboard.MemberInput{Name: "Gone", Email: "gone@x.dev", UserRole: "developer"})
	p := createProject(t, svc, sampleProjectInput())
	_, err := svc.AddProjectMember(ctx, p.ID, dashboard.ProjectMemberInput{
		TeamMemberID: m.ID, HoursAllocated: 20,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMember(ctx, m.ID))

	_, err = svc.GetMember(ctx, m.ID)
	assert.ErrorIs(t, err, dashboard.ErrTeamMemberNotFound)

	// The allocation row stays; its joined fields degrade to empty.
	views, err := svc.ListProjectMembers(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, m.ID, views[0].TeamMemberID)
	assert.Empty(t, views[0].Name)
	assert.Empty(t, views[0].Email)
}

func TestDeleteMember_NotFound(t *testing.T) {
	svc := newTestService()

	err := svc.DeleteMember(context.Background(), "missing")
	assert.ErrorIs(t, err, dashboard.ErrTeamMemberNotFound)
}

func TestListMemberProjects_ResolvesProjectName(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	m := createMember(t, svc, dashboard.MemberInput{Name: "Ada", Email: "ada@x.dev", UserRole: "developer"})
	p := createProject(t, svc, sampleProjectInput())
	_, err := svc.AddProjectMember(ctx, p.ID, dashboard.ProjectMemberInput{
		TeamMemberID: m.ID, Role: "Dev", HoursAllocated: 10,
	})
	require.NoError(t, err)

	views, err := svc.ListMemberProjects(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, p.Name, views[0].ProjectName)
	assert.Equal(t, 10, views[0].HoursAllocated)
}

func TestListMemberProjects_UnknownMemberIsEmpty(t *testing.T) {
	svc := newTestService()

	views, err := svc.ListMemberProjects(context.Background(), "missing")
	require.NoError(t, err)
	assert.Empty(t, views)
}
