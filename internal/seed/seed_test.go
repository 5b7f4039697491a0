package seed_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamdash/teamdash/internal/dashboard"
	"github.com/teamdash/teamdash/internal/seed"
)

func newService() *dashboard.Service {
	return dashboard.NewService(dashboard.NewStore(), dashboard.NoLatency{})
}

func TestApplyDefaultFixtures(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	require.NoError(t, seed.Apply(ctx, svc, seed.Default()))

	members, err := svc.ListMembers(ctx, dashboard.MemberFilter{})
	require.NoError(t, err)
	assert.Equal(t, 4, members.Total)

	projects, err := svc.ListProjects(ctx, dashboard.ProjectFilter{})
	require.NoError(t, err)
	assert.Equal(t, 3, projects.Total)

	pocs, err := svc.ListStandalonePOCs(ctx, dashboard.StandalonePOCFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, pocs.Total)

	// The fixture assignment pairs the LC with the intern.
	lcs, err := svc.ListMembers(ctx, dashboard.MemberFilter{UserRole: "team-lead"})
	require.NoError(t, err)
	require.Equal(t, 1, lcs.Total)
	views, err := svc.ListInternAssignments(ctx, lcs.Data[0].ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Tomás Herrera", views[0].Name)

	sum, err := svc.GetSummary(ctx)
	require.NoError(t, err)
	assert.Positive(t, sum.TotalHoursAllocated)
}

func TestApplyResolvesTaskProjectByName(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	require.NoError(t, seed.Apply(ctx, svc, seed.Default()))

	members, err := svc.ListMembers(ctx, dashboard.MemberFilter{Search: "priya"})
	require.NoError(t, err)
	require.Equal(t, 1, members.Total)

	tasks, err := svc.ListTasks(ctx, members.Data[0].ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Atlas Billing Platform", tasks[0].ProjectName)
}

func TestApplyRejectsUnknownReferences(t *testing.T) {
	svc := newService()

	f := &seed.File{
		Projects: []seed.Project{
			{
				ProjectInput: dashboard.ProjectInput{Name: "P", Type: "backend", Status: "not-started"},
				Members:      []seed.ProjectMember{{Email: "nobody@x.dev"}},
			},
		},
	}
	err := seed.Apply(context.Background(), svc, f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nobody@x.dev")
}

func TestLoadParsesYAML(t *testing.T) {
	doc := `
teamMembers:
  - name: Solo Dev
    email: solo@x.dev
    userRole: developer
    skills: [Go]
projects:
  - name: Tiny
    client: Example
    type: backend
    status: not-started
    members:
      - email: solo@x.dev
        role: Developer
        hoursAllocated: 40
`
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	f, err := seed.Load(path)
	require.NoError(t, err)
	require.Len(t, f.TeamMembers, 1)
	assert.Equal(t, "solo@x.dev", f.TeamMembers[0].Email)
	assert.Equal(t, []string{"Go"}, f.TeamMembers[0].Skills)
	require.Len(t, f.Projects, 1)
	require.Len(t, f.Projects[0].Members, 1)
	assert.Equal(t, 40, f.Projects[0].Members[0].HoursAllocated)

	svc := newService()
	require.NoError(t, seed.Apply(context.Background(), svc, f))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := seed.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
