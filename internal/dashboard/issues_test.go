package dashboard_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamdash/teamdash/internal/dashboard"
)

func TestCreateIssue_RequiresProject(t *testing.T) {
	svc := newTestService()

	_, err := svc.CreateIssue(context.Background(), "missing", dashboard.IssueInput{
		Title: "Broken", Priority: "high", Status: "open",
	})
	assert.ErrorIs(t, err, dashboard.ErrProjectNotFound)
}

func TestListIssues_Filters(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	p := createProject(t, svc, sampleProjectInput())
	inputs := []dashboard.IssueInput{
		{Title: "A", Priority: "high", Status: "open"},
		{Title: "B", Priority: "low", Status: "open"},
		{Title: "C", Priority: "high", Status: "resolved"},
	}
	for _, in := range inputs {
		_, err := svc.CreateIssue(ctx, p.ID, in)
		require.NoError(t, err)
	}

	open, err := svc.ListIssues(ctx, p.ID, dashboard.IssueFilter{Status: "open"})
	require.NoError(t, err)
	assert.Len(t, open, 2)

	highOpen, err := svc.ListIssues(ctx, p.ID, dashboard.IssueFilter{Status: "open", Priority: "high"})
	require.NoError(t, err)
	require.Len(t, highOpen, 1)
	assert.Equal(t, "A", highOpen[0].Title)
}

func TestIssueUpdateAndDelete(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	p := createProject(t, svc, sampleProjectInput())
	issue, err := svc.CreateIssue(ctx, p.ID, dashboard.IssueInput{
		Title: "Flaky login", Priority: "medium", Status: "open", ReportedBy: "QA",
	})
	require.NoError(t, err)

	got, err := svc.GetIssue(ctx, issue.ID)
	require.NoError(t, err)
	assert.Equal(t, "Flaky login", got.Title)

	updated, err := svc.UpdateIssue(ctx, issue.ID, dashboard.IssuePatch{Status: strPtr("resolved")})
	require.NoError(t, err)
	assert.Equal(t, "resolved", updated.Status)
	assert.Equal(t, "Flaky login", updated.Title)

	require.NoError(t, svc.DeleteIssue(ctx, issue.ID))
	_, err = svc.GetIssue(ctx, issue.ID)
	assert.ErrorIs(t, err, dashboard.ErrIssueNotFound)
}

func TestUpdateIssue_NotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.UpdateIssue(context.Background(), "missing", dashboard.IssuePatch{Status: strPtr("closed")})
	assert.ErrorIs(t, err, dashboard.ErrIssueNotFound)
}
