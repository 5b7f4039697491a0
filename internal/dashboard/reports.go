package dashboard

import (
	"context"
	"fmt"
	"strings"
)

// GenerateReport renders a deterministic plain-text document over the
// projects selected by the filter. Projects appear in insertion order,
// so two calls with no intervening mutation produce identical text.
func (s *Service) GenerateReport(ctx context.Context, filter ReportFilter) (*Report, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	projects := s.filterReportProjects(filter)

	var b strings.Builder
	b.WriteString("PROJECT REPORT\n")
	b.WriteString("==============\n\n")
	fmt.Fprintf(&b, "Projects included: %d\n\n", len(projects))

	totalBudget := 0.0
	totalMembers := 0
	totalIssues := 0
	for _, p := range projects {
		memberCount := s.store.projectMembers.count(func(m ProjectTeamMember) bool { return m.ProjectID == p.ID })
		issueCount := s.store.issues.count(func(i Issue) bool { return i.ProjectID == p.ID })
		openCount := s.store.issues.count(func(i Issue) bool {
			return i.ProjectID == p.ID && (i.Status == "open" || i.Status == "in-progress")
		})
		totalBudget += p.Budget
		totalMembers += memberCount
		totalIssues += issueCount

		fmt.Fprintf(&b, "%s\n", p.Name)
		fmt.Fprintf(&b, "%s\n", strings.Repeat("-", len(p.Name)))
		fmt.Fprintf(&b, "  Client:       %s\n", p.Client)
		fmt.Fprintf(&b, "  Type:         %s\n", p.Type)
		fmt.Fprintf(&b, "  Status:       %s\n", p.Status)
		fmt.Fprintf(&b, "  Progress:     %d%%\n", p.Progress)
		fmt.Fprintf(&b, "  Budget:       %.2f\n", p.Budget)
		fmt.Fprintf(&b, "  Dates:        %s to %s\n", p.StartDate, p.EndDate)
		fmt.Fprintf(&b, "  Team members: %d\n", memberCount)
		fmt.Fprintf(&b, "  Issues:       %d (%d open)\n\n", issueCount, openCount)
	}

	b.WriteString("TOTALS\n")
	b.WriteString("------\n")
	fmt.Fprintf(&b, "  Budget:       %.2f\n", totalBudget)
	fmt.Fprintf(&b, "  Team members: %d\n", totalMembers)
	fmt.Fprintf(&b, "  Issues:       %d\n", totalIssues)

	return &Report{
		Report:       b.String(),
		ProjectCount: len(projects),
		GeneratedAt:  s.store.now(),
	}, nil
}

// GetReportSummary aggregates the report figures without rendering the
// document. AverageProgress over an empty selection is 0. Team members
// are counted as allocation rows on the selected projects, so a member
// allocated to two selected projects counts twice.
func (s *Service) GetReportSummary(ctx context.Context, projectIDs []string) (*ReportSummary, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	projects := s.filterReportProjects(ReportFilter{ProjectIDs: projectIDs})

	sum := &ReportSummary{ProjectCount: len(projects)}
	progressTotal := 0
	for _, p := range projects {
		sum.TotalBudget += p.Budget
		progressTotal += p.Progress
		sum.TotalTeamMembers += s.store.projectMembers.count(func(m ProjectTeamMember) bool { return m.ProjectID == p.ID })
		sum.TotalIssues += s.store.issues.count(func(i Issue) bool { return i.ProjectID == p.ID })
		sum.OpenIssues += s.store.issues.count(func(i Issue) bool {
			return i.ProjectID == p.ID && (i.Status == "open" || i.Status == "in-progress")
		})
	}
	if len(projects) > 0 {
		sum.AverageProgress = float64(progressTotal) / float64(len(projects))
	}
	return sum, nil
}

// filterReportProjects selects projects by optional id/type/status
// lists; empty lists mean no restriction. Callers must hold at least
// the read lock.
func (s *Service) filterReportProjects(filter ReportFilter) []Project {
	ids := toSet(filter.ProjectIDs)
	types := toSet(filter.Types)
	statuses := toSet(filter.Statuses)

	return s.store.projects.all(func(p Project) bool {
		if len(ids) > 0 && !ids[p.ID] {
			return false
		}
		if len(types) > 0 && !types[p.Type] {
			return false
		}
		if len(statuses) > 0 && !statuses[p.Status] {
			return false
		}
		return true
	})
}

func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
