package dashboard

import (
	"context"
	"sort"
)

const defaultWorkloadLimit = 10

// GetSummary computes the dashboard's headline figures. In-progress
// counts projects whose status is in-progress or not-started, matching
// the dashboard's "active work" card. AverageProgress over an empty
// project set is defined as 0.
func (s *Service) GetSummary(ctx context.Context) (*Summary, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	sum := &Summary{
		TotalProjects:    len(s.store.projects.items),
		TotalTeamMembers: len(s.store.members.items),
	}
	progressTotal := 0
	for _, p := range s.store.projects.items {
		switch p.Status {
		case "in-progress", "not-started":
			sum.InProgressProjects++
		case "completed":
			sum.CompletedProjects++
		}
		progressTotal += p.Progress
	}
	if sum.TotalProjects > 0 {
		sum.AverageProgress = float64(progressTotal) / float64(sum.TotalProjects)
	}
	for _, m := range s.store.projectMembers.items {
		sum.TotalHoursAllocated += m.HoursAllocated
	}
	sum.OpenIssues = s.store.issues.count(func(i Issue) bool {
		return i.Status == "open" || i.Status == "in-progress"
	})
	return sum, nil
}

// ProjectsByType buckets projects by type, keys in first-seen order.
func (s *Service) ProjectsByType(ctx context.Context) ([]BucketCount, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	return bucketProjects(s.store.projects.items, func(p Project) string { return p.Type }), nil
}

// ProjectsByStatus buckets projects by status, keys in first-seen
// order.
func (s *Service) ProjectsByStatus(ctx context.Context) ([]BucketCount, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	return bucketProjects(s.store.projects.items, func(p Project) string { return p.Status }), nil
}

func bucketProjects(projects []Project, key func(Project) string) []BucketCount {
	buckets := []BucketCount{}
	index := map[string]int{}
	for _, p := range projects {
		k := key(p)
		if i, ok := index[k]; ok {
			buckets[i].Count++
			continue
		}
		index[k] = len(buckets)
		buckets = append(buckets, BucketCount{Key: k, Count: 1})
	}
	return buckets
}

// TeamWorkload ranks members by total allocated hours across their
// project allocations, descending, truncated to limit (default 10).
// The sort is stable, so members with equal hours keep their insertion
// order.
func (s *Service) TeamWorkload(ctx context.Context, limit int) ([]WorkloadEntry, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	if limit < 1 {
		limit = defaultWorkloadLimit
	}

	entries := []WorkloadEntry{}
	for _, m := range s.store.members.items {
		entry := WorkloadEntry{TeamMemberID: m.ID, Name: m.Name}
		seen := map[string]bool{}
		for _, row := range s.store.projectMembers.items {
			if row.TeamMemberID != m.ID {
				continue
			}
			entry.TotalHours += row.HoursAllocated
			if !seen[row.ProjectID] {
				seen[row.ProjectID] = true
				entry.ProjectCount++
			}
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalHours > entries[j].TotalHours
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// Timeline buckets projects by the calendar month of their start date
// (YYYY-MM), sorted lexicographically by key; the zero-padded key
// format makes that chronological.
func (s *Service) Timeline(ctx context.Context) ([]TimelineBucket, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	counts := map[string]int{}
	for _, p := range s.store.projects.items {
		month := p.StartDate
		if len(month) >= 7 {
			month = month[:7]
		}
		counts[month]++
	}

	buckets := make([]TimelineBucket, 0, len(counts))
	for month, count := range counts {
		buckets = append(buckets, TimelineBucket{Month: month, Count: count})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Month < buckets[j].Month })
	return buckets, nil
}

// GetIssueStats counts issues in the four fixed status buckets.
func (s *Service) GetIssueStats(ctx context.Context) (*IssueStats, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	stats := &IssueStats{}
	for _, i := range s.store.issues.items {
		switch i.Status {
		case "open":
			stats.Open++
		case "in-progress":
			stats.InProgress++
		case "resolved":
			stats.Resolved++
		case "closed":
			stats.Closed++
		}
	}
	return stats, nil
}
