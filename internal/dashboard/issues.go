package dashboard

import "context"

// ListIssues returns the project's issues matching the filter. Listing
// under a deleted project returns an empty slice.
func (s *Service) ListIssues(ctx context.Context, projectID string, filter IssueFilter) ([]Issue, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	return s.store.issues.all(func(i Issue) bool {
		if i.ProjectID != projectID {
			return false
		}
		if filter.Status != "" && i.Status != filter.Status {
			return false
		}
		if filter.Priority != "" && i.Priority != filter.Priority {
			return false
		}
		return true
	}), nil
}

// CreateIssue reports a new issue on an existing project.
func (s *Service) CreateIssue(ctx context.Context, projectID string, in IssueInput) (*Issue, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if !s.store.projects.has(projectID) {
		return nil, ErrProjectNotFound
	}
	now := s.store.now()
	issue := Issue{
		ID:           s.store.newID(),
		ProjectID:    projectID,
		Title:        in.Title,
		Description:  in.Description,
		Priority:     in.Priority,
		Status:       in.Status,
		ReportedBy:   in.ReportedBy,
		ReportedDate: in.ReportedDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.store.issues.insert(issue)
	return &issue, nil
}

// GetIssue returns a single issue by id.
func (s *Service) GetIssue(ctx context.Context, id string) (*Issue, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	issue, ok := s.store.issues.byID(id)
	if !ok {
		return nil, ErrIssueNotFound
	}
	return &issue, nil
}

// UpdateIssue merges the non-nil patch fields into the issue.
func (s *Service) UpdateIssue(ctx context.Context, id string, patch IssuePatch) (*Issue, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var updated Issue
	ok := s.store.issues.update(id, func(i *Issue) {
		if patch.Title != nil {
			i.Title = *patch.Title
		}
		if patch.Description != nil {
			i.Description = *patch.Description
		}
		if patch.Priority != nil {
			i.Priority = *patch.Priority
		}
		if patch.Status != nil {
			i.Status = *patch.Status
		}
		if patch.ReportedBy != nil {
			i.ReportedBy = *patch.ReportedBy
		}
		if patch.ReportedDate != nil {
			i.ReportedDate = *patch.ReportedDate
		}
		i.UpdatedAt = s.store.now()
		updated = *i
	})
	if !ok {
		return nil, ErrIssueNotFound
	}
	return &updated, nil
}

// DeleteIssue removes an issue. Issues have no dependents, so nothing
// cascades.
func (s *Service) DeleteIssue(ctx context.Context, id string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if s.store.issues.removeWhere(func(i Issue) bool { return i.ID == id }) == 0 {
		return ErrIssueNotFound
	}
	return nil
}
