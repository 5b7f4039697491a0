package dashboard

import (
	"context"
	"strings"
)

const defaultPageSize = 20

// ListProjects returns projects matching the filter, paginated. Total
// counts all matches, not just the returned page.
func (s *Service) ListProjects(ctx context.Context, filter ProjectFilter) (*ProjectList, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	search := strings.ToLower(filter.Search)
	matches := s.store.projects.all(func(p Project) bool {
		if filter.Type != "" && p.Type != filter.Type {
			return false
		}
		if filter.Status != "" && p.Status != filter.Status {
			return false
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Client), search) {
			return false
		}
		return true
	})

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(matches) {
		start = len(matches)
	}
	if end > len(matches) {
		end = len(matches)
	}

	return &ProjectList{
		Data:     matches[start:end],
		Total:    len(matches),
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// CreateProject inserts a new project with a fresh id and timestamps.
func (s *Service) CreateProject(ctx context.Context, in ProjectInput) (*Project, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	now := s.store.now()
	p := Project{
		ID:        s.store.newID(),
		Name:      in.Name,
		Client:    in.Client,
		Type:      in.Type,
		Status:    in.Status,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Progress:  in.Progress,
		Budget:    in.Budget,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.store.projects.insert(p)
	return &p, nil
}

// GetProject returns the project with its team and issues attached.
func (s *Service) GetProject(ctx context.Context, id string) (*ProjectDetail, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	p, ok := s.store.projects.byID(id)
	if !ok {
		return nil, ErrProjectNotFound
	}
	return &ProjectDetail{
		Project:     p,
		TeamMembers: s.projectMemberViews(id),
		Issues:      s.store.issues.all(func(i Issue) bool { return i.ProjectID == id }),
	}, nil
}

// UpdateProject merges the non-nil patch fields into the project and
// refreshes its updatedAt.
func (s *Service) UpdateProject(ctx context.Context, id string, patch ProjectPatch) (*Project, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var updated Project
	ok := s.store.projects.update(id, func(p *Project) {
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Client != nil {
			p.Client = *patch.Client
		}
		if patch.Type != nil {
			p.Type = *patch.Type
		}
		if patch.Status != nil {
			p.Status = *patch.Status
		}
		if patch.StartDate != nil {
			p.StartDate = *patch.StartDate
		}
		if patch.EndDate != nil {
			p.EndDate = *patch.EndDate
		}
		if patch.Progress != nil {
			p.Progress = *patch.Progress
		}
		if patch.Budget != nil {
			p.Budget = *patch.Budget
		}
		p.UpdatedAt = s.store.now()
		updated = *p
	})
	if !ok {
		return nil, ErrProjectNotFound
	}
	return &updated, nil
}

// DeleteProject removes the project and cascades to its team-member
// allocations and issues.
func (s *Service) DeleteProject(ctx context.Context, id string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if !s.store.projects.has(id) {
		return ErrProjectNotFound
	}
	s.store.projects.removeWhere(func(p Project) bool { return p.ID == id })
	s.store.projectMembers.removeWhere(func(m ProjectTeamMember) bool { return m.ProjectID == id })
	s.store.issues.removeWhere(func(i Issue) bool { return i.ProjectID == id })
	return nil
}

// projectMemberViews resolves a project's allocation rows against the
// team-member collection. A dangling teamMemberId degrades to empty
// name and email. Callers must hold at least the read lock.
func (s *Service) projectMemberViews(projectID string) []ProjectMemberView {
	rows := s.store.projectMembers.all(func(m ProjectTeamMember) bool { return m.ProjectID == projectID })
	views := make([]ProjectMemberView, 0, len(rows))
	for _, row := range rows {
		view := ProjectMemberView{ProjectTeamMember: row}
		if member, ok := s.store.members.byID(row.TeamMemberID); ok {
			view.Name = member.Name
			view.Email = member.Email
		}
		views = append(views, view)
	}
	return views
}
