package dashboard

import "context"

// ListProjectMembers returns the project's allocation rows with member
// names resolved. Listing under a deleted project returns an empty
// slice rather than failing.
func (s *Service) ListProjectMembers(ctx context.Context, projectID string) ([]ProjectMemberView, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	return s.projectMemberViews(projectID), nil
}

// AddProjectMember allocates a member to the project. The project must
// exist; the referenced team member is not hard-checked, matching the
// defensive-join read contract.
func (s *Service) AddProjectMember(ctx context.Context, projectID string, in ProjectMemberInput) (*ProjectMemberView, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if !s.store.projects.has(projectID) {
		return nil, ErrProjectNotFound
	}
	row := ProjectTeamMember{
		ID:             s.store.newID(),
		ProjectID:      projectID,
		TeamMemberID:   in.TeamMemberID,
		Role:           in.Role,
		HoursAllocated: in.HoursAllocated,
	}
	s.store.projectMembers.insert(row)

	view := ProjectMemberView{ProjectTeamMember: row}
	if member, ok := s.store.members.byID(row.TeamMemberID); ok {
		view.Name = member.Name
		view.Email = member.Email
	}
	return &view, nil
}

// UpdateProjectMember merges the patch into the allocation row
// identified by the (project, member) pair.
func (s *Service) UpdateProjectMember(ctx context.Context, projectID, teamMemberID string, patch ProjectMemberPatch) (*ProjectMemberView, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var updated ProjectTeamMember
	found := false
	for i := range s.store.projectMembers.items {
		row := &s.store.projectMembers.items[i]
		if row.ProjectID != projectID || row.TeamMemberID != teamMemberID {
			continue
		}
		if patch.Role != nil {
			row.Role = *patch.Role
		}
		if patch.HoursAllocated != nil {
			row.HoursAllocated = *patch.HoursAllocated
		}
		updated = *row
		found = true
		break
	}
	if !found {
		return nil, ErrProjectMemberNotFound
	}

	view := ProjectMemberView{ProjectTeamMember: updated}
	if member, ok := s.store.members.byID(updated.TeamMemberID); ok {
		view.Name = member.Name
		view.Email = member.Email
	}
	return &view, nil
}

// RemoveProjectMember deletes the allocation row identified by the
// (project, member) pair.
func (s *Service) RemoveProjectMember(ctx context.Context, projectID, teamMemberID string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	removed := s.store.projectMembers.removeWhere(func(m ProjectTeamMember) bool {
		return m.ProjectID == projectID && m.TeamMemberID == teamMemberID
	})
	if removed == 0 {
		return ErrProjectMemberNotFound
	}
	return nil
}
