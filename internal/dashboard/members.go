package dashboard

import (
	"context"
	"strings"
)

// ListMembers returns team members matching the filter.
func (s *Service) ListMembers(ctx context.Context, filter MemberFilter) (*MemberList, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	search := strings.ToLower(filter.Search)
	matches := s.store.members.all(func(m TeamMember) bool {
		if filter.UserRole != "" && m.UserRole != filter.UserRole {
			return false
		}
		if filter.IsLC != nil && m.IsLC != *filter.IsLC {
			return false
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(m.Name), search) &&
			!strings.Contains(strings.ToLower(m.Email), search) {
			return false
		}
		return true
	})
	return &MemberList{Data: matches, Total: len(matches)}, nil
}

// CreateMember inserts a new team member together with any initial
// skill rows.
func (s *Service) CreateMember(ctx context.Context, in MemberInput) (*TeamMember, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	now := s.store.now()
	m := TeamMember{
		ID:                 s.store.newID(),
		Name:               in.Name,
		Email:              in.Email,
		UserRole:           in.UserRole,
		IsLC:               in.IsLC,
		WorkloadPercentage: in.WorkloadPercentage,
		JoinDate:           in.JoinDate,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	s.store.members.insert(m)
	for _, skill := range in.Skills {
		s.store.skills = append(s.store.skills, TeamMemberSkill{TeamMemberID: m.ID, Skill: skill})
	}
	return &m, nil
}

// GetMember returns the member with every related collection attached.
// Interns is only populated for Learning Catalysts.
func (s *Service) GetMember(ctx context.Context, id string) (*MemberDetail, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	m, ok := s.store.members.byID(id)
	if !ok {
		return nil, ErrTeamMemberNotFound
	}
	detail := &MemberDetail{
		TeamMember:     m,
		Skills:         s.memberSkills(id),
		Projects:       s.memberProjectViews(id),
		Certifications: s.store.certifications.all(func(c Certification) bool { return c.TeamMemberID == id }),
		POCs:           s.memberPOCViews(id),
		Tasks:          s.taskViews(id),
		Interns:        []InternView{},
	}
	if m.IsLC {
		detail.Interns = s.internViews(id)
	}
	return detail, nil
}

// UpdateMember merges the non-nil patch fields into the member. A
// non-nil Skills slice replaces the member's whole skill set: every
// existing skill row is deleted and the new set inserted, with no
// diffing against the old rows.
func (s *Service) UpdateMember(ctx context.Context, id string, patch MemberPatch) (*TeamMember, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var updated TeamMember
	ok := s.store.members.update(id, func(m *TeamMember) {
		if patch.Name != nil {
			m.Name = *patch.Name
		}
		if patch.Email != nil {
			m.Email = *patch.Email
		}
		if patch.UserRole != nil {
			m.UserRole = *patch.UserRole
		}
		if patch.IsLC != nil {
			m.IsLC = *patch.IsLC
		}
		if patch.WorkloadPercentage != nil {
			m.WorkloadPercentage = *patch.WorkloadPercentage
		}
		if patch.JoinDate != nil {
			m.JoinDate = *patch.JoinDate
		}
		m.UpdatedAt = s.store.now()
		updated = *m
	})
	if !ok {
		return nil, ErrTeamMemberNotFound
	}

	if patch.Skills != nil {
		s.replaceSkills(id, *patch.Skills)
	}
	return &updated, nil
}

// DeleteMember removes the member record only. Allocations,
// certifications, POCs, tasks and skill rows that reference the member
// are deliberately left orphaned; reads that join against them degrade
// to empty names.
func (s *Service) DeleteMember(ctx context.Context, id string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if s.store.members.removeWhere(func(m TeamMember) bool { return m.ID == id }) == 0 {
		return ErrTeamMemberNotFound
	}
	return nil
}

// ListMemberProjects returns the member's project allocations with
// project names resolved.
func (s *Service) ListMemberProjects(ctx context.Context, memberID string) ([]MemberProjectView, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	return s.memberProjectViews(memberID), nil
}

// replaceSkills swaps the member's whole skill set. Callers must hold
// the write lock.
func (s *Service) replaceSkills(memberID string, skills []string) {
	kept := s.store.skills[:0]
	for _, row := range s.store.skills {
		if row.TeamMemberID != memberID {
			kept = append(kept, row)
		}
	}
	s.store.skills = kept
	for _, skill := range skills {
		s.store.skills = append(s.store.skills, TeamMemberSkill{TeamMemberID: memberID, Skill: skill})
	}
}

func (s *Service) memberSkills(memberID string) []string {
	out := []string{}
	for _, row := range s.store.skills {
		if row.TeamMemberID == memberID {
			out = append(out, row.Skill)
		}
	}
	return out
}

// memberProjectViews resolves a member's allocation rows against the
// project collection. A dangling projectId degrades to an empty name.
func (s *Service) memberProjectViews(memberID string) []MemberProjectView {
	rows := s.store.projectMembers.all(func(m ProjectTeamMember) bool { return m.TeamMemberID == memberID })
	views := make([]MemberProjectView, 0, len(rows))
	for _, row := range rows {
		view := MemberProjectView{ProjectTeamMember: row}
		if p, ok := s.store.projects.byID(row.ProjectID); ok {
			view.ProjectName = p.Name
		}
		views = append(views, view)
	}
	return views
}

func (s *Service) taskViews(memberID string) []TaskView {
	rows := s.store.tasks.all(func(t Task) bool { return t.TeamMemberID == memberID })
	views := make([]TaskView, 0, len(rows))
	for _, row := range rows {
		view := TaskView{Task: row}
		if row.ProjectID != "" {
			if p, ok := s.store.projects.byID(row.ProjectID); ok {
				view.ProjectName = p.Name
			}
		}
		views = append(views, view)
	}
	return views
}

// internViews resolves a mentor's assignments against the team-member
// collection. A dangling internId degrades to empty name and email.
func (s *Service) internViews(mentorID string) []InternView {
	views := []InternView{}
	for _, row := range s.store.assignments {
		if row.LCID != mentorID {
			continue
		}
		view := InternView{InternAssignment: row}
		if intern, ok := s.store.members.byID(row.InternID); ok {
			view.Name = intern.Name
			view.Email = intern.Email
		}
		views = append(views, view)
	}
	return views
}
