package dashboard

import (
	"context"
	"strings"
)

// ListStandalonePOCs returns standalone POCs matching the filter, each
// with technologies and its ad hoc team attached.
func (s *Service) ListStandalonePOCs(ctx context.Context, filter StandalonePOCFilter) (*StandalonePOCList, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	search := strings.ToLower(filter.Search)
	matches := s.store.standalonePOCs.all(func(p StandalonePOC) bool {
		if filter.Status != "" && p.Status != filter.Status {
			return false
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Title), search) {
			return false
		}
		return true
	})

	views := make([]StandalonePOCView, 0, len(matches))
	for _, p := range matches {
		views = append(views, s.standalonePOCView(p))
	}
	return &StandalonePOCList{Data: views, Total: len(views)}, nil
}

// CreateStandalonePOC inserts a standalone POC together with its
// technology rows and ad hoc team rows.
func (s *Service) CreateStandalonePOC(ctx context.Context, in StandalonePOCInput) (*StandalonePOCView, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	now := s.store.now()
	poc := StandalonePOC{
		ID:          s.store.newID(),
		Title:       in.Title,
		Description: in.Description,
		Overview:    in.Overview,
		EndGoal:     in.EndGoal,
		Status:      in.Status,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Progress:    in.Progress,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.store.standalonePOCs.insert(poc)
	for _, tech := range in.Technologies {
		s.store.standaloneTech = append(s.store.standaloneTech, StandalonePOCTechnology{StandalonePOCID: poc.ID, Technology: tech})
	}
	for _, m := range in.TeamMembers {
		s.store.standaloneTeam.insert(StandalonePOCTeamMember{
			ID:              s.store.newID(),
			StandalonePOCID: poc.ID,
			Name:            m.Name,
			Role:            m.Role,
			Email:           m.Email,
			HoursAllocated:  m.HoursAllocated,
		})
	}
	view := s.standalonePOCView(poc)
	return &view, nil
}

// GetStandalonePOC returns the POC with technologies and team attached.
func (s *Service) GetStandalonePOC(ctx context.Context, id string) (*StandalonePOCView, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	p, ok := s.store.standalonePOCs.byID(id)
	if !ok {
		return nil, ErrStandalonePOCNotFound
	}
	view := s.standalonePOCView(p)
	return &view, nil
}

// UpdateStandalonePOC merges the non-nil patch fields into the POC. A
// non-nil Technologies slice replaces the POC's whole technology set.
func (s *Service) UpdateStandalonePOC(ctx context.Context, id string, patch StandalonePOCPatch) (*StandalonePOCView, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var updated StandalonePOC
	ok := s.store.standalonePOCs.update(id, func(p *StandalonePOC) {
		if patch.Title != nil {
			p.Title = *patch.Title
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Overview != nil {
			p.Overview = *patch.Overview
		}
		if patch.EndGoal != nil {
			p.EndGoal = *patch.EndGoal
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
		p.UpdatedAt = s.store.now()
		updated = *p
	})
	if !ok {
		return nil, ErrStandalonePOCNotFound
	}

	if patch.Technologies != nil {
		kept := s.store.standaloneTech[:0]
		for _, row := range s.store.standaloneTech {
			if row.StandalonePOCID != id {
				kept = append(kept, row)
			}
		}
		s.store.standaloneTech = kept
		for _, tech := range *patch.Technologies {
			s.store.standaloneTech = append(s.store.standaloneTech, StandalonePOCTechnology{StandalonePOCID: id, Technology: tech})
		}
	}
	view := s.standalonePOCView(updated)
	return &view, nil
}

// DeleteStandalonePOC removes the POC and cascades to its technology
// rows and ad hoc team rows.
func (s *Service) DeleteStandalonePOC(ctx context.Context, id string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if s.store.standalonePOCs.removeWhere(func(p StandalonePOC) bool { return p.ID == id }) == 0 {
		return ErrStandalonePOCNotFound
	}
	kept := s.store.standaloneTech[:0]
	for _, row := range s.store.standaloneTech {
		if row.StandalonePOCID != id {
			kept = append(kept, row)
		}
	}
	s.store.standaloneTech = kept
	s.store.standaloneTeam.removeWhere(func(m StandalonePOCTeamMember) bool { return m.StandalonePOCID == id })
	return nil
}

// ListStandalonePOCMembers returns the POC's ad hoc team rows. Listing
// under a deleted POC returns an empty slice.
func (s *Service) ListStandalonePOCMembers(ctx context.Context, pocID string) ([]StandalonePOCTeamMember, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	return s.store.standaloneTeam.all(func(m StandalonePOCTeamMember) bool { return m.StandalonePOCID == pocID }), nil
}

// AddStandalonePOCMember adds a free-text member row to an existing
// POC.
func (s *Service) AddStandalonePOCMember(ctx context.Context, pocID string, in StandalonePOCMemberInput) (*StandalonePOCTeamMember, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if !s.store.standalonePOCs.has(pocID) {
		return nil, ErrStandalonePOCNotFound
	}
	row := StandalonePOCTeamMember{
		ID:              s.store.newID(),
		StandalonePOCID: pocID,
		Name:            in.Name,
		Role:            in.Role,
		Email:           in.Email,
		HoursAllocated:  in.HoursAllocated,
	}
	s.store.standaloneTeam.insert(row)
	return &row, nil
}

// UpdateStandalonePOCMember merges the patch into the team row, scoped
// to the given POC.
func (s *Service) UpdateStandalonePOCMember(ctx context.Context, pocID, memberID string, patch StandalonePOCMemberPatch) (*StandalonePOCTeamMember, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var updated StandalonePOCTeamMember
	found := false
	s.store.standaloneTeam.update(memberID, func(m *StandalonePOCTeamMember) {
		if m.StandalonePOCID != pocID {
			return
		}
		if patch.Name != nil {
			m.Name = *patch.Name
		}
		if patch.Role != nil {
			m.Role = *patch.Role
		}
		if patch.Email != nil {
			m.Email = *patch.Email
		}
		if patch.HoursAllocated != nil {
			m.HoursAllocated = *patch.HoursAllocated
		}
		updated = *m
		found = true
	})
	if !found {
		return nil, ErrStandaloneMemberNotFound
	}
	return &updated, nil
}

// RemoveStandalonePOCMember deletes the team row, scoped to the given
// POC.
func (s *Service) RemoveStandalonePOCMember(ctx context.Context, pocID, memberID string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	removed := s.store.standaloneTeam.removeWhere(func(m StandalonePOCTeamMember) bool {
		return m.StandalonePOCID == pocID && m.ID == memberID
	})
	if removed == 0 {
		return ErrStandaloneMemberNotFound
	}
	return nil
}

// standalonePOCView attaches technologies and the ad hoc team to a POC.
// Callers must hold at least the read lock.
func (s *Service) standalonePOCView(p StandalonePOC) StandalonePOCView {
	techs := []string{}
	for _, row := range s.store.standaloneTech {
		if row.StandalonePOCID == p.ID {
			techs = append(techs, row.Technology)
		}
	}
	return StandalonePOCView{
		StandalonePOC: p,
		Technologies:  techs,
		TeamMembers:   s.store.standaloneTeam.all(func(m StandalonePOCTeamMember) bool { return m.StandalonePOCID == p.ID }),
	}
}
