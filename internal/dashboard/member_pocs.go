package dashboard

import "context"

// ListMemberPOCs returns the member's POCs with technologies flattened.
// Listing under a deleted member returns an empty slice.
func (s *Service) ListMemberPOCs(ctx context.Context, memberID string) ([]MemberPOCView, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	return s.memberPOCViews(memberID), nil
}

// CreateMemberPOC records a POC for an existing member along with its
// initial technology rows.
func (s *Service) CreateMemberPOC(ctx context.Context, memberID string, in MemberPOCInput) (*MemberPOCView, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if !s.store.members.has(memberID) {
		return nil, ErrTeamMemberNotFound
	}
	now := s.store.now()
	poc := MemberPOC{
		ID:           s.store.newID(),
		TeamMemberID: memberID,
		Title:        in.Title,
		Status:       in.Status,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		Progress:     in.Progress,
		Objective:    in.Objective,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.store.memberPOCs.insert(poc)
	for _, tech := range in.Technologies {
		s.store.pocTechnologies = append(s.store.pocTechnologies, MemberPOCTechnology{MemberPOCID: poc.ID, Technology: tech})
	}
	return &MemberPOCView{MemberPOC: poc, Technologies: s.memberPOCTechnologies(poc.ID)}, nil
}

// UpdateMemberPOC merges the non-nil patch fields into the POC. A
// non-nil Technologies slice replaces the POC's whole technology set:
// existing rows are deleted and the new set inserted.
func (s *Service) UpdateMemberPOC(ctx context.Context, id string, patch MemberPOCPatch) (*MemberPOCView, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var updated MemberPOC
	ok := s.store.memberPOCs.update(id, func(p *MemberPOC) {
		if patch.Title != nil {
			p.Title = *patch.Title
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
		if patch.Objective != nil {
			p.Objective = *patch.Objective
		}
		p.UpdatedAt = s.store.now()
		updated = *p
	})
	if !ok {
		return nil, ErrMemberPOCNotFound
	}

	if patch.Technologies != nil {
		kept := s.store.pocTechnologies[:0]
		for _, row := range s.store.pocTechnologies {
			if row.MemberPOCID != id {
				kept = append(kept, row)
			}
		}
		s.store.pocTechnologies = kept
		for _, tech := range *patch.Technologies {
			s.store.pocTechnologies = append(s.store.pocTechnologies, MemberPOCTechnology{MemberPOCID: id, Technology: tech})
		}
	}
	return &MemberPOCView{MemberPOC: updated, Technologies: s.memberPOCTechnologies(id)}, nil
}

// DeleteMemberPOC removes the POC and cascades to its technology rows.
func (s *Service) DeleteMemberPOC(ctx context.Context, id string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if s.store.memberPOCs.removeWhere(func(p MemberPOC) bool { return p.ID == id }) == 0 {
		return ErrMemberPOCNotFound
	}
	kept := s.store.pocTechnologies[:0]
	for _, row := range s.store.pocTechnologies {
		if row.MemberPOCID != id {
			kept = append(kept, row)
		}
	}
	s.store.pocTechnologies = kept
	return nil
}

func (s *Service) memberPOCTechnologies(pocID string) []string {
	out := []string{}
	for _, row := range s.store.pocTechnologies {
		if row.MemberPOCID == pocID {
			out = append(out, row.Technology)
		}
	}
	return out
}

func (s *Service) memberPOCViews(memberID string) []MemberPOCView {
	rows := s.store.memberPOCs.all(func(p MemberPOC) bool { return p.TeamMemberID == memberID })
	views := make([]MemberPOCView, 0, len(rows))
	for _, row := range rows {
		views = append(views, MemberPOCView{MemberPOC: row, Technologies: s.memberPOCTechnologies(row.ID)})
	}
	return views
}
