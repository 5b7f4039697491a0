package dashboard

import "context"

// ListCertifications returns the member's certifications. Listing under
// a deleted member returns an empty slice.
func (s *Service) ListCertifications(ctx context.Context, memberID string) ([]Certification, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	return s.store.certifications.all(func(c Certification) bool { return c.TeamMemberID == memberID }), nil
}

// CreateCertification records a certification for an existing member.
func (s *Service) CreateCertification(ctx context.Context, memberID string, in CertificationInput) (*Certification, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if !s.store.members.has(memberID) {
		return nil, ErrTeamMemberNotFound
	}
	now := s.store.now()
	c := Certification{
		ID:             s.store.newID(),
		TeamMemberID:   memberID,
		Name:           in.Name,
		Provider:       in.Provider,
		Status:         in.Status,
		StartDate:      in.StartDate,
		CompletionDate: in.CompletionDate,
		Progress:       in.Progress,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.store.certifications.insert(c)
	return &c, nil
}

// UpdateCertification merges the non-nil patch fields into the
// certification.
func (s *Service) UpdateCertification(ctx context.Context, id string, patch CertificationPatch) (*Certification, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var updated Certification
	ok := s.store.certifications.update(id, func(c *Certification) {
		if patch.Name != nil {
			c.Name = *patch.Name
		}
		if patch.Provider != nil {
			c.Provider = *patch.Provider
		}
		if patch.Status != nil {
			c.Status = *patch.Status
		}
		if patch.StartDate != nil {
			c.StartDate = *patch.StartDate
		}
		if patch.CompletionDate != nil {
			c.CompletionDate = *patch.CompletionDate
		}
		if patch.Progress != nil {
			c.Progress = *patch.Progress
		}
		c.UpdatedAt = s.store.now()
		updated = *c
	})
	if !ok {
		return nil, ErrCertificationNotFound
	}
	return &updated, nil
}

// DeleteCertification removes a certification. Certifications have no
// dependents.
func (s *Service) DeleteCertification(ctx context.Context, id string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if s.store.certifications.removeWhere(func(c Certification) bool { return c.ID == id }) == 0 {
		return ErrCertificationNotFound
	}
	return nil
}
