package dashboard

import "context"

// ListInternAssignments returns the mentor's assignments with intern
// records resolved. Listing under a deleted mentor returns an empty
// slice.
func (s *Service) ListInternAssignments(ctx context.Context, mentorID string) ([]InternView, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	return s.internViews(mentorID), nil
}

// CreateInternAssignment assigns an intern to a Learning Catalyst. It
// fails when the mentor does not exist, when the mentor is not flagged
// isLC, when the intern id does not resolve to an existing member, or
// when the pair already exists. Nothing is inserted on failure.
func (s *Service) CreateInternAssignment(ctx context.Context, mentorID, internID string) (*InternAssignment, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if err := s.checkAssignment(mentorID, internID); err != nil {
		return nil, err
	}
	row := InternAssignment{
		LCID:       mentorID,
		InternID:   internID,
		AssignedAt: s.store.now(),
	}
	s.store.assignments = append(s.store.assignments, row)
	return &row, nil
}

// DeleteInternAssignment removes the (mentor, intern) pair.
func (s *Service) DeleteInternAssignment(ctx context.Context, mentorID, internID string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	kept := s.store.assignments[:0]
	removed := 0
	for _, row := range s.store.assignments {
		if row.LCID == mentorID && row.InternID == internID {
			removed++
			continue
		}
		kept = append(kept, row)
	}
	s.store.assignments = kept
	if removed == 0 {
		return ErrInternAssignmentNotFound
	}
	return nil
}

// ReplaceInternAssignments swaps the mentor's whole assignment set:
// every existing assignment for the mentor is deleted and the new set
// inserted, with no diffing. All intern ids are validated before any
// state changes.
func (s *Service) ReplaceInternAssignments(ctx context.Context, mentorID string, internIDs []string) ([]InternAssignment, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	mentor, ok := s.store.members.byID(mentorID)
	if !ok {
		return nil, ErrTeamMemberNotFound
	}
	if !mentor.IsLC {
		return nil, ErrMentorNotLC
	}
	for _, internID := range internIDs {
		if !s.store.members.has(internID) {
			return nil, ErrInternNotFound
		}
	}

	kept := s.store.assignments[:0]
	for _, row := range s.store.assignments {
		if row.LCID != mentorID {
			kept = append(kept, row)
		}
	}
	s.store.assignments = kept

	now := s.store.now()
	inserted := make([]InternAssignment, 0, len(internIDs))
	for _, internID := range internIDs {
		row := InternAssignment{LCID: mentorID, InternID: internID, AssignedAt: now}
		s.store.assignments = append(s.store.assignments, row)
		inserted = append(inserted, row)
	}
	return inserted, nil
}

// checkAssignment enforces the LC business rules for a single new
// assignment. Callers must hold the write lock.
func (s *Service) checkAssignment(mentorID, internID string) error {
	mentor, ok := s.store.members.byID(mentorID)
	if !ok {
		return ErrTeamMemberNotFound
	}
	if !mentor.IsLC {
		return ErrMentorNotLC
	}
	if !s.store.members.has(internID) {
		return ErrInternNotFound
	}
	for _, row := range s.store.assignments {
		if row.LCID == mentorID && row.InternID == internID {
			return ErrDuplicateAssignment
		}
	}
	return nil
}
