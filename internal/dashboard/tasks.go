package dashboard

import "context"

// ListTasks returns the member's tasks with optional project names
// resolved. Listing under a deleted member returns an empty slice.
func (s *Service) ListTasks(ctx context.Context, memberID string) ([]TaskView, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	return s.taskViews(memberID), nil
}

// CreateTask records a task for an existing member. The optional
// project reference is not hard-checked; a dangling projectId degrades
// to an empty project name on read.
func (s *Service) CreateTask(ctx context.Context, memberID string, in TaskInput) (*TaskView, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if !s.store.members.has(memberID) {
		return nil, ErrTeamMemberNotFound
	}
	now := s.store.now()
	task := Task{
		ID:             s.store.newID(),
		TeamMemberID:   memberID,
		ProjectID:      in.ProjectID,
		Title:          in.Title,
		Status:         in.Status,
		Priority:       in.Priority,
		EstimatedHours: in.EstimatedHours,
		Deadline:       in.Deadline,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.store.tasks.insert(task)

	view := TaskView{Task: task}
	if task.ProjectID != "" {
		if p, ok := s.store.projects.byID(task.ProjectID); ok {
			view.ProjectName = p.Name
		}
	}
	return &view, nil
}

// UpdateTask merges the non-nil patch fields into the task.
func (s *Service) UpdateTask(ctx context.Context, id string, patch TaskPatch) (*TaskView, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var updated Task
	ok := s.store.tasks.update(id, func(t *Task) {
		if patch.ProjectID != nil {
			t.ProjectID = *patch.ProjectID
		}
		if patch.Title != nil {
			t.Title = *patch.Title
		}
		if patch.Status != nil {
			t.Status = *patch.Status
		}
		if patch.Priority != nil {
			t.Priority = *patch.Priority
		}
		if patch.EstimatedHours != nil {
			t.EstimatedHours = *patch.EstimatedHours
		}
		if patch.Deadline != nil {
			t.Deadline = *patch.Deadline
		}
		t.UpdatedAt = s.store.now()
		updated = *t
	})
	if !ok {
		return nil, ErrTaskNotFound
	}

	view := TaskView{Task: updated}
	if updated.ProjectID != "" {
		if p, ok := s.store.projects.byID(updated.ProjectID); ok {
			view.ProjectName = p.Name
		}
	}
	return &view, nil
}

// DeleteTask removes a task. Tasks have no dependents.
func (s *Service) DeleteTask(ctx context.Context, id string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if s.store.tasks.removeWhere(func(t Task) bool { return t.ID == id }) == 0 {
		return ErrTaskNotFound
	}
	return nil
}
