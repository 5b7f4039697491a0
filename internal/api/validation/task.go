package validation

import (
	"strings"

	"github.com/teamdash/teamdash/internal/dashboard"
)

// ValidateTaskInput validates a create task request.
func ValidateTaskInput(in dashboard.TaskInput) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(in.Title) == "" {
		errs = append(errs, requiredError("title"))
	}
	if !oneOf(in.Status, dashboard.TaskStatuses) {
		errs = append(errs, enumError("status", dashboard.TaskStatuses))
	}
	if !oneOf(in.Priority, dashboard.IssuePriorities) {
		errs = append(errs, enumError("priority", dashboard.IssuePriorities))
	}
	if in.EstimatedHours < 0 {
		errs = append(errs, FieldError{Field: "estimatedHours", Message: "estimatedHours must not be negative"})
	}

	return errs
}

// ValidateTaskPatch validates an update task request.
func ValidateTaskPatch(patch dashboard.TaskPatch) []FieldError {
	var errs []FieldError

	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		errs = append(errs, FieldError{Field: "title", Message: "title must not be empty"})
	}
	if patch.Status != nil && !oneOf(*patch.Status, dashboard.TaskStatuses) {
		errs = append(errs, enumError("status", dashboard.TaskStatuses))
	}
	if patch.Priority != nil && !oneOf(*patch.Priority, dashboard.IssuePriorities) {
		errs = append(errs, enumError("priority", dashboard.IssuePriorities))
	}
	if patch.EstimatedHours != nil && *patch.EstimatedHours < 0 {
		errs = append(errs, FieldError{Field: "estimatedHours", Message: "estimatedHours must not be negative"})
	}

	return errs
}
