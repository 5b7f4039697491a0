package validation

import (
	"strings"

	"github.com/teamdash/teamdash/internal/dashboard"
)

// ValidateIssueInput validates a create issue request.
func ValidateIssueInput(in dashboard.IssueInput) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(in.Title) == "" {
		errs = append(errs, requiredError("title"))
	}
	if !oneOf(in.Priority, dashboard.IssuePriorities) {
		errs = append(errs, enumError("priority", dashboard.IssuePriorities))
	}
	if !oneOf(in.Status, dashboard.IssueStatuses) {
		errs = append(errs, enumError("status", dashboard.IssueStatuses))
	}

	return errs
}

// ValidateIssuePatch validates an update issue request.
func ValidateIssuePatch(patch dashboard.IssuePatch) []FieldError {
	var errs []FieldError

	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		errs = append(errs, FieldError{Field: "title", Message: "title must not be empty"})
	}
	if patch.Priority != nil && !oneOf(*patch.Priority, dashboard.IssuePriorities) {
		errs = append(errs, enumError("priority", dashboard.IssuePriorities))
	}
	if patch.Status != nil && !oneOf(*patch.Status, dashboard.IssueStatuses) {
		errs = append(errs, enumError("status", dashboard.IssueStatuses))
	}

	return errs
}
