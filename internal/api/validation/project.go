package validation

import (
	"strings"

	"github.com/teamdash/teamdash/internal/dashboard"
)

// ValidateProjectInput validates a create project request. Returns a
// slice of field errors; empty slice means valid.
func ValidateProjectInput(in dashboard.ProjectInput) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, requiredError("name"))
	}
	if !oneOf(in.Type, dashboard.ProjectTypes) {
		errs = append(errs, enumError("type", dashboard.ProjectTypes))
	}
	if !oneOf(in.Status, dashboard.ProjectStatuses) {
		errs = append(errs, enumError("status", dashboard.ProjectStatuses))
	}
	if in.Progress < 0 || in.Progress > 100 {
		errs = append(errs, progressError("progress"))
	}
	if in.Budget < 0 {
		errs = append(errs, FieldError{Field: "budget", Message: "budget must not be negative"})
	}

	return errs
}

// ValidateProjectPatch validates an update project request.
func ValidateProjectPatch(patch dashboard.ProjectPatch) []FieldError {
	var errs []FieldError

	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name must not be empty"})
	}
	if patch.Type != nil && !oneOf(*patch.Type, dashboard.ProjectTypes) {
		errs = append(errs, enumError("type", dashboard.ProjectTypes))
	}
	if patch.Status != nil && !oneOf(*patch.Status, dashboard.ProjectStatuses) {
		errs = append(errs, enumError("status", dashboard.ProjectStatuses))
	}
	if patch.Progress != nil && (*patch.Progress < 0 || *patch.Progress > 100) {
		errs = append(errs, progressError("progress"))
	}
	if patch.Budget != nil && *patch.Budget < 0 {
		errs = append(errs, FieldError{Field: "budget", Message: "budget must not be negative"})
	}

	return errs
}

// ValidateProjectMemberInput validates a project allocation request.
func ValidateProjectMemberInput(in dashboard.ProjectMemberInput) []FieldError {
	var errs []FieldError

	if in.TeamMemberID == "" {
		errs = append(errs, requiredError("teamMemberId"))
	}
	if in.HoursAllocated < 0 {
		errs = append(errs, FieldError{Field: "hoursAllocated", Message: "hoursAllocated must not be negative"})
	}

	return errs
}

// ValidateProjectMemberPatch validates an allocation update request.
func ValidateProjectMemberPatch(patch dashboard.ProjectMemberPatch) []FieldError {
	var errs []FieldError

	if patch.HoursAllocated != nil && *patch.HoursAllocated < 0 {
		errs = append(errs, FieldError{Field: "hoursAllocated", Message: "hoursAllocated must not be negative"})
	}

	return errs
}
