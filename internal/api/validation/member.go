package validation

import (
	"strings"

	"github.com/teamdash/teamdash/internal/dashboard"
)

// ValidateMemberInput validates a create team member request.
func ValidateMemberInput(in dashboard.MemberInput) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, requiredError("name"))
	}
	if strings.TrimSpace(in.Email) == "" {
		errs = append(errs, requiredError("email"))
	} else if !strings.Contains(in.Email, "@") {
		errs = append(errs, FieldError{Field: "email", Message: "email must be a valid address"})
	}
	if !oneOf(in.UserRole, dashboard.UserRoles) {
		errs = append(errs, enumError("userRole", dashboard.UserRoles))
	}
	if in.WorkloadPercentage < 0 || in.WorkloadPercentage > 100 {
		errs = append(errs, progressError("workloadPercentage"))
	}

	return errs
}

// ValidateMemberPatch validates an update team member request.
func ValidateMemberPatch(patch dashboard.MemberPatch) []FieldError {
	var errs []FieldError

	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name must not be empty"})
	}
	if patch.Email != nil && !strings.Contains(*patch.Email, "@") {
		errs = append(errs, FieldError{Field: "email", Message: "email must be a valid address"})
	}
	if patch.UserRole != nil && !oneOf(*patch.UserRole, dashboard.UserRoles) {
		errs = append(errs, enumError("userRole", dashboard.UserRoles))
	}
	if patch.WorkloadPercentage != nil && (*patch.WorkloadPercentage < 0 || *patch.WorkloadPercentage > 100) {
		errs = append(errs, progressError("workloadPercentage"))
	}

	return errs
}
