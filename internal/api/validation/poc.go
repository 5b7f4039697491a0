package validation

import (
	"strings"

	"github.com/teamdash/teamdash/internal/dashboard"
)

// ValidateMemberPOCInput validates a create member-POC request.
func ValidateMemberPOCInput(in dashboard.MemberPOCInput) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(in.Title) == "" {
		errs = append(errs, requiredError("title"))
	}
	if in.Progress < 0 || in.Progress > 100 {
		errs = append(errs, progressError("progress"))
	}

	return errs
}

// ValidateMemberPOCPatch validates an update member-POC request.
func ValidateMemberPOCPatch(patch dashboard.MemberPOCPatch) []FieldError {
	var errs []FieldError

	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		errs = append(errs, FieldError{Field: "title", Message: "title must not be empty"})
	}
	if patch.Progress != nil && (*patch.Progress < 0 || *patch.Progress > 100) {
		errs = append(errs, progressError("progress"))
	}

	return errs
}

// ValidateStandalonePOCInput validates a create standalone-POC request.
func ValidateStandalonePOCInput(in dashboard.StandalonePOCInput) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(in.Title) == "" {
		errs = append(errs, requiredError("title"))
	}
	if in.Progress < 0 || in.Progress > 100 {
		errs = append(errs, progressError("progress"))
	}
	for _, m := range in.TeamMembers {
		if strings.TrimSpace(m.Name) == "" {
			errs = append(errs, FieldError{Field: "teamMembers", Message: "teamMembers entries must have a name"})
			break
		}
	}

	return errs
}

// ValidateStandalonePOCPatch validates an update standalone-POC request.
func ValidateStandalonePOCPatch(patch dashboard.StandalonePOCPatch) []FieldError {
	var errs []FieldError

	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		errs = append(errs, FieldError{Field: "title", Message: "title must not be empty"})
	}
	if patch.Progress != nil && (*patch.Progress < 0 || *patch.Progress > 100) {
		errs = append(errs, progressError("progress"))
	}

	return errs
}

// ValidateStandalonePOCMemberInput validates an add POC team member
// request.
func ValidateStandalonePOCMemberInput(in dashboard.StandalonePOCMemberInput) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, requiredError("name"))
	}
	if in.HoursAllocated < 0 {
		errs = append(errs, FieldError{Field: "hoursAllocated", Message: "hoursAllocated must not be negative"})
	}

	return errs
}
