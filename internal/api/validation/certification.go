package validation

import (
	"strings"

	"github.com/teamdash/teamdash/internal/dashboard"
)

// ValidateCertificationInput validates a create certification request.
func ValidateCertificationInput(in dashboard.CertificationInput) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, requiredError("name"))
	}
	if !oneOf(in.Status, dashboard.CertificationStatuses) {
		errs = append(errs, enumError("status", dashboard.CertificationStatuses))
	}
	if in.Progress < 0 || in.Progress > 100 {
		errs = append(errs, progressError("progress"))
	}

	return errs
}

// ValidateCertificationPatch validates an update certification request.
func ValidateCertificationPatch(patch dashboard.CertificationPatch) []FieldError {
	var errs []FieldError

	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name must not be empty"})
	}
	if patch.Status != nil && !oneOf(*patch.Status, dashboard.CertificationStatuses) {
		errs = append(errs, enumError("status", dashboard.CertificationStatuses))
	}
	if patch.Progress != nil && (*patch.Progress < 0 || *patch.Progress > 100) {
		errs = append(errs, progressError("progress"))
	}

	return errs
}
