package dashboard

import "errors"

// Not-found errors. Every mutation that targets a nonexistent id fails
// with one of these before any state changes.
var (
	ErrProjectNotFound          = errors.New("project not found")
	ErrTeamMemberNotFound       = errors.New("team member not found")
	ErrProjectMemberNotFound    = errors.New("project team member not found")
	ErrIssueNotFound            = errors.New("issue not found")
	ErrCertificationNotFound    = errors.New("certification not found")
	ErrMemberPOCNotFound        = errors.New("member POC not found")
	ErrTaskNotFound             = errors.New("task not found")
	ErrStandalonePOCNotFound    = errors.New("standalone POC not found")
	ErrStandaloneMemberNotFound = errors.New("standalone POC team member not found")
	ErrInternAssignmentNotFound = errors.New("intern assignment not found")
)

// Business-rule conflicts raised by the intern-assignment operations.
var (
	ErrMentorNotLC         = errors.New("member is not an LC")
	ErrInternNotFound      = errors.New("intern does not resolve to an existing team member")
	ErrDuplicateAssignment = errors.New("intern is already assigned to this LC")
)
