package dashboard

import "time"

// View structs are the denormalized read shapes assembled by the join
// resolver. Joins are pure reads: a dangling foreign key degrades to an
// empty-string field instead of failing, so read paths stay available
// even when referential integrity has been broken by an earlier
// non-cascading delete.

// ProjectList is the paginated result of listing projects.
type ProjectList struct {
	Data     []Project `json:"data"`
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	PageSize int       `json:"pageSize"`
}

// ProjectMemberView is a project allocation with the member's name and
// email resolved.
type ProjectMemberView struct {
	ProjectTeamMember
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ProjectDetail is a project with its team and issues attached.
type ProjectDetail struct {
	Project
	TeamMembers []ProjectMemberView `json:"teamMembers"`
	Issues      []Issue             `json:"issues"`
}

// MemberList is the result of listing team members.
type MemberList struct {
	Data  []TeamMember `json:"data"`
	Total int          `json:"total"`
}

// MemberProjectView is a project membership with the project's name
// resolved.
type MemberProjectView struct {
	ProjectTeamMember
	ProjectName string `json:"projectName"`
}

// MemberPOCView is a member POC with its technology rows flattened.
type MemberPOCView struct {
	MemberPOC
	Technologies []string `json:"technologies"`
}

// TaskView is a task with its optional project's name resolved (empty
// when the task is unscoped or the project is gone).
type TaskView struct {
	Task
	ProjectName string `json:"projectName"`
}

// InternView is an intern assignment with the intern's record resolved.
type InternView struct {
	InternAssignment
	Name  string `json:"name"`
	Email string `json:"email"`
}

// MemberDetail is a team member with every related collection attached.
// Interns is only populated for Learning Catalysts.
type MemberDetail struct {
	TeamMember
	Skills         []string            `json:"skills"`
	Projects       []MemberProjectView `json:"projects"`
	Certifications []Certification     `json:"certifications"`
	POCs           []MemberPOCView     `json:"pocs"`
	Tasks          []TaskView          `json:"tasks"`
	Interns        []InternView        `json:"interns"`
}

// StandalonePOCView is a standalone POC with technologies and its ad hoc
// team attached.
type StandalonePOCView struct {
	StandalonePOC
	Technologies []string                  `json:"technologies"`
	TeamMembers  []StandalonePOCTeamMember `json:"teamMembers"`
}

// StandalonePOCList is the result of listing standalone POCs.
type StandalonePOCList struct {
	Data  []StandalonePOCView `json:"data"`
	Total int                 `json:"total"`
}

// Summary is the dashboard's headline analytics view.
type Summary struct {
	TotalProjects       int     `json:"totalProjects"`
	InProgressProjects  int     `json:"inProgressProjects"`
	CompletedProjects   int     `json:"completedProjects"`
	AverageProgress     float64 `json:"averageProgress"`
	TotalHoursAllocated int     `json:"totalHoursAllocated"`
	TotalTeamMembers    int     `json:"totalTeamMembers"`
	OpenIssues          int     `json:"openIssues"`
}

// BucketCount is a single group-by bucket. Buckets preserve the
// first-seen order of distinct keys during the scan.
type BucketCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// WorkloadEntry is one row of the team workload ranking.
type WorkloadEntry struct {
	TeamMemberID string `json:"teamMemberId"`
	Name         string `json:"name"`
	TotalHours   int    `json:"totalHours"`
	ProjectCount int    `json:"projectCount"`
}

// TimelineBucket counts projects started in one calendar month.
type TimelineBucket struct {
	Month string `json:"month"` // YYYY-MM
	Count int    `json:"count"`
}

// IssueStats is the fixed four-bucket issue status histogram.
type IssueStats struct {
	Open       int `json:"open"`
	InProgress int `json:"inProgress"`
	Resolved   int `json:"resolved"`
	Closed     int `json:"closed"`
}

// ReportFilter selects the projects included in a generated report.
// Empty slices mean "no restriction".
type ReportFilter struct {
	ProjectIDs []string `json:"projectIds"`
	Types      []string `json:"types"`
	Statuses   []string `json:"statuses"`
}

// Report is a rendered plain-text project report.
type Report struct {
	Report       string    `json:"report"`
	ProjectCount int       `json:"projectCount"`
	GeneratedAt  time.Time `json:"generatedAt"`
}

// ReportSummary aggregates the same figures as a generated report
// without rendering the document.
type ReportSummary struct {
	ProjectCount     int     `json:"projectCount"`
	TotalBudget      float64 `json:"totalBudget"`
	AverageProgress  float64 `json:"averageProgress"`
	TotalTeamMembers int     `json:"totalTeamMembers"`
	TotalIssues      int     `json:"totalIssues"`
	OpenIssues       int     `json:"openIssues"`
}
