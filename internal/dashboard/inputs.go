package dashboard

// Input structs carry the caller-supplied fields for create operations.
// Patch structs carry partial updates; nil fields are left untouched.

// ProjectInput holds the fields for creating a project.
type ProjectInput struct {
	Name      string  `json:"name"`
	Client    string  `json:"client"`
	Type      string  `json:"type"`
	Status    string  `json:"status"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	Progress  int     `json:"progress"`
	Budget    float64 `json:"budget"`
}

// ProjectPatch holds user-updatable project fields. Nil fields are not
// updated.
type ProjectPatch struct {
	Name      *string  `json:"name"`
	Client    *string  `json:"client"`
	Type      *string  `json:"type"`
	Status    *string  `json:"status"`
	StartDate *string  `json:"startDate"`
	EndDate   *string  `json:"endDate"`
	Progress  *int     `json:"progress"`
	Budget    *float64 `json:"budget"`
}

// ProjectFilter holds optional filters and pagination for listing
// projects.
type ProjectFilter struct {
	Type     string
	Status   string
	Search   string // case-insensitive match against name and client
	Page     int    // default 1
	PageSize int    // default 20
}

// MemberInput holds the fields for creating a team member.
type MemberInput struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	UserRole           string `json:"userRole"`
	IsLC               bool   `json:"isLC"`
	WorkloadPercentage int    `json:"workloadPercentage"`
	JoinDate           string   `json:"joinDate"`
	Skills             []string `json:"skills"`
}

// MemberPatch holds user-updatable member fields. A non-nil Skills slice
// replaces the member's whole skill set.
type MemberPatch struct {
	Name               *string   `json:"name"`
	Email              *string   `json:"email"`
	UserRole           *string   `json:"userRole"`
	IsLC               *bool     `json:"isLC"`
	WorkloadPercentage *int      `json:"workloadPercentage"`
	JoinDate           *string   `json:"joinDate"`
	Skills             *[]string `json:"skills"`
}

// MemberFilter holds optional filters for listing team members.
type MemberFilter struct {
	UserRole string
	IsLC     *bool
	Search   string // case-insensitive match against name and email
}

// ProjectMemberInput holds the fields for allocating a member to a
// project.
type ProjectMemberInput struct {
	TeamMemberID   string `json:"teamMemberId"`
	Role           string `json:"role"`
	HoursAllocated int    `json:"hoursAllocated"`
}

// ProjectMemberPatch holds updatable allocation fields.
type ProjectMemberPatch struct {
	Role           *string `json:"role"`
	HoursAllocated *int    `json:"hoursAllocated"`
}

// IssueInput holds the fields for reporting an issue on a project.
type IssueInput struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Priority     string `json:"priority"`
	Status       string `json:"status"`
	ReportedBy   string `json:"reportedBy"`
	ReportedDate string `json:"reportedDate"`
}

// IssuePatch holds updatable issue fields.
type IssuePatch struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Priority     *string `json:"priority"`
	Status       *string `json:"status"`
	ReportedBy   *string `json:"reportedBy"`
	ReportedDate *string `json:"reportedDate"`
}

// IssueFilter holds optional filters for listing a project's issues.
type IssueFilter struct {
	Status   string
	Priority string
}

// CertificationInput holds the fields for creating a certification.
type CertificationInput struct {
	Name           string `json:"name"`
	Provider       string `json:"provider"`
	Status         string `json:"status"`
	StartDate      string `json:"startDate"`
	CompletionDate string `json:"completionDate"`
	Progress       int    `json:"progress"`
}

// CertificationPatch holds updatable certification fields.
type CertificationPatch struct {
	Name           *string `json:"name"`
	Provider       *string `json:"provider"`
	Status         *string `json:"status"`
	StartDate      *string `json:"startDate"`
	CompletionDate *string `json:"completionDate"`
	Progress       *int    `json:"progress"`
}

// MemberPOCInput holds the fields for creating a member POC.
type MemberPOCInput struct {
	Title        string   `json:"title"`
	Status       string   `json:"status"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Progress     int      `json:"progress"`
	Objective    string   `json:"objective"`
	Technologies []string `json:"technologies"`
}

// MemberPOCPatch holds updatable member-POC fields. A non-nil
// Technologies slice replaces the POC's whole technology set.
type MemberPOCPatch struct {
	Title        *string   `json:"title"`
	Status       *string   `json:"status"`
	StartDate    *string   `json:"startDate"`
	EndDate      *string   `json:"endDate"`
	Progress     *int      `json:"progress"`
	Objective    *string   `json:"objective"`
	Technologies *[]string `json:"technologies"`
}

// TaskInput holds the fields for creating a task.
type TaskInput struct {
	ProjectID      string `json:"projectId"`
	Title          string `json:"title"`
	Status         string `json:"status"`
	Priority       string `json:"priority"`
	EstimatedHours int    `json:"estimatedHours"`
	Deadline       string `json:"deadline"`
}

// TaskPatch holds updatable task fields.
type TaskPatch struct {
	ProjectID      *string `json:"projectId"`
	Title          *string `json:"title"`
	Status         *string `json:"status"`
	Priority       *string `json:"priority"`
	EstimatedHours *int    `json:"estimatedHours"`
	Deadline       *string `json:"deadline"`
}

// StandalonePOCInput holds the fields for creating a standalone POC,
// including its initial technology list and ad hoc team.
type StandalonePOCInput struct {
	Title        string                     `json:"title"`
	Description  string                     `json:"description"`
	Overview     string                     `json:"overview"`
	EndGoal      string                     `json:"endGoal"`
	Status       string                     `json:"status"`
	StartDate    string                     `json:"startDate"`
	EndDate      string                     `json:"endDate"`
	Progress     int                        `json:"progress"`
	Technologies []string                   `json:"technologies"`
	TeamMembers  []StandalonePOCMemberInput `json:"teamMembers"`
}

// StandalonePOCPatch holds updatable standalone-POC fields. A non-nil
// Technologies slice replaces the POC's whole technology set.
type StandalonePOCPatch struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Overview     *string   `json:"overview"`
	EndGoal      *string   `json:"endGoal"`
	Status       *string   `json:"status"`
	StartDate    *string   `json:"startDate"`
	EndDate      *string   `json:"endDate"`
	Progress     *int      `json:"progress"`
	Technologies *[]string `json:"technologies"`
}

// StandalonePOCFilter holds optional filters for listing standalone
// POCs.
type StandalonePOCFilter struct {
	Status string
	Search string // case-insensitive match against title
}

// StandalonePOCMemberInput holds the free-text member fields for a
// standalone POC team row.
type StandalonePOCMemberInput struct {
	Name           string `json:"name"`
	Role           string `json:"role"`
	Email          string `json:"email"`
	HoursAllocated int    `json:"hoursAllocated"`
}

// StandalonePOCMemberPatch holds updatable standalone-POC member fields.
type StandalonePOCMemberPatch struct {
	Name           *string `json:"name"`
	Role           *string `json:"role"`
	Email          *string `json:"email"`
	HoursAllocated *int    `json:"hoursAllocated"`
}
