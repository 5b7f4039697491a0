package dashboard

import "time"

// Project types and statuses accepted by the store's callers.
var (
	ProjectTypes    = []string{"fullstack", "data-engineering", "devops", "cloud", "mobile", "frontend", "backend"}
	ProjectStatuses = []string{"not-started", "in-progress", "on-hold", "completed", "cancelled"}

	UserRoles = []string{"manager", "team-lead", "developer", "intern"}

	IssuePriorities = []string{"low", "medium", "high", "critical"}
	IssueStatuses   = []string{"open", "in-progress", "resolved", "closed"}

	CertificationStatuses = []string{"planning", "in-progress", "completed"}
	TaskStatuses          = []string{"todo", "in-progress", "completed"}
)

// Project is a client engagement tracked on the dashboard.
// StartDate and EndDate are YYYY-MM-DD strings; the store treats them as
// opaque display values.
type Project struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Client    string    `json:"client"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	Progress  int       `json:"progress"`
	Budget    float64   `json:"budget"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TeamMember is a person on the team. IsLC marks Learning Catalysts, who
// mentor interns.
type TeamMember struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	UserRole           string    `json:"userRole"`
	IsLC               bool      `json:"isLC"`
	WorkloadPercentage int       `json:"workloadPercentage"`
	JoinDate           string    `json:"joinDate"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// ProjectTeamMember links a member to a project with an allocation.
// A (projectId, teamMemberId) pair is expected to be unique but the
// store does not enforce it.
type ProjectTeamMember struct {
	ID             string `json:"id"`
	ProjectID      string `json:"projectId"`
	TeamMemberID   string `json:"teamMemberId"`
	Role           string `json:"role"`
	HoursAllocated int    `json:"hoursAllocated"`
}

// Issue belongs to exactly one project.
type Issue struct {
	ID           string    `json:"id"`
	ProjectID    string    `json:"projectId"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Priority     string    `json:"priority"`
	Status       string    `json:"status"`
	ReportedBy   string    `json:"reportedBy"`
	ReportedDate string    `json:"reportedDate"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TeamMemberSkill is a junction row with no identity beyond its pair.
type TeamMemberSkill struct {
	TeamMemberID string `json:"teamMemberId"`
	Skill        string `json:"skill"`
}

// Certification tracks a member's certification effort.
type Certification struct {
	ID             string    `json:"id"`
	TeamMemberID   string    `json:"teamMemberId"`
	Name           string    `json:"name"`
	Provider       string    `json:"provider"`
	Status         string    `json:"status"`
	StartDate      string    `json:"startDate"`
	CompletionDate string    `json:"completionDate"`
	Progress       int       `json:"progress"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// MemberPOC is a proof of concept owned by a single member.
type MemberPOC struct {
	ID           string    `json:"id"`
	TeamMemberID string    `json:"teamMemberId"`
	Title        string    `json:"title"`
	Status       string    `json:"status"`
	StartDate    string    `json:"startDate"`
	EndDate      string    `json:"endDate"`
	Progress     int       `json:"progress"`
	Objective    string    `json:"objective"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// MemberPOCTechnology is a junction row with no identity beyond its pair.
type MemberPOCTechnology struct {
	MemberPOCID string `json:"memberPocId"`
	Technology  string `json:"technology"`
}

// Task belongs to one member and optionally one project (empty ProjectID
// means unscoped).
type Task struct {
	ID             string    `json:"id"`
	TeamMemberID   string    `json:"teamMemberId"`
	ProjectID      string    `json:"projectId"`
	Title          string    `json:"title"`
	Status         string    `json:"status"`
	Priority       string    `json:"priority"`
	EstimatedHours int       `json:"estimatedHours"`
	Deadline       string    `json:"deadline"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// StandalonePOC is a proof of concept tracked independently of any
// single member, with its own ad hoc team.
type StandalonePOC struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Overview    string    `json:"overview"`
	EndGoal     string    `json:"endGoal"`
	Status      string    `json:"status"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	Progress    int       `json:"progress"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// StandalonePOCTechnology is a junction row with no identity beyond its
// pair.
type StandalonePOCTechnology struct {
	StandalonePOCID string `json:"standalonePocId"`
	Technology      string `json:"technology"`
}

// StandalonePOCTeamMember is a free-text member reference on a
// standalone POC; it is not a foreign key into the team-member
// collection.
type StandalonePOCTeamMember struct {
	ID              string `json:"id"`
	StandalonePOCID string `json:"standalonePocId"`
	Name            string `json:"name"`
	Role            string `json:"role"`
	Email           string `json:"email"`
	HoursAllocated  int    `json:"hoursAllocated"`
}

// InternAssignment links a Learning Catalyst to an intern. The
// (lcId, internId) pair is unique.
type InternAssignment struct {
	LCID       string    `json:"lcId"`
	InternID   string    `json:"internId"`
	AssignedAt time.Time `json:"assignedAt"`
}
