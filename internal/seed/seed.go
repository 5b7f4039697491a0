// Package seed populates the in-memory store with a demo dataset at
// boot, either from a YAML file or from the built-in fixtures.
package seed

import (
	"context"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/teamdash/teamdash/internal/dashboard"
)

// Member is a seed team member with nested related records.
type Member struct {
	dashboard.MemberInput
	Certifications []dashboard.CertificationInput `json:"certifications"`
	POCs           []dashboard.MemberPOCInput     `json:"pocs"`
	Tasks          []Task                         `json:"tasks"`
}

// Task is a seed task; Project references a seed project by name.
type Task struct {
	dashboard.TaskInput
	Project string `json:"project"`
}

// ProjectMember references a seed team member by email.
type ProjectMember struct {
	Email          string `json:"email"`
	Role           string `json:"role"`
	HoursAllocated int    `json:"hoursAllocated"`
}

// Project is a seed project with nested allocations and issues.
type Project struct {
	dashboard.ProjectInput
	Members []ProjectMember        `json:"members"`
	Issues  []dashboard.IssueInput `json:"issues"`
}

// Assignment references mentor and intern by email.
type Assignment struct {
	Mentor string `json:"mentor"`
	Intern string `json:"intern"`
}

// File is the root of a seed document.
type File struct {
	TeamMembers    []Member                       `json:"teamMembers"`
	Projects       []Project                      `json:"projects"`
	StandalonePOCs []dashboard.StandalonePOCInput `json:"standalonePocs"`
	Assignments    []Assignment                   `json:"internAssignments"`
}

// Load parses a seed file.
func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}
	return &f, nil
}

// Apply inserts the seed dataset through the service. Members are
// created first so projects and assignments can reference them by
// email; unknown references are reported as errors rather than being
// silently dropped.
func Apply(ctx context.Context, svc *dashboard.Service, f *File) error {
	memberIDs := make(map[string]string, len(f.TeamMembers))
	projectIDs := make(map[string]string, len(f.Projects))

	for _, m := range f.TeamMembers {
		created, err := svc.CreateMember(ctx, m.MemberInput)
		if err != nil {
			return fmt.Errorf("seeding member %q: %w", m.Email, err)
		}
		memberIDs[m.Email] = created.ID

		for _, c := range m.Certifications {
			if _, err := svc.CreateCertification(ctx, created.ID, c); err != nil {
				return fmt.Errorf("seeding certification %q: %w", c.Name, err)
			}
		}
		for _, p := range m.POCs {
			if _, err := svc.CreateMemberPOC(ctx, created.ID, p); err != nil {
				return fmt.Errorf("seeding POC %q: %w", p.Title, err)
			}
		}
	}

	for _, p := range f.Projects {
		created, err := svc.CreateProject(ctx, p.ProjectInput)
		if err != nil {
			return fmt.Errorf("seeding project %q: %w", p.Name, err)
		}
		projectIDs[p.Name] = created.ID

		for _, pm := range p.Members {
			memberID, ok := memberIDs[pm.Email]
			if !ok {
				return fmt.Errorf("project %q references unknown member %q", p.Name, pm.Email)
			}
			in := dashboard.ProjectMemberInput{
				TeamMemberID:   memberID,
				Role:           pm.Role,
				HoursAllocated: pm.HoursAllocated,
			}
			if _, err := svc.AddProjectMember(ctx, created.ID, in); err != nil {
				return fmt.Errorf("seeding allocation on %q: %w", p.Name, err)
			}
		}
		for _, issue := range p.Issues {
			if _, err := svc.CreateIssue(ctx, created.ID, issue); err != nil {
				return fmt.Errorf("seeding issue %q: %w", issue.Title, err)
			}
		}
	}

	// Tasks come after projects so they can reference them by name.
	for _, m := range f.TeamMembers {
		memberID := memberIDs[m.Email]
		for _, t := range m.Tasks {
			in := t.TaskInput
			if t.Project != "" {
				projectID, ok := projectIDs[t.Project]
				if !ok {
					return fmt.Errorf("task %q references unknown project %q", t.Title, t.Project)
				}
				in.ProjectID = projectID
			}
			if _, err := svc.CreateTask(ctx, memberID, in); err != nil {
				return fmt.Errorf("seeding task %q: %w", t.Title, err)
			}
		}
	}

	for _, p := range f.StandalonePOCs {
		if _, err := svc.CreateStandalonePOC(ctx, p); err != nil {
			return fmt.Errorf("seeding standalone POC %q: %w", p.Title, err)
		}
	}

	for _, a := range f.Assignments {
		mentorID, ok := memberIDs[a.Mentor]
		if !ok {
			return fmt.Errorf("assignment references unknown mentor %q", a.Mentor)
		}
		internID, ok := memberIDs[a.Intern]
		if !ok {
			return fmt.Errorf("assignment references unknown intern %q", a.Intern)
		}
		if _, err := svc.CreateInternAssignment(ctx, mentorID, internID); err != nil {
			return fmt.Errorf("seeding assignment %s -> %s: %w", a.Mentor, a.Intern, err)
		}
	}

	return nil
}
