package seed

import "github.com/teamdash/teamdash/internal/dashboard"

// Default returns the built-in demo dataset, used when no seed file is
// configured so the server starts populated.
func Default() *File {
	return &File{
		TeamMembers: []Member{
			{
				MemberInput: dashboard.MemberInput{
					Name:               "Sarah Mitchell",
					Email:              "sarah.mitchell@teamdash.dev",
					UserRole:           "manager",
					WorkloadPercentage: 80,
					JoinDate:           "2021-03-15",
					Skills:             []string{"Project Management", "Agile", "Stakeholder Management"},
				},
			},
			{
				MemberInput: dashboard.MemberInput{
					Name:               "Daniel Okafor",
					Email:              "daniel.okafor@teamdash.dev",
					UserRole:           "team-lead",
					IsLC:               true,
					WorkloadPercentage: 90,
					JoinDate:           "2021-07-01",
					Skills:             []string{"Go", "Kubernetes", "PostgreSQL", "Mentoring"},
				},
				Certifications: []dashboard.CertificationInput{
					{
						Name:      "CKA",
						Provider:  "CNCF",
						Status:    "completed",
						StartDate: "2023-01-10",
						Progress:  100,
					},
				},
				POCs: []dashboard.MemberPOCInput{
					{
						Title:        "Event-driven ingestion pipeline",
						Status:       "in-progress",
						StartDate:    "2025-02-01",
						Progress:     55,
						Objective:    "Evaluate NATS JetStream as the backbone for the ingestion pipeline",
						Technologies: []string{"Go", "NATS", "ClickHouse"},
					},
				},
			},
			{
				MemberInput: dashboard.MemberInput{
					Name:               "Priya Raman",
					Email:              "priya.raman@teamdash.dev",
					UserRole:           "developer",
					WorkloadPercentage: 100,
					JoinDate:           "2022-02-14",
					Skills:             []string{"React", "TypeScript", "GraphQL"},
				},
				Tasks: []Task{
					{
						TaskInput: dashboard.TaskInput{
							Title:          "Migrate billing dashboard to the new design system",
							Status:         "in-progress",
							Priority:       "high",
							EstimatedHours: 24,
							Deadline:       "2025-09-30",
						},
						Project: "Atlas Billing Platform",
					},
				},
			},
			{
				MemberInput: dashboard.MemberInput{
					Name:               "Tomás Herrera",
					Email:              "tomas.herrera@teamdash.dev",
					UserRole:           "intern",
					WorkloadPercentage: 60,
					JoinDate:           "2025-06-01",
					Skills:             []string{"Python", "SQL"},
				},
			},
		},
		Projects: []Project{
			{
				ProjectInput: dashboard.ProjectInput{
					Name:      "Atlas Billing Platform",
					Client:    "Northwind Retail",
					Type:      "fullstack",
					Status:    "in-progress",
					StartDate: "2025-01-15",
					EndDate:   "2025-11-30",
					Progress:  45,
					Budget:    180000,
				},
				Members: []ProjectMember{
					{Email: "daniel.okafor@teamdash.dev", Role: "Tech Lead", HoursAllocated: 320},
					{Email: "priya.raman@teamdash.dev", Role: "Frontend Developer", HoursAllocated: 400},
				},
				Issues: []dashboard.IssueInput{
					{
						Title:        "Invoice totals drift on currency conversion",
						Description:  "Rounding applied per line item instead of per invoice",
						Priority:     "critical",
						Status:       "open",
						ReportedBy:   "Sarah Mitchell",
						ReportedDate: "2025-07-22",
					},
				},
			},
			{
				ProjectInput: dashboard.ProjectInput{
					Name:      "Fleet Telemetry Lake",
					Client:    "Meridian Logistics",
					Type:      "data-engineering",
					Status:    "not-started",
					StartDate: "2025-10-01",
					EndDate:   "2026-04-30",
					Progress:  0,
					Budget:    240000,
				},
				Members: []ProjectMember{
					{Email: "daniel.okafor@teamdash.dev", Role: "Architect", HoursAllocated: 120},
				},
			},
			{
				ProjectInput: dashboard.ProjectInput{
					Name:      "Storefront Revamp",
					Client:    "Northwind Retail",
					Type:      "frontend",
					Status:    "completed",
					StartDate: "2024-09-01",
					EndDate:   "2025-03-31",
					Progress:  100,
					Budget:    95000,
				},
				Members: []ProjectMember{
					{Email: "priya.raman@teamdash.dev", Role: "Frontend Developer", HoursAllocated: 280},
				},
				Issues: []dashboard.IssueInput{
					{
						Title:        "Checkout flicker on Safari",
						Priority:     "medium",
						Status:       "resolved",
						ReportedBy:   "Priya Raman",
						ReportedDate: "2025-01-12",
					},
				},
			},
		},
		StandalonePOCs: []dashboard.StandalonePOCInput{
			{
				Title:        "Edge inference gateway",
				Description:  "Run lightweight model inference close to the data source",
				Overview:     "Prototype a gateway that batches and routes inference requests to edge nodes",
				EndGoal:      "Decision on whether edge inference enters the service catalog",
				Status:       "in-progress",
				StartDate:    "2025-05-01",
				EndDate:      "2025-10-31",
				Progress:     35,
				Technologies: []string{"Go", "ONNX Runtime", "gRPC"},
				TeamMembers: []dashboard.StandalonePOCMemberInput{
					{Name: "Daniel Okafor", Role: "Lead", Email: "daniel.okafor@teamdash.dev", HoursAllocated: 60},
					{Name: "External: Dr. L. Chen", Role: "Advisor", Email: "l.chen@example.org", HoursAllocated: 10},
				},
			},
		},
		Assignments: []Assignment{
			{Mentor: "daniel.okafor@teamdash.dev", Intern: "tomas.herrera@teamdash.dev"},
		},
	}
}
