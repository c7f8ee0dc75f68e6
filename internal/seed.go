package internal

import (
	"fmt"
	"strings"
	"time"
)

// Built-in sample organization used when no org file or database is given.
// Generation is deterministic so tests and repeated runs see the same tree.

var seedFirstNames = []string{
	"Sarah", "Michael", "Jennifer", "David", "Emily", "James", "Lisa",
	"Robert", "Amanda", "Chris", "Jessica", "Daniel", "Ashley", "Matthew",
	"Stephanie", "Andrew", "Nicole", "Joshua", "Elizabeth", "Ryan",
	"Megan", "Brandon", "Rachel", "Kevin", "Lauren", "Justin", "Samantha",
	"Tyler", "Kayla", "Aaron", "Hannah", "Nathan", "Olivia", "Jacob",
	"Emma", "Ethan", "Ava", "Noah", "Sophia", "Mason",
}

var seedLastNames = []string{
	"Chen", "Torres", "Walsh", "Kim", "Rodriguez", "Wright", "Park",
	"Johnson", "Foster", "Martinez", "Smith", "Williams", "Brown",
	"Jones", "Garcia", "Miller", "Davis", "Wilson", "Anderson", "Taylor",
	"Thomas", "Jackson", "White", "Harris", "Martin", "Thompson", "Moore",
	"Young", "Allen", "King", "Scott", "Green", "Baker", "Adams",
	"Nelson", "Hill", "Ramirez", "Campbell", "Mitchell", "Roberts",
}

var seedSkills = []string{
	"Leadership", "Strategy", "Operations", "Finance",
	"Engineering Management", "Architecture", "Agile", "Cloud",
	"Process Improvement", "Supply Chain", "Analytics",
	"Financial Planning", "Accounting", "Risk Management", "Budgeting",
	"Talent Management", "Recruiting", "Employee Relations",
	"Software Development", "Data Science", "Machine Learning", "Python",
	"SQL", "Sales Leadership", "Account Management", "Negotiation",
	"Digital Marketing", "Brand Strategy", "Content", "DevOps",
	"Kubernetes", "CI/CD", "Security", "Communication",
	"Project Management",
}

func seedEmployee(seq int, department string) *Employee {
	first := seedFirstNames[seq%len(seedFirstNames)]
	last := seedLastNames[(seq*7)%len(seedLastNames)]
	skillCount := 2 + seq%4
	skills := make([]string, 0, skillCount)
	for i := 0; i < skillCount; i++ {
		skills = append(skills, seedSkills[(seq+i*3)%len(seedSkills)])
	}
	return &Employee{
		ID:         fmt.Sprintf("emp-%d", seq),
		Name:       first + " " + last,
		Email:      strings.ToLower(first) + "." + strings.ToLower(last) + "@company.com",
		Department: department,
		Skills:     skills,
		MatchScore: 70 + seq%30,
	}
}

type seedPosition struct {
	title       string
	description string
	skills      []string
	level       int
	department  string
	reports     []seedPosition
	teamTitle   string // title for generated team members
	teamSize    int
	vacant      bool
}

var seedOrg = seedPosition{
	title:       "Chief Executive Officer",
	description: "Lead overall company strategy and operations",
	skills:      []string{"Leadership", "Strategy", "Operations"},
	level:       1,
	department:  "Executive",
	reports: []seedPosition{
		{
			title:       "Chief Technology Officer",
			description: "Oversee all technology initiatives and innovation",
			skills:      []string{"Engineering Management", "Architecture", "Strategy"},
			level:       2,
			department:  "Technology",
			reports: []seedPosition{
				{
					title:       "VP of Engineering",
					description: "Lead engineering teams and technical delivery",
					skills:      []string{"Engineering Management", "Agile", "Architecture"},
					level:       3,
					department:  "Technology",
					teamTitle:   "Software Engineer",
					teamSize:    5,
				},
				{
					title:       "VP of Data Science",
					description: "Lead data and analytics initiatives",
					skills:      []string{"Data Science", "Machine Learning", "Leadership"},
					level:       3,
					department:  "Technology",
					teamTitle:   "Data Scientist",
					teamSize:    4,
				},
				{
					title:       "Director of DevOps",
					description: "Manage infrastructure and deployment",
					skills:      []string{"DevOps", "Cloud", "Security"},
					level:       4,
					department:  "Technology",
					teamTitle:   "DevOps Engineer",
					teamSize:    3,
				},
			},
		},
		{
			title:       "Chief Operating Officer",
			description: "Manage day-to-day operations and efficiency",
			skills:      []string{"Operations", "Process Improvement", "Leadership"},
			level:       2,
			department:  "Operations",
			reports: []seedPosition{
				{
					title:       "VP of Sales",
					description: "Drive revenue growth and sales strategy",
					skills:      []string{"Sales Leadership", "Strategy", "Account Management"},
					level:       3,
					department:  "Sales",
					teamTitle:   "Account Executive",
					teamSize:    5,
				},
				{
					title:       "VP of Marketing",
					description: "Lead brand and demand generation",
					skills:      []string{"Digital Marketing", "Brand Strategy", "Leadership"},
					level:       3,
					department:  "Marketing",
					teamTitle:   "Marketing Specialist",
					teamSize:    3,
					vacant:      true,
				},
			},
			teamTitle: "Operations Analyst",
			teamSize:  4,
		},
		{
			title:       "Chief Financial Officer",
			description: "Oversee financial planning and risk management",
			skills:      []string{"Financial Planning", "Risk Management", "Strategy"},
			level:       2,
			department:  "Finance",
			reports: []seedPosition{
				{
					title:       "Director of Finance",
					description: "Run financial reporting and budgeting",
					skills:      []string{"Accounting", "Budgeting", "Analytics"},
					level:       4,
					department:  "Finance",
					teamTitle:   "Financial Analyst",
					teamSize:    3,
				},
			},
		},
		{
			title:       "Chief Human Resources Officer",
			description: "Lead talent strategy and employee experience",
			skills:      []string{"Talent Management", "Leadership", "Strategy"},
			level:       2,
			department:  "HR",
			teamTitle:   "HR Partner",
			teamSize:    3,
		},
	},
}

// SeedBaselineScenario builds the built-in baseline org tree.
func SeedBaselineScenario() *Scenario {
	scenario := &Scenario{
		ID:         "baseline",
		Name:       "Current Org (Baseline)",
		IsBaseline: true,
		CreatedAt:  time.Now(),
		Nodes:      make(map[string]*OrgNode),
	}

	nodeSeq := 0
	empSeq := 0
	var build func(spec seedPosition, parentID string) string
	build = func(spec seedPosition, parentID string) string {
		nodeSeq++
		id := fmt.Sprintf("node-%d", nodeSeq)
		node := &OrgNode{
			ID: id,
			Position: &Position{
				ID:             fmt.Sprintf("pos-%d", nodeSeq),
				Title:          spec.title,
				Description:    spec.description,
				RequiredSkills: spec.skills,
				Level:          spec.level,
				Department:     spec.department,
			},
			ParentID: parentID,
		}
		if !spec.vacant {
			empSeq++
			node.Employee = seedEmployee(empSeq, spec.department)
		}
		scenario.Nodes[id] = node
		if parentID != "" {
			scenario.Nodes[parentID].Children = append(scenario.Nodes[parentID].Children, id)
		}

		for _, report := range spec.reports {
			build(report, id)
		}
		for i := 0; i < spec.teamSize; i++ {
			member := seedPosition{
				title:       spec.teamTitle,
				description: fmt.Sprintf("%s on the %s team", spec.teamTitle, spec.department),
				level:       spec.level + 2,
				department:  spec.department,
			}
			build(member, id)
		}
		return id
	}

	scenario.RootID = build(seedOrg, "")
	return scenario
}
