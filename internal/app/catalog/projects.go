package catalog

import "slices"

// Project statuses.
const (
	StatusPlanning       = "Planning"
	StatusStarting       = "Starting"
	StatusInProgress     = "In Progress"
	StatusNearCompletion = "Near Completion"
)

// Project is an open team project members can join.
type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Leader      string   `json:"leader"`
	Members     int      `json:"members"`
	MaxMembers  int      `json:"maxMembers"`
	Skills      []string `json:"skills"`
	Progress    int      `json:"progress"`
	Timeline    string   `json:"timeline"`
	Status      string   `json:"status"`
	College     string   `json:"college"`
}

// Collaboration is a project advertised on a college community page.
type Collaboration struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Leader      string   `json:"leader"`
	Members     int      `json:"members"`
	Skills      []string `json:"skills"`
	Progress    int      `json:"progress"`
}

// ProjectFilter narrows ListProjects. Empty fields match everything.
type ProjectFilter struct {
	Search string
	Skill  string
}

var projects = []Project{
	{
		ID: "iot-parking", Title: "IoT Smart Parking System",
		Description: "Develop an intelligent parking management system using IoT sensors and mobile app",
		Leader:      "Rahul Sharma", Members: 4, MaxMembers: 6,
		Skills:   []string{"IoT", "React Native", "Node.js", "MongoDB"},
		Progress: 65, Timeline: "3 months", Status: StatusInProgress, College: "GLA University",
	},
	{
		ID: "ai-resume", Title: "AI Resume Screener",
		Description: "ML-powered resume screening tool for HR departments with automated ranking",
		Leader:      "Priya Singh", Members: 3, MaxMembers: 5,
		Skills:   []string{"Python", "ML", "React", "Flask"},
		Progress: 40, Timeline: "4 months", Status: StatusInProgress, College: "IIT Delhi",
	},
	{
		ID: "campus-event", Title: "Campus Event Management App",
		Description: "Complete event management solution for colleges with booking and payment integration",
		Leader:      "Arjun Patel", Members: 5, MaxMembers: 8,
		Skills:   []string{"React", "Node.js", "PostgreSQL", "Stripe"},
		Progress: 25, Timeline: "5 months", Status: StatusStarting, College: "BITS Pilani",
	},
	{
		ID: "blockchain-voting", Title: "Blockchain Voting System",
		Description: "Secure and transparent voting system using blockchain technology for student elections",
		Leader:      "Sneha Reddy", Members: 2, MaxMembers: 4,
		Skills:   []string{"Solidity", "Web3", "React", "Ethereum"},
		Progress: 80, Timeline: "2 months", Status: StatusNearCompletion, College: "VIT Vellore",
	},
	{
		ID: "mental-health", Title: "Student Mental Health Platform",
		Description: "Anonymous peer support and counseling platform for college students",
		Leader:      "Maya Patel", Members: 3, MaxMembers: 6,
		Skills:   []string{"React", "Node.js", "Socket.io", "MongoDB"},
		Progress: 15, Timeline: "6 months", Status: StatusPlanning, College: "Manipal University",
	},
}

var collaborations = []Collaboration{
	{
		ID: "iot-parking", Title: "IoT Smart Parking System",
		Description: "Building an intelligent parking solution for campus using IoT sensors",
		Leader:      "Rahul Sharma", Members: 4, Skills: []string{"IoT", "React", "Node.js"}, Progress: 65,
	},
	{
		ID: "ai-resume", Title: "AI Resume Screener",
		Description: "ML-powered tool to help students optimize their resumes",
		Leader:      "Priya Singh", Members: 3, Skills: []string{"Python", "ML", "React"}, Progress: 40,
	},
	{
		ID: "campus-app", Title: "Campus Event Management",
		Description: "Mobile app for managing all campus events and notifications",
		Leader:      "Alex Kumar", Members: 5, Skills: []string{"React Native", "Firebase"}, Progress: 25,
	},
	{
		ID: "blockchain-vote", Title: "Blockchain Voting System",
		Description: "Secure voting system for student elections using blockchain",
		Leader:      "Maya Patel", Members: 3, Skills: []string{"Solidity", "Web3", "React"}, Progress: 80,
	},
}

// ListProjects returns the projects matching f in directory order.
func ListProjects(f ProjectFilter) []Project {
	out := make([]Project, 0, len(projects))
	for _, p := range projects {
		if !containsFold(p.Title, f.Search) {
			continue
		}
		if f.Skill != "" && !slices.ContainsFunc(p.Skills, func(s string) bool { return containsFold(s, f.Skill) }) {
			continue
		}
		p.Skills = cloneStrings(p.Skills)
		out = append(out, p)
	}
	return out
}

// FindProject returns the project with the given id.
func FindProject(id string) (Project, bool) {
	for _, p := range projects {
		if p.ID == id {
			p.Skills = cloneStrings(p.Skills)
			return p, true
		}
	}
	return Project{}, false
}

// ProjectCount is the size of the whole project board.
func ProjectCount() int {
	return len(projects)
}

// Collaborations returns the collaborations shown on every college page.
func Collaborations() []Collaboration {
	out := make([]Collaboration, len(collaborations))
	for i, c := range collaborations {
		c.Skills = cloneStrings(c.Skills)
		out[i] = c
	}
	return out
}
