package catalog

import "slices"

// Stat is a labelled figure on a dashboard or landing page.
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Trend string `json:"trend,omitempty"`
}

// QuickAction links a dashboard card to another page.
type QuickAction struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Page        string `json:"page"`
}

// Activity is an entry in a recent-activity feed.
type Activity struct {
	Type string `json:"type"`
	Text string `json:"text"`
	Time string `json:"time"`
}

// StudentRequest is a pending mentoring request.
type StudentRequest struct {
	Name    string `json:"name"`
	College string `json:"college"`
	Subject string `json:"subject"`
	Time    string `json:"time"`
	Avatar  string `json:"avatar"`
}

// Mentee is a student a mentor is working with.
type Mentee struct {
	Name        string `json:"name"`
	Progress    int    `json:"progress"`
	NextSession string `json:"nextSession"`
	Avatar      string `json:"avatar"`
}

// Session is a scheduled mentoring session.
type Session struct {
	Time     string `json:"time"`
	Student  string `json:"student"`
	Topic    string `json:"topic"`
	Duration string `json:"duration"`
}

// Feature is a selling point on the about page.
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TeamMember is a person on the about page.
type TeamMember struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Avatar      string `json:"avatar"`
	Description string `json:"description"`
}

// FresherBoard holds the widgets of the fresher dashboard.
type FresherBoard struct {
	QuickStats     []Stat        `json:"quickStats"`
	QuickActions   []QuickAction `json:"quickActions"`
	RecentActivity []Activity    `json:"recentActivity"`
}

// MentorBoard holds the widgets of the mentor dashboard.
type MentorBoard struct {
	Stats            []Stat           `json:"stats"`
	TodaySessions    int              `json:"todaySessions"`
	StudentRequests  []StudentRequest `json:"studentRequests"`
	MyStudents       []Mentee         `json:"myStudents"`
	UpcomingSessions []Session        `json:"upcomingSessions"`
}

// LandingContent holds the public home page widgets.
type LandingContent struct {
	Tagline string   `json:"tagline"`
	Stats   []Stat   `json:"stats"`
	Updates []string `json:"updates"`
}

// AboutContent holds the about page sections.
type AboutContent struct {
	Features []Feature    `json:"features"`
	Stats    []Stat       `json:"stats"`
	Team     []TeamMember `json:"team"`
}

var fresherBoard = FresherBoard{
	QuickStats: []Stat{
		{Label: "Messages", Value: "12"},
		{Label: "Connections", Value: "34"},
		{Label: "Projects", Value: "3"},
		{Label: "Communities", Value: "2"},
	},
	QuickActions: []QuickAction{
		{Title: "Discover Communities", Description: "Join college communities and connect with peers", Page: "colleges"},
		{Title: "Find Mentors", Description: "Connect with experienced professionals", Page: "mentors"},
		{Title: "Join Projects", Description: "Collaborate on exciting projects", Page: "projects"},
	},
	RecentActivity: []Activity{
		{Type: "message", Text: "New message from mentor Dr. Sarah Wilson", Time: "2 hours ago"},
		{Type: "project", Text: "You joined the AI Resume Screener project", Time: "1 day ago"},
		{Type: "community", Text: "New post in GLA University community", Time: "2 days ago"},
		{Type: "achievement", Text: "You completed the React basics course", Time: "3 days ago"},
	},
}

var mentorBoard = MentorBoard{
	Stats: []Stat{
		{Label: "Active Students", Value: "24", Trend: "+3 this week"},
		{Label: "Sessions This Month", Value: "18", Trend: "+2 from last month"},
		{Label: "Earnings", Value: "₹45,000", Trend: "+12% from last month"},
		{Label: "Rating", Value: "4.9", Trend: "Based on 156 reviews"},
	},
	StudentRequests: []StudentRequest{
		{Name: "Rahul Sharma", College: "IIT Delhi", Subject: "Career Guidance in AI/ML", Time: "2 hours ago", Avatar: "👨‍💻"},
		{Name: "Priya Singh", College: "VIT Vellore", Subject: "Resume Review Request", Time: "4 hours ago", Avatar: "👩‍💼"},
		{Name: "Arjun Patel", College: "BITS Pilani", Subject: "Mock Interview Session", Time: "6 hours ago", Avatar: "👨‍🎓"},
		{Name: "Sneha Reddy", College: "GLA University", Subject: "Project Guidance - React App", Time: "1 day ago", Avatar: "👩‍💻"},
		{Name: "Karthik Kumar", College: "Manipal University", Subject: "Internship Preparation", Time: "1 day ago", Avatar: "👨‍💼"},
	},
	MyStudents: []Mentee{
		{Name: "Alex Kumar", Progress: 85, NextSession: "Tomorrow 3:00 PM", Avatar: "👨‍🎓"},
		{Name: "Maya Patel", Progress: 72, NextSession: "Friday 2:00 PM", Avatar: "👩‍💻"},
		{Name: "Rohan Singh", Progress: 91, NextSession: "Monday 4:00 PM", Avatar: "👨‍💻"},
		{Name: "Kavya Nair", Progress: 68, NextSession: "Tuesday 1:00 PM", Avatar: "👩‍🎓"},
	},
	UpcomingSessions: []Session{
		{Time: "3:00 PM", Student: "Alex Kumar", Topic: "React Advanced Concepts", Duration: "1 hour"},
		{Time: "5:00 PM", Student: "Maya Patel", Topic: "Career Planning Discussion", Duration: "45 mins"},
		{Time: "7:00 PM", Student: "Rohan Singh", Topic: "Code Review Session", Duration: "1 hour"},
	},
}

var landing = LandingContent{
	Tagline: "Connect. Learn. Grow. Together.",
	Stats: []Stat{
		{Label: "Students", Value: "10000+"},
		{Label: "Mentors", Value: "500+"},
		{Label: "Colleges", Value: "50+"},
	},
	Updates: []string{
		"🎉 New hackathon organized by IIT Delhi - Register now!",
		"💼 Amazon is hiring interns - Check placement cell",
		"📚 Free AI/ML workshop this weekend at VIT",
		"🏆 GLA student wins national coding competition",
		"🔬 Research opportunity available in blockchain",
		"📱 New mobile app development mentorship program",
		"🌟 Career guidance session with Google engineer",
		"💡 Startup pitch competition - Win ₹50,000!",
	},
}

var about = AboutContent{
	Features: []Feature{
		{Title: "Smart Networking", Description: "Connect with peers and mentors from top colleges across India. Build meaningful relationships that last beyond graduation."},
		{Title: "Expert Mentorship", Description: "Get guidance from industry professionals and alumni. Book 1-on-1 sessions and accelerate your career growth."},
		{Title: "Skill Development", Description: "Join collaborative projects, participate in hackathons, and enhance your portfolio with real-world experience."},
		{Title: "Safe Environment", Description: "We maintain a safe and inclusive platform where students can learn, grow, and express themselves freely."},
		{Title: "Community First", Description: "Our focus is on building strong communities that support each other through academic and professional journeys."},
		{Title: "Global Opportunities", Description: "Access international internships, exchange programs, and global networking opportunities."},
	},
	Stats: []Stat{
		{Label: "Active Students", Value: "10,000+"},
		{Label: "Expert Mentors", Value: "500+"},
		{Label: "College Communities", Value: "50+"},
		{Label: "Success Stories", Value: "1,000+"},
	},
	Team: []TeamMember{
		{Name: "Rajesh Kumar", Role: "Founder & CEO", Avatar: "👨‍💼", Description: "Former Google engineer passionate about education"},
		{Name: "Priya Sharma", Role: "Head of Product", Avatar: "👩‍💻", Description: "Ex-Microsoft PM with 8+ years experience"},
		{Name: "Arjun Patel", Role: "Head of Engineering", Avatar: "👨‍💻", Description: "Full-stack expert and startup veteran"},
		{Name: "Sneha Reddy", Role: "Head of Community", Avatar: "👩‍🎓", Description: "Education advocate and community builder"},
	},
}

func Fresher() FresherBoard {
	return FresherBoard{
		QuickStats:     slices.Clone(fresherBoard.QuickStats),
		QuickActions:   slices.Clone(fresherBoard.QuickActions),
		RecentActivity: slices.Clone(fresherBoard.RecentActivity),
	}
}

func MentorDashboard() MentorBoard {
	return MentorBoard{
		Stats:            slices.Clone(mentorBoard.Stats),
		TodaySessions:    len(mentorBoard.UpcomingSessions),
		StudentRequests:  slices.Clone(mentorBoard.StudentRequests),
		MyStudents:       slices.Clone(mentorBoard.MyStudents),
		UpcomingSessions: slices.Clone(mentorBoard.UpcomingSessions),
	}
}

func Landing() LandingContent {
	return LandingContent{
		Tagline: landing.Tagline,
		Stats:   slices.Clone(landing.Stats),
		Updates: slices.Clone(landing.Updates),
	}
}

func About() AboutContent {
	return AboutContent{
		Features: slices.Clone(about.Features),
		Stats:    slices.Clone(about.Stats),
		Team:     slices.Clone(about.Team),
	}
}
