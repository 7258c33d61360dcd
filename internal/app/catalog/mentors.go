package catalog

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Mentor availability values.
const (
	Available    = "Available"
	Busy         = "Busy"
	Limited      = "Limited"
	WeekendsOnly = "Weekends Only"
)

// Mentor is a directory entry for an industry mentor.
type Mentor struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Avatar          string   `json:"avatar"`
	Title           string   `json:"title"`
	College         string   `json:"college"`
	ExperienceYears int      `json:"experienceYears"`
	Experience      string   `json:"experience"`
	Rating          float64  `json:"rating"`
	Reviews         int      `json:"reviews"`
	HourlyRate      int      `json:"hourlyRate"`
	Price           string   `json:"price"`
	Availability    string   `json:"availability"`
	Skills          []string `json:"skills"`
	Bio             string   `json:"bio"`
	Sessions        int      `json:"sessions"`
	Students        int      `json:"students"`
}

func (m Mentor) clone() Mentor {
	m.Skills = cloneStrings(m.Skills)
	return m
}

// Review is a student's rating of a mentoring session.
type Review struct {
	ID      int    `json:"id"`
	Student string `json:"student"`
	Avatar  string `json:"avatar"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
	Course  string `json:"course"`
}

// MentorProfile is the full page for one mentor, including booking options.
type MentorProfile struct {
	Mentor
	Company         string   `json:"company,omitempty"`
	ResponseTime    string   `json:"responseTime,omitempty"`
	Languages       []string `json:"languages"`
	Timezone        string   `json:"timezone,omitempty"`
	Education       []string `json:"education"`
	Achievements    []string `json:"achievements"`
	Specializations []string `json:"specializations"`
	ReviewList      []Review `json:"reviewList"`
	TimeSlots       []string `json:"timeSlots"`
	AvailableDates  []string `json:"availableDates"`
}

// MentorFilter narrows ListMentors. Zero values match everything.
type MentorFilter struct {
	Search        string
	Skill         string
	College       string
	MinExperience int
	Availability  string
	MinRating     float64
	Sort          string
}

// ParseExperienceBucket reads buckets such as "5+" or "10+" as a minimum
// number of years. An empty bucket means no minimum.
func ParseExperienceBucket(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	years, err := strconv.Atoi(strings.TrimSuffix(s, "+"))
	if err != nil || years < 0 {
		return 0, fmt.Errorf("invalid experience bucket %q", s)
	}
	return years, nil
}

var pricePrinter = message.NewPrinter(language.English)

func newMentor(m Mentor) Mentor {
	m.Experience = fmt.Sprintf("%d years", m.ExperienceYears)
	m.Price = pricePrinter.Sprintf("₹%d/hour", m.HourlyRate)
	return m
}

var mentors = []Mentor{
	newMentor(Mentor{
		ID: "sarah-wilson", Name: "Dr. Sarah Wilson", Avatar: "👩‍🏫",
		Title: "Senior AI Engineer at Google", College: "IIT Delhi",
		ExperienceYears: 8, Rating: 4.9, Reviews: 156, HourlyRate: 2500, Availability: Available,
		Skills:   []string{"AI/ML", "Python", "TensorFlow", "Data Science"},
		Bio:      "Former Google Research scientist with expertise in machine learning and AI. Passionate about mentoring the next generation of AI engineers.",
		Sessions: 340, Students: 89,
	}),
	newMentor(Mentor{
		ID: "rajesh-kumar", Name: "Rajesh Kumar", Avatar: "👨‍💻",
		Title: "Full Stack Architect at Microsoft", College: "BITS Pilani",
		ExperienceYears: 12, Rating: 4.8, Reviews: 203, HourlyRate: 3000, Availability: Busy,
		Skills:   []string{"React", "Node.js", "Azure", "System Design"},
		Bio:      "Senior full-stack developer with extensive experience in building scalable web applications. Love helping students transition to industry.",
		Sessions: 520, Students: 142,
	}),
	newMentor(Mentor{
		ID: "priya-sharma", Name: "Priya Sharma", Avatar: "👩‍💼",
		Title: "Data Scientist at Netflix", College: "GLA University",
		ExperienceYears: 6, Rating: 4.7, Reviews: 98, HourlyRate: 2000, Availability: Available,
		Skills:   []string{"Data Science", "Python", "SQL", "Statistics"},
		Bio:      "Data scientist passionate about extracting insights from data. Specialize in recommendation systems and user behavior analysis.",
		Sessions: 180, Students: 67,
	}),
	newMentor(Mentor{
		ID: "arjun-patel", Name: "Arjun Patel", Avatar: "👨‍🎨",
		Title: "Lead UX Designer at Figma", College: "VIT Vellore",
		ExperienceYears: 7, Rating: 4.9, Reviews: 124, HourlyRate: 2200, Availability: Available,
		Skills:   []string{"UI/UX", "Figma", "Design Systems", "User Research"},
		Bio:      "Design leader focused on creating delightful user experiences. Help students build strong design portfolios and land dream jobs.",
		Sessions: 290, Students: 78,
	}),
	newMentor(Mentor{
		ID: "sneha-reddy", Name: "Sneha Reddy", Avatar: "👩‍💻",
		Title: "Blockchain Developer at Ethereum Foundation", College: "Manipal University",
		ExperienceYears: 5, Rating: 4.6, Reviews: 76, HourlyRate: 2800, Availability: Limited,
		Skills:   []string{"Blockchain", "Solidity", "Web3", "Smart Contracts"},
		Bio:      "Blockchain expert working on the future of decentralized applications. Passionate about teaching Web3 development to newcomers.",
		Sessions: 150, Students: 45,
	}),
	newMentor(Mentor{
		ID: "karthik-nair", Name: "Karthik Nair", Avatar: "👨‍🔧",
		Title: "DevOps Engineer at AWS", College: "SRM University",
		ExperienceYears: 9, Rating: 4.8, Reviews: 145, HourlyRate: 2600, Availability: Available,
		Skills:   []string{"DevOps", "AWS", "Kubernetes", "CI/CD"},
		Bio:      "Cloud infrastructure expert helping companies scale their applications. Love teaching students modern DevOps practices.",
		Sessions: 380, Students: 98,
	}),
	newMentor(Mentor{
		ID: "maya-singh", Name: "Maya Singh", Avatar: "👩‍💼",
		Title: "Product Manager at Stripe", College: "Amity University",
		ExperienceYears: 10, Rating: 4.9, Reviews: 187, HourlyRate: 3500, Availability: WeekendsOnly,
		Skills:   []string{"Product Management", "Strategy", "Analytics", "Leadership"},
		Bio:      "Product leader with experience in fintech and payments. Help students transition from technical roles to product management.",
		Sessions: 450, Students: 123,
	}),
	newMentor(Mentor{
		ID: "rohit-gupta", Name: "Rohit Gupta", Avatar: "👨‍💻",
		Title: "Mobile App Developer at Uber", College: "DU",
		ExperienceYears: 6, Rating: 4.7, Reviews: 112, HourlyRate: 2100, Availability: Available,
		Skills:   []string{"React Native", "iOS", "Android", "Flutter"},
		Bio:      "Mobile development expert with apps used by millions. Passionate about teaching cross-platform development and app optimization.",
		Sessions: 220, Students: 89,
	}),
}

// mentorExtras holds the long-form profile sections. Mentors without an
// entry show their directory card plus booking options.
var mentorExtras = map[string]MentorProfile{
	"sarah-wilson": {
		Company:      "Google",
		ResponseTime: "< 2 hours",
		Languages:    []string{"English", "Hindi"},
		Timezone:     "IST (GMT +5:30)",
		Education: []string{
			"PhD in Computer Science - Stanford University",
			"MS in AI - Carnegie Mellon",
		},
		Achievements: []string{
			"Google AI Excellence Award 2023",
			"Top 1% Mentor on U Fresher",
			"Published researcher with 1000+ citations",
		},
		Specializations: []string{
			"Machine Learning Interview Prep",
			"Research Paper Writing",
			"Career Transition to AI",
			"System Design for ML",
		},
		ReviewList: []Review{
			{
				ID: 1, Student: "Alex Kumar", Avatar: "👨‍🎓", Rating: 5,
				Comment: "Dr. Wilson helped me land my dream job at Microsoft! Her ML interview prep sessions were incredibly valuable. Highly recommend!",
				Date:    "2 weeks ago", Course: "ML Interview Preparation",
			},
			{
				ID: 2, Student: "Priya Singh", Avatar: "👩‍💻", Rating: 5,
				Comment: "Amazing mentor! She explained complex AI concepts in a very simple way. My understanding of deep learning improved significantly.",
				Date:    "1 month ago", Course: "Deep Learning Fundamentals",
			},
			{
				ID: 3, Student: "Rahul Sharma", Avatar: "👨‍💻", Rating: 5,
				Comment: "Great guidance on my research paper. Dr. Wilson helped me structure my thoughts and improve the quality significantly.",
				Date:    "2 months ago", Course: "Research Paper Review",
			},
			{
				ID: 4, Student: "Maya Patel", Avatar: "👩‍💼", Rating: 4,
				Comment: "Very knowledgeable and patient. Helped me transition from web development to AI/ML. The career guidance was spot on.",
				Date:    "3 months ago", Course: "Career Transition Guidance",
			},
		},
	},
}

// mentorSkillsExtra lists skills shown on the profile page only.
var mentorSkillsExtra = map[string][]string{
	"sarah-wilson": {"Deep Learning", "Computer Vision"},
}

var (
	bookingTimeSlots = []string{"9:00 AM", "10:00 AM", "11:00 AM", "2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM"}
	bookingDates     = []string{"Today", "Tomorrow", "Jan 15", "Jan 16", "Jan 17", "Jan 18", "Jan 19"}
)

// ListMentors returns the mentors matching f, sorted by f.Sort.
// Unknown sort keys sort by name.
func ListMentors(f MentorFilter) []Mentor {
	out := make([]Mentor, 0, len(mentors))
	for _, m := range mentors {
		if !containsFold(m.Name, f.Search) || !containsFold(m.College, f.College) {
			continue
		}
		if f.Skill != "" && !slices.ContainsFunc(m.Skills, func(s string) bool { return containsFold(s, f.Skill) }) {
			continue
		}
		if m.ExperienceYears < f.MinExperience {
			continue
		}
		if f.Availability != "" && m.Availability != f.Availability {
			continue
		}
		if m.Rating < f.MinRating {
			continue
		}
		out = append(out, m.clone())
	}

	switch f.Sort {
	case SortRating:
		slices.SortStableFunc(out, func(a, b Mentor) int { return cmp.Compare(b.Rating, a.Rating) })
	case SortExperience:
		slices.SortStableFunc(out, func(a, b Mentor) int { return cmp.Compare(b.ExperienceYears, a.ExperienceYears) })
	case SortPrice:
		slices.SortStableFunc(out, func(a, b Mentor) int { return cmp.Compare(a.HourlyRate, b.HourlyRate) })
	default:
		byName := nameComparer()
		slices.SortStableFunc(out, func(a, b Mentor) int { return byName(a.Name, b.Name) })
	}

	return out
}

// MentorCount is the size of the whole directory.
func MentorCount() int {
	return len(mentors)
}

// FindMentor returns the mentor with the given id.
func FindMentor(id string) (Mentor, error) {
	for _, m := range mentors {
		if m.ID == id {
			return m.clone(), nil
		}
	}
	return Mentor{}, ErrMentorNotFound
}

// Profile returns the full profile page for a mentor.
func Profile(id string) (MentorProfile, error) {
	m, err := FindMentor(id)
	if err != nil {
		return MentorProfile{}, err
	}

	extra := mentorExtras[id]
	p := MentorProfile{
		Mentor:          m,
		Company:         extra.Company,
		ResponseTime:    extra.ResponseTime,
		Languages:       cloneStrings(extra.Languages),
		Timezone:        extra.Timezone,
		Education:       cloneStrings(extra.Education),
		Achievements:    cloneStrings(extra.Achievements),
		Specializations: cloneStrings(extra.Specializations),
		ReviewList:      slices.Clone(extra.ReviewList),
		TimeSlots:       slices.Clone(bookingTimeSlots),
		AvailableDates:  slices.Clone(bookingDates),
	}
	if p.ReviewList == nil {
		p.ReviewList = []Review{}
	}
	p.Skills = append(p.Skills, mentorSkillsExtra[id]...)

	return p, nil
}

// IsBookable reports whether date and timeSlot are among the offered booking options.
func IsBookable(date, timeSlot string) bool {
	return slices.Contains(bookingDates, date) && slices.Contains(bookingTimeSlots, timeSlot)
}
