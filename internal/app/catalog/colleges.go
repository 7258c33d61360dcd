package catalog

import (
	"cmp"
	"slices"
)

// College is a community that members can join.
type College struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	Students    string  `json:"students"`
	Stream      string  `json:"stream"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Established string  `json:"established"`
	Rating      float64 `json:"rating"`
	Members     int     `json:"members"`
}

// CollegeStats is the headline block of a college page.
type CollegeStats struct {
	Students string `json:"students"`
	Faculty  string `json:"faculty,omitempty"`
	Programs string `json:"programs,omitempty"`
	Ranking  string `json:"ranking,omitempty"`
}

// Club is a society within a college community.
type Club struct {
	Name    string `json:"name"`
	Members int    `json:"members"`
	Icon    string `json:"icon"`
}

// CollegeDetail is everything shown on a single college page.
type CollegeDetail struct {
	College
	About          string          `json:"about"`
	Stats          CollegeStats    `json:"stats"`
	Posts          []Post          `json:"posts"`
	Clubs          []Club          `json:"clubs"`
	ChatRooms      []ChatRoom      `json:"chatRooms"`
	Collaborations []Collaboration `json:"collaborations"`
}

// CollegeFilter narrows ListColleges. Empty fields match everything.
type CollegeFilter struct {
	Search   string
	Location string
	Stream   string
	Sort     string
}

var colleges = []College{
	{
		ID: "gla", Name: "GLA University", Location: "Mathura, UP", Students: "12,000+",
		Stream: "Engineering, Management", Image: "🏛️",
		Description: "Premier technical university with strong industry connections",
		Established: "2010", Rating: 4.2, Members: 2400,
	},
	{
		ID: "iit-delhi", Name: "IIT Delhi", Location: "New Delhi", Students: "8,000+",
		Stream: "Engineering, Science", Image: "🏛️",
		Description: "India's premier technical institute",
		Established: "1961", Rating: 4.8, Members: 3200,
	},
	{
		ID: "du", Name: "Delhi University", Location: "New Delhi", Students: "300,000+",
		Stream: "Arts, Science, Commerce", Image: "🎓",
		Description: "One of India's largest and most prestigious universities",
		Established: "1922", Rating: 4.3, Members: 15600,
	},
	{
		ID: "bits", Name: "BITS Pilani", Location: "Pilani, Rajasthan", Students: "15,000+",
		Stream: "Engineering, Science", Image: "🏛️",
		Description: "Leading private technical institute",
		Established: "1964", Rating: 4.6, Members: 4800,
	},
	{
		ID: "vit", Name: "VIT Vellore", Location: "Vellore, TN", Students: "20,000+",
		Stream: "Engineering, Management", Image: "🎓",
		Description: "Top private university with global outlook",
		Established: "1984", Rating: 4.4, Members: 7200,
	},
	{
		ID: "manipal", Name: "Manipal University", Location: "Manipal, Karnataka", Students: "28,000+",
		Stream: "Engineering, Medicine, Management", Image: "🏥",
		Description: "Comprehensive university with medical and engineering excellence",
		Established: "1993", Rating: 4.3, Members: 8900,
	},
	{
		ID: "srm", Name: "SRM University", Location: "Chennai, TN", Students: "45,000+",
		Stream: "Engineering, Medicine, Management", Image: "🎓",
		Description: "Large private university with diverse programs",
		Established: "1985", Rating: 4.1, Members: 12400,
	},
	{
		ID: "amity", Name: "Amity University", Location: "Noida, UP", Students: "35,000+",
		Stream: "Engineering, Management, Law", Image: "🏛️",
		Description: "Multi-disciplinary private university",
		Established: "2005", Rating: 3.9, Members: 9800,
	},
}

type collegeProfile struct {
	about string
	stats CollegeStats
}

var collegeProfiles = map[string]collegeProfile{
	"gla": {
		about: "Premier technical university with strong industry connections and excellent placement record.",
		stats: CollegeStats{Students: "12,000+", Faculty: "800+", Programs: "50+", Ranking: "#15"},
	},
	"iit-delhi": {
		about: "India's premier technical institute known for excellence in engineering and research.",
		stats: CollegeStats{Students: "8,000+", Faculty: "600+", Programs: "30+", Ranking: "#1"},
	},
}

var clubs = []Club{
	{Name: "Coding Club", Members: 450, Icon: "💻"},
	{Name: "Design Society", Members: 280, Icon: "🎨"},
	{Name: "Robotics Club", Members: 320, Icon: "🤖"},
	{Name: "Photography Club", Members: 190, Icon: "📸"},
	{Name: "Music Society", Members: 220, Icon: "🎵"},
}

// ListColleges returns the colleges matching f, sorted by f.Sort.
// Unknown sort keys sort by name.
func ListColleges(f CollegeFilter) []College {
	out := make([]College, 0, len(colleges))
	for _, c := range colleges {
		if containsFold(c.Name, f.Search) &&
			containsFold(c.Location, f.Location) &&
			containsFold(c.Stream, f.Stream) {
			out = append(out, c)
		}
	}

	switch f.Sort {
	case SortRating:
		slices.SortStableFunc(out, func(a, b College) int { return cmp.Compare(b.Rating, a.Rating) })
	case SortMembers:
		slices.SortStableFunc(out, func(a, b College) int { return cmp.Compare(b.Members, a.Members) })
	default:
		byName := nameComparer()
		slices.SortStableFunc(out, func(a, b College) int { return byName(a.Name, b.Name) })
	}

	return out
}

// CollegeCount is the size of the whole directory.
func CollegeCount() int {
	return len(colleges)
}

// FindCollege returns the college with the given id.
func FindCollege(id string) (College, error) {
	for _, c := range colleges {
		if c.ID == id {
			return c, nil
		}
	}
	return College{}, ErrCollegeNotFound
}

// Detail returns the full page for a college.
// Colleges without a dedicated profile show their directory description and
// student count only.
func Detail(id string) (CollegeDetail, error) {
	c, err := FindCollege(id)
	if err != nil {
		return CollegeDetail{}, err
	}

	d := CollegeDetail{
		College:        c,
		About:          c.Description,
		Stats:          CollegeStats{Students: c.Students},
		Posts:          Posts(),
		Clubs:          slices.Clone(clubs),
		ChatRooms:      CommunityRooms(),
		Collaborations: Collaborations(),
	}
	if p, ok := collegeProfiles[id]; ok {
		d.About = p.about
		d.Stats = p.stats
	}

	return d, nil
}
