/*
Package page resolves a page identifier and its parameters into the view model
a client renders. It is the server-side counterpart of a single-page router:
one switch over a closed set of pages, with landing as the fallback.
*/
package page

import (
	"errors"
	"fmt"
	"net/url"

	"ufresher/internal/app/catalog"
	"ufresher/internal/app/user"
)

// Page identifies one screen of the application.
type Page string

const (
	Landing          Page = "landing"
	FresherDashboard Page = "fresher-dashboard"
	MentorDashboard  Page = "mentor-dashboard"
	Colleges         Page = "colleges"
	CollegeDetail    Page = "college-detail"
	Mentors          Page = "mentors"
	MentorProfile    Page = "mentor-profile"
	About            Page = "about"
	Projects         Page = "projects"
)

// All lists every page in navigation order.
var All = []Page{Landing, FresherDashboard, MentorDashboard, Colleges, CollegeDetail, Mentors, MentorProfile, About, Projects}

var (
	// ErrLoginRequired is returned when a dashboard is requested without a session.
	ErrLoginRequired = errors.New("login required")
	// ErrWrongRole is returned when a member opens the other role's dashboard.
	ErrWrongRole = errors.New("dashboard belongs to another role")
	// ErrBadParam wraps an unparseable query parameter.
	ErrBadParam = errors.New("invalid page parameter")
)

// Parse maps s to a known page. Unknown identifiers resolve to Landing and ok is false.
func Parse(s string) (p Page, ok bool) {
	for _, known := range All {
		if string(known) == s {
			return known, true
		}
	}
	return Landing, false
}

// View is the model of a rendered page.
type View struct {
	Page Page `json:"page"`

	// Requested holds the original identifier when it fell back to Landing.
	Requested string `json:"requested,omitempty"`

	Title string     `json:"title"`
	User  *user.User `json:"user,omitempty"`
	Data  any        `json:"data"`
}

// Detail pages with a missing or unknown id show these records instead.
const (
	FallbackCollegeID = "gla"
	FallbackMentorID  = "sarah-wilson"
)

// Render builds the view for p. params carries the page arguments
// (collegeId, mentorId) and the list filters; u is the current session or nil.
func Render(p Page, params url.Values, u *user.User) (View, error) {
	v := View{Page: p, User: u}

	switch p {
	case FresherDashboard, MentorDashboard:
		return renderDashboard(v, u)

	case Colleges:
		v.Title = "College Communities"
		list := catalog.ListColleges(CollegeQuery(params))
		v.Data = CollegesData{Colleges: list, Total: catalog.CollegeCount(), Joined: joined(u, communities)}

	case CollegeDetail:
		d, err := catalog.Detail(params.Get("collegeId"))
		if errors.Is(err, catalog.ErrCollegeNotFound) {
			d, err = catalog.Detail(FallbackCollegeID)
		}
		if err != nil {
			return View{}, err
		}
		v.Title = d.Name
		v.Data = CollegeDetailData{CollegeDetail: d, IsMember: u != nil && u.HasJoinedCommunity(d.ID)}

	case Mentors:
		f, err := MentorQuery(params)
		if err != nil {
			return View{}, err
		}
		v.Title = "Find Your Mentor"
		list := catalog.ListMentors(f)
		v.Data = MentorsData{Mentors: list, Total: catalog.MentorCount()}

	case MentorProfile:
		prof, err := catalog.Profile(params.Get("mentorId"))
		if errors.Is(err, catalog.ErrMentorNotFound) {
			prof, err = catalog.Profile(FallbackMentorID)
		}
		if err != nil {
			return View{}, err
		}
		v.Title = prof.Name
		v.Data = prof

	case About:
		v.Title = "About U Fresher"
		v.Data = catalog.About()

	case Projects:
		v.Title = "Project Hub"
		list := catalog.ListProjects(ProjectQuery(params))
		v.Data = ProjectsData{Projects: list, Total: catalog.ProjectCount(), Joined: joined(u, projects)}

	default:
		if p != Landing {
			v.Requested = string(p)
			v.Page = Landing
		}
		v.Title = "U Fresher"
		v.Data = LandingData{LandingContent: catalog.Landing(), DemoAccounts: user.DemoHints()}
	}

	return v, nil
}

func renderDashboard(v View, u *user.User) (View, error) {
	if u == nil {
		return View{}, ErrLoginRequired
	}
	if Page(u.Role.DashboardPage()) != v.Page {
		return View{}, ErrWrongRole
	}

	if v.Page == MentorDashboard {
		v.Title = fmt.Sprintf("Good morning, %s!", u.Name)
		v.Data = catalog.MentorDashboard()
		return v, nil
	}

	v.Title = fmt.Sprintf("Welcome back, %s!", u.Name)
	data := FresherData{FresherBoard: catalog.Fresher(), Communities: []catalog.College{}, Projects: []catalog.Project{}}
	for _, id := range u.JoinedCommunities {
		if c, err := catalog.FindCollege(id); err == nil {
			data.Communities = append(data.Communities, c)
		}
	}
	for _, id := range u.Projects {
		if p, ok := catalog.FindProject(id); ok {
			data.Projects = append(data.Projects, p)
		}
	}
	v.Data = data
	return v, nil
}

type membership int

const (
	communities membership = iota
	projects
)

func joined(u *user.User, kind membership) []string {
	if u == nil {
		return []string{}
	}
	if kind == communities {
		return u.JoinedCommunities
	}
	return u.Projects
}
