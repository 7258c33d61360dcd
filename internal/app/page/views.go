package page

import (
	"ufresher/internal/app/catalog"
	"ufresher/internal/app/user"
)

type LandingData struct {
	catalog.LandingContent
	DemoAccounts []user.DemoHint `json:"demoAccounts"`
}

type FresherData struct {
	catalog.FresherBoard
	Communities []catalog.College `json:"communities"`
	Projects    []catalog.Project `json:"projects"`
}

type CollegesData struct {
	Colleges []catalog.College `json:"colleges"`
	Total    int               `json:"total"`
	Joined   []string          `json:"joined"`
}

type CollegeDetailData struct {
	catalog.CollegeDetail
	IsMember bool `json:"isMember"`
}

type MentorsData struct {
	Mentors []catalog.Mentor `json:"mentors"`
	Total   int              `json:"total"`
}

type ProjectsData struct {
	Projects []catalog.Project `json:"projects"`
	Total    int               `json:"total"`
	Joined   []string          `json:"joined"`
}
