/*
Package handler provides the read-only catalog endpoints: colleges, mentors and
projects, filtered and sorted through the same query parameters the pages use.
*/
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"ufresher/internal/app/catalog"
	"ufresher/internal/app/page"
	"ufresher/internal/pkg/resp"
)

// HandleListColleges answers the filtered college list.
// Query: search, location, stream, sort (name|rating|members).
func HandleListColleges(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, customErr := deps.currentUser(r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		joined := []string{}
		if u != nil {
			joined = u.JoinedCommunities
		}

		resp.RespondSuccess(w, r, page.CollegesData{
			Colleges: catalog.ListColleges(page.CollegeQuery(r.URL.Query())),
			Total:    catalog.CollegeCount(),
			Joined:   joined,
		})
	}
}

// HandleGetCollege answers the detail of one college.
func HandleGetCollege(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		detail, err := catalog.Detail(chi.URLParam(r, "id"))
		if err != nil {
			resp.RespondError(w, r, toCustomError(err))
			return
		}

		u, customErr := deps.currentUser(r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, page.CollegeDetailData{
			CollegeDetail: detail,
			IsMember:      u != nil && u.HasJoinedCommunity(detail.ID),
		})
	}
}

// HandleListMentors answers the filtered mentor list.
// Query: search, skill, college, experience (5+|10+), availability, rating,
// sort (name|rating|experience|price).
func HandleListMentors(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := page.MentorQuery(r.URL.Query())
		if err != nil {
			resp.RespondError(w, r, toCustomError(err))
			return
		}

		resp.RespondSuccess(w, r, page.MentorsData{
			Mentors: catalog.ListMentors(filter),
			Total:   catalog.MentorCount(),
		})
	}
}

// HandleGetMentor answers a mentor profile with reviews and bookable slots.
func HandleGetMentor(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := catalog.Profile(chi.URLParam(r, "id"))
		if err != nil {
			resp.RespondError(w, r, toCustomError(err))
			return
		}
		resp.RespondSuccess(w, r, profile)
	}
}

// HandleListProjects answers the filtered project list. Query: search, skill.
func HandleListProjects(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, customErr := deps.currentUser(r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		joined := []string{}
		if u != nil {
			joined = u.Projects
		}

		resp.RespondSuccess(w, r, page.ProjectsData{
			Projects: catalog.ListProjects(page.ProjectQuery(r.URL.Query())),
			Total:    catalog.ProjectCount(),
			Joined:   joined,
		})
	}
}
