/*
Package catalog holds the platform's static directory: colleges, mentors,
projects, community boards, chat rooms and the widgets shown on dashboards.

Records never change at runtime. Query functions return copies, so callers may
modify what they get without affecting later queries.
*/
package catalog

import (
	"errors"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var (
	ErrCollegeNotFound = errors.New("college not found")
	ErrMentorNotFound  = errors.New("mentor not found")
	ErrRoomNotFound    = errors.New("chat room not found")
)

// Sort keys accepted by the list queries.
const (
	SortName       = "name"
	SortRating     = "rating"
	SortMembers    = "members"
	SortExperience = "experience"
	SortPrice      = "price"
)

// containsFold reports whether substr is within s, ignoring case.
// An empty substr matches everything.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// nameComparer orders display names the way an English reader expects.
// A Collator is not safe for concurrent use, so each sort builds its own.
func nameComparer() func(a, b string) int {
	c := collate.New(language.English, collate.IgnoreCase)
	return c.CompareString
}

func cloneStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return slices.Clone(s)
}
