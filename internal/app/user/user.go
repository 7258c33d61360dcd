/*
Package user defines the session record of a signed-in member and the fixed
allow-list of demo accounts it can be created from.
*/
package user

import (
	"errors"
	"slices"
)

// Role is the kind of member: a fresher (student) or a mentor.
type Role string

const (
	RoleFresher Role = "fresher"
	RoleMentor  Role = "mentor"
)

// DashboardPage names the page a member of this role lands on after login.
func (r Role) DashboardPage() string {
	if r == RoleMentor {
		return "mentor-dashboard"
	}
	return "fresher-dashboard"
}

// ErrInvalidCredentials is returned for any email/password pair outside the allow-list.
var ErrInvalidCredentials = errors.New("invalid credentials")

// User is the session record persisted in local storage.
// The JSON shape is the storage format and must stay stable.
type User struct {
	ID                string   `json:"id"`
	Email             string   `json:"email"`
	Name              string   `json:"name"`
	Role              Role     `json:"role"`
	Avatar            string   `json:"avatar"`
	College           string   `json:"college,omitempty"`
	JoinedCommunities []string `json:"joinedCommunities"`
	Projects          []string `json:"projects"`
}

// Clone returns a deep copy of u.
func (u User) Clone() User {
	u.JoinedCommunities = slices.Clone(u.JoinedCommunities)
	u.Projects = slices.Clone(u.Projects)
	if u.JoinedCommunities == nil {
		u.JoinedCommunities = []string{}
	}
	if u.Projects == nil {
		u.Projects = []string{}
	}
	return u
}

// HasJoinedCommunity reports whether id is in the joined communities.
func (u User) HasJoinedCommunity(id string) bool {
	return slices.Contains(u.JoinedCommunities, id)
}

// HasJoinedProject reports whether id is in the joined projects.
func (u User) HasJoinedProject(id string) bool {
	return slices.Contains(u.Projects, id)
}

// JoinCommunity adds id to the joined communities.
// It reports false, leaving u unchanged, when id is already present.
func (u *User) JoinCommunity(id string) bool {
	if u.HasJoinedCommunity(id) {
		return false
	}
	u.JoinedCommunities = append(slices.Clone(u.JoinedCommunities), id)
	return true
}

// JoinProject adds id to the joined projects.
// It reports false, leaving u unchanged, when id is already present.
func (u *User) JoinProject(id string) bool {
	if u.HasJoinedProject(id) {
		return false
	}
	u.Projects = append(slices.Clone(u.Projects), id)
	return true
}
