package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticateDemoAccounts(t *testing.T) {
	fresher, err := Authenticate("fresher@demo.com", "Demo123")
	require.NoError(t, err)
	assert.Equal(t, "fresher1", fresher.ID)
	assert.Equal(t, RoleFresher, fresher.Role)
	assert.Equal(t, "GLA University", fresher.College)
	assert.Equal(t, []string{"gla"}, fresher.JoinedCommunities)
	assert.Equal(t, []string{"iot-parking"}, fresher.Projects)

	mentor, err := Authenticate("mentor@demo.com", "Mentor123")
	require.NoError(t, err)
	assert.Equal(t, "mentor1", mentor.ID)
	assert.Equal(t, RoleMentor, mentor.Role)
	assert.Equal(t, []string{"iit-delhi"}, mentor.JoinedCommunities)
}

func TestAuthenticateRejects(t *testing.T) {
	cases := []struct{ email, password string }{
		{"fresher@demo.com", "Mentor123"},
		{"mentor@demo.com", "Demo123"},
		{"fresher@demo.com", "demo123"},
		{"fresher@demo.com", "Demo12"},
		{"fresher@demo.com", "Demo1234"},
		{"fresher@demo.com", " Demo123"},
		{"FRESHER@demo.com", "Demo123"},
		{"someone@else.com", "Demo123"},
		{"", ""},
	}

	for _, tc := range cases {
		_, err := Authenticate(tc.email, tc.password)
		assert.ErrorIs(t, err, ErrInvalidCredentials, tc)
	}
}

func TestAuthenticateReturnsIndependentCopies(t *testing.T) {
	first, err := Authenticate("fresher@demo.com", "Demo123")
	require.NoError(t, err)
	first.JoinedCommunities[0] = "mutated"
	first.JoinCommunity("du")

	second, err := Authenticate("fresher@demo.com", "Demo123")
	require.NoError(t, err)
	assert.Equal(t, []string{"gla"}, second.JoinedCommunities)
}

func TestJoinIsIdempotent(t *testing.T) {
	u := User{ID: "x"}

	assert.True(t, u.JoinCommunity("gla"))
	assert.False(t, u.JoinCommunity("gla"))
	assert.True(t, u.JoinProject("ai-resume"))
	assert.False(t, u.JoinProject("ai-resume"))

	assert.Equal(t, []string{"gla"}, u.JoinedCommunities)
	assert.Equal(t, []string{"ai-resume"}, u.Projects)
}

func TestCloneNormalizesNilSlices(t *testing.T) {
	u := User{ID: "x"}.Clone()
	assert.NotNil(t, u.JoinedCommunities)
	assert.NotNil(t, u.Projects)
}

func TestRole(t *testing.T) {
	assert.Equal(t, "mentor-dashboard", RoleMentor.DashboardPage())
	assert.Equal(t, "fresher-dashboard", RoleFresher.DashboardPage())
}

func TestDemoHints(t *testing.T) {
	hints := DemoHints()
	require.Len(t, hints, 2)
	for _, h := range hints {
		_, err := Authenticate(h.Email, h.Password)
		assert.NoError(t, err)
	}
}
