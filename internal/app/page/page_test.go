package page

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ufresher/internal/app/catalog"
	"ufresher/internal/app/user"
)

func demo(t *testing.T, email, password string) *user.User {
	t.Helper()
	u, err := user.Authenticate(email, password)
	require.NoError(t, err)
	return &u
}

func TestParse(t *testing.T) {
	for _, p := range All {
		got, ok := Parse(string(p))
		assert.True(t, ok)
		assert.Equal(t, p, got)
	}

	got, ok := Parse("settings")
	assert.False(t, ok)
	assert.Equal(t, Landing, got)
}

func TestRenderUnknownFallsBackToLanding(t *testing.T) {
	v, err := Render(Page("settings"), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, Landing, v.Page)
	assert.Equal(t, "settings", v.Requested)

	data, ok := v.Data.(LandingData)
	require.True(t, ok)
	assert.Len(t, data.DemoAccounts, 2)
}

func TestRenderDashboards(t *testing.T) {
	fresher := demo(t, "fresher@demo.com", "Demo123")
	mentor := demo(t, "mentor@demo.com", "Mentor123")

	_, err := Render(FresherDashboard, nil, nil)
	assert.ErrorIs(t, err, ErrLoginRequired)

	_, err = Render(MentorDashboard, nil, fresher)
	assert.ErrorIs(t, err, ErrWrongRole)

	v, err := Render(FresherDashboard, nil, fresher)
	require.NoError(t, err)
	assert.Equal(t, "Welcome back, Alex Kumar!", v.Title)
	data := v.Data.(FresherData)
	require.Len(t, data.Communities, 1)
	assert.Equal(t, "gla", data.Communities[0].ID)
	require.Len(t, data.Projects, 1)
	assert.Equal(t, "iot-parking", data.Projects[0].ID)

	v, err = Render(MentorDashboard, nil, mentor)
	require.NoError(t, err)
	assert.IsType(t, catalog.MentorBoard{}, v.Data)
}

func TestRenderFresherDashboardSkipsUnknownJoins(t *testing.T) {
	fresher := demo(t, "fresher@demo.com", "Demo123")
	fresher.JoinCommunity("no-such-college")

	v, err := Render(FresherDashboard, nil, fresher)
	require.NoError(t, err)
	assert.Len(t, v.Data.(FresherData).Communities, 1)
}

func TestRenderCollegeDetail(t *testing.T) {
	fresher := demo(t, "fresher@demo.com", "Demo123")

	v, err := Render(CollegeDetail, url.Values{"collegeId": {"gla"}}, fresher)
	require.NoError(t, err)
	assert.Equal(t, "GLA University", v.Title)
	assert.True(t, v.Data.(CollegeDetailData).IsMember)

	v, err = Render(CollegeDetail, url.Values{"collegeId": {"vit"}}, fresher)
	require.NoError(t, err)
	assert.False(t, v.Data.(CollegeDetailData).IsMember)

	for _, params := range []url.Values{{}, {"collegeId": {"oxford"}}} {
		v, err = Render(CollegeDetail, params, nil)
		require.NoError(t, err)
		assert.Equal(t, "GLA University", v.Title)
		assert.Equal(t, FallbackCollegeID, v.Data.(CollegeDetailData).ID)
	}
}

func TestRenderMentorsWithFilters(t *testing.T) {
	v, err := Render(Mentors, url.Values{"experience": {"10+"}, "sort": {"price"}}, nil)
	require.NoError(t, err)
	data := v.Data.(MentorsData)
	require.Len(t, data.Mentors, 2)
	assert.Equal(t, "rajesh-kumar", data.Mentors[0].ID)
	assert.Equal(t, 8, data.Total)

	_, err = Render(Mentors, url.Values{"rating": {"high"}}, nil)
	assert.ErrorIs(t, err, ErrBadParam)

	_, err = Render(Mentors, url.Values{"experience": {"lots"}}, nil)
	assert.ErrorIs(t, err, ErrBadParam)
}

func TestRenderMentorProfile(t *testing.T) {
	v, err := Render(MentorProfile, url.Values{"mentorId": {"sarah-wilson"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Sarah Wilson", v.Title)

	for _, params := range []url.Values{{}, {"mentorId": {"ghost"}}} {
		v, err = Render(MentorProfile, params, nil)
		require.NoError(t, err)
		assert.Equal(t, "Dr. Sarah Wilson", v.Title)
	}
}

func TestRenderListsCarryMembership(t *testing.T) {
	fresher := demo(t, "fresher@demo.com", "Demo123")

	v, err := Render(Projects, url.Values{"skill": {"python"}}, fresher)
	require.NoError(t, err)
	data := v.Data.(ProjectsData)
	assert.Len(t, data.Projects, 1)
	assert.Equal(t, 5, data.Total)
	assert.Equal(t, []string{"iot-parking"}, data.Joined)

	v, err = Render(Colleges, url.Values{"sort": {"rating"}}, nil)
	require.NoError(t, err)
	colleges := v.Data.(CollegesData)
	assert.Equal(t, "iit-delhi", colleges.Colleges[0].ID)
	assert.Empty(t, colleges.Joined)
	assert.NotNil(t, colleges.Joined)

	v, err = Render(About, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "About U Fresher", v.Title)
}
