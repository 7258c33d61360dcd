package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collegeIDs(cs []College) []string {
	ids := make([]string, len(cs))
	for i, c := range cs {
		ids[i] = c.ID
	}
	return ids
}

func mentorIDs(ms []Mentor) []string {
	ids := make([]string, len(ms))
	for i, m := range ms {
		ids[i] = m.ID
	}
	return ids
}

func TestListCollegesSorts(t *testing.T) {
	byName := ListColleges(CollegeFilter{})
	assert.Equal(t, []string{"amity", "bits", "du", "gla", "iit-delhi", "manipal", "srm", "vit"}, collegeIDs(byName))

	byRating := ListColleges(CollegeFilter{Sort: SortRating})
	assert.Equal(t, "iit-delhi", byRating[0].ID)
	assert.Equal(t, "amity", byRating[len(byRating)-1].ID)

	byMembers := ListColleges(CollegeFilter{Sort: SortMembers})
	assert.Equal(t, []string{"du", "srm", "amity", "manipal", "vit", "bits", "iit-delhi", "gla"}, collegeIDs(byMembers))

	assert.Equal(t, collegeIDs(byName), collegeIDs(ListColleges(CollegeFilter{Sort: "bogus"})))
}

func TestListCollegesFilters(t *testing.T) {
	assert.Equal(t, []string{"du", "iit-delhi"}, collegeIDs(ListColleges(CollegeFilter{Location: "new delhi"})))
	assert.Equal(t, []string{"amity"}, collegeIDs(ListColleges(CollegeFilter{Stream: "LAW"})))
	assert.Equal(t, []string{"iit-delhi"}, collegeIDs(ListColleges(CollegeFilter{Search: "iit"})))
	assert.Empty(t, ListColleges(CollegeFilter{Search: "oxford"}))
}

func TestCollegeDetail(t *testing.T) {
	d, err := Detail("iit-delhi")
	require.NoError(t, err)
	assert.Equal(t, "#1", d.Stats.Ranking)
	assert.Len(t, d.Posts, 6)
	assert.Len(t, d.Clubs, 5)
	assert.Len(t, d.ChatRooms, 9)
	assert.Len(t, d.Collaborations, 4)

	d, err = Detail("amity")
	require.NoError(t, err)
	assert.Equal(t, "35,000+", d.Stats.Students)
	assert.Empty(t, d.Stats.Ranking)

	_, err = Detail("oxford")
	assert.ErrorIs(t, err, ErrCollegeNotFound)
}

func TestListMentorsFilters(t *testing.T) {
	assert.Len(t, ListMentors(MentorFilter{}), MentorCount())

	senior := ListMentors(MentorFilter{MinExperience: 10})
	assert.ElementsMatch(t, []string{"rajesh-kumar", "maya-singh"}, mentorIDs(senior))

	python := ListMentors(MentorFilter{Skill: "pyth"})
	assert.ElementsMatch(t, []string{"sarah-wilson", "priya-sharma"}, mentorIDs(python))

	assert.Equal(t, []string{"maya-singh"}, mentorIDs(ListMentors(MentorFilter{Availability: WeekendsOnly})))
	assert.Empty(t, ListMentors(MentorFilter{Availability: "available"}), "availability is an exact match")

	top := ListMentors(MentorFilter{MinRating: 4.9})
	assert.ElementsMatch(t, []string{"sarah-wilson", "arjun-patel", "maya-singh"}, mentorIDs(top))

	assert.Equal(t, []string{"priya-sharma"}, mentorIDs(ListMentors(MentorFilter{College: "gla"})))
}

func TestListMentorsSorts(t *testing.T) {
	byPrice := ListMentors(MentorFilter{Sort: SortPrice})
	assert.Equal(t, "priya-sharma", byPrice[0].ID)
	assert.Equal(t, "maya-singh", byPrice[len(byPrice)-1].ID)

	byExperience := ListMentors(MentorFilter{Sort: SortExperience})
	assert.Equal(t, []string{"rajesh-kumar", "maya-singh", "karthik-nair"}, mentorIDs(byExperience)[:3])

	byName := ListMentors(MentorFilter{})
	assert.Equal(t, "arjun-patel", byName[0].ID)
	assert.Equal(t, "sneha-reddy", byName[len(byName)-1].ID)
}

func TestParseExperienceBucket(t *testing.T) {
	for in, want := range map[string]int{"": 0, "5+": 5, "10+": 10, " 3 ": 3} {
		got, err := ParseExperienceBucket(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseExperienceBucket("senior")
	assert.Error(t, err)
}

func TestMentorPriceLabel(t *testing.T) {
	m, err := FindMentor("sarah-wilson")
	require.NoError(t, err)
	assert.Equal(t, "₹2,500/hour", m.Price)
	assert.Equal(t, "8 years", m.Experience)
}

func TestMentorProfile(t *testing.T) {
	p, err := Profile("sarah-wilson")
	require.NoError(t, err)
	assert.Len(t, p.ReviewList, 4)
	assert.Contains(t, p.Skills, "Computer Vision")
	assert.Len(t, p.TimeSlots, 7)
	assert.Equal(t, "Today", p.AvailableDates[0])

	p, err = Profile("rohit-gupta")
	require.NoError(t, err)
	assert.Empty(t, p.ReviewList)
	assert.NotNil(t, p.ReviewList)
	assert.Len(t, p.Skills, 4)

	_, err = Profile("nobody")
	assert.ErrorIs(t, err, ErrMentorNotFound)

	assert.True(t, IsBookable("Tomorrow", "2:00 PM"))
	assert.False(t, IsBookable("Tomorrow", "1:00 PM"))
}

func TestQueriesReturnCopies(t *testing.T) {
	ms := ListMentors(MentorFilter{})
	ms[0].Skills[0] = "tampered"

	again := ListMentors(MentorFilter{})
	assert.NotEqual(t, "tampered", again[0].Skills[0])

	p, err := Profile("sarah-wilson")
	require.NoError(t, err)
	p.Skills = append(p.Skills[:0], "x")
	m, err := FindMentor("sarah-wilson")
	require.NoError(t, err)
	assert.Equal(t, "AI/ML", m.Skills[0])
}

func TestListProjects(t *testing.T) {
	assert.Len(t, ListProjects(ProjectFilter{}), ProjectCount())

	react := ListProjects(ProjectFilter{Skill: "react"})
	assert.Len(t, react, 5, "React Native also matches")

	mongo := ListProjects(ProjectFilter{Skill: "mongo"})
	require.Len(t, mongo, 2)
	assert.Equal(t, "iot-parking", mongo[0].ID)

	assert.Len(t, ListProjects(ProjectFilter{Search: "voting"}), 1)
}

func TestChatRooms(t *testing.T) {
	assert.Len(t, ChatRooms(), 11)
	assert.Equal(t, 17, TotalUnread())

	msgs, err := RoomMessages("general")
	require.NoError(t, err)
	assert.Len(t, msgs, 5)

	msgs, err = RoomMessages("hackathon")
	require.NoError(t, err)
	assert.Empty(t, msgs)
	assert.NotNil(t, msgs)

	_, err = RoomMessages("nowhere")
	assert.ErrorIs(t, err, ErrRoomNotFound)

	assert.Equal(t, "", UnreadBadge(0))
	assert.Equal(t, "7", UnreadBadge(7))
	assert.Equal(t, "9+", UnreadBadge(17))
}

func TestDashboards(t *testing.T) {
	assert.Len(t, Fresher().QuickActions, 3)
	board := MentorDashboard()
	assert.Equal(t, 3, board.TodaySessions)
	assert.Len(t, board.StudentRequests, 5)
	assert.Len(t, Landing().Updates, 8)
	assert.Len(t, About().Team, 4)
}
