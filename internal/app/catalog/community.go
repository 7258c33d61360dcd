package catalog

import (
	"slices"
	"strconv"
)

// Chat room kinds.
const (
	RoomCommunity = "community"
	RoomMentor    = "mentor"
	RoomStudent   = "student"
)

// Post is an entry on a college community board.
type Post struct {
	ID       int    `json:"id"`
	Author   string `json:"author"`
	Avatar   string `json:"avatar"`
	Content  string `json:"content"`
	Time     string `json:"time"`
	Likes    int    `json:"likes"`
	Comments int    `json:"comments"`
	Type     string `json:"type"`
}

// ChatRoom is a named conversation. Community rooms also carry a member count.
type ChatRoom struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Members int    `json:"members,omitempty"`
	Unread  int    `json:"unread"`
}

// ChatMessage is a seeded line of room history.
type ChatMessage struct {
	ID     int    `json:"id"`
	User   string `json:"user"`
	Avatar string `json:"avatar"`
	Text   string `json:"message"`
	Time   string `json:"time"`
}

var posts = []Post{
	{
		ID: 1, Author: "Admin", Avatar: "👨‍💼",
		Content: "Welcome to GLA University community! This is your space to connect, collaborate and grow together. 🎓",
		Time:    "2 days ago", Likes: 45, Comments: 12, Type: "welcome",
	},
	{
		ID: 2, Author: "Placement Cell", Avatar: "💼",
		Content: "EXCITING NEWS! 🚀 Google is visiting our campus next month for internship recruitment. Eligibility: CS/IT students with CGPA > 8.0. Start preparing now!",
		Time:    "1 day ago", Likes: 128, Comments: 34, Type: "placement",
	},
	{
		ID: 3, Author: "Tech Club", Avatar: "💻",
		Content: "Hackathon Alert! 💡 \"Code for Change\" - 48-hour hackathon starting this Friday. Amazing prizes and internship opportunities. Register now!",
		Time:    "12 hours ago", Likes: 67, Comments: 23, Type: "event",
	},
	{
		ID: 4, Author: "Student Council", Avatar: "🎭",
		Content: "Annual Cultural Fest \"Crescendo 2025\" is here! 🎪 3 days of music, dance, drama and fun. Get your passes now. Celebrity guests announced soon!",
		Time:    "8 hours ago", Likes: 89, Comments: 18, Type: "event",
	},
	{
		ID: 5, Author: "Library", Avatar: "📚",
		Content: "New books added to our collection! 📖 Latest titles on AI, ML, Blockchain, and Cybersecurity. Check them out on the ground floor.",
		Time:    "6 hours ago", Likes: 23, Comments: 5, Type: "announcement",
	},
	{
		ID: 6, Author: "Career Services", Avatar: "🎯",
		Content: "Resume writing workshop this Saturday! ✍️ Learn from industry experts how to craft winning resumes. Limited seats available.",
		Time:    "4 hours ago", Likes: 41, Comments: 9, Type: "workshop",
	},
}

var chatRooms = []ChatRoom{
	{ID: "general", Name: "General", Type: RoomCommunity, Members: 1240, Unread: 3},
	{ID: "placement", Name: "Placement", Type: RoomCommunity, Members: 890, Unread: 1},
	{ID: "projects", Name: "Projects", Type: RoomCommunity, Members: 670, Unread: 0},
	{ID: "study", Name: "Study Group", Type: RoomCommunity, Members: 580, Unread: 5},
	{ID: "events", Name: "Events", Type: RoomCommunity, Members: 720, Unread: 2},
	{ID: "hackathon", Name: "Hackathon", Type: RoomCommunity, Members: 340, Unread: 0},
	{ID: "coding-club", Name: "Coding Club", Type: RoomCommunity, Members: 450, Unread: 1},
	{ID: "design-club", Name: "Design Club", Type: RoomCommunity, Members: 280, Unread: 0},
	{ID: "alumni-talks", Name: "Alumni Talks", Type: RoomCommunity, Members: 920, Unread: 4},
	{ID: "mentor-sarah", Name: "Dr. Sarah Wilson", Type: RoomMentor, Unread: 1},
	{ID: "student-alex", Name: "Alex Kumar", Type: RoomStudent, Unread: 0},
}

var roomHistory = map[string][]ChatMessage{
	"general": {
		{ID: 1, User: "Rahul Sharma", Avatar: "👨‍💻", Text: "Hey everyone! Anyone working on React projects?", Time: "10:30 AM"},
		{ID: 2, User: "Priya Singh", Avatar: "👩‍💼", Text: "Yes! I'm building an e-commerce app. Would love to collaborate!", Time: "10:32 AM"},
		{ID: 3, User: "Alex Kumar", Avatar: "👨‍🎓", Text: "Count me in! I have experience with Node.js backend", Time: "10:35 AM"},
		{ID: 4, User: "Arjun Patel", Avatar: "👨‍🎓", Text: "This is awesome! Let's create a group for this project", Time: "10:38 AM"},
		{ID: 5, User: "Sneha Reddy", Avatar: "👩‍💻", Text: "I can help with UI/UX design if needed", Time: "10:40 AM"},
	},
	"placement": {
		{ID: 1, User: "Career Cell", Avatar: "💼", Text: "Amazon is visiting campus next week. Prepare your resumes!", Time: "9:00 AM"},
		{ID: 2, User: "Maya Patel", Avatar: "👩‍💻", Text: "What are the eligibility criteria?", Time: "9:15 AM"},
		{ID: 3, User: "Career Cell", Avatar: "💼", Text: "CS/IT students with CGPA > 7.0. Check your emails for details", Time: "9:20 AM"},
	},
}

// Posts returns the community board shown on college pages.
func Posts() []Post {
	return slices.Clone(posts)
}

// ChatRooms returns every room, community and direct.
func ChatRooms() []ChatRoom {
	return slices.Clone(chatRooms)
}

// CommunityRooms returns the rooms listed on college pages.
func CommunityRooms() []ChatRoom {
	out := make([]ChatRoom, 0, len(chatRooms))
	for _, r := range chatRooms {
		if r.Type == RoomCommunity {
			out = append(out, r)
		}
	}
	return out
}

// FindRoom returns the room with the given id.
func FindRoom(id string) (ChatRoom, error) {
	for _, r := range chatRooms {
		if r.ID == id {
			return r, nil
		}
	}
	return ChatRoom{}, ErrRoomNotFound
}

// RoomMessages returns the seeded history of a room. Known rooms without
// history return an empty slice.
func RoomMessages(id string) ([]ChatMessage, error) {
	if _, err := FindRoom(id); err != nil {
		return nil, err
	}
	out := slices.Clone(roomHistory[id])
	if out == nil {
		out = []ChatMessage{}
	}
	return out, nil
}

// TotalUnread sums the unread counters of all rooms.
func TotalUnread() int {
	total := 0
	for _, r := range chatRooms {
		total += r.Unread
	}
	return total
}

// UnreadBadge is the launcher badge text: empty for zero, "9+" above nine.
func UnreadBadge(n int) string {
	switch {
	case n <= 0:
		return ""
	case n > 9:
		return "9+"
	}
	return strconv.Itoa(n)
}
