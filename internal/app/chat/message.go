package chat

import (
	"encoding/json"
	"fmt"
	"time"

	"ufresher/internal/app/catalog"
	"ufresher/internal/app/user"
	"ufresher/internal/pkg/randx"
)

// MessageType names the kind of frame exchanged over a room connection.
type MessageType string

const (
	// client -> server and server -> clients
	TypeText MessageType = "TEXT"

	// server -> client
	TypeInitData   MessageType = "INIT_DATA"
	TypeUserJoined MessageType = "USER_JOINED"
	TypeUserLeft   MessageType = "USER_LEFT"
	TypeConfirm    MessageType = "CONFIRM"
	TypeError      MessageType = "ERROR"
)

// Member is the public identity of a chat participant.
type Member struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Avatar string    `json:"avatar"`
	Role   user.Role `json:"role,omitempty"`
}

// MemberFromUser derives the chat identity of a signed-in member.
func MemberFromUser(u user.User) Member {
	return Member{ID: u.ID, Name: u.Name, Avatar: u.Avatar, Role: u.Role}
}

// SystemUser is the sender of server-generated frames.
var SystemUser = Member{ID: "system", Name: "U Fresher", Avatar: "🎓"}

// Message is the envelope of every frame sent to clients.
type Message struct {
	ID        string          `json:"id"`
	Type      MessageType     `json:"type"`
	Room      string          `json:"room"`
	Sender    Member          `json:"sender"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Timestamp int64           `json:"timestamp"`

	// Time is the display label of seeded history lines, which have no timestamp.
	Time string `json:"time,omitempty"`
}

// NewMessage builds a message with a fresh ID and the current time.
func NewMessage(msgType MessageType, room string, sender Member, payload any) (Message, error) {
	var raw json.RawMessage
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return Message{}, fmt.Errorf("marshal %s payload: %w", msgType, err)
		}
		raw = b
	}

	return Message{
		ID:        randx.MessageID(),
		Type:      msgType,
		Room:      room,
		Sender:    sender,
		Payload:   raw,
		Timestamp: time.Now().UnixMilli(),
	}, nil
}

// seededMessage converts a line of catalog history into a TEXT message.
func seededMessage(room string, m catalog.ChatMessage) Message {
	payload, _ := json.Marshal(TextPayload{Content: m.Text})
	return Message{
		ID:      fmt.Sprintf("%s-seed-%d", room, m.ID),
		Type:    TypeText,
		Room:    room,
		Sender:  Member{ID: "seed", Name: m.User, Avatar: m.Avatar},
		Payload: payload,
		Time:    m.Time,
	}
}

// TextPayload carries the body of a TEXT message.
type TextPayload struct {
	Content string `json:"content"`
}

// InitDataPayload is sent to a client right after it joins a room.
type InitDataPayload struct {
	CurrentUser Member           `json:"currentUser"`
	OnlineUsers []Member         `json:"onlineUsers"`
	Room        catalog.ChatRoom `json:"room"`
	History     []Message        `json:"history"`
	MaxUsers    int              `json:"maxUsers"`
}

// UserEventPayload announces a join or a leave.
type UserEventPayload struct {
	User Member `json:"user"`
}

// ConfirmPayload acknowledges a client's message with its authoritative ID.
type ConfirmPayload struct {
	TempID    string `json:"tempId"`
	MessageID string `json:"id"`
	Timestamp int64  `json:"timestamp"`
}

// ErrorPayload reports a rejected client action.
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
