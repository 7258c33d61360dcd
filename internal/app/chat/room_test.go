package chat

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ufresher/internal/app/catalog"
	"ufresher/internal/pkg/errs"
	"ufresher/internal/pkg/logx"
)

func TestMain(m *testing.M) {
	logx.SetOutput(io.Discard)
	os.Exit(m.Run())
}

// newTestServer serves /?room=<id>&id=<member> the way the HTTP layer does.
func newTestServer(t *testing.T, m *Manager) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		room, customErr := m.Room(r.URL.Query().Get("room"))
		if customErr != nil {
			http.Error(w, customErr.Message, customErr.Status)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}

		id := r.URL.Query().Get("id")
		client := NewClient(room, conn, Member{ID: id, Name: strings.ToUpper(id)})
		go client.WritePump()
		if err := room.Join(client); err != nil {
			client.Close()
			return
		}
		client.ReadPump()
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server, room, id string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/?room=" + room + "&id=" + id
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func readType(t *testing.T, conn *websocket.Conn, want MessageType) Message {
	t.Helper()
	for {
		msg := readMessage(t, conn)
		if msg.Type == want {
			return msg
		}
	}
}

func decode[T any](t *testing.T, msg Message) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(msg.Payload, &v))
	return v
}

func TestJoinSendsInitDataWithSeededHistory(t *testing.T) {
	m := NewManager(time.Minute)
	t.Cleanup(m.Shutdown)
	srv := newTestServer(t, m)

	conn := dial(t, srv, "general", "alex")
	msg := readMessage(t, conn)
	require.Equal(t, TypeInitData, msg.Type)

	init := decode[InitDataPayload](t, msg)
	assert.Equal(t, "alex", init.CurrentUser.ID)
	assert.Equal(t, "general", init.Room.ID)
	assert.Equal(t, CommunityMaxClients, init.MaxUsers)
	require.Len(t, init.History, 5)
	assert.Equal(t, "Rahul Sharma", init.History[0].Sender.Name)
	assert.Equal(t, "10:30 AM", init.History[0].Time)
	assert.Equal(t, "Hey everyone! Anyone working on React projects?", decode[TextPayload](t, init.History[0]).Content)
}

func TestTextIsConfirmedAndBroadcast(t *testing.T) {
	m := NewManager(time.Minute)
	t.Cleanup(m.Shutdown)
	srv := newTestServer(t, m)

	a := dial(t, srv, "projects", "alex")
	readType(t, a, TypeInitData)
	b := dial(t, srv, "projects", "priya")
	readType(t, b, TypeInitData)

	joined := decode[UserEventPayload](t, readType(t, a, TypeUserJoined))
	assert.Equal(t, "priya", joined.User.ID)

	require.NoError(t, a.WriteJSON(map[string]any{
		"type":    TypeText,
		"tempId":  "tmp-1",
		"payload": TextPayload{Content: "Anyone up for a hackathon?"},
	}))

	ack := decode[ConfirmPayload](t, readType(t, a, TypeConfirm))
	assert.Equal(t, "tmp-1", ack.TempID)

	text := readType(t, b, TypeText)
	assert.Equal(t, ack.MessageID, text.ID)
	assert.Equal(t, "alex", text.Sender.ID)
	assert.Equal(t, "Anyone up for a hackathon?", decode[TextPayload](t, text).Content)

	// a late joiner sees the live message after the seeded history
	c := dial(t, srv, "projects", "sneha")
	init := decode[InitDataPayload](t, readType(t, c, TypeInitData))
	require.NotEmpty(t, init.History)
	assert.Equal(t, ack.MessageID, init.History[len(init.History)-1].ID)
	assert.Len(t, init.OnlineUsers, 3)
}

func TestOversizedTextIsRejected(t *testing.T) {
	m := NewManager(time.Minute)
	t.Cleanup(m.Shutdown)
	srv := newTestServer(t, m)

	a := dial(t, srv, "study", "alex")
	readType(t, a, TypeInitData)

	require.NoError(t, a.WriteJSON(map[string]any{
		"type":    TypeText,
		"payload": TextPayload{Content: strings.Repeat("x", MaxContentBytes+1)},
	}))

	payload := decode[ErrorPayload](t, readType(t, a, TypeError))
	assert.Equal(t, errs.ErrMessageContentTooLong, payload.Code)
}

func TestSecondConnectionKicksTheFirst(t *testing.T) {
	m := NewManager(time.Minute)
	t.Cleanup(m.Shutdown)
	srv := newTestServer(t, m)

	first := dial(t, srv, "events", "alex")
	readType(t, first, TypeInitData)

	second := dial(t, srv, "events", "alex")
	init := decode[InitDataPayload](t, readType(t, second, TypeInitData))
	assert.Len(t, init.OnlineUsers, 1)

	require.NoError(t, first.SetReadDeadline(time.Now().Add(2*time.Second)))
	var closeErr *websocket.CloseError
	for {
		_, _, err := first.ReadMessage()
		if err != nil {
			require.True(t, errors.As(err, &closeErr), "unexpected error: %v", err)
			break
		}
	}
	assert.Equal(t, WsCloseCodeSessionKicked, closeErr.Code)
}

func TestDirectRoomHoldsTwoMembers(t *testing.T) {
	m := NewManager(time.Minute)
	t.Cleanup(m.Shutdown)
	srv := newTestServer(t, m)

	a := dial(t, srv, "mentor-sarah", "alex")
	init := decode[InitDataPayload](t, readType(t, a, TypeInitData))
	assert.Equal(t, DirectMaxClients, init.MaxUsers)
	assert.Empty(t, init.History)

	b := dial(t, srv, "mentor-sarah", "sarah")
	readType(t, b, TypeInitData)

	c := dial(t, srv, "mentor-sarah", "intruder")
	payload := decode[ErrorPayload](t, readType(t, c, TypeError))
	assert.Equal(t, errs.ErrRoomIsFull, payload.Code)
}

func TestLeaveIsAnnounced(t *testing.T) {
	m := NewManager(time.Minute)
	t.Cleanup(m.Shutdown)
	srv := newTestServer(t, m)

	a := dial(t, srv, "hackathon", "alex")
	readType(t, a, TypeInitData)
	b := dial(t, srv, "hackathon", "arjun")
	readType(t, b, TypeInitData)
	readType(t, a, TypeUserJoined)

	require.NoError(t, b.Close())

	left := decode[UserEventPayload](t, readType(t, a, TypeUserLeft))
	assert.Equal(t, "arjun", left.User.ID)
}

func TestHistoryIsCapped(t *testing.T) {
	info, err := catalog.FindRoom("general")
	require.NoError(t, err)
	r := NewRoom(info, nil, time.Minute, make(chan *Room, 1))

	for i := 0; i < HistoryLimit+10; i++ {
		msg, err := NewMessage(TypeText, r.ID, Member{ID: "alex"}, TextPayload{Content: "hi"})
		require.NoError(t, err)
		r.appendHistory(msg)
	}
	first := r.history[0].ID

	presence, err := NewMessage(TypeUserJoined, r.ID, SystemUser, nil)
	require.NoError(t, err)
	r.appendHistory(presence)

	assert.Len(t, r.history, HistoryLimit)
	assert.Equal(t, first, r.history[0].ID)
}
