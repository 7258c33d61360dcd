package chat

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ufresher/internal/app/catalog"
	"ufresher/internal/pkg/errs"
)

type frame struct {
	kind int
	data []byte
}

// recordingConn keeps every frame written to it.
type recordingConn struct {
	mu     sync.Mutex
	frames []frame
	closed bool
}

func (c *recordingConn) SetReadLimit(int64) {}
func (c *recordingConn) SetReadDeadline(time.Time) error { return nil }
func (c *recordingConn) SetWriteDeadline(time.Time) error { return nil }
func (c *recordingConn) SetPongHandler(func(string) error) {}
func (c *recordingConn) ReadMessage() (int, []byte, error) { return 0, nil, websocket.ErrCloseSent }
func (c *recordingConn) WriteControl(int, []byte, time.Time) error { return nil }

func (c *recordingConn) WriteMessage(kind int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frames = append(c.frames, frame{kind: kind, data: append([]byte(nil), data...)})
	return nil
}

func (c *recordingConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *recordingConn) snapshot() ([]frame, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]frame(nil), c.frames...), c.closed
}

func TestCloseFlushesQueueAndStopsWritePump(t *testing.T) {
	info, err := catalog.FindRoom("general")
	require.NoError(t, err)
	room := NewRoom(info, nil, time.Minute, make(chan *Room, 1))

	conn := &recordingConn{}
	client := NewClient(room, conn, Member{ID: "alex"})

	stopped := make(chan struct{})
	go func() {
		client.WritePump()
		close(stopped)
	}()

	client.SendError(errs.NewError(errs.ErrRoomNotFound, "general"))
	client.Close()
	client.Close()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("write pump still running after Close")
	}

	frames, closed := conn.snapshot()
	assert.True(t, closed)
	require.Len(t, frames, 2)
	assert.Equal(t, websocket.TextMessage, frames[0].kind)
	assert.Equal(t, websocket.CloseMessage, frames[1].kind)

	var msg Message
	require.NoError(t, json.Unmarshal(frames[0].data, &msg))
	assert.Equal(t, TypeError, msg.Type)
	assert.Equal(t, errs.ErrRoomNotFound, decode[ErrorPayload](t, msg).Code)
}
