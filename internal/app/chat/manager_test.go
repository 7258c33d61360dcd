package chat

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ufresher/internal/pkg/errs"
)

func TestManagerRoomLookup(t *testing.T) {
	m := NewManager(time.Minute)
	t.Cleanup(m.Shutdown)

	_, customErr := m.Room("no-such-room")
	require.NotNil(t, customErr)
	assert.Equal(t, errs.ErrRoomNotFound, customErr.Code)
	assert.Equal(t, http.StatusNotFound, customErr.Status)

	a, customErr := m.Room("general")
	require.Nil(t, customErr)
	b, customErr := m.Room("general")
	require.Nil(t, customErr)
	assert.Same(t, a, b)
	assert.Equal(t, CommunityMaxClients, a.MaxClients)

	direct, customErr := m.Room("student-alex")
	require.Nil(t, customErr)
	assert.Equal(t, DirectMaxClients, direct.MaxClients)
}

func TestIdleRoomIsReplaced(t *testing.T) {
	m := NewManager(20 * time.Millisecond)
	t.Cleanup(m.Shutdown)

	old, customErr := m.Room("events")
	require.Nil(t, customErr)

	require.Eventually(t, old.Stopped, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool {
		m.mu.RLock()
		defer m.mu.RUnlock()
		_, ok := m.rooms["events"]
		return !ok
	}, time.Second, 5*time.Millisecond)

	fresh, customErr := m.Room("events")
	require.Nil(t, customErr)
	assert.NotSame(t, old, fresh)
	assert.False(t, fresh.Stopped())
}

func TestRoomsReportsEveryCatalogRoom(t *testing.T) {
	m := NewManager(time.Minute)
	t.Cleanup(m.Shutdown)

	rooms := m.Rooms()
	require.Len(t, rooms, 11)
	for _, r := range rooms {
		assert.Zero(t, r.Online)
	}
}

func TestShutdownStopsRooms(t *testing.T) {
	m := NewManager(time.Minute)

	room, customErr := m.Room("general")
	require.Nil(t, customErr)

	m.Shutdown()
	assert.True(t, room.Stopped())

	_, customErr = m.Room("general")
	require.NotNil(t, customErr)
	assert.ErrorIs(t, room.Join(&Client{member: Member{ID: "late"}}), ErrRoomClosed)
}
