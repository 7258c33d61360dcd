/*
Package chat runs the live community chat rooms.

This file defines the Manager struct, the registry of running rooms. Rooms are
opened lazily for known catalog room ids and removed once they stop.
*/
package chat

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"ufresher/internal/app/catalog"
	"ufresher/internal/pkg/errs"
	"ufresher/internal/pkg/logx"
)

// Manager coordinates all active chat rooms.
type Manager struct {
	// running rooms keyed by room id.
	rooms map[string]*Room

	// mu protects rooms.
	mu sync.RWMutex

	// rooms report here when their Run loop ends.
	cleanup chan *Room

	inactivity time.Duration

	closed bool

	// wg waits for the cleanup loop on shutdown.
	wg sync.WaitGroup

	logger zerolog.Logger
}

// NewManager starts a Manager whose empty rooms shut down after inactivity.
func NewManager(inactivity time.Duration) *Manager {
	if inactivity <= 0 {
		inactivity = RoomInactivityTimeout
	}

	m := &Manager{
		rooms:      make(map[string]*Room),
		cleanup:    make(chan *Room, 16),
		inactivity: inactivity,
		logger:     logx.With("chat_manager"),
	}

	m.wg.Add(1)
	go m.runCleanupLoop()

	return m
}

func (m *Manager) runCleanupLoop() {
	defer m.wg.Done()

	m.logger.Info().Msg("Cleanup loop started.")

	for room := range m.cleanup {
		m.deleteRoom(room)
	}

	m.logger.Info().Msg("Cleanup loop stopped.")
}

// deleteRoom forgets room unless it was already replaced by a newer instance.
func (m *Manager) deleteRoom(room *Room) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if current, ok := m.rooms[room.ID]; ok && current == room {
		delete(m.rooms, room.ID)
		m.logger.Info().Str("room", room.ID).Msg("Room successfully removed.")
	}
}

// Room returns the running room for id, starting it if needed.
// Ids outside the catalog answer ErrRoomNotFound.
func (m *Manager) Room(id string) (*Room, *errs.CustomError) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, errs.NewError(errs.ErrUnknown)
	}

	if room, ok := m.rooms[id]; ok && !room.Stopped() {
		return room, nil
	}

	info, err := catalog.FindRoom(id)
	if err != nil {
		return nil, errs.NewError(errs.ErrRoomNotFound, id)
	}
	history, _ := catalog.RoomMessages(id)

	room := NewRoom(info, history, m.inactivity, m.cleanup)
	m.rooms[id] = room
	go room.Run()

	m.logger.Info().Str("room", id).Int("max_clients", room.MaxClients).Msg("Room started.")
	return room, nil
}

// RoomStatus is the live view of a catalog room.
type RoomStatus struct {
	catalog.ChatRoom
	Online int `json:"online"`
}

// Rooms lists every catalog room with its current number of connected members.
func (m *Manager) Rooms() []RoomStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rooms := catalog.ChatRooms()
	out := make([]RoomStatus, len(rooms))
	for i, info := range rooms {
		out[i] = RoomStatus{ChatRoom: info}
		if room, ok := m.rooms[info.ID]; ok && !room.Stopped() {
			out[i].Online = len(room.Online())
		}
	}
	return out
}

// Shutdown stops every room and waits for the cleanup loop to exit.
func (m *Manager) Shutdown() {
	m.logger.Info().Msg("Shutting down chat rooms...")

	m.mu.Lock()
	m.closed = true
	rooms := make([]*Room, 0, len(m.rooms))
	for _, room := range m.rooms {
		rooms = append(rooms, room)
	}
	m.mu.Unlock()

	for _, room := range rooms {
		room.Stop()
		<-room.Done()
	}

	close(m.cleanup)
	m.wg.Wait()

	m.logger.Info().Msg("Manager shutdown complete.")
}
