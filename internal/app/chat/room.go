/*
Package chat runs the live community chat rooms.

This file defines the Room struct, the hub of a single room. It manages client
lifecycles (register/unregister), broadcasts messages to all participants,
keeps a short history, and shuts itself down after a period of inactivity.
*/
package chat

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"ufresher/internal/app/catalog"
	"ufresher/internal/pkg/errs"
	"ufresher/internal/pkg/logx"
)

const broadcastChannelBuffer = 1024

const (
	// DirectMaxClients is the capacity of mentor and student conversations.
	DirectMaxClients = 2

	// CommunityMaxClients is the capacity of community rooms.
	CommunityMaxClients = 100

	// HistoryLimit caps how many live messages a room keeps for late joiners.
	HistoryLimit = 50

	// RoomInactivityTimeout is how long an empty room lives before shutting down.
	RoomInactivityTimeout = 5 * time.Minute
)

// ErrRoomClosed is returned by Join when the room has already shut down.
var ErrRoomClosed = errors.New("room is closed")

// Room is a single, active chat room.
type Room struct {
	// ID is the catalog room id.
	ID string

	// Info is the catalog record of the room.
	Info catalog.ChatRoom

	// MaxClients is the number of distinct members allowed at once.
	MaxClients int

	// connected clients, keyed by member ID.
	clients map[string]*Client

	// seeded history followed by live messages, oldest first.
	seed    []Message
	history []Message

	broadcast  chan Message
	register   chan *Client
	unregister chan *Client

	// notifies the Manager that this room stopped.
	cleanupChan chan<- *Room

	stopChan chan struct{}
	stopOnce sync.Once
	done     chan struct{}

	inactivity    time.Duration
	shutdownTimer *time.Timer

	// mu protects clients for readers outside the Run loop.
	mu sync.RWMutex

	logger zerolog.Logger
}

// NewRoom creates a room for a catalog record. Call Run to start it.
func NewRoom(info catalog.ChatRoom, history []catalog.ChatMessage, inactivity time.Duration, cleanupChan chan<- *Room) *Room {
	maxClients := CommunityMaxClients
	if info.Type != catalog.RoomCommunity {
		maxClients = DirectMaxClients
	}

	seed := make([]Message, len(history))
	for i, m := range history {
		seed[i] = seededMessage(info.ID, m)
	}

	return &Room{
		ID:            info.ID,
		Info:          info,
		MaxClients:    maxClients,
		clients:       make(map[string]*Client),
		seed:          seed,
		broadcast:     make(chan Message, broadcastChannelBuffer),
		register:      make(chan *Client),
		unregister:    make(chan *Client),
		cleanupChan:   cleanupChan,
		stopChan:      make(chan struct{}),
		done:          make(chan struct{}),
		inactivity:    inactivity,
		shutdownTimer: time.NewTimer(inactivity),
		logger:        logx.Logger().With().Str("room", info.ID).Logger(),
	}
}

// Stop asks the Run loop to terminate. It is safe to call more than once.
func (r *Room) Stop() {
	r.stopOnce.Do(func() {
		r.logger.Info().Msg("Received stop signal. Stopping room immediately.")
		close(r.stopChan)
	})
}

// Done is closed once the Run loop has exited.
func (r *Room) Done() <-chan struct{} {
	return r.done
}

// Stopped reports whether the Run loop has exited.
func (r *Room) Stopped() bool {
	select {
	case <-r.done:
		return true
	default:
		return false
	}
}

// Join queues client for registration.
func (r *Room) Join(client *Client) error {
	select {
	case r.register <- client:
		return nil
	case <-r.done:
		return ErrRoomClosed
	}
}

func (r *Room) leave(client *Client) {
	select {
	case r.unregister <- client:
	case <-r.done:
	}
}

func (r *Room) publish(msg Message) {
	select {
	case r.broadcast <- msg:
	case <-r.done:
	}
}

// Run is the room's event loop. It owns clients, history and the inactivity timer.
func (r *Room) Run() {
	defer r.finish()

	for {
		select {
		case client := <-r.register:
			r.handleRegister(client)

		case client := <-r.unregister:
			r.handleUnregister(client)

		case msg := <-r.broadcast:
			r.appendHistory(msg)
			r.deliver(msg, msg.Sender.ID)

		case <-r.shutdownTimer.C:
			r.logger.Info().Msgf("Room inactivity timeout (%s) reached. Shutting down.", r.inactivity)
			return

		case <-r.stopChan:
			r.logger.Info().Msg("Room forced stop initiated.")
			return
		}
	}
}

func (r *Room) finish() {
	r.shutdownTimer.Stop()

	r.mu.Lock()
	for id, client := range r.clients {
		client.closeSend()
		delete(r.clients, id)
	}
	r.mu.Unlock()

	// the Manager closes cleanupChan only after every room is done
	select {
	case r.cleanupChan <- r:
		r.logger.Info().Msg("Sent cleanup notification to Manager.")
	default:
		r.logger.Warn().Msg("Manager cleanup channel full. Skipping cleanup notification.")
	}

	close(r.done)
}

func (r *Room) handleRegister(client *Client) {
	id := client.member.ID

	r.mu.Lock()
	if existing, ok := r.clients[id]; ok {
		r.logger.Warn().Str("client_id", id).Msg("Member already connected. Closing old connection for replacement.")
		existing.Kick(errs.NewError(errs.ErrSessionKicked).Message)
		delete(r.clients, id)
	}

	if r.MaxClients > 0 && len(r.clients) >= r.MaxClients {
		r.mu.Unlock()
		r.logger.Warn().Int("max_clients", r.MaxClients).Str("client_id", id).Msg("Room is full. New member rejected.")
		client.SendError(errs.NewError(errs.ErrRoomIsFull))
		client.closeSend()
		return
	}

	r.clients[id] = client
	online := r.onlineLocked()
	r.mu.Unlock()

	r.shutdownTimer.Stop()

	r.logger.Info().Str("client_id", id).Int("total_users", len(online)).Msg("Client joined room.")

	history := make([]Message, 0, len(r.seed)+len(r.history))
	history = append(history, r.seed...)
	history = append(history, r.history...)

	if err := client.SendInitData(InitDataPayload{
		CurrentUser: client.member,
		OnlineUsers: online,
		Room:        r.Info,
		History:     history,
		MaxUsers:    r.MaxClients,
	}); err != nil {
		r.handleUnregister(client)
		return
	}

	r.announce(TypeUserJoined, client.member)
}

func (r *Room) handleUnregister(client *Client) {
	id := client.member.ID

	r.mu.Lock()
	current, ok := r.clients[id]
	if !ok || current != client {
		r.mu.Unlock()
		client.closeSend()
		r.logger.Debug().Str("client_id", id).Msg("Ignoring unregister for stale or unknown connection.")
		return
	}
	delete(r.clients, id)
	remaining := len(r.clients)
	r.mu.Unlock()

	client.closeSend()
	r.logger.Info().Str("client_id", id).Int("total_users", remaining).Msg("Client left room.")

	r.announce(TypeUserLeft, client.member)

	if remaining == 0 {
		r.logger.Info().Msg("Room is empty. Arming inactivity timer.")
		r.shutdownTimer.Reset(r.inactivity)
	}
}

func (r *Room) announce(msgType MessageType, member Member) {
	msg, err := NewMessage(msgType, r.ID, SystemUser, UserEventPayload{User: member})
	if err != nil {
		r.logger.Error().Err(err).Str("type", string(msgType)).Msg("Failed to build presence message.")
		return
	}
	r.deliver(msg, member.ID)
}

// deliver sends msg to every client except skipID. Clients that cannot keep
// up are dropped.
func (r *Room) deliver(msg Message, skipID string) {
	messageBytes, err := json.Marshal(msg)
	if err != nil {
		r.logger.Error().Str("message_id", msg.ID).Err(err).Msg("Error marshaling message for broadcast.")
		return
	}

	var slow []*Client

	r.mu.RLock()
	for id, client := range r.clients {
		if id == skipID {
			continue
		}
		select {
		case client.send <- messageBytes:
		default:
			slow = append(slow, client)
		}
	}
	r.mu.RUnlock()

	for _, client := range slow {
		r.logger.Warn().Str("client_id", client.member.ID).Msg("Client send channel full, dropping client.")
		r.handleUnregister(client)
	}
}

func (r *Room) appendHistory(msg Message) {
	if msg.Type != TypeText {
		return
	}
	r.history = append(r.history, msg)
	if over := len(r.history) - HistoryLimit; over > 0 {
		r.history = append(r.history[:0], r.history[over:]...)
	}
}

func (r *Room) onlineLocked() []Member {
	online := make([]Member, 0, len(r.clients))
	for _, c := range r.clients {
		online = append(online, c.member)
	}
	return online
}

// Online returns the members currently connected.
func (r *Room) Online() []Member {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.onlineLocked()
}

// IsFull reports whether the room reached its capacity.
func (r *Room) IsFull() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.MaxClients > 0 && len(r.clients) >= r.MaxClients
}
