/*
Package handler provides the HTTP handler function for WebSocket connection upgrading and initialization.
This file contains the HandleWebSocket function, which is responsible for rate limiting, resolving
the room and the signed-in member, upgrading the HTTP connection to WebSocket, and initiating the client lifecycle.
*/
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"ufresher/internal/app/chat"
	"ufresher/internal/pkg/errs"
	"ufresher/internal/pkg/limiter"
	"ufresher/internal/pkg/logx"
	"ufresher/internal/pkg/resp"
)

// HandleWebSocket creates an HTTP HandlerFunc to process WebSocket connection requests.
// The device token (query parameter "token") must carry a saved session.
func HandleWebSocket(deps *AppDeps, upgrader websocket.Upgrader, rateLimiter *limiter.IPRateLimiter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !rateLimiter.Allow(r) {
			logx.Warn("WebSocket connection rejected: Rate limit exceeded.", "ip", limiter.ClientIP(r))
			resp.RespondError(w, r, errs.NewError(errs.ErrRateLimitExceeded))
			return
		}

		roomID := chi.URLParam(r, "room")
		if roomID == "" {
			logx.Warn("WebSocket request rejected: Missing room id")
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		u, customErr := deps.currentUser(r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}
		if u == nil {
			logx.Info("WebSocket connection rejected: No session.", "room", roomID)
			resp.RespondError(w, r, errs.NewError(errs.ErrNotLoggedIn))
			return
		}

		room, roomErr := deps.Manager.Room(roomID)
		if roomErr != nil {
			logx.Info("WebSocket connection rejected: Room unavailable.", "room", roomID, "code", roomErr.Code)
			resp.RespondError(w, r, roomErr)
			return
		}

		member := chat.MemberFromUser(*u)
		if room.IsFull() && !isOnline(room, member.ID) {
			logx.Info("WebSocket connection rejected: Room is full.", "room", roomID)
			resp.RespondError(w, r, errs.NewError(errs.ErrRoomIsFull))
			return
		}

		logx.Info("Attempting to upgrade connection", "room", roomID, "user_id", member.ID)

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logx.Error(err, "Failed to upgrade connection to WebSocket")
			return
		}

		client := chat.NewClient(room, conn, member)
		go client.WritePump()

		if err := room.Join(client); err != nil {
			logx.Warn("Room closed before the client registered", "room", roomID, "user_id", member.ID)
			client.SendError(errs.NewError(errs.ErrRoomNotFound, roomID))
			client.Close()
			return
		}

		logx.Info("WebSocket connection established and client registered", "client_id", member.ID, "room", roomID)
		client.ReadPump()
	}
}

// isOnline reports whether memberID already holds a connection, which a new
// connection replaces instead of taking a seat.
func isOnline(room *chat.Room, memberID string) bool {
	for _, m := range room.Online() {
		if m.ID == memberID {
			return true
		}
	}
	return false
}
