/*
Package handler provides the chat room listing endpoint.
*/
package handler

import (
	"net/http"

	"ufresher/internal/app/catalog"
	"ufresher/internal/app/chat"
	"ufresher/internal/pkg/resp"
)

// RoomsResponse lists the chat rooms with their live presence.
type RoomsResponse struct {
	Rooms       []chat.RoomStatus `json:"rooms"`
	TotalUnread int               `json:"totalUnread"`
	Badge       string            `json:"badge"`
}

// HandleListRooms answers every chat room, its online count and the unread badge.
func HandleListRooms(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		total := catalog.TotalUnread()
		resp.RespondSuccess(w, r, RoomsResponse{
			Rooms:       deps.Manager.Rooms(),
			TotalUnread: total,
			Badge:       catalog.UnreadBadge(total),
		})
	}
}
