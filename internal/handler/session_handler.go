package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ufresher/internal/app/session"
	"ufresher/internal/app/user"
	"ufresher/internal/pkg/errs"
	"ufresher/internal/pkg/resp"
)

// HandleGetSession returns the saved session of the calling device, or a null user.
func HandleGetSession(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, customErr := deps.currentUser(r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		data := SessionResponse{User: u}
		if u != nil {
			data.Redirect = u.Role.DashboardPage()
		}
		resp.RespondSuccess(w, r, data)
	}
}

type joinFunc func(s *session.Store, ctx context.Context, id string) (*user.User, *session.Notice, error)

// HandleJoinCommunity adds the college in the URL to the joined communities.
func HandleJoinCommunity(deps *AppDeps) http.HandlerFunc {
	return handleJoin(deps, (*session.Store).JoinCommunity)
}

// HandleJoinProject adds the project in the URL to the joined projects.
func HandleJoinProject(deps *AppDeps) http.HandlerFunc {
	return handleJoin(deps, (*session.Store).JoinProject)
}

// handleJoin runs join for the {id} URL parameter. A repeated join answers
// the unchanged record and no notice.
func handleJoin(deps *AppDeps, join joinFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		store, u, customErr := deps.sessionFor(r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}
		if u == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrNotLoggedIn))
			return
		}

		updated, notice, err := join(store, r.Context(), id)
		if err != nil {
			if errors.Is(err, session.ErrNoSession) {
				resp.RespondError(w, r, errs.NewError(errs.ErrNotLoggedIn))
				return
			}
			resp.RespondError(w, r, storageFailure(err, "user_id", u.ID))
			return
		}

		resp.RespondSuccess(w, r, SessionResponse{User: updated, Notice: notice})
	}
}
