package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ufresher/internal/app/actions"
	"ufresher/internal/app/user"
	"ufresher/internal/app/validate"
	"ufresher/internal/pkg/req"
	"ufresher/internal/pkg/resp"
)

// handleAction decodes a form of type F and hands it to run together with the
// caller's session, which may be nil.
func handleAction[F any](deps *AppDeps, run func(ctx context.Context, by *user.User, id string, form F) (actions.Receipt, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form F
		if customErr := req.BindJSON(w, r, &form); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		by, customErr := deps.currentUser(r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		receipt, err := run(r.Context(), by, chi.URLParam(r, "id"), form)
		if err != nil {
			resp.RespondError(w, r, toCustomError(err))
			return
		}

		resp.RespondSuccess(w, r, receipt)
	}
}

// HandleCreateProject acknowledges a new project.
func HandleCreateProject(deps *AppDeps) http.HandlerFunc {
	return handleAction(deps, func(ctx context.Context, by *user.User, _ string, f validate.ProjectForm) (actions.Receipt, error) {
		return deps.Actions.CreateProject(ctx, by, f)
	})
}

// HandleCreateCollaboration acknowledges a collaboration proposal for a college.
func HandleCreateCollaboration(deps *AppDeps) http.HandlerFunc {
	return handleAction(deps, deps.Actions.CreateCollaboration)
}

// HandleCreatePost acknowledges a post on a college board.
func HandleCreatePost(deps *AppDeps) http.HandlerFunc {
	return handleAction(deps, deps.Actions.CreatePost)
}

// HandleBookSession books a slot with a mentor.
func HandleBookSession(deps *AppDeps) http.HandlerFunc {
	return handleAction(deps, deps.Actions.BookSession)
}

// HandleMessageMentor acknowledges a direct message to a mentor.
func HandleMessageMentor(deps *AppDeps) http.HandlerFunc {
	return handleAction(deps, deps.Actions.MessageMentor)
}
