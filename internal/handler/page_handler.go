package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"ufresher/internal/app/page"
	"ufresher/internal/pkg/logx"
	"ufresher/internal/pkg/resp"
)

// HandleRenderPage answers the view model of the {page} URL parameter. Query
// parameters are the page arguments (collegeId, mentorId) and list filters.
// Unknown pages render the landing page.
func HandleRenderPage(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, customErr := deps.currentUser(r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		requested := chi.URLParam(r, "page")
		if _, ok := page.Parse(requested); !ok {
			logx.Debug("Unknown page requested, rendering landing", "page", requested)
		}

		view, err := page.Render(page.Page(requested), r.URL.Query(), u)
		if err != nil {
			resp.RespondError(w, r, toCustomError(err))
			return
		}

		resp.RespondSuccess(w, r, view)
	}
}
