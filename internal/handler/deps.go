package handler

import (
	"context"
	"errors"
	"net/http"

	"ufresher/internal/app/actions"
	"ufresher/internal/app/catalog"
	"ufresher/internal/app/chat"
	"ufresher/internal/app/localstore"
	"ufresher/internal/app/page"
	"ufresher/internal/app/session"
	"ufresher/internal/app/user"
	"ufresher/internal/configs"
	"ufresher/internal/pkg/auth/jwt"
	"ufresher/internal/pkg/errs"
	"ufresher/internal/pkg/logx"
	"ufresher/internal/pkg/pow"
	"ufresher/internal/pkg/resp"
)

type AppDeps struct {
	Config  *configs.AppConfig
	Storage localstore.Storage
	Manager *chat.Manager
	Actions *actions.Service
	Pow     *pow.Manager
}

// requireDevice rejects requests that carry no valid device token.
func requireDevice(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if jwt.GetPayloadFromContext(r) == nil {
			logx.Info("Request rejected: No device token.", "path", r.URL.Path)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// sessionFor opens the session store of the calling device.
// Callers without a device token get a nil store and a nil user.
func (d *AppDeps) sessionFor(r *http.Request) (*session.Store, *user.User, *errs.CustomError) {
	identity := jwt.GetPayloadFromContext(r)
	if identity == nil {
		return nil, nil, nil
	}

	store := session.NewStore(localstore.Scope(d.Storage, identity.DeviceID))
	u, err := store.Load(r.Context())
	if err != nil {
		return nil, nil, storageFailure(err, "device_id", identity.DeviceID)
	}
	return store, u, nil
}

// currentUser is sessionFor for handlers that only read the session.
func (d *AppDeps) currentUser(r *http.Request) (*user.User, *errs.CustomError) {
	_, u, customErr := d.sessionFor(r)
	return u, customErr
}

// storageFailure logs a local storage error with the given key-value fields.
func storageFailure(err error, fields ...any) *errs.CustomError {
	if errors.Is(err, context.Canceled) {
		logx.Warn("Session storage call canceled", fields...)
	} else {
		logx.Error(err, "Session storage failed", fields...)
	}
	return errs.NewError(errs.ErrStorageFailed)
}

// toCustomError maps domain errors to response errors. Unrecognised errors
// become ErrUnknown.
func toCustomError(err error) *errs.CustomError {
	if fe, ok := actions.AsFormError(err); ok {
		return errs.NewError(errs.ErrValidationFailed).WithFields(fe.Fields)
	}

	switch {
	case errors.Is(err, user.ErrInvalidCredentials):
		return errs.NewError(errs.ErrInvalidCredentials)
	case errors.Is(err, session.ErrNoSession), errors.Is(err, page.ErrLoginRequired):
		return errs.NewError(errs.ErrNotLoggedIn)
	case errors.Is(err, page.ErrWrongRole):
		return errs.NewError(errs.ErrRoleForbidden)
	case errors.Is(err, page.ErrBadParam):
		return errs.NewError(errs.ErrInvalidParams)
	case errors.Is(err, catalog.ErrCollegeNotFound):
		return errs.NewError(errs.ErrCollegeNotFound)
	case errors.Is(err, catalog.ErrMentorNotFound):
		return errs.NewError(errs.ErrMentorNotFound)
	}

	return errs.From(err)
}
