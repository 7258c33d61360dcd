/*
Package handler provides HTTP handler functions for device tokens, logins and
sign-ups.
*/
package handler

import (
	"errors"
	"net/http"

	"ufresher/internal/app/localstore"
	"ufresher/internal/app/session"
	"ufresher/internal/app/user"
	"ufresher/internal/app/validate"
	"ufresher/internal/pkg/auth/jwt"
	"ufresher/internal/pkg/errs"
	"ufresher/internal/pkg/logx"
	"ufresher/internal/pkg/randx"
	"ufresher/internal/pkg/req"
	"ufresher/internal/pkg/resp"
)

// SessionResponse is returned by every endpoint that changes the session.
type SessionResponse struct {
	Token    string          `json:"token,omitempty"`
	User     *user.User      `json:"user"`
	Notice   *session.Notice `json:"notice,omitempty"`
	Redirect string          `json:"redirect,omitempty"`
}

// issueToken signs a device token for deviceID describing u.
func issueToken(deps *AppDeps, deviceID string, u *user.User) (string, error) {
	payload := &jwt.Payload{DeviceID: deviceID}
	if u != nil {
		payload.UserID = u.ID
		payload.Role = string(u.Role)
	}
	return jwt.GenerateToken(payload, deps.Config.JWTSecret, jwt.DeviceTokenExpiration)
}

// HandleLogin validates the form, logs the device in and returns a fresh device token.
// A caller presenting a valid token keeps its device ID, and so its storage namespace.
func HandleLogin(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input validate.LoginForm
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if fields := input.Validate(); !fields.Empty() {
			resp.RespondError(w, r, errs.NewError(errs.ErrValidationFailed).WithFields(fields))
			return
		}

		deviceID := randx.DeviceID()
		if identity := jwt.GetPayloadFromContext(r); identity != nil && randx.IsValidDeviceID(identity.DeviceID) {
			deviceID = identity.DeviceID
		}

		store := session.NewStore(localstore.Scope(deps.Storage, deviceID))
		u, notice, err := store.Login(r.Context(), input.Email, input.Password)
		if err != nil {
			if errors.Is(err, user.ErrInvalidCredentials) {
				resp.RespondError(w, r, errs.NewError(errs.ErrInvalidCredentials))
				return
			}
			resp.RespondError(w, r, storageFailure(err, "device_id", deviceID))
			return
		}

		token, err := issueToken(deps, deviceID, u)
		if err != nil {
			logx.Error(err, "login: jwt generation failed", "user_id", u.ID)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		resp.RespondSuccess(w, r, SessionResponse{
			Token:    token,
			User:     u,
			Notice:   &notice,
			Redirect: u.Role.DashboardPage(),
		})
	}
}

// HandleLogout clears the saved session of the calling device. It always succeeds
// for callers without a device, which have nothing to clear.
func HandleLogout(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := jwt.GetPayloadFromContext(r)
		if identity == nil {
			resp.RespondSuccess(w, r, SessionResponse{
				Notice:   &session.Notice{Level: "success", Title: "Logged out successfully"},
				Redirect: "landing",
			})
			return
		}

		store := session.NewStore(localstore.Scope(deps.Storage, identity.DeviceID))
		notice, err := store.Logout(r.Context())
		if err != nil {
			resp.RespondError(w, r, storageFailure(err, "device_id", identity.DeviceID))
			return
		}

		token, err := issueToken(deps, identity.DeviceID, nil)
		if err != nil {
			logx.Error(err, "logout: jwt generation failed", "device_id", identity.DeviceID)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		resp.RespondSuccess(w, r, SessionResponse{
			Token:    token,
			Notice:   &notice,
			Redirect: "landing",
		})
	}
}

// HandleSignup validates a registration form. Accounts are not created.
func HandleSignup(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input validate.SignupForm
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		receipt, err := deps.Actions.Signup(r.Context(), input)
		if err != nil {
			resp.RespondError(w, r, toCustomError(err))
			return
		}

		resp.RespondSuccess(w, r, receipt)
	}
}
