/*
Package resp writes the standard JSON envelope used by every endpoint.
*/
package resp

import (
	"encoding/json"
	"net/http"

	"ufresher/internal/pkg/errs"
	"ufresher/internal/pkg/logx"
)

// JSONResponse is the envelope returned to clients.
type JSONResponse struct {
	// Code is 0 on success, otherwise a code from package errs.
	Code int `json:"code"`

	// Message is a client-facing status description.
	Message string `json:"message"`

	// Data is the optional payload.
	Data any `json:"data,omitempty"`

	// Fields carries per-field validation messages.
	Fields map[string]string `json:"fields,omitempty"`
}

// RespondJSON sets the headers and writes payload with the given status.
func RespondJSON(w http.ResponseWriter, r *http.Request, httpStatus int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	response, err := json.Marshal(payload)
	if err != nil {
		logx.Error(err, "Error encoding JSON response", "http_status", httpStatus)
		http.Error(w, "Error encoding JSON response", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(httpStatus)
	if _, err := w.Write(response); err != nil {
		logx.Warn("Failed to write response body", "error", err.Error())
	}
}

// RespondSuccess writes a 200 envelope with code 0.
func RespondSuccess(w http.ResponseWriter, r *http.Request, data any) {
	RespondJSON(w, r, http.StatusOK, JSONResponse{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// RespondError writes the envelope for customErr.
func RespondError(w http.ResponseWriter, r *http.Request, customErr *errs.CustomError) {
	if customErr == nil {
		customErr = errs.NewError(errs.ErrUnknown)
	}

	RespondJSON(w, r, customErr.Status, JSONResponse{
		Code:    customErr.Code,
		Message: customErr.Message,
		Fields:  customErr.Fields,
	})
}
