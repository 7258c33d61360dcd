package errs

import "net/http"

// errorMap holds the template for every registered error code.
var errorMap = map[int]CustomError{
	// 1xxx
	ErrInvalidParams:         {Code: ErrInvalidParams, Message: "Invalid request parameters.", Status: http.StatusBadRequest},
	ErrUnsupportedMediaType:  {Code: ErrUnsupportedMediaType, Message: "Unsupported request format.", Status: http.StatusUnsupportedMediaType},
	ErrInvalidJSONFormat:     {Code: ErrInvalidJSONFormat, Message: "Unsupported request format.", Status: http.StatusBadRequest},
	ErrExtraContentInBody:    {Code: ErrExtraContentInBody, Message: "Request contains unexpected data.", Status: http.StatusBadRequest},
	ErrRequestEntityTooLarge: {Code: ErrRequestEntityTooLarge, Message: "Request size is too large.", Status: http.StatusRequestEntityTooLarge},
	ErrRateLimitExceeded:     {Code: ErrRateLimitExceeded, Message: "Too many requests. Please try again later.", Status: http.StatusTooManyRequests},
	ErrValidationFailed:      {Code: ErrValidationFailed, Message: "Please fix the highlighted fields.", Status: http.StatusUnprocessableEntity},

	// 2xxx
	ErrCollegeNotFound:       {Code: ErrCollegeNotFound, Message: "College not found.", Status: http.StatusNotFound},
	ErrMentorNotFound:        {Code: ErrMentorNotFound, Message: "Mentor not found.", Status: http.StatusNotFound},
	ErrRoomNotFound:          {Code: ErrRoomNotFound, Message: "Chat room %q not found.", Status: http.StatusNotFound},
	ErrRoomIsFull:            {Code: ErrRoomIsFull, Message: "This chat room is full."},
	ErrMessageContentTooLong: {Code: ErrMessageContentTooLong, Message: "Message is too long."},

	// 3xxx
	ErrPowChallengeRequired: {Code: ErrPowChallengeRequired, Message: "Verification required. Please try again.", Status: http.StatusForbidden},
	ErrPowChallengeInvalid:  {Code: ErrPowChallengeInvalid, Message: "Verification failed. Please try again.", Status: http.StatusForbidden},
	ErrSessionKicked:        {Code: ErrSessionKicked, Message: "You were signed in on another tab."},
	ErrInvalidCredentials:   {Code: ErrInvalidCredentials, Message: "Invalid Credentials: please check your email and password", Status: http.StatusUnauthorized},
	ErrNotLoggedIn:          {Code: ErrNotLoggedIn, Message: "Please sign in to continue.", Status: http.StatusUnauthorized},
	ErrRoleForbidden:        {Code: ErrRoleForbidden, Message: "This page is not available for your account.", Status: http.StatusForbidden},
	ErrUnauthorized:         {Code: ErrUnauthorized, Message: "Missing or invalid device token.", Status: http.StatusUnauthorized},

	// 5xxx
	ErrUnknown:       {Code: ErrUnknown, Message: "Something went wrong. Please try again.", Status: http.StatusInternalServerError},
	ErrStorageFailed: {Code: ErrStorageFailed, Message: "Could not access saved session.", Status: http.StatusInternalServerError},
}
