package errs

// 1xxx: General Request Handling Errors
const (
	// ErrInvalidParams indicates that request parameter validation failed.
	ErrInvalidParams = 1001

	// ErrUnsupportedMediaType indicates that the request Content-Type is not supported.
	ErrUnsupportedMediaType = 1002

	// ErrInvalidJSONFormat indicates a malformed JSON body.
	ErrInvalidJSONFormat = 1003

	// ErrExtraContentInBody indicates trailing content after the JSON document.
	ErrExtraContentInBody = 1004

	// ErrRequestEntityTooLarge indicates that the request body exceeded the server limit.
	ErrRequestEntityTooLarge = 1006

	// ErrRateLimitExceeded indicates that the client exceeded its request rate.
	ErrRateLimitExceeded = 1007

	// ErrValidationFailed indicates that one or more form fields were rejected.
	ErrValidationFailed = 1008
)

// 2xxx: Catalog and Community Errors
const (
	// ErrCollegeNotFound indicates that no college matches the requested id.
	ErrCollegeNotFound = 2101

	// ErrMentorNotFound indicates that no mentor matches the requested id.
	ErrMentorNotFound = 2102

	// ErrRoomNotFound indicates that no chat room matches the requested id.
	ErrRoomNotFound = 2103

	// ErrRoomIsFull indicates that the chat room reached its capacity.
	ErrRoomIsFull = 2104

	// ErrMessageContentTooLong indicates an oversized chat message.
	ErrMessageContentTooLong = 2201
)

// 3xxx: User, Session and Security Errors
const (
	// ErrPowChallengeRequired indicates that a Proof-of-Work token is required.
	ErrPowChallengeRequired = 3001

	// ErrPowChallengeInvalid indicates an invalid Proof-of-Work proof.
	ErrPowChallengeInvalid = 3002

	// ErrSessionKicked indicates that a newer connection replaced this one.
	ErrSessionKicked = 3004

	// ErrInvalidCredentials indicates that the email/password pair was rejected.
	ErrInvalidCredentials = 3005

	// ErrNotLoggedIn indicates that the operation needs a session.
	ErrNotLoggedIn = 3006

	// ErrRoleForbidden indicates that the session's role cannot open the resource.
	ErrRoleForbidden = 3007

	// ErrUnauthorized indicates a missing or invalid device token.
	ErrUnauthorized = 3401
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified internal error.
	ErrUnknown = 5000

	// ErrStorageFailed indicates a failure of the local storage backend.
	ErrStorageFailed = 5001
)
