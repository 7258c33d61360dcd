package jwt

import "github.com/golang-jwt/jwt"

// Payload is the claim set of a device token.
// A device token identifies one client and therefore one local storage namespace;
// it outlives logins and logouts on that client.
type Payload struct {
	jwt.StandardClaims `json:"standard_claims"`

	// DeviceID names the client's local storage namespace.
	DeviceID string `json:"device_id"`

	// UserID is the id of the user logged in when the token was issued, if any.
	UserID string `json:"user_id,omitempty"`

	// Role mirrors the logged-in user's role, empty when anonymous.
	Role string `json:"role,omitempty"`
}
