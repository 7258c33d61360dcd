/*
Package jwt issues and verifies the HS256 device tokens handed to clients.
*/
package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

const (
	// DeviceTokenExpiration is how long a device token, and so the saved session, stays reachable.
	DeviceTokenExpiration = 30 * 24 * time.Hour

	// TokenIssuer identifies the issuer of the token.
	TokenIssuer = "UFresher-Server"
)

// GenerateToken signs payload with secretKey, valid for duration.
func GenerateToken(payload *Payload, secretKey string, duration time.Duration) (string, error) {
	if payload.DeviceID == "" {
		return "", errors.New("device id is required")
	}

	now := time.Now()

	payload.StandardClaims = jwt.StandardClaims{
		ExpiresAt: now.Add(duration).Unix(),
		IssuedAt:  now.Unix(),
		Issuer:    TokenIssuer,
		Subject:   payload.DeviceID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)

	return token.SignedString([]byte(secretKey))
}

// ParseToken verifies tokenString with secretKey and returns its payload.
func ParseToken(tokenString string, secretKey string) (*Payload, error) {
	claims := &Payload{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	if claims.DeviceID == "" {
		return nil, errors.New("token has no device id")
	}

	return claims, nil
}
