/*
Package randx generates identifiers: UUIDs for devices and messages, and
short Base62 tokens for log-friendly references.
*/
package randx

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

const (
	// Base62Chars is the alphabet used by Ref.
	Base62Chars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// Base62Len is len(Base62Chars).
	Base62Len = int64(len(Base62Chars))

	// RefLength is the length of strings returned by Ref.
	RefLength = 8
)

// DeviceID returns a new device identifier (UUID v4).
func DeviceID() string {
	return uuid.New().String()
}

// IsValidDeviceID reports whether id parses as a UUID.
func IsValidDeviceID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// MessageID returns a new chat message identifier (UUID v4).
func MessageID() string {
	return uuid.New().String()
}

// Ref returns a random Base62 string of RefLength characters, used to tag
// accepted mock submissions in logs and responses.
func Ref() (string, error) {
	result := make([]byte, RefLength)

	for i := range RefLength {
		num, err := rand.Int(rand.Reader, big.NewInt(Base62Len))
		if err != nil {
			return "", fmt.Errorf("failed to generate random reference: %w", err)
		}
		result[i] = Base62Chars[num.Int64()]
	}

	return string(result), nil
}

// IsValidRef reports whether s has the shape produced by Ref.
func IsValidRef(s string) bool {
	if len(s) != RefLength {
		return false
	}

	for _, char := range s {
		if !strings.ContainsRune(Base62Chars, char) {
			return false
		}
	}

	return true
}
