package jwt

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ufresher/internal/pkg/logx"
)

const testSecret = "test-secret"

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(&Payload{DeviceID: "dev-1", UserID: "fresher1", Role: "fresher"}, testSecret, time.Hour)
	require.NoError(t, err)

	payload, err := ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "dev-1", payload.DeviceID)
	assert.Equal(t, "fresher1", payload.UserID)
	assert.Equal(t, "fresher", payload.Role)
	assert.Equal(t, TokenIssuer, payload.Issuer)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken(&Payload{DeviceID: "dev-1"}, testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, "other")
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	token, err := GenerateToken(&Payload{DeviceID: "dev-1"}, testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, testSecret)
	assert.Error(t, err)
}

func TestGenerateTokenNeedsDevice(t *testing.T) {
	_, err := GenerateToken(&Payload{}, testSecret, time.Hour)
	assert.Error(t, err)
}

func TestIdentityExtractorMiddleware(t *testing.T) {
	logx.SetOutput(io.Discard)

	token, err := GenerateToken(&Payload{DeviceID: "dev-9"}, testSecret, time.Hour)
	require.NoError(t, err)

	var seen *Payload
	h := IdentityExtractorMiddleware(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetPayloadFromContext(r)
	}))

	r := httptest.NewRequest(http.MethodGet, "/api/session", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	h.ServeHTTP(httptest.NewRecorder(), r)
	require.NotNil(t, seen)
	assert.Equal(t, "dev-9", seen.DeviceID)

	seen = nil
	r = httptest.NewRequest(http.MethodGet, "/ws/rooms/general?token="+token, nil)
	h.ServeHTTP(httptest.NewRecorder(), r)
	require.NotNil(t, seen)

	seen = &Payload{}
	r = httptest.NewRequest(http.MethodGet, "/api/session", nil)
	r.Header.Set("Authorization", "Bearer garbage")
	h.ServeHTTP(httptest.NewRecorder(), r)
	assert.Nil(t, seen)
}
