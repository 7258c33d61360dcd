package logx

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnonymizeIP(t *testing.T) {
	cases := map[string]string{
		"203.0.113.42:5123":         "203.0.113.0",
		"203.0.113.42":              "203.0.113.0",
		"127.0.0.1:80":              "127.0.0.1",
		"[2001:db8:1:2:3:4:5:6]:80": "2001:db8:1:2::",
		"not-an-ip":                 "unknown_ip",
	}

	for in, want := range cases {
		assert.Equal(t, want, anonymizeIP(in), in)
	}
}

func TestRequestLoggerWritesStatus(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)

	h := RequestLogger()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusTeapot, rec.Code)
	assert.Contains(t, buf.String(), `"status":418`)
	assert.Contains(t, buf.String(), `"request_uri":"/health"`)
}
