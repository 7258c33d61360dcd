/*
Package pow implements a SHA-256 Proof-of-Work gate for write endpoints that
accept anonymous input (sign-up and the mock create actions).

A client fetches a nonce, finds a counter so that sha256(nonce+counter) has
`difficulty` leading hex zeros, and trades the proof for a short-lived token.
*/
package pow

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"ufresher/internal/pkg/errs"
	"ufresher/internal/pkg/resp"
)

const (
	// TokenHeaderKey carries the proof token on guarded requests.
	TokenHeaderKey = "X-PoW-Token"

	// ProofTokenDuration is how long an issued proof token stays valid.
	ProofTokenDuration = 30 * time.Second

	// NonceExpiryDuration is how long a challenge nonce stays valid.
	NonceExpiryDuration = 5 * time.Minute
)

var (
	ErrNonceInvalid    = errors.New("nonce expired or invalid")
	ErrProofTooWeak    = errors.New("proof does not meet difficulty requirement")
	ErrNonceConsumed   = errors.New("nonce consumed by concurrent request")
	ErrTokenNotPresent = errors.New("proof token missing or expired")
)

// Manager tracks outstanding nonces and issued proof tokens.
type Manager struct {
	difficulty int

	mu         sync.Mutex
	nonceStore map[string]time.Time
	tokenStore map[string]time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

// NewManager creates a Manager. A difficulty of 0 disables the gate.
func NewManager(difficulty int) *Manager {
	mgr := &Manager{
		difficulty: difficulty,
		nonceStore: make(map[string]time.Time),
		tokenStore: make(map[string]time.Time),
		stop:       make(chan struct{}),
	}

	go mgr.cleanupExpiredEntries()

	return mgr
}

// Difficulty returns the number of leading zeros a proof must have.
func (m *Manager) Difficulty() int {
	return m.difficulty
}

// Enabled reports whether proofs are required.
func (m *Manager) Enabled() bool {
	return m.difficulty > 0
}

// GenerateNonce issues a new challenge nonce.
func (m *Manager) GenerateNonce() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	nonce := uuid.New().String()
	m.nonceStore[nonce] = time.Now().Add(NonceExpiryDuration)
	return nonce
}

// Satisfies reports whether nonce+counter hashes to the required prefix.
func Satisfies(nonce, counter string, difficulty int) bool {
	hash := sha256.Sum256([]byte(nonce + counter))
	return strings.HasPrefix(hex.EncodeToString(hash[:]), strings.Repeat("0", difficulty))
}

// ValidateProof consumes nonce and returns a proof token if counter solves it.
func (m *Manager) ValidateProof(nonce, counter string) (string, error) {
	if !Satisfies(nonce, counter, m.difficulty) {
		return "", ErrProofTooWeak
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	expiry, ok := m.nonceStore[nonce]
	if !ok {
		return "", ErrNonceInvalid
	}
	delete(m.nonceStore, nonce)

	if time.Now().After(expiry) {
		return "", ErrNonceInvalid
	}

	token := uuid.New().String()
	m.tokenStore[token] = time.Now().Add(ProofTokenDuration)
	return token, nil
}

// CheckProofToken consumes the proof token carried by r (header or "pow_token" query parameter).
func (m *Manager) CheckProofToken(r *http.Request) error {
	token := r.Header.Get(TokenHeaderKey)
	if token == "" {
		token = r.URL.Query().Get("pow_token")
	}

	if token == "" {
		return ErrTokenNotPresent
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	expiry, ok := m.tokenStore[token]
	if !ok || time.Now().After(expiry) {
		return ErrTokenNotPresent
	}
	delete(m.tokenStore, token)

	return nil
}

// Middleware requires a valid proof token when the gate is enabled.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.Enabled() {
			if err := m.CheckProofToken(r); err != nil {
				resp.RespondError(w, r, errs.NewError(errs.ErrPowChallengeRequired))
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

// Stop terminates the cleanup goroutine.
func (m *Manager) Stop() {
	m.stopOnce.Do(func() { close(m.stop) })
}

// cleanupExpiredEntries drops expired nonces and tokens once a minute.
func (m *Manager) cleanupExpiredEntries() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case now := <-ticker.C:
			m.mu.Lock()
			for nonce, expiry := range m.nonceStore {
				if now.After(expiry) {
					delete(m.nonceStore, nonce)
				}
			}
			for token, expiry := range m.tokenStore {
				if now.After(expiry) {
					delete(m.tokenStore, token)
				}
			}
			m.mu.Unlock()
		}
	}
}
