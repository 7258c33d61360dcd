/*
Package session implements the session store: the one piece of mutable state
per client. A Store is bound to a single local storage namespace; it keeps the
current user in memory and writes it back under StorageKey after every change.
*/
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"ufresher/internal/app/localstore"
	"ufresher/internal/app/user"
	"ufresher/internal/pkg/logx"
)

// StorageKey is the local storage key holding the serialized session record.
const StorageKey = "ufresher_user"

// ErrNoSession is returned by join operations when nobody is logged in.
var ErrNoSession = errors.New("no active session")

// Notice is the user-facing confirmation of a state change.
type Notice struct {
	Level       string `json:"level"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Store holds the session of one client.
type Store struct {
	storage localstore.Storage
	current *user.User
	logger  zerolog.Logger
}

// NewStore returns an empty Store backed by storage. Call Load to rehydrate.
func NewStore(storage localstore.Storage) *Store {
	return &Store{
		storage: storage,
		logger:  logx.With("session"),
	}
}

// Load reads the persisted session, if any.
// The stored value is trusted as is; an undecodable value is logged and
// treated as no session, and so is a stored null.
func (s *Store) Load(ctx context.Context) (*user.User, error) {
	s.current = nil

	raw, err := s.storage.GetItem(ctx, StorageKey)
	if errors.Is(err, localstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var u *user.User
	if err := json.Unmarshal(raw, &u); err != nil {
		s.logger.Warn().Err(err).Int("bytes", len(raw)).Msg("Ignoring unreadable saved session")
		return nil, nil
	}
	// a stored JSON null means nobody is logged in
	if u == nil {
		return nil, nil
	}

	s.current = u
	return s.Current(), nil
}

// Current returns a copy of the in-memory session, or nil.
func (s *Store) Current() *user.User {
	if s.current == nil {
		return nil
	}
	u := s.current.Clone()
	return &u
}

// Login replaces the session with the demo account matching email and password.
// Any other pair returns user.ErrInvalidCredentials and leaves the session untouched.
func (s *Store) Login(ctx context.Context, email, password string) (*user.User, Notice, error) {
	account, err := user.Authenticate(email, password)
	if err != nil {
		s.logger.Info().Str("email", email).Msg("Login rejected")
		return nil, Notice{
			Level:       "error",
			Title:       "Invalid Credentials",
			Description: "Please check your email and password",
		}, err
	}

	if err := s.persist(ctx, &account); err != nil {
		return nil, Notice{}, err
	}

	s.logger.Info().Str("user_id", account.ID).Str("role", string(account.Role)).Msg("Login succeeded")

	return s.Current(), Notice{
		Level:       "success",
		Title:       "Login Successful!",
		Description: fmt.Sprintf("Welcome back, %s!", account.Name),
	}, nil
}

// Logout clears the in-memory and persisted session unconditionally.
func (s *Store) Logout(ctx context.Context) (Notice, error) {
	s.current = nil

	if err := s.storage.RemoveItem(ctx, StorageKey); err != nil {
		return Notice{}, fmt.Errorf("clear session: %w", err)
	}

	return Notice{Level: "success", Title: "Logged out successfully"}, nil
}

// JoinCommunity adds collegeID to the joined communities.
// Joining twice is a no-op and produces no notice.
func (s *Store) JoinCommunity(ctx context.Context, collegeID string) (*user.User, *Notice, error) {
	return s.join(ctx, func(u *user.User) bool { return u.JoinCommunity(collegeID) }, Notice{
		Level:       "success",
		Title:       "Joined Community!",
		Description: "You can now participate in discussions",
	})
}

// JoinProject adds projectID to the joined projects.
// Joining twice is a no-op and produces no notice.
func (s *Store) JoinProject(ctx context.Context, projectID string) (*user.User, *Notice, error) {
	return s.join(ctx, func(u *user.User) bool { return u.JoinProject(projectID) }, Notice{
		Level:       "success",
		Title:       "Joined Project!",
		Description: "Check your dashboard for project updates",
	})
}

func (s *Store) join(ctx context.Context, add func(*user.User) bool, notice Notice) (*user.User, *Notice, error) {
	if s.current == nil {
		return nil, nil, ErrNoSession
	}

	updated := s.current.Clone()
	if !add(&updated) {
		return s.Current(), nil, nil
	}

	if err := s.persist(ctx, &updated); err != nil {
		return nil, nil, err
	}

	return s.Current(), &notice, nil
}

// persist writes u wholesale and makes it the current session once the write succeeded.
func (s *Store) persist(ctx context.Context, u *user.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := s.storage.SetItem(ctx, StorageKey, raw); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	s.current = u
	return nil
}
