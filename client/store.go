package client

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultHeartbeatInterval is how often an authenticated session
// refreshes its presence.
const DefaultHeartbeatInterval = 30 * time.Second

// ErrIncompleteAuthData is returned by Set when the user or token is
// missing. The mutation is aborted locally; nothing is persisted.
var ErrIncompleteAuthData = errors.New("auth data must include both user and token")

// Store owns the current Session and its lifecycle: hydration at
// startup, set on login/registration/profile update, clear on logout,
// and the presence heartbeat in between. All mutation goes through the
// store; the Session values themselves are immutable.
type Store struct {
	mu       sync.Mutex
	session  Session
	keys     Keystore
	api      *Client
	logger   zerolog.Logger
	interval time.Duration
	hb       *heartbeat
}

// NewStore creates a session store. interval <= 0 selects the default
// 30-second heartbeat.
func NewStore(api *Client, keys Keystore, logger zerolog.Logger, interval time.Duration) *Store {
	if interval <= 0 {
		interval = DefaultHeartbeatInterval
	}
	return &Store{
		keys:     keys,
		api:      api,
		logger:   logger,
		interval: interval,
	}
}

// Session returns the current session value.
func (s *Store) Session() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// Hydrate loads the persisted user and token. When a token is present
// the session is treated as authenticated, an online update is pushed,
// and the heartbeat starts. The session is marked hydrated whatever
// happens, so dependent code never waits on a failed load.
func (s *Store) Hydrate(ctx context.Context) Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.Hydrated {
		return s.session
	}

	user, token := s.loadPersisted()
	s.session = s.session.hydrated(user, token)

	if s.session.Authenticated {
		if err := s.api.UpdateOnlineStatus(ctx, token, true); err != nil {
			s.logger.Warn().Err(err).Msg("online status update on hydrate failed")
		}
		s.startHeartbeatLocked()
	}

	return s.session
}

// Set installs a new user+token pair after login, registration, or a
// profile update. Both parts are required; persisting them together
// keeps the two keys in step.
func (s *Store) Set(ctx context.Context, user *User, token string) error {
	if user == nil || token == "" {
		s.logger.Error().Msg("missing required fields in auth data")
		return ErrIncompleteAuthData
	}

	encoded, err := json.Marshal(user)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.keys.Set(keyUser, encoded); err != nil {
		return err
	}
	if err := s.keys.Set(keyToken, []byte(token)); err != nil {
		return err
	}

	s.session = s.session.authenticated(*user, token)

	if err := s.api.UpdateOnlineStatus(ctx, token, true); err != nil {
		s.logger.Warn().Err(err).Msg("online status update on set failed")
	}

	s.stopHeartbeatLocked()
	s.startHeartbeatLocked()

	return nil
}

// Clear logs the session out: both keys are removed, the heartbeat
// stops, and when a token existed an offline update is pushed
// best-effort. A failed push is logged, never surfaced.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token := s.session.Token

	if err := s.keys.Delete(keyUser); err != nil {
		s.logger.Warn().Err(err).Msg("failed to remove persisted user")
	}
	if err := s.keys.Delete(keyToken); err != nil {
		s.logger.Warn().Err(err).Msg("failed to remove persisted token")
	}

	s.session = s.session.cleared()
	s.stopHeartbeatLocked()

	if token != "" {
		if err := s.api.UpdateOnlineStatus(ctx, token, false); err != nil {
			s.logger.Warn().Err(err).Msg("offline status update failed")
		}
	}
}

// Close tears down the store, cancelling any running heartbeat without
// touching persisted state.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopHeartbeatLocked()
}

func (s *Store) loadPersisted() (*User, string) {
	var user *User
	if raw, err := s.keys.Get(keyUser); err == nil {
		var u User
		if err := json.Unmarshal(raw, &u); err == nil {
			user = &u
		} else {
			s.logger.Warn().Err(err).Msg("corrupt persisted user discarded")
		}
	}

	var token string
	if raw, err := s.keys.Get(keyToken); err == nil {
		token = string(raw)
	}

	return user, token
}

// startHeartbeatLocked starts the heartbeat for the current session.
// stopHeartbeatLocked must have run first; the pair keeps at most one
// timer alive per store.
func (s *Store) startHeartbeatLocked() {
	if s.hb != nil {
		return
	}
	s.hb = startHeartbeat(s.api, s.session.Token, s.interval, s.logger)
}

func (s *Store) stopHeartbeatLocked() {
	if s.hb == nil {
		return
	}
	s.hb.stop()
	s.hb = nil
}
