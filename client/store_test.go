package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// presenceRecorder is a fake API that records every online-status push.
type presenceRecorder struct {
	mu      sync.Mutex
	updates []bool
	tokens  []string
}

func (p *presenceRecorder) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/online-status", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			IsOnline bool `json:"isOnline"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)

		p.mu.Lock()
		p.updates = append(p.updates, body.IsOnline)
		p.tokens = append(p.tokens, r.Header.Get("Authorization"))
		p.mu.Unlock()

		_ = json.NewEncoder(w).Encode(map[string]bool{"success": true})
	})
	return mux
}

func (p *presenceRecorder) snapshot() []bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]bool(nil), p.updates...)
}

func newTestStore(t *testing.T, interval time.Duration) (*Store, *presenceRecorder, *FileKeystore) {
	t.Helper()

	recorder := &presenceRecorder{}
	server := httptest.NewServer(recorder.handler())
	t.Cleanup(server.Close)

	keys, err := NewFileKeystore(t.TempDir())
	require.NoError(t, err)

	api := NewClient(server.URL, server.Client())
	store := NewStore(api, keys, zerolog.Nop(), interval)
	t.Cleanup(store.Close)

	return store, recorder, keys
}

func TestStore_HydrateEmpty(t *testing.T) {
	store, recorder, _ := newTestStore(t, time.Minute)

	session := store.Hydrate(context.Background())

	require.True(t, session.Hydrated)
	require.False(t, session.Authenticated)
	require.Nil(t, session.User)
	require.Empty(t, recorder.snapshot())
}

func TestStore_HydratePersistedSession(t *testing.T) {
	store, recorder, keys := newTestStore(t, time.Minute)

	user := User{ID: 7, Name: "Ravi", Email: "ravi@example.com", Role: "employee"}
	encoded, err := json.Marshal(user)
	require.NoError(t, err)
	require.NoError(t, keys.Set(keyUser, encoded))
	require.NoError(t, keys.Set(keyToken, []byte("persisted-token")))

	session := store.Hydrate(context.Background())

	require.True(t, session.Hydrated)
	require.True(t, session.Authenticated)
	require.Equal(t, "ravi@example.com", session.User.Email)
	require.Equal(t, "persisted-token", session.Token)

	// Hydration with a token pushes an immediate online update.
	require.Equal(t, []bool{true}, recorder.snapshot())
}

func TestStore_HydrateIsIdempotent(t *testing.T) {
	store, recorder, _ := newTestStore(t, time.Minute)

	store.Hydrate(context.Background())
	store.Hydrate(context.Background())

	require.Empty(t, recorder.snapshot())
}

func TestStore_SetRequiresUserAndToken(t *testing.T) {
	store, _, keys := newTestStore(t, time.Minute)

	err := store.Set(context.Background(), nil, "token")
	require.ErrorIs(t, err, ErrIncompleteAuthData)

	err = store.Set(context.Background(), &User{ID: 1}, "")
	require.ErrorIs(t, err, ErrIncompleteAuthData)

	// Nothing was persisted by the aborted mutations.
	_, err = keys.Get(keyToken)
	require.ErrorIs(t, err, ErrKeyNotFound)
	require.False(t, store.Session().Authenticated)
}

func TestStore_SetPersistsAndPushesOnline(t *testing.T) {
	store, recorder, keys := newTestStore(t, time.Minute)

	user := &User{ID: 3, Name: "Asha", Email: "asha@example.com", Role: "employee"}
	require.NoError(t, store.Set(context.Background(), user, "fresh-token"))

	session := store.Session()
	require.True(t, session.Authenticated)
	require.True(t, session.Hydrated)

	raw, err := keys.Get(keyToken)
	require.NoError(t, err)
	require.Equal(t, "fresh-token", string(raw))

	raw, err = keys.Get(keyUser)
	require.NoError(t, err)
	var persisted User
	require.NoError(t, json.Unmarshal(raw, &persisted))
	require.Equal(t, user.Email, persisted.Email)

	require.Equal(t, []bool{true}, recorder.snapshot())
}

func TestStore_ClearRemovesStateAndPushesOffline(t *testing.T) {
	store, recorder, keys := newTestStore(t, time.Minute)

	user := &User{ID: 3, Name: "Asha", Email: "asha@example.com"}
	require.NoError(t, store.Set(context.Background(), user, "fresh-token"))

	store.Clear(context.Background())

	session := store.Session()
	require.False(t, session.Authenticated)
	require.True(t, session.Hydrated)
	require.Nil(t, session.User)

	_, err := keys.Get(keyUser)
	require.ErrorIs(t, err, ErrKeyNotFound)
	_, err = keys.Get(keyToken)
	require.ErrorIs(t, err, ErrKeyNotFound)

	require.Equal(t, []bool{true, false}, recorder.snapshot())
}

func TestStore_ClearWithoutTokenSkipsOfflinePush(t *testing.T) {
	store, recorder, _ := newTestStore(t, time.Minute)

	store.Clear(context.Background())

	require.Empty(t, recorder.snapshot())
}

func TestStore_HeartbeatRunsWhileAuthenticated(t *testing.T) {
	store, recorder, _ := newTestStore(t, 20*time.Millisecond)

	user := &User{ID: 5, Name: "Beat", Email: "beat@example.com"}
	require.NoError(t, store.Set(context.Background(), user, "hb-token"))

	require.Eventually(t, func() bool {
		updates := recorder.snapshot()
		return len(updates) >= 3 // the Set push plus at least two beats
	}, 2*time.Second, 10*time.Millisecond)

	for _, online := range recorder.snapshot() {
		require.True(t, online)
	}

	// Clearing stops the ticker; after the offline push no more updates
	// arrive.
	store.Clear(context.Background())
	count := len(recorder.snapshot())
	time.Sleep(100 * time.Millisecond)
	require.Equal(t, count, len(recorder.snapshot()))

	updates := recorder.snapshot()
	require.False(t, updates[len(updates)-1])
}
