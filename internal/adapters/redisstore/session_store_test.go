package redisstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/tcacomm/tca-server/internal/domain/auth"
	"github.com/tcacomm/tca-server/internal/domain/model"
	"github.com/tcacomm/tca-server/internal/testutil"
)

func testSession(id string) domainauth.Session {
	return domainauth.Session{
		ID:        id,
		Username:  "alice",
		Role:      model.RoleUser,
		ExpiresAt: time.Now().Add(30 * time.Minute),
	}
}

func TestSessionStore_SaveAndGet(t *testing.T) {
	client := testutil.SetupTestRedis(t)

	store := NewSessionStore(client)
	ctx := context.Background()

	session := testSession("test-session-1")
	require.NoError(t, store.Save(ctx, session))

	retrieved, err := store.Get(ctx, "test-session-1")
	require.NoError(t, err)
	assert.Equal(t, session.ID, retrieved.ID)
	assert.Equal(t, session.Username, retrieved.Username)
	assert.Equal(t, session.Role, retrieved.Role)
	assert.WithinDuration(t, session.ExpiresAt, retrieved.ExpiresAt, time.Second)
}

func TestSessionStore_GetNonExistent(t *testing.T) {
	client := testutil.SetupTestRedis(t)

	store := NewSessionStore(client)

	_, err := store.Get(context.Background(), "non-existent")
	assert.Equal(t, ErrNotFound, err)
}

func TestSessionStore_SaveExpired(t *testing.T) {
	client := testutil.SetupTestRedis(t)

	store := NewSessionStore(client)

	session := testSession("expired-session")
	session.ExpiresAt = time.Now().Add(-time.Minute)

	err := store.Save(context.Background(), session)
	assert.Error(t, err)
}

func TestSessionStore_Delete(t *testing.T) {
	client := testutil.SetupTestRedis(t)

	store := NewSessionStore(client)
	ctx := context.Background()

	session := testSession("deleted-session")
	require.NoError(t, store.Save(ctx, session))
	require.NoError(t, store.Delete(ctx, session.ID))

	_, err := store.Get(ctx, session.ID)
	assert.Equal(t, ErrNotFound, err)

	// Deleting a missing session is a no-op.
	assert.NoError(t, store.Delete(ctx, session.ID))
}

func TestSessionStore_CustomPrefix(t *testing.T) {
	client := testutil.SetupTestRedis(t)

	defaultStore := NewSessionStore(client)
	scopedStore := NewSessionStoreWithPrefix(client, "other:")
	ctx := context.Background()

	session := testSession("prefixed-session")
	require.NoError(t, scopedStore.Save(ctx, session))

	// Stores with different prefixes do not see each other's sessions.
	_, err := defaultStore.Get(ctx, session.ID)
	assert.Equal(t, ErrNotFound, err)

	retrieved, err := scopedStore.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, retrieved.ID)
}
