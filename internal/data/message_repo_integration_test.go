package data

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcacomm/tca-server/internal/core"
	"github.com/tcacomm/tca-server/internal/testutil"
)

func TestMessageRepo_Integration_InsertAndList(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewMessageRepo(db)
		ctx := context.Background()
		base := testutil.TestTime()

		for i := range 5 {
			_, err := repo.Insert(ctx, core.InsertMessageParams{
				Room:    "general",
				Author:  "alice",
				Content: fmt.Sprintf("message %d", i),
				At:      base.Add(time.Duration(i) * time.Minute),
			})
			require.NoError(t, err)
		}

		msgs, err := repo.ListByRoom(ctx, "general", 3)
		require.NoError(t, err)
		require.Len(t, msgs, 3)
		// Most recent three, oldest first.
		assert.Equal(t, "message 2", msgs[0].Content)
		assert.Equal(t, "message 4", msgs[2].Content)
	})
}

func TestMessageRepo_Integration_DeleteByID(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewMessageRepo(db)
		ctx := context.Background()

		msg, err := repo.Insert(ctx, core.InsertMessageParams{
			Room:    "general",
			Author:  "alice",
			Content: "delete me",
			At:      testutil.TestTime(),
		})
		require.NoError(t, err)

		deleted, err := repo.DeleteByID(ctx, msg.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.DeleteByID(ctx, msg.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestMessageRepo_Integration_DeleteByRoom(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewMessageRepo(db)
		ctx := context.Background()

		for i := range 3 {
			_, err := repo.Insert(ctx, core.InsertMessageParams{
				Room: "a", Author: "alice", Content: fmt.Sprintf("m%d", i), At: testutil.TestTime(),
			})
			require.NoError(t, err)
		}
		_, err := repo.Insert(ctx, core.InsertMessageParams{
			Room: "b", Author: "alice", Content: "other room", At: testutil.TestTime(),
		})
		require.NoError(t, err)

		purged, err := repo.DeleteByRoom(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, int64(3), purged)

		remaining, err := repo.ListByRoom(ctx, "b", 10)
		require.NoError(t, err)
		assert.Len(t, remaining, 1)
	})
}

func TestDirectMessageRepo_Integration_ListBetween(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewDirectMessageRepo(db)
		ctx := context.Background()
		base := testutil.TestTime()

		_, err := repo.Insert(ctx, core.InsertDirectMessageParams{
			Sender: "alice", Recipient: "bob", Content: "hi bob", At: base,
		})
		require.NoError(t, err)
		_, err = repo.Insert(ctx, core.InsertDirectMessageParams{
			Sender: "bob", Recipient: "alice", Content: "hi alice", At: base.Add(time.Minute),
		})
		require.NoError(t, err)
		_, err = repo.Insert(ctx, core.InsertDirectMessageParams{
			Sender: "alice", Recipient: "carol", Content: "unrelated", At: base,
		})
		require.NoError(t, err)

		// Both directions, oldest first, regardless of argument order.
		msgs, err := repo.ListBetween(ctx, "bob", "alice", 10)
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.Equal(t, "hi bob", msgs[0].Content)
		assert.Equal(t, "hi alice", msgs[1].Content)
	})
}
