package session

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcacomm/tca-server/internal/domain/model"
)

func TestContext_StartsInLobby(t *testing.T) {
	t.Parallel()
	ctx := NewContext("alice", model.RoleUser, Limits{})

	assert.Equal(t, LocationLobby, ctx.Location().Kind)
	assert.Empty(t, ctx.History())
	assert.Empty(t, ctx.Backlog())
}

func TestContext_LocationIsExclusive(t *testing.T) {
	t.Parallel()
	ctx := NewContext("alice", model.RoleUser, Limits{})

	ctx.EnterRoom("general")
	loc := ctx.Location()
	assert.Equal(t, LocationRoom, loc.Kind)
	assert.Equal(t, "general", loc.Room)
	assert.Empty(t, loc.Peer)

	ctx.EnterDM("bob")
	loc = ctx.Location()
	assert.Equal(t, LocationDM, loc.Kind)
	assert.Equal(t, "bob", loc.Peer)
	assert.Empty(t, loc.Room)
}

func TestContext_SwitchingClearsBacklog(t *testing.T) {
	t.Parallel()
	ctx := NewContext("alice", model.RoleUser, Limits{})

	ctx.EnterRoom("general")
	ctx.AppendBacklog("[10:00:00] bob: hi")
	require.Len(t, ctx.Backlog(), 1)

	ctx.EnterDM("bob")
	assert.Empty(t, ctx.Backlog(), "entering a DM must clear the room backlog")

	ctx.AppendBacklog("[10:01:00] alice: hey")
	ctx.EnterRoom("general")
	assert.Empty(t, ctx.Backlog(), "entering a room must clear the DM backlog")
}

func TestContext_ExitLocation(t *testing.T) {
	t.Parallel()
	ctx := NewContext("alice", model.RoleUser, Limits{})

	prev, ok := ctx.ExitLocation()
	assert.False(t, ok, "exit from lobby is a no-op")
	assert.Equal(t, LocationLobby, prev.Kind)

	ctx.EnterRoom("general")
	ctx.AppendBacklog("line")
	prev, ok = ctx.ExitLocation()
	require.True(t, ok)
	assert.Equal(t, LocationRoom, prev.Kind)
	assert.Equal(t, "general", prev.Room)
	assert.Equal(t, LocationLobby, ctx.Location().Kind)
	assert.Empty(t, ctx.Backlog())
}

func TestContext_HistoryIsBounded(t *testing.T) {
	t.Parallel()
	ctx := NewContext("alice", model.RoleUser, Limits{History: 3})

	for i := 0; i < 5; i++ {
		ctx.RecordInput(fmt.Sprintf("/join room%d", i))
	}

	got := ctx.History()
	require.Len(t, got, 3)
	assert.Equal(t, []string{"/join room2", "/join room3", "/join room4"}, got)
}

func TestContext_BacklogIsBounded(t *testing.T) {
	t.Parallel()
	ctx := NewContext("alice", model.RoleUser, Limits{Backlog: 2})
	ctx.EnterRoom("general")

	ctx.AppendBacklog("one", "two", "three")
	assert.Equal(t, []string{"two", "three"}, ctx.Backlog())
}

func TestContext_VisibleRooms(t *testing.T) {
	t.Parallel()
	ctx := NewContext("alice", model.RoleUser, Limits{})

	ctx.SetVisibleRooms([]string{"general", "ops"})
	assert.True(t, ctx.CanSee("ops"))
	assert.False(t, ctx.CanSee("secret"))

	// Returned slice is a copy; mutating it must not affect the context.
	rooms := ctx.VisibleRooms()
	rooms[0] = "mutated"
	assert.True(t, ctx.CanSee("general"))
}

func TestRegistry_Lifecycle(t *testing.T) {
	t.Parallel()
	reg := NewRegistry(Limits{})

	ctx := reg.Create("sid-1", "alice", model.RoleAdmin)
	require.NotNil(t, ctx)
	assert.Equal(t, 1, reg.Len())

	got, ok := reg.Get("sid-1")
	require.True(t, ok)
	assert.Same(t, ctx, got)

	_, ok = reg.Get("sid-unknown")
	assert.False(t, ok)

	// Re-login under the same ID resets the terminal state.
	ctx.EnterRoom("general")
	fresh := reg.Create("sid-1", "alice", model.RoleAdmin)
	assert.Equal(t, LocationLobby, fresh.Location().Kind)

	reg.Remove("sid-1")
	assert.Equal(t, 0, reg.Len())
	reg.Remove("sid-1") // idempotent
}
