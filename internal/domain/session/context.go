// Package session holds the per-user transient terminal state: where the user
// currently is (lobby, room, or direct message), which rooms they can see, and
// the raw lines they have entered. Nothing in this package is persisted.
package session

import "github.com/tcacomm/tca-server/internal/domain/model"

// LocationKind identifies the variant of a session's current location.
type LocationKind int

const (
	// LocationLobby is the default location after login.
	LocationLobby LocationKind = iota
	// LocationRoom means the user has joined a room.
	LocationRoom
	// LocationDM means the user is in a direct-message exchange.
	LocationDM
)

// Location is a tagged variant: exactly one of Room or Peer is meaningful,
// selected by Kind. Entering one location always clears the other.
type Location struct {
	Kind LocationKind
	Room string // set when Kind == LocationRoom
	Peer string // set when Kind == LocationDM
}

// Lobby returns the lobby location.
func Lobby() Location { return Location{Kind: LocationLobby} }

// InRoom returns a room location.
func InRoom(room string) Location { return Location{Kind: LocationRoom, Room: room} }

// InDM returns a direct-message location.
func InDM(peer string) Location { return Location{Kind: LocationDM, Peer: peer} }

// Limits bounds the in-memory growth of a context. Zero values fall back to
// the package defaults; the bound is always explicit, never unlimited.
type Limits struct {
	History int // max raw input lines retained
	Backlog int // max buffered display lines retained per location
}

const (
	defaultHistoryLimit = 200
	defaultBacklogLimit = 100
)

func (l Limits) withDefaults() Limits {
	if l.History <= 0 {
		l.History = defaultHistoryLimit
	}
	if l.Backlog <= 0 {
		l.Backlog = defaultBacklogLimit
	}
	return l
}

// Context is the per-logged-in-user state machine. A context is owned by a
// single user's command stream and has exactly one writer, so it needs no
// internal locking. Concurrent registry access is synchronized by Registry.
type Context struct {
	Username     string
	Role         model.Role
	location     Location
	visibleRooms []string
	history      []string
	backlog      []string
	limits       Limits
}

// NewContext creates a logged-in context starting in the lobby.
func NewContext(username string, role model.Role, limits Limits) *Context {
	return &Context{
		Username: username,
		Role:     role,
		location: Lobby(),
		limits:   limits.withDefaults(),
	}
}

// Location returns the current location variant.
func (c *Context) Location() Location { return c.location }

// VisibleRooms returns the room names visible to this user, in listing order.
func (c *Context) VisibleRooms() []string {
	out := make([]string, len(c.visibleRooms))
	copy(out, c.visibleRooms)
	return out
}

// SetVisibleRooms replaces the visible room list (after login or a grant).
func (c *Context) SetVisibleRooms(rooms []string) {
	c.visibleRooms = make([]string, len(rooms))
	copy(c.visibleRooms, rooms)
}

// CanSee reports whether the named room is in the visible set.
func (c *Context) CanSee(room string) bool {
	for _, r := range c.visibleRooms {
		if r == room {
			return true
		}
	}
	return false
}

// EnterRoom moves the context into a room, clearing any buffered backlog.
// Visibility must be checked by the caller before transitioning.
func (c *Context) EnterRoom(room string) {
	c.location = InRoom(room)
	c.backlog = nil
}

// EnterDM moves the context into a direct-message exchange, clearing the
// backlog. Any string is a valid peer; no existence check is performed.
func (c *Context) EnterDM(peer string) {
	c.location = InDM(peer)
	c.backlog = nil
}

// ExitLocation returns to the lobby from a room or DM, clearing the backlog.
// It reports whether the context was actually in a room or DM.
func (c *Context) ExitLocation() (Location, bool) {
	prev := c.location
	if prev.Kind == LocationLobby {
		return prev, false
	}
	c.location = Lobby()
	c.backlog = nil
	return prev, true
}

// RecordInput appends a raw input line to the command history, evicting the
// oldest entries beyond the configured bound. Malformed input is recorded too.
func (c *Context) RecordInput(line string) {
	c.history = append(c.history, line)
	if overflow := len(c.history) - c.limits.History; overflow > 0 {
		c.history = append(c.history[:0], c.history[overflow:]...)
	}
}

// History returns a copy of the retained raw input lines, oldest first.
func (c *Context) History() []string {
	out := make([]string, len(c.history))
	copy(out, c.history)
	return out
}

// AppendBacklog buffers display lines for the current location, evicting the
// oldest entries beyond the configured bound.
func (c *Context) AppendBacklog(lines ...string) {
	c.backlog = append(c.backlog, lines...)
	if overflow := len(c.backlog) - c.limits.Backlog; overflow > 0 {
		c.backlog = append(c.backlog[:0], c.backlog[overflow:]...)
	}
}

// Backlog returns a copy of the buffered display lines, oldest first.
func (c *Context) Backlog() []string {
	out := make([]string, len(c.backlog))
	copy(out, c.backlog)
	return out
}
