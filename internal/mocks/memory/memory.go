// Package memory contains simple hand-written in-memory doubles for the
// repository ports. These are lightweight, stateful, and suitable for unit
// tests without codegen or a database.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/tcacomm/tca-server/internal/core"
	"github.com/tcacomm/tca-server/internal/data"
	domainauth "github.com/tcacomm/tca-server/internal/domain/auth"
	"github.com/tcacomm/tca-server/internal/domain/model"
)

// Ensure compile-time conformance to the ports.
var (
	_ core.SessionStore            = (*SessionStore)(nil)
	_ core.UserRepository          = (*UserRepo)(nil)
	_ core.RoomRepository          = (*RoomRepo)(nil)
	_ core.MessageRepository       = (*MessageRepo)(nil)
	_ core.DirectMessageRepository = (*DirectMessageRepo)(nil)
	_ core.RetentionRepository     = (*RetentionRepo)(nil)
)

// SessionStore is an in-memory session store for unit tests.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]domainauth.Session
}

// NewSessionStore creates a new in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]domainauth.Session)}
}

func (s *SessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return nil
}

func (s *SessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return domainauth.Session{}, core.ErrSessionNotFound
	}
	if time.Now().After(sess.ExpiresAt) {
		delete(s.sessions, id)
		return domainauth.Session{}, core.ErrSessionNotFound
	}
	return sess, nil
}

func (s *SessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// Len reports the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// UserRepo is an in-memory credential store for unit tests. It returns the
// same sentinel errors as the Postgres implementation.
type UserRepo struct {
	mu    sync.Mutex
	users map[string]*model.User
}

// NewUserRepo creates an empty in-memory user repository.
func NewUserRepo() *UserRepo {
	return &UserRepo{users: make(map[string]*model.User)}
}

func (r *UserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[username]
	if !ok {
		return nil, data.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepo) Insert(_ context.Context, req *model.CreateUserRequest, passwordHash string) (*model.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[req.Username]; exists {
		return nil, data.ErrUsernameExists
	}
	role := req.Role
	if role == "" {
		role = model.RoleUser
	}
	u := &model.User{
		Username:     req.Username,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now(),
	}
	r.users[req.Username] = u
	cp := *u
	return &cp, nil
}

func (r *UserRepo) UpdatePassword(_ context.Context, username, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[username]
	if !ok {
		return data.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

// RoomRepo is an in-memory room registry for unit tests.
type RoomRepo struct {
	mu    sync.Mutex
	rooms map[string]*model.Room
}

// NewRoomRepo creates an empty in-memory room repository.
func NewRoomRepo() *RoomRepo {
	return &RoomRepo{rooms: make(map[string]*model.Room)}
}

func (r *RoomRepo) ListAll(_ context.Context) ([]*model.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*model.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		cp := *room
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *RoomRepo) FindByName(_ context.Context, name string) (*model.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	room, ok := r.rooms[name]
	if !ok {
		return nil, data.ErrRoomNotFound
	}
	cp := *room
	return &cp, nil
}

func (r *RoomRepo) Insert(_ context.Context, req *model.CreateRoomRequest) (*model.Room, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.rooms[req.Name]; exists {
		return nil, data.ErrRoomNameExists
	}
	allowed := req.AllowedUsers
	if allowed == nil {
		allowed = []string{}
	}
	room := &model.Room{
		Name:         req.Name,
		IsPublic:     req.IsPublic,
		AllowedUsers: allowed,
		CreatedAt:    time.Now(),
	}
	r.rooms[req.Name] = room
	cp := *room
	return &cp, nil
}

func (r *RoomRepo) Delete(_ context.Context, name string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rooms[name]; !ok {
		return false, nil
	}
	delete(r.rooms, name)
	return true, nil
}

func (r *RoomRepo) UpdateAllowedUsers(_ context.Context, name string, allowed []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	room, ok := r.rooms[name]
	if !ok {
		return data.ErrRoomNotFound
	}
	room.AllowedUsers = allowed
	return nil
}

// MessageRepo is an in-memory room message store for unit tests.
type MessageRepo struct {
	mu     sync.Mutex
	nextID int64
	msgs   []*model.Message
}

// NewMessageRepo creates an empty in-memory message repository.
func NewMessageRepo() *MessageRepo {
	return &MessageRepo{nextID: 1}
}

func (r *MessageRepo) Insert(_ context.Context, params core.InsertMessageParams) (*model.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	msg := &model.Message{
		ID:        r.nextID,
		Room:      params.Room,
		Author:    params.Author,
		Content:   params.Content,
		Timestamp: params.At,
	}
	r.nextID++
	r.msgs = append(r.msgs, msg)
	cp := *msg
	return &cp, nil
}

func (r *MessageRepo) DeleteByID(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, msg := range r.msgs {
		if msg.ID == id {
			r.msgs = append(r.msgs[:i], r.msgs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *MessageRepo) DeleteByRoom(_ context.Context, room string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var kept []*model.Message
	var deleted int64
	for _, msg := range r.msgs {
		if msg.Room == room {
			deleted++
			continue
		}
		kept = append(kept, msg)
	}
	r.msgs = kept
	return deleted, nil
}

func (r *MessageRepo) ListByRoom(_ context.Context, room string, limit int) ([]*model.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if limit <= 0 {
		limit = 50
	}
	var matched []*model.Message
	for _, msg := range r.msgs {
		if msg.Room == room {
			cp := *msg
			matched = append(matched, &cp)
		}
	}
	// Most recent N, presented oldest first. Insertion order doubles as
	// timestamp order here.
	if len(matched) > limit {
		matched = matched[len(matched)-limit:]
	}
	return matched, nil
}

// DirectMessageRepo is an in-memory direct message store for unit tests.
type DirectMessageRepo struct {
	mu     sync.Mutex
	nextID int64
	dms    []*model.DirectMessage
}

// NewDirectMessageRepo creates an empty in-memory direct message repository.
func NewDirectMessageRepo() *DirectMessageRepo {
	return &DirectMessageRepo{nextID: 1}
}

func (r *DirectMessageRepo) Insert(_ context.Context, params core.InsertDirectMessageParams) (*model.DirectMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	dm := &model.DirectMessage{
		ID:        r.nextID,
		Sender:    params.Sender,
		Recipient: params.Recipient,
		Content:   params.Content,
		Timestamp: params.At,
	}
	r.nextID++
	r.dms = append(r.dms, dm)
	cp := *dm
	return &cp, nil
}

func (r *DirectMessageRepo) ListBetween(_ context.Context, userA, userB string, limit int) ([]*model.DirectMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if limit <= 0 {
		limit = 50
	}
	var matched []*model.DirectMessage
	for _, dm := range r.dms {
		between := (dm.Sender == userA && dm.Recipient == userB) ||
			(dm.Sender == userB && dm.Recipient == userA)
		if between {
			cp := *dm
			matched = append(matched, &cp)
		}
	}
	if len(matched) > limit {
		matched = matched[len(matched)-limit:]
	}
	return matched, nil
}

// RetentionRepo is a configurable retention double. Each call pops the next
// count from the corresponding queue; an empty queue yields zero.
type RetentionRepo struct {
	mu            sync.Mutex
	MessageCounts []int64
	DirectCounts  []int64
	Err           error
}

func (r *RetentionRepo) DeleteMessagesOlderThan(_ context.Context, _ core.DeleteOlderThanParams) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return 0, r.Err
	}
	return pop(&r.MessageCounts), nil
}

func (r *RetentionRepo) DeleteDirectMessagesOlderThan(_ context.Context, _ core.DeleteOlderThanParams) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return 0, r.Err
	}
	return pop(&r.DirectCounts), nil
}

func pop(queue *[]int64) int64 {
	if len(*queue) == 0 {
		return 0
	}
	n := (*queue)[0]
	*queue = (*queue)[1:]
	return n
}
