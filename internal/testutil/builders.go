package testutil

import (
	"github.com/tcacomm/tca-server/internal/domain/model"
)

// UserRequestBuilder provides a fluent interface for building CreateUserRequest objects for testing.
type UserRequestBuilder struct {
	req *model.CreateUserRequest
}

// NewUserRequest creates a new UserRequestBuilder with sensible defaults.
func NewUserRequest() *UserRequestBuilder {
	return &UserRequestBuilder{
		req: &model.CreateUserRequest{
			Username: "alice",
			Password: "correct horse battery staple",
			Role:     model.RoleUser,
		},
	}
}

// WithUsername sets the username.
func (b *UserRequestBuilder) WithUsername(username string) *UserRequestBuilder {
	b.req.Username = username
	return b
}

// WithPassword sets the plaintext password.
func (b *UserRequestBuilder) WithPassword(password string) *UserRequestBuilder {
	b.req.Password = password
	return b
}

// WithRole sets the role.
func (b *UserRequestBuilder) WithRole(role model.Role) *UserRequestBuilder {
	b.req.Role = role
	return b
}

// AsAdmin sets the role to admin.
func (b *UserRequestBuilder) AsAdmin() *UserRequestBuilder {
	b.req.Role = model.RoleAdmin
	return b
}

// Build returns the built CreateUserRequest.
func (b *UserRequestBuilder) Build() *model.CreateUserRequest {
	req := *b.req
	return &req
}

// RoomRequestBuilder provides a fluent interface for building CreateRoomRequest objects for testing.
type RoomRequestBuilder struct {
	req *model.CreateRoomRequest
}

// NewRoomRequest creates a new RoomRequestBuilder with sensible defaults.
func NewRoomRequest() *RoomRequestBuilder {
	return &RoomRequestBuilder{
		req: &model.CreateRoomRequest{
			Name:     "general",
			IsPublic: true,
		},
	}
}

// WithName sets the room name.
func (b *RoomRequestBuilder) WithName(name string) *RoomRequestBuilder {
	b.req.Name = name
	return b
}

// Private marks the room private with the given allowed users.
func (b *RoomRequestBuilder) Private(allowed ...string) *RoomRequestBuilder {
	b.req.IsPublic = false
	b.req.AllowedUsers = allowed
	return b
}

// Build returns the built CreateRoomRequest.
func (b *RoomRequestBuilder) Build() *model.CreateRoomRequest {
	req := *b.req
	return &req
}
