package data

import "errors"

// Shared sentinel errors for data-layer repositories.
var (
	// User repository sentinels.
	ErrUserNotFound   = errors.New("user not found")
	ErrUsernameExists = errors.New("username already exists")

	// Room repository sentinels.
	ErrRoomNotFound   = errors.New("room not found")
	ErrRoomNameExists = errors.New("room name already exists")

	// Message repository sentinels.
	ErrMessageNotFound = errors.New("message not found")
)
