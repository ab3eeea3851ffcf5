// Package mocks provides mock implementations for testing the terminal services.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our repository interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockUserRepository(ctrl)
//	mockRepo.EXPECT().FindByUsername(gomock.Any(), "alice").Return(user, nil)
package mocks

// Generate mock for UserRepository interface from internal/core package.
// This creates MockUserRepository with methods for all UserRepository interface methods:
// FindByUsername, Insert, UpdatePassword
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=user_repository_mock.go github.com/tcacomm/tca-server/internal/core UserRepository

// Generate mock for RoomRepository interface from internal/core package.
// This creates MockRoomRepository with methods for all RoomRepository interface methods:
// ListAll, FindByName, Insert, Delete, UpdateAllowedUsers
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=room_repository_mock.go github.com/tcacomm/tca-server/internal/core RoomRepository

// Generate mocks for the message store interfaces from internal/core package.
// This creates MockMessageRepository and MockDirectMessageRepository.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=message_repository_mock.go github.com/tcacomm/tca-server/internal/core MessageRepository,DirectMessageRepository

// Generate mock for RetentionRepository interface from internal/core package.
// This creates MockRetentionRepository with methods for all RetentionRepository interface methods:
// DeleteMessagesOlderThan, DeleteDirectMessagesOlderThan
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=retention_repository_mock.go github.com/tcacomm/tca-server/internal/core RetentionRepository

// Generate mock for SessionStore interface from internal/core package.
// This creates MockSessionStore with methods for all SessionStore interface methods:
// Save, Get, Delete
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=session_store_mock.go github.com/tcacomm/tca-server/internal/core SessionStore
