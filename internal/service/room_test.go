package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tcacomm/tca-server/internal/data"
	"github.com/tcacomm/tca-server/internal/domain/model"
	apperrors "github.com/tcacomm/tca-server/internal/errors"
	"github.com/tcacomm/tca-server/internal/mocks"
)

func newRoomService(t *testing.T, rooms *mocks.MockRoomRepository, msgs *mocks.MockMessageRepository) *RoomService {
	t.Helper()
	svc, err := NewRoomService(RoomServiceOptions{Rooms: rooms, Messages: msgs})
	require.NoError(t, err)
	return svc
}

func TestRoomService_VisibleRooms(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	rooms := mocks.NewMockRoomRepository(ctrl)
	svc := newRoomService(t, rooms, mocks.NewMockMessageRepository(ctrl))

	rooms.EXPECT().ListAll(ctx).Return([]*model.Room{
		{Name: "general", IsPublic: true},
		{Name: "ops", IsPublic: false, AllowedUsers: []string{"alice"}},
		{Name: "secret", IsPublic: false, AllowedUsers: []string{"bob"}},
	}, nil)

	visible, err := svc.VisibleRooms(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"general", "ops"}, visible)
}

func TestRoomService_Authorize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	rooms := mocks.NewMockRoomRepository(ctrl)
	svc := newRoomService(t, rooms, mocks.NewMockMessageRepository(ctrl))

	private := &model.Room{Name: "ops", AllowedUsers: []string{"alice"}}

	rooms.EXPECT().FindByName(ctx, "ops").Return(private, nil)
	room, err := svc.Authorize(ctx, "ops", "alice")
	require.NoError(t, err)
	assert.Equal(t, "ops", room.Name)

	// Missing room and denied room are indistinguishable.
	rooms.EXPECT().FindByName(ctx, "ghost").Return(nil, data.ErrRoomNotFound)
	_, missingErr := svc.Authorize(ctx, "ghost", "alice")
	require.Error(t, missingErr)
	assert.True(t, apperrors.IsNotFound(missingErr))

	rooms.EXPECT().FindByName(ctx, "ops").Return(private, nil)
	_, deniedErr := svc.Authorize(ctx, "ops", "mallory")
	require.Error(t, deniedErr)
	assert.True(t, apperrors.IsNotFound(deniedErr))
	assert.Contains(t, missingErr.Error(), "not found or access denied")
	assert.Contains(t, deniedErr.Error(), "not found or access denied")
}

func TestRoomService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	rooms := mocks.NewMockRoomRepository(ctrl)
	svc := newRoomService(t, rooms, mocks.NewMockMessageRepository(ctrl))

	req := &model.CreateRoomRequest{Name: "ops", AllowedUsers: []string{"alice"}}
	created := &model.Room{Name: "ops", AllowedUsers: []string{"alice"}}

	rooms.EXPECT().Insert(ctx, req).Return(created, nil)

	got, err := svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestRoomService_Create_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	rooms := mocks.NewMockRoomRepository(ctrl)
	svc := newRoomService(t, rooms, mocks.NewMockMessageRepository(ctrl))

	rooms.EXPECT().Insert(ctx, gomock.Any()).Return(nil, data.ErrRoomNameExists)

	_, err := svc.Create(ctx, &model.CreateRoomRequest{Name: "ops"})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestRoomService_Delete_PurgesMessages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	rooms := mocks.NewMockRoomRepository(ctrl)
	msgs := mocks.NewMockMessageRepository(ctrl)
	svc := newRoomService(t, rooms, msgs)

	rooms.EXPECT().Delete(ctx, "ops").Return(true, nil)
	msgs.EXPECT().DeleteByRoom(ctx, "ops").Return(int64(7), nil)

	require.NoError(t, svc.Delete(ctx, "ops"))
}

func TestRoomService_Delete_Missing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	rooms := mocks.NewMockRoomRepository(ctrl)
	svc := newRoomService(t, rooms, mocks.NewMockMessageRepository(ctrl))

	rooms.EXPECT().Delete(ctx, "ghost").Return(false, nil)

	err := svc.Delete(ctx, "ghost")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestRoomService_Delete_PurgeFailureSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	rooms := mocks.NewMockRoomRepository(ctrl)
	msgs := mocks.NewMockMessageRepository(ctrl)
	svc := newRoomService(t, rooms, msgs)

	rooms.EXPECT().Delete(ctx, "ops").Return(true, nil)
	msgs.EXPECT().DeleteByRoom(ctx, "ops").Return(int64(0), errors.New("connection reset"))

	err := svc.Delete(ctx, "ops")
	require.Error(t, err)
	assert.True(t, apperrors.IsUnavailable(err))
}

func TestRoomService_GrantAccess_MergesAsSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	rooms := mocks.NewMockRoomRepository(ctrl)
	svc := newRoomService(t, rooms, mocks.NewMockMessageRepository(ctrl))

	rooms.EXPECT().FindByName(ctx, "ops").Return(&model.Room{
		Name:         "ops",
		AllowedUsers: []string{"alice"},
	}, nil)
	rooms.EXPECT().UpdateAllowedUsers(ctx, "ops", []string{"alice", "bob", "carol"}).Return(nil)

	require.NoError(t, svc.GrantAccess(ctx, "ops", []string{"bob", "alice", "", "carol", "bob"}))
}

func TestRoomService_GrantAccess_NoOpWhenAllPresent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	rooms := mocks.NewMockRoomRepository(ctrl)
	svc := newRoomService(t, rooms, mocks.NewMockMessageRepository(ctrl))

	// No UpdateAllowedUsers expectation: nothing new to add, no write.
	rooms.EXPECT().FindByName(ctx, "ops").Return(&model.Room{
		Name:         "ops",
		AllowedUsers: []string{"alice", "bob"},
	}, nil)

	require.NoError(t, svc.GrantAccess(ctx, "ops", []string{"alice", "bob"}))
}
