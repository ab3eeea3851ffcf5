package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tcacomm/tca-server/internal/core"
	"github.com/tcacomm/tca-server/internal/domain/model"
	apperrors "github.com/tcacomm/tca-server/internal/errors"
	"github.com/tcacomm/tca-server/internal/mocks"
	"github.com/tcacomm/tca-server/internal/testutil"
)

func newMessageService(t *testing.T, msgs *mocks.MockMessageRepository, dms *mocks.MockDirectMessageRepository) *MessageService {
	t.Helper()
	svc, err := NewMessageService(MessageServiceOptions{
		Messages: msgs,
		Directs:  dms,
		Now:      testutil.TestTime,
	})
	require.NoError(t, err)
	return svc
}

func TestMessageService_SendToRoom_StampsTimestamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	msgs := mocks.NewMockMessageRepository(ctrl)
	svc := newMessageService(t, msgs, mocks.NewMockDirectMessageRepository(ctrl))

	want := core.InsertMessageParams{
		Room:    "general",
		Author:  "alice",
		Content: "hello",
		At:      testutil.TestTime(),
	}
	msgs.EXPECT().Insert(ctx, want).Return(&model.Message{
		ID: 1, Room: "general", Author: "alice", Content: "hello", Timestamp: want.At,
	}, nil)

	msg, err := svc.SendToRoom(ctx, "general", "alice", "hello")
	require.NoError(t, err)
	assert.Equal(t, int64(1), msg.ID)
	assert.Equal(t, testutil.TestTime(), msg.Timestamp)
}

func TestMessageService_SendDirect_NoRecipientCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	dms := mocks.NewMockDirectMessageRepository(ctrl)
	svc := newMessageService(t, mocks.NewMockMessageRepository(ctrl), dms)

	// Any recipient string is accepted; existence is never checked.
	dms.EXPECT().Insert(ctx, core.InsertDirectMessageParams{
		Sender:    "alice",
		Recipient: "nobody-with-this-name",
		Content:   "hi",
		At:        testutil.TestTime(),
	}).Return(&model.DirectMessage{ID: 1, Sender: "alice", Recipient: "nobody-with-this-name"}, nil)

	_, err := svc.SendDirect(ctx, "alice", "nobody-with-this-name", "hi")
	require.NoError(t, err)
}

func TestMessageService_DeleteByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	msgs := mocks.NewMockMessageRepository(ctrl)
	svc := newMessageService(t, msgs, mocks.NewMockDirectMessageRepository(ctrl))

	msgs.EXPECT().DeleteByID(ctx, int64(42)).Return(true, nil)
	require.NoError(t, svc.DeleteByID(ctx, 42))

	msgs.EXPECT().DeleteByID(ctx, int64(99)).Return(false, nil)
	err := svc.DeleteByID(ctx, 99)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestMessageService_ListRecent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	msgs := mocks.NewMockMessageRepository(ctrl)
	svc := newMessageService(t, msgs, mocks.NewMockDirectMessageRepository(ctrl))

	stored := []*model.Message{
		{ID: 1, Room: "general", Author: "alice", Content: "first", Timestamp: testutil.TestTime()},
		{ID: 2, Room: "general", Author: "bob", Content: "second", Timestamp: testutil.TestTime().Add(time.Minute)},
	}
	msgs.EXPECT().ListByRoom(ctx, "general", 50).Return(stored, nil)

	got, err := svc.ListRecent(ctx, "general", 50)
	require.NoError(t, err)
	assert.Equal(t, stored, got)
}
