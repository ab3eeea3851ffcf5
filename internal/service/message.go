package service

import (
	"context"
	"errors"
	"time"

	"github.com/tcacomm/tca-server/internal/core"
	"github.com/tcacomm/tca-server/internal/domain/model"
	apperrors "github.com/tcacomm/tca-server/internal/errors"
)

// MessageServiceOptions groups dependencies for MessageService.
type MessageServiceOptions struct {
	Messages core.MessageRepository
	Directs  core.DirectMessageRepository
	Now      func() time.Time
}

// MessageService writes and reads room messages and direct messages.
type MessageService struct {
	messages core.MessageRepository
	directs  core.DirectMessageRepository
	now      func() time.Time
}

// NewMessageService constructs a new MessageService.
func NewMessageService(opts MessageServiceOptions) (*MessageService, error) {
	if opts.Messages == nil {
		return nil, errors.New("MessageRepository is required")
	}
	if opts.Directs == nil {
		return nil, errors.New("DirectMessageRepository is required")
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &MessageService{
		messages: opts.Messages,
		directs:  opts.Directs,
		now:      now,
	}, nil
}

// SendToRoom appends one message record to a room.
func (s *MessageService) SendToRoom(ctx context.Context, room, author, content string) (*model.Message, error) {
	msg, err := s.messages.Insert(ctx, core.InsertMessageParams{
		Room:    room,
		Author:  author,
		Content: content,
		At:      s.now(),
	})
	if err != nil {
		return nil, storeFault(err, "insert message")
	}
	return msg, nil
}

// SendDirect appends one direct message record. Any string is a valid
// recipient; no existence check is performed.
func (s *MessageService) SendDirect(ctx context.Context, sender, recipient, content string) (*model.DirectMessage, error) {
	dm, err := s.directs.Insert(ctx, core.InsertDirectMessageParams{
		Sender:    sender,
		Recipient: recipient,
		Content:   content,
		At:        s.now(),
	})
	if err != nil {
		return nil, storeFault(err, "insert direct message")
	}
	return dm, nil
}

// DeleteByID removes a single message record.
func (s *MessageService) DeleteByID(ctx context.Context, id int64) error {
	deleted, err := s.messages.DeleteByID(ctx, id)
	if err != nil {
		return storeFault(err, "delete message")
	}
	if !deleted {
		return apperrors.NotFoundf("message #%d not found", id)
	}
	return nil
}

// ListRecent returns the most recent messages in a room, oldest first.
func (s *MessageService) ListRecent(ctx context.Context, room string, limit int) ([]*model.Message, error) {
	msgs, err := s.messages.ListByRoom(ctx, room, limit)
	if err != nil {
		return nil, storeFault(err, "list room messages")
	}
	return msgs, nil
}

// ListDirect returns the most recent direct messages between two users,
// oldest first.
func (s *MessageService) ListDirect(ctx context.Context, userA, userB string, limit int) ([]*model.DirectMessage, error) {
	dms, err := s.directs.ListBetween(ctx, userA, userB, limit)
	if err != nil {
		return nil, storeFault(err, "list direct messages")
	}
	return dms, nil
}
