package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mareviva/mareviva/internal/common"
	"github.com/mareviva/mareviva/internal/dbx"
	"github.com/mareviva/mareviva/internal/logging"
	"github.com/mareviva/mareviva/internal/models"
	"github.com/mareviva/mareviva/internal/repositories/chats"
	"github.com/mareviva/mareviva/internal/repositories/messages"
)

// SendMessageInput carries one outgoing chat message. ProductID and
// ProductName are optional; when set they (re)associate the chat with that
// listing.
type SendMessageInput struct {
	SenderID     string
	SenderName   string
	ReceiverID   string
	ReceiverName string
	Text         string
	ProductID    string
	ProductName  string
}

// MessageService manages conversations. Sending a message lazily creates the
// chat for the user pair and updates its summary fields in the same
// transaction as the message insert, so a chat head can never point at a
// message that was not stored.
type MessageService interface {
	SendMessage(ctx context.Context, in SendMessageInput) models.MessageResult

	// ChatsByUser returns the user's chats, most recent activity first.
	ChatsByUser(ctx context.Context, userID string) []models.Chat

	// MessagesByChat returns the chat's messages oldest first.
	MessagesByChat(ctx context.Context, chatID string) []models.Message

	// GetOrCreateChat returns the chat for the user pair, creating an
	// empty one when none exists yet. When productID is non-empty an
	// existing chat is re-pointed at that listing.
	GetOrCreateChat(ctx context.Context, in SendMessageInput) (*models.Chat, error)

	// MarkChatRead zeroes the chat's unread counter. Failures are logged
	// and swallowed.
	MarkChatRead(ctx context.Context, chatID string)

	// UnreadTotal sums the unread counters across the user's chats.
	UnreadTotal(ctx context.Context, userID string) int
}

type messageService struct {
	db  *sql.DB
	log logging.Logger

	now func() time.Time
}

// NewMessageService constructs a MessageService over the given database.
func NewMessageService(db *sql.DB, log logging.Logger) MessageService {
	return &messageService{db: db, log: log, now: time.Now}
}

func (s *messageService) SendMessage(ctx context.Context, in SendMessageInput) models.MessageResult {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return models.MessageResult{Result: models.Failure("A mensagem não pode estar vazia")}
	}

	msg := &models.Message{
		ID:           uuid.NewString(),
		ChatID:       models.ChatID(in.SenderID, in.ReceiverID),
		SenderID:     in.SenderID,
		SenderName:   in.SenderName,
		ReceiverID:   in.ReceiverID,
		ReceiverName: in.ReceiverName,
		Text:         text,
		Timestamp:    s.now(),
		ProductID:    in.ProductID,
		ProductName:  in.ProductName,
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		msgRepo := messages.NewSQLiteRepository(tx)
		chatRepo := chats.NewSQLiteRepository(tx)

		if err := msgRepo.Create(ctx, msg); err != nil {
			return err
		}

		chat, err := s.ensureChat(ctx, chatRepo, in)
		if err != nil {
			return err
		}

		if err := chatRepo.SetLastMessage(ctx, chat.ID, text, msg.Timestamp); err != nil {
			return err
		}

		// the counter belongs to the receiver; anything else means the
		// chat record is inconsistent and the counter resets
		if chat.UserID1 == in.ReceiverID || chat.UserID2 == in.ReceiverID {
			return chatRepo.IncrementUnread(ctx, chat.ID)
		}
		return chatRepo.ResetUnread(ctx, chat.ID)
	})
	if err != nil {
		s.log.Error(ctx, "message send failed", "error", err)
		return models.MessageResult{Result: models.Failure("Erro ao enviar mensagem. Tente novamente.")}
	}

	return models.MessageResult{Result: models.OK("Mensagem enviada!"), Data: msg}
}

func (s *messageService) ChatsByUser(ctx context.Context, userID string) []models.Chat {
	list, err := chats.NewSQLiteRepository(s.db).GetByUser(ctx, userID)
	if err != nil {
		s.log.Error(ctx, "chat list failed", "error", err)
		return nil
	}
	return list
}

func (s *messageService) MessagesByChat(ctx context.Context, chatID string) []models.Message {
	list, err := messages.NewSQLiteRepository(s.db).GetByChat(ctx, chatID)
	if err != nil {
		s.log.Error(ctx, "message list failed", "error", err)
		return nil
	}
	return list
}

func (s *messageService) GetOrCreateChat(ctx context.Context, in SendMessageInput) (*models.Chat, error) {
	var chat *models.Chat
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		chat, err = s.ensureChat(ctx, chats.NewSQLiteRepository(tx), in)
		return err
	})
	if err != nil {
		return nil, err
	}
	return chat, nil
}

func (s *messageService) MarkChatRead(ctx context.Context, chatID string) {
	if err := chats.NewSQLiteRepository(s.db).ResetUnread(ctx, chatID); err != nil {
		s.log.Warn(ctx, "unread reset failed", "error", err)
	}
}

func (s *messageService) UnreadTotal(ctx context.Context, userID string) int {
	total := 0
	for _, c := range s.ChatsByUser(ctx, userID) {
		total += c.UnreadCount
	}
	return total
}

// ensureChat loads the pair's chat, creating it when absent. For an existing
// chat a non-empty product in the input overwrites the chat's product
// association: the thread always reflects the latest listing talked about.
func (s *messageService) ensureChat(ctx context.Context, repo chats.Repository, in SendMessageInput) (*models.Chat, error) {
	id := models.ChatID(in.SenderID, in.ReceiverID)

	chat, err := repo.Get(ctx, id)
	if err == nil {
		if in.ProductID != "" && (chat.ProductID != in.ProductID || chat.ProductName != in.ProductName) {
			if err := repo.SetProduct(ctx, id, in.ProductID, in.ProductName); err != nil {
				return nil, err
			}
			chat.ProductID = in.ProductID
			chat.ProductName = in.ProductName
		}
		return chat, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	chat = &models.Chat{
		ID:          id,
		UserID1:     in.SenderID,
		UserName1:   in.SenderName,
		UserID2:     in.ReceiverID,
		UserName2:   in.ReceiverName,
		ProductID:   in.ProductID,
		ProductName: in.ProductName,
	}
	if err := repo.Create(ctx, chat); err != nil {
		return nil, err
	}
	return chat, nil
}
