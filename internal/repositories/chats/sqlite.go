package chats

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mareviva/mareviva/internal/common"
	"github.com/mareviva/mareviva/internal/dbx"
	"github.com/mareviva/mareviva/internal/models"
)

// SQLiteRepository implements Repository over a DBTX (*sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const chatColumns = `id, user_id1, user_name1, user_id2, user_name2, product_id, product_name, last_message, last_message_time, unread_count`

func (r *SQLiteRepository) Get(ctx context.Context, id string) (*models.Chat, error) {
	query := `SELECT ` + chatColumns + ` FROM chats WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	c, err := scanChat(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to select chat: %w", err)
	}
	return c, nil
}

func (r *SQLiteRepository) Create(ctx context.Context, c *models.Chat) error {
	query := `INSERT INTO chats (` + chatColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.UserID1, c.UserName1, c.UserID2, c.UserName2,
		c.ProductID, c.ProductName, c.LastMessage,
		common.TimeToDB(c.LastMessageTime), c.UnreadCount)
	if err != nil {
		return fmt.Errorf("failed to insert chat: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByUser(ctx context.Context, userID string) ([]models.Chat, error) {
	// chats without any message (empty last_message_time) sort last
	query := `SELECT ` + chatColumns + ` FROM chats
		WHERE user_id1 = ? OR user_id2 = ?
		ORDER BY CASE WHEN last_message_time = '' THEN 1 ELSE 0 END, last_message_time DESC`
	rows, err := r.db.QueryContext(ctx, query, userID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select chats: %w", err)
	}
	defer rows.Close()

	result := []models.Chat{}
	for rows.Next() {
		c, err := scanChat(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) SetLastMessage(ctx context.Context, id, text string, at time.Time) error {
	query := `UPDATE chats SET last_message = ?, last_message_time = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, text, common.TimeToDB(at), id)
	if err != nil {
		return fmt.Errorf("failed to update chat last message: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) SetProduct(ctx context.Context, id, productID, productName string) error {
	query := `UPDATE chats SET product_id = ?, product_name = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, productID, productName, id)
	if err != nil {
		return fmt.Errorf("failed to update chat product: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) IncrementUnread(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE chats SET unread_count = unread_count + 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to increment unread count: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) ResetUnread(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE chats SET unread_count = 0 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to reset unread count: %w", err)
	}
	return nil
}

func scanChat(scan func(dest ...any) error) (*models.Chat, error) {
	var c models.Chat
	var lastTime string
	if err := scan(&c.ID, &c.UserID1, &c.UserName1, &c.UserID2, &c.UserName2,
		&c.ProductID, &c.ProductName, &c.LastMessage, &lastTime, &c.UnreadCount); err != nil {
		return nil, err
	}
	t, err := common.TimeFromDB(lastTime)
	if err != nil {
		return nil, fmt.Errorf("failed to parse chat timestamp: %w", err)
	}
	c.LastMessageTime = t
	return &c, nil
}
