package messages

import (
	"context"
	"fmt"

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

const messageColumns = `id, chat_id, sender_id, sender_name, receiver_id, receiver_name, text, timestamp, product_id, product_name`

func (r *SQLiteRepository) Create(ctx context.Context, m *models.Message) error {
	query := `INSERT INTO messages (` + messageColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.ChatID, m.SenderID, m.SenderName, m.ReceiverID, m.ReceiverName,
		m.Text, common.TimeToDB(m.Timestamp), m.ProductID, m.ProductName)
	if err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByChat(ctx context.Context, chatID string) ([]models.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages WHERE chat_id = ? ORDER BY timestamp, id`
	rows, err := r.db.QueryContext(ctx, query, chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to select messages: %w", err)
	}
	defer rows.Close()

	result := []models.Message{}
	for rows.Next() {
		var m models.Message
		var ts string
		if err := rows.Scan(&m.ID, &m.ChatID, &m.SenderID, &m.SenderName,
			&m.ReceiverID, &m.ReceiverName, &m.Text, &ts, &m.ProductID, &m.ProductName); err != nil {
			return nil, err
		}
		t, err := common.TimeFromDB(ts)
		if err != nil {
			return nil, fmt.Errorf("failed to parse message timestamp: %w", err)
		}
		m.Timestamp = t
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
