package postgres

import (
	"context"
	"database/sql"

	"petvizor/internal/domain/chat"
)

type ChatLogRepo struct {
	db *sql.DB
}

func NewChatLogRepo(db *sql.DB) *ChatLogRepo {
	return &ChatLogRepo{db: db}
}

// Append inserta la fila del intercambio. Log append-only: sin update/delete.
func (r *ChatLogRepo) Append(ctx context.Context, ex chat.Exchange) error {
	var userID sql.NullString
	if ex.UserID != "" {
		userID = sql.NullString{String: ex.UserID, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO chat_messages (id, user_id, message, response, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`,
		ex.ID,
		userID,
		ex.Message,
		ex.Response,
		ex.CreatedAt,
	)
	return err
}
