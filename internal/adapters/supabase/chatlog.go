package supabase

import (
	"context"
	"net/http"

	"petvizor/internal/domain/chat"
)

type ChatLogRepo struct {
	client *Client
}

func NewChatLogRepo(client *Client) *ChatLogRepo {
	return &ChatLogRepo{client: client}
}

type chatLogRow struct {
	ID        string  `json:"id"`
	UserID    *string `json:"user_id"`
	Message   string  `json:"message"`
	Response  string  `json:"response"`
	CreatedAt string  `json:"created_at"`
}

// Append inserta la fila del intercambio. El caller (chat.Service) decide
// qué hacer si falla; acá no se reintenta ni se suaviza el error.
func (r *ChatLogRepo) Append(ctx context.Context, ex chat.Exchange) error {
	row := chatLogRow{
		ID:        ex.ID,
		Message:   ex.Message,
		Response:  ex.Response,
		CreatedAt: ex.CreatedAt.UTC().Format("2006-01-02T15:04:05.999999Z07:00"),
	}
	if ex.UserID != "" {
		uid := ex.UserID
		row.UserID = &uid
	}

	headers := map[string]string{"Prefer": "return=minimal"}
	return r.client.rest(ctx, http.MethodPost, "/rest/v1/chat_messages", headers, row, nil)
}
