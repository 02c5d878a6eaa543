package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/agora-dev/agora/internal/domain"
	internal_errors "github.com/agora-dev/agora/internal/errors"
)

// CreateReply inserts a reply and increments the owning thread's counter in
// one transaction. The UPDATE doubles as the existence check: zero rows means
// the thread is gone and nothing is written. Concurrent replies to the same
// thread serialize on the row lock, so no increment is ever lost.
// The transaction runs under the caller's ctx so request cancellation aborts
// it; the 5s cap bounds it even when the caller never cancels.
func (s *Storage) CreateReply(ctx context.Context, creationData domain.ReplyCreationData) (domain.ReplyId, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	id := uuid.NewString()
	createdTs := time.Now().UTC().Round(time.Microsecond)

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var replyCount int
		err := tx.QueryRow(`
            UPDATE threads
            SET reply_count = reply_count + 1
            WHERE id = $1
            RETURNING reply_count`, creationData.ThreadId,
		).Scan(&replyCount)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return internal_errors.NotFound("Thread")
			}
			return fmt.Errorf("failed to increment reply count: %w", err)
		}

		_, err = tx.Exec(`
            INSERT INTO replies(id, thread_id, content, author_username, created_at, image_data, image_filename)
            VALUES($1, $2, $3, $4, $5, $6, $7)`,
			id, creationData.ThreadId, creationData.Content, creationData.Author,
			createdTs, creationData.ImageData, creationData.ImageFilename,
		)
		if err != nil {
			return fmt.Errorf("failed to insert reply: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// Replies returns up to limit replies for a thread, oldest first. A missing
// thread yields an empty list, not an error.
func (s *Storage) Replies(threadId domain.ThreadId, limit int) ([]domain.Reply, error) {
	rows, err := s.db.Query(`
        SELECT id, thread_id, content, author_username, created_at, image_data, image_filename
        FROM replies
        WHERE thread_id = $1
        ORDER BY created_at, seq
        LIMIT $2`, threadId, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch replies: %w", err)
	}
	defer rows.Close()

	replies := []domain.Reply{}
	for rows.Next() {
		var reply domain.Reply
		if err := rows.Scan(
			&reply.Id, &reply.ThreadId, &reply.Content, &reply.Author,
			&reply.CreatedAt, &reply.ImageData, &reply.ImageFilename,
		); err != nil {
			return nil, fmt.Errorf("failed to scan reply: %w", err)
		}
		replies = append(replies, reply)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return replies, nil
}
