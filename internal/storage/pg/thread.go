package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/agora-dev/agora/internal/domain"
	internal_errors "github.com/agora-dev/agora/internal/errors"
)

func (s *Storage) CreateThread(creationData domain.ThreadCreationData) (domain.ThreadId, error) {
	id := uuid.NewString()
	createdTs := time.Now().UTC().Round(time.Microsecond)

	_, err := s.db.Exec(`
        INSERT INTO threads(id, title, content, author_username, created_at, reply_count, image_data, image_filename)
        VALUES($1, $2, $3, $4, $5, 0, $6, $7)`,
		id, creationData.Title, creationData.Content, creationData.Author,
		createdTs, creationData.ImageData, creationData.ImageFilename,
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert thread: %w", err)
	}
	return id, nil
}

func (s *Storage) GetThread(id domain.ThreadId) (domain.Thread, error) {
	var thread domain.Thread
	err := s.db.QueryRow(`
        SELECT id, title, content, author_username, created_at, reply_count, image_data, image_filename
        FROM threads
        WHERE id = $1`, id,
	).Scan(
		&thread.Id, &thread.Title, &thread.Content, &thread.Author,
		&thread.CreatedAt, &thread.ReplyCount, &thread.ImageData, &thread.ImageFilename,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Thread{}, internal_errors.NotFound("Thread")
		}
		return domain.Thread{}, fmt.Errorf("failed to fetch thread: %w", err)
	}
	return thread, nil
}

// Threads returns up to limit threads, newest creation time first. The seq
// column breaks creation-time ties deterministically.
func (s *Storage) Threads(limit int) ([]domain.Thread, error) {
	rows, err := s.db.Query(`
        SELECT id, title, content, author_username, created_at, reply_count, image_data, image_filename
        FROM threads
        ORDER BY created_at DESC, seq DESC
        LIMIT $1`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch threads: %w", err)
	}
	defer rows.Close()

	threads := []domain.Thread{}
	for rows.Next() {
		var thread domain.Thread
		if err := rows.Scan(
			&thread.Id, &thread.Title, &thread.Content, &thread.Author,
			&thread.CreatedAt, &thread.ReplyCount, &thread.ImageData, &thread.ImageFilename,
		); err != nil {
			return nil, fmt.Errorf("failed to scan thread: %w", err)
		}
		threads = append(threads, thread)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return threads, nil
}
