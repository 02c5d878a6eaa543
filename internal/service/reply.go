package service

import (
	"context"

	"github.com/microcosm-cc/bluemonday"

	"github.com/agora-dev/agora/internal/config"
	"github.com/agora-dev/agora/internal/domain"
)

type ReplyService interface {
	Create(ctx context.Context, creationData domain.ReplyCreationData) (domain.ReplyId, error)
	List(threadId domain.ThreadId) ([]domain.Reply, error)
}

type Reply struct {
	storage   ReplyStorage
	sanitizer *bluemonday.Policy
	cfg       *config.Public
}

type ReplyStorage interface {
	CreateReply(ctx context.Context, creationData domain.ReplyCreationData) (domain.ReplyId, error)
	Replies(threadId domain.ThreadId, limit int) ([]domain.Reply, error)
}

func NewReply(storage ReplyStorage, cfg *config.Public) *Reply {
	return &Reply{storage: storage, sanitizer: bluemonday.UGCPolicy(), cfg: cfg}
}

// Create persists a reply against an existing thread. Existence check and
// counter increment are the storage layer's single transaction; a missing
// thread surfaces as NotFound with no counter touched.
func (r *Reply) Create(ctx context.Context, creationData domain.ReplyCreationData) (domain.ReplyId, error) {
	creationData.Content = r.sanitizer.Sanitize(creationData.Content)
	return r.storage.CreateReply(ctx, creationData)
}

func (r *Reply) List(threadId domain.ThreadId) ([]domain.Reply, error) {
	return r.storage.Replies(threadId, r.cfg.ReplyListLimit)
}
