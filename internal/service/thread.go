package service

import (
	"net/http"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/agora-dev/agora/internal/config"
	"github.com/agora-dev/agora/internal/domain"
	"github.com/agora-dev/agora/internal/errors"
)

type ThreadService interface {
	Create(creationData domain.ThreadCreationData) (domain.ThreadId, error)
	Get(id domain.ThreadId) (domain.Thread, error)
	List() ([]domain.Thread, error)
}

type Thread struct {
	storage   ThreadStorage
	sanitizer *bluemonday.Policy
	cfg       *config.Public
}

type ThreadStorage interface {
	CreateThread(creationData domain.ThreadCreationData) (domain.ThreadId, error)
	GetThread(id domain.ThreadId) (domain.Thread, error)
	Threads(limit int) ([]domain.Thread, error)
}

func NewThread(storage ThreadStorage, cfg *config.Public) *Thread {
	return &Thread{storage: storage, sanitizer: bluemonday.UGCPolicy(), cfg: cfg}
}

func (t *Thread) Create(creationData domain.ThreadCreationData) (domain.ThreadId, error) {
	// Content is served to an external frontend as-is, strip unsafe markup
	// before it gets persisted.
	creationData.Title = t.sanitizer.Sanitize(creationData.Title)
	creationData.Content = t.sanitizer.Sanitize(creationData.Content)

	// Checked after sanitizing: a markup-only title collapses to nothing and
	// must fail the same way a blank one does.
	if strings.TrimSpace(creationData.Title) == "" {
		return "", errors.New("Title must not be empty", http.StatusBadRequest)
	}

	return t.storage.CreateThread(creationData)
}

func (t *Thread) Get(id domain.ThreadId) (domain.Thread, error) {
	return t.storage.GetThread(id)
}

// List returns the newest threads, capped by config. The cap is a hard
// ceiling, not a page size; callers beyond it are out of scope.
func (t *Thread) List() ([]domain.Thread, error) {
	return t.storage.Threads(t.cfg.ThreadListLimit)
}
