package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/agora-dev/agora/internal/config"
	"github.com/agora-dev/agora/internal/logger"
	"github.com/agora-dev/agora/internal/service"
)

// Pinger reports storage reachability for the readiness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	auth   service.AuthService
	thread service.ThreadService
	reply  service.ReplyService
	cfg    *config.Config
	health Pinger
}

func New(auth service.AuthService, thread service.ThreadService, reply service.ReplyService, cfg *config.Config, health Pinger) *Handler {
	return &Handler{auth, thread, reply, cfg, health}
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"message": "agora forum api"})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}
