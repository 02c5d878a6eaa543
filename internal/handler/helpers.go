package handler

import (
	"net/http"

	"github.com/agora-dev/agora/internal/domain"
	"github.com/agora-dev/agora/internal/middleware"
)

// identityFromRequest returns the token-bound identity, or nil for an
// anonymous request.
func identityFromRequest(r *http.Request) *domain.Username {
	if username, ok := middleware.UsernameFromContext(r); ok {
		return &username
	}
	return nil
}
