package service

import (
	"github.com/agora-dev/agora/internal/domain"
	"github.com/agora-dev/agora/internal/errors"
)

// AttributeAuthor decides the stored author for a write. A resolved identity
// always wins: a logged-in caller cannot post under another name or force
// anonymity. Without an identity the client-supplied author is stored
// verbatim, nil meaning anonymous.
func AttributeAuthor(identity, requested *domain.Username) *domain.Username {
	if identity != nil {
		return identity
	}
	return requested
}

// RequireIdentity converts an anonymous request into an explicit error.
// Used only by the identity-check endpoint; write endpoints never fail on a
// missing identity.
func RequireIdentity(identity *domain.Username) (domain.Username, error) {
	if identity == nil {
		return "", errors.Unauthenticated()
	}
	return *identity, nil
}
