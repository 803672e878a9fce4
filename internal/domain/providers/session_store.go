package providers

import (
	"context"

	"github.com/snapseek/backend/internal/domain/entities"
)

// SessionStore resolves session identifiers to identities. Sessions are
// established by the external auth service; this side only reads them.
type SessionStore interface {
	// Get returns the identity for a session, or (nil, nil) when the
	// session is unknown or expired. An error means the store itself
	// failed.
	Get(ctx context.Context, sessionID string) (*entities.User, error)

	// Touch extends the session's expiry, mirroring a rolling cookie.
	Touch(ctx context.Context, sessionID string) error
}
