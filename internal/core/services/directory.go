// internal/core/services/directory.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/obreramit/2425-2nd-cc3-1b-project-OFFA/internal/core/domain"
	"github.com/obreramit/2425-2nd-cc3-1b-project-OFFA/internal/core/ports"
)

// Directory holds the fixed user list seeded at process start. Lookups are a
// linear scan over a handful of entries; no lockout, no rate limiting, no
// hashing — credentials are compared by case-sensitive equality.
type Directory struct {
	users  []domain.User
	logger *slog.Logger
}

var _ ports.Directory = (*Directory)(nil)

// NewDirectory copies the seed list so later mutation of the slice by the
// caller cannot leak into the directory.
func NewDirectory(users []domain.User, logger *slog.Logger) *Directory {
	seeded := make([]domain.User, len(users))
	copy(seeded, users)
	return &Directory{
		users:  seeded,
		logger: logger.With(slog.String("service", "directory")),
	}
}

// Authenticate returns the first user matching both username and password.
func (d *Directory) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	for _, user := range d.users {
		if user.Username == username && user.Password == password {
			d.logger.InfoContext(ctx, "login successful",
				slog.String("username", user.Username),
				slog.String("role", string(user.Role)))
			return user, nil
		}
	}

	d.logger.WarnContext(ctx, "login failed", slog.String("username", username))
	return domain.User{}, fmt.Errorf("%w for user %q", domain.ErrAuthFailure, username)
}
