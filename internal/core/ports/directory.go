// internal/core/ports/directory.go
package ports

import (
	"context"

	"github.com/obreramit/2425-2nd-cc3-1b-project-OFFA/internal/core/domain"
)

// Directory defines the user lookup port consumed by the presentation layer.
type Directory interface {
	// Authenticate scans the seeded users for an exact username and password
	// match and returns domain.ErrAuthFailure when none is found.
	Authenticate(ctx context.Context, username, password string) (domain.User, error)
}
