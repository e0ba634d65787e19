package commands

import (
	"errors"
	"time"

	"github.com/BarinovG/EShop-API/internal/pkg/errs"
	"github.com/BarinovG/EShop-API/internal/pkg/guard"
)

var (
	ErrCleanupStaleCartsCommandIsNotConstructed = errors.New(
		"CleanupStaleCartsCommand must be created via NewCleanupStaleCartsCommand constructor",
	)
)

// CleanupStaleCartsCommand represents a request to purge open carts
// that have not been touched within the time-to-live window.
type CleanupStaleCartsCommand struct { //nolint:recvcheck //using for validation
	ttl time.Duration

	guard guard.ConstructorGuard
}

// NewCleanupStaleCartsCommand creates a cleanup command with the given
// cart time-to-live. The TTL must be positive.
func NewCleanupStaleCartsCommand(ttl time.Duration) (CleanupStaleCartsCommand, error) {
	cmd := CleanupStaleCartsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setTTL(ttl); err != nil {
		return CleanupStaleCartsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CleanupStaleCartsCommand) Validate() error {
	return c.guard.Validate(ErrCleanupStaleCartsCommandIsNotConstructed)
}

// TTL returns the cart time-to-live window.
func (c CleanupStaleCartsCommand) TTL() time.Duration {
	return c.ttl
}

func (c *CleanupStaleCartsCommand) setTTL(ttl time.Duration) error {
	if ttl <= 0 {
		return errs.NewValueIsInvalidError("ttl")
	}

	c.ttl = ttl
	return nil
}
