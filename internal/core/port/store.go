package port

import "context"

type UserStore interface {
	// Register records a user identifier if it is not yet known. It reports
	// whether a new record was created; re-registering is a no-op.
	Register(ctx context.Context, userID int64) (bool, error)
	// ListAll returns every registered user identifier in registration order.
	ListAll(ctx context.Context) ([]int64, error)
}
