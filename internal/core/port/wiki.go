package port

import (
	"context"
	"strattonbot/internal/core/domain"
)

type PageResolver interface {
	// Resolve turns a free-text query into a lookup result. Failures of the
	// underlying service are reported as the LookupFailed variant, never as an
	// error.
	Resolve(ctx context.Context, query string) domain.LookupResult
}
