package controllers

import (
	"context"

	"tranhart-io/api/internal/common"
)

// WithTimeout scopes a request's store operations.
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), common.REQUEST_TIMEOUT_SECS)
}
