// Package service defines interfaces for infrastructure services consumed by
// the domain.
package service

import (
	"context"

	"github.com/google/uuid"
)

// Notifier delivers a short message to a beneficiary. The settlement engine
// treats delivery as fire-and-forget: failures are logged by the caller and
// never roll back ledger writes.
type Notifier interface {
	// Notify sends one message to the beneficiary. Implementations should be
	// non-blocking or honor a short context timeout.
	Notify(ctx context.Context, beneficiaryID uuid.UUID, message string) error
}
