// Package biometrics persists Biometric records and the global index of
// enrolled finger keys.
package biometrics

import (
	"context"

	"github.com/mkravets/biogate/internal/server/models"
)

type Repository interface {
	// FindByKey returns the record holding key in any of its ten slots,
	// with the owning user joined in, or common.ErrorNotFound.
	FindByKey(ctx context.Context, key string) (*models.Biometric, error)

	// ExistsAnyKey reports whether any of the ten supplied values is
	// already enrolled in any record's any slot.
	ExistsAnyKey(ctx context.Context, keys models.BiometricKeys) (bool, error)

	// Create inserts a new record for userID and registers all ten keys in
	// the global key index in the same transaction. A key already enrolled
	// (or a second record for the same user) fails with
	// common.ErrorConflict; an unknown userID with common.ErrorNotFound.
	// The returned record has Owner populated.
	Create(ctx context.Context, userID string, keys models.BiometricKeys) (*models.Biometric, error)
}
