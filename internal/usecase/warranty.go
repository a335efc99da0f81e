package usecase

import (
	"errors"
	"time"

	"oficina_xpto/internal/domain/entities"
)

var (
	ErrOriginNotDelivered = errors.New("origin work order was not delivered")
	ErrWarrantyExpired    = errors.New("warranty window expired")
)

// DefaultWarrantyDays is used when no WARRANTY_DAYS configuration is
// supplied at wiring time.
const DefaultWarrantyDays = 30

// CheckReturnOrderEligibility validates that a new work order may be opened
// as a return of a previously delivered one. Pure; consulted only during
// work order creation.
func CheckReturnOrderEligibility(origin entities.WorkOrder, warrantyDays int, now time.Time) error {
	if origin.Status != entities.StatusEntregue || origin.DeliveredAt == nil {
		return ErrOriginNotDelivered
	}
	if now.After(origin.DeliveredAt.AddDate(0, 0, warrantyDays)) {
		return ErrWarrantyExpired
	}
	return nil
}
