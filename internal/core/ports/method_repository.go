package ports

import (
	"context"

	"shipping/internal/core/domain/model/shipment"
)

// MethodRepository defines the persistence contract for shipping method
// reference data: carriers, methods and their stored default prices.
type MethodRepository interface {
	// ListActive retrieves all active methods of active carriers,
	// in stable id order.
	ListActive(ctx context.Context) ([]*shipment.Method, error)

	// FindByID retrieves a method definition by its storage id.
	// Returns errs.ObjectNotFoundError when no such method exists.
	FindByID(ctx context.Context, id int64) (*shipment.Method, error)

	// FindDefaultPrice retrieves the stored default price of a method for a
	// store and currency. Returns nil when no price row exists for the
	// combination; the caller picks the gross or net column by price mode.
	FindDefaultPrice(ctx context.Context, methodID, storeID, currencyID int64) (*shipment.MethodPrice, error)
}

// CurrencyReader resolves ISO currency codes to storage ids.
type CurrencyReader interface {
	// IDByCode returns the storage id of a currency.
	// Returns errs.ObjectNotFoundError for unknown codes.
	IDByCode(ctx context.Context, code string) (int64, error)
}
