package order

import (
	"errors"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"
)

// ErrQuoteIsNotConstructed is returned when a Quote instance was not created
// through the NewQuote factory method.
var ErrQuoteIsNotConstructed = errors.New("Quote must be created via NewQuote constructor")

// Quote is the pricing context of a cart that has not been placed yet:
// the store, currency and price mode that method resolution runs against,
// plus the items whose shipments are grouped.
type Quote struct {
	storeID      int64
	currencyCode string
	priceMode    shipment.PriceMode
	items        []*shipment.Item

	isConstructed bool
}

// NewQuote creates a Quote with validation.
func NewQuote(storeID int64, currencyCode string, priceMode shipment.PriceMode, items []*shipment.Item) (*Quote, error) {
	if currencyCode == "" {
		return nil, errs.NewValueIsRequiredError("quote.currencyCode")
	}
	if err := priceMode.Validate(); err != nil {
		return nil, err
	}

	return &Quote{
		storeID:       storeID,
		currencyCode:  currencyCode,
		priceMode:     priceMode,
		items:         items,
		isConstructed: true,
	}, nil
}

// Validate ensures the Quote instance was properly constructed through NewQuote.
func (q *Quote) Validate() error {
	if q == nil || !q.isConstructed {
		return ErrQuoteIsNotConstructed
	}
	return nil
}

// StoreID returns the id of the store the cart belongs to.
func (q *Quote) StoreID() int64 { return q.storeID }

// CurrencyCode returns the ISO code of the cart currency.
func (q *Quote) CurrencyCode() string { return q.currencyCode }

// PriceMode returns whether the cart's prices are gross or net.
func (q *Quote) PriceMode() shipment.PriceMode { return q.priceMode }

// Items returns the cart's line items.
func (q *Quote) Items() []*shipment.Item { return q.items }
