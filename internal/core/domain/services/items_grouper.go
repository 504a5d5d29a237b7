package services

import (
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"
)

// ItemsGrouper is a domain service that distributes items over shipment
// groups. Items whose shipments serialize to the same (method id, address,
// delivery date) triple end up in one group; group order follows the first
// occurrence of each triple in the item list.
//
// The grouper requires every item to carry a shipment draft. Hash derivation
// itself tolerates drafts with a missing method or address, so partially
// configured carts still group deterministically.
type ItemsGrouper struct{}

// NewItemsGrouper creates a new ItemsGrouper instance.
func NewItemsGrouper() ItemsGrouper {
	return ItemsGrouper{}
}

// HashKey derives the group hash of a shipment draft. A nil address
// contributes an empty key, matching the serialization of absent parts.
func (g ItemsGrouper) HashKey(s *shipment.Shipment) (shipment.GroupHash, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}

	addressKey := ""
	if s.ShippingAddress() != nil {
		addressKey = s.ShippingAddress().CanonicalKey()
	}

	return shipment.DeriveGroupHash(s, addressKey), nil
}

// Group distributes the items over shipment groups in first-occurrence order.
// Every item must carry a shipment draft; the first item without one aborts
// grouping with a value-is-required error.
func (g ItemsGrouper) Group(items []*shipment.Item) ([]*shipment.Group, error) {
	var groups []*shipment.Group
	index := make(map[shipment.GroupHash]*shipment.Group)

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		if item.Shipment() == nil {
			return nil, errs.NewValueIsRequiredError("item.shipment")
		}

		hash, err := g.HashKey(item.Shipment())
		if err != nil {
			return nil, err
		}

		group, ok := index[hash]
		if !ok {
			group, err = shipment.NewGroup(hash, item.Shipment())
			if err != nil {
				return nil, err
			}
			index[hash] = group
			groups = append(groups, group)
		}

		group.AddItem(item)
	}

	return groups, nil
}
