package shipment

import (
	"errors"

	"shipping/internal/pkg/errs"
)

// ErrGroupIsNotConstructed is returned when a Group instance was not created
// through the NewGroup factory method.
var ErrGroupIsNotConstructed = errors.New("Group must be created via NewGroup constructor")

// Group is a set of items that travel together in one shipment. The group is
// identified by the hash derived from its shipment's structural identity;
// all member items carry the same hash.
type Group struct {
	hash     GroupHash
	shipment *Shipment
	items    []*Item

	availableMethods []AvailableMethod

	isConstructed bool
}

// NewGroup creates a shipment group for the given shipment draft.
func NewGroup(hash GroupHash, shipment *Shipment) (*Group, error) {
	if hash == "" {
		return nil, errs.NewValueIsRequiredError("group.hash")
	}
	if shipment == nil {
		return nil, errs.NewValueIsRequiredError("group.shipment")
	}

	return &Group{
		hash:          hash,
		shipment:      shipment,
		isConstructed: true,
	}, nil
}

// Validate ensures the Group instance was properly constructed through NewGroup.
func (g *Group) Validate() error {
	if g == nil || !g.isConstructed {
		return ErrGroupIsNotConstructed
	}
	return nil
}

// Hash returns the group's derived identity.
func (g *Group) Hash() GroupHash { return g.hash }

// Shipment returns the shipment shared by all items of the group.
func (g *Group) Shipment() *Shipment { return g.shipment }

// Items returns the member items in the order they were added.
func (g *Group) Items() []*Item { return g.items }

// AddItem appends an item to the group and stamps the group hash on it.
func (g *Group) AddItem(item *Item) {
	item.SetGroupHash(g.hash)
	g.items = append(g.items, item)
}

// AvailableMethods returns the methods offered for this group, populated by
// the availability builder. Empty until the builder has run, and empty again
// when building failed for this group.
func (g *Group) AvailableMethods() []AvailableMethod { return g.availableMethods }

// SetAvailableMethods records the methods offered for this group.
func (g *Group) SetAvailableMethods(methods []AvailableMethod) {
	g.availableMethods = methods
}
