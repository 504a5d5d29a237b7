package shipment

import (
	"crypto/md5" //nolint:gosec // key derivation, not security
	"encoding/hex"
	"fmt"
	"strconv"
)

// groupHashPattern is the canonical serialization of a shipment's structural
// identity: method id, canonical address key, requested delivery date.
// Absent parts serialize as empty strings.
const groupHashPattern = "%s-%s-%s"

// GroupHash is the derived identity of "one shipment". All items whose
// shipment serializes to the same triple share a hash and therefore travel in
// one shipment group. The digest must stay stable across processes: persisted
// group assignments are compared against freshly derived hashes.
type GroupHash string

// String returns the hex digest.
func (h GroupHash) String() string {
	return string(h)
}

// DeriveGroupHash computes the group hash for a shipment draft from the
// canonical address key produced by the address equivalence service.
//
// Two shipments with identical (method id, address key, delivery date)
// triples yield identical hashes; any difference, including presence versus
// absence of the delivery date, yields a different hash.
func DeriveGroupHash(s *Shipment, addressKey string) GroupHash {
	methodID := ""
	if s.Method() != nil {
		methodID = strconv.FormatInt(s.Method().ID(), 10)
	}

	deliveryDate := ""
	if s.RequestedDeliveryDate() != nil {
		deliveryDate = *s.RequestedDeliveryDate()
	}

	sum := md5.Sum([]byte(fmt.Sprintf(groupHashPattern, methodID, addressKey, deliveryDate))) //nolint:gosec // see above
	return GroupHash(hex.EncodeToString(sum[:]))
}
