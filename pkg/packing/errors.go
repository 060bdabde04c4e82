// Package packing turns the blocks of a shipping-label PDF into a packing list:
// classify anchors, select blocks to drop or rewrite, synthesize the region
// blocks and move the item table up under the customer name.
package packing

import (
	"errors"
	"fmt"
)

// ErrAnchorMissing is returned when a block the template relies on is absent
var ErrAnchorMissing = errors.New("anchor block missing")

// Anchor roles
const (
	RoleOrder       = "order"
	RoleShipTo      = "ship-to"
	RoleCustomer    = "customer"
	RoleHeader      = "header"
	RolePredecessor = "header predecessor"
)

// AnchorError reports which anchor could not be located
type AnchorError struct {
	Role   string
	Detail string
}

func (e *AnchorError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s anchor missing", e.Role)
	}
	return fmt.Sprintf("%s anchor missing: %s", e.Role, e.Detail)
}

// Unwrap lets errors.Is match ErrAnchorMissing
func (e *AnchorError) Unwrap() error {
	return ErrAnchorMissing
}
