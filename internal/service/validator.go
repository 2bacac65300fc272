package service

import (
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/sparklewash/billing/internal/entity"
)

// PricingValidator sums authoritative catalog prices for a creation request
// and flags claimed totals drifting beyond an absolute tolerance. The
// tolerance absorbs floating rounding on the client side and comes from
// configuration, not a literal.
type PricingValidator struct {
	tolerance decimal.Decimal
}

func NewPricingValidator(tolerance decimal.Decimal) PricingValidator {
	return PricingValidator{tolerance: tolerance}
}

// Validate returns the authoritative total for the requested ids and whether
// the claimed total mismatches it. Any id without a catalog item is a hard
// entity.ErrInvalidReference. A difference of exactly the tolerance is not a
// mismatch.
func (v PricingValidator) Validate(
	items []entity.ServiceItem,
	ids []uuid.UUID,
	claimed decimal.Decimal,
) (decimal.Decimal, bool, error) {
	byID := make(map[uuid.UUID]entity.ServiceItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	total := decimal.Zero

	for _, id := range ids {
		item, ok := byID[id]
		if !ok {
			return decimal.Zero, false, fmt.Errorf("%w: service %s", entity.ErrInvalidReference, id)
		}

		total = total.Add(item.Price)
	}

	mismatch := total.Sub(claimed).Abs().GreaterThan(v.tolerance)

	return total, mismatch, nil
}
