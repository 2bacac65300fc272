package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type ServiceCategory string

const (
	CategoryBasicWash          ServiceCategory = "basic_wash"
	CategoryPremiumWash        ServiceCategory = "premium_wash"
	CategoryDetailingServices  ServiceCategory = "detailing_services"
	CategoryAdditionalServices ServiceCategory = "additional_services"
	CategoryPackageDeals       ServiceCategory = "package_deals"
)

func (c ServiceCategory) String() string {
	return string(c)
}

func (c ServiceCategory) Validate() error {
	switch c {
	case CategoryBasicWash, CategoryPremiumWash, CategoryDetailingServices,
		CategoryAdditionalServices, CategoryPackageDeals:
		return nil
	default:
		return fmt.Errorf("%w: unknown service category %q", ErrInvalidArgument, c.String())
	}
}

// ServiceItem is a priced catalog offering referenced by billing records.
type ServiceItem struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	Category    ServiceCategory
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (s ServiceItem) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: empty service name", ErrInvalidArgument)
	}

	if s.Price.IsNegative() {
		return fmt.Errorf("%w: price %s is negative", ErrInvalidArgument, s.Price)
	}

	return s.Category.Validate()
}
