package service_test

import (
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/sparklewash/billing/internal/entity"
	"github.com/sparklewash/billing/internal/service"
)

func TestPricingValidator_Validate(t *testing.T) {
	t.Parallel()

	items := []entity.ServiceItem{
		{ID: uuid.Must(uuid.NewV4()), Name: "Basic wash", Price: decimal.NewFromFloat(19.99)},
		{ID: uuid.Must(uuid.NewV4()), Name: "Wax", Price: decimal.NewFromFloat(15.01)},
	}
	ids := []uuid.UUID{items[0].ID, items[1].ID}

	v := service.NewPricingValidator(decimal.NewFromFloat(0.01))

	tests := []struct {
		name     string
		claimed  decimal.Decimal
		mismatch bool
	}{
		{name: "exact match", claimed: decimal.NewFromFloat(35.00), mismatch: false},
		{name: "off by exactly the tolerance", claimed: decimal.NewFromFloat(34.99), mismatch: false},
		{name: "off by just over the tolerance", claimed: decimal.NewFromFloat(34.985), mismatch: true},
		{name: "off by a lot", claimed: decimal.NewFromInt(20), mismatch: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			total, mismatch, err := v.Validate(items, ids, tt.claimed)
			require.NoError(t, err)
			require.True(t, total.Equal(decimal.NewFromFloat(35.00)))
			require.Equal(t, tt.mismatch, mismatch)
		})
	}
}

func TestPricingValidator_DuplicateIDsCounted(t *testing.T) {
	t.Parallel()

	item := entity.ServiceItem{ID: uuid.Must(uuid.NewV4()), Name: "Basic wash", Price: decimal.NewFromInt(20)}

	v := service.NewPricingValidator(decimal.NewFromFloat(0.01))

	// The same service twice is charged twice.
	total, mismatch, err := v.Validate(
		[]entity.ServiceItem{item},
		[]uuid.UUID{item.ID, item.ID},
		decimal.NewFromInt(40),
	)
	require.NoError(t, err)
	require.True(t, total.Equal(decimal.NewFromInt(40)))
	require.False(t, mismatch)
}

func TestPricingValidator_UnknownService(t *testing.T) {
	t.Parallel()

	v := service.NewPricingValidator(decimal.NewFromFloat(0.01))

	_, _, err := v.Validate(nil, []uuid.UUID{uuid.Must(uuid.NewV4())}, decimal.NewFromInt(10))
	require.ErrorIs(t, err, entity.ErrInvalidReference)
}
