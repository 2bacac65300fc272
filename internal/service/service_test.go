package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sparklewash/billing/internal/entity"
	"github.com/sparklewash/billing/internal/mocks"
	"github.com/sparklewash/billing/internal/service"
)

func newService(t *testing.T) (*service.Service, *mocks.MockRepository, *mocks.MockProducer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	s := service.New(repo, producer, service.NewPricingValidator(decimal.NewFromFloat(0.01)))

	return s, repo, producer
}

func ctxWithUser(role entity.Role) (context.Context, entity.User) {
	user := entity.User{
		ID:       uuid.Must(uuid.NewV4()),
		Username: "test-" + role.String(),
		Role:     role,
	}

	return entity.CtxWithUser(context.Background(), user), user
}

func TestService_CreateRecord(t *testing.T) {
	t.Parallel()

	s, repo, producer := newService(t)
	ctx, staff := ctxWithUser(entity.RoleStaff)

	items := []entity.ServiceItem{
		{ID: uuid.Must(uuid.NewV4()), Name: "Basic wash", Price: decimal.NewFromInt(20), Category: entity.CategoryBasicWash},
		{ID: uuid.Must(uuid.NewV4()), Name: "Wax", Price: decimal.NewFromFloat(15.5), Category: entity.CategoryAdditionalServices},
	}
	ids := []uuid.UUID{items[0].ID, items[1].ID}

	repo.EXPECT().ServiceItemsByIDs(ctx, ids).Return(items, nil)

	var stored entity.BillingRecord

	repo.EXPECT().CreateRecord(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, rec entity.BillingRecord) error {
			stored = rec
			return nil
		})
	producer.EXPECT().SendRecordCreated(ctx, gomock.Any())

	result, err := s.CreateRecord(ctx, service.CreateRecordParams{
		CustomerName: "  John Smith ",
		CarDetails:   "Blue sedan",
		ServiceIDs:   ids,
		ClaimedTotal: decimal.NewFromFloat(35.5),
	})
	require.NoError(t, err)

	require.Equal(t, "John Smith", stored.CustomerName)
	require.Equal(t, staff.ID, stored.StaffMemberID)
	require.Equal(t, entity.PaymentStatusPending, stored.PaymentStatus)
	require.Equal(t, int64(1), stored.Version)
	require.Nil(t, stored.Change)

	require.False(t, result.PriceMismatch)
	require.True(t, result.CalculatedTotal.Equal(decimal.NewFromFloat(35.5)))
	require.Len(t, result.Items, 2)
}

func TestService_CreateRecord_PriceMismatch(t *testing.T) {
	t.Parallel()

	s, repo, producer := newService(t)
	ctx, _ := ctxWithUser(entity.RoleStaff)

	item := entity.ServiceItem{ID: uuid.Must(uuid.NewV4()), Name: "Basic wash", Price: decimal.NewFromInt(20)}

	repo.EXPECT().ServiceItemsByIDs(ctx, []uuid.UUID{item.ID}).Return([]entity.ServiceItem{item}, nil)
	repo.EXPECT().CreateRecord(ctx, gomock.Any()).Return(nil)
	producer.EXPECT().SendRecordCreated(ctx, gomock.Any())

	// Claimed total drifts by more than the tolerance; the record is still
	// created with the claimed value and the drift is surfaced.
	result, err := s.CreateRecord(ctx, service.CreateRecordParams{
		CustomerName: "Jane",
		ServiceIDs:   []uuid.UUID{item.ID},
		ClaimedTotal: decimal.NewFromInt(15),
	})
	require.NoError(t, err)

	require.True(t, result.PriceMismatch)
	require.True(t, result.Record.TotalAmount.Equal(decimal.NewFromInt(15)))
	require.True(t, result.CalculatedTotal.Equal(decimal.NewFromInt(20)))
}

func TestService_CreateRecord_UnknownService(t *testing.T) {
	t.Parallel()

	s, repo, _ := newService(t)
	ctx, _ := ctxWithUser(entity.RoleStaff)

	unknown := uuid.Must(uuid.NewV4())

	repo.EXPECT().ServiceItemsByIDs(ctx, []uuid.UUID{unknown}).Return(nil, nil)

	_, err := s.CreateRecord(ctx, service.CreateRecordParams{
		CustomerName: "Jane",
		ServiceIDs:   []uuid.UUID{unknown},
		ClaimedTotal: decimal.NewFromInt(20),
	})
	require.ErrorIs(t, err, entity.ErrInvalidReference)
}

func TestService_CreateRecord_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params service.CreateRecordParams
	}{
		{
			name: "empty customer name",
			params: service.CreateRecordParams{
				CustomerName: "   ",
				ServiceIDs:   []uuid.UUID{uuid.Must(uuid.NewV4())},
				ClaimedTotal: decimal.NewFromInt(10),
			},
		},
		{
			name: "no service ids",
			params: service.CreateRecordParams{
				CustomerName: "Jane",
				ClaimedTotal: decimal.NewFromInt(10),
			},
		},
		{
			name: "negative total",
			params: service.CreateRecordParams{
				CustomerName: "Jane",
				ServiceIDs:   []uuid.UUID{uuid.Must(uuid.NewV4())},
				ClaimedTotal: decimal.NewFromInt(-1),
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, _, _ := newService(t)
			ctx, _ := ctxWithUser(entity.RoleStaff)

			_, err := s.CreateRecord(ctx, tt.params)
			require.ErrorIs(t, err, entity.ErrInvalidArgument)
		})
	}
}

func TestService_Records_StaffScoped(t *testing.T) {
	t.Parallel()

	s, repo, _ := newService(t)
	ctx, staff := ctxWithUser(entity.RoleStaff)

	other := uuid.Must(uuid.NewV4())

	// Staff asking for another staff member's records must still get their own.
	repo.EXPECT().Records(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, f entity.RecordFilter) ([]entity.BillingRecord, int, error) {
			require.NotNil(t, f.StaffMemberID)
			require.Equal(t, staff.ID, *f.StaffMemberID)
			return []entity.BillingRecord{}, 0, nil
		})

	_, _, err := s.Records(ctx, entity.RecordFilter{StaffMemberID: &other, Page: 1, Limit: 10})
	require.NoError(t, err)
}

func TestService_Records_OwnerSeesAll(t *testing.T) {
	t.Parallel()

	s, repo, _ := newService(t)
	ctx, _ := ctxWithUser(entity.RoleOwner)

	repo.EXPECT().Records(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, f entity.RecordFilter) ([]entity.BillingRecord, int, error) {
			require.Nil(t, f.StaffMemberID)
			return []entity.BillingRecord{{ID: uuid.Must(uuid.NewV4())}}, 1, nil
		})

	records, count, err := s.Records(ctx, entity.RecordFilter{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, 1, count)
}

func TestService_Record_ForbiddenForOtherStaff(t *testing.T) {
	t.Parallel()

	s, repo, _ := newService(t)
	ctx, _ := ctxWithUser(entity.RoleStaff)

	rec := entity.BillingRecord{
		ID:            uuid.Must(uuid.NewV4()),
		StaffMemberID: uuid.Must(uuid.NewV4()),
	}

	repo.EXPECT().Record(ctx, rec.ID).Return(rec, nil)

	_, err := s.Record(ctx, rec.ID)
	require.ErrorIs(t, err, entity.ErrForbidden)
}

func TestService_UpdateRecord(t *testing.T) {
	t.Parallel()

	s, repo, producer := newService(t)
	ctx, _ := ctxWithUser(entity.RoleOwner)

	rec := entity.BillingRecord{
		ID:            uuid.Must(uuid.NewV4()),
		CustomerName:  "Jane",
		TotalAmount:   decimal.NewFromInt(30),
		StaffMemberID: uuid.Must(uuid.NewV4()),
		PaymentStatus: entity.PaymentStatusPending,
		Version:       1,
	}

	newName := "Jane Doe"
	newAmount := decimal.NewFromInt(25)
	paid := entity.PaymentStatusPaid

	repo.EXPECT().Record(ctx, rec.ID).Return(rec, nil)
	repo.EXPECT().UpdateRecord(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, updated entity.BillingRecord, _ time.Time) (entity.BillingRecord, error) {
			require.Equal(t, newName, updated.CustomerName)
			require.Equal(t, paid, updated.PaymentStatus)
			require.True(t, updated.TotalAmount.Equal(newAmount))
			updated.Version++
			return updated, nil
		})
	producer.EXPECT().SendAmountChanged(ctx, rec.ID, gomock.Any())

	updated, err := s.UpdateRecord(ctx, rec.ID, entity.RecordPatch{
		CustomerName:  &newName,
		PaymentStatus: &paid,
		TotalAmount:   &newAmount,
	})
	require.NoError(t, err)
	require.Equal(t, int64(2), updated.Version)
}

func TestService_UpdateRecord_VersionConflict(t *testing.T) {
	t.Parallel()

	s, repo, _ := newService(t)
	ctx, _ := ctxWithUser(entity.RoleOwner)

	rec := entity.BillingRecord{ID: uuid.Must(uuid.NewV4()), CustomerName: "Jane", Version: 1}
	newName := "Jane Doe"

	repo.EXPECT().Record(ctx, rec.ID).Return(rec, nil)
	repo.EXPECT().UpdateRecord(ctx, gomock.Any(), gomock.Any()).
		Return(entity.BillingRecord{}, entity.ErrVersionConflict)

	_, err := s.UpdateRecord(ctx, rec.ID, entity.RecordPatch{CustomerName: &newName})
	require.ErrorIs(t, err, entity.ErrVersionConflict)
}

func TestService_RequestChange(t *testing.T) {
	t.Parallel()

	s, repo, _ := newService(t)
	ctx, staff := ctxWithUser(entity.RoleStaff)

	rec := entity.BillingRecord{
		ID:            uuid.Must(uuid.NewV4()),
		TotalAmount:   decimal.NewFromInt(40),
		StaffMemberID: staff.ID,
	}

	newAmount := decimal.NewFromInt(30)

	repo.EXPECT().Record(ctx, rec.ID).Return(rec, nil)
	repo.EXPECT().SubmitChangeRequest(ctx, rec.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, cr entity.ChangeRequest) (entity.BillingRecord, error) {
			require.True(t, cr.NewAmount.Equal(newAmount))
			require.Equal(t, "customer was overcharged", cr.Reason)
			require.Equal(t, staff.ID, cr.RequestedBy)
			require.False(t, cr.Resolved)

			rec.Change = &cr
			return rec, nil
		})

	updated, err := s.RequestChange(ctx, rec.ID, newAmount, " customer was overcharged ")
	require.NoError(t, err)
	require.True(t, updated.ChangePending())
}

func TestService_RequestChange_AlreadyPending(t *testing.T) {
	t.Parallel()

	s, repo, _ := newService(t)
	ctx, staff := ctxWithUser(entity.RoleStaff)

	rec := entity.BillingRecord{ID: uuid.Must(uuid.NewV4()), StaffMemberID: staff.ID}

	repo.EXPECT().Record(ctx, rec.ID).Return(rec, nil)
	repo.EXPECT().SubmitChangeRequest(ctx, rec.ID, gomock.Any()).
		Return(entity.BillingRecord{}, entity.ErrChangePending)

	_, err := s.RequestChange(ctx, rec.ID, decimal.NewFromInt(10), "duplicate")
	require.ErrorIs(t, err, entity.ErrChangePending)
}

func TestService_RequestChange_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		amount decimal.Decimal
		reason string
	}{
		{name: "negative amount", amount: decimal.NewFromInt(-5), reason: "typo"},
		{name: "empty reason", amount: decimal.NewFromInt(5), reason: "   "},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, _, _ := newService(t)
			ctx, _ := ctxWithUser(entity.RoleStaff)

			_, err := s.RequestChange(ctx, uuid.Must(uuid.NewV4()), tt.amount, tt.reason)
			require.ErrorIs(t, err, entity.ErrInvalidArgument)
		})
	}
}

func TestService_ResolveChange_Approved(t *testing.T) {
	t.Parallel()

	s, repo, producer := newService(t)
	ctx, owner := ctxWithUser(entity.RoleOwner)

	newAmount := decimal.NewFromInt(30)
	approved := true

	rec := entity.BillingRecord{
		ID:          uuid.Must(uuid.NewV4()),
		TotalAmount: newAmount,
		Change: &entity.ChangeRequest{
			NewAmount: newAmount,
			Resolved:  true,
			Approved:  &approved,
		},
	}

	repo.EXPECT().ResolveChangeRequest(ctx, rec.ID, true, owner.ID, "fair point", gomock.Any()).
		Return(rec, nil)
	producer.EXPECT().SendAmountChanged(ctx, rec.ID, gomock.Any())

	updated, err := s.ResolveChange(ctx, rec.ID, true, " fair point ")
	require.NoError(t, err)
	require.True(t, updated.TotalAmount.Equal(newAmount))
	require.False(t, updated.ChangePending())
}

func TestService_ResolveChange_Rejected(t *testing.T) {
	t.Parallel()

	s, repo, _ := newService(t)
	ctx, owner := ctxWithUser(entity.RoleOwner)

	rejected := false

	rec := entity.BillingRecord{
		ID:          uuid.Must(uuid.NewV4()),
		TotalAmount: decimal.NewFromInt(40),
		Change: &entity.ChangeRequest{
			NewAmount: decimal.NewFromInt(30),
			Resolved:  true,
			Approved:  &rejected,
		},
	}

	// No SendAmountChanged expected on rejection.
	repo.EXPECT().ResolveChangeRequest(ctx, rec.ID, false, owner.ID, "", gomock.Any()).
		Return(rec, nil)

	updated, err := s.ResolveChange(ctx, rec.ID, false, "")
	require.NoError(t, err)
	require.True(t, updated.TotalAmount.Equal(decimal.NewFromInt(40)))
}

func TestService_ResolveChange_NothingPending(t *testing.T) {
	t.Parallel()

	s, repo, _ := newService(t)
	ctx, owner := ctxWithUser(entity.RoleOwner)

	id := uuid.Must(uuid.NewV4())

	repo.EXPECT().ResolveChangeRequest(ctx, id, true, owner.ID, "", gomock.Any()).
		Return(entity.BillingRecord{}, entity.ErrNoChangePending)

	_, err := s.ResolveChange(ctx, id, true, "")
	require.ErrorIs(t, err, entity.ErrNoChangePending)
}

func TestService_Permissions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		call func(ctx context.Context, s *service.Service) error
	}{
		{
			name: "staff may not update records",
			call: func(ctx context.Context, s *service.Service) error {
				name := "Jane"
				_, err := s.UpdateRecord(ctx, uuid.Must(uuid.NewV4()), entity.RecordPatch{CustomerName: &name})
				return err
			},
		},
		{
			name: "staff may not delete records",
			call: func(ctx context.Context, s *service.Service) error {
				return s.DeleteRecord(ctx, uuid.Must(uuid.NewV4()))
			},
		},
		{
			name: "staff may not resolve change requests",
			call: func(ctx context.Context, s *service.Service) error {
				_, err := s.ResolveChange(ctx, uuid.Must(uuid.NewV4()), true, "")
				return err
			},
		},
		{
			name: "staff may not manage the catalog",
			call: func(ctx context.Context, s *service.Service) error {
				_, err := s.CreateServiceItem(ctx, entity.ServiceItem{
					Name:     "Wax",
					Price:    decimal.NewFromInt(10),
					Category: entity.CategoryAdditionalServices,
				})
				return err
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, _, _ := newService(t)
			ctx, _ := ctxWithUser(entity.RoleStaff)

			require.ErrorIs(t, tt.call(ctx, s), entity.ErrForbidden)
		})
	}
}

func TestService_Unauthenticated(t *testing.T) {
	t.Parallel()

	s, _, _ := newService(t)

	_, err := s.Record(context.Background(), uuid.Must(uuid.NewV4()))
	require.ErrorIs(t, err, entity.ErrUnauthenticated)

	_, _, err = s.Records(context.Background(), entity.RecordFilter{})
	require.ErrorIs(t, err, entity.ErrUnauthenticated)
}

func TestService_CreateServiceItem(t *testing.T) {
	t.Parallel()

	s, repo, _ := newService(t)
	ctx, _ := ctxWithUser(entity.RoleOwner)

	repo.EXPECT().CreateServiceItem(ctx, gomock.Any()).Return(nil)

	item, err := s.CreateServiceItem(ctx, entity.ServiceItem{
		Name:     "Interior detailing",
		Price:    decimal.NewFromInt(80),
		Category: entity.CategoryDetailingServices,
	})
	require.NoError(t, err)
	require.False(t, item.ID.IsNil())
	require.False(t, item.CreatedAt.IsZero())
}
