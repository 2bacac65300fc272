package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/sparklewash/billing/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type Repository interface {
	CreateRecord(ctx context.Context, rec entity.BillingRecord) error
	Record(ctx context.Context, id uuid.UUID) (entity.BillingRecord, error)
	Records(ctx context.Context, f entity.RecordFilter) ([]entity.BillingRecord, int, error)
	UpdateRecord(ctx context.Context, rec entity.BillingRecord, updatedAt time.Time) (entity.BillingRecord, error)
	DeleteRecord(ctx context.Context, id uuid.UUID) error
	SubmitChangeRequest(ctx context.Context, id uuid.UUID, cr entity.ChangeRequest) (entity.BillingRecord, error)
	ResolveChangeRequest(ctx context.Context, id uuid.UUID, approved bool, resolvedBy uuid.UUID, ownerComment string, resolvedAt time.Time) (entity.BillingRecord, error)
	CreateServiceItem(ctx context.Context, item entity.ServiceItem) error
	ServiceItem(ctx context.Context, id uuid.UUID) (entity.ServiceItem, error)
	ServiceItems(ctx context.Context) ([]entity.ServiceItem, error)
	ServiceItemsByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.ServiceItem, error)
	UpdateServiceItem(ctx context.Context, item entity.ServiceItem) error
	DeleteServiceItem(ctx context.Context, id uuid.UUID) error
}

type Producer interface {
	SendRecordCreated(ctx context.Context, rec entity.BillingRecord)
	SendAmountChanged(ctx context.Context, recordID uuid.UUID, amount decimal.Decimal)
}

// action names a lifecycle operation for the permission table.
type action string

const (
	actionCreateRecord  action = "create record"
	actionUpdateRecord  action = "update record"
	actionDeleteRecord  action = "delete record"
	actionRequestChange action = "request change"
	actionResolveChange action = "resolve change"
	actionManageCatalog action = "manage catalog"
)

// rolePermissions is the single place deciding which role may start which
// operation. Record-level ownership (staff acting on their own records only)
// is checked separately against the fetched record.
var rolePermissions = map[action]map[entity.Role]bool{
	actionCreateRecord:  {entity.RoleOwner: true, entity.RoleStaff: true},
	actionUpdateRecord:  {entity.RoleOwner: true},
	actionDeleteRecord:  {entity.RoleOwner: true},
	actionRequestChange: {entity.RoleOwner: true, entity.RoleStaff: true},
	actionResolveChange: {entity.RoleOwner: true},
	actionManageCatalog: {entity.RoleOwner: true},
}

type Service struct {
	repo      Repository
	producer  Producer
	validator PricingValidator
}

func New(repo Repository, producer Producer, validator PricingValidator) *Service {
	return &Service{
		repo:      repo,
		producer:  producer,
		validator: validator,
	}
}

// caller resolves the authenticated user and checks the permission table.
func caller(ctx context.Context, a action) (entity.User, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.User{}, err
	}

	if !rolePermissions[a][user.Role] {
		return entity.User{}, fmt.Errorf("%w: role %q may not %s", entity.ErrForbidden, user.Role, a)
	}

	return user, nil
}

type CreateRecordParams struct {
	CustomerName string
	CarDetails   string
	ServiceIDs   []uuid.UUID
	ClaimedTotal decimal.Decimal
}

type CreateRecordResult struct {
	entity.RecordDetails
	CalculatedTotal decimal.Decimal
	PriceMismatch   bool
}

// CreateRecord persists a new billing record owned by the caller. The
// claimed total is checked against catalog prices; a mismatch beyond the
// tolerance is surfaced to the caller but does not block creation, so manual
// discounts stay possible.
func (s *Service) CreateRecord(ctx context.Context, p CreateRecordParams) (CreateRecordResult, error) {
	user, err := caller(ctx, actionCreateRecord)
	if err != nil {
		return CreateRecordResult{}, err
	}

	if strings.TrimSpace(p.CustomerName) == "" {
		return CreateRecordResult{}, fmt.Errorf("%w: empty customer name", entity.ErrInvalidArgument)
	}

	if len(p.ServiceIDs) == 0 {
		return CreateRecordResult{}, fmt.Errorf("%w: no service ids", entity.ErrInvalidArgument)
	}

	if p.ClaimedTotal.IsNegative() {
		return CreateRecordResult{}, fmt.Errorf("%w: claimed total %s is negative", entity.ErrInvalidArgument, p.ClaimedTotal)
	}

	items, err := s.repo.ServiceItemsByIDs(ctx, p.ServiceIDs)
	if err != nil {
		return CreateRecordResult{}, fmt.Errorf("get service items: %w", err)
	}

	calculated, mismatch, err := s.validator.Validate(items, p.ServiceIDs, p.ClaimedTotal)
	if err != nil {
		return CreateRecordResult{}, err
	}

	if mismatch {
		slog.WarnContext(ctx, "price mismatch on new record",
			"claimed", p.ClaimedTotal.String(), "calculated", calculated.String())
	}

	now := time.Now()

	rec := entity.BillingRecord{
		ID:            uuid.Must(uuid.NewV4()),
		CustomerName:  strings.TrimSpace(p.CustomerName),
		CarDetails:    strings.TrimSpace(p.CarDetails),
		ServiceIDs:    p.ServiceIDs,
		TotalAmount:   p.ClaimedTotal,
		StaffMemberID: user.ID,
		PaymentStatus: entity.PaymentStatusPending,
		Version:       1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = s.repo.CreateRecord(ctx, rec)
	if err != nil {
		return CreateRecordResult{}, fmt.Errorf("create record: %w", err)
	}

	s.producer.SendRecordCreated(ctx, rec)

	return CreateRecordResult{
		RecordDetails:   entity.RecordDetails{Record: rec, Items: items},
		CalculatedTotal: calculated,
		PriceMismatch:   mismatch,
	}, nil
}

// Records lists billing records for the caller: all of them for the owner,
// only their own for staff, regardless of the filter's staff id.
func (s *Service) Records(ctx context.Context, f entity.RecordFilter) ([]entity.BillingRecord, int, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return nil, 0, err
	}

	if user.Role != entity.RoleOwner {
		f.StaffMemberID = &user.ID
	}

	records, count, err := s.repo.Records(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("get records: %w", err)
	}

	return records, count, nil
}

func (s *Service) Record(ctx context.Context, id uuid.UUID) (entity.RecordDetails, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.RecordDetails{}, err
	}

	rec, err := s.repo.Record(ctx, id)
	if err != nil {
		return entity.RecordDetails{}, fmt.Errorf("get record %s: %w", id, err)
	}

	if !rec.VisibleTo(user) {
		return entity.RecordDetails{}, fmt.Errorf("%w: record %s belongs to another staff member", entity.ErrForbidden, id)
	}

	items, err := s.repo.ServiceItemsByIDs(ctx, rec.ServiceIDs)
	if err != nil {
		return entity.RecordDetails{}, fmt.Errorf("get service items: %w", err)
	}

	return entity.RecordDetails{Record: rec, Items: items}, nil
}

// UpdateRecord applies an owner patch to the mutable record fields. Service
// ids and the change request are out of scope here so the amend audit trail
// cannot be overwritten by a plain update.
func (s *Service) UpdateRecord(ctx context.Context, id uuid.UUID, patch entity.RecordPatch) (entity.BillingRecord, error) {
	_, err := caller(ctx, actionUpdateRecord)
	if err != nil {
		return entity.BillingRecord{}, err
	}

	err = patch.Validate()
	if err != nil {
		return entity.BillingRecord{}, err
	}

	rec, err := s.repo.Record(ctx, id)
	if err != nil {
		return entity.BillingRecord{}, fmt.Errorf("get record %s: %w", id, err)
	}

	amountChanged := false

	if patch.CustomerName != nil {
		rec.CustomerName = strings.TrimSpace(*patch.CustomerName)
	}

	if patch.CarDetails != nil {
		rec.CarDetails = strings.TrimSpace(*patch.CarDetails)
	}

	if patch.PaymentStatus != nil {
		rec.PaymentStatus = *patch.PaymentStatus
	}

	if patch.TotalAmount != nil && !patch.TotalAmount.Equal(rec.TotalAmount) {
		rec.TotalAmount = *patch.TotalAmount
		amountChanged = true
	}

	updated, err := s.repo.UpdateRecord(ctx, rec, time.Now())
	if err != nil {
		return entity.BillingRecord{}, fmt.Errorf("update record %s: %w", id, err)
	}

	if amountChanged {
		s.producer.SendAmountChanged(ctx, updated.ID, updated.TotalAmount)
	}

	return updated, nil
}

func (s *Service) DeleteRecord(ctx context.Context, id uuid.UUID) error {
	_, err := caller(ctx, actionDeleteRecord)
	if err != nil {
		return err
	}

	err = s.repo.DeleteRecord(ctx, id)
	if err != nil {
		return fmt.Errorf("delete record %s: %w", id, err)
	}

	return nil
}

// RequestChange submits an amount-change proposal for owner review. At most
// one request may be pending per record; the store enforces that atomically,
// so a concurrent duplicate surfaces as entity.ErrChangePending.
func (s *Service) RequestChange(ctx context.Context, id uuid.UUID, newAmount decimal.Decimal, reason string) (entity.BillingRecord, error) {
	user, err := caller(ctx, actionRequestChange)
	if err != nil {
		return entity.BillingRecord{}, err
	}

	cr := entity.ChangeRequest{
		NewAmount:   newAmount,
		Reason:      strings.TrimSpace(reason),
		RequestedBy: user.ID,
		RequestedAt: time.Now(),
	}

	err = cr.Validate()
	if err != nil {
		return entity.BillingRecord{}, err
	}

	rec, err := s.repo.Record(ctx, id)
	if err != nil {
		return entity.BillingRecord{}, fmt.Errorf("get record %s: %w", id, err)
	}

	if !rec.VisibleTo(user) {
		return entity.BillingRecord{}, fmt.Errorf("%w: record %s belongs to another staff member", entity.ErrForbidden, id)
	}

	updated, err := s.repo.SubmitChangeRequest(ctx, id, cr)
	if err != nil {
		return entity.BillingRecord{}, fmt.Errorf("submit change request for record %s: %w", id, err)
	}

	slog.InfoContext(ctx, "change requested",
		"record_id", id, "current", rec.TotalAmount.String(), "requested", newAmount.String())

	return updated, nil
}

// ResolveChange closes the pending change request. Approval sets the
// record's total to the requested amount; rejection leaves it as is. The
// payment status is deliberately not reverted when an already-paid record's
// amount changes.
func (s *Service) ResolveChange(ctx context.Context, id uuid.UUID, approved bool, ownerComment string) (entity.BillingRecord, error) {
	user, err := caller(ctx, actionResolveChange)
	if err != nil {
		return entity.BillingRecord{}, err
	}

	updated, err := s.repo.ResolveChangeRequest(ctx, id, approved, user.ID, strings.TrimSpace(ownerComment), time.Now())
	if err != nil {
		return entity.BillingRecord{}, fmt.Errorf("resolve change request for record %s: %w", id, err)
	}

	if approved {
		s.producer.SendAmountChanged(ctx, updated.ID, updated.TotalAmount)
	}

	slog.InfoContext(ctx, "change request resolved", "record_id", id, "approved", approved)

	return updated, nil
}

func (s *Service) CreateServiceItem(ctx context.Context, item entity.ServiceItem) (entity.ServiceItem, error) {
	_, err := caller(ctx, actionManageCatalog)
	if err != nil {
		return entity.ServiceItem{}, err
	}

	err = item.Validate()
	if err != nil {
		return entity.ServiceItem{}, err
	}

	now := time.Now()
	item.ID = uuid.Must(uuid.NewV4())
	item.CreatedAt = now
	item.UpdatedAt = now

	err = s.repo.CreateServiceItem(ctx, item)
	if err != nil {
		return entity.ServiceItem{}, fmt.Errorf("create service item: %w", err)
	}

	return item, nil
}

func (s *Service) ServiceItems(ctx context.Context) ([]entity.ServiceItem, error) {
	_, err := entity.UserFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.ServiceItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("get service items: %w", err)
	}

	return items, nil
}

func (s *Service) ServiceItem(ctx context.Context, id uuid.UUID) (entity.ServiceItem, error) {
	_, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.ServiceItem{}, err
	}

	item, err := s.repo.ServiceItem(ctx, id)
	if err != nil {
		return entity.ServiceItem{}, fmt.Errorf("get service item %s: %w", id, err)
	}

	return item, nil
}

func (s *Service) UpdateServiceItem(ctx context.Context, item entity.ServiceItem) (entity.ServiceItem, error) {
	_, err := caller(ctx, actionManageCatalog)
	if err != nil {
		return entity.ServiceItem{}, err
	}

	err = item.Validate()
	if err != nil {
		return entity.ServiceItem{}, err
	}

	item.UpdatedAt = time.Now()

	err = s.repo.UpdateServiceItem(ctx, item)
	if err != nil {
		return entity.ServiceItem{}, fmt.Errorf("update service item %s: %w", item.ID, err)
	}

	updated, err := s.repo.ServiceItem(ctx, item.ID)
	if err != nil {
		return entity.ServiceItem{}, fmt.Errorf("get service item %s: %w", item.ID, err)
	}

	return updated, nil
}

func (s *Service) DeleteServiceItem(ctx context.Context, id uuid.UUID) error {
	_, err := caller(ctx, actionManageCatalog)
	if err != nil {
		return err
	}

	err = s.repo.DeleteServiceItem(ctx, id)
	if err != nil {
		return fmt.Errorf("delete service item %s: %w", id, err)
	}

	return nil
}
