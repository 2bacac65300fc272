package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type RecordFilter struct {
	StaffMemberID *uuid.UUID
	PaymentStatus *PaymentStatus
	Page          uint64
	Limit         uint64
	SortBy        RecordSortCol
	OrderBy       OrderByCol
}

type RecordSortCol string

func (c RecordSortCol) String() string {
	return string(c)
}

const (
	SortByCreatedAt    RecordSortCol = "created_at"
	SortByTotalAmount  RecordSortCol = "total_amount"
	SortByCustomerName RecordSortCol = "customer_name"
)

func (c RecordSortCol) IsValid() bool {
	switch c {
	case SortByCreatedAt, SortByTotalAmount, SortByCustomerName:
		return true
	}

	return false
}

type OrderByCol string

func (o OrderByCol) String() string {
	return string(o)
}

const (
	DESC OrderByCol = "desc"
	ASC  OrderByCol = "asc"
)

func (o OrderByCol) IsValid() bool {
	switch o {
	case DESC, ASC:
		return true
	}

	return false
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

func (p PaymentStatus) String() string {
	return string(p)
}

func (p PaymentStatus) Validate() error {
	switch p {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusCancelled:
		return nil
	default:
		return fmt.Errorf("%w: unknown payment status %q", ErrInvalidArgument, p.String())
	}
}

// ChangeRequest is a staff-submitted proposal to alter a record's total
// amount. A record holds at most one: a new request may only be submitted
// once the previous one is resolved, and submitting overwrites the
// resolved block.
type ChangeRequest struct {
	NewAmount    decimal.Decimal
	Reason       string
	RequestedBy  uuid.UUID
	RequestedAt  time.Time
	Resolved     bool
	Approved     *bool // nil until resolved
	ResolvedBy   uuid.UUID
	ResolvedAt   *time.Time
	OwnerComment string
}

func (c ChangeRequest) Validate() error {
	if c.NewAmount.IsNegative() {
		return fmt.Errorf("%w: new amount %s is negative", ErrInvalidArgument, c.NewAmount)
	}

	if strings.TrimSpace(c.Reason) == "" {
		return fmt.Errorf("%w: empty reason", ErrInvalidArgument)
	}

	return nil
}

// BillingRecord is a single car-wash transaction. ServiceIDs are fixed at
// creation; altering line items requires a new record. Version guards every
// write for optimistic concurrency.
type BillingRecord struct {
	ID            uuid.UUID
	CustomerName  string
	CarDetails    string
	ServiceIDs    []uuid.UUID
	TotalAmount   decimal.Decimal
	StaffMemberID uuid.UUID
	PaymentStatus PaymentStatus
	Change        *ChangeRequest
	Version       int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ChangePending reports whether a change request is awaiting the owner's
// resolution.
func (r BillingRecord) ChangePending() bool {
	return r.Change != nil && !r.Change.Resolved
}

// VisibleTo reports whether the record can be read by the given user: staff
// see only their own records, the owner sees all.
func (r BillingRecord) VisibleTo(u User) bool {
	return u.Role == RoleOwner || r.StaffMemberID == u.ID
}

// RecordPatch is an owner-only partial update. Nil fields are left untouched.
// ServiceIDs and the change request have dedicated operations and are never
// patched here.
type RecordPatch struct {
	CustomerName  *string
	CarDetails    *string
	PaymentStatus *PaymentStatus
	TotalAmount   *decimal.Decimal
}

func (p RecordPatch) Validate() error {
	if p.CustomerName != nil && strings.TrimSpace(*p.CustomerName) == "" {
		return fmt.Errorf("%w: empty customer name", ErrInvalidArgument)
	}

	if p.PaymentStatus != nil {
		if err := p.PaymentStatus.Validate(); err != nil {
			return err
		}
	}

	if p.TotalAmount != nil && p.TotalAmount.IsNegative() {
		return fmt.Errorf("%w: total amount %s is negative", ErrInvalidArgument, p.TotalAmount)
	}

	return nil
}

// RecordDetails is a record together with its resolved catalog items,
// returned by create and get for the caller's convenience.
type RecordDetails struct {
	Record BillingRecord
	Items  []ServiceItem
}
