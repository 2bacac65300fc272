package entity_test

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/sparklewash/billing/internal/entity"
)

func TestBillingRecord_ChangePending(t *testing.T) {
	t.Parallel()

	approved := true

	for _, tt := range []struct {
		name        string
		change      *entity.ChangeRequest
		wantPending bool
	}{
		{
			name:        "no request",
			change:      nil,
			wantPending: false,
		},
		{
			name: "unresolved request",
			change: &entity.ChangeRequest{
				NewAmount:   decimal.NewFromInt(40),
				Reason:      "loyalty discount",
				RequestedAt: time.Now(),
			},
			wantPending: true,
		},
		{
			name: "resolved request",
			change: &entity.ChangeRequest{
				NewAmount: decimal.NewFromInt(40),
				Reason:    "loyalty discount",
				Resolved:  true,
				Approved:  &approved,
			},
			wantPending: false,
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := entity.BillingRecord{Change: tt.change}
			if got := r.ChangePending(); got != tt.wantPending {
				t.Errorf("ChangePending() = %v, want %v", got, tt.wantPending)
			}
		})
	}
}

func TestBillingRecord_VisibleTo(t *testing.T) {
	t.Parallel()

	author := uuid.Must(uuid.NewV4())
	other := uuid.Must(uuid.NewV4())

	record := entity.BillingRecord{StaffMemberID: author}

	for _, tt := range []struct {
		name string
		user entity.User
		want bool
	}{
		{
			name: "owner sees any record",
			user: entity.User{ID: other, Role: entity.RoleOwner},
			want: true,
		},
		{
			name: "staff sees own record",
			user: entity.User{ID: author, Role: entity.RoleStaff},
			want: true,
		},
		{
			name: "staff does not see foreign record",
			user: entity.User{ID: other, Role: entity.RoleStaff},
			want: false,
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := record.VisibleTo(tt.user); got != tt.want {
				t.Errorf("VisibleTo() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRecordPatch_Validate(t *testing.T) {
	t.Parallel()

	empty := "  "
	name := "J. Smith"
	badStatus := entity.PaymentStatus("refunded")
	paid := entity.PaymentStatusPaid
	negative := decimal.NewFromInt(-1)
	zero := decimal.Zero

	for _, tt := range []struct {
		name    string
		patch   entity.RecordPatch
		wantErr bool
	}{
		{name: "empty patch", patch: entity.RecordPatch{}, wantErr: false},
		{name: "valid fields", patch: entity.RecordPatch{CustomerName: &name, PaymentStatus: &paid, TotalAmount: &zero}, wantErr: false},
		{name: "blank customer name", patch: entity.RecordPatch{CustomerName: &empty}, wantErr: true},
		{name: "unknown payment status", patch: entity.RecordPatch{PaymentStatus: &badStatus}, wantErr: true},
		{name: "negative total", patch: entity.RecordPatch{TotalAmount: &negative}, wantErr: true},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.patch.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
