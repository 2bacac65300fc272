package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/sparklewash/billing/internal/entity"
)

// queryTimeout bounds every store call; an expired deadline surfaces as
// entity.ErrStorageUnavailable so callers can tell transient store failures
// from domain errors.
const queryTimeout = 3 * time.Second

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

func (r *Repository) CreateRecord(ctx context.Context, rec entity.BillingRecord) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	const q = `
	INSERT INTO billing_records (
		id,
		customer_name,
		car_details,
		service_ids,
		total_amount,
		staff_member_id,
		payment_status,
		version,
		created_at,
		updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		rec.ID,
		rec.CustomerName,
		rec.CarDetails,
		rec.ServiceIDs,
		rec.TotalAmount,
		rec.StaffMemberID,
		rec.PaymentStatus,
		rec.Version,
		rec.CreatedAt,
		rec.UpdatedAt,
	)
	if err != nil {
		return storeErr(err)
	}

	return nil
}

func (r *Repository) Record(ctx context.Context, id uuid.UUID) (entity.BillingRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	q := selectRecord + " WHERE id = $1"

	return scanRecord(r.db.QueryRow(ctx, q, id))
}

func (r *Repository) Records(ctx context.Context, f entity.RecordFilter) ([]entity.BillingRecord, int, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt := sq.Select(
		"id",
		"customer_name",
		"car_details",
		"service_ids",
		"total_amount",
		"staff_member_id",
		"payment_status",
		"cr_requested",
		"cr_new_amount",
		"cr_reason",
		"cr_requested_by",
		"cr_requested_at",
		"cr_resolved",
		"cr_approved",
		"cr_resolved_by",
		"cr_resolved_at",
		"cr_owner_comment",
		"version",
		"created_at",
		"updated_at",
		"COUNT(*) OVER() AS total_count",
	).From("billing_records").PlaceholderFormat(sq.Dollar)

	if f.StaffMemberID != nil {
		stmt = stmt.Where(sq.Eq{"staff_member_id": *f.StaffMemberID})
	}

	if f.PaymentStatus != nil {
		stmt = stmt.Where(sq.Eq{"payment_status": *f.PaymentStatus})
	}

	stmt = stmt.
		Limit(f.Limit).
		Offset(f.Page*f.Limit - f.Limit).
		OrderBy(fmt.Sprintf("%s %s", f.SortBy, f.OrderBy))

	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, storeErr(err)
	}
	defer rows.Close()

	records := make([]entity.BillingRecord, 0, f.Limit)

	var totalCount int

	for rows.Next() {
		rec, count, err := scanRecordWithCount(rows)
		if err != nil {
			return nil, 0, storeErr(err)
		}

		totalCount = count

		records = append(records, rec)
	}

	return records, totalCount, nil
}

// UpdateRecord persists owner-patched fields. The version check makes the
// read-modify-write atomic: a concurrent writer bumps the version and this
// update then matches no row.
func (r *Repository) UpdateRecord(ctx context.Context, rec entity.BillingRecord, updatedAt time.Time) (entity.BillingRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	q := `
	UPDATE billing_records SET
		customer_name = $1,
		car_details = $2,
		payment_status = $3,
		total_amount = $4,
		updated_at = $5,
		version = version + 1
	WHERE id = $6 AND version = $7
	` + returningRecord

	updated, err := scanRecord(r.db.QueryRow(
		ctx,
		q,
		rec.CustomerName,
		rec.CarDetails,
		rec.PaymentStatus,
		rec.TotalAmount,
		updatedAt,
		rec.ID,
		rec.Version,
	))
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.BillingRecord{}, r.missReason(ctx, rec.ID, entity.ErrVersionConflict)
		}

		return entity.BillingRecord{}, err
	}

	return updated, nil
}

func (r *Repository) DeleteRecord(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	const q = `DELETE FROM billing_records WHERE id = $1`

	result, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return storeErr(err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// SubmitChangeRequest installs a fresh change request. The guard admits a
// record only when no request exists or the previous one is resolved, so two
// concurrent submitters can never both succeed; the loser gets
// entity.ErrChangePending.
func (r *Repository) SubmitChangeRequest(ctx context.Context, id uuid.UUID, cr entity.ChangeRequest) (entity.BillingRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	q := `
	UPDATE billing_records SET
		cr_requested = true,
		cr_new_amount = $1,
		cr_reason = $2,
		cr_requested_by = $3,
		cr_requested_at = $4,
		cr_resolved = false,
		cr_approved = NULL,
		cr_resolved_by = NULL,
		cr_resolved_at = NULL,
		cr_owner_comment = NULL,
		updated_at = $4,
		version = version + 1
	WHERE id = $5 AND (NOT cr_requested OR cr_resolved)
	` + returningRecord

	rec, err := scanRecord(r.db.QueryRow(
		ctx,
		q,
		cr.NewAmount,
		cr.Reason,
		cr.RequestedBy,
		cr.RequestedAt,
		id,
	))
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.BillingRecord{}, r.missReason(ctx, id, entity.ErrChangePending)
		}

		return entity.BillingRecord{}, err
	}

	return rec, nil
}

// ResolveChangeRequest closes the pending request in one guarded update.
// Approval copies the requested amount into total_amount; rejection leaves
// the total untouched.
func (r *Repository) ResolveChangeRequest(
	ctx context.Context,
	id uuid.UUID,
	approved bool,
	resolvedBy uuid.UUID,
	ownerComment string,
	resolvedAt time.Time,
) (entity.BillingRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	q := `
	UPDATE billing_records SET
		cr_resolved = true,
		cr_approved = $1,
		cr_resolved_by = $2,
		cr_resolved_at = $3,
		cr_owner_comment = $4,
		total_amount = CASE WHEN $1 THEN cr_new_amount ELSE total_amount END,
		updated_at = $3,
		version = version + 1
	WHERE id = $5 AND cr_requested AND NOT cr_resolved
	` + returningRecord

	rec, err := scanRecord(r.db.QueryRow(
		ctx,
		q,
		approved,
		resolvedBy,
		ownerComment,
		resolvedAt,
		id,
	))
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.BillingRecord{}, r.missReason(ctx, id, entity.ErrNoChangePending)
		}

		return entity.BillingRecord{}, err
	}

	return rec, nil
}

// missReason tells a missing record apart from a guard rejection after a
// guarded update matched no row.
func (r *Repository) missReason(ctx context.Context, id uuid.UUID, guardErr error) error {
	const q = `SELECT 1 FROM billing_records WHERE id = $1`

	var one int

	err := r.db.QueryRow(ctx, q, id).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.ErrNotFound
		}

		return storeErr(err)
	}

	return guardErr
}

func (r *Repository) CreateServiceItem(ctx context.Context, item entity.ServiceItem) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	const q = `
	INSERT INTO service_items (id, name, description, price, category, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, q, item.ID, item.Name, item.Description, item.Price, item.Category, item.CreatedAt, item.UpdatedAt)
	if err != nil {
		return storeErr(err)
	}

	return nil
}

func (r *Repository) ServiceItem(ctx context.Context, id uuid.UUID) (entity.ServiceItem, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	q := selectServiceItem + " WHERE id = $1"

	return scanServiceItem(r.db.QueryRow(ctx, q, id))
}

func (r *Repository) ServiceItems(ctx context.Context) ([]entity.ServiceItem, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	q := selectServiceItem + " ORDER BY category, name"

	return r.queryServiceItems(ctx, q)
}

// ServiceItemsByIDs returns the catalog items for the given ids. Callers are
// responsible for noticing ids that resolved to nothing.
func (r *Repository) ServiceItemsByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.ServiceItem, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	q := selectServiceItem + " WHERE id = ANY($1)"

	return r.queryServiceItems(ctx, q, ids)
}

func (r *Repository) queryServiceItems(ctx context.Context, q string, args ...any) (items []entity.ServiceItem, err error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, storeErr(err)
	}

	defer rows.Close()

	for rows.Next() {
		item, err := scanServiceItem(rows)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}

func (r *Repository) UpdateServiceItem(ctx context.Context, item entity.ServiceItem) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	const q = `
	UPDATE service_items SET name = $1, description = $2, price = $3, category = $4, updated_at = $5
	WHERE id = $6
	`

	result, err := r.db.Exec(ctx, q, item.Name, item.Description, item.Price, item.Category, item.UpdatedAt, item.ID)
	if err != nil {
		return storeErr(err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteServiceItem(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	const q = `DELETE FROM service_items WHERE id = $1`

	result, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return storeErr(err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func scanRecord(row pgx.Row) (entity.BillingRecord, error) {
	rec, err := scanRecordCols(row.Scan)
	if err != nil {
		return entity.BillingRecord{}, err
	}

	return rec, nil
}

func scanRecordWithCount(row pgx.Row) (entity.BillingRecord, int, error) {
	var count int

	rec, err := scanRecordCols(func(dest ...any) error {
		return row.Scan(append(dest, &count)...)
	})
	if err != nil {
		return entity.BillingRecord{}, 0, err
	}

	return rec, count, nil
}

func scanRecordCols(scan func(dest ...any) error) (rec entity.BillingRecord, err error) {
	var (
		crRequested    bool
		crNewAmount    decimal.NullDecimal
		crReason       string
		crRequestedBy  zeronull.UUID
		crRequestedAt  *time.Time
		crResolved     bool
		crApproved     *bool
		crResolvedBy   zeronull.UUID
		crResolvedAt   *time.Time
		crOwnerComment string
	)

	err = scan(
		&rec.ID,
		&rec.CustomerName,
		&rec.CarDetails,
		&rec.ServiceIDs,
		&rec.TotalAmount,
		&rec.StaffMemberID,
		&rec.PaymentStatus,
		&crRequested,
		&crNewAmount,
		(*zeronull.Text)(&crReason),
		&crRequestedBy,
		&crRequestedAt,
		&crResolved,
		&crApproved,
		&crResolvedBy,
		&crResolvedAt,
		(*zeronull.Text)(&crOwnerComment),
		&rec.Version,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.BillingRecord{}, entity.ErrNotFound
		}

		return entity.BillingRecord{}, storeErr(err)
	}

	if crRequested {
		cr := entity.ChangeRequest{
			NewAmount:    crNewAmount.Decimal,
			Reason:       crReason,
			RequestedBy:  uuid.UUID(crRequestedBy),
			Resolved:     crResolved,
			Approved:     crApproved,
			ResolvedBy:   uuid.UUID(crResolvedBy),
			ResolvedAt:   crResolvedAt,
			OwnerComment: crOwnerComment,
		}

		if crRequestedAt != nil {
			cr.RequestedAt = *crRequestedAt
		}

		rec.Change = &cr
	}

	return rec, nil
}

func scanServiceItem(row pgx.Row) (item entity.ServiceItem, err error) {
	err = row.Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.Price,
		&item.Category,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.ServiceItem{}, entity.ErrNotFound
		}

		return entity.ServiceItem{}, storeErr(err)
	}

	return item, nil
}

func storeErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s", entity.ErrStorageUnavailable, err)
	}

	return err
}
