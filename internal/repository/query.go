package repository

const (
	selectRecord = `SELECT
		id,
		customer_name,
		car_details,
		service_ids,
		total_amount,
		staff_member_id,
		payment_status,
		cr_requested,
		cr_new_amount,
		cr_reason,
		cr_requested_by,
		cr_requested_at,
		cr_resolved,
		cr_approved,
		cr_resolved_by,
		cr_resolved_at,
		cr_owner_comment,
		version,
		created_at,
		updated_at
	FROM billing_records`

	returningRecord = `RETURNING
		id,
		customer_name,
		car_details,
		service_ids,
		total_amount,
		staff_member_id,
		payment_status,
		cr_requested,
		cr_new_amount,
		cr_reason,
		cr_requested_by,
		cr_requested_at,
		cr_resolved,
		cr_approved,
		cr_resolved_by,
		cr_resolved_at,
		cr_owner_comment,
		version,
		created_at,
		updated_at`

	selectServiceItem = `SELECT
		id,
		name,
		description,
		price,
		category,
		created_at,
		updated_at
	FROM service_items`
)
