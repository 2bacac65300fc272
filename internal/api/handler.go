package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/sparklewash/billing/internal/entity"
	"github.com/sparklewash/billing/internal/service"
)

// @title Car Wash Billing API
// @version 1.0
// @description Billing records for car-wash services with a two-party amount change workflow
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/handler.go -package=mocks

type Service interface {
	CreateRecord(ctx context.Context, p service.CreateRecordParams) (service.CreateRecordResult, error)
	Records(ctx context.Context, f entity.RecordFilter) ([]entity.BillingRecord, int, error)
	Record(ctx context.Context, id uuid.UUID) (entity.RecordDetails, error)
	UpdateRecord(ctx context.Context, id uuid.UUID, patch entity.RecordPatch) (entity.BillingRecord, error)
	DeleteRecord(ctx context.Context, id uuid.UUID) error
	RequestChange(ctx context.Context, id uuid.UUID, newAmount decimal.Decimal, reason string) (entity.BillingRecord, error)
	ResolveChange(ctx context.Context, id uuid.UUID, approved bool, ownerComment string) (entity.BillingRecord, error)
	CreateServiceItem(ctx context.Context, item entity.ServiceItem) (entity.ServiceItem, error)
	ServiceItems(ctx context.Context) ([]entity.ServiceItem, error)
	ServiceItem(ctx context.Context, id uuid.UUID) (entity.ServiceItem, error)
	UpdateServiceItem(ctx context.Context, item entity.ServiceItem) (entity.ServiceItem, error)
	DeleteServiceItem(ctx context.Context, id uuid.UUID) error
}

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{s: s}
}

type ChangeRequestEntity struct {
	Requested    bool       `json:"requested"`
	NewAmount    string     `json:"newAmount"`
	Reason       string     `json:"reason"`
	RequestedBy  string     `json:"requestedBy"`
	RequestedAt  time.Time  `json:"requestedAt"`
	Resolved     bool       `json:"resolved"`
	Approved     *bool      `json:"approved,omitempty"`
	ResolvedBy   string     `json:"resolvedBy,omitempty"`
	ResolvedAt   *time.Time `json:"resolvedAt,omitempty"`
	OwnerComment string     `json:"ownerComment,omitempty"`
}

type RecordEntity struct {
	ID            string               `json:"id"`
	CustomerName  string               `json:"customerName"`
	CarDetails    string               `json:"carDetails"`
	ServiceIDs    []string             `json:"serviceIds"`
	Services      []ServiceItemEntity  `json:"services,omitempty"`
	TotalAmount   string               `json:"totalAmount"`
	StaffMemberID string               `json:"staffMemberId"`
	PaymentStatus string               `json:"paymentStatus"`
	ChangeRequest *ChangeRequestEntity `json:"changeRequest,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

type ServiceItemEntity struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       string    `json:"price"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateRecordRequest struct {
	CustomerName string          `json:"customerName"`
	CarDetails   string          `json:"carDetails"`
	ServiceIDs   []uuid.UUID     `json:"serviceIds"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
}

type CreateRecordResponse struct {
	Record          RecordEntity `json:"record"`
	CalculatedTotal string       `json:"calculatedTotal"`
	PriceMismatch   bool         `json:"priceMismatch"`
}

// CreateRecord creates a new billing record
// @Summary Create billing record
// @Description Creates a billing record for the selected catalog services. A claimed total drifting from catalog prices beyond the tolerance is flagged but accepted.
// @Tags billing
// @Accept json
// @Produce json
// @Param CreateRecordRequest body CreateRecordRequest true "Record creation request"
// @Success 201 {object} CreateRecordResponse
// @Failure 400 {object} ErrorResponse "Invalid input or unknown service id"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 500 {object} ErrorResponse "Failed to create record"
// @Router /billing [post]
// @Security BearerAuth
func (h *Handler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateRecordRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	result, err := h.s.CreateRecord(ctx, service.CreateRecordParams{
		CustomerName: req.CustomerName,
		CarDetails:   req.CarDetails,
		ServiceIDs:   req.ServiceIDs,
		ClaimedTotal: req.TotalAmount,
	})
	if err != nil {
		sendEntityErr(ctx, w, err, "Failed to create billing record")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, CreateRecordResponse{
		Record:          recordToAPI(result.Record, result.Items),
		CalculatedTotal: result.CalculatedTotal.String(),
		PriceMismatch:   result.PriceMismatch,
	})
}

type RecordsResponse struct {
	Records    []RecordEntity `json:"records"`
	TotalCount int            `json:"totalCount"`
}

// Records lists billing records
// @Summary List billing records
// @Description Lists billing records newest first. The owner sees all records, staff only their own.
// @Tags billing
// @Produce json
// @Param paymentStatus query string false "Filter by payment status (pending, paid, cancelled)"
// @Param limit query int false "Page size (default 10)"
// @Param page query int false "Page number (default 1)"
// @Param sortBy query string false "Sort column (created_at, total_amount, customer_name)"
// @Param orderBy query string false "Sort order (asc, desc)"
// @Success 200 {object} RecordsResponse
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 500 {object} ErrorResponse "Failed to list records"
// @Router /billing [get]
// @Security BearerAuth
func (h *Handler) Records(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	records, totalCount, err := h.s.Records(ctx, parseRecordFilter(r.URL.Query()))
	if err != nil {
		sendEntityErr(ctx, w, err, "Failed to list billing records")
		return
	}

	res := make([]RecordEntity, 0, len(records))
	for _, rec := range records {
		res = append(res, recordToAPI(rec, nil))
	}

	SendJSON(ctx, w, http.StatusOK, RecordsResponse{Records: res, TotalCount: totalCount})
}

type RecordResponse struct {
	Record RecordEntity `json:"record"`
}

// Record returns a single billing record
// @Summary Get billing record
// @Description Returns a billing record with its resolved catalog items. Staff may only fetch their own records.
// @Tags billing
// @Produce json
// @Param id path string true "Record ID (UUID)"
// @Success 200 {object} RecordResponse
// @Failure 400 {object} ErrorResponse "Invalid record id"
// @Failure 403 {object} ErrorResponse "Record belongs to another staff member"
// @Failure 404 {object} ErrorResponse "Record not found"
// @Router /billing/{id} [get]
// @Security BearerAuth
func (h *Handler) Record(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'id' must be a UUID")
		return
	}

	details, err := h.s.Record(ctx, id)
	if err != nil {
		sendEntityErr(ctx, w, err, "Failed to get billing record")
		return
	}

	SendJSON(ctx, w, http.StatusOK, RecordResponse{Record: recordToAPI(details.Record, details.Items)})
}

type UpdateRecordRequest struct {
	CustomerName  *string          `json:"customerName"`
	CarDetails    *string          `json:"carDetails"`
	PaymentStatus *string          `json:"paymentStatus"`
	TotalAmount   *decimal.Decimal `json:"totalAmount"`
}

// UpdateRecord patches record fields (owner only)
// @Summary Update billing record
// @Description Owner-only partial update of customer name, car details, payment status and total amount. Line items and the change request are untouched.
// @Tags billing
// @Accept json
// @Produce json
// @Param id path string true "Record ID (UUID)"
// @Param UpdateRecordRequest body UpdateRecordRequest true "Fields to update"
// @Success 200 {object} RecordResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Caller is not the owner"
// @Failure 404 {object} ErrorResponse "Record not found"
// @Failure 409 {object} ErrorResponse "Record changed concurrently"
// @Router /billing/{id} [put]
// @Security BearerAuth
func (h *Handler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'id' must be a UUID")
		return
	}

	var req UpdateRecordRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	patch := entity.RecordPatch{
		CustomerName: req.CustomerName,
		CarDetails:   req.CarDetails,
		TotalAmount:  req.TotalAmount,
	}

	if req.PaymentStatus != nil {
		status := entity.PaymentStatus(*req.PaymentStatus)
		patch.PaymentStatus = &status
	}

	rec, err := h.s.UpdateRecord(ctx, id, patch)
	if err != nil {
		sendEntityErr(ctx, w, err, "Failed to update billing record")
		return
	}

	SendJSON(ctx, w, http.StatusOK, RecordResponse{Record: recordToAPI(rec, nil)})
}

type DeleteRecordResponse struct {
	Message string `json:"message"`
}

// DeleteRecord removes a billing record (owner only)
// @Summary Delete billing record
// @Description Owner-only hard delete with no tombstone.
// @Tags billing
// @Produce json
// @Param id path string true "Record ID (UUID)"
// @Success 200 {object} DeleteRecordResponse
// @Failure 403 {object} ErrorResponse "Caller is not the owner"
// @Failure 404 {object} ErrorResponse "Record not found"
// @Router /billing/{id} [delete]
// @Security BearerAuth
func (h *Handler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'id' must be a UUID")
		return
	}

	err = h.s.DeleteRecord(ctx, id)
	if err != nil {
		sendEntityErr(ctx, w, err, "Failed to delete billing record")
		return
	}

	SendJSON(ctx, w, http.StatusOK, DeleteRecordResponse{Message: "Billing record deleted successfully."})
}

type RequestChangeRequest struct {
	NewAmount decimal.Decimal `json:"newAmount"`
	Reason    string          `json:"reason"`
}

// RequestChange submits an amount change request
// @Summary Request amount change
// @Description Submits a proposal to change the record's total amount, pending owner resolution. Only one request may be pending per record.
// @Tags billing
// @Accept json
// @Produce json
// @Param id path string true "Record ID (UUID)"
// @Param RequestChangeRequest body RequestChangeRequest true "Requested amount and reason"
// @Success 200 {object} RecordResponse
// @Failure 400 {object} ErrorResponse "Invalid amount or empty reason"
// @Failure 403 {object} ErrorResponse "Record belongs to another staff member"
// @Failure 404 {object} ErrorResponse "Record not found"
// @Failure 409 {object} ErrorResponse "A change request is already pending"
// @Router /billing/{id}/request-change [put]
// @Security BearerAuth
func (h *Handler) RequestChange(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'id' must be a UUID")
		return
	}

	var req RequestChangeRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	rec, err := h.s.RequestChange(ctx, id, req.NewAmount, req.Reason)
	if err != nil {
		sendEntityErr(ctx, w, err, "Failed to request change")
		return
	}

	SendJSON(ctx, w, http.StatusOK, RecordResponse{Record: recordToAPI(rec, nil)})
}

type ResolveChangeRequest struct {
	Approved     *bool  `json:"approved"`
	OwnerComment string `json:"ownerComment"`
}

// ResolveChange resolves a pending change request (owner only)
// @Summary Resolve change request
// @Description Approves or rejects the pending change request. Approval sets the record's total to the requested amount.
// @Tags billing
// @Accept json
// @Produce json
// @Param id path string true "Record ID (UUID)"
// @Param ResolveChangeRequest body ResolveChangeRequest true "Resolution"
// @Success 200 {object} RecordResponse
// @Failure 400 {object} ErrorResponse "'approved' boolean is required"
// @Failure 403 {object} ErrorResponse "Caller is not the owner"
// @Failure 404 {object} ErrorResponse "Record not found"
// @Failure 409 {object} ErrorResponse "No pending change request"
// @Router /billing/{id}/resolve-change [put]
// @Security BearerAuth
func (h *Handler) ResolveChange(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'id' must be a UUID")
		return
	}

	var req ResolveChangeRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	if req.Approved == nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, entity.ErrInvalidArgument, "'approved' boolean is required")
		return
	}

	rec, err := h.s.ResolveChange(ctx, id, *req.Approved, req.OwnerComment)
	if err != nil {
		sendEntityErr(ctx, w, err, "Failed to resolve change request")
		return
	}

	SendJSON(ctx, w, http.StatusOK, RecordResponse{Record: recordToAPI(rec, nil)})
}

type ServiceItemRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
}

type ServiceItemResponse struct {
	Service ServiceItemEntity `json:"service"`
}

// CreateServiceItem adds a catalog service (owner only)
// @Summary Create catalog service
// @Tags services
// @Accept json
// @Produce json
// @Param ServiceItemRequest body ServiceItemRequest true "Service to create"
// @Success 201 {object} ServiceItemResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Caller is not the owner"
// @Router /services [post]
// @Security BearerAuth
func (h *Handler) CreateServiceItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ServiceItemRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	item, err := h.s.CreateServiceItem(ctx, entity.ServiceItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    entity.ServiceCategory(req.Category),
	})
	if err != nil {
		sendEntityErr(ctx, w, err, "Failed to create service")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, ServiceItemResponse{Service: serviceItemToAPI(item)})
}

type ServiceItemsResponse struct {
	Services []ServiceItemEntity `json:"services"`
}

// ServiceItems lists the service catalog
// @Summary List catalog services
// @Tags services
// @Produce json
// @Success 200 {object} ServiceItemsResponse
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Router /services [get]
// @Security BearerAuth
func (h *Handler) ServiceItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	items, err := h.s.ServiceItems(ctx)
	if err != nil {
		sendEntityErr(ctx, w, err, "Failed to list services")
		return
	}

	res := make([]ServiceItemEntity, 0, len(items))
	for _, item := range items {
		res = append(res, serviceItemToAPI(item))
	}

	SendJSON(ctx, w, http.StatusOK, ServiceItemsResponse{Services: res})
}

// ServiceItem returns a single catalog service
// @Summary Get catalog service
// @Tags services
// @Produce json
// @Param id path string true "Service ID (UUID)"
// @Success 200 {object} ServiceItemResponse
// @Failure 404 {object} ErrorResponse "Service not found"
// @Router /services/{id} [get]
// @Security BearerAuth
func (h *Handler) ServiceItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'id' must be a UUID")
		return
	}

	item, err := h.s.ServiceItem(ctx, id)
	if err != nil {
		sendEntityErr(ctx, w, err, "Failed to get service")
		return
	}

	SendJSON(ctx, w, http.StatusOK, ServiceItemResponse{Service: serviceItemToAPI(item)})
}

// UpdateServiceItem updates a catalog service (owner only)
// @Summary Update catalog service
// @Tags services
// @Accept json
// @Produce json
// @Param id path string true "Service ID (UUID)"
// @Param ServiceItemRequest body ServiceItemRequest true "New service fields"
// @Success 200 {object} ServiceItemResponse
// @Failure 403 {object} ErrorResponse "Caller is not the owner"
// @Failure 404 {object} ErrorResponse "Service not found"
// @Router /services/{id} [put]
// @Security BearerAuth
func (h *Handler) UpdateServiceItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'id' must be a UUID")
		return
	}

	var req ServiceItemRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	item, err := h.s.UpdateServiceItem(ctx, entity.ServiceItem{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    entity.ServiceCategory(req.Category),
	})
	if err != nil {
		sendEntityErr(ctx, w, err, "Failed to update service")
		return
	}

	SendJSON(ctx, w, http.StatusOK, ServiceItemResponse{Service: serviceItemToAPI(item)})
}

type DeleteServiceItemResponse struct {
	Message string `json:"message"`
}

// DeleteServiceItem removes a catalog service (owner only)
// @Summary Delete catalog service
// @Tags services
// @Produce json
// @Param id path string true "Service ID (UUID)"
// @Success 200 {object} DeleteServiceItemResponse
// @Failure 403 {object} ErrorResponse "Caller is not the owner"
// @Failure 404 {object} ErrorResponse "Service not found"
// @Router /services/{id} [delete]
// @Security BearerAuth
func (h *Handler) DeleteServiceItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'id' must be a UUID")
		return
	}

	err = h.s.DeleteServiceItem(ctx, id)
	if err != nil {
		sendEntityErr(ctx, w, err, "Failed to delete service")
		return
	}

	SendJSON(ctx, w, http.StatusOK, DeleteServiceItemResponse{Message: "Service deleted successfully."})
}

// HealthHandler - returns service health status.
// @Summary Health check
// @Tags health
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("OK\n"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Service is unhealthy")
		return
	}
}

func parseRecordFilter(url url.Values) entity.RecordFilter {
	const (
		defaultLimit uint64 = 10
		maxLimit     uint64 = 100
		defaultPage  uint64 = 1
	)

	qLimit := url.Get("limit")
	qPage := url.Get("page")
	sortBy := entity.RecordSortCol(url.Get("sortBy"))
	orderBy := entity.OrderByCol(url.Get("orderBy"))

	limit, err := strconv.ParseUint(qLimit, 10, 64)
	if err != nil {
		limit = defaultLimit
	}

	if limit > maxLimit {
		limit = maxLimit
	}

	page, err := strconv.ParseUint(qPage, 10, 64)
	if err != nil {
		page = defaultPage
	}

	if !sortBy.IsValid() {
		sortBy = entity.SortByCreatedAt
	}

	if !orderBy.IsValid() {
		orderBy = entity.DESC
	}

	filter := entity.RecordFilter{
		Page:    page,
		Limit:   limit,
		SortBy:  sortBy,
		OrderBy: orderBy,
	}

	if qStatus := url.Get("paymentStatus"); qStatus != "" {
		status := entity.PaymentStatus(qStatus)
		if status.Validate() == nil {
			filter.PaymentStatus = &status
		}
	}

	return filter
}

func recordToAPI(rec entity.BillingRecord, items []entity.ServiceItem) RecordEntity {
	serviceIDs := make([]string, 0, len(rec.ServiceIDs))
	for _, id := range rec.ServiceIDs {
		serviceIDs = append(serviceIDs, id.String())
	}

	var services []ServiceItemEntity

	for _, item := range items {
		services = append(services, serviceItemToAPI(item))
	}

	res := RecordEntity{
		ID:            rec.ID.String(),
		CustomerName:  rec.CustomerName,
		CarDetails:    rec.CarDetails,
		ServiceIDs:    serviceIDs,
		Services:      services,
		TotalAmount:   rec.TotalAmount.String(),
		StaffMemberID: rec.StaffMemberID.String(),
		PaymentStatus: rec.PaymentStatus.String(),
		CreatedAt:     rec.CreatedAt,
		UpdatedAt:     rec.UpdatedAt,
	}

	if rec.Change != nil {
		cr := ChangeRequestEntity{
			Requested:    true,
			NewAmount:    rec.Change.NewAmount.String(),
			Reason:       rec.Change.Reason,
			RequestedBy:  rec.Change.RequestedBy.String(),
			RequestedAt:  rec.Change.RequestedAt,
			Resolved:     rec.Change.Resolved,
			Approved:     rec.Change.Approved,
			ResolvedAt:   rec.Change.ResolvedAt,
			OwnerComment: rec.Change.OwnerComment,
		}

		if !rec.Change.ResolvedBy.IsNil() {
			cr.ResolvedBy = rec.Change.ResolvedBy.String()
		}

		res.ChangeRequest = &cr
	}

	return res
}

func serviceItemToAPI(item entity.ServiceItem) ServiceItemEntity {
	return ServiceItemEntity{
		ID:          item.ID.String(),
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price.String(),
		Category:    item.Category.String(),
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}
