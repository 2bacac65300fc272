package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sparklewash/billing/internal/api"
	"github.com/sparklewash/billing/internal/entity"
	"github.com/sparklewash/billing/internal/mocks"
	"github.com/sparklewash/billing/internal/service"
)

const testToken = "test-token"

func newServer(t *testing.T, user entity.User) (http.Handler, *mocks.MockService) {
	t.Helper()

	ctrl := gomock.NewController(t)

	s := mocks.NewMockService(ctrl)

	auth := mocks.NewMockAuthService(ctrl)
	auth.EXPECT().User(gomock.Any(), testToken).Return(user, nil).AnyTimes()

	return api.NewRouter(api.NewHandler(s), api.NewMiddleware(auth)), s
}

func doRequest(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+testToken)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func testUser(role entity.Role) entity.User {
	return entity.User{
		ID:       uuid.Must(uuid.NewV4()),
		Username: "tester",
		Role:     role,
	}
}

func TestHandler_CreateRecord(t *testing.T) {
	t.Parallel()

	user := testUser(entity.RoleStaff)
	router, s := newServer(t, user)

	serviceID := uuid.Must(uuid.NewV4())

	rec := entity.BillingRecord{
		ID:            uuid.Must(uuid.NewV4()),
		CustomerName:  "John Smith",
		ServiceIDs:    []uuid.UUID{serviceID},
		TotalAmount:   decimal.NewFromFloat(35.5),
		StaffMemberID: user.ID,
		PaymentStatus: entity.PaymentStatusPending,
		Version:       1,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	s.EXPECT().CreateRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p service.CreateRecordParams) (service.CreateRecordResult, error) {
			require.Equal(t, "John Smith", p.CustomerName)
			require.Equal(t, []uuid.UUID{serviceID}, p.ServiceIDs)
			require.True(t, p.ClaimedTotal.Equal(decimal.NewFromFloat(35.5)))

			return service.CreateRecordResult{
				RecordDetails:   entity.RecordDetails{Record: rec},
				CalculatedTotal: decimal.NewFromFloat(35.5),
			}, nil
		})

	w := doRequest(router, http.MethodPost, "/api/billing",
		`{"customerName":"John Smith","serviceIds":["`+serviceID.String()+`"],"totalAmount":"35.5"}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp api.CreateRecordResponse

	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Equal(t, rec.ID.String(), resp.Record.ID)
	require.Equal(t, "35.5", resp.CalculatedTotal)
	require.False(t, resp.PriceMismatch)
}

func TestHandler_CreateRecord_InvalidJSON(t *testing.T) {
	t.Parallel()

	router, _ := newServer(t, testUser(entity.RoleStaff))

	w := doRequest(router, http.MethodPost, "/api/billing", `{"customerName":`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_NoToken(t *testing.T) {
	t.Parallel()

	router, _ := newServer(t, testUser(entity.RoleStaff))

	req := httptest.NewRequest(http.MethodGet, "/api/billing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_Records_FilterParsing(t *testing.T) {
	t.Parallel()

	router, s := newServer(t, testUser(entity.RoleOwner))

	s.EXPECT().Records(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f entity.RecordFilter) ([]entity.BillingRecord, int, error) {
			require.Equal(t, uint64(2), f.Page)
			require.EqualValues(t, 100, f.Limit) // clamped from 500
			require.Equal(t, entity.SortByTotalAmount, f.SortBy)
			require.Equal(t, entity.ASC, f.OrderBy)
			require.NotNil(t, f.PaymentStatus)
			require.Equal(t, entity.PaymentStatusPaid, *f.PaymentStatus)

			return []entity.BillingRecord{}, 0, nil
		})

	w := doRequest(router, http.MethodGet, "/api/billing?page=2&limit=500&sortBy=total_amount&orderBy=asc&paymentStatus=paid", "")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_Record_ErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "not found", err: entity.ErrNotFound, code: http.StatusNotFound},
		{name: "forbidden", err: entity.ErrForbidden, code: http.StatusForbidden},
		{name: "storage down", err: entity.ErrStorageUnavailable, code: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router, s := newServer(t, testUser(entity.RoleStaff))

			id := uuid.Must(uuid.NewV4())

			s.EXPECT().Record(gomock.Any(), id).Return(entity.RecordDetails{}, tt.err)

			w := doRequest(router, http.MethodGet, "/api/billing/"+id.String(), "")
			require.Equal(t, tt.code, w.Code)
		})
	}
}

func TestHandler_Record_BadID(t *testing.T) {
	t.Parallel()

	router, _ := newServer(t, testUser(entity.RoleStaff))

	w := doRequest(router, http.MethodGet, "/api/billing/not-a-uuid", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RequestChange_Pending(t *testing.T) {
	t.Parallel()

	router, s := newServer(t, testUser(entity.RoleStaff))

	id := uuid.Must(uuid.NewV4())

	s.EXPECT().RequestChange(gomock.Any(), id, gomock.Any(), "typo in amount").
		Return(entity.BillingRecord{}, entity.ErrChangePending)

	w := doRequest(router, http.MethodPut, "/api/billing/"+id.String()+"/request-change",
		`{"newAmount":"20","reason":"typo in amount"}`)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ResolveChange(t *testing.T) {
	t.Parallel()

	router, s := newServer(t, testUser(entity.RoleOwner))

	id := uuid.Must(uuid.NewV4())

	approved := true
	rec := entity.BillingRecord{
		ID:          id,
		TotalAmount: decimal.NewFromInt(20),
		Change: &entity.ChangeRequest{
			NewAmount:   decimal.NewFromInt(20),
			Reason:      "typo in amount",
			RequestedBy: uuid.Must(uuid.NewV4()),
			RequestedAt: time.Now(),
			Resolved:    true,
			Approved:    &approved,
		},
	}

	s.EXPECT().ResolveChange(gomock.Any(), id, true, "agreed").Return(rec, nil)

	w := doRequest(router, http.MethodPut, "/api/billing/"+id.String()+"/resolve-change",
		`{"approved":true,"ownerComment":"agreed"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp api.RecordResponse

	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.NotNil(t, resp.Record.ChangeRequest)
	require.True(t, resp.Record.ChangeRequest.Resolved)
	require.Equal(t, "20", resp.Record.TotalAmount)
}

func TestHandler_ResolveChange_MissingApproved(t *testing.T) {
	t.Parallel()

	router, _ := newServer(t, testUser(entity.RoleOwner))

	id := uuid.Must(uuid.NewV4())

	w := doRequest(router, http.MethodPut, "/api/billing/"+id.String()+"/resolve-change",
		`{"ownerComment":"no verdict"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateRecord_Conflict(t *testing.T) {
	t.Parallel()

	router, s := newServer(t, testUser(entity.RoleOwner))

	id := uuid.Must(uuid.NewV4())

	s.EXPECT().UpdateRecord(gomock.Any(), id, gomock.Any()).
		Return(entity.BillingRecord{}, entity.ErrVersionConflict)

	w := doRequest(router, http.MethodPut, "/api/billing/"+id.String(), `{"customerName":"Jane"}`)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_DeleteRecord(t *testing.T) {
	t.Parallel()

	router, s := newServer(t, testUser(entity.RoleOwner))

	id := uuid.Must(uuid.NewV4())

	s.EXPECT().DeleteRecord(gomock.Any(), id).Return(nil)

	w := doRequest(router, http.MethodDelete, "/api/billing/"+id.String(), "")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ServiceItems(t *testing.T) {
	t.Parallel()

	router, s := newServer(t, testUser(entity.RoleStaff))

	items := []entity.ServiceItem{
		{
			ID:       uuid.Must(uuid.NewV4()),
			Name:     "Basic wash",
			Price:    decimal.NewFromInt(20),
			Category: entity.CategoryBasicWash,
		},
	}

	s.EXPECT().ServiceItems(gomock.Any()).Return(items, nil)

	w := doRequest(router, http.MethodGet, "/api/services", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp api.ServiceItemsResponse

	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp.Services, 1)
	require.Equal(t, "Basic wash", resp.Services[0].Name)
	require.Equal(t, "basic_wash", resp.Services[0].Category)
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	router, _ := newServer(t, testUser(entity.RoleStaff))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "OK\n", w.Body.String())
}
