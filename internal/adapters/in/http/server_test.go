package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketplace/cmd"
	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/testdb"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/domain/model/role"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/domain/policy"
	"marketplace/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const secret = "test-secret"

type api struct {
	e     *echo.Echo
	repos ports.UnitOfWork
	auth  *httpin.Authenticator
}

func newAPI(t *testing.T) *api {
	t.Helper()
	db := testdb.NewSQLite(t)

	root, err := cmd.NewCompositionRoot(cmd.Config{
		JWTSecret:              secret,
		SelfServiceRoles:       policy.StrictSelfServiceRoles(),
		ReconciliationSchedule: "@every 1h",
	}, db, zap.NewNop())
	require.NoError(t, err)

	e := echo.New()
	require.NoError(t, root.CreateHTTPServer().Register(e))

	return &api{
		e:     e,
		repos: postgres.NewGormUnitOfWorkFactory(db, zap.NewNop()).Create(),
		auth:  httpin.NewAuthenticator(secret),
	}
}

func (a *api) token(t *testing.T, id kernel.UUID, r role.Role) string {
	t.Helper()
	token, err := a.auth.Issue(id, r, time.Hour)
	require.NoError(t, err)
	return token
}

func (a *api) call(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var payload bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&payload).Encode(body))
	}

	req := httptest.NewRequest(method, path, &payload)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func (a *api) addUser(t *testing.T) *user.User {
	t.Helper()
	u, err := user.NewUser(kernel.NewUUID(), kernel.NewUUID().String()+"@example.com", "Test User", time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, a.repos.UserRepository().Add(context.Background(), u))
	return u
}

func TestHealth(t *testing.T) {
	a := newAPI(t)

	rec := a.call(t, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Trace-Id"))
}

func TestSwaggerDocument(t *testing.T) {
	a := newAPI(t)

	rec := a.call(t, http.MethodGet, "/swagger/doc.json", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Marketplace API")
	assert.Contains(t, rec.Body.String(), "/orders/{orderId}/transitions")
}

func TestAuthentication(t *testing.T) {
	a := newAPI(t)

	t.Run("missing token", func(t *testing.T) {
		rec := a.call(t, http.MethodGet, "/api/v1/me/disputes", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("foreign signature", func(t *testing.T) {
		token, err := httpin.NewAuthenticator("other-secret").Issue(kernel.NewUUID(), role.Customer, time.Hour)
		require.NoError(t, err)

		rec := a.call(t, http.MethodGet, "/api/v1/me/disputes", token, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := a.auth.Issue(kernel.NewUUID(), role.Customer, -time.Minute)
		require.NoError(t, err)

		rec := a.call(t, http.MethodGet, "/api/v1/me/disputes", token, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		rec := a.call(t, http.MethodGet, "/api/v1/me/disputes", a.token(t, kernel.NewUUID(), role.Customer), nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestPromotionEndpoints(t *testing.T) {
	vendorBody := map[string]any{
		"role":   "VENDOR",
		"vendor": map[string]any{"businessName": "Fresh Fruit", "city": "Porto", "phone": "+351 900 000 000"},
	}

	t.Run("owner becomes a vendor", func(t *testing.T) {
		a := newAPI(t)
		u := a.addUser(t)

		rec := a.call(t, http.MethodPost, "/api/v1/users/"+u.ID().String()+"/promotions", a.token(t, u.ID(), role.Customer), vendorBody)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		resp := decode[httpin.PromotionResponse](t, rec)
		assert.Equal(t, "VENDOR", resp.Role)
		assert.Equal(t, "VENDOR_PROFILE", resp.Profile)
	})

	t.Run("someone else's account", func(t *testing.T) {
		a := newAPI(t)
		u := a.addUser(t)

		rec := a.call(t, http.MethodPost, "/api/v1/users/"+u.ID().String()+"/promotions", a.token(t, kernel.NewUUID(), role.Customer), vendorBody)

		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "NOT_ACCOUNT_OWNER", decode[httpin.ErrorResponse](t, rec).Code)
	})

	t.Run("rider application is disabled", func(t *testing.T) {
		a := newAPI(t)
		u := a.addUser(t)

		rec := a.call(t, http.MethodPost, "/api/v1/users/"+u.ID().String()+"/rider-application", a.token(t, u.ID(), role.Customer),
			map[string]any{"vehiclePlate": "AA-00-BB", "licenseNumber": "L-1"})

		require.Equal(t, http.StatusForbidden, rec.Code)
		resp := decode[httpin.ErrorResponse](t, rec)
		assert.Equal(t, "RIDER_SELF_SERVICE_DISABLED", resp.Code)
		assert.NotEmpty(t, resp.Message)
	})

	t.Run("admin provisions an agency", func(t *testing.T) {
		a := newAPI(t)
		u := a.addUser(t)
		body := map[string]any{"userId": u.ID(), "agencyName": "Swift", "serviceArea": "Porto"}

		rec := a.call(t, http.MethodPost, "/api/v1/admin/delivery-agencies", a.token(t, kernel.NewUUID(), role.Customer), body)
		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "ADMIN_REQUIRED", decode[httpin.ErrorResponse](t, rec).Code)

		rec = a.call(t, http.MethodPost, "/api/v1/admin/delivery-agencies", a.token(t, kernel.NewUUID(), role.Admin), body)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, "DELIVERY_AGENCY", decode[httpin.PromotionResponse](t, rec).Role)
	})
}

func TestMarketplaceFlow(t *testing.T) {
	a := newAPI(t)
	customerID, vendorID, riderID, adminID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	customer := a.token(t, customerID, role.Customer)
	vendor := a.token(t, vendorID, role.Vendor)
	rider := a.token(t, riderID, role.Rider)
	admin := a.token(t, adminID, role.Admin)

	p, err := product.NewProduct(kernel.NewUUID(), vendorID, "Apples", 250, 10)
	require.NoError(t, err)
	require.NoError(t, a.repos.ProductRepository().Add(t.Context(), p))

	rec := a.call(t, http.MethodPost, "/api/v1/orders", customer, map[string]any{
		"vendorId":      vendorID,
		"items":         []map[string]any{{"productId": p.ID(), "quantity": 4}},
		"paymentMethod": "CASH_ON_DELIVERY",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	placed := decode[httpin.OrderResponse](t, rec)
	assert.Equal(t, "PENDING", placed.Status)
	assert.Equal(t, int64(1000), placed.Total)
	orderPath := "/api/v1/orders/" + placed.ID.String()

	rec = a.call(t, http.MethodPost, orderPath+"/transitions", customer, map[string]any{"status": "DELIVERED"})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "INVALID_ORDER_TRANSITION", decode[httpin.ErrorResponse](t, rec).Code)

	rec = a.call(t, http.MethodPost, orderPath+"/transitions", vendor, map[string]any{"status": "CONFIRMED", "paymentMethod": "CARD"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "CARD", decode[httpin.OrderResponse](t, rec).PaymentMethod)

	rec = a.call(t, http.MethodGet, orderPath, customer, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	view := decode[httpin.OrderResponse](t, rec)
	assert.Equal(t, []string{"CANCELLED"}, view.NextStatuses)
	require.Len(t, view.History, 1)

	rec = a.call(t, http.MethodPost, orderPath+"/delivery", vendor, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	deliveryPath := "/api/v1/deliveries/" + decode[httpin.DeliveryResponse](t, rec).ID.String()

	rec = a.call(t, http.MethodPost, deliveryPath+"/assignment", rider, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	for _, next := range []string{"PROCESSING", "OUT_FOR_DELIVERY"} {
		rec = a.call(t, http.MethodPost, orderPath+"/transitions", vendor, map[string]any{"status": next})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	for _, next := range []string{"PICKED_UP", "ON_THE_WAY"} {
		rec = a.call(t, http.MethodPost, deliveryPath+"/status", rider, map[string]any{"status": next})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	rec = a.call(t, http.MethodPost, deliveryPath+"/status", vendor, map[string]any{"status": "DELIVERED"})
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = a.call(t, http.MethodPost, deliveryPath+"/status", rider, map[string]any{"status": "DELIVERED"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	delivered := decode[httpin.DeliveryResponse](t, rec)
	assert.Equal(t, "DELIVERED", delivered.Status)
	assert.Equal(t, "DELIVERED", delivered.OrderStatus)

	rec = a.call(t, http.MethodGet, deliveryPath, customer, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "DELIVERED", decode[httpin.DeliveryResponse](t, rec).OrderStatus)

	rec = a.call(t, http.MethodPost, orderPath+"/disputes", customer, map[string]any{"reason": "damaged"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	opened := decode[httpin.DisputeResponse](t, rec)
	assert.Equal(t, "OPEN", opened.Status)

	rec = a.call(t, http.MethodPost, orderPath+"/disputes", customer, map[string]any{"reason": "again"})
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "DISPUTE_ALREADY_EXISTS", decode[httpin.ErrorResponse](t, rec).Code)

	rec = a.call(t, http.MethodPost, "/api/v1/disputes/"+opened.ID.String()+"/resolution", admin, map[string]any{"resolution": "refund issued"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "RESOLVED", decode[httpin.DisputeResponse](t, rec).Status)

	rec = a.call(t, http.MethodGet, "/api/v1/me/disputes", customer, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	mine := decode[[]httpin.DisputeResponse](t, rec)
	require.Len(t, mine, 1)
	assert.Equal(t, "RESOLVED", mine[0].Status)
}

func TestErrorMapping(t *testing.T) {
	a := newAPI(t)
	token := a.token(t, kernel.NewUUID(), role.Customer)

	testCases := []struct {
		name   string
		method string
		path   string
		body   any
		status int
		code   string
	}{
		{"unknown order", http.MethodGet, "/api/v1/orders/" + kernel.NewUUID().String(), nil, http.StatusNotFound, "NOT_FOUND"},
		{"malformed id", http.MethodGet, "/api/v1/orders/not-a-uuid", nil, http.StatusBadRequest, "VALUE_INVALID"},
		{"unknown status", http.MethodPost, "/api/v1/orders/" + kernel.NewUUID().String() + "/transitions", map[string]any{"status": "LOST"}, http.StatusBadRequest, "VALUE_INVALID"},
		{"not requestable", http.MethodPost, "/api/v1/deliveries/" + kernel.NewUUID().String() + "/status", map[string]any{"status": "AWAITING_PICKUP"}, http.StatusUnprocessableEntity, "INVALID_JOB_TRANSITION"},
		{"empty checkout", http.MethodPost, "/api/v1/orders", map[string]any{"vendorId": kernel.NewUUID(), "paymentMethod": "CARD"}, http.StatusBadRequest, "VALUE_REQUIRED"},
		{"status missing", http.MethodPost, "/api/v1/orders/" + kernel.NewUUID().String() + "/transitions", map[string]any{}, http.StatusBadRequest, "VALUE_INVALID"},
		{"quantity not a number", http.MethodPost, "/api/v1/orders", map[string]any{"vendorId": kernel.NewUUID(), "paymentMethod": "CARD", "items": []map[string]any{{"productId": kernel.NewUUID(), "quantity": "four"}}}, http.StatusBadRequest, "VALUE_INVALID"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := a.call(t, tc.method, tc.path, token, tc.body)

			require.Equal(t, tc.status, rec.Code, rec.Body.String())
			resp := decode[httpin.ErrorResponse](t, rec)
			assert.Equal(t, tc.code, resp.Code)
			assert.NotEmpty(t, resp.TraceID)
		})
	}
}
