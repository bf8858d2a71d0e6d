package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apimiddleware "marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/router/handler"
	"marketplace/internal/delivery/api/validator"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/resolver"
	"marketplace/internal/domain/service"
	mockService "marketplace/internal/mocks/service"
	mockUsecase "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "test-token"

type testServer struct {
	echo        *echo.Echo
	tokens      *mockService.MockTokenService
	identityUC  *mockUsecase.MockIdentityUsecase
	catalogUC   *mockUsecase.MockCatalogUsecase
	orderUC     *mockUsecase.MockOrderUsecase
	promotionUC *mockUsecase.MockPromotionUsecase
	vendorUC    *mockUsecase.MockVendorUsecase
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID  string `json:"request_id"`
		Pagination *struct {
			Total  int `json:"total"`
			Limit  int `json:"limit"`
			Offset int `json:"offset"`
		} `json:"pagination"`
	} `json:"meta"`
}

func newTestServer(t *testing.T) *testServer {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s := &testServer{
		echo:        echo.New(),
		tokens:      mockService.NewMockTokenService(t),
		identityUC:  mockUsecase.NewMockIdentityUsecase(t),
		catalogUC:   mockUsecase.NewMockCatalogUsecase(t),
		orderUC:     mockUsecase.NewMockOrderUsecase(t),
		promotionUC: mockUsecase.NewMockPromotionUsecase(t),
		vendorUC:    mockUsecase.NewMockVendorUsecase(t),
	}
	s.echo.Validator = validator.New()
	s.echo.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError

	r := NewRouter(RouterParams{
		CatalogHandler:   handler.NewCatalogHandler(handler.CatalogHandlerParams{CatalogUC: s.catalogUC, Logger: logger}),
		OrderHandler:     handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: s.orderUC, Logger: logger}),
		PromotionHandler: handler.NewPromotionHandler(handler.PromotionHandlerParams{PromotionUC: s.promotionUC, Logger: logger}),
		VendorHandler:    handler.NewVendorHandler(handler.VendorHandlerParams{VendorUC: s.vendorUC, Logger: logger}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{
			TokenService: s.tokens,
			IdentityUC:   s.identityUC,
			Logger:       logger,
		}),
	})
	r.RegisterRoutes(s.echo)

	return s
}

func (s *testServer) authenticateAs(actor entity.Actor) {
	s.tokens.EXPECT().ValidateToken(testToken).Return(&service.Claims{
		UserID: actor.UserID(),
		Roles:  []string{actor.Role().String()},
	}, nil)
	s.identityUC.EXPECT().
		ResolveActor(mock.Anything, actor.UserID(), entity.Roles{actor.Role()}).
		Return(actor, nil)
}

func (s *testServer) do(t *testing.T, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	s.echo.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec, env
}

func TestHealthIsPublic(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestAuthentication(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		s := newTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/home", nil)
		rec := httptest.NewRecorder()
		s.echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "MISSING_TOKEN")
	})

	t.Run("not a bearer token", func(t *testing.T) {
		s := newTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/home", nil)
		req.Header.Set(echo.HeaderAuthorization, "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()
		s.echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
	})

	t.Run("rejected token", func(t *testing.T) {
		s := newTestServer(t)
		s.tokens.EXPECT().ValidateToken(testToken).Return(nil, errors.New("token is expired"))

		rec, env := s.do(t, http.MethodGet, "/api/v1/catalog/home", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_TOKEN", env.Error.Code)
	})

	t.Run("no usable role", func(t *testing.T) {
		s := newTestServer(t)
		userID := uuid.New()
		s.tokens.EXPECT().ValidateToken(testToken).Return(&service.Claims{UserID: userID, Roles: []string{"guest"}}, nil)
		s.identityUC.EXPECT().ResolveActor(mock.Anything, userID, entity.Roles{}).Return(nil, domainerrors.ErrForbidden)

		rec, env := s.do(t, http.MethodGet, "/api/v1/catalog/home", "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "FORBIDDEN", env.Error.Code)
	})
}

func TestRoleGates(t *testing.T) {
	customer := entity.Customer{ID: uuid.New()}
	vendor := entity.VendorActor{ID: uuid.New(), VendorID: uuid.New()}

	tests := []struct {
		name   string
		actor  entity.Actor
		method string
		target string
	}{
		{"customer on vendor dashboard", customer, http.MethodGet, "/api/v1/vendor/dashboard"},
		{"customer requesting a boost", customer, http.MethodPost, "/api/v1/vendor/boost-requests"},
		{"vendor on admin stats", vendor, http.MethodGet, "/api/v1/admin/vendors/" + uuid.NewString() + "/stats"},
		{"vendor approving a boost", vendor, http.MethodPost, "/api/v1/admin/boost-requests/" + uuid.NewString() + "/approve"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			s.authenticateAs(tt.actor)

			rec, env := s.do(t, tt.method, tt.target, "")

			assert.Equal(t, http.StatusForbidden, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, "FORBIDDEN", env.Error.Code)
		})
	}
}

func TestListOrders(t *testing.T) {
	t.Run("binds the filter and reports pagination", func(t *testing.T) {
		s := newTestServer(t)
		customer := entity.Customer{ID: uuid.New()}
		s.authenticateAs(customer)

		orderID := uuid.New()
		s.orderUC.EXPECT().
			ListOrders(mock.Anything, customer, usecase.OrderFilter{
				Status: entity.OrderStatusDelivered,
				All:    true,
				Limit:  5,
				Offset: 10,
			}).
			Return(&usecase.OrderPage{
				Orders: []*entity.Order{{ID: orderID, UserID: customer.ID, Status: entity.OrderStatusDelivered}},
				Total:  11,
				Limit:  5,
				Offset: 10,
			}, nil)

		rec, env := s.do(t, http.MethodGet, "/api/v1/orders?status=Delivered&all=true&limit=5&offset=10", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(env.Data), orderID.String())
		require.NotNil(t, env.Meta.Pagination)
		assert.Equal(t, 11, env.Meta.Pagination.Total)
		assert.Equal(t, 5, env.Meta.Pagination.Limit)
		assert.Equal(t, 10, env.Meta.Pagination.Offset)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		s := newTestServer(t)
		s.authenticateAs(entity.Customer{ID: uuid.New()})

		rec, env := s.do(t, http.MethodGet, "/api/v1/orders?status=Lost", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Contains(t, string(env.Error.Details), `"field":"status"`)
		s.orderUC.AssertNotCalled(t, "ListOrders", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("negative offset is rejected", func(t *testing.T) {
		s := newTestServer(t)
		s.authenticateAs(entity.Admin{ID: uuid.New()})

		rec, env := s.do(t, http.MethodGet, "/api/v1/orders?offset=-1", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})

	t.Run("non numeric limit", func(t *testing.T) {
		s := newTestServer(t)
		s.authenticateAs(entity.Admin{ID: uuid.New()})

		rec, env := s.do(t, http.MethodGet, "/api/v1/orders?limit=ten", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})
}

func TestGetOrder(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		s := newTestServer(t)
		s.authenticateAs(entity.Customer{ID: uuid.New()})

		rec, env := s.do(t, http.MethodGet, "/api/v1/orders/not-a-uuid", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_ID", env.Error.Code)
	})

	t.Run("foreign order looks like a missing one", func(t *testing.T) {
		s := newTestServer(t)
		customer := entity.Customer{ID: uuid.New()}
		s.authenticateAs(customer)

		orderID := uuid.New()
		s.orderUC.EXPECT().GetOrder(mock.Anything, customer, orderID).Return(nil, domainerrors.ErrUnauthorized)

		rec, env := s.do(t, http.MethodGet, "/api/v1/orders/"+orderID.String(), "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, domainerrors.ErrOrderNotFound.ErrorCode(), env.Error.Code)
		assert.Equal(t, domainerrors.ErrOrderNotFound.Message(), env.Error.Message)
	})

	t.Run("unexpected failure is hidden", func(t *testing.T) {
		s := newTestServer(t)
		admin := entity.Admin{ID: uuid.New()}
		s.authenticateAs(admin)

		orderID := uuid.New()
		s.orderUC.EXPECT().GetOrder(mock.Anything, admin, orderID).Return(nil, errors.New("connection reset by peer"))

		rec, env := s.do(t, http.MethodGet, "/api/v1/orders/"+orderID.String(), "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
		assert.NotContains(t, rec.Body.String(), "connection reset")
	})
}

func TestVendorDashboard(t *testing.T) {
	s := newTestServer(t)
	vendor := entity.VendorActor{ID: uuid.New(), VendorID: uuid.New()}
	s.authenticateAs(vendor)

	s.vendorUC.EXPECT().AggregateVendor(mock.Anything, vendor.VendorID).Return(&resolver.VendorStats{
		ProductCount: 2,
		TotalOrders:  1,
		TotalRevenue: decimal.RequireFromString("20.00"),
		LowStock:     []resolver.LowStockItem{},
	}, nil)

	rec, env := s.do(t, http.MethodGet, "/api/v1/vendor/dashboard", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"total_revenue":"20"`)
	assert.Contains(t, string(env.Data), `"product_count":2`)
}

func TestAdminVendorStats(t *testing.T) {
	s := newTestServer(t)
	s.authenticateAs(entity.Admin{ID: uuid.New()})

	vendorID := uuid.New()
	s.vendorUC.EXPECT().AggregateVendor(mock.Anything, vendorID).Return(nil, domainerrors.ErrVendorNotFound)

	rec, env := s.do(t, http.MethodGet, "/api/v1/admin/vendors/"+vendorID.String()+"/stats", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VENDOR_NOT_FOUND", env.Error.Code)
}

func TestBoostRequests(t *testing.T) {
	t.Run("vendor files a request", func(t *testing.T) {
		s := newTestServer(t)
		vendor := entity.VendorActor{ID: uuid.New(), VendorID: uuid.New()}
		s.authenticateAs(vendor)

		productID, planID := uuid.New(), uuid.New()
		s.promotionUC.EXPECT().
			RequestBoost(mock.Anything, vendor, &usecase.RequestBoostInput{ProductID: productID, PlanID: planID}).
			Return(&entity.BoostRequest{
				ID:        uuid.New(),
				ProductID: productID,
				VendorID:  vendor.VendorID,
				PlanID:    planID,
				Status:    entity.BoostStatusPending,
			}, nil)

		body := `{"product_id":"` + productID.String() + `","plan_id":"` + planID.String() + `"}`
		rec, env := s.do(t, http.MethodPost, "/api/v1/vendor/boost-requests", body)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, string(env.Data), `"status":"pending"`)
	})

	t.Run("plan is required", func(t *testing.T) {
		s := newTestServer(t)
		s.authenticateAs(entity.VendorActor{ID: uuid.New(), VendorID: uuid.New()})

		body := `{"product_id":"` + uuid.NewString() + `"}`
		rec, env := s.do(t, http.MethodPost, "/api/v1/vendor/boost-requests", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Contains(t, string(env.Error.Details), `"field":"plan_id"`)
	})

	t.Run("approving twice conflicts", func(t *testing.T) {
		s := newTestServer(t)
		s.authenticateAs(entity.Admin{ID: uuid.New()})

		requestID := uuid.New()
		s.promotionUC.EXPECT().ApproveBoostRequest(mock.Anything, requestID).Return(nil, domainerrors.ErrAlreadyResolved)

		rec, env := s.do(t, http.MethodPost, "/api/v1/admin/boost-requests/"+requestID.String()+"/approve", "")

		assert.Equal(t, http.StatusConflict, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "BOOST_REQUEST_ALREADY_RESOLVED", env.Error.Code)
	})

	t.Run("admin rejects", func(t *testing.T) {
		s := newTestServer(t)
		s.authenticateAs(entity.Admin{ID: uuid.New()})

		requestID := uuid.New()
		s.promotionUC.EXPECT().RejectBoostRequest(mock.Anything, requestID).Return(&entity.BoostRequest{
			ID:     requestID,
			Status: entity.BoostStatusRejected,
		}, nil)

		rec, env := s.do(t, http.MethodPost, "/api/v1/admin/boost-requests/"+requestID.String()+"/reject", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(env.Data), `"status":"rejected"`)
	})
}

func TestCatalogProduct(t *testing.T) {
	s := newTestServer(t)
	s.authenticateAs(entity.Customer{ID: uuid.New()})

	productID := uuid.New()
	s.catalogUC.EXPECT().
		GetProduct(mock.Anything, productID).
		Return(nil, domainerrors.ErrInconsistentData.WrapMessage("2 active flash sales"))

	rec, env := s.do(t, http.MethodGet, "/api/v1/catalog/products/"+productID.String(), "")

	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "PROMOTION_DATA_INCONSISTENT", env.Error.Code)
}
