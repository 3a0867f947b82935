package tests

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpapi "restman/internal/api/http"
	"restman/internal/domain"
	"restman/internal/mocks"
	"restman/internal/service"
)

type handlerMocks struct {
	auth     *mocks.AuthService
	menu     *mocks.MenuService
	sessions *mocks.SessionService
	checkout *mocks.CheckoutService
	orders   *mocks.OrderService
	bookings *mocks.BookingService
	tables   *mocks.TableService
	reviews  *mocks.ReviewService
	stats    *mocks.StatsService
}

func setupTestRouter(t *testing.T) (http.Handler, *handlerMocks) {
	t.Helper()
	m := &handlerMocks{
		auth:     mocks.NewAuthService(t),
		menu:     mocks.NewMenuService(t),
		sessions: mocks.NewSessionService(t),
		checkout: mocks.NewCheckoutService(t),
		orders:   mocks.NewOrderService(t),
		bookings: mocks.NewBookingService(t),
		tables:   mocks.NewTableService(t),
		reviews:  mocks.NewReviewService(t),
		stats:    mocks.NewStatsService(t),
	}
	handler := httpapi.NewHandler(m.auth, m.menu, m.sessions, m.checkout,
		m.orders, m.bookings, m.tables, m.reviews, m.stats)
	return httpapi.NewRouter(handler), m
}

func TestHandler_getCart(t *testing.T) {
	router, m := setupTestRouter(t)

	m.sessions.On("GetCart", mock.Anything, domain.GuestIdentity("sess-1")).
		Return(domain.Cart{Lines: []domain.CartLine{{DishID: 7, UnitPrice: 50000, Quantity: 2}}}, nil).Once()

	req := httptest.NewRequest("GET", "/api/cart", nil)
	req.Header.Set("X-Session-ID", "sess-1")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"total":100000`)
}

func TestHandler_addCartItem(t *testing.T) {
	router, m := setupTestRouter(t)

	tests := []struct {
		name         string
		payload      string
		prepareMocks func()
		expectedCode int
	}{
		{
			name:    "success",
			payload: `{"dish_id":7}`,
			prepareMocks: func() {
				m.sessions.On("AddItem", mock.Anything, domain.GuestIdentity("sess-1"), 7).
					Return(domain.Cart{Lines: []domain.CartLine{{DishID: 7, Quantity: 1}}}, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "invalid_json",
			payload:      `bad json`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "unknown_dish",
			payload: `{"dish_id":999}`,
			prepareMocks: func() {
				m.sessions.On("AddItem", mock.Anything, domain.GuestIdentity("sess-1"), 999).
					Return(domain.Cart{}, service.ErrDishNotFound).Once()
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			req := httptest.NewRequest("POST", "/api/cart/items", bytes.NewBufferString(testCase.payload))
			req.Header.Set("X-Session-ID", "sess-1")
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
		})
	}
}

func TestHandler_checkoutIdentity(t *testing.T) {
	router, m := setupTestRouter(t)

	// A logged-in caller checks out under the user identity, carrying the
	// browsing session along for table lookup.
	m.auth.On("CurrentUser", mock.Anything, "tok-42").
		Return(&domain.User{ID: 42, Role: domain.RoleCustomer}, nil).Once()
	m.checkout.On("Submit", mock.Anything, domain.UserIdentity(42, "sess-1"), domain.PayVNPay).
		Return(&domain.Order{ID: 13, Status: domain.OrderPending}, "https://pay.example/13", nil).Once()

	req := httptest.NewRequest("POST", "/api/checkout", bytes.NewBufferString(`{"payment_method":"VNPAY"}`))
	req.Header.Set("X-Session-ID", "sess-1")
	req.Header.Set("Authorization", "Bearer tok-42")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"redirect_url":"https://pay.example/13"`)
}

func TestHandler_checkoutBlocked(t *testing.T) {
	router, m := setupTestRouter(t)

	m.checkout.On("Submit", mock.Anything, domain.GuestIdentity("sess-1"), domain.PayCash).
		Return(nil, "", service.ErrCheckoutBlocked).Once()

	req := httptest.NewRequest("POST", "/api/checkout", bytes.NewBufferString(`{"payment_method":"CASH"}`))
	req.Header.Set("X-Session-ID", "sess-1")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandler_logout(t *testing.T) {
	router, m := setupTestRouter(t)

	m.auth.On("CurrentUser", mock.Anything, "tok-42").
		Return(&domain.User{ID: 42, Role: domain.RoleCustomer}, nil).Once()
	// The bearer token is revoked, not just dropped client side, and the
	// guest cart is cleared.
	m.auth.On("Logout", mock.Anything, "tok-42").Return(nil).Once()
	m.sessions.On("OnIdentityChange", mock.Anything, domain.GuestIdentity("sess-1")).
		Return(nil).Once()

	req := httptest.NewRequest("POST", "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer tok-42")
	req.Header.Set("X-Session-ID", "sess-1")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestHandler_listOrdersAuth(t *testing.T) {
	router, m := setupTestRouter(t)

	req := httptest.NewRequest("GET", "/api/orders", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	customer := &domain.User{ID: 42, Role: domain.RoleCustomer}
	m.auth.On("CurrentUser", mock.Anything, "tok-42").Return(customer, nil).Once()
	m.orders.On("List", mock.Anything, customer).Return([]domain.Order{{ID: 1}}, nil).Once()

	req = httptest.NewRequest("GET", "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer tok-42")
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestHandler_updateOrderRequiresStaff(t *testing.T) {
	router, m := setupTestRouter(t)

	m.auth.On("CurrentUser", mock.Anything, "tok-42").
		Return(&domain.User{ID: 42, Role: domain.RoleCustomer}, nil).Once()

	req := httptest.NewRequest("PATCH", "/api/orders/5", bytes.NewBufferString(`{"status":"PAID","payment_method":"CASH"}`))
	req.Header.Set("Authorization", "Bearer tok-42")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	waiter := &domain.User{ID: 2, Role: domain.RoleWaiter}
	m.auth.On("CurrentUser", mock.Anything, "tok-2").Return(waiter, nil).Once()
	m.orders.On("Update", mock.Anything, 5, domain.OrderPaid, domain.PayCash).
		Return(&domain.Order{ID: 5, Status: domain.OrderPaid}, nil).Once()

	req = httptest.NewRequest("PATCH", "/api/orders/5", bytes.NewBufferString(`{"status":"PAID","payment_method":"CASH"}`))
	req.Header.Set("Authorization", "Bearer tok-2")
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"status":"PAID"`)
}

func TestHandler_cancelBooking(t *testing.T) {
	router, m := setupTestRouter(t)

	m.auth.On("CurrentUser", mock.Anything, "tok-7").
		Return(&domain.User{ID: 7, Role: domain.RoleCustomer}, nil).Once()
	m.bookings.On("Cancel", mock.Anything, 5, 7).
		Return(nil, service.ErrNotBookingOwner).Once()

	req := httptest.NewRequest("POST", "/api/bookings/5/cancel", nil)
	req.Header.Set("Authorization", "Bearer tok-7")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestHandler_tableQRCode(t *testing.T) {
	router, m := setupTestRouter(t)

	manager := &domain.User{ID: 1, Role: domain.RoleManager}
	m.auth.On("CurrentUser", mock.Anything, "tok-1").Return(manager, nil).Once()
	m.tables.On("QRCode", mock.Anything, 3).Return([]byte("\x89PNGfake"), nil).Once()

	req := httptest.NewRequest("GET", "/api/tables/3/qrcode", nil)
	req.Header.Set("Authorization", "Bearer tok-1")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "image/png", recorder.Header().Get("Content-Type"))
}

func TestHandler_createReviewDuplicate(t *testing.T) {
	router, m := setupTestRouter(t)

	m.auth.On("CurrentUser", mock.Anything, "tok-42").
		Return(&domain.User{ID: 42, Role: domain.RoleCustomer}, nil).Once()
	m.reviews.On("Create", mock.Anything, mock.Anything).
		Return(service.ErrDuplicateReview).Once()

	req := httptest.NewRequest("POST", "/api/dishes/7/reviews", bytes.NewBufferString(`{"rating":5,"content":"Great!"}`))
	req.Header.Set("Authorization", "Bearer tok-42")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestHandler_statisticsRequireManager(t *testing.T) {
	router, m := setupTestRouter(t)

	waiter := &domain.User{ID: 2, Role: domain.RoleWaiter}
	m.auth.On("CurrentUser", mock.Anything, "tok-2").Return(waiter, nil).Once()

	req := httptest.NewRequest("GET", "/api/statistics/revenue", nil)
	req.Header.Set("Authorization", "Bearer tok-2")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}
