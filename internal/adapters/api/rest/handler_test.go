package rest_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/playmixer/goldmarket/internal/adapters/api/rest"
	"github.com/playmixer/goldmarket/internal/adapters/store/errstore"
	"github.com/playmixer/goldmarket/internal/adapters/store/model"
	"github.com/playmixer/goldmarket/internal/core/market"
	"github.com/playmixer/goldmarket/internal/mocks/gateway"
	"github.com/playmixer/goldmarket/internal/mocks/store"
	"github.com/playmixer/goldmarket/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var (
	cookieKey  = "UserID"
	testSecret = "secret_key"
)

func testConfig() *rest.Config {
	return &rest.Config{
		Address: ":8080",
		Secret:  testSecret,
		BaseURL: "http://localhost:8080",
	}
}

func newServer(t *testing.T, ctrl *gomock.Controller) (*rest.Server, *store.MockStore, *gateway.MockGateway) {
	t.Helper()

	storeMock := store.NewMockStore(ctrl)
	gatewayMock := gateway.NewMockGateway(ctrl)
	mart := market.New(&market.Config{UploadPath: t.TempDir()}, storeMock, gatewayMock)

	server, err := rest.New(mart, rest.Configure(testConfig()))
	assert.NoError(t, err)

	return server, storeMock, gatewayMock
}

func authCookie(t *testing.T, userID uint) *http.Cookie {
	t.Helper()

	jwtRest := jwt.New([]byte(testSecret))
	signedCookie, err := jwtRest.Create(cookieKey, strconv.Itoa(int(userID)))
	assert.NoError(t, err)

	return &http.Cookie{
		Name:  "token",
		Value: signedCookie,
		Path:  "/",
	}
}

func TestServer_handlerRegister(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name     string
		login    string
		password string
		status   int
	}{
		{
			name:     "correct",
			login:    "user",
			password: "pass",
			status:   http.StatusOK,
		},
		{
			name:     "empty",
			login:    "",
			password: "",
			status:   http.StatusBadRequest,
		},
		{
			name:     "not unique",
			login:    "user",
			password: "pass",
			status:   http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			server, storeMock, _ := newServer(t, ctrl)

			if tt.status != http.StatusBadRequest {
				if tt.status == http.StatusConflict {
					storeMock.EXPECT().
						RegisterUser(ctx, gomock.Any()).
						Return(model.User{}, errstore.ErrLoginNotUnique).
						Times(1)
				} else {
					storeMock.EXPECT().
						RegisterUser(ctx, gomock.Any()).
						Return(model.User{ID: 1, Login: tt.login}, nil).
						Times(1)
					hashPass, err := market.HashPassword(tt.password)
					assert.NoError(t, err)
					storeMock.EXPECT().
						GetUserByLogin(ctx, tt.login).
						Return(model.User{
							ID:           1,
							PasswordHash: hashPass,
						}, nil).
						Times(1)
				}
			}

			w := httptest.NewRecorder()
			body := strings.NewReader(fmt.Sprintf(`{"login":%q, "password":%q}`, tt.login, tt.password))
			r := httptest.NewRequest(http.MethodPost, "/api/user/register", body)

			server.Engine().ServeHTTP(w, r)

			result := w.Result()

			assert.Equal(t, tt.status, result.StatusCode)

			err := result.Body.Close()
			assert.NoError(t, err)
		})
	}
}

func TestServer_handlerLogin(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name     string
		login    string
		password string
		status   int
	}{
		{
			name:     "correct",
			login:    "user",
			password: "pass",
			status:   http.StatusOK,
		},
		{
			name:     "empty",
			login:    "",
			password: "",
			status:   http.StatusBadRequest,
		},
		{
			name:     "unauthorize",
			login:    "user",
			password: "pass",
			status:   http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			server, storeMock, _ := newServer(t, ctrl)

			if tt.status != http.StatusBadRequest {
				hashPass, err := market.HashPassword(tt.password)
				assert.NoError(t, err)
				if tt.status == http.StatusUnauthorized {
					hashPass = "wrong pass"
				}
				storeMock.EXPECT().
					GetUserByLogin(ctx, tt.login).
					Return(model.User{
						ID:           1,
						PasswordHash: hashPass,
					}, nil).
					Times(1)
			}

			w := httptest.NewRecorder()
			body := strings.NewReader(fmt.Sprintf(`{"login":%q, "password":%q}`, tt.login, tt.password))
			r := httptest.NewRequest(http.MethodPost, "/api/user/login", body)

			server.Engine().ServeHTTP(w, r)

			result := w.Result()

			assert.Equal(t, tt.status, result.StatusCode)

			err := result.Body.Close()
			assert.NoError(t, err)
		})
	}
}

func TestServer_handlerProducts(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, storeMock, _ := newServer(t, ctrl)

	storeMock.EXPECT().
		Products(ctx, gomock.Any()).
		Return([]*model.Product{
			{ID: 1, Name: "100k gold", Price: 1000, Count: 5, Enabled: true},
		}, nil).
		Times(1)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/products", nil)

	server.Engine().ServeHTTP(w, r)

	result := w.Result()
	assert.Equal(t, http.StatusOK, result.StatusCode)

	products := []map[string]any{}
	assert.NoError(t, json.NewDecoder(result.Body).Decode(&products))
	assert.Len(t, products, 1)
	assert.Equal(t, "100k gold", products[0]["name"])

	assert.NoError(t, result.Body.Close())
}

func TestServer_handlerCartAdd(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name   string
		getErr error
		status int
	}{
		{
			name:   "correct",
			status: http.StatusOK,
		},
		{
			name:   "not found",
			getErr: errstore.ErrNotFoundData,
			status: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			server, storeMock, _ := newServer(t, ctrl)

			product := model.Product{ID: 1, Name: "100k gold", Price: 1000, Count: 5, Enabled: true}
			storeMock.EXPECT().
				GetProduct(ctx, uint(1)).
				Return(product, tt.getErr).
				Times(1)
			if tt.getErr == nil {
				storeMock.EXPECT().
					GetProductsByIDs(ctx, gomock.Any()).
					Return([]*model.Product{&product}, nil).
					Times(1)
			}

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/cart/add/1", nil)

			server.Engine().ServeHTTP(w, r)

			result := w.Result()
			assert.Equal(t, tt.status, result.StatusCode)

			if tt.getErr == nil {
				cart := map[string]any{}
				assert.NoError(t, json.NewDecoder(result.Body).Decode(&cart))
				assert.Equal(t, float64(1000), cart["total"])
			}

			assert.NoError(t, result.Body.Close())
		})
	}
}

func TestServer_handlerCheckout(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, storeMock, gatewayMock := newServer(t, ctrl)

	product := model.Product{ID: 1, Name: "100k gold", Price: 1000, Count: 5, Enabled: true}
	storeMock.EXPECT().
		GetProduct(ctx, uint(1)).
		Return(product, nil).
		Times(1)
	storeMock.EXPECT().
		GetProductsByIDs(ctx, gomock.Any()).
		Return([]*model.Product{&product}, nil).
		Times(2)
	storeMock.EXPECT().
		GetUserByID(ctx, uint(1)).
		Return(model.User{ID: 1, Email: "user@example.com"}, nil).
		Times(1)
	storeMock.EXPECT().
		CreateInvoiceWithItems(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, invoice *model.Invoice, _ []*model.InvoiceItem) error {
			invoice.ID = 5
			return nil
		}).
		Times(1)
	storeMock.EXPECT().
		CreatePayment(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, payment *model.Payment) error {
			payment.ID = 7
			return nil
		}).
		Times(1)
	gatewayMock.EXPECT().
		Request(ctx, gomock.Any()).
		Return("A0001", nil).
		Times(1)
	storeMock.EXPECT().
		SetPaymentAuthority(ctx, uint(7), "A0001").
		Return(nil).
		Times(1)
	gatewayMock.EXPECT().
		StartPayURL("A0001").
		Return("https://sandbox.zarinpal.com/pg/StartPay/A0001").
		Times(1)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/cart/add/1", nil)
	server.Engine().ServeHTTP(w, r)
	result := w.Result()
	assert.Equal(t, http.StatusOK, result.StatusCode)
	sessionCookies := result.Cookies()
	assert.NoError(t, result.Body.Close())

	w = httptest.NewRecorder()
	body := strings.NewReader(`{"battle_tag":"buyer#1234"}`)
	r = httptest.NewRequest(http.MethodPost, "/api/checkout", body)
	r.AddCookie(authCookie(t, 1))
	for _, cookie := range sessionCookies {
		r.AddCookie(cookie)
	}

	server.Engine().ServeHTTP(w, r)

	result = w.Result()
	assert.Equal(t, http.StatusOK, result.StatusCode)

	response := map[string]any{}
	assert.NoError(t, json.NewDecoder(result.Body).Decode(&response))
	assert.Equal(t, "https://sandbox.zarinpal.com/pg/StartPay/A0001", response["redirect_url"])

	assert.NoError(t, result.Body.Close())
}

func TestServer_handlerCheckout_EmptyCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, _, _ := newServer(t, ctrl)

	w := httptest.NewRecorder()
	body := strings.NewReader(`{"battle_tag":"buyer#1234"}`)
	r := httptest.NewRequest(http.MethodPost, "/api/checkout", body)
	r.AddCookie(authCookie(t, 1))

	server.Engine().ServeHTTP(w, r)

	result := w.Result()
	assert.Equal(t, http.StatusBadRequest, result.StatusCode)
	assert.NoError(t, result.Body.Close())
}

func TestServer_handlerSubmitOffer(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name     string
		quantity int
		auth     bool
		status   int
	}{
		{
			name:     "correct",
			quantity: 300,
			auth:     true,
			status:   http.StatusCreated,
		},
		{
			name:     "bad quantity",
			quantity: 250,
			auth:     true,
			status:   http.StatusUnprocessableEntity,
		},
		{
			name:     "unauthorize",
			quantity: 300,
			status:   http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			server, storeMock, _ := newServer(t, ctrl)

			if tt.auth {
				storeMock.EXPECT().
					GetOrder(ctx, uint(1)).
					Return(model.Order{ID: 1, MinReserve: 100, PricePer1K: 500, Amount: 10000, Rest: 1000}, nil).
					Times(1)
				if tt.status == http.StatusCreated {
					storeMock.EXPECT().
						CreateOfferAndReserve(ctx, gomock.Any()).
						DoAndReturn(func(_ context.Context, offer *model.Offer) error {
							offer.ID = 10
							return nil
						}).
						Times(1)
				}
			}

			w := httptest.NewRecorder()
			body := strings.NewReader(fmt.Sprintf(`{"quantity":%d}`, tt.quantity))
			r := httptest.NewRequest(http.MethodPost, "/api/orders/1/offers", body)
			if tt.auth {
				r.AddCookie(authCookie(t, 2))
			}

			server.Engine().ServeHTTP(w, r)

			result := w.Result()
			assert.Equal(t, tt.status, result.StatusCode)

			if tt.status == http.StatusCreated {
				offer := map[string]any{}
				assert.NoError(t, json.NewDecoder(result.Body).Decode(&offer))
				assert.Equal(t, float64(150), offer["total_price"])
				assert.Equal(t, "pending", offer["status"])
			}

			assert.NoError(t, result.Body.Close())
		})
	}
}

func TestServer_handlerVerifyPayment(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, storeMock, gatewayMock := newServer(t, ctrl)

	payment := model.Payment{ID: 7, Total: 2180, Authority: "A0001", Status: model.PaymentStatePending}
	storeMock.EXPECT().
		GetPendingPaymentByAuthority(ctx, "A0001").
		Return(payment, nil).
		Times(1)
	gatewayMock.EXPECT().
		Verify(ctx, 2180, "A0001").
		Return(market.GatewayVerify{Code: 100, RefID: "123456"}, nil).
		Times(1)
	storeMock.EXPECT().
		FinishPayment(ctx, uint(7), model.PaymentStateDone, "123456").
		Return(nil).
		Times(1)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/payment/verify?Status=OK&Authority=A0001", nil)
	r.AddCookie(authCookie(t, 1))

	server.Engine().ServeHTTP(w, r)

	result := w.Result()
	assert.Equal(t, http.StatusOK, result.StatusCode)

	response := map[string]any{}
	assert.NoError(t, json.NewDecoder(result.Body).Decode(&response))
	assert.Equal(t, "done", response["status"])
	assert.Equal(t, "123456", response["ref_id"])

	assert.NoError(t, result.Body.Close())
}

func TestServer_handlerVerifyPayment_NotFound(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, storeMock, _ := newServer(t, ctrl)

	storeMock.EXPECT().
		GetPendingPaymentByAuthority(ctx, "A0002").
		Return(model.Payment{}, errstore.ErrNotFoundData).
		Times(1)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/payment/verify?Status=OK&Authority=A0002", nil)
	r.AddCookie(authCookie(t, 1))

	server.Engine().ServeHTTP(w, r)

	result := w.Result()
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
	assert.NoError(t, result.Body.Close())
}

func TestServer_handlerAdminOfferStatus(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name    string
		isAdmin bool
		from    model.OfferStatus
		to      string
		status  int
	}{
		{
			name:    "correct",
			isAdmin: true,
			from:    model.OfferStatePending,
			to:      "review",
			status:  http.StatusOK,
		},
		{
			name:    "invalid transition",
			isAdmin: true,
			from:    model.OfferStatePending,
			to:      "paid",
			status:  http.StatusConflict,
		},
		{
			name:   "forbidden",
			from:   model.OfferStatePending,
			to:     "review",
			status: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			server, storeMock, _ := newServer(t, ctrl)

			storeMock.EXPECT().
				GetUserByID(ctx, uint(1)).
				Return(model.User{ID: 1, IsAdmin: tt.isAdmin}, nil).
				Times(1)
			if tt.isAdmin {
				storeMock.EXPECT().
					GetOffer(ctx, uint(10)).
					Return(model.Offer{ID: 10, Status: tt.from}, nil).
					Times(1)
				if tt.status == http.StatusOK {
					storeMock.EXPECT().
						UpdateOfferStatus(ctx, uint(10), model.OfferStatus(tt.to)).
						Return(nil).
						Times(1)
				}
			}

			w := httptest.NewRecorder()
			body := strings.NewReader(fmt.Sprintf(`{"status":%q}`, tt.to))
			r := httptest.NewRequest(http.MethodPatch, "/api/admin/offers/10/status", body)
			r.AddCookie(authCookie(t, 1))

			server.Engine().ServeHTTP(w, r)

			result := w.Result()
			assert.Equal(t, tt.status, result.StatusCode)
			assert.NoError(t, result.Body.Close())
		})
	}
}
