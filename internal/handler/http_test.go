package handler_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/restaurant-hunger/email-service/internal/entities"
	"github.com/restaurant-hunger/email-service/internal/handler"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type notifierStub struct {
	orderErr  error
	cancelErr error

	orders        []entities.Order
	cancellations []entities.Cancellation
}

func (n *notifierStub) SendOrderEmails(_ context.Context, o entities.Order) error {
	n.orders = append(n.orders, o)
	return n.orderErr
}

func (n *notifierStub) SendCancellationEmail(_ context.Context, c entities.Cancellation) error {
	n.cancellations = append(n.cancellations, c)
	return n.cancelErr
}

func newRouter(svc handler.OrderNotifier) chi.Router {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, svc)
	r := chi.NewRouter()
	h.Init(r)
	return r
}

const validOrderBody = `{
	"customer_name": "Max Mustermann",
	"customer_email": "max@example.com",
	"customer_phone": "+49 170 1234567",
	"customer_address": "Hauptstraße 1, 10115 Berlin",
	"order_number": "HP-1042",
	"items": [
		{"name": "Margherita", "quantity": 2, "size": {"name": "Large"}, "totalPrice": 10.0, "extras": [{"name": "Cheese"}]}
	],
	"subtotal": 20.0,
	"total_amount": 23.5,
	"payment_method": "cash",
	"payment_status": "pending"
}`

func TestHTTPHandler_SendOrderEmails(t *testing.T) {
	testCases := []struct {
		name       string
		body       string
		svc        *notifierStub
		wantStatus int
		wantBody   string
	}{
		{
			name:       "success",
			body:       validOrderBody,
			svc:        &notifierStub{},
			wantStatus: http.StatusOK,
			wantBody:   `"message":"Order emails sent successfully"`,
		},
		{
			name:       "missing customer email",
			body:       `{"customer_name":"Max","items":[{"name":"Margherita","quantity":1,"size":{"name":"Large"},"totalPrice":10}]}`,
			svc:        &notifierStub{},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"required":["customer_email","customer_name","items"]`,
		},
		{
			name:       "missing items",
			body:       `{"customer_name":"Max","customer_email":"max@example.com"}`,
			svc:        &notifierStub{},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"Missing required fields"`,
		},
		{
			name:       "malformed body",
			body:       `{"customer_name":`,
			svc:        &notifierStub{},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"Invalid request body"`,
		},
		{
			name:       "delivery failure",
			body:       validOrderBody,
			svc:        &notifierStub{orderErr: errors.New("smtp: connection refused")},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"error":"Failed to send emails","details":"smtp: connection refused"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := newRouter(tc.svc)

			req := httptest.NewRequest(http.MethodPost, "/send-order-emails", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}

func TestHTTPHandler_OrderPayloadConversion(t *testing.T) {
	svc := &notifierStub{}
	r := newRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/send-order-emails", strings.NewReader(validOrderBody))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, svc.orders, 1)

	o := svc.orders[0]
	assert.Equal(t, "max@example.com", o.CustomerEmail)
	assert.Nil(t, o.DeliveryFee)
	require.Len(t, o.Items, 1)
	assert.Equal(t, "Large", o.Items[0].Size)
	assert.Equal(t, []string{"Cheese"}, o.Items[0].Extras)

	// payload-level defaults
	assert.Equal(t, "40-50", o.EstimatedDeliveryTime)
	assert.Equal(t, entities.OrderTypeDelivery, o.OrderType)
}

func TestHTTPHandler_SendCancellationEmail(t *testing.T) {
	body := `{
		"customer_name": "Max Mustermann",
		"customer_email": "max@example.com",
		"order_number": "HP-1042",
		"items": [{"name": "Margherita", "quantity": 1, "size": {"name": "Small"}, "totalPrice": 8.5}],
		"subtotal": 8.5,
		"delivery_fee": 2.0,
		"total_amount": 10.5
	}`

	t.Run("success", func(t *testing.T) {
		svc := &notifierStub{}
		r := newRouter(svc)

		req := httptest.NewRequest(http.MethodPost, "/send-cancellation-email", strings.NewReader(body))
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"message":"Cancellation email sent successfully"`)
		require.Len(t, svc.cancellations, 1)
		assert.InDelta(t, 2.0, svc.cancellations[0].DeliveryFee, 1e-9)
	})

	t.Run("delivery failure", func(t *testing.T) {
		svc := &notifierStub{cancelErr: errors.New("smtp: timeout")}
		r := newRouter(svc)

		req := httptest.NewRequest(http.MethodPost, "/send-cancellation-email", strings.NewReader(body))
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), `"error":"Failed to send cancellation email"`)
		assert.Contains(t, rr.Body.String(), `"details":"smtp: timeout"`)
	})
}

func TestHTTPHandler_MethodNotAllowed(t *testing.T) {
	r := newRouter(&notifierStub{})

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		req := httptest.NewRequest(method, "/send-order-emails", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code, method)
		assert.Contains(t, rr.Body.String(), `"Method not allowed"`)
	}
}

func TestHTTPHandler_Health(t *testing.T) {
	r := newRouter(&notifierStub{})

	for _, path := range []string{"/health", "/api/health"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, path)
		assert.Contains(t, rr.Body.String(), `"status":"ok"`)
		assert.Contains(t, rr.Body.String(), `"message":"Server is running"`)
	}
}
