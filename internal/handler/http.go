package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/restaurant-hunger/email-service/internal/entities"
	"github.com/restaurant-hunger/email-service/pkg/utils"

	"github.com/go-chi/chi/v5"
)

var requiredOrderFields = []string{"customer_email", "customer_name", "items"}

type OrderNotifier interface {
	SendOrderEmails(ctx context.Context, order entities.Order) error
	SendCancellationEmail(ctx context.Context, c entities.Cancellation) error
}

type HTTPHandler struct {
	logger *slog.Logger
	svc    OrderNotifier
}

func NewHTTPHandler(logger *slog.Logger, svc OrderNotifier) *HTTPHandler {
	return &HTTPHandler{
		logger: logger.With(slog.String("handler", "http")),
		svc:    svc,
	}
}

// Init mounts every endpoint twice: under the bare paths the serverless
// functions were published at and under the /api prefix of the always-on
// server. Both surfaces stay identical.
func (h *HTTPHandler) Init(r chi.Router) {
	for _, prefix := range []string{"", "/api"} {
		r.Get(prefix+"/health", h.Health)
		r.Post(prefix+"/send-order-emails", h.SendOrderEmails)
		r.Post(prefix+"/send-cancellation-email", h.SendCancellationEmail)
	}

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
	})
}

// Health reports liveness.
// @Summary      Health check
// @Tags         ops
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *HTTPHandler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{
		"status":  "ok",
		"message": "Server is running",
	}, http.StatusOK)
}

// SendOrderEmails dispatches the customer confirmation and the owner
// notification for a new order.
// @Summary      Send new-order emails
// @Tags         notifications
// @Accept       json
// @Param        order  body  OrderRequest  true  "Order payload"
// @Success      200  {object}  utils.SuccessResponse
// @Failure      400  {object}  utils.MissingFieldsResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /send-order-emails [post]
func (h *HTTPHandler) SendOrderEmails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req OrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.CustomerEmail == "" || req.CustomerName == "" || len(req.Items) == 0 {
		utils.WriteMissingFields(w, requiredOrderFields)
		return
	}

	if err := h.svc.SendOrderEmails(ctx, OrderJSONToEntity(req)); err != nil {
		emailSendFailures.WithLabelValues("order").Inc()
		utils.WriteErrorDetails(w, "Failed to send emails", err.Error(), http.StatusInternalServerError)
		return
	}

	emailsSent.WithLabelValues("order").Inc()
	utils.WriteSuccess(w, "Order emails sent successfully")
}

// SendCancellationEmail dispatches the rejection notice to the customer.
// @Summary      Send cancellation email
// @Tags         notifications
// @Accept       json
// @Param        cancellation  body  CancellationRequest  true  "Cancellation payload"
// @Success      200  {object}  utils.SuccessResponse
// @Failure      400  {object}  utils.MissingFieldsResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /send-cancellation-email [post]
func (h *HTTPHandler) SendCancellationEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CancellationRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.CustomerEmail == "" || req.CustomerName == "" || len(req.Items) == 0 {
		utils.WriteMissingFields(w, requiredOrderFields)
		return
	}

	if err := h.svc.SendCancellationEmail(ctx, CancellationJSONToEntity(req)); err != nil {
		emailSendFailures.WithLabelValues("cancellation").Inc()
		utils.WriteErrorDetails(w, "Failed to send cancellation email", err.Error(), http.StatusInternalServerError)
		return
	}

	emailsSent.WithLabelValues("cancellation").Inc()
	utils.WriteSuccess(w, "Cancellation email sent successfully")
}
