package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pagosclm/pagos-service/internal/domain"
	"github.com/pagosclm/pagos-service/internal/interfaces/rest"
)

type PaymentService interface {
	ProcessPayment(ctx context.Context, orderID, userID uuid.UUID, amount decimal.Decimal) (*domain.Payment, error)
	UpdateStatus(ctx context.Context, paymentID uuid.UUID, status string) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error)
	FindAll(ctx context.Context) ([]*domain.Payment, error)
	Save(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type PaymentHandler struct {
	service  PaymentService
	validate *validator.Validate
}

func NewPaymentHandler(service PaymentService) *PaymentHandler {
	return &PaymentHandler{
		service:  service,
		validate: validator.New(),
	}
}

func (h *PaymentHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v2/pagos", h.HandleList)
	mux.HandleFunc("POST /api/v2/pagos", h.HandleCreate)
	mux.HandleFunc("POST /api/v2/pagos/procesar", h.HandleProcess)
	mux.HandleFunc("GET /api/v2/pagos/{id}", h.HandleGet)
	mux.HandleFunc("PUT /api/v2/pagos/{id}", h.HandleUpdate)
	mux.HandleFunc("PUT /api/v2/pagos/{id}/estado", h.HandleUpdateStatus)
	mux.HandleFunc("DELETE /api/v2/pagos/{id}", h.HandleDelete)
}

type ProcessPaymentRequest struct {
	OrderID string          `json:"orderId" validate:"required,uuid"`
	UserID  string          `json:"usuarioId" validate:"required,uuid"`
	Amount  decimal.Decimal `json:"monto"`
}

type UpdateStatusRequest struct {
	Status string `json:"estado" validate:"required"`
}

// HandleProcess charges an order through the gateway
// @Summary      Process a payment
// @Description  Runs the order through Webpay, records the resulting transaction and creates the payment.
// @Tags         pagos
// @Accept       json
// @Produce      json
// @Param        request  body      ProcessPaymentRequest  true  "Payment details"
// @Success      201      {object}  rest.APIResponse       "Payment created"
// @Failure      400      {object}  rest.APIResponse       "Invalid request"
// @Failure      500      {object}  rest.APIResponse       "Internal server error"
// @Router       /pagos/procesar [post]
func (h *PaymentHandler) HandleProcess(w http.ResponseWriter, r *http.Request) {
	var req ProcessPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.RespondError(w, domain.NewValidationError(err.Error()))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		rest.RespondError(w, domain.NewValidationError(err.Error()))
		return
	}

	orderID, _ := uuid.Parse(req.OrderID)
	userID, _ := uuid.Parse(req.UserID)

	payment, err := h.service.ProcessPayment(r.Context(), orderID, userID, req.Amount)
	if err != nil {
		rest.RespondError(w, err)
		return
	}

	self := "/api/v2/pagos/" + payment.ID.String()
	w.Header().Set("Location", self)
	rest.RespondJSON(w, http.StatusCreated, paymentResource(payment))
}

// HandleUpdateStatus overwrites a payment's status
// @Summary      Update payment status
// @Description  Sets the status of a payment. A missing payment id is silently ignored.
// @Tags         pagos
// @Accept       json
// @Produce      json
// @Param        id       path      string               true  "Payment id"
// @Param        request  body      UpdateStatusRequest  true  "New status"
// @Success      200      {object}  rest.APIResponse
// @Failure      400      {object}  rest.APIResponse
// @Router       /pagos/{id}/estado [put]
func (h *PaymentHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.RespondError(w, domain.NewValidationError(err.Error()))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		rest.RespondError(w, domain.NewValidationError(err.Error()))
		return
	}

	if err := h.service.UpdateStatus(r.Context(), id, req.Status); err != nil {
		rest.RespondError(w, err)
		return
	}

	rest.RespondJSON(w, http.StatusOK, nil)
}

// HandleGet returns one payment
// @Summary      Get a payment
// @Tags         pagos
// @Produce      json
// @Param        id   path      string  true  "Payment id"
// @Success      200  {object}  rest.APIResponse
// @Failure      404  {object}  rest.APIResponse
// @Router       /pagos/{id} [get]
func (h *PaymentHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	payment, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		rest.RespondError(w, err)
		return
	}

	rest.RespondJSON(w, http.StatusOK, paymentResource(payment))
}

// HandleList returns all payments
// @Summary      List payments
// @Tags         pagos
// @Produce      json
// @Success      200  {object}  rest.APIResponse
// @Router       /pagos [get]
func (h *PaymentHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	payments, err := h.service.FindAll(r.Context())
	if err != nil {
		rest.RespondError(w, err)
		return
	}

	rest.RespondJSON(w, http.StatusOK, resources(payments, paymentResource))
}

// HandleCreate stores a payment record as-is, without running it through
// the gateway.
// @Summary      Create a payment record
// @Tags         pagos
// @Accept       json
// @Produce      json
// @Param        request  body      domain.Payment  true  "Payment"
// @Success      201      {object}  rest.APIResponse
// @Router       /pagos [post]
func (h *PaymentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var payment domain.Payment
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		rest.RespondError(w, domain.NewValidationError(err.Error()))
		return
	}

	saved, err := h.service.Save(r.Context(), &payment)
	if err != nil {
		rest.RespondError(w, err)
		return
	}

	self := "/api/v2/pagos/" + saved.ID.String()
	w.Header().Set("Location", self)
	rest.RespondJSON(w, http.StatusCreated, paymentResource(saved))
}

// HandleUpdate replaces a payment record.
// @Summary      Update a payment record
// @Tags         pagos
// @Accept       json
// @Produce      json
// @Param        id       path      string          true  "Payment id"
// @Param        request  body      domain.Payment  true  "Payment"
// @Success      200      {object}  rest.APIResponse
// @Router       /pagos/{id} [put]
func (h *PaymentHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var payment domain.Payment
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		rest.RespondError(w, domain.NewValidationError(err.Error()))
		return
	}
	payment.ID = id

	saved, err := h.service.Save(r.Context(), &payment)
	if err != nil {
		rest.RespondError(w, err)
		return
	}

	rest.RespondJSON(w, http.StatusOK, paymentResource(saved))
}

// HandleDelete removes a payment; deleting an unknown id still returns 204.
// @Summary      Delete a payment
// @Tags         pagos
// @Param        id  path  string  true  "Payment id"
// @Success      204  "No content"
// @Router       /pagos/{id} [delete]
func (h *PaymentHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteByID(r.Context(), id); err != nil {
		rest.RespondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
