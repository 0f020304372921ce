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

type RefundService interface {
	ProcessRefund(ctx context.Context, paymentID uuid.UUID, amount decimal.Decimal) (*domain.Refund, error)
	UpdateStatus(ctx context.Context, refundID uuid.UUID, status string) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Refund, error)
	FindAll(ctx context.Context) ([]*domain.Refund, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type RefundHandler struct {
	service  RefundService
	validate *validator.Validate
}

func NewRefundHandler(service RefundService) *RefundHandler {
	return &RefundHandler{
		service:  service,
		validate: validator.New(),
	}
}

func (h *RefundHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v2/reembolsos", h.HandleList)
	mux.HandleFunc("POST /api/v2/reembolsos/procesar", h.HandleProcess)
	mux.HandleFunc("GET /api/v2/reembolsos/{id}", h.HandleGet)
	mux.HandleFunc("PUT /api/v2/reembolsos/{id}/estado", h.HandleUpdateStatus)
	mux.HandleFunc("DELETE /api/v2/reembolsos/{id}", h.HandleDelete)
}

type ProcessRefundRequest struct {
	PaymentID string          `json:"pagoId" validate:"required,uuid"`
	Amount    decimal.Decimal `json:"monto"`
}

// HandleProcess requests a refund for a payment
// @Summary      Request a refund
// @Description  Asks Webpay for a refund and stores the pending result. The payment id is not checked for existence.
// @Tags         reembolsos
// @Accept       json
// @Produce      json
// @Param        request  body      ProcessRefundRequest  true  "Refund details"
// @Success      201      {object}  rest.APIResponse      "Refund created"
// @Failure      400      {object}  rest.APIResponse      "Invalid request or non-positive amount"
// @Failure      500      {object}  rest.APIResponse      "Internal server error"
// @Router       /reembolsos/procesar [post]
func (h *RefundHandler) HandleProcess(w http.ResponseWriter, r *http.Request) {
	var req ProcessRefundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.RespondError(w, domain.NewValidationError(err.Error()))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		rest.RespondError(w, domain.NewValidationError(err.Error()))
		return
	}

	paymentID, _ := uuid.Parse(req.PaymentID)

	refund, err := h.service.ProcessRefund(r.Context(), paymentID, req.Amount)
	if err != nil {
		rest.RespondError(w, err)
		return
	}

	self := "/api/v2/reembolsos/" + refund.ID.String()
	w.Header().Set("Location", self)
	rest.RespondJSON(w, http.StatusCreated, refundResource(refund))
}

// HandleUpdateStatus sets the status of a refund; a missing id is ignored.
// @Summary      Update refund status
// @Tags         reembolsos
// @Accept       json
// @Produce      json
// @Param        id       path      string               true  "Refund id"
// @Param        request  body      UpdateStatusRequest  true  "New status"
// @Success      200      {object}  rest.APIResponse
// @Router       /reembolsos/{id}/estado [put]
func (h *RefundHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
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

// HandleGet returns one refund
// @Summary      Get a refund
// @Tags         reembolsos
// @Produce      json
// @Param        id   path      string  true  "Refund id"
// @Success      200  {object}  rest.APIResponse
// @Failure      404  {object}  rest.APIResponse
// @Router       /reembolsos/{id} [get]
func (h *RefundHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	refund, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		rest.RespondError(w, err)
		return
	}

	rest.RespondJSON(w, http.StatusOK, refundResource(refund))
}

// HandleList returns all refunds
// @Summary      List refunds
// @Tags         reembolsos
// @Produce      json
// @Success      200  {object}  rest.APIResponse
// @Router       /reembolsos [get]
func (h *RefundHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	refunds, err := h.service.FindAll(r.Context())
	if err != nil {
		rest.RespondError(w, err)
		return
	}

	rest.RespondJSON(w, http.StatusOK, resources(refunds, refundResource))
}

// HandleDelete removes a refund; deleting an unknown id still returns 204.
// @Summary      Delete a refund
// @Tags         reembolsos
// @Param        id  path  string  true  "Refund id"
// @Success      204  "No content"
// @Router       /reembolsos/{id} [delete]
func (h *RefundHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
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
