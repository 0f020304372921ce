package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/pagosclm/pagos-service/internal/domain"
	"github.com/pagosclm/pagos-service/internal/interfaces/rest"
)

type TransactionService interface {
	QueryStatus(ctx context.Context, transactionID uuid.UUID) (*domain.Transaction, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	FindAll(ctx context.Context) ([]*domain.Transaction, error)
	Save(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type TransactionHandler struct {
	service TransactionService
}

func NewTransactionHandler(service TransactionService) *TransactionHandler {
	return &TransactionHandler{service: service}
}

func (h *TransactionHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v2/transacciones", h.HandleList)
	mux.HandleFunc("POST /api/v2/transacciones", h.HandleCreate)
	mux.HandleFunc("GET /api/v2/transacciones/{id}", h.HandleGet)
	mux.HandleFunc("GET /api/v2/transacciones/{id}/estado", h.HandleQueryStatus)
	mux.HandleFunc("PUT /api/v2/transacciones/{id}", h.HandleUpdate)
	mux.HandleFunc("DELETE /api/v2/transacciones/{id}", h.HandleDelete)
}

// HandleQueryStatus asks the gateway for the live status of a transaction.
// @Summary      Query transaction status at the gateway
// @Tags         transacciones
// @Produce      json
// @Param        id   path      string  true  "Transaction id"
// @Success      200  {object}  rest.APIResponse
// @Router       /transacciones/{id}/estado [get]
func (h *TransactionHandler) HandleQueryStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	transaction, err := h.service.QueryStatus(r.Context(), id)
	if err != nil {
		rest.RespondError(w, err)
		return
	}

	rest.RespondJSON(w, http.StatusOK, transactionResource(transaction))
}

func (h *TransactionHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	transaction, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		rest.RespondError(w, err)
		return
	}

	rest.RespondJSON(w, http.StatusOK, transactionResource(transaction))
}

func (h *TransactionHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.service.FindAll(r.Context())
	if err != nil {
		rest.RespondError(w, err)
		return
	}

	rest.RespondJSON(w, http.StatusOK, resources(transactions, transactionResource))
}

func (h *TransactionHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var transaction domain.Transaction
	if err := json.NewDecoder(r.Body).Decode(&transaction); err != nil {
		rest.RespondError(w, domain.NewValidationError(err.Error()))
		return
	}

	saved, err := h.service.Save(r.Context(), &transaction)
	if err != nil {
		rest.RespondError(w, err)
		return
	}

	self := "/api/v2/transacciones/" + saved.ID.String()
	w.Header().Set("Location", self)
	rest.RespondJSON(w, http.StatusCreated, transactionResource(saved))
}

func (h *TransactionHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var transaction domain.Transaction
	if err := json.NewDecoder(r.Body).Decode(&transaction); err != nil {
		rest.RespondError(w, domain.NewValidationError(err.Error()))
		return
	}
	transaction.ID = id

	saved, err := h.service.Save(r.Context(), &transaction)
	if err != nil {
		rest.RespondError(w, err)
		return
	}

	rest.RespondJSON(w, http.StatusOK, transactionResource(saved))
}

func (h *TransactionHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
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
