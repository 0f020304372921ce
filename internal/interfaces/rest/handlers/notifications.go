package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/pagosclm/pagos-service/internal/domain"
	"github.com/pagosclm/pagos-service/internal/interfaces/rest"
)

type NotificationService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error)
	FindAll(ctx context.Context) ([]*domain.Notification, error)
	Save(ctx context.Context, notification *domain.Notification) (*domain.Notification, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type NotificationHandler struct {
	service NotificationService
}

func NewNotificationHandler(service NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

func (h *NotificationHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v2/notificaciones", h.HandleList)
	mux.HandleFunc("POST /api/v2/notificaciones", h.HandleCreate)
	mux.HandleFunc("GET /api/v2/notificaciones/{id}", h.HandleGet)
	mux.HandleFunc("PUT /api/v2/notificaciones/{id}", h.HandleUpdate)
	mux.HandleFunc("DELETE /api/v2/notificaciones/{id}", h.HandleDelete)
}

func (h *NotificationHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var notification domain.Notification
	if err := json.NewDecoder(r.Body).Decode(&notification); err != nil {
		rest.RespondError(w, domain.NewValidationError(err.Error()))
		return
	}

	saved, err := h.service.Save(r.Context(), &notification)
	if err != nil {
		rest.RespondError(w, err)
		return
	}

	self := "/api/v2/notificaciones/" + saved.ID.String()
	w.Header().Set("Location", self)
	rest.RespondJSON(w, http.StatusCreated, notificationResource(saved))
}

func (h *NotificationHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var notification domain.Notification
	if err := json.NewDecoder(r.Body).Decode(&notification); err != nil {
		rest.RespondError(w, domain.NewValidationError(err.Error()))
		return
	}
	notification.ID = id

	saved, err := h.service.Save(r.Context(), &notification)
	if err != nil {
		rest.RespondError(w, err)
		return
	}

	rest.RespondJSON(w, http.StatusOK, notificationResource(saved))
}

func (h *NotificationHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	notification, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		rest.RespondError(w, err)
		return
	}

	rest.RespondJSON(w, http.StatusOK, notificationResource(notification))
}

func (h *NotificationHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.service.FindAll(r.Context())
	if err != nil {
		rest.RespondError(w, err)
		return
	}

	rest.RespondJSON(w, http.StatusOK, resources(notifications, notificationResource))
}

func (h *NotificationHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
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
