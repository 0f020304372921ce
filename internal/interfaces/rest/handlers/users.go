package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator"
	"github.com/google/uuid"

	"github.com/pagosclm/pagos-service/internal/domain"
	"github.com/pagosclm/pagos-service/internal/interfaces/rest"
)

type UserService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	Save(ctx context.Context, user *domain.User) (*domain.User, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type UserHandler struct {
	service  UserService
	validate *validator.Validate
}

func NewUserHandler(service UserService) *UserHandler {
	return &UserHandler{
		service:  service,
		validate: validator.New(),
	}
}

func (h *UserHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v2/usuarios", h.HandleList)
	mux.HandleFunc("POST /api/v2/usuarios", h.HandleCreate)
	mux.HandleFunc("GET /api/v2/usuarios/{id}", h.HandleGet)
	mux.HandleFunc("PUT /api/v2/usuarios/{id}", h.HandleUpdate)
	mux.HandleFunc("DELETE /api/v2/usuarios/{id}", h.HandleDelete)
}

type UserRequest struct {
	Name  string `json:"nombre" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// HandleCreate registers a user
// @Summary      Create a user
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        request  body      UserRequest       true  "User"
// @Success      201      {object}  rest.APIResponse
// @Failure      400      {object}  rest.APIResponse
// @Router       /usuarios [post]
func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.RespondError(w, domain.NewValidationError(err.Error()))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		rest.RespondError(w, domain.NewValidationError(err.Error()))
		return
	}

	saved, err := h.service.Save(r.Context(), &domain.User{Name: req.Name, Email: req.Email})
	if err != nil {
		rest.RespondError(w, err)
		return
	}

	self := "/api/v2/usuarios/" + saved.ID.String()
	w.Header().Set("Location", self)
	rest.RespondJSON(w, http.StatusCreated, userResource(saved))
}

// HandleUpdate replaces a user's profile fields.
// @Summary      Update a user
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        id       path      string       true  "User id"
// @Param        request  body      UserRequest  true  "User"
// @Success      200      {object}  rest.APIResponse
// @Router       /usuarios/{id} [put]
func (h *UserHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.RespondError(w, domain.NewValidationError(err.Error()))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		rest.RespondError(w, domain.NewValidationError(err.Error()))
		return
	}

	saved, err := h.service.Save(r.Context(), &domain.User{ID: id, Name: req.Name, Email: req.Email})
	if err != nil {
		rest.RespondError(w, err)
		return
	}

	rest.RespondJSON(w, http.StatusOK, userResource(saved))
}

func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	user, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		rest.RespondError(w, err)
		return
	}

	rest.RespondJSON(w, http.StatusOK, userResource(user))
}

func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.FindAll(r.Context())
	if err != nil {
		rest.RespondError(w, err)
		return
	}

	rest.RespondJSON(w, http.StatusOK, resources(users, userResource))
}

func (h *UserHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
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
