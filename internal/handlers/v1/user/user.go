package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/account-server/internal/handlers/httperr"
	"github.com/carson-networks/account-server/internal/logging"
	"github.com/carson-networks/account-server/internal/model"
)

// User is the API model for a user.
type User struct {
	ID     int64  `json:"id" doc:"User id"`
	Name   string `json:"name"`
	Type   string `json:"type" doc:"Free form tier, e.g. BASIC, PREMIUM, VIP"`
	Number string `json:"number" doc:"Identity document number"`
	Email  string `json:"email"`
	Active bool   `json:"active"`
}

func toUser(u model.User) User {
	return User{
		ID:     u.ID,
		Name:   u.Name,
		Type:   u.Type,
		Number: u.Number,
		Email:  u.Email,
		Active: u.Active,
	}
}

type RegisterUserBody struct {
	Name   string `json:"name" doc:"Display name, must not be empty"`
	Email  string `json:"email" doc:"Email address, must contain @"`
	Type   string `json:"type,omitempty"`
	Number string `json:"number,omitempty"`
}

type RegisterUserInput struct {
	Body RegisterUserBody
}

type UserIDInput struct {
	ID int64 `path:"id" doc:"User id"`
}

type UserOutput struct {
	Body User
}

type ExistsOutput struct {
	Body bool
}

type userService interface {
	RegisterUser(ctx context.Context, name, email, userType, number string) (*model.User, error)
	GetUser(ctx context.Context, id int64) (*model.User, error)
	UserExists(ctx context.Context, id int64) (bool, error)
}

// Handler serves the /api/users endpoints.
type Handler struct {
	Service userService
}

func NewHandler(svc userService) *Handler {
	return &Handler{Service: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "register-user",
		Method:        http.MethodPost,
		Path:          "/api/users",
		Summary:       "Register user",
		Tags:          []string{"Users"},
		DefaultStatus: http.StatusCreated,
	}, h.handleRegister)

	huma.Register(api, huma.Operation{
		OperationID: "get-user",
		Method:      http.MethodGet,
		Path:        "/api/users/{id}",
		Summary:     "Get user",
		Tags:        []string{"Users"},
	}, h.handleGet)

	huma.Register(api, huma.Operation{
		OperationID: "user-exists",
		Method:      http.MethodGet,
		Path:        "/api/users/{id}/exists",
		Summary:     "Check user exists",
		Tags:        []string{"Users"},
	}, h.handleExists)
}

func (h *Handler) handleRegister(ctx context.Context, input *RegisterUserInput) (*UserOutput, error) {
	body := input.Body
	user, err := h.Service.RegisterUser(ctx, body.Name, body.Email, body.Type, body.Number)
	if err != nil {
		return nil, httperr.FromService(err, "register user")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("userID", user.ID)
	}
	return &UserOutput{Body: toUser(*user)}, nil
}

func (h *Handler) handleGet(ctx context.Context, input *UserIDInput) (*UserOutput, error) {
	user, err := h.Service.GetUser(ctx, input.ID)
	if err != nil {
		return nil, httperr.FromService(err, "get user")
	}
	return &UserOutput{Body: toUser(*user)}, nil
}

func (h *Handler) handleExists(ctx context.Context, input *UserIDInput) (*ExistsOutput, error) {
	exists, err := h.Service.UserExists(ctx, input.ID)
	if err != nil {
		return nil, httperr.FromService(err, "check user")
	}
	return &ExistsOutput{Body: exists}, nil
}
