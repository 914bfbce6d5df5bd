package user

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/account-server/internal/model"
	"github.com/carson-networks/account-server/internal/service"
)

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) RegisterUser(ctx context.Context, name, email, userType, number string) (*model.User, error) {
	args := m.Called(ctx, name, email, userType, number)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *mockUserService) GetUser(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *mockUserService) UserExists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func newTestAPI(t *testing.T) (humatest.TestAPI, *mockUserService) {
	t.Helper()
	svc := &mockUserService{}
	t.Cleanup(func() { svc.AssertExpectations(t) })

	_, api := humatest.New(t)
	NewHandler(svc).Register(api)
	return api, svc
}

func TestRegisterUser(t *testing.T) {
	api, svc := newTestAPI(t)

	svc.On("RegisterUser", mock.Anything, "Ada", "ada@example.com", "VIP", "123").
		Return(&model.User{ID: 4, Name: "Ada", Email: "ada@example.com", Type: "VIP", Number: "123", Active: true}, nil)

	resp := api.Post("/api/users", map[string]any{"name": "Ada", "email": "ada@example.com", "type": "VIP", "number": "123"})

	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	var body User
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, int64(4), body.ID)
	assert.True(t, body.Active)
}

func TestRegisterUser_Invalid(t *testing.T) {
	api, svc := newTestAPI(t)

	svc.On("RegisterUser", mock.Anything, "Ada", "nope", "", "").
		Return(nil, &service.Error{Kind: service.ErrInvalidArgument, Message: "email must contain @"})

	resp := api.Post("/api/users", map[string]any{"name": "Ada", "email": "nope"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "email must contain @")
}

func TestGetUser(t *testing.T) {
	api, svc := newTestAPI(t)

	svc.On("GetUser", mock.Anything, int64(4)).Return(&model.User{ID: 4, Name: "Ada"}, nil)
	svc.On("GetUser", mock.Anything, int64(5)).Return(nil, &service.Error{Kind: service.ErrNotFound, Message: "user not found: 5"})

	assert.Equal(t, http.StatusOK, api.Get("/api/users/4").Code)
	assert.Equal(t, http.StatusNotFound, api.Get("/api/users/5").Code)
}

func TestUserExists(t *testing.T) {
	api, svc := newTestAPI(t)

	svc.On("UserExists", mock.Anything, int64(4)).Return(true, nil)

	resp := api.Get("/api/users/4/exists")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "true", strings.TrimSpace(resp.Body.String()))
}
