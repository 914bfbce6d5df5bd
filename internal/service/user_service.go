package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/account-server/internal/model"
	"github.com/carson-networks/account-server/internal/storage"
	"github.com/carson-networks/account-server/internal/storage/sqlconfig"
)

// UserService registers and looks up account owners.
type UserService struct {
	storage *storage.Storage
	log     logrus.FieldLogger
}

func NewUserService(store *storage.Storage, log logrus.FieldLogger) *UserService {
	return &UserService{storage: store, log: log}
}

// RegisterUser validates and stores a new active user.
func (s *UserService) RegisterUser(ctx context.Context, name, email, userType, number string) (*model.User, error) {
	user, err := model.NewUser(name, email, userType, number)
	if err != nil {
		return nil, newError(ErrInvalidArgument, "%s", err.Error())
	}

	row, err := s.storage.Users.Register(ctx, &sqlconfig.UserCreate{
		Name:   user.Name,
		Type:   user.Type,
		Number: user.Number,
		Email:  user.Email,
		Active: user.Active,
	})
	if err != nil {
		s.log.WithError(err).Error("UserService.RegisterUser.Users.Register")
		return nil, err
	}

	registered := userFromStorage(row)
	return &registered, nil
}

func (s *UserService) GetUser(ctx context.Context, id int64) (*model.User, error) {
	row, err := s.storage.Users.FindByID(ctx, id)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return nil, newError(ErrNotFound, "user not found: %d", id)
	}
	if err != nil {
		return nil, err
	}

	user := userFromStorage(row)
	return &user, nil
}

func (s *UserService) UserExists(ctx context.Context, id int64) (bool, error) {
	return s.storage.Users.Exists(ctx, id)
}
