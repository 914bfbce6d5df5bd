package model

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName    = errors.New("name cannot be empty")
	ErrInvalidEmail = errors.New("email must contain @")
)

// User is an account owner.
type User struct {
	ID     int64
	Name   string
	Type   string
	Number string
	Email  string
	Active bool
}

// NewUser builds an active user, rejecting an empty name or an email without '@'.
// The id is assigned on registration.
func NewUser(name, email, userType, number string) (User, error) {
	if strings.TrimSpace(name) == "" {
		return User{}, ErrEmptyName
	}
	if !strings.Contains(email, "@") {
		return User{}, ErrInvalidEmail
	}
	return User{
		Name:   name,
		Type:   userType,
		Number: number,
		Email:  email,
		Active: true,
	}, nil
}
