package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUser_Valid(t *testing.T) {
	user, err := NewUser("Ana", "ana@bank.test", "PREMIUM", "1020")

	assert.NoError(t, err)
	assert.Equal(t, "Ana", user.Name)
	assert.Equal(t, "PREMIUM", user.Type)
	assert.Equal(t, "1020", user.Number)
	assert.True(t, user.Active)
	assert.Zero(t, user.ID)
}

func TestNewUser_EmptyName(t *testing.T) {
	_, err := NewUser("   ", "ana@bank.test", "BASIC", "1")
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestNewUser_InvalidEmail(t *testing.T) {
	_, err := NewUser("Ana", "ana.bank.test", "BASIC", "1")
	assert.ErrorIs(t, err, ErrInvalidEmail)
}
