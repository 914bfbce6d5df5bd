package validation

import (
	"testing"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/account-server/internal/model"
)

func draft(id, ownerID int64, balance string) model.AccountDraft {
	return model.AccountDraft{
		ID:      omit.From(id),
		OwnerID: omit.From(ownerID),
		Balance: omit.From(decimal.RequireFromString(balance)),
	}
}

func TestPipeline_ValidAccount(t *testing.T) {
	p := NewDefaultPipeline()
	acc := draft(1, 10, "50")

	assert.True(t, p.Validate(acc))
	assert.Empty(t, p.ValidateWithErrors(acc))
}

func TestPipeline_ZeroBalanceIsValid(t *testing.T) {
	p := NewDefaultPipeline()
	assert.True(t, p.Validate(draft(1, 10, "0")))
}

func TestPipeline_NegativeBalance(t *testing.T) {
	p := NewDefaultPipeline()
	acc := draft(1, 10, "-0.01")

	assert.False(t, p.Validate(acc))
	assert.Equal(t, []string{"balance cannot be less than 0"}, p.ValidateWithErrors(acc))
}

func TestPipeline_BadOwner(t *testing.T) {
	p := NewDefaultPipeline()
	acc := draft(1, 0, "50")

	assert.False(t, p.Validate(acc))
	assert.Contains(t, p.ValidateWithErrors(acc), "account must have a valid owner id")
}

func TestPipeline_MissingFields(t *testing.T) {
	p := NewDefaultPipeline()
	acc := model.AccountDraft{OwnerID: omit.From(int64(10))}

	assert.Equal(t, []string{"account must be active with complete data"}, p.ValidateWithErrors(acc))
}

func TestPipeline_ReportsEveryFailureInOrder(t *testing.T) {
	p := NewDefaultPipeline()
	acc := model.AccountDraft{
		OwnerID: omit.From(int64(-3)),
		Balance: omit.From(decimal.NewFromInt(-5)),
	}

	assert.Equal(t, []string{
		"balance cannot be less than 0",
		"account must be active with complete data",
		"account must have a valid owner id",
	}, p.ValidateWithErrors(acc))
}

func TestPipeline_ValidateAgreesWithErrors(t *testing.T) {
	p := NewDefaultPipeline()
	cases := []model.AccountDraft{
		draft(1, 10, "50"),
		draft(1, 10, "-1"),
		draft(1, -1, "1"),
		{},
		{ID: omit.From(int64(2)), Balance: omit.From(decimal.Zero)},
	}
	for _, acc := range cases {
		assert.Equal(t, p.Validate(acc), len(p.ValidateWithErrors(acc)) == 0)
	}
}

type rejectAll struct{}

func (rejectAll) Validate(model.AccountDraft) bool { return false }
func (rejectAll) ErrorMessage() string { return "rejected" }

func TestPipeline_CustomStrategy(t *testing.T) {
	p := NewPipeline(rejectAll{}, OwnerExists{})

	assert.Equal(t, []string{"rejected"}, p.ValidateWithErrors(draft(1, 1, "1")))
}
