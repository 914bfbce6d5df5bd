package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/account-server/internal/handlers/httperr"
	"github.com/carson-networks/account-server/internal/logging"
	"github.com/carson-networks/account-server/internal/model"
)

type UpdateBalanceInput struct {
	ID         int64  `path:"id" doc:"Account id"`
	NewBalance string `query:"newBalance" required:"true" doc:"Decimal balance to set"`
}

type balanceUpdater interface {
	UpdateBalance(ctx context.Context, id int64, newBalance decimal.Decimal) (*model.Account, error)
}

// UpdateBalanceHandler handles PUT /api/accounts/{id}/balance.
type UpdateBalanceHandler struct {
	Service balanceUpdater
}

func NewUpdateBalanceHandler(svc balanceUpdater) *UpdateBalanceHandler {
	return &UpdateBalanceHandler{Service: svc}
}

func (h *UpdateBalanceHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-balance",
		Method:      http.MethodPut,
		Path:        "/api/accounts/{id}/balance",
		Summary:     "Update balance",
		Description: "Sets the balance of an account. Negative balances are rejected.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *UpdateBalanceHandler) handle(ctx context.Context, input *UpdateBalanceInput) (*AccountOutput, error) {
	newBalance, err := decimal.NewFromString(input.NewBalance)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid newBalance", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("accountID", input.ID)
		defer logData.AddTiming("updateBalanceMs")()
	}

	account, err := h.Service.UpdateBalance(ctx, input.ID, newBalance)
	if err != nil {
		return nil, httperr.FromService(err, "update balance")
	}
	return &AccountOutput{Body: toAccount(*account)}, nil
}
