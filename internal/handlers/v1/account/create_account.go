package account

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/account-server/internal/handlers/httperr"
	"github.com/carson-networks/account-server/internal/logging"
	"github.com/carson-networks/account-server/internal/model"
)

// CreateAccountBody is the request body for creating an account. Missing
// fields are reported by validation rather than rejected by the schema.
type CreateAccountBody struct {
	ID      *int64   `json:"id,omitempty" doc:"Account id"`
	OwnerID *int64   `json:"ownerId,omitempty" doc:"Id of the owning user"`
	Balance *float64 `json:"balance,omitempty" doc:"Opening balance"`
}

type CreateAccountInput struct {
	Body CreateAccountBody
}

type accountCreator interface {
	CreateAccount(ctx context.Context, draft model.AccountDraft) (*model.Account, error)
}

// CreateAccountHandler handles POST /api/accounts.
type CreateAccountHandler struct {
	Service accountCreator
}

func NewCreateAccountHandler(svc accountCreator) *CreateAccountHandler {
	return &CreateAccountHandler{Service: svc}
}

func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-account",
		Method:        http.MethodPost,
		Path:          "/api/accounts",
		Summary:       "Create account",
		Description:   "Validates and creates an account for an existing user.",
		Tags:          []string{"Accounts"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*AccountOutput, error) {
	draft := toDraft(input.Body)

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("ownerID", draft.OwnerID.GetOrZero())
		defer logData.AddTiming("createAccountMs")()
	}

	account, err := h.Service.CreateAccount(ctx, draft)
	if err != nil {
		return nil, httperr.FromService(err, "create account")
	}

	return &AccountOutput{Body: toAccount(*account)}, nil
}

func toDraft(body CreateAccountBody) model.AccountDraft {
	var draft model.AccountDraft
	if body.ID != nil {
		draft.ID = omit.From(*body.ID)
	}
	if body.OwnerID != nil {
		draft.OwnerID = omit.From(*body.OwnerID)
	}
	if body.Balance != nil {
		draft.Balance = omit.From(decimal.NewFromFloat(*body.Balance))
	}
	return draft
}
