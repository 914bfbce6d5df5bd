package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/account-server/internal/handlers/httperr"
	"github.com/carson-networks/account-server/internal/logging"
	"github.com/carson-networks/account-server/internal/model"
)

type ListByOwnerInput struct {
	OwnerID int64 `path:"ownerId" doc:"Owner user id"`
}

type accountLister interface {
	ListAccounts(ctx context.Context) ([]model.Account, error)
	ListAccountsByOwner(ctx context.Context, ownerID int64) ([]model.Account, error)
}

// ListAccountsHandler handles GET /api/accounts and GET /api/accounts/owner/{ownerId}.
type ListAccountsHandler struct {
	Service accountLister
}

func NewListAccountsHandler(svc accountLister) *ListAccountsHandler {
	return &ListAccountsHandler{Service: svc}
}

func (h *ListAccountsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-accounts",
		Method:      http.MethodGet,
		Path:        "/api/accounts",
		Summary:     "List accounts",
		Tags:        []string{"Accounts"},
	}, h.handleList)

	huma.Register(api, huma.Operation{
		OperationID: "list-accounts-by-owner",
		Method:      http.MethodGet,
		Path:        "/api/accounts/owner/{ownerId}",
		Summary:     "List an owner's accounts",
		Tags:        []string{"Accounts"},
	}, h.handleListByOwner)
}

func (h *ListAccountsHandler) handleList(ctx context.Context, _ *struct{}) (*AccountListOutput, error) {
	accounts, err := h.Service.ListAccounts(ctx)
	if err != nil {
		return nil, httperr.FromService(err, "list accounts")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("accountCount", len(accounts))
	}
	return &AccountListOutput{Body: toAccounts(accounts)}, nil
}

func (h *ListAccountsHandler) handleListByOwner(ctx context.Context, input *ListByOwnerInput) (*AccountListOutput, error) {
	accounts, err := h.Service.ListAccountsByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, httperr.FromService(err, "list accounts")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("ownerID", input.OwnerID)
		logData.AddData("accountCount", len(accounts))
	}
	return &AccountListOutput{Body: toAccounts(accounts)}, nil
}
