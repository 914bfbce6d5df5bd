package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/account-server/internal/handlers/httperr"
	"github.com/carson-networks/account-server/internal/logging"
	"github.com/carson-networks/account-server/internal/model"
)

type accountGetter interface {
	GetAccount(ctx context.Context, id int64) (*model.Account, error)
	GetAccountCached(ctx context.Context, id int64) (*model.Account, error)
}

// GetAccountHandler handles GET /api/accounts/{id} and its cached variant.
type GetAccountHandler struct {
	Service accountGetter
}

func NewGetAccountHandler(svc accountGetter) *GetAccountHandler {
	return &GetAccountHandler{Service: svc}
}

func (h *GetAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-account",
		Method:      http.MethodGet,
		Path:        "/api/accounts/{id}",
		Summary:     "Get account",
		Tags:        []string{"Accounts"},
	}, h.handleGet)

	huma.Register(api, huma.Operation{
		OperationID: "get-account-cached",
		Method:      http.MethodGet,
		Path:        "/api/accounts/{id}/cached",
		Summary:     "Get account through the cache",
		Tags:        []string{"Accounts"},
	}, h.handleGetCached)
}

func (h *GetAccountHandler) handleGet(ctx context.Context, input *AccountIDInput) (*AccountOutput, error) {
	return h.get(ctx, input.ID, h.Service.GetAccount)
}

func (h *GetAccountHandler) handleGetCached(ctx context.Context, input *AccountIDInput) (*AccountOutput, error) {
	return h.get(ctx, input.ID, h.Service.GetAccountCached)
}

func (h *GetAccountHandler) get(
	ctx context.Context,
	id int64,
	fetch func(context.Context, int64) (*model.Account, error),
) (*AccountOutput, error) {
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("accountID", id)
		defer logData.AddTiming("getAccountMs")()
	}

	account, err := fetch(ctx, id)
	if err != nil {
		return nil, httperr.FromService(err, "get account")
	}
	return &AccountOutput{Body: toAccount(*account)}, nil
}
