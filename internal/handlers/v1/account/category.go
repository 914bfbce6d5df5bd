package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/account-server/internal/category"
	"github.com/carson-networks/account-server/internal/handlers/httperr"
	"github.com/carson-networks/account-server/internal/model"
)

type CategoryBody struct {
	AccountID int64   `json:"accountId" doc:"Account id"`
	Balance   float64 `json:"balance" doc:"Balance the category was chosen for"`
	Category  string  `json:"category" doc:"Most specific matching category"`
}

type CategoryOutput struct {
	Body CategoryBody
}

type accountCategorizer interface {
	Category(ctx context.Context, id int64) (*model.Account, *category.Node, error)
}

// CategoryHandler handles GET /api/accounts/{id}/category.
type CategoryHandler struct {
	Service accountCategorizer
}

func NewCategoryHandler(svc accountCategorizer) *CategoryHandler {
	return &CategoryHandler{Service: svc}
}

func (h *CategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-account-category",
		Method:      http.MethodGet,
		Path:        "/api/accounts/{id}/category",
		Summary:     "Categorize account",
		Description: "Returns the most specific balance category of the account.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *CategoryHandler) handle(ctx context.Context, input *AccountIDInput) (*CategoryOutput, error) {
	account, node, err := h.Service.Category(ctx, input.ID)
	if err != nil {
		return nil, httperr.FromService(err, "categorize account")
	}

	return &CategoryOutput{Body: CategoryBody{
		AccountID: account.ID,
		Balance:   account.Balance.InexactFloat64(),
		Category:  node.Name(),
	}}, nil
}
