package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/account-server/internal/model"
)

type HistoryInput struct {
	ID    int64 `path:"id" doc:"Account id"`
	Limit int   `query:"limit" minimum:"0" maximum:"100" doc:"Return at most this many, most recent first. Omit for the full history in insertion order."`
}

type HistoryOutput struct {
	Body []Transaction
}

type historyReader interface {
	History(id int64, limit int) []model.Transaction
}

// HistoryHandler handles GET /api/accounts/{id}/transactions.
type HistoryHandler struct {
	Service historyReader
}

func NewHistoryHandler(svc historyReader) *HistoryHandler {
	return &HistoryHandler{Service: svc}
}

func (h *HistoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-account-transactions",
		Method:      http.MethodGet,
		Path:        "/api/accounts/{id}/transactions",
		Summary:     "Recent transactions",
		Description: "Returns the in-memory history of recent movements on the account.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *HistoryHandler) handle(_ context.Context, input *HistoryInput) (*HistoryOutput, error) {
	transactions := h.Service.History(input.ID, input.Limit)

	out := make([]Transaction, len(transactions))
	for i, tx := range transactions {
		out[i] = toTransaction(tx)
	}
	return &HistoryOutput{Body: out}, nil
}
