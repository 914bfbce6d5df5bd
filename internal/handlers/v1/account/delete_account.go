package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/account-server/internal/handlers/httperr"
	"github.com/carson-networks/account-server/internal/logging"
)

type accountDeleter interface {
	DeleteAccount(ctx context.Context, id int64) error
}

// DeleteAccountHandler handles DELETE /api/accounts/{id}.
type DeleteAccountHandler struct {
	Service accountDeleter
}

func NewDeleteAccountHandler(svc accountDeleter) *DeleteAccountHandler {
	return &DeleteAccountHandler{Service: svc}
}

func (h *DeleteAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-account",
		Method:        http.MethodDelete,
		Path:          "/api/accounts/{id}",
		Summary:       "Delete account",
		Description:   "Deletes an account whose balance is zero.",
		Tags:          []string{"Accounts"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteAccountHandler) handle(ctx context.Context, input *AccountIDInput) (*struct{}, error) {
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("accountID", input.ID)
	}

	if err := h.Service.DeleteAccount(ctx, input.ID); err != nil {
		return nil, httperr.FromService(err, "delete account")
	}
	return nil, nil
}
