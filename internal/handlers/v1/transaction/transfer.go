package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/account-server/internal/logging"
	"github.com/carson-networks/account-server/internal/model"
)

// TransferBody is the request body for a transfer.
type TransferBody struct {
	FromAccountID int64   `json:"fromAccountId" doc:"Account to debit"`
	ToAccountID   int64   `json:"toAccountId" doc:"Account to credit"`
	Amount        float64 `json:"amount" doc:"Amount to move"`
}

type TransferInput struct {
	Body TransferBody
}

// TransferResultBody reports the outcome of a transfer. Rule violations are
// reported here with success=false, not as HTTP errors.
type TransferResultBody struct {
	TransferID    string    `json:"transferId,omitempty" doc:"Set only when the transfer succeeded"`
	FromAccountID int64     `json:"fromAccountId"`
	ToAccountID   int64     `json:"toAccountId"`
	Amount        float64   `json:"amount"`
	Success       bool      `json:"success"`
	Message       string    `json:"message"`
	Timestamp     time.Time `json:"timestamp"`
}

type TransferOutput struct {
	Body TransferResultBody
}

type transferer interface {
	Transfer(ctx context.Context, fromID, toID int64, amount decimal.Decimal) model.TransferResult
}

// TransferHandler handles POST /api/accounts/transfer.
type TransferHandler struct {
	Service transferer
}

func NewTransferHandler(svc transferer) *TransferHandler {
	return &TransferHandler{Service: svc}
}

func (h *TransferHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "transfer",
		Method:      http.MethodPost,
		Path:        "/api/accounts/transfer",
		Summary:     "Transfer funds",
		Description: "Moves funds between two accounts.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *TransferHandler) handle(ctx context.Context, input *TransferInput) (*TransferOutput, error) {
	logData := logging.GetLogData(ctx)
	if logData != nil {
		defer logData.AddTiming("transferMs")()
	}

	result := h.Service.Transfer(ctx, input.Body.FromAccountID, input.Body.ToAccountID,
		decimal.NewFromFloat(input.Body.Amount))

	if logData != nil {
		logData.AddData("transferSuccess", result.Success)
		logData.AddData("transferMessage", result.Message)
	}

	return &TransferOutput{Body: TransferResultBody{
		TransferID:    result.TransferID,
		FromAccountID: result.FromAccountID,
		ToAccountID:   result.ToAccountID,
		Amount:        result.Amount.InexactFloat64(),
		Success:       result.Success,
		Message:       result.Message,
		Timestamp:     result.Timestamp,
	}}, nil
}
