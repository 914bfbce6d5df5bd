package stats

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/account-server/internal/handlers/httperr"
	"github.com/carson-networks/account-server/internal/model"
	"github.com/carson-networks/account-server/internal/storage/sqlconfig"
)

type OwnerSummary struct {
	OwnerID        int64   `json:"ownerId"`
	AccountCount   int64   `json:"accountCount"`
	TotalBalance   float64 `json:"totalBalance"`
	AverageBalance float64 `json:"averageBalance"`
	MinBalance     float64 `json:"minBalance"`
	MaxBalance     float64 `json:"maxBalance"`
}

type Totals struct {
	AccountCount int64   `json:"accountCount"`
	TotalBalance float64 `json:"totalBalance"`
}

type RangeCount struct {
	Range string `json:"range" doc:"Half-open balance range"`
	Count int64  `json:"count"`
}

type Account struct {
	ID      int64   `json:"id"`
	OwnerID int64   `json:"ownerId"`
	Balance float64 `json:"balance"`
}

type OwnerInput struct {
	OwnerID int64 `path:"ownerId" doc:"Owner user id"`
}

type TopInput struct {
	Limit int `query:"limit" default:"10" minimum:"1" maximum:"100" doc:"Number of accounts to return"`
}

type OwnerSummaryOutput struct {
	Body OwnerSummary
}

type TotalsOutput struct {
	Body Totals
}

type TopOutput struct {
	Body []Account
}

type RangesOutput struct {
	Body []RangeCount
}

type statsService interface {
	OwnerSummary(ctx context.Context, ownerID int64) (*sqlconfig.OwnerSummary, error)
	Totals(ctx context.Context) (*sqlconfig.Totals, error)
	TopAccounts(ctx context.Context, limit int) ([]model.Account, error)
	RangeCounts(ctx context.Context) (*sqlconfig.RangeCounts, error)
}

// Handler serves the balance aggregate endpoints.
type Handler struct {
	Service statsService
}

func NewHandler(svc statsService) *Handler {
	return &Handler{Service: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "owner-summary",
		Method:      http.MethodGet,
		Path:        "/api/accounts/owner/{ownerId}/summary",
		Summary:     "Summarize an owner's balances",
		Tags:        []string{"Stats"},
	}, h.handleOwnerSummary)

	huma.Register(api, huma.Operation{
		OperationID: "total-balance",
		Method:      http.MethodGet,
		Path:        "/api/stats/total",
		Summary:     "Total balance across all accounts",
		Tags:        []string{"Stats"},
	}, h.handleTotal)

	huma.Register(api, huma.Operation{
		OperationID: "top-accounts",
		Method:      http.MethodGet,
		Path:        "/api/stats/top",
		Summary:     "Accounts with the highest balance",
		Tags:        []string{"Stats"},
	}, h.handleTop)

	huma.Register(api, huma.Operation{
		OperationID: "balance-ranges",
		Method:      http.MethodGet,
		Path:        "/api/stats/ranges",
		Summary:     "Account count per balance range",
		Tags:        []string{"Stats"},
	}, h.handleRanges)
}

func (h *Handler) handleOwnerSummary(ctx context.Context, input *OwnerInput) (*OwnerSummaryOutput, error) {
	summary, err := h.Service.OwnerSummary(ctx, input.OwnerID)
	if err != nil {
		return nil, httperr.FromService(err, "summarize owner")
	}

	return &OwnerSummaryOutput{Body: OwnerSummary{
		OwnerID:        input.OwnerID,
		AccountCount:   summary.AccountCount,
		TotalBalance:   summary.TotalBalance.InexactFloat64(),
		AverageBalance: summary.AverageBalance.Round(2).InexactFloat64(),
		MinBalance:     summary.MinBalance.InexactFloat64(),
		MaxBalance:     summary.MaxBalance.InexactFloat64(),
	}}, nil
}

func (h *Handler) handleTotal(ctx context.Context, _ *struct{}) (*TotalsOutput, error) {
	totals, err := h.Service.Totals(ctx)
	if err != nil {
		return nil, httperr.FromService(err, "compute totals")
	}
	return &TotalsOutput{Body: Totals{
		AccountCount: totals.AccountCount,
		TotalBalance: totals.TotalBalance.InexactFloat64(),
	}}, nil
}

func (h *Handler) handleTop(ctx context.Context, input *TopInput) (*TopOutput, error) {
	accounts, err := h.Service.TopAccounts(ctx, input.Limit)
	if err != nil {
		return nil, httperr.FromService(err, "list top accounts")
	}

	out := make([]Account, len(accounts))
	for i, a := range accounts {
		out[i] = Account{ID: a.ID, OwnerID: a.OwnerID, Balance: a.Balance.InexactFloat64()}
	}
	return &TopOutput{Body: out}, nil
}

func (h *Handler) handleRanges(ctx context.Context, _ *struct{}) (*RangesOutput, error) {
	counts, err := h.Service.RangeCounts(ctx)
	if err != nil {
		return nil, httperr.FromService(err, "count balance ranges")
	}
	return &RangesOutput{Body: []RangeCount{
		{Range: "[0,1000)", Count: counts.Low},
		{Range: "[1000,5000)", Count: counts.Mid},
		{Range: "[5000,)", Count: counts.High},
	}}, nil
}
