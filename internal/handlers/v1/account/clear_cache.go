package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

type cacheClearer interface {
	ClearCache()
}

// ClearCacheHandler handles POST /api/accounts/cache/clear.
type ClearCacheHandler struct {
	Service cacheClearer
}

func NewClearCacheHandler(svc cacheClearer) *ClearCacheHandler {
	return &ClearCacheHandler{Service: svc}
}

func (h *ClearCacheHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "clear-account-cache",
		Method:        http.MethodPost,
		Path:          "/api/accounts/cache/clear",
		Summary:       "Clear the account cache",
		Tags:          []string{"Accounts"},
		DefaultStatus: http.StatusOK,
	}, h.handle)
}

func (h *ClearCacheHandler) handle(_ context.Context, _ *struct{}) (*struct{}, error) {
	h.Service.ClearCache()
	return nil, nil
}
