package audit

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/account-server/internal/events"
	"github.com/carson-networks/account-server/internal/model"
)

func TestAudit(t *testing.T) {
	listener := events.NewAuditListener()
	require.NoError(t, listener.Handle(events.AccountCreated{Account: model.Account{ID: 1, OwnerID: 10, Balance: decimal.NewFromInt(5)}}))
	require.NoError(t, listener.Handle(events.AccountDeleted{AccountID: 1}))

	_, api := humatest.New(t)
	NewHandler(listener).Register(api)

	resp := api.Get("/api/audit")

	require.Equal(t, http.StatusOK, resp.Code)
	var body []Entry
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, "ACCOUNT_CREATED", body[0].Kind)
	assert.Equal(t, "1", body[0].Attributes["accountId"])
	assert.Contains(t, body[1].Line, "ACCOUNT_DELETED")
}
