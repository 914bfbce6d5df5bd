package audit

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/account-server/internal/events"
)

type Entry struct {
	Timestamp  time.Time         `json:"timestamp"`
	Kind       string            `json:"kind" enum:"ACCOUNT_CREATED,BALANCE_CHANGED,ACCOUNT_DELETED"`
	Attributes map[string]string `json:"attributes"`
	Line       string            `json:"line" doc:"Formatted audit line"`
}

type AuditOutput struct {
	Body []Entry
}

type auditLog interface {
	Snapshot() []events.AuditEntry
}

// Handler handles GET /api/audit.
type Handler struct {
	Log auditLog
}

func NewHandler(log auditLog) *Handler {
	return &Handler{Log: log}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-audit-entries",
		Method:      http.MethodGet,
		Path:        "/api/audit",
		Summary:     "Audit log",
		Description: "Returns the in-memory audit log, oldest first.",
		Tags:        []string{"Audit"},
	}, h.handle)
}

func (h *Handler) handle(_ context.Context, _ *struct{}) (*AuditOutput, error) {
	entries := h.Log.Snapshot()

	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = Entry{
			Timestamp:  e.Timestamp,
			Kind:       string(e.Kind),
			Attributes: e.Attributes,
			Line:       e.String(),
		}
	}
	return &AuditOutput{Body: out}, nil
}
