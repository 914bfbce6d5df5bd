package httperr

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/account-server/internal/service"
)

// FromService maps a service error to its HTTP status. Anything that is not
// one of the service error kinds is reported as a 500 with a generic message
// naming the failed action.
func FromService(err error, action string) error {
	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		return huma.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		return huma.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrPreconditionFailed):
		return huma.NewError(http.StatusConflict, err.Error())
	default:
		return huma.NewError(http.StatusInternalServerError, "failed to "+action, err)
	}
}
