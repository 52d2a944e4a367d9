package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/storefront/internal/api"
	domain "github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/go-chi/chi/v5"
)

var errBadRequest = errors.New("invalid request body")

func parseUintParam(r *http.Request, name string) (uint, error) {
	value, err := strconv.ParseUint(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(value), nil
}

// service sentinel error 與 http status 的對照
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrMissingField),
		errors.Is(err, service.ErrInvalidPrice),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrEmptyDraft),
		errors.Is(err, service.ErrEmptyCustomerOrder),
		errors.Is(err, domain.ErrInvalidPaymentMethod):
		api.ErrorJSON(w, http.StatusBadRequest, err)
	case errors.Is(err, service.ErrDuplicatePhone),
		errors.Is(err, service.ErrDuplicateName),
		errors.Is(err, domain.ErrCustomerAlreadyInDraft):
		api.ErrorJSON(w, http.StatusConflict, err)
	case errors.Is(err, service.ErrCustomerNotFound),
		errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrDispatchNotFound),
		errors.Is(err, domain.ErrCustomerNotInDraft):
		api.ErrorJSON(w, http.StatusNotFound, err)
	default:
		api.ErrorJSON(w, http.StatusInternalServerError, err)
	}
}
