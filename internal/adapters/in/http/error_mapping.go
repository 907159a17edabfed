package http

import (
	"errors"
	"net/http"

	"production/internal/core/application/usecases/commands"
	"production/internal/core/domain/model/order"
	"production/internal/core/domain/model/stage"
	"production/internal/core/domain/services"
	"production/internal/core/ports"
	"production/internal/pkg/errs"
)

// statusFor maps application and domain errors onto HTTP status codes.
// Validation failures are client errors, missing aggregates are 404, state
// conflicts (busy slot, wrong lifecycle phase, stale write) are 409, and a
// rejected measurement set is 422.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound

	case errors.Is(err, services.ErrInvalidParameters):
		return http.StatusUnprocessableEntity

	case errors.Is(err, commands.ErrStageBusy),
		errors.Is(err, stage.ErrSlotOccupied),
		errors.Is(err, stage.ErrNotSlotOwner),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrNotVerified),
		errors.Is(err, order.ErrNotPendingBilling),
		errors.Is(err, order.ErrOrderBilled),
		errors.Is(err, order.ErrOrderForwarded),
		errors.Is(err, commands.ErrNoNextStage),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict

	case errors.Is(err, ports.ErrScanFailed):
		return http.StatusBadGateway

	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, order.ErrParameterSetIsEmpty):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}
