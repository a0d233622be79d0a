package adaptor

import (
	"errors"
	"net/http"

	"github.com/imeshipunsara/OceanViewReservationManagementSystem/pkg/apperr"
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/pkg/utils"

	"go.uber.org/zap"
)

// writeServiceError maps the domain error taxonomy onto HTTP status codes.
// Anything not in the taxonomy is a 500 with a generic message; the real
// cause stays in the log.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, op string, err error) {
	var validationErr *apperr.ValidationError
	if errors.As(err, &validationErr) {
		utils.ResponseBadRequest(w, validationErr.Msg, nil)
		return
	}

	var conflictErr *apperr.ConflictError
	if errors.As(err, &conflictErr) {
		utils.ResponseConflict(w, conflictErr.Error())
		return
	}

	var invalidStateErr *apperr.InvalidStateError
	if errors.As(err, &invalidStateErr) {
		utils.ResponseConflict(w, invalidStateErr.Error())
		return
	}

	var notFoundErr *apperr.NotFoundError
	if errors.As(err, &notFoundErr) {
		utils.ResponseNotFound(w, notFoundErr.Error())
		return
	}

	var duplicateErr *apperr.DuplicateError
	if errors.As(err, &duplicateErr) {
		utils.ResponseConflict(w, duplicateErr.Error())
		return
	}

	var unavailableErr *apperr.StoreUnavailableError
	if errors.As(err, &unavailableErr) {
		log.Error("Store unavailable", zap.String("operation", op), zap.Error(err))
		utils.ResponseServiceUnavailable(w, "service temporarily unavailable, please retry")
		return
	}

	log.Error("Unhandled service error", zap.String("operation", op), zap.Error(err))
	utils.ResponseInternalError(w, "internal server error")
}
