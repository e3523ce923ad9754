package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"field-ministry/campo/internal/auth"
	"field-ministry/campo/internal/common"
	"field-ministry/campo/internal/constants"
	"field-ministry/campo/internal/errs"
	"field-ministry/campo/internal/logging"
)

// decodeBody reads a JSON body into dst and validates it. On failure it writes
// the 400 response and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		common.RespondError(w, http.StatusBadRequest, constants.MsgInvalidData)
		return false
	}
	if fieldErrors := common.ValidateStruct(dst); len(fieldErrors) > 0 {
		common.RespondError(w, http.StatusBadRequest, constants.MsgInvalidData, fieldErrors...)
		return false
	}
	return true
}

// respondServiceError maps a service error onto its HTTP status. operation
// completes the generic 500 message, e.g. "create territory".
func respondServiceError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		common.RespondError(w, http.StatusNotFound, constants.MsgNotFound)
	case errors.Is(err, errs.ErrAlreadyExists):
		common.RespondError(w, http.StatusConflict, constants.MsgAlreadyExists)
	case errors.Is(err, errs.ErrInvalidReference):
		common.RespondError(w, http.StatusBadRequest, constants.MsgInvalidReference)
	case errors.Is(err, errs.ErrForbidden):
		common.RespondError(w, http.StatusForbidden, constants.MsgForbidden)
	case errors.Is(err, errs.ErrUnauthorized):
		common.RespondError(w, http.StatusUnauthorized, constants.MsgUnauthorized)
	default:
		requestLogger(r).Errorw("Failed to "+operation, "error", err)
		common.RespondError(w, http.StatusInternalServerError, "Failed to "+operation)
		return
	}
	requestLogger(r).Debugw("Request rejected", "operation", operation, "error", err)
}

func requestLogger(r *http.Request) *zap.SugaredLogger {
	return logging.WithRequest(auth.GetRequestID(r.Context()), auth.CallerID(r.Context()), r.Method+" "+r.URL.Path)
}
