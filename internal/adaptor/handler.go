package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"train-booking/internal/dto/response"
	"train-booking/internal/usecase"
	"train-booking/internal/wizard"
	"train-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	User    *UserHandler
	Wizard  *WizardHandler
	Booking *BookingHandler
	Lookup  *LookupHandler
	Admin   *AdminHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		User:    NewUserHandler(service.User, log),
		Wizard:  NewWizardHandler(service.Wizard, log),
		Booking: NewBookingHandler(service.Booking, log),
		Lookup:  NewLookupHandler(service.Lookup, log),
		Admin:   NewAdminHandler(service.Catalog, log),
	}
}

// decodeJSON tulis 400 sendiri kalau body tidak valid
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}
	return true
}

// handleServiceError memetakan error service ke status HTTP
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var validationErr *usecase.ValidationError

	switch {
	case errors.As(err, &validationErr):
		log.Warn(operation+" validation failed", zap.String("errors", utils.FormatValidationErrors(validationErr.Fields)))
		utils.ResponseBadRequest(w, validationErr.Message, validationErr.Fields)

	case errors.Is(err, usecase.ErrSessionExpired):
		log.Warn(operation + " failed - wizard session expired")
		utils.ResponseConflict(w, err.Error(), response.StepResponse{
			State:    wizard.StateSearchEntry,
			Redirect: wizard.StateSearchEntry.Path(),
		})

	case errors.Is(err, usecase.ErrBookingFailed):
		log.Error(operation+" failed - booking not committed", zap.Error(err))
		utils.ResponseInternalError(w, "Booking failed. Please try again.")

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, notFoundMessage(err))

	case errors.Is(err, usecase.ErrAlreadyCancelled):
		log.Warn(operation + " failed - already cancelled")
		utils.ResponseConflict(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrConflict):
		log.Warn(operation+" failed - already exists", zap.Error(err))
		utils.ResponseConflict(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrInvalidCredentials),
		errors.Is(err, usecase.ErrInvalidToken):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, usecase.ErrInactiveAccount):
		log.Warn(operation + " failed - account deactivated")
		utils.ResponseForbidden(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

func notFoundMessage(err error) string {
	var nf *usecase.NotFoundError
	if errors.As(err, &nf) {
		return nf.Error()
	}
	return "Not found"
}

// parseInt helper untuk parse query parameters
func parseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil || result < 1 {
		return defaultValue
	}

	return result
}
