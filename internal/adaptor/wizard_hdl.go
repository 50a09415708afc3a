package adaptor

import (
	"errors"
	"net/http"

	"train-booking/internal/dto/request"
	"train-booking/internal/dto/response"
	"train-booking/internal/usecase"
	"train-booking/internal/wizard"
	"train-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type WizardHandler struct {
	service usecase.WizardService
	log     *zap.Logger
}

func NewWizardHandler(service usecase.WizardService, log *zap.Logger) *WizardHandler {
	return &WizardHandler{
		service: service,
		log:     log.With(zap.String("handler", "wizard")),
	}
}

// ==================== SEARCH ====================

// GetSearch handles GET /
func (h *WizardHandler) GetSearch(w http.ResponseWriter, r *http.Request) {
	key, ok := h.wizardKey(w, r)
	if !ok {
		return
	}

	page, err := h.service.GetSearch(r.Context(), key)
	if err != nil {
		handleServiceError(w, h.log, err, "get search")
		return
	}

	utils.ResponseSuccess(w, "Search trains", page)
}

// SubmitSearch handles POST /
func (h *WizardHandler) SubmitSearch(w http.ResponseWriter, r *http.Request) {
	key, ok := h.wizardKey(w, r)
	if !ok {
		return
	}

	var req request.SearchRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	step, err := h.service.SubmitSearch(r.Context(), key, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "submit search")
		return
	}

	utils.ResponseSuccess(w, "Search saved", step)
}

// ==================== PASSENGERS ====================

// GetPassengers handles GET /passenger-details/
func (h *WizardHandler) GetPassengers(w http.ResponseWriter, r *http.Request) {
	key, ok := h.wizardKey(w, r)
	if !ok {
		return
	}

	page, err := h.service.GetPassengerForms(r.Context(), key)
	if err != nil {
		handleServiceError(w, h.log, err, "get passenger forms")
		return
	}

	utils.ResponseSuccess(w, "Passenger details", page)
}

// SubmitPassengers handles POST /passenger-details/
func (h *WizardHandler) SubmitPassengers(w http.ResponseWriter, r *http.Request) {
	key, ok := h.wizardKey(w, r)
	if !ok {
		return
	}

	var req request.PassengersRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	step, err := h.service.SubmitPassengers(r.Context(), key, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "submit passengers")
		return
	}

	utils.ResponseSuccess(w, "Passenger details saved", step)
}

// ==================== RESULTS ====================

// GetTrainResults handles GET/POST /train-results/
func (h *WizardHandler) GetTrainResults(w http.ResponseWriter, r *http.Request) {
	key, ok := h.wizardKey(w, r)
	if !ok {
		return
	}

	results, err := h.service.GetTrainResults(r.Context(), key)
	if err != nil {
		handleServiceError(w, h.log, err, "get train results")
		return
	}

	message := "Available trains"
	if len(results.Trains) == 0 {
		message = "No trains found for this route"
	}
	utils.ResponseSuccess(w, message, results)
}

// ==================== PAYMENT ====================

// GetPayment handles GET /payment/{train_id}/?seat_class= (protected)
func (h *WizardHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	key, ok := h.wizardKey(w, r)
	if !ok {
		return
	}

	page, err := h.service.GetPayment(r.Context(), key, chi.URLParam(r, "train_id"), r.URL.Query().Get("seat_class"))
	if err != nil {
		handleServiceError(w, h.log, err, "get payment")
		return
	}

	utils.ResponseSuccess(w, "Payment details", page)
}

// SubmitPayment handles POST /payment/{train_id}/?seat_class= (protected)
func (h *WizardHandler) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	key, ok := h.wizardKey(w, r)
	if !ok {
		return
	}

	var req request.PaymentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	step, err := h.service.SubmitPayment(r.Context(), key, chi.URLParam(r, "train_id"), r.URL.Query().Get("seat_class"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "submit payment")
		return
	}

	utils.ResponseSuccess(w, "Payment method saved", step)
}

// ==================== SEAT SELECTION ====================

// GetSeatMap handles GET /seat-selection/{train_id}/ (protected)
func (h *WizardHandler) GetSeatMap(w http.ResponseWriter, r *http.Request) {
	key, ok := h.wizardKey(w, r)
	if !ok {
		return
	}

	seatMap, err := h.service.GetSeatMap(r.Context(), key, chi.URLParam(r, "train_id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get seat map")
		return
	}

	utils.ResponseSuccess(w, "Seat map", seatMap)
}

// SubmitSeats handles POST /seat-selection/{train_id}/ (protected)
func (h *WizardHandler) SubmitSeats(w http.ResponseWriter, r *http.Request) {
	key, ok := h.wizardKey(w, r)
	if !ok {
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.SeatSelectionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	trainID := chi.URLParam(r, "train_id")
	step, err := h.service.SubmitSeats(r.Context(), key, userID, trainID, &req)
	if err != nil {
		// tetap di halaman kursi, wizard tidak berubah
		if errors.Is(err, usecase.ErrBookingFailed) {
			h.log.Error("Booking commit failed", zap.Error(err), zap.String("user_id", userID.String()))
			utils.ResponseErrorWithData(w, http.StatusInternalServerError, "Booking failed. Please try again.", response.StepResponse{
				State:    wizard.StateSeatSelection,
				Redirect: "/seat-selection/" + trainID + "/",
			})
			return
		}
		handleServiceError(w, h.log, err, "submit seats")
		return
	}

	utils.ResponseCreated(w, "Booking confirmed", step)
}

func (h *WizardHandler) wizardKey(w http.ResponseWriter, r *http.Request) (string, bool) {
	key, ok := utils.GetWizardKeyFromContext(r.Context())
	if !ok {
		utils.ResponseBadRequest(w, "Missing wizard session", nil)
		return "", false
	}
	return key, true
}
