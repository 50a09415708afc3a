package adaptor

import (
	"net/http"

	"train-booking/internal/dto/request"
	"train-booking/internal/usecase"
	"train-booking/pkg/utils"

	"go.uber.org/zap"
)

type LookupHandler struct {
	service usecase.LookupService
	log     *zap.Logger
}

func NewLookupHandler(service usecase.LookupService, log *zap.Logger) *LookupHandler {
	return &LookupHandler{
		service: service,
		log:     log.With(zap.String("handler", "lookup")),
	}
}

// ==================== PNR STATUS ====================

// GetPNRStatus handles GET /pnr-status/?pnr=
func (h *LookupHandler) GetPNRStatus(w http.ResponseWriter, r *http.Request) {
	pnr := r.URL.Query().Get("pnr")
	if pnr == "" {
		utils.ResponseSuccess(w, "Enter a 10-character PNR", nil)
		return
	}
	h.pnrStatus(w, r, pnr)
}

// PostPNRStatus handles POST /pnr-status/
func (h *LookupHandler) PostPNRStatus(w http.ResponseWriter, r *http.Request) {
	var req request.PNRRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	h.pnrStatus(w, r, req.PNR)
}

func (h *LookupHandler) pnrStatus(w http.ResponseWriter, r *http.Request, pnr string) {
	booking, err := h.service.PNRStatus(r.Context(), pnr)
	if err != nil {
		handleServiceError(w, h.log, err, "check PNR status")
		return
	}

	utils.ResponseSuccess(w, "PNR status retrieved successfully", booking)
}

// ==================== TRAIN STATUS ====================

// GetTrainStatus handles GET /train-status/?query=
func (h *LookupHandler) GetTrainStatus(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		utils.ResponseSuccess(w, "Enter a train number or PNR", nil)
		return
	}
	h.trainStatus(w, r, query)
}

// PostTrainStatus handles POST /train-status/
func (h *LookupHandler) PostTrainStatus(w http.ResponseWriter, r *http.Request) {
	var req request.TrainStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	h.trainStatus(w, r, req.Query)
}

func (h *LookupHandler) trainStatus(w http.ResponseWriter, r *http.Request, query string) {
	status, err := h.service.TrainStatus(r.Context(), query)
	if err != nil {
		handleServiceError(w, h.log, err, "check train status")
		return
	}

	utils.ResponseSuccess(w, "Train status retrieved successfully", status)
}

// ==================== CANCELLATION ====================

// GetCancellation handles GET /cancellation/?pnr= (protected)
func (h *LookupHandler) GetCancellation(w http.ResponseWriter, r *http.Request) {
	pnr := r.URL.Query().Get("pnr")
	if pnr == "" {
		utils.ResponseSuccess(w, "Enter the PNR of the booking to cancel", nil)
		return
	}
	h.findCancellable(w, r, pnr)
}

// PostCancellation handles POST /cancellation/ (protected)
// action=check_pnr mencari booking, action=cancel_booking membatalkan.
func (h *LookupHandler) PostCancellation(w http.ResponseWriter, r *http.Request) {
	var req request.CancellationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	switch req.Action {
	case request.ActionCheckPNR:
		h.findCancellable(w, r, req.PNR)
	case request.ActionCancelBooking:
		h.cancelBooking(w, r, req.BookingID)
	}
}

func (h *LookupHandler) findCancellable(w http.ResponseWriter, r *http.Request, pnr string) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	booking, err := h.service.FindCancellable(r.Context(), userID, pnr)
	if err != nil {
		handleServiceError(w, h.log, err, "find booking for cancellation")
		return
	}

	utils.ResponseSuccess(w, "Booking found", booking)
}

func (h *LookupHandler) cancelBooking(w http.ResponseWriter, r *http.Request, bookingID string) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	result, err := h.service.CancelBooking(r.Context(), userID, bookingID)
	if err != nil {
		handleServiceError(w, h.log, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, result.Message, result)
}
