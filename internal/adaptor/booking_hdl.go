package adaptor

import (
	"net/http"
	"strconv"

	"train-booking/internal/usecase"
	"train-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// GetETicket handles GET /e-ticket/{booking_id}/ (protected)
func (h *BookingHandler) GetETicket(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	ticket, err := h.service.GetETicket(r.Context(), userID, chi.URLParam(r, "booking_id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get e-ticket")
		return
	}

	utils.ResponseSuccess(w, "E-ticket retrieved successfully", ticket)
}

// GetETicketQR handles GET /e-ticket/{booking_id}/qr.png (protected)
func (h *BookingHandler) GetETicketQR(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	png, err := h.service.GetETicketQR(r.Context(), userID, chi.URLParam(r, "booking_id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get e-ticket QR")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.Header().Set("Cache-Control", "private, max-age=3600")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

// GetMyBookings handles GET /my-bookings/?page= (protected)
func (h *BookingHandler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	page := parseInt(r.URL.Query().Get("page"), 1)

	bookings, err := h.service.GetUserBookings(r.Context(), userID, page)
	if err != nil {
		handleServiceError(w, h.log, err, "get user bookings")
		return
	}

	utils.ResponseSuccess(w, "Bookings retrieved successfully", bookings)
}
