package wire

import (
	"net/http"

	"train-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler, auth func(http.Handler) http.Handler) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(auth)

		r.Get("/e-ticket/{booking_id}/", bookingHandler.GetETicket)
		r.Get("/e-ticket/{booking_id}/qr.png", bookingHandler.GetETicketQR)
		r.Get("/my-bookings/", bookingHandler.GetMyBookings)
	})
}
