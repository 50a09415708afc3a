// Package wizard holds the booking wizard state machine. A Session carries the
// current step together with the data collected so far; every step change goes
// through Session.Apply so a step can never run without the data it needs.
package wizard

import (
	"errors"
	"fmt"
)

type State string

const (
	StateSearchEntry    State = "search_entry"
	StatePassengerEntry State = "passenger_entry"
	StateFareSelection  State = "fare_selection"
	StatePaymentEntry   State = "payment_entry"
	StateSeatSelection  State = "seat_selection"
	StateConfirmed      State = "confirmed"
)

var (
	// ErrSessionExpired data langkah sebelumnya tidak ada, user harus mulai dari pencarian
	ErrSessionExpired = errors.New("session expired, please start a new search")

	ErrPassengerCount = errors.New("passenger count does not match search")
)

// Path halaman untuk tiap langkah, dipakai sebagai redirect
func (s State) Path() string {
	switch s {
	case StatePassengerEntry:
		return "/passenger-details/"
	case StateFareSelection, StatePaymentEntry:
		return "/train-results/"
	}
	return "/"
}

// SeatSelectionPath dan PaymentPath butuh train id
func SeatSelectionPath(trainID fmt.Stringer) string {
	return fmt.Sprintf("/seat-selection/%s/", trainID)
}

func PaymentPath(trainID fmt.Stringer, seatClass string) string {
	return fmt.Sprintf("/payment/%s/?seat_class=%s", trainID, seatClass)
}

func ETicketPath(bookingID string) string {
	return fmt.Sprintf("/e-ticket/%s/", bookingID)
}
