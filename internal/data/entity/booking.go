package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type BookingType string

const (
	BookingTypeRegular BookingType = "regular"
	BookingTypeTatkal  BookingType = "tatkal"
)

type Booking struct {
	BaseNoDelete
	BookingID   string        `db:"booking_id"` // TKT + 8 hex
	PNR         string        `db:"pnr"`
	UserID      uuid.UUID     `db:"user_id"`
	TrainID     uuid.UUID     `db:"train_id"`
	RouteID     uuid.UUID     `db:"route_id"`
	TravelDate  time.Time     `db:"travel_date"`
	SeatClass   SeatClass     `db:"seat_class"`
	BookingType BookingType   `db:"booking_type"`
	TotalAmount float64       `db:"total_amount"`
	Status      BookingStatus `db:"status"`
}

// BookingDetail booking lengkap untuk e-ticket / PNR status
type BookingDetail struct {
	Booking    Booking
	Train      Train
	Route      Route
	Passengers []Passenger
	Seats      []Seat
	Payment    *Payment
}
