package entity

import (
	"strings"

	"github.com/google/uuid"
)

type SeatType string

const (
	SeatTypeWindow SeatType = "window"
	SeatTypeMiddle SeatType = "middle"
	SeatTypeAisle  SeatType = "aisle"
)

type Seat struct {
	BaseSimple
	BookingID   uuid.UUID `db:"booking_id"`
	PassengerID uuid.UUID `db:"passenger_id"`
	SeatNumber  string    `db:"seat_number"` // 1A, 1B, ... 5F
	Coach       string    `db:"coach"`
	SeatType    SeatType  `db:"seat_type"`
}

// SeatTypeFor tipe kursi dari huruf kolom: A/F window, C/D aisle, sisanya middle
func SeatTypeFor(seatNumber string) SeatType {
	if seatNumber == "" {
		return SeatTypeMiddle
	}
	switch strings.ToUpper(seatNumber[len(seatNumber)-1:]) {
	case "A", "F":
		return SeatTypeWindow
	case "C", "D":
		return SeatTypeAisle
	}
	return SeatTypeMiddle
}
