package wizard

import (
	"time"

	"train-booking/internal/data/entity"

	"github.com/google/uuid"
)

const DateLayout = "2006-01-02"

type SearchData struct {
	FromStation string             `json:"from_station"`
	ToStation   string             `json:"to_station"`
	TravelDate  string             `json:"travel_date"`
	Passengers  int                `json:"passengers"`
	BookingType entity.BookingType `json:"booking_type"`
}

func (d SearchData) Date() (time.Time, error) {
	return time.Parse(DateLayout, d.TravelDate)
}

type PassengerData struct {
	Name    string        `json:"name"`
	Age     int           `json:"age"`
	Gender  entity.Gender `json:"gender"`
	IDProof string        `json:"id_proof"`
}

type PaymentData struct {
	TrainID       uuid.UUID            `json:"train_id"`
	SeatClass     entity.SeatClass     `json:"seat_class"`
	TotalPrice    float64              `json:"total_price"`
	PaymentMethod entity.PaymentMethod `json:"payment_method"`
}

// Session state wizard satu browser, disimpan utuh di redis
type Session struct {
	State      State           `json:"state"`
	Search     *SearchData     `json:"search_data,omitempty"`
	Passengers []PassengerData `json:"passengers_data,omitempty"`
	Payment    *PaymentData    `json:"payment_data,omitempty"`
	BookingID  string          `json:"booking_id,omitempty"`
}

func NewSession() *Session {
	return &Session{State: StateSearchEntry}
}

// Require memastikan data untuk masuk ke state target sudah ada
func (s *Session) Require(target State) error {
	switch target {
	case StateSearchEntry:
		return nil
	case StatePassengerEntry:
		if s.Search == nil {
			return ErrSessionExpired
		}
	case StateFareSelection, StatePaymentEntry:
		if s.Search == nil || len(s.Passengers) == 0 {
			return ErrSessionExpired
		}
	case StateSeatSelection:
		if s.Search == nil || len(s.Passengers) == 0 || s.Payment == nil {
			return ErrSessionExpired
		}
	case StateConfirmed:
		if s.BookingID == "" {
			return ErrSessionExpired
		}
	}
	return nil
}

// Apply satu-satunya jalan untuk pindah state
func (s *Session) Apply(ev Event) error {
	if err := s.Require(ev.requires()); err != nil {
		return err
	}
	return ev.apply(s)
}

// PassengerCount jumlah penumpang dari langkah pencarian
func (s *Session) PassengerCount() int {
	if s.Search == nil {
		return 0
	}
	return s.Search.Passengers
}
