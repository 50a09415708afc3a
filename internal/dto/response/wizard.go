package response

import (
	"train-booking/internal/data/entity"
	"train-booking/internal/wizard"
)

// StepResponse hasil submit satu langkah wizard
type StepResponse struct {
	State     wizard.State `json:"state"`
	Redirect  string       `json:"redirect"`
	BookingID string       `json:"booking_id,omitempty"`
}

type SearchPageResponse struct {
	State  wizard.State       `json:"state"`
	Search *wizard.SearchData `json:"search_data,omitempty"`
}

type PassengerPageResponse struct {
	State          wizard.State           `json:"state"`
	Search         wizard.SearchData      `json:"search_data"`
	PassengerCount int                    `json:"passenger_count"`
	IsTatkal       bool                   `json:"is_tatkal"`
	Forms          []PassengerFormSlot    `json:"forms"`
	Passengers     []wizard.PassengerData `json:"passengers_data,omitempty"`
}

// PassengerFormSlot satu sub-form penumpang, prefix = key error field
type PassengerFormSlot struct {
	Index  int                  `json:"index"`
	Prefix string               `json:"prefix"`
	Values wizard.PassengerData `json:"values"`
}

type ClassFare struct {
	SeatClass         entity.SeatClass `json:"seat_class"`
	Label             string           `json:"label"`
	PricePerPassenger float64          `json:"price_per_passenger"`
	TotalPrice        float64          `json:"total_price"`
	AvailableSeats    int              `json:"available_seats"`
	PaymentURL        string           `json:"payment_url"`
}

type TrainSummary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Number        string `json:"number"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
	Duration      string `json:"duration"`
}

type RouteSummary struct {
	ID          string `json:"id"`
	FromStation string `json:"from_station"`
	ToStation   string `json:"to_station"`
	Distance    int    `json:"distance"`
}

type TrainResult struct {
	Train   TrainSummary `json:"train"`
	Route   RouteSummary `json:"route"`
	Classes []ClassFare  `json:"classes"`
}

type TrainResultsResponse struct {
	State          wizard.State      `json:"state"`
	Search         wizard.SearchData `json:"search_data"`
	PassengerCount int               `json:"passenger_count"`
	Trains         []TrainResult     `json:"trains"`
}

type PaymentPageResponse struct {
	State          wizard.State      `json:"state"`
	Train          TrainSummary      `json:"train"`
	Route          RouteSummary      `json:"route"`
	SeatClass      entity.SeatClass  `json:"seat_class"`
	BasePrice      float64           `json:"base_price"`
	TotalPrice     float64           `json:"total_price"`
	PassengerCount int               `json:"passenger_count"`
	Search         wizard.SearchData `json:"search_data"`
}

type SeatCell struct {
	ID       string          `json:"id"`
	Number   string          `json:"number"`
	Type     entity.SeatType `json:"type"`
	Occupied bool            `json:"occupied"`
}

type SeatMapResponse struct {
	State         wizard.State     `json:"state"`
	Train         TrainSummary     `json:"train"`
	SeatClass     entity.SeatClass `json:"seat_class"`
	Coach         string           `json:"coach"`
	RequiredSeats int              `json:"required_seats"`
	Rows          [][]SeatCell     `json:"rows"`
}

func TrainToSummary(t *entity.Train) TrainSummary {
	return TrainSummary{
		ID:            t.ID.String(),
		Name:          t.Name,
		Number:        t.Number,
		DepartureTime: t.DepartureTime,
		ArrivalTime:   t.ArrivalTime,
		Duration:      t.Duration,
	}
}

func RouteToSummary(r *entity.Route) RouteSummary {
	return RouteSummary{
		ID:          r.ID.String(),
		FromStation: r.FromStation,
		ToStation:   r.ToStation,
		Distance:    r.Distance,
	}
}
