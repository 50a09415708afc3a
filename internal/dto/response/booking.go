package response

import (
	"time"

	"train-booking/internal/data/entity"
)

type PassengerResponse struct {
	Name    string        `json:"name"`
	Age     int           `json:"age"`
	Gender  entity.Gender `json:"gender"`
	IDProof string        `json:"id_proof"`
}

type SeatResponse struct {
	SeatNumber string          `json:"seat_number"`
	Coach      string          `json:"coach"`
	SeatType   entity.SeatType `json:"seat_type"`
	Passenger  string          `json:"passenger"`
}

type PaymentResponse struct {
	Amount        float64              `json:"amount"`
	Method        entity.PaymentMethod `json:"payment_method"`
	TransactionID string               `json:"transaction_id"`
	Status        entity.PaymentStatus `json:"status"`
}

type BookingResponse struct {
	BookingID   string               `json:"booking_id"`
	PNR         string               `json:"pnr"`
	TravelDate  string               `json:"travel_date"`
	SeatClass   entity.SeatClass     `json:"seat_class"`
	ClassLabel  string               `json:"class_label"`
	BookingType entity.BookingType   `json:"booking_type"`
	TotalAmount float64              `json:"total_amount"`
	Status      entity.BookingStatus `json:"status"`
	CreatedAt   time.Time            `json:"created_at"`
}

type BookingDetailResponse struct {
	BookingResponse
	Train      TrainSummary        `json:"train"`
	Route      RouteSummary        `json:"route"`
	Passengers []PassengerResponse `json:"passengers"`
	Seats      []SeatResponse      `json:"seats"`
	Payment    *PaymentResponse    `json:"payment,omitempty"`
	QRCodeURL  string              `json:"qr_code_url,omitempty"`
}

type CancellationResponse struct {
	BookingID     string               `json:"booking_id"`
	PNR           string               `json:"pnr"`
	Status        entity.BookingStatus `json:"status"`
	PaymentStatus entity.PaymentStatus `json:"payment_status,omitempty"`
	RefundAmount  float64              `json:"refund_amount"`
	Message       string               `json:"message"`
}

type ProvisionRoutesResponse struct {
	FromStation string `json:"from_station"`
	ToStation   string `json:"to_station"`
	Created     int    `json:"created"`
}

func BookingToResponse(b *entity.Booking) BookingResponse {
	return BookingResponse{
		BookingID:   b.BookingID,
		PNR:         b.PNR,
		TravelDate:  b.TravelDate.Format("2006-01-02"),
		SeatClass:   b.SeatClass,
		ClassLabel:  b.SeatClass.Label(),
		BookingType: b.BookingType,
		TotalAmount: b.TotalAmount,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
	}
}

func BookingDetailToResponse(d *entity.BookingDetail) BookingDetailResponse {
	resp := BookingDetailResponse{
		BookingResponse: BookingToResponse(&d.Booking),
		Train:           TrainToSummary(&d.Train),
		Route:           RouteToSummary(&d.Route),
		Passengers:      make([]PassengerResponse, 0, len(d.Passengers)),
		Seats:           make([]SeatResponse, 0, len(d.Seats)),
	}

	names := make(map[string]string, len(d.Passengers))
	for _, p := range d.Passengers {
		names[p.ID.String()] = p.Name
		resp.Passengers = append(resp.Passengers, PassengerResponse{
			Name:    p.Name,
			Age:     p.Age,
			Gender:  p.Gender,
			IDProof: p.IDProof,
		})
	}

	for _, s := range d.Seats {
		resp.Seats = append(resp.Seats, SeatResponse{
			SeatNumber: s.SeatNumber,
			Coach:      s.Coach,
			SeatType:   s.SeatType,
			Passenger:  names[s.PassengerID.String()],
		})
	}

	if d.Payment != nil {
		resp.Payment = &PaymentResponse{
			Amount:        d.Payment.Amount,
			Method:        d.Payment.Method,
			TransactionID: d.Payment.TransactionID,
			Status:        d.Payment.Status,
		}
	}

	return resp
}
