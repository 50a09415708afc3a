package request

// SearchRequest langkah 1: pencarian kereta
type SearchRequest struct {
	FromStation string `json:"from_station" validate:"required,max=100"`
	ToStation   string `json:"to_station" validate:"required,max=100"`
	TravelDate  string `json:"travel_date" validate:"required,datetime=2006-01-02"`
	Passengers  int    `json:"passengers" validate:"required,min=1,max=6"`
	BookingType string `json:"booking_type" validate:"omitempty,oneof=regular tatkal"`
}

type PassengerForm struct {
	Name    string `json:"name" validate:"required,max=100"`
	Age     int    `json:"age" validate:"required,min=1,max=120"`
	Gender  string `json:"gender" validate:"required,oneof=Male Female Other"`
	IDProof string `json:"id_proof" validate:"required,max=50"`
}

// PassengersRequest langkah 2: satu form per penumpang
type PassengersRequest struct {
	Passengers []PassengerForm `json:"passengers"`
}

// PaymentRequest field kartu/UPI hanya wajib sesuai metode
type PaymentRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required,oneof=card upi netbanking"`
	CardNumber    string `json:"card_number" validate:"required_if=PaymentMethod card,max=19"`
	CardName      string `json:"card_name" validate:"required_if=PaymentMethod card,max=100"`
	ExpiryDate    string `json:"expiry_date" validate:"required_if=PaymentMethod card,max=5"`
	CVV           string `json:"cvv" validate:"required_if=PaymentMethod card,max=4"`
	UPIID         string `json:"upi_id" validate:"required_if=PaymentMethod upi,max=100"`
}

type SeatSelectionRequest struct {
	SelectedSeats []string `json:"selected_seats"`
}
