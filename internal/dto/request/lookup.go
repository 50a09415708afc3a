package request

type PNRRequest struct {
	PNR string `json:"pnr" validate:"required,len=10,alphanum"`
}

type TrainStatusRequest struct {
	Query string `json:"query" validate:"required,max=100"`
}

const (
	ActionCheckPNR      = "check_pnr"
	ActionCancelBooking = "cancel_booking"
)

type CancellationRequest struct {
	Action    string `json:"action" validate:"required,oneof=check_pnr cancel_booking"`
	PNR       string `json:"pnr" validate:"required_if=Action check_pnr"`
	BookingID string `json:"booking_id" validate:"required_if=Action cancel_booking"`
}

type ProvisionRoutesRequest struct {
	FromStation string `json:"from_station" validate:"required,max=100"`
	ToStation   string `json:"to_station" validate:"required,max=100"`
}
