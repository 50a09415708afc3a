package wizard

type Event interface {
	// state yang datanya wajib ada sebelum event boleh jalan
	requires() State
	apply(s *Session) error
}

// SubmitSearch mulai (atau ulang) pencarian. Data langkah berikutnya dibuang.
type SubmitSearch struct {
	Data SearchData
}

func (SubmitSearch) requires() State { return StateSearchEntry }

func (e SubmitSearch) apply(s *Session) error {
	data := e.Data
	s.Search = &data
	s.Passengers = nil
	s.Payment = nil
	s.BookingID = ""
	s.State = StatePassengerEntry
	return nil
}

type SubmitPassengers struct {
	Data []PassengerData
}

func (SubmitPassengers) requires() State { return StatePassengerEntry }

func (e SubmitPassengers) apply(s *Session) error {
	if len(e.Data) != s.Search.Passengers {
		return ErrPassengerCount
	}
	s.Passengers = append([]PassengerData(nil), e.Data...)
	s.Payment = nil
	s.State = StateFareSelection
	return nil
}

type SubmitPayment struct {
	Data PaymentData
}

func (SubmitPayment) requires() State { return StatePaymentEntry }

func (e SubmitPayment) apply(s *Session) error {
	data := e.Data
	s.Payment = &data
	s.State = StateSeatSelection
	return nil
}

// Commit dipanggil setelah booking tersimpan. Semua data wizard dibersihkan.
type Commit struct {
	BookingID string
}

func (Commit) requires() State { return StateSeatSelection }

func (e Commit) apply(s *Session) error {
	s.Search = nil
	s.Passengers = nil
	s.Payment = nil
	s.BookingID = e.BookingID
	s.State = StateConfirmed
	return nil
}
