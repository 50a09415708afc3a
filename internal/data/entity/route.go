package entity

import "github.com/google/uuid"

type Route struct {
	BaseNoDelete
	TrainID       uuid.UUID `db:"train_id"`
	FromStation   string    `db:"from_station"`
	ToStation     string    `db:"to_station"`
	Distance      int       `db:"distance"`
	FirstACPrice  float64   `db:"first_ac_price"`
	SecondACPrice float64   `db:"second_ac_price"`
	ThirdACPrice  float64   `db:"third_ac_price"`
	SleeperPrice  float64   `db:"sleeper_price"`
	GeneralPrice  float64   `db:"general_price"`

	// diisi saat join dengan trains
	Train *Train `db:"-"`
}

// PriceFor harga per penumpang. Kelas tidak dikenal jatuh ke harga general.
func (r *Route) PriceFor(class SeatClass) float64 {
	switch class {
	case SeatClassFirstAC:
		return r.FirstACPrice
	case SeatClassSecondAC:
		return r.SecondACPrice
	case SeatClassThirdAC:
		return r.ThirdACPrice
	case SeatClassSleeper:
		return r.SleeperPrice
	}
	return r.GeneralPrice
}
