package entity

// Train jadwal kereta (fixture, tidak diubah setelah dibuat)
type Train struct {
	BaseNoDelete
	Name          string `db:"name"`
	Number        string `db:"number"`
	DepartureTime string `db:"departure_time"` // HH:MM
	ArrivalTime   string `db:"arrival_time"`   // HH:MM
	Duration      string `db:"duration"`       // "8h 30m"
	FirstACSeats  int    `db:"first_ac_seats"`
	SecondACSeats int    `db:"second_ac_seats"`
	ThirdACSeats  int    `db:"third_ac_seats"`
	SleeperSeats  int    `db:"sleeper_seats"`
	GeneralSeats  int    `db:"general_seats"`
}

func (t *Train) SeatsFor(class SeatClass) int {
	switch class {
	case SeatClassFirstAC:
		return t.FirstACSeats
	case SeatClassSecondAC:
		return t.SecondACSeats
	case SeatClassThirdAC:
		return t.ThirdACSeats
	case SeatClassSleeper:
		return t.SleeperSeats
	case SeatClassGeneral:
		return t.GeneralSeats
	}
	return 0
}
