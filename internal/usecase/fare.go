package usecase

import (
	"math"

	"train-booking/internal/data/entity"
)

// RoundMoney bulatkan ke 2 desimal
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

// CalculateFare harga per penumpang dan total untuk kelas tertentu
func CalculateFare(route *entity.Route, class entity.SeatClass, passengers int) (perPassenger, total float64) {
	perPassenger = RoundMoney(route.PriceFor(class))
	total = RoundMoney(perPassenger * float64(passengers))
	return perPassenger, total
}

// normalizeSeatClass kelas tidak dikenal jatuh ke general
func normalizeSeatClass(raw string) entity.SeatClass {
	class := entity.SeatClass(raw)
	if !class.Valid() {
		return entity.SeatClassGeneral
	}
	return class
}
