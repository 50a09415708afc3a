package usecase

import (
	"testing"

	"train-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
)

func TestCalculateFare(t *testing.T) {
	route := &entity.Route{
		FirstACPrice:  3200,
		SecondACPrice: 2100,
		ThirdACPrice:  1200,
		SleeperPrice:  950.5,
		GeneralPrice:  450,
	}

	tests := []struct {
		name       string
		class      entity.SeatClass
		passengers int
		per        float64
		total      float64
	}{
		{"3rd AC two passengers", entity.SeatClassThirdAC, 2, 1200, 2400},
		{"1st AC single", entity.SeatClassFirstAC, 1, 3200, 3200},
		{"sleeper with decimals", entity.SeatClassSleeper, 3, 950.5, 2851.5},
		{"general six", entity.SeatClassGeneral, 6, 450, 2700},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			per, total := CalculateFare(route, tt.class, tt.passengers)
			assert.Equal(t, tt.per, per)
			assert.Equal(t, tt.total, total)
		})
	}
}

func TestNormalizeSeatClass_UnknownFallsBackToGeneral(t *testing.T) {
	assert.Equal(t, entity.SeatClassSecondAC, normalizeSeatClass("2nd-ac"))
	assert.Equal(t, entity.SeatClassGeneral, normalizeSeatClass("business"))
	assert.Equal(t, entity.SeatClassGeneral, normalizeSeatClass(""))
}

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, 1200.0, RoundMoney(1199.999))
	assert.Equal(t, 10.5, RoundMoney(10.5))
}
