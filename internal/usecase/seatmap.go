package usecase

import (
	"fmt"
	"math/rand"
	"strings"

	"train-booking/internal/data/entity"
	"train-booking/internal/dto/response"
)

const (
	SeatRows      = 5
	occupancyRate = 0.3
)

var SeatColumns = []string{"A", "B", "C", "D", "E", "F"}

// randomOccupancy overlay kursi terisi, hanya untuk tampilan
func randomOccupancy() bool {
	return rand.Float64() < occupancyRate
}

// BuildSeatMap 5 baris x 6 kolom, id kursi "1A".."5F"
func BuildSeatMap(occupied func() bool) [][]response.SeatCell {
	rows := make([][]response.SeatCell, 0, SeatRows)
	for row := 1; row <= SeatRows; row++ {
		cells := make([]response.SeatCell, 0, len(SeatColumns))
		for _, col := range SeatColumns {
			id := fmt.Sprintf("%d%s", row, col)
			cells = append(cells, response.SeatCell{
				ID:       id,
				Number:   id,
				Type:     entity.SeatTypeFor(id),
				Occupied: occupied != nil && occupied(),
			})
		}
		rows = append(rows, cells)
	}
	return rows
}

func isSeatID(id string) bool {
	if len(id) != 2 {
		return false
	}
	if id[0] < '1' || id[0] > byte('0'+SeatRows) {
		return false
	}
	return strings.Contains("ABCDEF", id[1:])
}

// normalizeSeatSelection uppercase + trim, lalu cek jumlah, format, duplikat
func normalizeSeatSelection(selected []string, required int) ([]string, error) {
	if len(selected) != required {
		return nil, newValidationError(
			fmt.Sprintf("Please select %d seats.", required),
			map[string]string{"selected_seats": fmt.Sprintf("Exactly %d seats required, got %d", required, len(selected))},
		)
	}

	seen := make(map[string]bool, len(selected))
	out := make([]string, 0, len(selected))
	for i, raw := range selected {
		id := strings.ToUpper(strings.TrimSpace(raw))
		key := fmt.Sprintf("selected_seats[%d]", i)
		if !isSeatID(id) {
			return nil, newValidationError("Invalid seat selection", map[string]string{key: fmt.Sprintf("Unknown seat %q", raw)})
		}
		if seen[id] {
			return nil, newValidationError("Invalid seat selection", map[string]string{key: fmt.Sprintf("Seat %s selected twice", id)})
		}
		seen[id] = true
		out = append(out, id)
	}
	return out, nil
}
