package usecase

import (
	"testing"

	"train-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSeatMap_Layout(t *testing.T) {
	rows := BuildSeatMap(nil)
	require.Len(t, rows, SeatRows)
	for _, row := range rows {
		require.Len(t, row, len(SeatColumns))
	}

	assert.Equal(t, "1A", rows[0][0].ID)
	assert.Equal(t, entity.SeatTypeWindow, rows[0][0].Type)
	assert.Equal(t, entity.SeatTypeMiddle, rows[0][1].Type)
	assert.Equal(t, entity.SeatTypeAisle, rows[0][2].Type)
	assert.Equal(t, entity.SeatTypeAisle, rows[2][3].Type)
	assert.Equal(t, "5F", rows[4][5].ID)
	assert.Equal(t, entity.SeatTypeWindow, rows[4][5].Type)
	assert.False(t, rows[3][3].Occupied)
}

func TestBuildSeatMap_OccupancyOverlay(t *testing.T) {
	rows := BuildSeatMap(func() bool { return true })
	for _, row := range rows {
		for _, cell := range row {
			assert.True(t, cell.Occupied, cell.ID)
		}
	}
}

func TestNormalizeSeatSelection(t *testing.T) {
	t.Run("normalizes case and spaces", func(t *testing.T) {
		seats, err := normalizeSeatSelection([]string{"1a", " 2B "}, 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"1A", "2B"}, seats)
	})

	t.Run("wrong count", func(t *testing.T) {
		_, err := normalizeSeatSelection([]string{"1A"}, 2)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "Please select 2 seats.", vErr.Message)
		assert.Contains(t, vErr.Fields, "selected_seats")
	})

	t.Run("duplicate seat", func(t *testing.T) {
		_, err := normalizeSeatSelection([]string{"1A", "1a"}, 2)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Fields, "selected_seats[1]")
	})

	t.Run("outside the map", func(t *testing.T) {
		for _, id := range []string{"6A", "1G", "0B", "12A", ""} {
			_, err := normalizeSeatSelection([]string{id}, 1)
			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr, id)
		}
	})
}
