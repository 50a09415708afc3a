package repository

import (
	"context"
	"testing"

	"train-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBookingRepository_Cancel(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBookingRepository(mock, zap.NewNop())
	id := uuid.New()

	mock.ExpectExec("UPDATE bookings").
		WithArgs(id, entity.BookingStatusCancelled).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE bookings").
		WithArgs(id, entity.BookingStatusCancelled).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	changed, err := repo.Cancel(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = repo.Cancel(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, changed, "second cancel must not change anything")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_FindByPNRNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBookingRepository(mock, zap.NewNop())

	mock.ExpectQuery("FROM bookings WHERE pnr").
		WithArgs("ZZZZZZZZZZ").
		WillReturnError(pgx.ErrNoRows)

	booking, err := repo.FindByPNR(context.Background(), "ZZZZZZZZZZ")
	assert.NoError(t, err)
	assert.Nil(t, booking)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_PNRExists(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBookingRepository(mock, zap.NewNop())

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("AB12CD34EF").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.PNRExists(context.Background(), "AB12CD34EF")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_CountByUserID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBookingRepository(mock, zap.NewNop())
	userID := uuid.New()

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(12)))

	count, err := repo.CountByUserID(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, int64(12), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
