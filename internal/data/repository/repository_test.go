package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"train-booking/internal/data/entity"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRoute() *entity.Route {
	now := time.Now()
	return &entity.Route{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		TrainID:      uuid.New(),
		FromStation:  "Delhi",
		ToStation:    "Mumbai",
		Distance:     1384,
		ThirdACPrice: 1200,
	}
}

// anyArgs n placeholder untuk kolom yang tidak perlu dicek
func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func TestTransactor_CommitsAllWrites(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rdb, _ := redismock.NewClientMock()
	repo := NewRepository(mock, rdb, time.Minute, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO routes").
		WithArgs(anyArgs(12)...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO passengers").
		WithArgs(pgxmock.AnyArg(), "Asha", 34, entity.GenderFemale, "PAN", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	err = repo.Tx.WithinTransaction(context.Background(), func(tx *Repository) error {
		created, err := tx.Route.CreateIfNotExists(context.Background(), newRoute())
		if err != nil {
			return err
		}
		assert.True(t, created)
		return tx.Passenger.Create(context.Background(), &entity.Passenger{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
			Name:       "Asha",
			Age:        34,
			Gender:     entity.GenderFemale,
			IDProof:    "PAN",
		})
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactor_RollsBackOnFailure(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rdb, _ := redismock.NewClientMock()
	repo := NewRepository(mock, rdb, time.Minute, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO routes").
		WithArgs(anyArgs(12)...).
		WillReturnError(errors.New("duplicate key"))
	mock.ExpectRollback()

	err = repo.Tx.WithinTransaction(context.Background(), func(tx *Repository) error {
		_, err := tx.Route.CreateIfNotExists(context.Background(), newRoute())
		return err
	})

	assert.ErrorContains(t, err, "duplicate key")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouteRepository_CreateIfNotExistsSkipsDuplicate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRouteRepository(mock, zap.NewNop())

	route := newRoute()
	mock.ExpectExec("ON CONFLICT").
		WithArgs(route.ID, route.TrainID, "Delhi", "Mumbai", route.Distance,
			route.FirstACPrice, route.SecondACPrice, route.ThirdACPrice, route.SleeperPrice, route.GeneralPrice,
			route.CreatedAt, route.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	created, err := repo.CreateIfNotExists(context.Background(), route)
	require.NoError(t, err)
	assert.False(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}
