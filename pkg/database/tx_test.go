package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ctx := context.Background()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bookings").WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	err = WithTx(ctx, mock, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, "INSERT INTO bookings DEFAULT VALUES")
		return err
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ctx := context.Background()
	boom := errors.New("seat insert failed")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bookings").WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectRollback()

	err = WithTx(ctx, mock, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, "INSERT INTO bookings DEFAULT VALUES"); err != nil {
			return err
		}
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_BeginFailure(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	called := false
	err = WithTx(context.Background(), mock, func(tx pgx.Tx) error {
		called = true
		return nil
	})

	assert.Error(t, err)
	assert.False(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_CommitFailure(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))

	err = WithTx(context.Background(), mock, func(tx pgx.Tx) error { return nil })

	assert.ErrorContains(t, err, "commit transaction")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, Migrate(context.Background(), mock))
	assert.NoError(t, mock.ExpectationsWereMet())
}
