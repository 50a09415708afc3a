package repository

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSessionRepository_RevokeUnknownToken(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSessionRepository(mock, zap.NewNop())

	mock.ExpectExec("UPDATE sessions").
		WithArgs("not-a-session").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.Revoke(context.Background(), "not-a-session")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_CleanExpiredSessions(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSessionRepository(mock, zap.NewNop())

	mock.ExpectExec("DELETE FROM sessions").
		WillReturnResult(pgxmock.NewResult("DELETE", 4))

	n, err := repo.CleanExpiredSessions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
