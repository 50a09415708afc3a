package repository

import (
	"context"
	"time"

	"train-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Repository struct {
	User      UserRepository
	Session   SessionRepository
	Train     TrainRepository
	Route     RouteRepository
	Booking   BookingRepository
	Passenger PassengerRepository
	Seat      SeatRepository
	Payment   PaymentRepository
	Wizard    WizardRepository
	Tx        Transactor
}

// Transactor menjalankan fn dengan repository yang terikat ke satu transaksi
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(repo *Repository) error) error
}

func NewRepository(db database.PgxIface, rdb redis.Cmdable, wizardTTL time.Duration, log *zap.Logger) *Repository {
	repo := newSQLRepository(db, log)
	repo.Wizard = NewWizardRepository(rdb, wizardTTL, log)
	repo.Tx = &pgTransactor{db: db, log: log, wizard: repo.Wizard}
	return repo
}

func newSQLRepository(db database.Querier, log *zap.Logger) *Repository {
	return &Repository{
		User:      NewUserRepository(db, log),
		Session:   NewSessionRepository(db, log),
		Train:     NewTrainRepository(db, log),
		Route:     NewRouteRepository(db, log),
		Booking:   NewBookingRepository(db, log),
		Passenger: NewPassengerRepository(db, log),
		Seat:      NewSeatRepository(db, log),
		Payment:   NewPaymentRepository(db, log),
	}
}

type pgTransactor struct {
	db     database.PgxIface
	log    *zap.Logger
	wizard WizardRepository
}

func (t *pgTransactor) WithinTransaction(ctx context.Context, fn func(repo *Repository) error) error {
	return database.WithTx(ctx, t.db, func(tx pgx.Tx) error {
		txRepo := newSQLRepository(tx, t.log)
		txRepo.Wizard = t.wizard
		return fn(txRepo)
	})
}
