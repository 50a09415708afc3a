// Package mocks berisi testify mock untuk interface repository.
package mocks

import (
	"context"

	"train-booking/internal/data/entity"
	"train-booking/internal/data/repository"
	"train-booking/internal/wizard"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// ==================== USER ====================

type UserRepository struct{ mock.Mock }

func NewUserRepository(t testingT) *UserRepository {
	m := &UserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *UserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *UserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

// ==================== SESSION ====================

type SessionRepository struct{ mock.Mock }

func NewSessionRepository(t testingT) *SessionRepository {
	m := &SessionRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *SessionRepository) Create(ctx context.Context, session *entity.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *SessionRepository) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	args := m.Called(ctx, token)
	s, _ := args.Get(0).(*entity.Session)
	return s, args.Error(1)
}

func (m *SessionRepository) Revoke(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *SessionRepository) CleanExpiredSessions(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// ==================== TRAIN ====================

type TrainRepository struct{ mock.Mock }

func NewTrainRepository(t testingT) *TrainRepository {
	m := &TrainRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *TrainRepository) Create(ctx context.Context, train *entity.Train) error {
	return m.Called(ctx, train).Error(0)
}

func (m *TrainRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Train, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*entity.Train)
	return t, args.Error(1)
}

func (m *TrainRepository) FindByNumber(ctx context.Context, number string) (*entity.Train, error) {
	args := m.Called(ctx, number)
	t, _ := args.Get(0).(*entity.Train)
	return t, args.Error(1)
}

func (m *TrainRepository) FindAll(ctx context.Context) ([]*entity.Train, error) {
	args := m.Called(ctx)
	t, _ := args.Get(0).([]*entity.Train)
	return t, args.Error(1)
}

// ==================== ROUTE ====================

type RouteRepository struct{ mock.Mock }

func NewRouteRepository(t testingT) *RouteRepository {
	m := &RouteRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *RouteRepository) CreateIfNotExists(ctx context.Context, route *entity.Route) (bool, error) {
	args := m.Called(ctx, route)
	return args.Bool(0), args.Error(1)
}

func (m *RouteRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Route, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*entity.Route)
	return r, args.Error(1)
}

func (m *RouteRepository) FindForTrain(ctx context.Context, trainID uuid.UUID, from, to string) (*entity.Route, error) {
	args := m.Called(ctx, trainID, from, to)
	r, _ := args.Get(0).(*entity.Route)
	return r, args.Error(1)
}

func (m *RouteRepository) FindByStations(ctx context.Context, from, to string, limit int) ([]*entity.Route, error) {
	args := m.Called(ctx, from, to, limit)
	r, _ := args.Get(0).([]*entity.Route)
	return r, args.Error(1)
}

// ==================== BOOKING ====================

type BookingRepository struct{ mock.Mock }

func NewBookingRepository(t testingT) *BookingRepository {
	m := &BookingRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *BookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

func (m *BookingRepository) FindByBookingID(ctx context.Context, bookingID string) (*entity.Booking, error) {
	args := m.Called(ctx, bookingID)
	b, _ := args.Get(0).(*entity.Booking)
	return b, args.Error(1)
}

func (m *BookingRepository) FindByPNR(ctx context.Context, pnr string) (*entity.Booking, error) {
	args := m.Called(ctx, pnr)
	b, _ := args.Get(0).(*entity.Booking)
	return b, args.Error(1)
}

func (m *BookingRepository) PNRExists(ctx context.Context, pnr string) (bool, error) {
	args := m.Called(ctx, pnr)
	return args.Bool(0), args.Error(1)
}

func (m *BookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	args := m.Called(ctx, userID, limit, offset)
	b, _ := args.Get(0).([]*entity.Booking)
	return b, args.Error(1)
}

func (m *BookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *BookingRepository) Cancel(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// ==================== PASSENGER ====================

type PassengerRepository struct{ mock.Mock }

func NewPassengerRepository(t testingT) *PassengerRepository {
	m := &PassengerRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *PassengerRepository) Create(ctx context.Context, passenger *entity.Passenger) error {
	return m.Called(ctx, passenger).Error(0)
}

func (m *PassengerRepository) LinkToBooking(ctx context.Context, bookingID, passengerID uuid.UUID, position int) error {
	return m.Called(ctx, bookingID, passengerID, position).Error(0)
}

func (m *PassengerRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]entity.Passenger, error) {
	args := m.Called(ctx, bookingID)
	p, _ := args.Get(0).([]entity.Passenger)
	return p, args.Error(1)
}

// ==================== SEAT ====================

type SeatRepository struct{ mock.Mock }

func NewSeatRepository(t testingT) *SeatRepository {
	m := &SeatRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *SeatRepository) Create(ctx context.Context, seat *entity.Seat) error {
	return m.Called(ctx, seat).Error(0)
}

func (m *SeatRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]entity.Seat, error) {
	args := m.Called(ctx, bookingID)
	s, _ := args.Get(0).([]entity.Seat)
	return s, args.Error(1)
}

// ==================== PAYMENT ====================

type PaymentRepository struct{ mock.Mock }

func NewPaymentRepository(t testingT) *PaymentRepository {
	m := &PaymentRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *PaymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

func (m *PaymentRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Payment, error) {
	args := m.Called(ctx, bookingID)
	p, _ := args.Get(0).(*entity.Payment)
	return p, args.Error(1)
}

func (m *PaymentRepository) UpdateStatusByBookingID(ctx context.Context, bookingID uuid.UUID, status entity.PaymentStatus) error {
	return m.Called(ctx, bookingID, status).Error(0)
}

// ==================== WIZARD ====================

type WizardRepository struct{ mock.Mock }

func NewWizardRepository(t testingT) *WizardRepository {
	m := &WizardRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *WizardRepository) Get(ctx context.Context, key string) (*wizard.Session, error) {
	args := m.Called(ctx, key)
	s, _ := args.Get(0).(*wizard.Session)
	return s, args.Error(1)
}

func (m *WizardRepository) Save(ctx context.Context, key string, session *wizard.Session) error {
	return m.Called(ctx, key, session).Error(0)
}

// ==================== TRANSACTOR ====================

// Transactor runs fn against the same mocked repository. RolledBack is set
// when fn returns an error, so tests can assert nothing was committed.
type Transactor struct {
	Repo       *repository.Repository
	Commits    int
	RolledBack bool
}

func (t *Transactor) WithinTransaction(ctx context.Context, fn func(repo *repository.Repository) error) error {
	if err := fn(t.Repo); err != nil {
		t.RolledBack = true
		return err
	}
	t.Commits++
	return nil
}

// NewRepository merakit Repository dari mock, dengan Transactor palsu
func NewRepository(t testingT) (*repository.Repository, *Set) {
	set := &Set{
		User:      NewUserRepository(t),
		Session:   NewSessionRepository(t),
		Train:     NewTrainRepository(t),
		Route:     NewRouteRepository(t),
		Booking:   NewBookingRepository(t),
		Passenger: NewPassengerRepository(t),
		Seat:      NewSeatRepository(t),
		Payment:   NewPaymentRepository(t),
		Wizard:    NewWizardRepository(t),
	}
	repo := &repository.Repository{
		User:      set.User,
		Session:   set.Session,
		Train:     set.Train,
		Route:     set.Route,
		Booking:   set.Booking,
		Passenger: set.Passenger,
		Seat:      set.Seat,
		Payment:   set.Payment,
		Wizard:    set.Wizard,
	}
	set.Tx = &Transactor{Repo: repo}
	repo.Tx = set.Tx
	return repo, set
}

// Set typed handles to every mock in a Repository
type Set struct {
	User      *UserRepository
	Session   *SessionRepository
	Train     *TrainRepository
	Route     *RouteRepository
	Booking   *BookingRepository
	Passenger *PassengerRepository
	Seat      *SeatRepository
	Payment   *PaymentRepository
	Wizard    *WizardRepository
	Tx        *Transactor
}
