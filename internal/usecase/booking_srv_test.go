package usecase

import (
	"context"
	"testing"
	"time"

	"train-booking/internal/data/entity"
	"train-booking/internal/data/repository/mocks"
	"train-booking/internal/wizard"
	"train-booking/pkg/mailer"
	"train-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestBookingService(t *testing.T) (BookingService, *mocks.Set) {
	t.Helper()
	repo, m := mocks.NewRepository(t)
	log := zap.NewNop()
	return NewBookingService(repo, mailer.New(utils.EmailConfig{}, log), "http://localhost:8080", log), m
}

func sampleBooking(userID uuid.UUID) *entity.Booking {
	return &entity.Booking{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New(), CreatedAt: time.Now()},
		BookingID:    "TKT0A1B2C3D",
		PNR:          "AB12CD34EF",
		UserID:       userID,
		TrainID:      uuid.New(),
		RouteID:      uuid.New(),
		TravelDate:   time.Date(2030, 1, 15, 0, 0, 0, 0, time.UTC),
		SeatClass:    entity.SeatClassThirdAC,
		BookingType:  entity.BookingTypeRegular,
		TotalAmount:  2400,
		Status:       entity.BookingStatusConfirmed,
	}
}

// expectDetail stub semua query yang dipakai loadBookingDetail
func expectDetail(m *mocks.Set, b *entity.Booking) {
	passenger := entity.Passenger{BaseSimple: entity.BaseSimple{ID: uuid.New()}, Name: "Asha Verma", Age: 34, Gender: entity.GenderFemale}
	m.Train.On("FindByID", mock.Anything, b.TrainID).Return(&entity.Train{
		BaseNoDelete: entity.BaseNoDelete{ID: b.TrainID}, Name: "Rajdhani Express", Number: "12001",
	}, nil)
	m.Route.On("FindByID", mock.Anything, b.RouteID).Return(&entity.Route{
		BaseNoDelete: entity.BaseNoDelete{ID: b.RouteID}, FromStation: "Delhi", ToStation: "Mumbai",
	}, nil)
	m.Passenger.On("FindByBookingID", mock.Anything, b.ID).Return([]entity.Passenger{passenger}, nil)
	m.Seat.On("FindByBookingID", mock.Anything, b.ID).Return([]entity.Seat{
		{BookingID: b.ID, PassengerID: passenger.ID, SeatNumber: "1A", Coach: "B1", SeatType: entity.SeatTypeWindow},
	}, nil)
	m.Payment.On("FindByBookingID", mock.Anything, b.ID).Return(&entity.Payment{
		BookingID: b.ID, Amount: b.TotalAmount, Method: entity.PaymentMethodUPI,
		TransactionID: "TXN0123456789", Status: entity.PaymentStatusCompleted,
	}, nil)
}

func TestGetETicket_Owner(t *testing.T) {
	svc, m := newTestBookingService(t)
	userID := uuid.New()
	booking := sampleBooking(userID)

	m.Booking.On("FindByBookingID", mock.Anything, booking.BookingID).Return(booking, nil)
	expectDetail(m, booking)

	resp, err := svc.GetETicket(context.Background(), userID, booking.BookingID)
	require.NoError(t, err)
	assert.Equal(t, "AB12CD34EF", resp.PNR)
	assert.Equal(t, "Rajdhani Express", resp.Train.Name)
	assert.Equal(t, "Delhi", resp.Route.FromStation)
	require.Len(t, resp.Seats, 1)
	assert.Equal(t, "Asha Verma", resp.Seats[0].Passenger)
	require.NotNil(t, resp.Payment)
	assert.Equal(t, entity.PaymentStatusCompleted, resp.Payment.Status)
	assert.Equal(t, "/e-ticket/TKT0A1B2C3D/qr.png", resp.QRCodeURL)
}

func TestGetETicket_OtherUserLooksLikeNotFound(t *testing.T) {
	svc, m := newTestBookingService(t)
	booking := sampleBooking(uuid.New())
	m.Booking.On("FindByBookingID", mock.Anything, booking.BookingID).Return(booking, nil)
	m.Booking.On("FindByBookingID", mock.Anything, "TKTFFFFFFFF").Return(nil, nil)

	_, errOther := svc.GetETicket(context.Background(), uuid.New(), booking.BookingID)
	_, errMissing := svc.GetETicket(context.Background(), uuid.New(), "TKTFFFFFFFF")

	assert.ErrorIs(t, errOther, ErrNotFound)
	assert.ErrorIs(t, errMissing, ErrNotFound)
	assert.Equal(t, errMissing.Error(), errOther.Error())
}

func TestGetETicketQR_ReturnsPNG(t *testing.T) {
	svc, m := newTestBookingService(t)
	userID := uuid.New()
	booking := sampleBooking(userID)

	m.Booking.On("FindByBookingID", mock.Anything, booking.BookingID).Return(booking, nil)
	m.Train.On("FindByID", mock.Anything, booking.TrainID).Return(&entity.Train{Number: "12001"}, nil)

	png, err := svc.GetETicketQR(context.Background(), userID, booking.BookingID)
	require.NoError(t, err)
	require.Greater(t, len(png), 8)
	assert.Equal(t, []byte("\x89PNG"), png[:4])
}

func TestGetUserBookings_Paginates(t *testing.T) {
	svc, m := newTestBookingService(t)
	userID := uuid.New()

	m.Booking.On("FindByUserID", mock.Anything, userID, bookingsPerPage, 10).
		Return([]*entity.Booking{sampleBooking(userID)}, nil)
	m.Booking.On("CountByUserID", mock.Anything, userID).Return(int64(11), nil)

	resp, err := svc.GetUserBookings(context.Background(), userID, 2)
	require.NoError(t, err)
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, 2, resp.Pagination.Page)
	assert.Equal(t, 2, resp.Pagination.TotalPages)
	assert.Equal(t, int64(11), resp.Pagination.Total)
}

func TestCreateBooking_GivesUpAfterPNRCollisions(t *testing.T) {
	svc, m := newTestBookingService(t)
	m.Booking.On("PNRExists", mock.Anything, mock.AnythingOfType("string")).Return(true, nil).Times(maxPNRAttempts)

	_, err := svc.CreateBooking(context.Background(), uuid.New(), &BookingDraft{
		Search:     *delhiMumbaiSearch(1),
		Passengers: twoPassengers()[:1],
		Payment:    wizard.PaymentData{TrainID: uuid.New(), SeatClass: entity.SeatClassGeneral, TotalPrice: 500},
		Seats:      []string{"1A"},
	})

	assert.ErrorIs(t, err, ErrBookingFailed)
	assert.Zero(t, m.Tx.Commits)
	m.Booking.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateBooking_MissingRouteRollsBack(t *testing.T) {
	svc, m := newTestBookingService(t)
	trainID := uuid.New()

	m.Booking.On("PNRExists", mock.Anything, mock.AnythingOfType("string")).Return(false, nil)
	m.Route.On("FindForTrain", mock.Anything, trainID, "Delhi", "Mumbai").Return(nil, nil)

	_, err := svc.CreateBooking(context.Background(), uuid.New(), &BookingDraft{
		Search:     *delhiMumbaiSearch(1),
		Passengers: twoPassengers()[:1],
		Payment:    wizard.PaymentData{TrainID: trainID, SeatClass: entity.SeatClassGeneral, TotalPrice: 500},
		Seats:      []string{"1A"},
	})

	assert.ErrorIs(t, err, ErrBookingFailed)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.True(t, m.Tx.RolledBack)
}
