package usecase

import (
	"context"
	"testing"
	"time"

	"train-booking/internal/data/entity"
	"train-booking/internal/data/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestLookupService(t *testing.T) (*lookupService, *mocks.Set) {
	t.Helper()
	repo, m := mocks.NewRepository(t)
	return &lookupService{
		repo: repo,
		log:  zap.NewNop(),
		now:  func() time.Time { return time.Date(2030, 3, 9, 8, 0, 0, 0, time.UTC) },
	}, m
}

func TestPNRStatus(t *testing.T) {
	t.Run("found for any owner", func(t *testing.T) {
		svc, m := newTestLookupService(t)
		booking := sampleBooking(uuid.New())
		m.Booking.On("FindByPNR", mock.Anything, "AB12CD34EF").Return(booking, nil)
		expectDetail(m, booking)

		resp, err := svc.PNRStatus(context.Background(), " ab12cd34ef ")
		require.NoError(t, err)
		assert.Equal(t, booking.BookingID, resp.BookingID)
		assert.Len(t, resp.Passengers, 1)
	})

	t.Run("not found", func(t *testing.T) {
		svc, m := newTestLookupService(t)
		m.Booking.On("FindByPNR", mock.Anything, "ZZZZZZZZZZ").Return(nil, nil)

		_, err := svc.PNRStatus(context.Background(), "ZZZZZZZZZZ")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.EqualError(t, err, "PNR not found")
	})

	t.Run("malformed", func(t *testing.T) {
		svc, _ := newTestLookupService(t)

		_, err := svc.PNRStatus(context.Background(), "AB-12")
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Fields, "pnr")
	})
}

func TestTrainStatus_CannedPayload(t *testing.T) {
	svc, m := newTestLookupService(t)
	m.Train.On("FindByNumber", mock.Anything, "99999").Return(nil, nil)

	resp, err := svc.TrainStatus(context.Background(), "99999")
	require.NoError(t, err)
	assert.Equal(t, "Rajdhani Express", resp.Name)
	assert.Equal(t, "09 Mar 2030", resp.Date)
	require.Len(t, resp.Stations, 6)
	assert.Equal(t, "NDLS", resp.Stations[0].Code)
	assert.Equal(t, "current", resp.Stations[1].Status)
	assert.Equal(t, "Destination", resp.Stations[5].Departure)
}

func TestTrainStatus_EnrichedByTrainNumber(t *testing.T) {
	svc, m := newTestLookupService(t)
	m.Train.On("FindByNumber", mock.Anything, "12259").
		Return(&entity.Train{Name: "Duronto Express", Number: "12259"}, nil)

	resp, err := svc.TrainStatus(context.Background(), " 12259 ")
	require.NoError(t, err)
	assert.Equal(t, "Duronto Express", resp.Name)
	assert.Equal(t, "12259", resp.Number)
	assert.Len(t, resp.Stations, 6)
}

func TestTrainStatus_EnrichedByPNR(t *testing.T) {
	svc, m := newTestLookupService(t)
	booking := sampleBooking(uuid.New())

	m.Train.On("FindByNumber", mock.Anything, "ab12cd34ef").Return(nil, nil)
	m.Booking.On("FindByPNR", mock.Anything, "AB12CD34EF").Return(booking, nil)
	m.Train.On("FindByID", mock.Anything, booking.TrainID).
		Return(&entity.Train{Name: "Shatabdi Express", Number: "12002"}, nil)

	resp, err := svc.TrainStatus(context.Background(), "ab12cd34ef")
	require.NoError(t, err)
	assert.Equal(t, "12002", resp.Number)
}

func TestTrainStatus_EmptyQuery(t *testing.T) {
	svc, _ := newTestLookupService(t)

	_, err := svc.TrainStatus(context.Background(), "   ")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "query")
}

func TestFindCancellable_RestrictedToOwner(t *testing.T) {
	svc, m := newTestLookupService(t)
	booking := sampleBooking(uuid.New())
	m.Booking.On("FindByPNR", mock.Anything, booking.PNR).Return(booking, nil)

	_, err := svc.FindCancellable(context.Background(), uuid.New(), booking.PNR)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancelBooking_RefundsPayment(t *testing.T) {
	svc, m := newTestLookupService(t)
	userID := uuid.New()
	booking := sampleBooking(userID)

	m.Booking.On("FindByBookingID", mock.Anything, booking.BookingID).Return(booking, nil)
	m.Booking.On("Cancel", mock.Anything, booking.ID).Return(true, nil).Once()
	m.Payment.On("FindByBookingID", mock.Anything, booking.ID).
		Return(&entity.Payment{BookingID: booking.ID, Amount: 2400, Status: entity.PaymentStatusCompleted}, nil)
	m.Payment.On("UpdateStatusByBookingID", mock.Anything, booking.ID, entity.PaymentStatusRefunded).Return(nil).Once()

	resp, err := svc.CancelBooking(context.Background(), userID, booking.BookingID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, resp.Status)
	assert.Equal(t, entity.PaymentStatusRefunded, resp.PaymentStatus)
	assert.Equal(t, 2400.0, resp.RefundAmount)
	assert.Equal(t, 1, m.Tx.Commits)
}

func TestCancelBooking_SecondCancellationRejected(t *testing.T) {
	svc, m := newTestLookupService(t)
	userID := uuid.New()
	booking := sampleBooking(userID)
	booking.Status = entity.BookingStatusCancelled

	m.Booking.On("FindByBookingID", mock.Anything, booking.BookingID).Return(booking, nil)

	_, err := svc.CancelBooking(context.Background(), userID, booking.BookingID)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
	assert.Zero(t, m.Tx.Commits)
	m.Payment.AssertNotCalled(t, "UpdateStatusByBookingID", mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelBooking_LostRaceIsRejected(t *testing.T) {
	svc, m := newTestLookupService(t)
	userID := uuid.New()
	booking := sampleBooking(userID)

	m.Booking.On("FindByBookingID", mock.Anything, booking.BookingID).Return(booking, nil)
	m.Booking.On("Cancel", mock.Anything, booking.ID).Return(false, nil)

	_, err := svc.CancelBooking(context.Background(), userID, booking.BookingID)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
	assert.True(t, m.Tx.RolledBack)
}

func TestCancelBooking_OtherUser(t *testing.T) {
	svc, m := newTestLookupService(t)
	booking := sampleBooking(uuid.New())
	m.Booking.On("FindByBookingID", mock.Anything, booking.BookingID).Return(booking, nil)

	_, err := svc.CancelBooking(context.Background(), uuid.New(), booking.BookingID)
	assert.ErrorIs(t, err, ErrNotFound)
	m.Booking.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything)
}
