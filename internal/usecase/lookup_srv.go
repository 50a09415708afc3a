package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"train-booking/internal/data/entity"
	"train-booking/internal/data/repository"
	"train-booking/internal/dto/request"
	"train-booking/internal/dto/response"
	"train-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type LookupService interface {
	PNRStatus(ctx context.Context, pnr string) (*response.BookingDetailResponse, error)
	TrainStatus(ctx context.Context, query string) (*response.TrainStatusResponse, error)
	FindCancellable(ctx context.Context, userID uuid.UUID, pnr string) (*response.BookingDetailResponse, error)
	CancelBooking(ctx context.Context, userID uuid.UUID, bookingID string) (*response.CancellationResponse, error)
}

type lookupService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewLookupService(repo *repository.Repository, log *zap.Logger) LookupService {
	return &lookupService{
		repo: repo,
		log:  log.With(zap.String("service", "lookup")),
		now:  time.Now,
	}
}

// ==================== PNR STATUS ====================

func (s *lookupService) PNRStatus(ctx context.Context, pnr string) (*response.BookingDetailResponse, error) {
	req := &request.PNRRequest{PNR: normalizePNR(pnr)}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, newValidationError("Validation failed", errs)
	}

	booking, err := s.repo.Booking.FindByPNR(ctx, req.PNR)
	if err != nil {
		return nil, fmt.Errorf("get PNR status: %w", err)
	}
	if booking == nil {
		return nil, notFound("PNR")
	}

	detail, err := loadBookingDetail(ctx, s.repo, booking)
	if err != nil {
		return nil, err
	}

	resp := response.BookingDetailToResponse(detail)
	return &resp, nil
}

// ==================== TRAIN STATUS ====================

// runningStations jadwal contoh Rajdhani New Delhi -> Mumbai Central
var runningStations = []response.StationStatus{
	{Name: "New Delhi", Code: "NDLS", Arrival: "Source", Departure: "06:00", Distance: "0 km", Status: "completed"},
	{Name: "Mathura Junction", Code: "MTJ", Arrival: "07:45", Departure: "07:47", Distance: "145 km", Status: "current"},
	{Name: "Agra Cantt", Code: "AGC", Arrival: "08:30", Departure: "08:32", Distance: "200 km", Status: "upcoming"},
	{Name: "Jhansi Junction", Code: "JHS", Arrival: "10:15", Departure: "10:20", Distance: "415 km", Status: "upcoming"},
	{Name: "Bhopal Junction", Code: "BPL", Arrival: "12:30", Departure: "12:35", Distance: "680 km", Status: "upcoming"},
	{Name: "Mumbai Central", Code: "BCT", Arrival: "14:30", Departure: "Destination", Distance: "1384 km", Status: "upcoming"},
}

func (s *lookupService) TrainStatus(ctx context.Context, query string) (*response.TrainStatusResponse, error) {
	req := &request.TrainStatusRequest{Query: strings.TrimSpace(query)}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, newValidationError("Validation failed", errs)
	}

	resp := &response.TrainStatusResponse{
		Name:           "Rajdhani Express",
		Number:         "12001",
		Date:           s.now().Format("02 Jan 2006"),
		Status:         "Running On Time",
		CurrentStation: "Mathura Junction",
		NextStation:    "Agra Cantt",
		Delay:          0,
		Stations:       append([]response.StationStatus(nil), runningStations...),
	}

	// status berjalan tetap contoh, hanya identitas kereta yang disesuaikan
	train, err := s.resolveTrain(ctx, req.Query)
	if err != nil {
		s.log.Warn("Train status lookup failed, using default train", zap.Error(err), zap.String("query", req.Query))
	} else if train != nil {
		resp.Name = train.Name
		resp.Number = train.Number
	}

	return resp, nil
}

func (s *lookupService) resolveTrain(ctx context.Context, query string) (*entity.Train, error) {
	train, err := s.repo.Train.FindByNumber(ctx, query)
	if err != nil || train != nil {
		return train, err
	}

	pnr := normalizePNR(query)
	if !utils.IsPNR(pnr) {
		return nil, nil
	}

	booking, err := s.repo.Booking.FindByPNR(ctx, pnr)
	if err != nil || booking == nil {
		return nil, err
	}
	return s.repo.Train.FindByID(ctx, booking.TrainID)
}

// ==================== CANCELLATION ====================

func (s *lookupService) FindCancellable(ctx context.Context, userID uuid.UUID, pnr string) (*response.BookingDetailResponse, error) {
	req := &request.PNRRequest{PNR: normalizePNR(pnr)}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, newValidationError("Validation failed", errs)
	}

	booking, err := s.repo.Booking.FindByPNR(ctx, req.PNR)
	if err != nil {
		return nil, fmt.Errorf("find booking for cancellation: %w", err)
	}
	// milik user lain = tidak ditemukan
	if booking == nil || booking.UserID != userID {
		return nil, notFound("PNR")
	}

	detail, err := loadBookingDetail(ctx, s.repo, booking)
	if err != nil {
		return nil, err
	}

	resp := response.BookingDetailToResponse(detail)
	return &resp, nil
}

func (s *lookupService) CancelBooking(ctx context.Context, userID uuid.UUID, bookingID string) (*response.CancellationResponse, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return nil, newValidationError("Validation failed", map[string]string{"booking_id": "This field is required"})
	}

	booking, err := s.repo.Booking.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil || booking.UserID != userID {
		return nil, notFound("booking")
	}
	if booking.Status == entity.BookingStatusCancelled {
		return nil, ErrAlreadyCancelled
	}

	resp := &response.CancellationResponse{
		BookingID: booking.BookingID,
		PNR:       booking.PNR,
		Status:    entity.BookingStatusCancelled,
		Message:   "Booking cancelled successfully. Refund will be processed within 5-7 business days.",
	}

	err = s.repo.Tx.WithinTransaction(ctx, func(tx *repository.Repository) error {
		changed, err := tx.Booking.Cancel(ctx, booking.ID)
		if err != nil {
			return err
		}
		if !changed {
			return ErrAlreadyCancelled
		}

		payment, err := tx.Payment.FindByBookingID(ctx, booking.ID)
		if err != nil {
			return err
		}
		if payment == nil {
			return nil
		}
		if err := tx.Payment.UpdateStatusByBookingID(ctx, booking.ID, entity.PaymentStatusRefunded); err != nil {
			return err
		}
		resp.PaymentStatus = entity.PaymentStatusRefunded
		resp.RefundAmount = RoundMoney(payment.Amount)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", booking.BookingID),
		zap.String("user_id", userID.String()),
		zap.Float64("refund_amount", resp.RefundAmount))

	return resp, nil
}

func normalizePNR(pnr string) string {
	return strings.ToUpper(strings.TrimSpace(pnr))
}
