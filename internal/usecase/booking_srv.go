package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"train-booking/internal/data/entity"
	"train-booking/internal/data/repository"
	"train-booking/internal/dto/response"
	"train-booking/internal/wizard"
	"train-booking/pkg/mailer"
	"train-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	bookingsPerPage = 10
	maxPNRAttempts  = 5
	qrCodeSize      = 256
)

// BookingDraft semua data wizard yang dibutuhkan untuk commit
type BookingDraft struct {
	Search     wizard.SearchData
	Passengers []wizard.PassengerData
	Payment    wizard.PaymentData
	Seats      []string
}

type BookingService interface {
	// CreateBooking menulis booking, penumpang, kursi dan pembayaran dalam satu transaksi
	CreateBooking(ctx context.Context, userID uuid.UUID, draft *BookingDraft) (*entity.Booking, error)
	GetETicket(ctx context.Context, userID uuid.UUID, bookingID string) (*response.BookingDetailResponse, error)
	GetETicketQR(ctx context.Context, userID uuid.UUID, bookingID string) ([]byte, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID, page int) (*response.PaginatedResponse[response.BookingResponse], error)
}

type bookingService struct {
	repo    *repository.Repository
	mailer  mailer.Mailer
	baseURL string
	log     *zap.Logger
}

func NewBookingService(repo *repository.Repository, m mailer.Mailer, baseURL string, log *zap.Logger) BookingService {
	return &bookingService{
		repo:    repo,
		mailer:  m,
		baseURL: baseURL,
		log:     log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID uuid.UUID, draft *BookingDraft) (*entity.Booking, error) {
	if len(draft.Seats) != len(draft.Passengers) || len(draft.Passengers) == 0 {
		return nil, fmt.Errorf("%w: %d seats for %d passengers", ErrBookingFailed, len(draft.Seats), len(draft.Passengers))
	}

	travelDate, err := draft.Search.Date()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid travel date: %w", ErrBookingFailed, err)
	}

	pnr, err := s.generatePNR(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBookingFailed, err)
	}

	bookingType := draft.Search.BookingType
	if bookingType == "" {
		bookingType = entity.BookingTypeRegular
	}

	now := time.Now()
	booking := &entity.Booking{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		BookingID:    utils.GenerateBookingID(),
		PNR:          pnr,
		UserID:       userID,
		TrainID:      draft.Payment.TrainID,
		TravelDate:   travelDate,
		SeatClass:    draft.Payment.SeatClass,
		BookingType:  bookingType,
		TotalAmount:  RoundMoney(draft.Payment.TotalPrice),
		Status:       entity.BookingStatusConfirmed,
	}

	var route *entity.Route
	err = s.repo.Tx.WithinTransaction(ctx, func(tx *repository.Repository) error {
		// 1. Resolve route
		route, err = tx.Route.FindForTrain(ctx, draft.Payment.TrainID, draft.Search.FromStation, draft.Search.ToStation)
		if err != nil {
			return err
		}
		if route == nil {
			return notFound("route")
		}
		booking.RouteID = route.ID

		// 2. Booking
		if err := tx.Booking.Create(ctx, booking); err != nil {
			return err
		}

		// 3. Penumpang i <-> kursi i
		coach := booking.SeatClass.Coach()
		for i, p := range draft.Passengers {
			passenger := &entity.Passenger{
				BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
				Name:       strings.TrimSpace(p.Name),
				Age:        p.Age,
				Gender:     p.Gender,
				IDProof:    strings.TrimSpace(p.IDProof),
			}
			if err := tx.Passenger.Create(ctx, passenger); err != nil {
				return err
			}
			if err := tx.Passenger.LinkToBooking(ctx, booking.ID, passenger.ID, i); err != nil {
				return err
			}

			seatNumber := draft.Seats[i]
			seat := &entity.Seat{
				BaseSimple:  entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
				BookingID:   booking.ID,
				PassengerID: passenger.ID,
				SeatNumber:  seatNumber,
				Coach:       coach,
				SeatType:    entity.SeatTypeFor(seatNumber),
			}
			if err := tx.Seat.Create(ctx, seat); err != nil {
				return err
			}
		}

		// 4. Payment
		payment := &entity.Payment{
			BaseNoDelete:  entity.BaseNoDelete{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			BookingID:     booking.ID,
			Amount:        booking.TotalAmount,
			Method:        draft.Payment.PaymentMethod,
			TransactionID: utils.GenerateTransactionID(),
			Status:        entity.PaymentStatusCompleted,
		}
		return tx.Payment.Create(ctx, payment)
	})
	if err != nil {
		s.log.Error("Booking commit failed",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("train_id", draft.Payment.TrainID.String()),
		)
		return nil, fmt.Errorf("%w: %w", ErrBookingFailed, err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.BookingID),
		zap.String("pnr", booking.PNR),
		zap.String("user_id", userID.String()),
		zap.Int("passengers", len(draft.Passengers)),
		zap.Float64("total_amount", booking.TotalAmount),
	)

	if s.mailer != nil && s.mailer.Enabled() {
		go s.sendConfirmation(*booking, *route, draft)
	}

	return booking, nil
}

func (s *bookingService) GetETicket(ctx context.Context, userID uuid.UUID, bookingID string) (*response.BookingDetailResponse, error) {
	booking, err := s.findOwned(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}

	detail, err := loadBookingDetail(ctx, s.repo, booking)
	if err != nil {
		return nil, err
	}

	resp := response.BookingDetailToResponse(detail)
	resp.QRCodeURL = fmt.Sprintf("/e-ticket/%s/qr.png", booking.BookingID)
	return &resp, nil
}

func (s *bookingService) GetETicketQR(ctx context.Context, userID uuid.UUID, bookingID string) ([]byte, error) {
	booking, err := s.findOwned(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}

	train, err := s.repo.Train.FindByID(ctx, booking.TrainID)
	if err != nil {
		return nil, fmt.Errorf("get train for QR: %w", err)
	}
	trainNumber := ""
	if train != nil {
		trainNumber = train.Number
	}

	content := strings.Join([]string{
		booking.PNR,
		booking.BookingID,
		trainNumber,
		booking.TravelDate.Format(wizard.DateLayout),
	}, "|")

	png, err := utils.GenerateQRCode(content, qrCodeSize)
	if err != nil {
		return nil, fmt.Errorf("generate QR for %s: %w", booking.BookingID, err)
	}
	return png, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID uuid.UUID, page int) (*response.PaginatedResponse[response.BookingResponse], error) {
	if page < 1 {
		page = 1
	}

	bookings, err := s.repo.Booking.FindByUserID(ctx, userID, bookingsPerPage, utils.CalculateOffset(page, bookingsPerPage))
	if err != nil {
		return nil, fmt.Errorf("get user bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count user bookings: %w", err)
	}

	items := make([]response.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, response.BookingToResponse(b))
	}

	return response.NewPaginatedResponse(items, page, bookingsPerPage, total), nil
}

// ==================== HELPER METHODS ====================

// findOwned booking milik user lain diperlakukan sama dengan tidak ada
func (s *bookingService) findOwned(ctx context.Context, userID uuid.UUID, bookingID string) (*entity.Booking, error) {
	booking, err := s.repo.Booking.FindByBookingID(ctx, strings.TrimSpace(bookingID))
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil || booking.UserID != userID {
		return nil, notFound("booking")
	}
	return booking, nil
}

func (s *bookingService) generatePNR(ctx context.Context) (string, error) {
	for i := 0; i < maxPNRAttempts; i++ {
		pnr := utils.GeneratePNR()
		exists, err := s.repo.Booking.PNRExists(ctx, pnr)
		if err != nil {
			return "", err
		}
		if !exists {
			return pnr, nil
		}
	}
	return "", errors.New("could not allocate a unique PNR")
}

func (s *bookingService) sendConfirmation(booking entity.Booking, route entity.Route, draft *BookingDraft) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	user, err := s.repo.User.FindByID(ctx, booking.UserID)
	if err != nil || user == nil {
		s.log.Warn("Skip confirmation email, user not found", zap.String("booking_id", booking.BookingID))
		return
	}

	data := mailer.BookingConfirmation{
		Username:      user.Username,
		BookingID:     booking.BookingID,
		PNR:           booking.PNR,
		FromStation:   route.FromStation,
		ToStation:     route.ToStation,
		TravelDate:    booking.TravelDate.Format("02 Jan 2006"),
		SeatClass:     booking.SeatClass.Label(),
		Seats:         strings.Join(draft.Seats, ", "),
		TotalAmount:   booking.TotalAmount,
		PaymentMethod: string(draft.Payment.PaymentMethod),
		TicketURL:     s.baseURL + wizard.ETicketPath(booking.BookingID),
	}
	if train, err := s.repo.Train.FindByID(ctx, booking.TrainID); err == nil && train != nil {
		data.TrainName = train.Name
		data.TrainNumber = train.Number
	}

	if err := s.mailer.SendBookingConfirmation(ctx, user.Email, data); err != nil {
		s.log.Error("Failed to send confirmation email", zap.Error(err), zap.String("booking_id", booking.BookingID))
	}
}

// loadBookingDetail rakit booking + kereta + rute + penumpang + kursi + pembayaran
func loadBookingDetail(ctx context.Context, repo *repository.Repository, booking *entity.Booking) (*entity.BookingDetail, error) {
	detail := &entity.BookingDetail{Booking: *booking}

	train, err := repo.Train.FindByID(ctx, booking.TrainID)
	if err != nil {
		return nil, fmt.Errorf("load train: %w", err)
	}
	if train != nil {
		detail.Train = *train
	}

	route, err := repo.Route.FindByID(ctx, booking.RouteID)
	if err != nil {
		return nil, fmt.Errorf("load route: %w", err)
	}
	if route != nil {
		detail.Route = *route
	}

	if detail.Passengers, err = repo.Passenger.FindByBookingID(ctx, booking.ID); err != nil {
		return nil, fmt.Errorf("load passengers: %w", err)
	}

	if detail.Seats, err = repo.Seat.FindByBookingID(ctx, booking.ID); err != nil {
		return nil, fmt.Errorf("load seats: %w", err)
	}

	if detail.Payment, err = repo.Payment.FindByBookingID(ctx, booking.ID); err != nil {
		return nil, fmt.Errorf("load payment: %w", err)
	}

	return detail, nil
}
