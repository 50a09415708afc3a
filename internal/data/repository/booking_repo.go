package repository

import (
	"context"
	"errors"
	"fmt"

	"train-booking/internal/data/entity"
	"train-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByBookingID(ctx context.Context, bookingID string) (*entity.Booking, error)
	FindByPNR(ctx context.Context, pnr string) (*entity.Booking, error)
	PNRExists(ctx context.Context, pnr string) (bool, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)

	// Cancel returns false when the booking was already cancelled
	Cancel(ctx context.Context, id uuid.UUID) (bool, error)
}

type bookingRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewBookingRepository(db database.Querier, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, booking_id, pnr, user_id, train_id, route_id, travel_date,
	seat_class, booking_type, total_amount, status, created_at, updated_at`

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.BookingID,
		booking.PNR,
		booking.UserID,
		booking.TrainID,
		booking.RouteID,
		booking.TravelDate,
		booking.SeatClass,
		booking.BookingType,
		booking.TotalAmount,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.BookingID),
			zap.String("user_id", booking.UserID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.BookingID, err)
	}

	return nil
}

func (r *bookingRepository) FindByBookingID(ctx context.Context, bookingID string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, bookingID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("find booking %s: %w", bookingID, err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByPNR(ctx context.Context, pnr string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE pnr = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, pnr))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by PNR", zap.Error(err), zap.String("pnr", pnr))
		return nil, fmt.Errorf("find booking by PNR %s: %w", pnr, err)
	}

	return booking, nil
}

func (r *bookingRepository) PNRExists(ctx context.Context, pnr string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM bookings WHERE pnr = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, pnr).Scan(&exists); err != nil {
		r.log.Error("Failed to check PNR", zap.Error(err), zap.String("pnr", pnr))
		return false, fmt.Errorf("check PNR %s: %w", pnr, err)
	}

	return exists, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE user_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count bookings by user ID %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) Cancel(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE bookings
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status <> $2
	`

	result, err := r.db.Exec(ctx, query, id, entity.BookingStatusCancelled)
	if err != nil {
		r.log.Error("Failed to cancel booking", zap.Error(err), zap.String("id", id.String()))
		return false, fmt.Errorf("cancel booking %s: %w", id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var b entity.Booking
	err := row.Scan(
		&b.ID,
		&b.BookingID,
		&b.PNR,
		&b.UserID,
		&b.TrainID,
		&b.RouteID,
		&b.TravelDate,
		&b.SeatClass,
		&b.BookingType,
		&b.TotalAmount,
		&b.Status,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
