package repository

import (
	"context"
	"fmt"

	"train-booking/internal/data/entity"
	"train-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SeatRepository interface {
	Create(ctx context.Context, seat *entity.Seat) error
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]entity.Seat, error)
}

type seatRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewSeatRepository(db database.Querier, log *zap.Logger) SeatRepository {
	return &seatRepository{
		db:  db,
		log: log.With(zap.String("repository", "seat")),
	}
}

func (r *seatRepository) Create(ctx context.Context, seat *entity.Seat) error {
	query := `
		INSERT INTO seats (id, booking_id, passenger_id, seat_number, coach, seat_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		seat.ID,
		seat.BookingID,
		seat.PassengerID,
		seat.SeatNumber,
		seat.Coach,
		seat.SeatType,
		seat.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create seat",
			zap.Error(err),
			zap.String("booking_id", seat.BookingID.String()),
			zap.String("seat_number", seat.SeatNumber),
		)
		return fmt.Errorf("create seat %s: %w", seat.SeatNumber, err)
	}

	return nil
}

func (r *seatRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]entity.Seat, error) {
	query := `
		SELECT s.id, s.booking_id, s.passenger_id, s.seat_number, s.coach, s.seat_type, s.created_at
		FROM seats s
		JOIN booking_passengers bp ON bp.booking_id = s.booking_id AND bp.passenger_id = s.passenger_id
		WHERE s.booking_id = $1
		ORDER BY bp.position
	`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find seats", zap.Error(err), zap.String("booking_id", bookingID.String()))
		return nil, fmt.Errorf("find seats for booking %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	var seats []entity.Seat
	for rows.Next() {
		var s entity.Seat
		err := rows.Scan(&s.ID, &s.BookingID, &s.PassengerID, &s.SeatNumber, &s.Coach, &s.SeatType, &s.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan seat row: %w", err)
		}
		seats = append(seats, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate seat rows: %w", err)
	}

	return seats, nil
}
