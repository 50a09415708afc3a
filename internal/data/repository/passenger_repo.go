package repository

import (
	"context"
	"fmt"

	"train-booking/internal/data/entity"
	"train-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PassengerRepository interface {
	Create(ctx context.Context, passenger *entity.Passenger) error
	LinkToBooking(ctx context.Context, bookingID, passengerID uuid.UUID, position int) error
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]entity.Passenger, error)
}

type passengerRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewPassengerRepository(db database.Querier, log *zap.Logger) PassengerRepository {
	return &passengerRepository{
		db:  db,
		log: log.With(zap.String("repository", "passenger")),
	}
}

func (r *passengerRepository) Create(ctx context.Context, p *entity.Passenger) error {
	query := `
		INSERT INTO passengers (id, name, age, gender, id_proof, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query, p.ID, p.Name, p.Age, p.Gender, p.IDProof, p.CreatedAt)
	if err != nil {
		r.log.Error("Failed to create passenger", zap.Error(err), zap.String("name", p.Name))
		return fmt.Errorf("create passenger %s: %w", p.Name, err)
	}
	return nil
}

func (r *passengerRepository) LinkToBooking(ctx context.Context, bookingID, passengerID uuid.UUID, position int) error {
	query := `
		INSERT INTO booking_passengers (booking_id, passenger_id, position)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.Exec(ctx, query, bookingID, passengerID, position)
	if err != nil {
		r.log.Error("Failed to link passenger",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("passenger_id", passengerID.String()),
		)
		return fmt.Errorf("link passenger %s to booking %s: %w", passengerID.String(), bookingID.String(), err)
	}
	return nil
}

func (r *passengerRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]entity.Passenger, error) {
	query := `
		SELECT p.id, p.name, p.age, p.gender, p.id_proof, p.created_at
		FROM passengers p
		JOIN booking_passengers bp ON bp.passenger_id = p.id
		WHERE bp.booking_id = $1
		ORDER BY bp.position
	`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find passengers", zap.Error(err), zap.String("booking_id", bookingID.String()))
		return nil, fmt.Errorf("find passengers for booking %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	var passengers []entity.Passenger
	for rows.Next() {
		var p entity.Passenger
		if err := rows.Scan(&p.ID, &p.Name, &p.Age, &p.Gender, &p.IDProof, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan passenger row: %w", err)
		}
		passengers = append(passengers, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate passenger rows: %w", err)
	}

	return passengers, nil
}
