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

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Payment, error)
	UpdateStatusByBookingID(ctx context.Context, bookingID uuid.UUID, status entity.PaymentStatus) error
}

type paymentRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewPaymentRepository(db database.Querier, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, booking_id, amount, payment_method, transaction_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.BookingID,
		payment.Amount,
		payment.Method,
		payment.TransactionID,
		payment.Status,
		payment.CreatedAt,
		payment.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("booking_id", payment.BookingID.String()),
			zap.String("transaction_id", payment.TransactionID),
		)
		return fmt.Errorf("create payment %s: %w", payment.TransactionID, err)
	}

	return nil
}

func (r *paymentRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Payment, error) {
	query := `
		SELECT id, booking_id, amount, payment_method, transaction_id, status, created_at, updated_at
		FROM payments
		WHERE booking_id = $1
	`

	var p entity.Payment
	err := r.db.QueryRow(ctx, query, bookingID).Scan(
		&p.ID,
		&p.BookingID,
		&p.Amount,
		&p.Method,
		&p.TransactionID,
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment", zap.Error(err), zap.String("booking_id", bookingID.String()))
		return nil, fmt.Errorf("find payment for booking %s: %w", bookingID.String(), err)
	}

	return &p, nil
}

func (r *paymentRepository) UpdateStatusByBookingID(ctx context.Context, bookingID uuid.UUID, status entity.PaymentStatus) error {
	query := `UPDATE payments SET status = $2, updated_at = NOW() WHERE booking_id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, status)
	if err != nil {
		r.log.Error("Failed to update payment status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update payment status for booking %s: %w", bookingID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("payment for booking %s not found", bookingID.String())
	}

	return nil
}
