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

type TrainRepository interface {
	Create(ctx context.Context, train *entity.Train) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Train, error)
	FindByNumber(ctx context.Context, number string) (*entity.Train, error)
	FindAll(ctx context.Context) ([]*entity.Train, error)
}

type trainRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewTrainRepository(db database.Querier, log *zap.Logger) TrainRepository {
	return &trainRepository{
		db:  db,
		log: log.With(zap.String("repository", "train")),
	}
}

const trainColumns = `id, name, number, departure_time, arrival_time, duration,
	first_ac_seats, second_ac_seats, third_ac_seats, sleeper_seats, general_seats,
	created_at, updated_at`

func (r *trainRepository) Create(ctx context.Context, train *entity.Train) error {
	query := `
		INSERT INTO trains (` + trainColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.Exec(ctx, query,
		train.ID,
		train.Name,
		train.Number,
		train.DepartureTime,
		train.ArrivalTime,
		train.Duration,
		train.FirstACSeats,
		train.SecondACSeats,
		train.ThirdACSeats,
		train.SleeperSeats,
		train.GeneralSeats,
		train.CreatedAt,
		train.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create train", zap.Error(err), zap.String("number", train.Number))
		return fmt.Errorf("create train %s: %w", train.Number, err)
	}

	return nil
}

func (r *trainRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Train, error) {
	query := `SELECT ` + trainColumns + ` FROM trains WHERE id = $1`

	train, err := scanTrain(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find train by ID", zap.Error(err), zap.String("train_id", id.String()))
		return nil, fmt.Errorf("find train by ID %s: %w", id.String(), err)
	}
	return train, nil
}

func (r *trainRepository) FindByNumber(ctx context.Context, number string) (*entity.Train, error) {
	query := `SELECT ` + trainColumns + ` FROM trains WHERE number = $1`

	train, err := scanTrain(r.db.QueryRow(ctx, query, number))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find train by number", zap.Error(err), zap.String("number", number))
		return nil, fmt.Errorf("find train by number %s: %w", number, err)
	}
	return train, nil
}

func (r *trainRepository) FindAll(ctx context.Context) ([]*entity.Train, error) {
	query := `SELECT ` + trainColumns + ` FROM trains ORDER BY departure_time`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list trains", zap.Error(err))
		return nil, fmt.Errorf("find all trains: %w", err)
	}
	defer rows.Close()

	var trains []*entity.Train
	for rows.Next() {
		train, err := scanTrain(rows)
		if err != nil {
			return nil, fmt.Errorf("scan train row: %w", err)
		}
		trains = append(trains, train)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate train rows: %w", err)
	}

	return trains, nil
}

func scanTrain(row pgx.Row) (*entity.Train, error) {
	var t entity.Train
	err := row.Scan(
		&t.ID,
		&t.Name,
		&t.Number,
		&t.DepartureTime,
		&t.ArrivalTime,
		&t.Duration,
		&t.FirstACSeats,
		&t.SecondACSeats,
		&t.ThirdACSeats,
		&t.SleeperSeats,
		&t.GeneralSeats,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
