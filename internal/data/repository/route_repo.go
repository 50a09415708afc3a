package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"train-booking/internal/data/entity"
	"train-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RouteRepository interface {
	// CreateIfNotExists returns false when (train, from, to) already exists
	CreateIfNotExists(ctx context.Context, route *entity.Route) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Route, error)
	FindForTrain(ctx context.Context, trainID uuid.UUID, from, to string) (*entity.Route, error)
	// FindByStations cocokkan nama stasiun case-insensitive, sudah di-join dengan trains
	FindByStations(ctx context.Context, from, to string, limit int) ([]*entity.Route, error)
}

type routeRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewRouteRepository(db database.Querier, log *zap.Logger) RouteRepository {
	return &routeRepository{
		db:  db,
		log: log.With(zap.String("repository", "route")),
	}
}

const routeColumns = `r.id, r.train_id, r.from_station, r.to_station, r.distance,
	r.first_ac_price, r.second_ac_price, r.third_ac_price, r.sleeper_price, r.general_price,
	r.created_at, r.updated_at`

func (r *routeRepository) CreateIfNotExists(ctx context.Context, route *entity.Route) (bool, error) {
	query := `
		INSERT INTO routes (id, train_id, from_station, to_station, distance,
		                    first_ac_price, second_ac_price, third_ac_price, sleeper_price, general_price,
		                    created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (train_id, from_station, to_station) DO NOTHING
	`

	result, err := r.db.Exec(ctx, query,
		route.ID,
		route.TrainID,
		route.FromStation,
		route.ToStation,
		route.Distance,
		route.FirstACPrice,
		route.SecondACPrice,
		route.ThirdACPrice,
		route.SleeperPrice,
		route.GeneralPrice,
		route.CreatedAt,
		route.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create route",
			zap.Error(err),
			zap.String("train_id", route.TrainID.String()),
			zap.String("from", route.FromStation),
			zap.String("to", route.ToStation),
		)
		return false, fmt.Errorf("create route %s-%s: %w", route.FromStation, route.ToStation, err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *routeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Route, error) {
	query := `SELECT ` + routeColumns + ` FROM routes r WHERE r.id = $1`

	route, err := scanRoute(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find route by ID", zap.Error(err), zap.String("route_id", id.String()))
		return nil, fmt.Errorf("find route by ID %s: %w", id.String(), err)
	}
	return route, nil
}

func (r *routeRepository) FindForTrain(ctx context.Context, trainID uuid.UUID, from, to string) (*entity.Route, error) {
	query := `
		SELECT ` + routeColumns + `
		FROM routes r
		WHERE r.train_id = $1
		  AND LOWER(r.from_station) = LOWER($2)
		  AND LOWER(r.to_station) = LOWER($3)
		LIMIT 1
	`

	route, err := scanRoute(r.db.QueryRow(ctx, query, trainID, strings.TrimSpace(from), strings.TrimSpace(to)))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find route for train",
			zap.Error(err),
			zap.String("train_id", trainID.String()),
			zap.String("from", from),
			zap.String("to", to),
		)
		return nil, fmt.Errorf("find route for train %s: %w", trainID.String(), err)
	}
	return route, nil
}

func (r *routeRepository) FindByStations(ctx context.Context, from, to string, limit int) ([]*entity.Route, error) {
	query := `
		SELECT ` + routeColumns + `,
		       t.id, t.name, t.number, t.departure_time, t.arrival_time, t.duration,
		       t.first_ac_seats, t.second_ac_seats, t.third_ac_seats, t.sleeper_seats, t.general_seats,
		       t.created_at, t.updated_at
		FROM routes r
		JOIN trains t ON t.id = r.train_id
		WHERE LOWER(r.from_station) = LOWER($1)
		  AND LOWER(r.to_station) = LOWER($2)
		ORDER BY t.departure_time
		LIMIT $3
	`

	rows, err := r.db.Query(ctx, query, strings.TrimSpace(from), strings.TrimSpace(to), limit)
	if err != nil {
		r.log.Error("Failed to find routes by stations",
			zap.Error(err),
			zap.String("from", from),
			zap.String("to", to),
		)
		return nil, fmt.Errorf("find routes %s-%s: %w", from, to, err)
	}
	defer rows.Close()

	var routes []*entity.Route
	for rows.Next() {
		var route entity.Route
		var train entity.Train
		err := rows.Scan(
			&route.ID,
			&route.TrainID,
			&route.FromStation,
			&route.ToStation,
			&route.Distance,
			&route.FirstACPrice,
			&route.SecondACPrice,
			&route.ThirdACPrice,
			&route.SleeperPrice,
			&route.GeneralPrice,
			&route.CreatedAt,
			&route.UpdatedAt,
			&train.ID,
			&train.Name,
			&train.Number,
			&train.DepartureTime,
			&train.ArrivalTime,
			&train.Duration,
			&train.FirstACSeats,
			&train.SecondACSeats,
			&train.ThirdACSeats,
			&train.SleeperSeats,
			&train.GeneralSeats,
			&train.CreatedAt,
			&train.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan route row", zap.Error(err))
			return nil, fmt.Errorf("scan route row: %w", err)
		}
		route.Train = &train
		routes = append(routes, &route)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate route rows: %w", err)
	}

	return routes, nil
}

func scanRoute(row pgx.Row) (*entity.Route, error) {
	var route entity.Route
	err := row.Scan(
		&route.ID,
		&route.TrainID,
		&route.FromStation,
		&route.ToStation,
		&route.Distance,
		&route.FirstACPrice,
		&route.SecondACPrice,
		&route.ThirdACPrice,
		&route.SleeperPrice,
		&route.GeneralPrice,
		&route.CreatedAt,
		&route.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &route, nil
}
