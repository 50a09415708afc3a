// Package seed mengisi katalog kereta dan rute. Dipanggil saat start-up dan dari
// endpoint admin, tidak pernah dari langkah wizard.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"train-booking/internal/data/entity"
	"train-booking/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultTrains fixture kereta
var DefaultTrains = []entity.Train{
	{
		Name: "Rajdhani Express", Number: "12001",
		DepartureTime: "06:00", ArrivalTime: "14:30", Duration: "8h 30m",
		FirstACSeats: 24, SecondACSeats: 48, ThirdACSeats: 64, SleeperSeats: 0, GeneralSeats: 0,
	},
	{
		Name: "Shatabdi Express", Number: "12002",
		DepartureTime: "09:15", ArrivalTime: "16:45", Duration: "7h 30m",
		FirstACSeats: 18, SecondACSeats: 36, ThirdACSeats: 72, SleeperSeats: 0, GeneralSeats: 90,
	},
	{
		Name: "Duronto Express", Number: "12259",
		DepartureTime: "14:20", ArrivalTime: "21:50", Duration: "7h 30m",
		FirstACSeats: 12, SecondACSeats: 40, ThirdACSeats: 64, SleeperSeats: 72, GeneralSeats: 100,
	},
}

type priceRange struct{ min, max int }

// rentang harga per kelas (rupee)
var priceRanges = map[entity.SeatClass]priceRange{
	entity.SeatClassFirstAC:  {2500, 4000},
	entity.SeatClassSecondAC: {1800, 2500},
	entity.SeatClassThirdAC:  {1200, 1800},
	entity.SeatClassSleeper:  {800, 1200},
	entity.SeatClassGeneral:  {400, 800},
}

var distanceRange = priceRange{200, 1500}

type Seeder struct {
	repo *repository.Repository
	log  *zap.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

func NewSeeder(repo *repository.Repository, rng *rand.Rand, log *zap.Logger) *Seeder {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Seeder{
		repo: repo,
		rng:  rng,
		log:  log.With(zap.String("component", "seeder")),
	}
}

// SeedTrains membuat fixture yang belum ada (berdasarkan nomor kereta)
func (s *Seeder) SeedTrains(ctx context.Context) ([]*entity.Train, error) {
	trains := make([]*entity.Train, 0, len(DefaultTrains))

	for _, fixture := range DefaultTrains {
		existing, err := s.repo.Train.FindByNumber(ctx, fixture.Number)
		if err != nil {
			return nil, fmt.Errorf("seed train %s: %w", fixture.Number, err)
		}
		if existing != nil {
			trains = append(trains, existing)
			continue
		}

		train := fixture
		now := time.Now()
		train.ID = uuid.New()
		train.CreatedAt = now
		train.UpdatedAt = now

		if err := s.repo.Train.Create(ctx, &train); err != nil {
			return nil, fmt.Errorf("seed train %s: %w", fixture.Number, err)
		}
		s.log.Info("Train seeded", zap.String("number", train.Number), zap.String("name", train.Name))
		trains = append(trains, &train)
	}

	return trains, nil
}

// EnsureRoutes membuat rute from→to untuk setiap kereta yang belum punya.
// Mengembalikan jumlah rute baru.
func (s *Seeder) EnsureRoutes(ctx context.Context, from, to string) (int, error) {
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if from == "" || to == "" || strings.EqualFold(from, to) {
		return 0, fmt.Errorf("invalid station pair %q-%q", from, to)
	}

	trains, err := s.SeedTrains(ctx)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, train := range trains {
		route := s.randomRoute(train.ID, from, to)
		ok, err := s.repo.Route.CreateIfNotExists(ctx, route)
		if err != nil {
			return created, fmt.Errorf("seed route %s-%s for %s: %w", from, to, train.Number, err)
		}
		if ok {
			created++
		}
	}

	if created > 0 {
		s.log.Info("Routes seeded", zap.String("from", from), zap.String("to", to), zap.Int("created", created))
	}
	return created, nil
}

// SeedNetwork rute untuk setiap pasangan stasiun berurutan (A→B dan B→A)
func (s *Seeder) SeedNetwork(ctx context.Context, stations []string) (int, error) {
	total := 0
	for i, from := range stations {
		for j, to := range stations {
			if i == j || strings.EqualFold(from, to) {
				continue
			}
			n, err := s.EnsureRoutes(ctx, from, to)
			if err != nil {
				return total, err
			}
			total += n
		}
	}
	return total, nil
}

func (s *Seeder) randomRoute(trainID uuid.UUID, from, to string) *entity.Route {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	return &entity.Route{
		BaseNoDelete:  entity.BaseNoDelete{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		TrainID:       trainID,
		FromStation:   from,
		ToStation:     to,
		Distance:      s.between(distanceRange),
		FirstACPrice:  float64(s.between(priceRanges[entity.SeatClassFirstAC])),
		SecondACPrice: float64(s.between(priceRanges[entity.SeatClassSecondAC])),
		ThirdACPrice:  float64(s.between(priceRanges[entity.SeatClassThirdAC])),
		SleeperPrice:  float64(s.between(priceRanges[entity.SeatClassSleeper])),
		GeneralPrice:  float64(s.between(priceRanges[entity.SeatClassGeneral])),
	}
}

func (s *Seeder) between(r priceRange) int {
	return r.min + s.rng.Intn(r.max-r.min+1)
}
