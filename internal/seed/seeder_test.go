package seed

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"train-booking/internal/data/entity"
	"train-booking/internal/data/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSeedTrains_CreatesOnlyMissing(t *testing.T) {
	repo, m := mocks.NewRepository(t)
	seeder := NewSeeder(repo, rand.New(rand.NewSource(1)), zap.NewNop())
	ctx := context.Background()

	existing := DefaultTrains[0]
	existing.ID = uuid.New()

	m.Train.On("FindByNumber", ctx, "12001").Return(&existing, nil)
	m.Train.On("FindByNumber", ctx, "12002").Return(nil, nil)
	m.Train.On("FindByNumber", ctx, "12259").Return(nil, nil)
	m.Train.On("Create", ctx, mock.AnythingOfType("*entity.Train")).Return(nil).Twice()

	trains, err := seeder.SeedTrains(ctx)
	require.NoError(t, err)
	require.Len(t, trains, 3)
	assert.Equal(t, existing.ID, trains[0].ID)
	assert.NotEqual(t, uuid.Nil, trains[1].ID)
	assert.Equal(t, "Duronto Express", trains[2].Name)
}

func TestEnsureRoutes_PricesWithinRanges(t *testing.T) {
	repo, m := mocks.NewRepository(t)
	seeder := NewSeeder(repo, rand.New(rand.NewSource(42)), zap.NewNop())
	ctx := context.Background()

	for _, fixture := range DefaultTrains {
		train := fixture
		train.ID = uuid.New()
		m.Train.On("FindByNumber", ctx, fixture.Number).Return(&train, nil)
	}

	var routes []*entity.Route
	m.Route.On("CreateIfNotExists", ctx, mock.AnythingOfType("*entity.Route")).
		Run(func(args mock.Arguments) {
			routes = append(routes, args.Get(1).(*entity.Route))
		}).
		Return(true, nil)

	created, err := seeder.EnsureRoutes(ctx, " Delhi ", "Mumbai")
	require.NoError(t, err)
	assert.Equal(t, 3, created)
	require.Len(t, routes, 3)

	for _, r := range routes {
		assert.Equal(t, "Delhi", r.FromStation)
		assert.Equal(t, "Mumbai", r.ToStation)
		assert.GreaterOrEqual(t, r.Distance, 200)
		assert.LessOrEqual(t, r.Distance, 1500)
		for class, pr := range priceRanges {
			price := r.PriceFor(class)
			assert.GreaterOrEqual(t, price, float64(pr.min), class)
			assert.LessOrEqual(t, price, float64(pr.max), class)
		}
	}
}

func TestEnsureRoutes_RejectsSameStation(t *testing.T) {
	repo, _ := mocks.NewRepository(t)
	seeder := NewSeeder(repo, nil, zap.NewNop())

	_, err := seeder.EnsureRoutes(context.Background(), "Delhi", "delhi")
	assert.Error(t, err)
}

func TestSeedNetwork_AllOrderedPairs(t *testing.T) {
	repo, m := mocks.NewRepository(t)
	seeder := NewSeeder(repo, rand.New(rand.NewSource(7)), zap.NewNop())
	ctx := context.Background()

	for _, fixture := range DefaultTrains {
		train := fixture
		train.ID = uuid.New()
		m.Train.On("FindByNumber", ctx, fixture.Number).Return(&train, nil)
	}

	pairs := map[string]int{}
	m.Route.On("CreateIfNotExists", ctx, mock.AnythingOfType("*entity.Route")).
		Run(func(args mock.Arguments) {
			r := args.Get(1).(*entity.Route)
			pairs[r.FromStation+"->"+r.ToStation]++
		}).
		Return(false, nil)

	created, err := seeder.SeedNetwork(ctx, []string{"Delhi", "Mumbai", "Chennai"})
	require.NoError(t, err)
	assert.Equal(t, 0, created)
	assert.Len(t, pairs, 6)
	assert.Equal(t, 3, pairs["Mumbai->Delhi"])
}

func TestSeedTrains_PropagatesRepositoryError(t *testing.T) {
	repo, m := mocks.NewRepository(t)
	seeder := NewSeeder(repo, nil, zap.NewNop())
	ctx := context.Background()

	m.Train.On("FindByNumber", ctx, "12001").Return(nil, errors.New("db down"))

	_, err := seeder.SeedTrains(ctx)
	assert.ErrorContains(t, err, "db down")
}
