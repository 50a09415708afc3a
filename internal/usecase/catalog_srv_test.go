package usecase

import (
	"context"
	"errors"
	"testing"

	"train-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubProvisioner struct {
	calls   [][2]string
	created int
	err     error
}

func (p *stubProvisioner) EnsureRoutes(_ context.Context, from, to string) (int, error) {
	p.calls = append(p.calls, [2]string{from, to})
	return p.created, p.err
}

func TestProvisionRoutes(t *testing.T) {
	p := &stubProvisioner{created: 3}
	svc := NewCatalogService(p, zap.NewNop())

	resp, err := svc.ProvisionRoutes(context.Background(), &request.ProvisionRoutesRequest{FromStation: " Pune ", ToStation: "Goa"})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Created)
	assert.Equal(t, [][2]string{{"Pune", "Goa"}}, p.calls)
}

func TestProvisionRoutes_SameStation(t *testing.T) {
	p := &stubProvisioner{}
	svc := NewCatalogService(p, zap.NewNop())

	_, err := svc.ProvisionRoutes(context.Background(), &request.ProvisionRoutesRequest{FromStation: "Goa", ToStation: "GOA"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Empty(t, p.calls)
}

func TestProvisionRoutes_SeederFailure(t *testing.T) {
	boom := errors.New("db down")
	svc := NewCatalogService(&stubProvisioner{err: boom}, zap.NewNop())

	_, err := svc.ProvisionRoutes(context.Background(), &request.ProvisionRoutesRequest{FromStation: "Pune", ToStation: "Goa"})
	assert.ErrorIs(t, err, boom)
}
