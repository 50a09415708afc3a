package usecase

import (
	"context"
	"fmt"
	"strings"

	"train-booking/internal/dto/request"
	"train-booking/internal/dto/response"
	"train-booking/pkg/utils"

	"go.uber.org/zap"
)

// RouteProvisioner dipenuhi oleh seed.Seeder
type RouteProvisioner interface {
	EnsureRoutes(ctx context.Context, from, to string) (int, error)
}

type CatalogService interface {
	ProvisionRoutes(ctx context.Context, req *request.ProvisionRoutesRequest) (*response.ProvisionRoutesResponse, error)
}

type catalogService struct {
	provisioner RouteProvisioner
	log         *zap.Logger
}

func NewCatalogService(provisioner RouteProvisioner, log *zap.Logger) CatalogService {
	return &catalogService{
		provisioner: provisioner,
		log:         log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) ProvisionRoutes(ctx context.Context, req *request.ProvisionRoutesRequest) (*response.ProvisionRoutesResponse, error) {
	req.FromStation = strings.TrimSpace(req.FromStation)
	req.ToStation = strings.TrimSpace(req.ToStation)

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, newValidationError("Validation failed", errs)
	}
	if strings.EqualFold(req.FromStation, req.ToStation) {
		return nil, newValidationError("Validation failed", map[string]string{
			"to_station": "Must differ from from_station",
		})
	}

	created, err := s.provisioner.EnsureRoutes(ctx, req.FromStation, req.ToStation)
	if err != nil {
		return nil, fmt.Errorf("provision routes %s -> %s: %w", req.FromStation, req.ToStation, err)
	}

	s.log.Info("Routes provisioned",
		zap.String("from", req.FromStation),
		zap.String("to", req.ToStation),
		zap.Int("created", created))

	return &response.ProvisionRoutesResponse{
		FromStation: req.FromStation,
		ToStation:   req.ToStation,
		Created:     created,
	}, nil
}
