package usecase

import (
	"train-booking/internal/data/repository"
	"train-booking/pkg/mailer"
	"train-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Wizard  WizardService
	Booking BookingService
	Lookup  LookupService
	Catalog CatalogService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	m mailer.Mailer,
	provisioner RouteProvisioner,
	log *zap.Logger,
) *Service {
	booking := NewBookingService(repo, m, config.App.PublicBaseURL, log)

	return &Service{
		Auth:    NewAuthService(repo, config, log),
		User:    NewUserService(repo.User, log),
		Wizard:  NewWizardService(repo, booking, log),
		Booking: booking,
		Lookup:  NewLookupService(repo, log),
		Catalog: NewCatalogService(provisioner, log),
	}
}
