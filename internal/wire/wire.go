package wire

import (
	"net/http"
	"strings"

	"train-booking/internal/adaptor"
	"train-booking/internal/data/repository"
	"train-booking/internal/usecase"
	"train-booking/pkg/mailer"
	"train-booking/pkg/middleware"
	"train-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring menginisialisasi semua dependencies
func Wiring(
	repo *repository.Repository,
	config *utils.Config,
	m mailer.Mailer,
	provisioner usecase.RouteProvisioner,
	logger *zap.Logger,
) *App {
	// Initialize services dan handlers
	service := usecase.NewService(repo, config, m, provisioner, logger)
	handler := adaptor.NewHandler(service, logger)

	// Setup router
	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	auth := middleware.AuthSession(repo.Session, logger)

	// Apply routes
	wireAuth(r, handler.Auth, auth)
	wireUser(r, handler.User, auth)
	wireWizard(r, handler.Wizard, auth, config, logger)
	wireBooking(r, handler.Booking, auth)
	wireLookup(r, handler.Lookup, auth)
	wireAdmin(r, handler.Admin, auth, repo, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return r
}

func secureCookies(config *utils.Config) bool {
	return strings.HasPrefix(config.App.PublicBaseURL, "https://")
}
