package wire

import (
	"net/http"

	"train-booking/internal/adaptor"
	"train-booking/internal/data/repository"
	"train-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(
	r chi.Router,
	adminHandler *adaptor.AdminHandler,
	auth func(http.Handler) http.Handler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin", func(r chi.Router) {
		// Require both authentication AND admin role
		r.Use(auth)
		r.Use(middleware.Admin(repo.User, log))

		// POST /api/admin/routes - buat rute untuk pasangan stasiun baru
		r.Post("/routes", adminHandler.ProvisionRoutes)
	})
}
