package wire

import (
	"net/http"

	"train-booking/internal/adaptor"
	"train-booking/pkg/middleware"
	"train-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireWizard(
	r chi.Router,
	wizardHandler *adaptor.WizardHandler,
	auth func(http.Handler) http.Handler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.WizardSession(config.Session.WizardTTL, secureCookies(config), log))

		// ==================== ANONYMOUS STEPS ====================
		r.Get("/", wizardHandler.GetSearch)
		r.Post("/", wizardHandler.SubmitSearch)
		r.Get("/passenger-details/", wizardHandler.GetPassengers)
		r.Post("/passenger-details/", wizardHandler.SubmitPassengers)
		r.Get("/train-results/", wizardHandler.GetTrainResults)
		r.Post("/train-results/", wizardHandler.GetTrainResults)

		// ==================== PROTECTED STEPS ====================
		r.Group(func(r chi.Router) {
			r.Use(auth)

			r.Get("/payment/{train_id}/", wizardHandler.GetPayment)
			r.Post("/payment/{train_id}/", wizardHandler.SubmitPayment)
			r.Get("/seat-selection/{train_id}/", wizardHandler.GetSeatMap)
			r.Post("/seat-selection/{train_id}/", wizardHandler.SubmitSeats)
		})
	})
}
