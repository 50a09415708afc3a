package wire

import (
	"net/http"

	"train-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireLookup(r chi.Router, lookupHandler *adaptor.LookupHandler, auth func(http.Handler) http.Handler) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/pnr-status/", lookupHandler.GetPNRStatus)
	r.Post("/pnr-status/", lookupHandler.PostPNRStatus)
	r.Get("/train-status/", lookupHandler.GetTrainStatus)
	r.Post("/train-status/", lookupHandler.PostTrainStatus)

	// ==================== PROTECTED ROUTES ====================
	r.With(auth).Get("/cancellation/", lookupHandler.GetCancellation)
	r.With(auth).Post("/cancellation/", lookupHandler.PostCancellation)
}
