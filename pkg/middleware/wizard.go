package middleware

import (
	"net/http"
	"strings"
	"time"

	"train-booking/pkg/utils"

	"go.uber.org/zap"
)

const (
	WizardCookieName = "wizard_session"
	WizardHeaderName = "X-Wizard-Session"
)

// WizardSession memastikan setiap request punya key wizard (cookie atau header).
// Key baru diterbitkan bila belum ada atau formatnya bukan UUID.
func WizardSession(ttl time.Duration, secure bool, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := strings.TrimSpace(r.Header.Get(WizardHeaderName))
			if key == "" {
				if c, err := r.Cookie(WizardCookieName); err == nil {
					key = c.Value
				}
			}

			if _, err := utils.ParseUUID(key); err != nil {
				key = utils.GenerateUUID().String()
				logger.Debug("Issued wizard session", zap.String("path", r.URL.Path))
			}

			// perpanjang cookie setiap request
			http.SetCookie(w, &http.Cookie{
				Name:     WizardCookieName,
				Value:    key,
				Path:     "/",
				MaxAge:   int(ttl.Seconds()),
				HttpOnly: true,
				Secure:   secure,
				SameSite: http.SameSiteLaxMode,
			})
			w.Header().Set(WizardHeaderName, key)

			ctx := utils.SetWizardKeyContext(r.Context(), key)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
