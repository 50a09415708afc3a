package middleware

import (
	"net/http"
	"strings"

	"train-booking/internal/data/entity"
	"train-booking/internal/data/repository"
	"train-booking/pkg/utils"

	"go.uber.org/zap"
)

// AuthSession middleware untuk validasi session token UUID
func AuthSession(sessionRepo repository.SessionRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			token := parts[1]
			if _, err := utils.ParseUUID(token); err != nil {
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			// Find valid session
			session, err := sessionRepo.FindValidSession(r.Context(), token)
			if err != nil {
				logger.Error("Failed to validate session", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if session == nil {
				logger.Warn("Invalid or expired session", zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			// Set context dengan user info DAN token
			ctx := utils.SetUserContext(r.Context(), session.UserID, string(entity.RoleCustomer))
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin - middleware cek role admin
func Admin(userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// 1. Get user ID dari context (sudah diset AuthSession)
			userID, ok := utils.GetUserIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			// 2. Get user dari repo
			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil {
				logger.Error("Admin check: failed to get user",
					zap.Error(err), zap.String("user_id", userID.String()))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			// 3. Check if admin
			if user == nil || user.Role != entity.RoleAdmin {
				logger.Warn("Admin check: non-admin access attempt",
					zap.String("user_id", userID.String()),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID, string(user.Role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
