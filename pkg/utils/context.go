package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	UserIDKey    contextKey = "user_id"
	RoleKey      contextKey = "role"
	TokenKey     contextKey = "token"
	WizardKeyKey contextKey = "wizard_key"
)

func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}

func GetRoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(RoleKey).(string)
	return role, ok
}

func SetUserContext(ctx context.Context, userID uuid.UUID, role string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID)
	ctx = context.WithValue(ctx, RoleKey, role)
	return ctx
}

// GetTokenFromContext mendapatkan token dari context
func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenKey).(string)
	return token, ok
}

// SetTokenContext menambahkan token ke context
func SetTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}

// GetWizardKeyFromContext mengambil key wizard booking yang diset middleware
func GetWizardKeyFromContext(ctx context.Context) (string, bool) {
	key, ok := ctx.Value(WizardKeyKey).(string)
	if !ok || key == "" {
		return "", false
	}
	return key, true
}

func SetWizardKeyContext(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, WizardKeyKey, key)
}
