package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"train-booking/internal/data/entity"
	"train-booking/internal/data/repository"
	"train-booking/internal/dto/request"
	"train-booking/internal/dto/response"
	"train-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	repo   *repository.Repository // grouping userRepo & sessionRepo
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	// 1. Validasi input
	req.Email = strings.TrimSpace(req.Email)
	req.Username = strings.TrimSpace(req.Username)
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, newValidationError("Validation failed", errs)
	}

	// 2. Cek email sudah terdaftar
	existingUser, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existingUser != nil {
		return nil, fmt.Errorf("email already registered: %w", ErrConflict)
	}

	// 3. Cek username sudah dipakai
	existingUser, err = s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if existingUser != nil {
		return nil, fmt.Errorf("username already taken: %w", ErrConflict)
	}

	// 4. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Phone:        req.Phone,
		Role:         entity.RoleCustomer,
		IsActive:     true,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}

	// 5. Auto login setelah register
	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		s.log.Warn("Failed to create session after register",
			zap.Error(err), zap.String("user_id", user.ID.String()))
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	resp := response.AuthToResponse(user, session)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, newValidationError("Validation failed", errs)
	}

	// Username boleh diisi email atau username
	user, err := s.repo.User.FindByEmail(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		user, err = s.repo.User.FindByUsername(ctx, req.Username)
		if err != nil {
			return nil, fmt.Errorf("find user: %w", err)
		}
	}

	if user == nil {
		s.log.Warn("User not found for login", zap.String("identifier", req.Username))
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		s.log.Warn("Inactive user tried to login", zap.String("user_id", user.ID.String()))
		return nil, ErrInactiveAccount
	}

	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	resp := response.AuthToResponse(user, session)
	return &resp, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		return ErrInvalidToken
	}

	if err := s.repo.Session.Revoke(ctx, tokenUUID.String()); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return ErrInvalidToken
		}
		return fmt.Errorf("logout: %w", err)
	}

	s.log.Info("User logged out")
	return nil
}

// ==================== HELPER METHODS ====================

func (s *authService) createSession(ctx context.Context, userID uuid.UUID) (*entity.Session, error) {
	expiry := time.Duration(s.config.Session.ExpiryHours) * time.Hour
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}

	now := time.Now()
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserID:    userID,
		Token:     utils.GenerateSessionToken(),
		ExpiresAt: now.Add(expiry),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}
