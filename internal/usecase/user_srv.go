package usecase

import (
	"context"
	"fmt"

	"train-booking/internal/data/repository"
	"train-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "user")),
	}
}

func (us *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := us.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if user == nil {
		return nil, notFound("user")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}
