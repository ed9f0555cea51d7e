package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/YusovID/review-assigner/internal/repository"
	"github.com/YusovID/review-assigner/pkg/api"
)

type UserService interface {
	SetIsActive(ctx context.Context, userID string, isActive bool) (*api.User, error)
}

type UserServiceImpl struct {
	repo repository.UserRepository
	log  *slog.Logger
}

func NewUserService(repo repository.UserRepository, log *slog.Logger) *UserServiceImpl {
	return &UserServiceImpl{repo: repo, log: log}
}

func (s *UserServiceImpl) SetIsActive(ctx context.Context, userID string, isActive bool) (*api.User, error) {
	const op = "internal.service.user.SetIsActive"

	user, err := s.repo.SetIsActive(ctx, userID, isActive)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to set is_active: %w", op, err)
	}

	s.log.Info("user activity changed",
		slog.String("op", op),
		slog.String("user_id", userID),
		slog.Bool("is_active", isActive),
	)

	return &api.User{
		UserId:   user.ID,
		Username: user.Username,
		TeamName: user.PrimaryTeam(),
		IsActive: user.IsActive,
	}, nil
}
