package service

import (
	"context"
	"fmt"

	"github.com/YusovID/review-assigner/internal/domain"
	"github.com/YusovID/review-assigner/internal/repository"
	"github.com/YusovID/review-assigner/pkg/api"
)

type StatsService interface {
	GetStats(ctx context.Context) (*api.StatsResponse, error)
}

type StatsServiceImpl struct {
	repo repository.StatsRepository
}

func NewStatsService(repo repository.StatsRepository) *StatsServiceImpl {
	return &StatsServiceImpl{repo: repo}
}

func (s *StatsServiceImpl) GetStats(ctx context.Context) (*api.StatsResponse, error) {
	const op = "internal.service.stats.GetStats"

	perReviewer, err := s.repo.GetAssignmentsPerReviewer(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get assignments per reviewer: %w", op, err)
	}

	openPerAuthor, err := s.repo.GetPRsPerAuthor(ctx, domain.PRStatusOpen)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get open prs per author: %w", op, err)
	}

	mergedPerAuthor, err := s.repo.GetPRsPerAuthor(ctx, domain.PRStatusMerged)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get merged prs per author: %w", op, err)
	}

	byStatus, err := s.repo.GetPRCountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get pr count by status: %w", op, err)
	}

	stats, err := s.repo.GetUserStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get user stats: %w", op, err)
	}

	userStats := make([]api.UserStats, len(stats))
	for i, stat := range stats {
		userStats[i] = api.UserStats{
			UserId:        stat.UserID,
			Username:      stat.Username,
			OpenReviews:   stat.OpenReviews,
			MergedReviews: stat.MergedReviews,
		}
	}

	return &api.StatsResponse{
		AssignmentsPerReviewer: toAPIUserCounts(perReviewer),
		OpenPrsPerAuthor:       toAPIUserCounts(openPerAuthor),
		MergedPrsPerAuthor:     toAPIUserCounts(mergedPerAuthor),
		PrCountByStatus: api.StatusCounts{
			OPEN:   byStatus[domain.PRStatusOpen],
			MERGED: byStatus[domain.PRStatusMerged],
		},
		UserStats: userStats,
	}, nil
}

func toAPIUserCounts(counts []domain.UserCount) []api.UserCount {
	out := make([]api.UserCount, len(counts))
	for i, c := range counts {
		out[i] = api.UserCount{UserId: c.UserID, Count: c.Count}
	}

	return out
}
