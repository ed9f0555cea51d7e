package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/YusovID/review-assigner/internal/apperrors"
	"github.com/YusovID/review-assigner/internal/assignment"
	"github.com/YusovID/review-assigner/internal/domain"
	"github.com/YusovID/review-assigner/pkg/api"
	"github.com/jmoiron/sqlx"
)

func (s *TeamServiceImpl) DeactivateUsers(ctx context.Context, teamName string, userIDs []string) (*api.DeactivateUsersResponse, error) {
	const op = "internal.service.team.DeactivateUsers"
	log := s.log.With(slog.String("op", op), slog.String("team_name", teamName))

	result := domain.DeactivationResult{
		TeamName:    teamName,
		Deactivated: []string{},
	}

	err := s.transaction(ctx, op, func(tx *sqlx.Tx) error {
		team, err := s.teams.GetTeamByName(ctx, tx, teamName)
		if err != nil {
			return fmt.Errorf("%s: failed to get team: %w", op, err)
		}

		targets := deactivationTargets(team, userIDs)
		if len(targets) == 0 {
			return nil
		}

		if err := s.users.DeactivateUsers(ctx, tx, targets); err != nil {
			return fmt.Errorf("%s: failed to deactivate users: %w", op, err)
		}

		prs, err := s.prQuery.GetOpenPRsByReviewers(ctx, tx, targets)
		if err != nil {
			return fmt.Errorf("%s: failed to get open prs: %w", op, err)
		}

		inactive := make(map[string]struct{}, len(targets))
		for _, id := range targets {
			inactive[id] = struct{}{}
		}

		reassigned := 0

		for i := range prs {
			n, err := s.reconcilePR(ctx, tx, &prs[i], inactive)
			if err != nil {
				return fmt.Errorf("%s: pr '%s': %w", op, prs[i].ID, err)
			}

			reassigned += n
		}

		result.Deactivated = targets
		result.ReassignedPRs = reassigned

		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("users deactivated",
		slog.Any("deactivated", result.Deactivated),
		slog.Int("reassigned", result.ReassignedPRs),
	)

	return &api.DeactivateUsersResponse{
		TeamName:      result.TeamName,
		Deactivated:   result.Deactivated,
		ReassignedPrs: result.ReassignedPRs,
	}, nil
}

// reconcilePR replaces or drops every inactive reviewer of pr and returns the number of replacements.
// current tracks the reviewer set as it changes so a later swap never picks an id assigned earlier in the pass.
func (s *TeamServiceImpl) reconcilePR(ctx context.Context, tx *sqlx.Tx, pr *domain.PullRequest, inactive map[string]struct{}) (int, error) {
	current := slices.Clone(pr.ReviewerIDs)
	replaced := 0

	for _, reviewerID := range pr.ReviewerIDs {
		if _, ok := inactive[reviewerID]; !ok {
			continue
		}

		newReviewerID, err := s.pickDeactivationReplacement(ctx, tx, pr.AuthorID, reviewerID, current)
		if err != nil {
			return 0, err
		}

		if newReviewerID == "" {
			if err := s.prCmd.RemoveReviewer(ctx, tx, pr.ID, reviewerID); err != nil {
				return 0, fmt.Errorf("failed to remove reviewer: %w", err)
			}

			current = slices.DeleteFunc(current, func(id string) bool { return id == reviewerID })
			reviewerRemovalsTotal.Inc()

			continue
		}

		if err := s.prCmd.ReplaceReviewer(ctx, tx, pr.ID, reviewerID, newReviewerID); err != nil {
			return 0, fmt.Errorf("failed to replace reviewer: %w", err)
		}

		current[slices.Index(current, reviewerID)] = newReviewerID
		reviewerAssignmentsTotal.WithLabelValues(reasonDeactivation).Inc()
		replaced++
	}

	return replaced, nil
}

// pickDeactivationReplacement returns "" when the reviewer must simply be dropped.
func (s *TeamServiceImpl) pickDeactivationReplacement(ctx context.Context, tx *sqlx.Tx, authorID, reviewerID string, current []string) (string, error) {
	reviewer, err := s.users.GetUserWithTeams(ctx, tx, reviewerID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return "", nil
	}

	if err != nil {
		return "", fmt.Errorf("failed to get reviewer: %w", err)
	}

	candidates, err := s.resolver.ResolveCandidates(ctx, tx, reviewer)
	if err != nil {
		return "", err
	}

	excluded := append([]string{authorID, reviewerID}, current...)

	id, _ := assignment.ChooseReplacement(candidates.Without(excluded...), s.picker)

	return id, nil
}

// deactivationTargets intersects the requested ids with the team membership.
// A nil request means every member. The result follows member order and has no duplicates.
func deactivationTargets(team *domain.TeamWithMembers, userIDs []string) []string {
	targets := make([]string, 0, len(team.Members))

	if userIDs == nil {
		for _, m := range team.Members {
			targets = append(targets, m.ID)
		}

		return targets
	}

	requested := make(map[string]struct{}, len(userIDs))
	for _, id := range userIDs {
		requested[id] = struct{}{}
	}

	for _, m := range team.Members {
		if _, ok := requested[m.ID]; ok {
			targets = append(targets, m.ID)
		}
	}

	return targets
}
