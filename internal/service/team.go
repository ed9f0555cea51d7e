package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/YusovID/review-assigner/internal/assignment"
	"github.com/YusovID/review-assigner/internal/domain"
	"github.com/YusovID/review-assigner/internal/repository"
	"github.com/YusovID/review-assigner/pkg/api"
	"github.com/jmoiron/sqlx"
)

type TeamService interface {
	UpsertTeam(ctx context.Context, team api.Team) (*api.Team, error)
	GetTeam(ctx context.Context, name string) (*api.Team, error)
	DeleteTeam(ctx context.Context, name string) error
	// DeactivateUsers deactivates userIDs within the team, or every member when userIDs is nil,
	// and reconciles the open pull requests they review.
	DeactivateUsers(ctx context.Context, teamName string, userIDs []string) (*api.DeactivateUsersResponse, error)
}

type TeamServiceImpl struct {
	BaseService
	teams    repository.TeamRepository
	users    repository.UserRepository
	prCmd    repository.PRCommandRepository
	prQuery  repository.PRQueryRepository
	resolver *assignment.Resolver
	picker   assignment.Picker
}

func NewTeamService(
	db DB,
	log *slog.Logger,
	teams repository.TeamRepository,
	users repository.UserRepository,
	prCmd repository.PRCommandRepository,
	prQuery repository.PRQueryRepository,
	picker assignment.Picker,
) *TeamServiceImpl {
	return &TeamServiceImpl{
		BaseService: NewBaseService(db, log),
		teams:       teams,
		users:       users,
		prCmd:       prCmd,
		prQuery:     prQuery,
		resolver:    assignment.NewResolver(users),
		picker:      picker,
	}
}

// UpsertTeam creates the team if needed, upserts the listed users and makes them the exact membership.
func (s *TeamServiceImpl) UpsertTeam(ctx context.Context, team api.Team) (*api.Team, error) {
	const op = "internal.service.team.UpsertTeam"

	users := dedupMembers(team.Members)

	userIDs := make([]string, len(users))
	for i, u := range users {
		userIDs[i] = u.ID
	}

	err := s.transaction(ctx, op, func(tx *sqlx.Tx) error {
		if err := s.teams.EnsureTeam(ctx, tx, team.TeamName); err != nil {
			return fmt.Errorf("%s: failed to ensure team: %w", op, err)
		}

		if err := s.users.UpsertUsers(ctx, tx, users); err != nil {
			return fmt.Errorf("%s: failed to upsert users: %w", op, err)
		}

		if err := s.teams.SyncMembers(ctx, tx, team.TeamName, userIDs); err != nil {
			return fmt.Errorf("%s: failed to sync members: %w", op, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("team upserted",
		slog.String("op", op),
		slog.String("team_name", team.TeamName),
		slog.Int("members", len(users)),
	)

	return s.GetTeam(ctx, team.TeamName)
}

func (s *TeamServiceImpl) GetTeam(ctx context.Context, name string) (*api.Team, error) {
	const op = "internal.service.team.GetTeam"

	domainTeam, err := s.teams.GetTeamByName(ctx, s.db, name)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get team: %w", op, err)
	}

	return toAPITeam(domainTeam), nil
}

func (s *TeamServiceImpl) DeleteTeam(ctx context.Context, name string) error {
	const op = "internal.service.team.DeleteTeam"

	err := s.transaction(ctx, op, func(tx *sqlx.Tx) error {
		if err := s.teams.DeleteTeam(ctx, tx, name); err != nil {
			return fmt.Errorf("%s: failed to delete team: %w", op, err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info("team deleted", slog.String("op", op), slog.String("team_name", name))

	return nil
}

// dedupMembers collapses repeated user ids, the last entry wins. First-seen order is kept.
func dedupMembers(members []api.TeamMember) []domain.User {
	index := make(map[string]int, len(members))
	users := make([]domain.User, 0, len(members))

	for _, m := range members {
		u := domain.User{ID: m.UserId, Username: m.Username, IsActive: m.IsActive}

		if i, ok := index[m.UserId]; ok {
			users[i] = u
			continue
		}

		index[m.UserId] = len(users)
		users = append(users, u)
	}

	return users
}

func toAPITeam(domainTeam *domain.TeamWithMembers) *api.Team {
	apiMembers := make([]api.TeamMember, len(domainTeam.Members))
	for i, member := range domainTeam.Members {
		apiMembers[i] = api.TeamMember{
			UserId:   member.ID,
			Username: member.Username,
			IsActive: member.IsActive,
		}
	}

	return &api.Team{
		TeamName: domainTeam.Name,
		Members:  apiMembers,
	}
}
