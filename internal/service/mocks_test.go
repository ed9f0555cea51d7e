package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/YusovID/review-assigner/internal/domain"
	"github.com/YusovID/review-assigner/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
)

type DBMock struct {
	mock.Mock
	sqlx.ExtContext
}

var _ DB = (*DBMock)(nil)

func (m *DBMock) BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error) {
	var tx *sqlx.Tx

	args := m.Called(ctx, opts)
	if args.Get(0) != nil {
		tx = args.Get(0).(*sqlx.Tx)
	}

	return tx, args.Error(1)
}

type TeamRepositoryMock struct {
	mock.Mock
}

var _ repository.TeamRepository = (*TeamRepositoryMock)(nil)

func (m *TeamRepositoryMock) EnsureTeam(ctx context.Context, tx *sqlx.Tx, teamName string) error {
	args := m.Called(ctx, tx, teamName)
	return args.Error(0)
}

func (m *TeamRepositoryMock) SyncMembers(ctx context.Context, tx *sqlx.Tx, teamName string, userIDs []string) error {
	args := m.Called(ctx, tx, teamName, userIDs)
	return args.Error(0)
}

func (m *TeamRepositoryMock) GetTeamByName(ctx context.Context, ext sqlx.ExtContext, name string) (*domain.TeamWithMembers, error) {
	args := m.Called(ctx, ext, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.TeamWithMembers), args.Error(1)
}

func (m *TeamRepositoryMock) DeleteTeam(ctx context.Context, tx *sqlx.Tx, name string) error {
	args := m.Called(ctx, tx, name)
	return args.Error(0)
}

type UserRepositoryMock struct {
	mock.Mock
}

var _ repository.UserRepository = (*UserRepositoryMock)(nil)

func (m *UserRepositoryMock) UpsertUsers(ctx context.Context, tx *sqlx.Tx, users []domain.User) error {
	args := m.Called(ctx, tx, users)
	return args.Error(0)
}

func (m *UserRepositoryMock) GetUserWithTeams(ctx context.Context, ext sqlx.ExtContext, userID string) (*domain.User, error) {
	args := m.Called(ctx, ext, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepositoryMock) UserExists(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepositoryMock) SetIsActive(ctx context.Context, userID string, isActive bool) (*domain.User, error) {
	args := m.Called(ctx, userID, isActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepositoryMock) DeactivateUsers(ctx context.Context, tx *sqlx.Tx, userIDs []string) error {
	args := m.Called(ctx, tx, userIDs)
	return args.Error(0)
}

func (m *UserRepositoryMock) GetActiveMemberIDs(ctx context.Context, ext sqlx.ExtContext, teamNames []string) ([]string, error) {
	args := m.Called(ctx, ext, teamNames)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]string), args.Error(1)
}

type PRCommandRepositoryMock struct {
	mock.Mock
}

var _ repository.PRCommandRepository = (*PRCommandRepositoryMock)(nil)

func (m *PRCommandRepositoryMock) CreatePR(ctx context.Context, tx *sqlx.Tx, pr *domain.PullRequest) error {
	args := m.Called(ctx, tx, pr)
	return args.Error(0)
}

func (m *PRCommandRepositoryMock) AssignReviewers(ctx context.Context, tx *sqlx.Tx, prID string, reviewerIDs []string) error {
	args := m.Called(ctx, tx, prID, reviewerIDs)
	return args.Error(0)
}

func (m *PRCommandRepositoryMock) GetPRByIDWithLock(ctx context.Context, tx *sqlx.Tx, prID string) (*domain.PullRequest, error) {
	args := m.Called(ctx, tx, prID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.PullRequest), args.Error(1)
}

func (m *PRCommandRepositoryMock) MarkMerged(ctx context.Context, tx *sqlx.Tx, prID string, mergedAt time.Time) error {
	args := m.Called(ctx, tx, prID, mergedAt)
	return args.Error(0)
}

func (m *PRCommandRepositoryMock) ReplaceReviewer(ctx context.Context, tx *sqlx.Tx, prID string, oldReviewerID string, newReviewerID string) error {
	args := m.Called(ctx, tx, prID, oldReviewerID, newReviewerID)
	return args.Error(0)
}

func (m *PRCommandRepositoryMock) RemoveReviewer(ctx context.Context, tx *sqlx.Tx, prID string, reviewerID string) error {
	args := m.Called(ctx, tx, prID, reviewerID)
	return args.Error(0)
}

func (m *PRCommandRepositoryMock) DeletePR(ctx context.Context, tx *sqlx.Tx, prID string) error {
	args := m.Called(ctx, tx, prID)
	return args.Error(0)
}

type PRQueryRepositoryMock struct {
	mock.Mock
}

var _ repository.PRQueryRepository = (*PRQueryRepositoryMock)(nil)

func (m *PRQueryRepositoryMock) PRExists(ctx context.Context, ext sqlx.ExtContext, prID string) (bool, error) {
	args := m.Called(ctx, ext, prID)
	return args.Bool(0), args.Error(1)
}

func (m *PRQueryRepositoryMock) GetPRByIDWithReviewers(ctx context.Context, prID string) (*domain.PullRequest, error) {
	args := m.Called(ctx, prID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.PullRequest), args.Error(1)
}

func (m *PRQueryRepositoryMock) GetReviewerIDs(ctx context.Context, ext sqlx.ExtContext, prID string) ([]string, error) {
	args := m.Called(ctx, ext, prID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]string), args.Error(1)
}

func (m *PRQueryRepositoryMock) GetReviewAssignments(ctx context.Context, userID string) ([]domain.PullRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.PullRequest), args.Error(1)
}

func (m *PRQueryRepositoryMock) GetOpenPRsByReviewers(ctx context.Context, tx *sqlx.Tx, userIDs []string) ([]domain.PullRequest, error) {
	args := m.Called(ctx, tx, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.PullRequest), args.Error(1)
}

type StatsRepositoryMock struct {
	mock.Mock
}

var _ repository.StatsRepository = (*StatsRepositoryMock)(nil)

func (m *StatsRepositoryMock) GetAssignmentsPerReviewer(ctx context.Context) ([]domain.UserCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.UserCount), args.Error(1)
}

func (m *StatsRepositoryMock) GetPRsPerAuthor(ctx context.Context, status domain.PRStatus) ([]domain.UserCount, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.UserCount), args.Error(1)
}

func (m *StatsRepositoryMock) GetPRCountByStatus(ctx context.Context) (map[domain.PRStatus]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(map[domain.PRStatus]int), args.Error(1)
}

func (m *StatsRepositoryMock) GetUserStats(ctx context.Context) ([]domain.ReviewStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.ReviewStats), args.Error(1)
}
