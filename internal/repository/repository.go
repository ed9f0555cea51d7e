// Package repository defines the interfaces for the data persistence layer.
// Write methods take the caller's *sqlx.Tx so a service can compose them into one transaction;
// read methods that may run either inside or outside a transaction take a sqlx.ExtContext.
package repository

import (
	"context"
	"time"

	"github.com/YusovID/review-assigner/internal/domain"
	"github.com/jmoiron/sqlx"
)

// TeamRepository defines the contract for teams and their memberships.
type TeamRepository interface {
	// EnsureTeam creates the team if it does not exist yet.
	EnsureTeam(ctx context.Context, tx *sqlx.Tx, teamName string) error

	// SyncMembers makes userIDs the exact membership of the team: memberships not listed are removed,
	// missing ones are added. Users themselves are left untouched.
	SyncMembers(ctx context.Context, tx *sqlx.Tx, teamName string, userIDs []string) error

	// GetTeamByName retrieves a team and its members ordered by user id.
	// It returns apperrors.ErrNotFound if the team is not found.
	GetTeamByName(ctx context.Context, ext sqlx.ExtContext, name string) (*domain.TeamWithMembers, error)

	// DeleteTeam removes the team's memberships and then the team.
	// It returns apperrors.ErrNotFound if the team is not found.
	DeleteTeam(ctx context.Context, tx *sqlx.Tx, name string) error
}

// UserRepository defines the contract for user-specific data operations.
type UserRepository interface {
	// UpsertUsers inserts users or updates username and activity of existing ones.
	UpsertUsers(ctx context.Context, tx *sqlx.Tx, users []domain.User) error

	// GetUserWithTeams loads a user together with its sorted team names.
	// It returns apperrors.ErrNotFound if the user does not exist.
	GetUserWithTeams(ctx context.Context, ext sqlx.ExtContext, userID string) (*domain.User, error)

	// UserExists reports whether a user with the given id exists.
	UserExists(ctx context.Context, userID string) (bool, error)

	// SetIsActive updates the active status of a user and returns it with its primary team.
	// It returns apperrors.ErrNotFound if the user does not exist.
	SetIsActive(ctx context.Context, userID string, isActive bool) (*domain.User, error)

	// DeactivateUsers marks the given users inactive in one statement.
	DeactivateUsers(ctx context.Context, tx *sqlx.Tx, userIDs []string) error

	// GetActiveMemberIDs returns the distinct active members of the given teams, ordered by id.
	GetActiveMemberIDs(ctx context.Context, ext sqlx.ExtContext, teamNames []string) ([]string, error)
}

// PRQueryRepository defines the contract for read-only pull request operations, following the CQRS pattern.
type PRQueryRepository interface {
	// PRExists reports whether a pull request with the given id exists.
	PRExists(ctx context.Context, ext sqlx.ExtContext, prID string) (bool, error)

	// GetPRByIDWithReviewers retrieves a pull request and its assigned reviewers.
	// Returns apperrors.ErrNotFound if the PR is not found.
	GetPRByIDWithReviewers(ctx context.Context, prID string) (*domain.PullRequest, error)

	// GetReviewerIDs retrieves the ids of all reviewers of a pull request, ordered by id.
	GetReviewerIDs(ctx context.Context, ext sqlx.ExtContext, prID string) ([]string, error)

	// GetReviewAssignments retrieves all pull requests assigned to a user for review, newest first.
	GetReviewAssignments(ctx context.Context, userID string) ([]domain.PullRequest, error)

	// GetOpenPRsByReviewers locks and returns every open pull request reviewed by any of userIDs,
	// ordered by id, each with its full reviewer list.
	GetOpenPRsByReviewers(ctx context.Context, tx *sqlx.Tx, userIDs []string) ([]domain.PullRequest, error)
}

// PRCommandRepository defines the contract for write and locking operations on pull requests.
// All methods are expected to be executed within a transaction.
type PRCommandRepository interface {
	// CreatePR inserts a new open pull request; created_at is assigned by the database.
	// It returns *apperrors.PRAlreadyExistsError on a duplicate id
	// and apperrors.ErrNotFound when the author does not exist.
	CreatePR(ctx context.Context, tx *sqlx.Tx, pr *domain.PullRequest) error

	// AssignReviewers associates reviewers with a pull request, ignoring ones already assigned.
	AssignReviewers(ctx context.Context, tx *sqlx.Tx, prID string, reviewerIDs []string) error

	// GetPRByIDWithLock retrieves a pull request and acquires a row-level lock ("FOR UPDATE").
	// It returns apperrors.ErrNotFound if the PR is not found.
	GetPRByIDWithLock(ctx context.Context, tx *sqlx.Tx, prID string) (*domain.PullRequest, error)

	// MarkMerged sets status MERGED and merged_at.
	MarkMerged(ctx context.Context, tx *sqlx.Tx, prID string, mergedAt time.Time) error

	// ReplaceReviewer removes oldReviewerID and adds newReviewerID unless it is already assigned.
	ReplaceReviewer(ctx context.Context, tx *sqlx.Tx, prID string, oldReviewerID string, newReviewerID string) error

	// RemoveReviewer drops a single reviewer assignment.
	RemoveReviewer(ctx context.Context, tx *sqlx.Tx, prID string, reviewerID string) error

	// DeletePR removes the reviewer assignments and then the pull request.
	// It returns apperrors.ErrNotFound if the PR is not found.
	DeletePR(ctx context.Context, tx *sqlx.Tx, prID string) error
}

// StatsRepository defines the read-only aggregations behind the statistics endpoint.
type StatsRepository interface {
	GetAssignmentsPerReviewer(ctx context.Context) ([]domain.UserCount, error)
	GetPRsPerAuthor(ctx context.Context, status domain.PRStatus) ([]domain.UserCount, error)
	GetPRCountByStatus(ctx context.Context) (map[domain.PRStatus]int, error)
	GetUserStats(ctx context.Context) ([]domain.ReviewStats, error)
}
