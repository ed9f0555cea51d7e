package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/YusovID/review-assigner/internal/apperrors"
	"github.com/YusovID/review-assigner/internal/domain"
	"github.com/jmoiron/sqlx"
)

var prColumns = []string{
	"pull_request_id", "pull_request_name", "author_id", "status", "created_at", "merged_at",
}

type PullRequestRepository struct {
	db  *sqlx.DB
	log *slog.Logger
	sq  sq.StatementBuilderType
}

func NewPullRequestRepository(db *sqlx.DB, log *slog.Logger) *PullRequestRepository {
	return &PullRequestRepository{
		db:  db,
		log: log,
		sq:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *PullRequestRepository) PRExists(ctx context.Context, ext sqlx.ExtContext, prID string) (bool, error) {
	const op = "internal.repository.postgres.PRExists"

	query, args, err := r.sq.Select("1").
		Prefix("SELECT EXISTS (").
		From("pull_requests").
		Where(sq.Eq{"pull_request_id": prID}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var exists bool
	if err := sqlx.GetContext(ctx, ext, &exists, query, args...); err != nil {
		return false, fmt.Errorf("%s: failed to execute query: %w", op, err)
	}

	return exists, nil
}

func (r *PullRequestRepository) CreatePR(ctx context.Context, tx *sqlx.Tx, pr *domain.PullRequest) error {
	const op = "internal.repository.postgres.CreatePR"

	query, args, err := r.sq.Insert("pull_requests").
		Columns("pull_request_id", "pull_request_name", "author_id", "status").
		Values(pr.ID, pr.Name, pr.AuthorID, string(domain.PRStatusOpen)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build insert query: %w", op, err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		switch {
		case isUniqueViolation(err):
			return &apperrors.PRAlreadyExistsError{PRID: pr.ID}
		case isForeignKeyViolation(err):
			return fmt.Errorf("%s: %w: author with id '%s'", op, apperrors.ErrNotFound, pr.AuthorID)
		}

		return fmt.Errorf("%s: failed to execute insert: %w", op, err)
	}

	return nil
}

func (r *PullRequestRepository) AssignReviewers(ctx context.Context, tx *sqlx.Tx, prID string, reviewerIDs []string) error {
	const op = "internal.repository.postgres.AssignReviewers"

	if len(reviewerIDs) == 0 {
		return nil
	}

	insertBuilder := r.sq.Insert("pr_reviewers").
		Columns("pull_request_id", "reviewer_id")

	for _, userID := range reviewerIDs {
		insertBuilder = insertBuilder.Values(prID, userID)
	}

	query, args, err := insertBuilder.
		Suffix("ON CONFLICT (pull_request_id, reviewer_id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build insert query: %w", op, err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: failed to execute insert: %w", op, err)
	}

	return nil
}

func (r *PullRequestRepository) GetReviewerIDs(ctx context.Context, ext sqlx.ExtContext, prID string) ([]string, error) {
	const op = "internal.repository.postgres.GetReviewerIDs"

	query, args, err := r.sq.Select("reviewer_id").
		From("pr_reviewers").
		Where(sq.Eq{"pull_request_id": prID}).
		OrderBy("reviewer_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	reviewerIDs := []string{}
	if err := sqlx.SelectContext(ctx, ext, &reviewerIDs, query, args...); err != nil {
		return nil, fmt.Errorf("%s: failed to select reviewers: %w", op, err)
	}

	return reviewerIDs, nil
}

func (r *PullRequestRepository) GetPRByIDWithReviewers(ctx context.Context, prID string) (*domain.PullRequest, error) {
	const op = "internal.repository.postgres.GetPRByIDWithReviewers"

	pr, err := r.getPR(ctx, r.db, prID, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	pr.ReviewerIDs, err = r.GetReviewerIDs(ctx, r.db, prID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get reviewers: %w", op, err)
	}

	return pr, nil
}

func (r *PullRequestRepository) GetPRByIDWithLock(ctx context.Context, tx *sqlx.Tx, prID string) (*domain.PullRequest, error) {
	const op = "internal.repository.postgres.GetPRByIDWithLock"

	pr, err := r.getPR(ctx, tx, prID, true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return pr, nil
}

func (r *PullRequestRepository) getPR(ctx context.Context, ext sqlx.ExtContext, prID string, lock bool) (*domain.PullRequest, error) {
	selectBuilder := r.sq.Select(prColumns...).
		From("pull_requests").
		Where(sq.Eq{"pull_request_id": prID})

	if lock {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var pr domain.PullRequest
	if err := sqlx.GetContext(ctx, ext, &pr, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: PR with id '%s'", apperrors.ErrNotFound, prID)
		}

		return nil, fmt.Errorf("failed to get PR: %w", err)
	}

	return &pr, nil
}

func (r *PullRequestRepository) MarkMerged(ctx context.Context, tx *sqlx.Tx, prID string, mergedAt time.Time) error {
	const op = "internal.repository.postgres.MarkMerged"

	query, args, err := r.sq.Update("pull_requests").
		Set("status", string(domain.PRStatusMerged)).
		Set("merged_at", mergedAt).
		Where(sq.Eq{"pull_request_id": prID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build update query: %w", op, err)
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: failed to execute update: %w", op, err)
	}

	if rowsAffected, err := res.RowsAffected(); err == nil && rowsAffected == 0 {
		return fmt.Errorf("%s: %w: PR with id '%s'", op, apperrors.ErrNotFound, prID)
	}

	return nil
}

func (r *PullRequestRepository) ReplaceReviewer(ctx context.Context, tx *sqlx.Tx, prID string, oldReviewerID string, newReviewerID string) error {
	const op = "internal.repository.postgres.ReplaceReviewer"

	if err := r.RemoveReviewer(ctx, tx, prID, oldReviewerID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := r.AssignReviewers(ctx, tx, prID, []string{newReviewerID}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *PullRequestRepository) RemoveReviewer(ctx context.Context, tx *sqlx.Tx, prID string, reviewerID string) error {
	const op = "internal.repository.postgres.RemoveReviewer"

	query, args, err := r.sq.Delete("pr_reviewers").
		Where(sq.Eq{"pull_request_id": prID, "reviewer_id": reviewerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build delete query: %w", op, err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: failed to execute delete: %w", op, err)
	}

	return nil
}

func (r *PullRequestRepository) DeletePR(ctx context.Context, tx *sqlx.Tx, prID string) error {
	const op = "internal.repository.postgres.DeletePR"

	reviewersQuery, args, err := r.sq.Delete("pr_reviewers").
		Where(sq.Eq{"pull_request_id": prID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build delete reviewers query: %w", op, err)
	}

	if _, err := tx.ExecContext(ctx, reviewersQuery, args...); err != nil {
		return fmt.Errorf("%s: failed to delete reviewers: %w", op, err)
	}

	prQuery, args, err := r.sq.Delete("pull_requests").
		Where(sq.Eq{"pull_request_id": prID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build delete PR query: %w", op, err)
	}

	res, err := tx.ExecContext(ctx, prQuery, args...)
	if err != nil {
		return fmt.Errorf("%s: failed to delete PR: %w", op, err)
	}

	if rowsAffected, err := res.RowsAffected(); err == nil && rowsAffected == 0 {
		return fmt.Errorf("%s: %w: PR with id '%s'", op, apperrors.ErrNotFound, prID)
	}

	return nil
}

func (r *PullRequestRepository) GetReviewAssignments(ctx context.Context, userID string) ([]domain.PullRequest, error) {
	const op = "internal.repository.postgres.GetReviewAssignments"

	query, args, err := r.sq.Select(
		"pr.pull_request_id", "pr.pull_request_name", "pr.author_id", "pr.status",
	).From("pull_requests pr").
		Join("pr_reviewers r ON pr.pull_request_id = r.pull_request_id").
		Where(sq.Eq{"r.reviewer_id": userID}).
		OrderBy("pr.created_at DESC", "pr.pull_request_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	prs := []domain.PullRequest{}
	if err := r.db.SelectContext(ctx, &prs, query, args...); err != nil {
		return nil, fmt.Errorf("%s: failed to execute query: %w", op, err)
	}

	return prs, nil
}

func (r *PullRequestRepository) GetOpenPRsByReviewers(ctx context.Context, tx *sqlx.Tx, userIDs []string) ([]domain.PullRequest, error) {
	const op = "internal.repository.postgres.GetOpenPRsByReviewers"

	if len(userIDs) == 0 {
		return []domain.PullRequest{}, nil
	}

	prIDsQuery, args, err := r.sq.Select("DISTINCT pr_reviewers.pull_request_id").
		From("pr_reviewers").
		Join("pull_requests pr ON pr.pull_request_id = pr_reviewers.pull_request_id").
		Where(sq.Eq{"pr_reviewers.reviewer_id": userIDs, "pr.status": string(domain.PRStatusOpen)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build pr_ids query: %w", op, err)
	}

	var prIDs []string
	if err := tx.SelectContext(ctx, &prIDs, prIDsQuery, args...); err != nil {
		return nil, fmt.Errorf("%s: failed to select pr_ids: %w", op, err)
	}

	if len(prIDs) == 0 {
		return []domain.PullRequest{}, nil
	}

	// Status is re-checked under the lock: a concurrent merge may have committed in between.
	prsQuery, args, err := r.sq.Select(prColumns...).
		From("pull_requests").
		Where(sq.Eq{"pull_request_id": prIDs, "status": string(domain.PRStatusOpen)}).
		OrderBy("pull_request_id").
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build prs query: %w", op, err)
	}

	var prs []domain.PullRequest
	if err := tx.SelectContext(ctx, &prs, prsQuery, args...); err != nil {
		return nil, fmt.Errorf("%s: failed to select prs: %w", op, err)
	}

	reviewersQuery, args, err := r.sq.Select("pull_request_id", "reviewer_id").
		From("pr_reviewers").
		Where(sq.Eq{"pull_request_id": prIDs}).
		OrderBy("pull_request_id", "reviewer_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build reviewers query: %w", op, err)
	}

	var reviewers []domain.Reviewer
	if err := tx.SelectContext(ctx, &reviewers, reviewersQuery, args...); err != nil {
		return nil, fmt.Errorf("%s: failed to select reviewers: %w", op, err)
	}

	r.log.Debug("locked open PRs", slog.String("op", op), slog.Int("count", len(prs)))

	return mapReviewersToPRs(prs, reviewers), nil
}

// mapReviewersToPRs attaches reviewers to their PRs keeping the order of prs.
func mapReviewersToPRs(prs []domain.PullRequest, reviewers []domain.Reviewer) []domain.PullRequest {
	prIndex := make(map[string]int, len(prs))
	for i := range prs {
		prIndex[prs[i].ID] = i
	}

	for _, reviewer := range reviewers {
		if i, ok := prIndex[reviewer.PullRequestID]; ok {
			prs[i].ReviewerIDs = append(prs[i].ReviewerIDs, reviewer.ReviewerID)
		}
	}

	return prs
}
