package postgres

import (
	"context"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/YusovID/review-assigner/internal/domain"
	"github.com/jmoiron/sqlx"
)

type StatsRepository struct {
	db  *sqlx.DB
	log *slog.Logger
	sq  sq.StatementBuilderType
}

func NewStatsRepository(db *sqlx.DB, log *slog.Logger) *StatsRepository {
	return &StatsRepository{
		db:  db,
		log: log,
		sq:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *StatsRepository) GetAssignmentsPerReviewer(ctx context.Context) ([]domain.UserCount, error) {
	const op = "internal.repository.postgres.GetAssignmentsPerReviewer"

	query, args, err := r.sq.Select("reviewer_id AS user_id", "COUNT(*) AS count").
		From("pr_reviewers").
		GroupBy("reviewer_id").
		OrderBy("count DESC", "user_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	counts := []domain.UserCount{}
	if err := r.db.SelectContext(ctx, &counts, query, args...); err != nil {
		return nil, fmt.Errorf("%s: failed to execute query: %w", op, err)
	}

	return counts, nil
}

func (r *StatsRepository) GetPRsPerAuthor(ctx context.Context, status domain.PRStatus) ([]domain.UserCount, error) {
	const op = "internal.repository.postgres.GetPRsPerAuthor"

	query, args, err := r.sq.Select("author_id AS user_id", "COUNT(*) AS count").
		From("pull_requests").
		Where(sq.Eq{"status": string(status)}).
		GroupBy("author_id").
		OrderBy("count DESC", "user_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	counts := []domain.UserCount{}
	if err := r.db.SelectContext(ctx, &counts, query, args...); err != nil {
		return nil, fmt.Errorf("%s: failed to execute query: %w", op, err)
	}

	return counts, nil
}

type statusCount struct {
	Status domain.PRStatus `db:"status"`
	Count  int             `db:"count"`
}

// GetPRCountByStatus always reports both statuses, zero when absent.
func (r *StatsRepository) GetPRCountByStatus(ctx context.Context) (map[domain.PRStatus]int, error) {
	const op = "internal.repository.postgres.GetPRCountByStatus"

	query, args, err := r.sq.Select("status", "COUNT(*) AS count").
		From("pull_requests").
		GroupBy("status").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var rows []statusCount
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: failed to execute query: %w", op, err)
	}

	counts := map[domain.PRStatus]int{
		domain.PRStatusOpen:   0,
		domain.PRStatusMerged: 0,
	}
	for _, row := range rows {
		counts[row.Status] = row.Count
	}

	return counts, nil
}

func (r *StatsRepository) GetUserStats(ctx context.Context) ([]domain.ReviewStats, error) {
	const op = "internal.repository.postgres.GetUserStats"

	query, args, err := r.sq.Select(
		"u.user_id",
		"u.username",
		"COUNT(CASE WHEN pr.status = 'OPEN' THEN 1 END) AS open_reviews",
		"COUNT(CASE WHEN pr.status = 'MERGED' THEN 1 END) AS merged_reviews",
	).
		From("users u").
		LeftJoin("pr_reviewers r ON u.user_id = r.reviewer_id").
		LeftJoin("pull_requests pr ON r.pull_request_id = pr.pull_request_id").
		GroupBy("u.user_id", "u.username").
		OrderBy("u.user_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	stats := []domain.ReviewStats{}
	if err := r.db.SelectContext(ctx, &stats, query, args...); err != nil {
		return nil, fmt.Errorf("%s: failed to execute query: %w", op, err)
	}

	r.log.Debug("user stats collected", slog.String("op", op), slog.Int("users", len(stats)))

	return stats, nil
}
