package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/YusovID/review-assigner/internal/apperrors"
	"github.com/YusovID/review-assigner/internal/domain"
	"github.com/jmoiron/sqlx"
)

type TeamRepository struct {
	db  *sqlx.DB
	log *slog.Logger
	sq  sq.StatementBuilderType
}

func NewTeamRepository(db *sqlx.DB, log *slog.Logger) *TeamRepository {
	return &TeamRepository{
		db:  db,
		log: log,
		sq:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (tr *TeamRepository) EnsureTeam(ctx context.Context, tx *sqlx.Tx, teamName string) error {
	const op = "internal.repository.postgres.EnsureTeam"

	query, args, err := tr.sq.Insert("teams").
		Columns("team_name").
		Values(teamName).
		Suffix("ON CONFLICT (team_name) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build insert query: %w", op, err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: failed to execute insert: %w", op, err)
	}

	return nil
}

func (tr *TeamRepository) SyncMembers(ctx context.Context, tx *sqlx.Tx, teamName string, userIDs []string) error {
	const op = "internal.repository.postgres.SyncMembers"

	// NotEq with an empty list renders as (1=1), so an empty userIDs clears the team.
	deleteQuery, deleteArgs, err := tr.sq.Delete("team_members").
		Where(sq.Eq{"team_name": teamName}).
		Where(sq.NotEq{"user_id": userIDs}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build delete query: %w", op, err)
	}

	res, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...)
	if err != nil {
		return fmt.Errorf("%s: failed to execute delete: %w", op, err)
	}

	if removed, err := res.RowsAffected(); err == nil && removed > 0 {
		tr.log.Debug("removed team memberships", slog.String("op", op),
			slog.String("team_name", teamName), slog.Int64("count", removed))
	}

	if len(userIDs) == 0 {
		return nil
	}

	insertBuilder := tr.sq.Insert("team_members").
		Columns("team_name", "user_id")

	for _, userID := range userIDs {
		insertBuilder = insertBuilder.Values(teamName, userID)
	}

	insertQuery, insertArgs, err := insertBuilder.
		Suffix("ON CONFLICT (team_name, user_id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build insert query: %w", op, err)
	}

	if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%s: %w: member of team '%s'", op, apperrors.ErrNotFound, teamName)
		}

		return fmt.Errorf("%s: failed to execute insert: %w", op, err)
	}

	return nil
}

func (tr *TeamRepository) GetTeamByName(ctx context.Context, ext sqlx.ExtContext, name string) (*domain.TeamWithMembers, error) {
	const op = "internal.repository.postgres.GetTeamByName"

	query, args, err := tr.sq.Select("team_name").
		From("teams").
		Where(sq.Eq{"team_name": name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build select team query: %w", op, err)
	}

	var team domain.Team
	if err := sqlx.GetContext(ctx, ext, &team, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w: team with name '%s'", op, apperrors.ErrNotFound, name)
		}

		return nil, fmt.Errorf("%s: failed to get team by name: %w", op, err)
	}

	membersQuery, args, err := tr.sq.Select("u.user_id", "u.username", "u.is_active").
		From("team_members tm").
		Join("users u ON u.user_id = tm.user_id").
		Where(sq.Eq{"tm.team_name": name}).
		OrderBy("u.user_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build select members query: %w", op, err)
	}

	members := []domain.User{}
	if err := sqlx.SelectContext(ctx, ext, &members, membersQuery, args...); err != nil {
		return nil, fmt.Errorf("%s: failed to get team members: %w", op, err)
	}

	return &domain.TeamWithMembers{
		Name:    team.Name,
		Members: members,
	}, nil
}

func (tr *TeamRepository) DeleteTeam(ctx context.Context, tx *sqlx.Tx, name string) error {
	const op = "internal.repository.postgres.DeleteTeam"

	membersQuery, args, err := tr.sq.Delete("team_members").
		Where(sq.Eq{"team_name": name}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build delete members query: %w", op, err)
	}

	if _, err := tx.ExecContext(ctx, membersQuery, args...); err != nil {
		return fmt.Errorf("%s: failed to delete members: %w", op, err)
	}

	teamQuery, args, err := tr.sq.Delete("teams").
		Where(sq.Eq{"team_name": name}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build delete team query: %w", op, err)
	}

	res, err := tx.ExecContext(ctx, teamQuery, args...)
	if err != nil {
		return fmt.Errorf("%s: failed to delete team: %w", op, err)
	}

	if rowsAffected, err := res.RowsAffected(); err == nil && rowsAffected == 0 {
		return fmt.Errorf("%s: %w: team with name '%s'", op, apperrors.ErrNotFound, name)
	}

	return nil
}
