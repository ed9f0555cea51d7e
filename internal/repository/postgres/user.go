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

type UserRepository struct {
	db  *sqlx.DB
	log *slog.Logger
	sq  sq.StatementBuilderType
}

func NewUserRepository(db *sqlx.DB, log *slog.Logger) *UserRepository {
	return &UserRepository{
		db:  db,
		log: log,
		sq:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

type userWithTeamName struct {
	UserID   string `db:"user_id"`
	Username string `db:"username"`
	TeamName string `db:"team_name"`
	IsActive bool   `db:"is_active"`
}

func (ur *UserRepository) UpsertUsers(ctx context.Context, tx *sqlx.Tx, users []domain.User) error {
	const op = "internal.repository.postgres.UpsertUsers"

	if len(users) == 0 {
		return nil
	}

	insertBuilder := ur.sq.Insert("users").
		Columns("user_id", "username", "is_active")

	for _, u := range users {
		insertBuilder = insertBuilder.Values(u.ID, u.Username, u.IsActive)
	}

	query, args, err := insertBuilder.Suffix(`
        ON CONFLICT (user_id) DO UPDATE SET
            username = EXCLUDED.username,
            is_active = EXCLUDED.is_active`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build bulk users upsert query: %w", op, err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: failed to execute bulk users upsert: %w", op, err)
	}

	return nil
}

func (ur *UserRepository) GetUserWithTeams(ctx context.Context, ext sqlx.ExtContext, userID string) (*domain.User, error) {
	const op = "internal.repository.postgres.GetUserWithTeams"

	query, args, err := ur.sq.Select("user_id", "username", "is_active").
		From("users").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build user query: %w", op, err)
	}

	var user domain.User
	if err := sqlx.GetContext(ctx, ext, &user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w: user with id '%s'", op, apperrors.ErrNotFound, userID)
		}

		return nil, fmt.Errorf("%s: failed to get user: %w", op, err)
	}

	teamsQuery, args, err := ur.sq.Select("team_name").
		From("team_members").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("team_name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build teams query: %w", op, err)
	}

	if err := sqlx.SelectContext(ctx, ext, &user.Teams, teamsQuery, args...); err != nil {
		return nil, fmt.Errorf("%s: failed to get user teams: %w", op, err)
	}

	return &user, nil
}

func (ur *UserRepository) UserExists(ctx context.Context, userID string) (bool, error) {
	const op = "internal.repository.postgres.UserExists"

	query, args, err := ur.sq.Select("1").
		Prefix("SELECT EXISTS (").
		From("users").
		Where(sq.Eq{"user_id": userID}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var exists bool
	if err := ur.db.GetContext(ctx, &exists, query, args...); err != nil {
		return false, fmt.Errorf("%s: failed to execute query: %w", op, err)
	}

	return exists, nil
}

func (ur *UserRepository) SetIsActive(ctx context.Context, userID string, isActive bool) (*domain.User, error) {
	const op = "internal.repository.postgres.SetIsActive"
	log := ur.log.With(slog.String("op", op), slog.String("user_id", userID))

	query, args, err := ur.sq.Update("users").
		Set("is_active", isActive).
		Where(sq.Eq{"user_id": userID}).
		Suffix(`RETURNING
            users.user_id,
            users.username,
            COALESCE((SELECT MIN(tm.team_name) FROM team_members tm WHERE tm.user_id = users.user_id), '') AS team_name,
            users.is_active`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build update user query: %w", op, err)
	}

	var dbUser userWithTeamName
	if err = ur.db.QueryRowxContext(ctx, query, args...).StructScan(&dbUser); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w: user with id '%s'", op, apperrors.ErrNotFound, userID)
		}

		return nil, fmt.Errorf("%s: failed to execute update user status: %w", op, err)
	}

	log.Debug("user activity updated", slog.Bool("is_active", dbUser.IsActive))

	user := &domain.User{
		ID:       dbUser.UserID,
		Username: dbUser.Username,
		IsActive: dbUser.IsActive,
	}
	if dbUser.TeamName != "" {
		user.Teams = []string{dbUser.TeamName}
	}

	return user, nil
}

func (ur *UserRepository) DeactivateUsers(ctx context.Context, tx *sqlx.Tx, userIDs []string) error {
	const op = "internal.repository.postgres.DeactivateUsers"

	if len(userIDs) == 0 {
		return nil
	}

	query, args, err := ur.sq.Update("users").
		Set("is_active", false).
		Where(sq.Eq{"user_id": userIDs}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build update query: %w", op, err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: failed to execute update: %w", op, err)
	}

	return nil
}

func (ur *UserRepository) GetActiveMemberIDs(ctx context.Context, ext sqlx.ExtContext, teamNames []string) ([]string, error) {
	const op = "internal.repository.postgres.GetActiveMemberIDs"

	if len(teamNames) == 0 {
		return []string{}, nil
	}

	query, args, err := ur.sq.Select("DISTINCT tm.user_id").
		From("team_members tm").
		Join("users u ON u.user_id = tm.user_id").
		Where(sq.Eq{"tm.team_name": teamNames, "u.is_active": true}).
		OrderBy("tm.user_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	ids := []string{}
	if err := sqlx.SelectContext(ctx, ext, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("%s: failed to select active members: %w", op, err)
	}

	return ids, nil
}
