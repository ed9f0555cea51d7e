package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/YusovID/review-assigner/internal/apperrors"
	"github.com/YusovID/review-assigner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_GetUserWithTeams(t *testing.T) {
	t.Run("Loads sorted teams", func(t *testing.T) {
		db, smock := newSQLMock(t)
		repo := NewUserRepository(db, discardLogger())

		smock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, username, is_active FROM users WHERE user_id = $1")).
			WithArgs("u1").
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "username", "is_active"}).AddRow("u1", "Alice", true))
		smock.ExpectQuery(regexp.QuoteMeta("SELECT team_name FROM team_members WHERE user_id = $1 ORDER BY team_name")).
			WithArgs("u1").
			WillReturnRows(sqlmock.NewRows([]string{"team_name"}).AddRow("backend").AddRow("infra"))

		user, err := repo.GetUserWithTeams(context.Background(), db, "u1")
		require.NoError(t, err)
		assert.Equal(t, "Alice", user.Username)
		assert.Equal(t, []string{"backend", "infra"}, user.Teams)
		assert.Equal(t, "backend", user.PrimaryTeam())
	})

	t.Run("Not found", func(t *testing.T) {
		db, smock := newSQLMock(t)
		repo := NewUserRepository(db, discardLogger())

		smock.ExpectQuery("FROM users").WillReturnError(sql.ErrNoRows)

		_, err := repo.GetUserWithTeams(context.Background(), db, "ghost")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestUserRepository_GetActiveMemberIDs(t *testing.T) {
	t.Run("No teams issues no statement", func(t *testing.T) {
		db, smock := newSQLMock(t)
		repo := NewUserRepository(db, discardLogger())

		ids, err := repo.GetActiveMemberIDs(context.Background(), db, nil)
		require.NoError(t, err)
		assert.Empty(t, ids)
		assert.NoError(t, smock.ExpectationsWereMet())
	})

	t.Run("Filters by team and activity", func(t *testing.T) {
		db, smock := newSQLMock(t)
		repo := NewUserRepository(db, discardLogger())

		smock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT tm.user_id FROM team_members tm JOIN users u ON u.user_id = tm.user_id WHERE tm.team_name IN ($1,$2) AND u.is_active = $3 ORDER BY tm.user_id")).
			WithArgs("backend", "infra", true).
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow("u1").AddRow("u2"))

		ids, err := repo.GetActiveMemberIDs(context.Background(), db, []string{"backend", "infra"})
		require.NoError(t, err)
		assert.Equal(t, []string{"u1", "u2"}, ids)
	})
}

func TestUserRepository_UpsertUsers(t *testing.T) {
	db, smock := newSQLMock(t)
	repo := NewUserRepository(db, discardLogger())
	tx := beginMockTx(t, db, smock)

	smock.ExpectExec(`INSERT INTO users \(user_id,username,is_active\) VALUES \(\$1,\$2,\$3\),\(\$4,\$5,\$6\)\s+ON CONFLICT \(user_id\) DO UPDATE`).
		WithArgs("u1", "Alice", true, "u2", "Bob", false).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.UpsertUsers(context.Background(), tx, []domain.User{
		{ID: "u1", Username: "Alice", IsActive: true},
		{ID: "u2", Username: "Bob", IsActive: false},
	})
	require.NoError(t, err)
	assert.NoError(t, smock.ExpectationsWereMet())
}

func TestUserRepository_SetIsActive(t *testing.T) {
	t.Run("Team-less user", func(t *testing.T) {
		db, smock := newSQLMock(t)
		repo := NewUserRepository(db, discardLogger())

		smock.ExpectQuery(`UPDATE users SET is_active = \$1 WHERE user_id = \$2 RETURNING`).
			WithArgs(false, "u1").
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "username", "team_name", "is_active"}).
				AddRow("u1", "Alice", "", false))

		user, err := repo.SetIsActive(context.Background(), "u1", false)
		require.NoError(t, err)
		assert.False(t, user.IsActive)
		assert.Empty(t, user.Teams)
	})

	t.Run("Not found", func(t *testing.T) {
		db, smock := newSQLMock(t)
		repo := NewUserRepository(db, discardLogger())

		smock.ExpectQuery("UPDATE users").WillReturnError(sql.ErrNoRows)

		_, err := repo.SetIsActive(context.Background(), "ghost", true)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestUserRepository_UserExists(t *testing.T) {
	db, smock := newSQLMock(t)
	repo := NewUserRepository(db, discardLogger())

	smock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS ( SELECT 1 FROM users WHERE user_id = $1 )")).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.UserExists(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, exists)
}
