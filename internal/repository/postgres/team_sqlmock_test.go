package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/YusovID/review-assigner/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamRepository_SyncMembers(t *testing.T) {
	t.Run("Empty list clears the team", func(t *testing.T) {
		db, smock := newSQLMock(t)
		repo := NewTeamRepository(db, discardLogger())
		tx := beginMockTx(t, db, smock)

		smock.ExpectExec(regexp.QuoteMeta("DELETE FROM team_members WHERE team_name = $1 AND (1=1)")).
			WithArgs("backend").
			WillReturnResult(sqlmock.NewResult(0, 3))

		require.NoError(t, repo.SyncMembers(context.Background(), tx, "backend", []string{}))
		assert.NoError(t, smock.ExpectationsWereMet())
	})

	t.Run("Removes strangers then inserts missing", func(t *testing.T) {
		db, smock := newSQLMock(t)
		repo := NewTeamRepository(db, discardLogger())
		tx := beginMockTx(t, db, smock)

		smock.ExpectExec(regexp.QuoteMeta("DELETE FROM team_members WHERE team_name = $1 AND user_id NOT IN ($2,$3)")).
			WithArgs("backend", "u1", "u2").
			WillReturnResult(sqlmock.NewResult(0, 1))
		smock.ExpectExec(regexp.QuoteMeta("INSERT INTO team_members (team_name,user_id) VALUES ($1,$2),($3,$4) ON CONFLICT (team_name, user_id) DO NOTHING")).
			WithArgs("backend", "u1", "backend", "u2").
			WillReturnResult(sqlmock.NewResult(0, 2))

		require.NoError(t, repo.SyncMembers(context.Background(), tx, "backend", []string{"u1", "u2"}))
		assert.NoError(t, smock.ExpectationsWereMet())
	})
}

func TestTeamRepository_GetTeamByName_NotFound(t *testing.T) {
	db, smock := newSQLMock(t)
	repo := NewTeamRepository(db, discardLogger())

	smock.ExpectQuery(regexp.QuoteMeta("SELECT team_name FROM teams WHERE team_name = $1")).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetTeamByName(context.Background(), db, "ghost")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestTeamRepository_GetTeamByName_EmptyTeam(t *testing.T) {
	db, smock := newSQLMock(t)
	repo := NewTeamRepository(db, discardLogger())

	smock.ExpectQuery("FROM teams").
		WillReturnRows(sqlmock.NewRows([]string{"team_name"}).AddRow("empty"))
	smock.ExpectQuery("FROM team_members tm JOIN users u").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "username", "is_active"}))

	team, err := repo.GetTeamByName(context.Background(), db, "empty")
	require.NoError(t, err)
	assert.Equal(t, "empty", team.Name)
	assert.NotNil(t, team.Members)
	assert.Empty(t, team.Members)
}

func TestTeamRepository_DeleteTeam(t *testing.T) {
	t.Run("Memberships are deleted before the team", func(t *testing.T) {
		db, smock := newSQLMock(t)
		repo := NewTeamRepository(db, discardLogger())
		tx := beginMockTx(t, db, smock)

		smock.ExpectExec(regexp.QuoteMeta("DELETE FROM team_members WHERE team_name = $1")).
			WithArgs("backend").
			WillReturnResult(sqlmock.NewResult(0, 4))
		smock.ExpectExec(regexp.QuoteMeta("DELETE FROM teams WHERE team_name = $1")).
			WithArgs("backend").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.DeleteTeam(context.Background(), tx, "backend"))
		assert.NoError(t, smock.ExpectationsWereMet())
	})

	t.Run("Missing team", func(t *testing.T) {
		db, smock := newSQLMock(t)
		repo := NewTeamRepository(db, discardLogger())
		tx := beginMockTx(t, db, smock)

		smock.ExpectExec("DELETE FROM team_members").WillReturnResult(sqlmock.NewResult(0, 0))
		smock.ExpectExec("DELETE FROM teams").WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.DeleteTeam(context.Background(), tx, "ghost"), apperrors.ErrNotFound)
	})
}
