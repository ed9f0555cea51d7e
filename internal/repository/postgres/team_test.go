//go:build integration

package postgres

import (
	"context"
	"testing"

	"github.com/YusovID/review-assigner/internal/apperrors"
	"github.com/YusovID/review-assigner/internal/domain"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamRepository_UpsertReconcilesMembership(t *testing.T) {
	truncateTables(t, testDB)
	ctx := context.Background()
	repo := NewTeamRepository(testDB, logger)

	seedTeam(t, "backend",
		domain.User{ID: "u1", Username: "Alice", IsActive: true},
		domain.User{ID: "u2", Username: "Bob", IsActive: true},
	)
	seedTeam(t, "backend",
		domain.User{ID: "u2", Username: "Bobby", IsActive: false},
		domain.User{ID: "u3", Username: "Carol", IsActive: true},
	)

	team, err := repo.GetTeamByName(ctx, testDB, "backend")
	require.NoError(t, err)
	require.Len(t, team.Members, 2)
	assert.Equal(t, "u2", team.Members[0].ID)
	assert.Equal(t, "Bobby", team.Members[0].Username)
	assert.False(t, team.Members[0].IsActive)
	assert.Equal(t, "u3", team.Members[1].ID)

	// u1 left the team but still exists as a user.
	exists, err := NewUserRepository(testDB, logger).UserExists(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestTeamRepository_UserInSeveralTeams(t *testing.T) {
	truncateTables(t, testDB)
	ctx := context.Background()

	seedTeam(t, "backend", domain.User{ID: "u1", Username: "Alice", IsActive: true})
	seedTeam(t, "infra", domain.User{ID: "u1", Username: "Alice", IsActive: true})

	user, err := NewUserRepository(testDB, logger).GetUserWithTeams(ctx, testDB, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"backend", "infra"}, user.Teams)
}

func TestTeamRepository_GetTeamByName_NotFoundIntegration(t *testing.T) {
	truncateTables(t, testDB)

	_, err := NewTeamRepository(testDB, logger).GetTeamByName(context.Background(), testDB, "ghost")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestTeamRepository_DeleteTeamKeepsUsers(t *testing.T) {
	truncateTables(t, testDB)
	ctx := context.Background()
	repo := NewTeamRepository(testDB, logger)

	seedTeam(t, "backend",
		domain.User{ID: "u1", Username: "Alice", IsActive: true},
		domain.User{ID: "u2", Username: "Bob", IsActive: true},
	)

	inTx(t, func(tx *sqlx.Tx) error { return repo.DeleteTeam(ctx, tx, "backend") })

	_, err := repo.GetTeamByName(ctx, testDB, "backend")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	user, err := NewUserRepository(testDB, logger).GetUserWithTeams(ctx, testDB, "u1")
	require.NoError(t, err)
	assert.Empty(t, user.Teams)
}
