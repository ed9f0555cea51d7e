package service

import (
	"io"
	"log/slog"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newMockDBAndTx(t *testing.T) (*sqlx.DB, *sqlx.Tx, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, smock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { mockDB.Close() })

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	smock.ExpectBegin()

	tx, err := sqlxDB.Beginx()
	require.NoError(t, err)

	return sqlxDB, tx, smock
}

// firstPicker always takes the lowest indices, so the first ids of the sorted pool win.
type firstPicker struct{}

func (firstPicker) Pick(n, k int) []int {
	if k > n {
		k = n
	}

	idx := make([]int, 0, k)
	for i := 0; i < k; i++ {
		idx = append(idx, i)
	}

	return idx
}

// lastPicker takes the highest indices, highest first.
type lastPicker struct{}

func (lastPicker) Pick(n, k int) []int {
	if k > n {
		k = n
	}

	idx := make([]int, 0, k)
	for i := 0; i < k; i++ {
		idx = append(idx, n-1-i)
	}

	return idx
}
