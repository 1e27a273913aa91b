package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hangingPinger never answers until its context is done.
type hangingPinger struct{}

func (hangingPinger) PingContext(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestPing_GivesUpAfterTimeout(t *testing.T) {
	start := time.Now()
	err := Ping(context.Background(), hangingPinger{}, 50*time.Millisecond)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, err.Error(), "failed to ping database")
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestPing_Reachable(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing()
	require.NoError(t, Ping(context.Background(), sqlx.NewDb(db, "postgres"), PingTimeout))
	assert.NoError(t, mock.ExpectationsWereMet())
}
