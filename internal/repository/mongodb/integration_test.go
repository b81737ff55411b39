//go:build integration

package mongodb_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/msomdec/exercise-tracker/internal/domain"
	"github.com/msomdec/exercise-tracker/internal/repository/mongodb"
)

var uri string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "27017")
	if err != nil {
		panic(err)
	}
	uri = fmt.Sprintf("mongodb://%s:%s", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func newTestDB(t *testing.T) *mongodb.DB {
	t.Helper()
	ctx := context.Background()
	db, err := mongodb.New(ctx, uri, "exercise_tracker_"+uuid.NewString()[:8])
	require.NoError(t, err)
	require.NoError(t, db.Migrate(ctx))
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := db.Users()

	alice := &domain.User{Username: "alice"}
	require.NoError(t, users.Create(ctx, alice))
	require.Len(t, alice.ID, 24)

	err := users.Create(ctx, &domain.User{Username: "alice"})
	require.ErrorIs(t, err, domain.ErrDuplicateUsername)

	found, err := users.GetByID(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, "alice", found.Username)

	_, err = users.GetByID(ctx, "not-an-object-id")
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = users.GetByID(ctx, "5f1d7f3e2c9a4b0012345678")
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, users.Create(ctx, &domain.User{Username: "bob"}))
	all, err := users.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestExercises(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	user := &domain.User{Username: "runner"}
	require.NoError(t, db.Users().Create(ctx, user))

	for _, d := range []string{"2022-12-31", "2023-01-01", "2023-01-15", "2023-01-31", "2023-02-01"} {
		day, err := domain.ParseDay(d)
		require.NoError(t, err)
		require.NoError(t, db.Exercises().Create(ctx, &domain.Exercise{
			UserID:      user.ID,
			Description: "run",
			Duration:    30,
			Date:        day,
		}))
	}

	from, _ := domain.ParseDay("2023-01-01")
	to, _ := domain.ParseDay("2023-01-31")

	inRange, err := db.Exercises().List(ctx, domain.LogFilter{UserID: user.ID, From: from, To: to})
	require.NoError(t, err)
	require.Len(t, inRange, 3)
	for _, e := range inRange {
		require.False(t, e.Date.Before(from))
		require.False(t, to.Before(e.Date))
	}

	limited, err := db.Exercises().List(ctx, domain.LogFilter{UserID: user.ID, Limit: 2})
	require.NoError(t, err)
	require.Len(t, limited, 2)
	require.Equal(t, "2022-12-31", limited[0].Date.String())
}
