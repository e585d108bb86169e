// Package dbtest connects tests to the Postgres database named by TEST_DB_DSN.
// Tests using it are skipped when the variable is unset. Every seed helper
// creates rows with fresh keys so packages can share one database while
// running in parallel.
package dbtest

import (
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"

	"github.com/salareserva/room-reservation-backend/internal/db"
)

var (
	once     sync.Once
	pool     *pgxpool.Pool
	setupErr error
)

// Pool returns a pool on the migrated test database, or skips t when
// TEST_DB_DSN is not set.
func Pool(t testing.TB) *pgxpool.Pool {
	t.Helper()

	loadEnv()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN is not set")
	}

	once.Do(func() {
		pool, setupErr = db.NewPool(context.Background(), dsn, 20)
		if setupErr != nil {
			return
		}
		setupErr = db.MigrateUp(pool)
	})
	require.NoError(t, setupErr, "failed to prepare test database")
	return pool
}

// loadEnv reads the .env next to go.mod, if any. Variables already set win.
func loadEnv() {
	dir, err := os.Getwd()
	if err != nil {
		return
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			_ = godotenv.Load(filepath.Join(dir, ".env"))
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// SeedUser inserts a user under an unused matricula and returns it.
func SeedUser(t testing.TB, p *pgxpool.Pool, name string) int {
	t.Helper()
	ctx := context.Background()

	for attempt := 0; attempt < 5; attempt++ {
		rngMu.Lock()
		matricula := 100000 + rng.Intn(2_000_000_000)
		rngMu.Unlock()

		tag, err := p.Exec(ctx,
			`INSERT INTO public.users (matricula, name, ramal, sector) VALUES ($1, $2, '2001', 'TI')
			ON CONFLICT (matricula) DO NOTHING`,
			matricula, name)
		require.NoError(t, err)
		if tag.RowsAffected() == 1 {
			return matricula
		}
	}
	t.Fatal("could not pick a free matricula")
	return 0
}

// SeedRoom inserts a room with a unique name and the given resources
// (name to quantity). It returns the room id and name.
func SeedRoom(t testing.TB, p *pgxpool.Pool, available bool, resources map[string]int) (string, string) {
	t.Helper()
	ctx := context.Background()

	name := "Sala " + uuid.NewString()[:8]
	var id string
	err := p.QueryRow(ctx,
		`INSERT INTO public.rooms (name, capacity, is_available) VALUES ($1, 8, $2) RETURNING id`,
		name, available).Scan(&id)
	require.NoError(t, err)

	for resource, qty := range resources {
		_, err := p.Exec(ctx,
			`INSERT INTO public.room_resources (room_id, name, quantity) VALUES ($1, $2, $3)`,
			id, resource, qty)
		require.NoError(t, err)
	}
	return id, name
}

// SeedReservation inserts a reservation row directly, bypassing the overlap check.
func SeedReservation(t testing.TB, p *pgxpool.Pool, userID int, roomID string, start, end time.Time, status string) string {
	t.Helper()

	var id string
	err := p.QueryRow(context.Background(),
		`INSERT INTO public.reservations (user_id, room_id, start_time, end_time, status)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		userID, roomID, start, end, status).Scan(&id)
	require.NoError(t, err)
	return id
}
