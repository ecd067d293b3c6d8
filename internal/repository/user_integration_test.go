//go:build integration

package repository

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go/modules/compose"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/xenking/sandwich-unwrapped/internal/domain/user"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	os.Exit(testMain(m))
}

func testMain(m *testing.M) int {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	dc, err := tc.NewDockerCompose("testdata/docker-compose.yml")
	if err != nil {
		log.Fatalf("compose init: %v", err)
	}
	defer func() {
		if err := dc.Down(context.Background(), tc.RemoveOrphans(true), tc.RemoveVolumes(true)); err != nil {
			log.Printf("compose down: %v", err)
		}
	}()

	err = dc.
		WaitForService("postgres", wait.ForListeningPort("5432/tcp")).
		Up(ctx, tc.Wait(true))
	if err != nil {
		log.Fatalf("compose up: %v", err)
	}

	pg, err := dc.ServiceContainer(ctx, "postgres")
	if err != nil {
		log.Fatalf("postgres container: %v", err)
	}
	host, err := pg.Host(ctx)
	if err != nil {
		log.Fatalf("host: %v", err)
	}
	port, err := pg.MappedPort(ctx, "5432/tcp")
	if err != nil {
		log.Fatalf("mapped port: %v", err)
	}

	url := fmt.Sprintf("postgres://sandwich:sandwich@%s:%s/sandwich?sslmode=disable", host, port.Port())
	testPool, err = NewPool(ctx, url)
	if err != nil {
		log.Fatalf("pool: %v", err)
	}
	defer testPool.Close()

	if err := RunMigrations(ctx, testPool); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	return m.Run()
}

func TestRunMigrations_Idempotent(t *testing.T) {
	require.NoError(t, RunMigrations(context.Background(), testPool))
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(testPool)

	created, err := repo.Upsert(ctx, "Ada", "Lovelace")
	require.NoError(t, err)
	assert.Positive(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	again, err := repo.Upsert(ctx, "Ada", "Lovelace")
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)

	byName, err := repo.FindByName(ctx, "Ada", "Lovelace")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	byID, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lovelace", byID.LastName)

	_, err = repo.FindByName(ctx, "ada", "lovelace")
	require.ErrorIs(t, err, user.ErrNotFound)

	_, err = repo.FindByID(ctx, -1)
	require.ErrorIs(t, err, user.ErrNotFound)
}

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(testPool)

	created, err := repo.Create(ctx, "Grace", "Hopper")
	require.NoError(t, err)
	assert.Equal(t, "Grace", created.FirstName)

	_, err = repo.Create(ctx, "Grace", "Hopper")
	require.ErrorIs(t, err, user.ErrExists)
}
