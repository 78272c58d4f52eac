//go:build integration

package db_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/shandysiswandi/roster/internal/member/entity"
	"github.com/shandysiswandi/roster/internal/member/outbound/db"
	"github.com/shandysiswandi/roster/internal/pkg/goerror"
	"github.com/shandysiswandi/roster/internal/pkg/instrument"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:18-alpine",
		postgres.WithDatabase("roster_test"),
		postgres.WithUsername("roster"),
		postgres.WithPassword("roster_test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start postgres container: %v\n", err)
		os.Exit(1)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		fmt.Fprintf(os.Stderr, "failed to get postgres connection string: %v\n", err)
		os.Exit(1)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		_ = container.Terminate(ctx)
		fmt.Fprintf(os.Stderr, "failed to connect to postgres: %v\n", err)
		os.Exit(1)
	}

	if err := runMigrations(ctx, pool); err != nil {
		pool.Close()
		_ = container.Terminate(ctx)
		fmt.Fprintf(os.Stderr, "failed to run migrations: %v\n", err)
		os.Exit(1)
	}

	testPool = pool
	code := m.Run()

	pool.Close()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

// runMigrations applies every *.up.sql file from db/migrations in order.
func runMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	dir := filepath.Join("..", "..", "..", "..", "db", "migrations")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".up.sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	for _, file := range files {
		content, err := os.ReadFile(filepath.Join(dir, file))
		if err != nil {
			return fmt.Errorf("read migration %s: %w", file, err)
		}
		if _, err := pool.Exec(ctx, string(content)); err != nil {
			return fmt.Errorf("execute migration %s: %w", file, err)
		}
	}

	return nil
}

// newStore truncates the members table so each test starts clean.
func newStore(t *testing.T) *db.DB {
	t.Helper()

	if _, err := testPool.Exec(context.Background(), "TRUNCATE TABLE members RESTART IDENTITY"); err != nil {
		t.Fatalf("truncate members: %v", err)
	}

	return db.NewDB(testPool, instrument.NewNoop())
}

func newMember(name, email, phone string) entity.NewMember {
	return entity.NewMember{Name: name, Email: email, Phone: phone, CreatedAt: time.Now().UTC()}
}

func TestGetMemberListOrdersByName(t *testing.T) {
	// Arrange
	store := newStore(t)
	ctx := context.Background()

	for _, m := range []entity.NewMember{
		newMember("Pam Beesly", "pam@example.com", "0123456701"),
		newMember("Alice Cooper", "alice@example.com", "0123456702"),
		newMember("Mo Salah", "mo@example.com", "0123456703"),
	} {
		if _, err := store.CreateMember(ctx, m); err != nil {
			t.Fatalf("failed to create member %q: %v", m.Name, err)
		}
	}

	// Act
	members, err := store.GetMemberList(ctx)

	// Assert
	if err != nil {
		t.Fatalf("expected member list, got error %v", err)
	}
	want := []string{"Alice Cooper", "Mo Salah", "Pam Beesly"}
	if len(members) != len(want) {
		t.Fatalf("expected %d members, got %d", len(want), len(members))
	}
	for i, name := range want {
		if members[i].Name != name {
			t.Fatalf("expected member %d to be %q, got %q", i, name, members[i].Name)
		}
	}
}

func TestGetMemberListEmpty(t *testing.T) {
	// Arrange
	store := newStore(t)

	// Act
	members, err := store.GetMemberList(context.Background())

	// Assert
	if err != nil {
		t.Fatalf("expected empty list, got error %v", err)
	}
	if members == nil || len(members) != 0 {
		t.Fatalf("expected non-nil empty slice, got %v", members)
	}
}

func TestCreateMemberDuplicateEmailReturnsConflict(t *testing.T) {
	// Arrange
	store := newStore(t)
	ctx := context.Background()

	if _, err := store.CreateMember(ctx, newMember("Jane Doe", "jane@example.com", "0123456789")); err != nil {
		t.Fatalf("failed to create first member: %v", err)
	}

	// Act
	_, err := store.CreateMember(ctx, newMember("John Doe", "jane@example.com", "0123456780"))

	// Assert
	if !errors.Is(err, goerror.ErrConflict) {
		t.Fatalf("expected conflict from duplicate email, got %v", err)
	}
}

func TestCreateMemberDuplicateNameReturnsConflict(t *testing.T) {
	// Arrange
	store := newStore(t)
	ctx := context.Background()

	if _, err := store.CreateMember(ctx, newMember("Jane Doe", "jane@example.com", "0123456789")); err != nil {
		t.Fatalf("failed to create first member: %v", err)
	}

	// Act
	_, err := store.CreateMember(ctx, newMember("Jane Doe", "other@example.com", "0123456780"))

	// Assert
	if !errors.Is(err, goerror.ErrConflict) {
		t.Fatalf("expected conflict from duplicate name, got %v", err)
	}
}

func TestGetMemberByIDMissReturnsNotFound(t *testing.T) {
	// Arrange
	store := newStore(t)

	// Act
	_, err := store.GetMemberByID(context.Background(), 42)

	// Assert
	if !errors.Is(err, goerror.ErrNotFound) {
		t.Fatalf("expected not found for unknown id, got %v", err)
	}
}

func TestGetMemberByFieldRoundTrip(t *testing.T) {
	// Arrange
	store := newStore(t)
	ctx := context.Background()

	id, err := store.CreateMember(ctx, newMember("Jane Doe", "jane@example.com", "0123456789"))
	if err != nil {
		t.Fatalf("failed to create member: %v", err)
	}
	if id == 0 {
		t.Fatal("expected storage to assign a non-zero id")
	}

	// Act
	byEmail, errEmail := store.GetMemberByField(ctx, "email", "jane@example.com")
	_, errMiss := store.GetMemberByField(ctx, "email", "nobody@example.com")

	// Assert
	if errEmail != nil {
		t.Fatalf("expected member by email, got error %v", errEmail)
	}
	if byEmail.ID != id || byEmail.Name != "Jane Doe" || byEmail.Phone != "0123456789" {
		t.Fatalf("expected inserted member back, got %+v", byEmail)
	}
	if !errors.Is(errMiss, goerror.ErrNotFound) {
		t.Fatalf("expected not found for unknown email, got %v", errMiss)
	}
}
