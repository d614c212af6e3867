package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"testing"
	"time"

	"barcode-scanner/internal/database"
	"barcode-scanner/internal/repository"
	"barcode-scanner/internal/repository/repositorytest"

	"github.com/shopspring/decimal"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var testDB *sql.DB

func setupTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, error) {
	var (
		dbName = "testdb"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:15",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return nil, err
	}

	connStr, err := dbContainer.ConnectionString(context.Background(), "sslmode=disable")
	if err != nil {
		return dbContainer.Terminate, err
	}

	testDB, err = sql.Open("pgx", connStr)
	if err != nil {
		return dbContainer.Terminate, err
	}

	if err := database.RunMigrations(testDB, "../../migrations", zap.NewNop()); err != nil {
		return dbContainer.Terminate, err
	}

	return dbContainer.Terminate, nil
}

func TestMain(m *testing.M) {
	teardown, err := setupTestDB()
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}

	code := m.Run()

	if teardown != nil {
		if err := teardown(context.Background()); err != nil {
			log.Fatalf("could not teardown postgres container: %v", err)
		}
	}

	if code != 0 {
		log.Fatalf("tests failed with code %d", code)
	}
}

func truncate(t *testing.T) {
	t.Helper()
	_, err := testDB.Exec(`TRUNCATE products, brands, nutrition_facts, product_reviews RESTART IDENTITY CASCADE`)
	if err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}
}

func TestPostgresProductRepository(t *testing.T) {
	repositorytest.RunProductContract(t, func(t *testing.T) repository.ProductRepository {
		truncate(t)
		return repository.NewProductRepository(testDB, 5*time.Second)
	})
}

func TestPostgresBrandRepository(t *testing.T) {
	repositorytest.RunBrandContract(t, func(t *testing.T) repository.BrandRepository {
		truncate(t)
		return repository.NewBrandRepository(testDB, 5*time.Second)
	})
}

func TestDeleteCascadesToNutritionFacts(t *testing.T) {
	truncate(t)
	ctx := context.Background()
	repo := repository.NewProductRepository(testDB, 5*time.Second)

	p := repositorytest.NewProduct("Butter", "Amul", 10)
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("failed to create product: %v", err)
	}

	if _, err := testDB.Exec(`INSERT INTO nutrition_facts (product_id, serving_size, calories_per_serving) VALUES ($1, '10g', 72)`, p.ID); err != nil {
		t.Fatalf("failed to insert nutrition facts: %v", err)
	}

	if err := repo.Delete(ctx, p.ID); err != nil {
		t.Fatalf("failed to delete product: %v", err)
	}

	var n int
	if err := testDB.QueryRow(`SELECT COUNT(*) FROM nutrition_facts WHERE product_id = $1`, p.ID).Scan(&n); err != nil {
		t.Fatalf("failed to count nutrition facts: %v", err)
	}
	if n != 0 {
		t.Errorf("expected nutrition facts to be removed, found %d rows", n)
	}
}

func TestUpdateRefreshesUpdatedAt(t *testing.T) {
	truncate(t)
	ctx := context.Background()
	repo := repository.NewProductRepository(testDB, 5*time.Second)

	p := repositorytest.NewProduct("Ghee", "Amul", 10)
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("failed to create product: %v", err)
	}
	created := p.UpdatedAt

	time.Sleep(10 * time.Millisecond)
	p.Name = "Cow Ghee"
	if err := repo.Update(ctx, p); err != nil {
		t.Fatalf("failed to update product: %v", err)
	}

	if !p.UpdatedAt.After(created) {
		t.Errorf("expected updated_at to advance, got %s then %s", created, p.UpdatedAt)
	}
}

func TestQueryTimeoutIsApplied(t *testing.T) {
	repo := repository.NewProductRepository(testDB, time.Nanosecond)

	_, err := repo.List(context.Background())
	if err == nil {
		t.Fatal("expected the query to exceed its deadline")
	}
}

func TestNumericOverflowIsReported(t *testing.T) {
	truncate(t)
	ctx := context.Background()
	repo := repository.NewProductRepository(testDB, 5*time.Second)

	p := repositorytest.NewProduct("Butter", "Amul", 10)
	p.BrandRating = decimal.NewNullDecimal(decimal.NewFromInt(10))
	if err := repo.Create(ctx, p); !errors.Is(err, repository.ErrValueOutOfRange) {
		t.Fatalf("expected ErrValueOutOfRange on create, got %v", err)
	}

	p.BrandRating = decimal.NullDecimal{}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("failed to create product: %v", err)
	}
	p.Fat = decimal.NewNullDecimal(decimal.NewFromInt(1000))
	if err := repo.Update(ctx, p); !errors.Is(err, repository.ErrValueOutOfRange) {
		t.Errorf("expected ErrValueOutOfRange on update, got %v", err)
	}
}
