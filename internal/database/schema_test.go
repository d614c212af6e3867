package database

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const migrationsDir = "../../migrations"

var expectedTables = map[string]string{
	"products":        "00001_create_products_table.sql",
	"brands":          "00002_create_brands_table.sql",
	"nutrition_facts": "00003_create_nutrition_facts_table.sql",
	"product_reviews": "00004_create_product_reviews_table.sql",
}

func readMigration(t *testing.T, name string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(migrationsDir, name))
	if err != nil {
		t.Fatalf("Failed to read migration file %s: %v", name, err)
	}
	return string(content)
}

func TestMigrationFilesHaveUpAndDown(t *testing.T) {
	files, err := os.ReadDir(migrationsDir)
	if err != nil {
		t.Fatalf("Failed to read migrations directory: %v", err)
	}

	sqlFileCount := 0
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".sql") {
			continue
		}

		sqlFileCount++
		contentStr := readMigration(t, file.Name())

		for _, directive := range []string{
			"-- +goose Up",
			"-- +goose Down",
			"-- +goose StatementBegin",
			"-- +goose StatementEnd",
		} {
			if !strings.Contains(contentStr, directive) {
				t.Errorf("Migration file %s missing '%s' directive", file.Name(), directive)
			}
		}
	}

	if sqlFileCount != len(expectedTables)+1 {
		t.Errorf("expected %d migration files, found %d", len(expectedTables)+1, sqlFileCount)
	}
}

func TestMigrationFilesCreateExpectedTables(t *testing.T) {
	for tableName, migrationFile := range expectedTables {
		contentStr := readMigration(t, migrationFile)

		if !strings.Contains(contentStr, "CREATE TABLE IF NOT EXISTS "+tableName) {
			t.Errorf("Migration file %s does not create table %s", migrationFile, tableName)
		}
		if !strings.Contains(contentStr, "DROP TABLE IF EXISTS "+tableName) {
			t.Errorf("Migration file %s does not drop table %s in down section", migrationFile, tableName)
		}
	}
}

func TestProductsTableHasRequiredColumns(t *testing.T) {
	contentStr := readMigration(t, expectedTables["products"])

	requiredColumns := []string{
		"id BIGSERIAL PRIMARY KEY",
		"barcode VARCHAR(255) NOT NULL",
		"name VARCHAR(255) NOT NULL",
		"brand VARCHAR(255) NOT NULL",
		"mfg_date DATE",
		"exp_date DATE",
		"mrp DECIMAL(10, 2)",
		"brand_rating DECIMAL(3, 2)",
		"calories INTEGER",
		"sodium DECIMAL(8, 2)",
		"json_alternates TEXT",
		"created_at TIMESTAMP",
		"updated_at TIMESTAMP",
	}

	for _, column := range requiredColumns {
		if !strings.Contains(contentStr, column) {
			t.Errorf("Products table missing required column definition: %s", column)
		}
	}

	if !strings.Contains(contentStr, "CONSTRAINT products_barcode_key UNIQUE (barcode)") {
		t.Error("Products table missing unique barcode constraint")
	}
	if !strings.Contains(contentStr, "ON products (exp_date)") {
		t.Error("Products table missing expiry date index")
	}
}

func TestBrandNameIsUnique(t *testing.T) {
	contentStr := readMigration(t, expectedTables["brands"])

	if !strings.Contains(contentStr, "CONSTRAINT brands_name_key UNIQUE (name)") {
		t.Error("Brands table missing unique name constraint")
	}
	if !strings.Contains(contentStr, "review_count INTEGER NOT NULL DEFAULT 0") {
		t.Error("Brands table missing review_count default")
	}
}

func TestChildTablesCascadeOnDelete(t *testing.T) {
	for _, table := range []string{"nutrition_facts", "product_reviews"} {
		contentStr := readMigration(t, expectedTables[table])

		if !strings.Contains(contentStr, "REFERENCES products(id) ON DELETE CASCADE") {
			t.Errorf("%s must cascade deletes from products", table)
		}
	}

	if !strings.Contains(readMigration(t, expectedTables["product_reviews"]), "REFERENCES brands(id) ON DELETE CASCADE") {
		t.Error("product_reviews must cascade deletes from brands")
	}
}
