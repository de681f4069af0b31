package migrate

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/angelmondragon/salonadmin/pkg/db"
)

func TestEmbeddedMigrationsAreValid(t *testing.T) {
	if err := ValidateEmbedded(); err != nil {
		t.Fatalf("embedded migrations invalid: %v", err)
	}
}

func TestCampaignDraftMigrationContainsConstraints(t *testing.T) {
	data, err := embeddedMigrations.ReadFile("migrations/20260301120000_create_campaign_drafts.sql")
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}
	for _, sub := range []string{
		"CREATE TABLE IF NOT EXISTS campaign_drafts",
		"CHECK (status IN ('open', 'submitted'))",
		"DROP TABLE IF EXISTS campaign_drafts",
	} {
		if !strings.Contains(string(data), sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestSubmittingStatusMigration(t *testing.T) {
	data, err := embeddedMigrations.ReadFile("migrations/20260310090000_campaign_draft_submitting.sql")
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}
	for _, sub := range []string{
		"CHECK (status IN ('open', 'submitting', 'submitted'))",
		"CASE WHEN status = 'submitting' THEN 'open' ELSE status END",
		"ALTER TABLE campaign_drafts_next RENAME TO campaign_drafts",
	} {
		if !strings.Contains(string(data), sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestRunUpAndDownOnSQLite(t *testing.T) {
	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("sql handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	defer sqlDB.Close()

	ctx := context.Background()
	if err := Run(ctx, sqlDB, db.DialectSQLite, "up"); err != nil {
		t.Fatalf("up: %v", err)
	}
	version, err := Version(ctx, sqlDB, db.DialectSQLite)
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if version != 20260310090000 {
		t.Fatalf("unexpected version %d", version)
	}
	if !conn.Migrator().HasTable("campaign_drafts") {
		t.Fatal("campaign_drafts table missing after up")
	}

	if err := MigrateToVersion(ctx, sqlDB, db.DialectSQLite, "0"); err != nil {
		t.Fatalf("down to 0: %v", err)
	}
	if conn.Migrator().HasTable("campaign_drafts") {
		t.Fatal("campaign_drafts table still present after down")
	}
}

func TestCreateAndValidateDir(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	path, err := CreateSQLMigration(dir, "Add Campaign Índex", now)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if filepath.Base(path) != "20260301120000_add_campaign_index.sql" {
		t.Fatalf("unexpected file %s", path)
	}
	if _, err := CreateSQLMigration(dir, "add campaign index", now); err == nil {
		t.Fatal("expected duplicate file error")
	}
	if err := ValidateDir(dir); err != nil {
		t.Fatalf("validate: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "bad.sql"), []byte("select 1;"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := ValidateDir(dir); err == nil {
		t.Fatal("expected invalid filename error")
	}
}

func TestValidateFSRootAndSubdir(t *testing.T) {
	body := []byte("-- +goose Up\nselect 1;\n-- +goose Down\nselect 1;\n")
	fsys := fstest.MapFS{
		"20260301120000_root.sql":       {Data: body},
		"sql/20260301120000_nested.sql": {Data: body},
	}
	if err := ValidateFS(fsys, "."); err != nil {
		t.Fatalf("validate root: %v", err)
	}
	if err := ValidateFS(fsys, "sql"); err != nil {
		t.Fatalf("validate subdir: %v", err)
	}
}

func TestValidateContent(t *testing.T) {
	if err := validateContent("x.sql", "-- +goose Down\n-- +goose Up\n"); err == nil {
		t.Fatal("expected ordering error")
	}
	if err := validateContent("x.sql", "-- +goose Up\n-- +goose StatementBegin\n-- +goose Down\n"); err == nil {
		t.Fatal("expected unbalanced block error")
	}
}
