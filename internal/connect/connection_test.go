package connect

import (
	"context"
	"path/filepath"
	"testing"
)

func TestOpenSQLite(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "prefs.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer db.Close()

	var mode string
	if err := db.QueryRowContext(context.Background(), "PRAGMA journal_mode;").Scan(&mode); err != nil {
		t.Fatal(err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}
}

func TestCloudinaryCredentials(t *testing.T) {
	cld, err := CloudinaryCredentials("demo", "key", "secret")
	if err != nil {
		t.Fatalf("CloudinaryCredentials: %v", err)
	}
	if cld.Config.Cloud.CloudName != "demo" {
		t.Errorf("cloud name = %q", cld.Config.Cloud.CloudName)
	}
}
