package storage

import (
	"testing"

	"github.com/user/homeportal/internal/model"
	"github.com/user/homeportal/internal/prefs"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestPrefStoreGetMissing(t *testing.T) {
	store := NewPrefStore(openTestDB(t))
	v, err := store.Get("portalLang")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if v != "" {
		t.Errorf("expected empty value, got %q", v)
	}
}

func TestPrefStoreSetOverwrites(t *testing.T) {
	store := NewPrefStore(openTestDB(t))

	if err := store.Set("portalTheme", "day"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Set("portalTheme", "night"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	v, err := store.Get("portalTheme")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if v != "night" {
		t.Errorf("expected night, got %q", v)
	}

	all, err := store.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected one row, got %v", all)
	}
}

func TestPrefStorePersistsAcrossOpen(t *testing.T) {
	dir := t.TempDir()

	db, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := prefs.New(NewPrefStore(db)).SetLocale(model.LocaleEN); err != nil {
		t.Fatalf("SetLocale: %v", err)
	}
	db.Close()

	db, err = Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()

	got := prefs.New(NewPrefStore(db)).Load()
	if got.Locale != model.LocaleEN {
		t.Errorf("expected en after reopen, got %s", got.Locale)
	}
	if got.Theme != model.ThemeNight {
		t.Errorf("expected default theme, got %s", got.Theme)
	}
}
