package storage

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file and its parent directory were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndLoad(t *testing.T) {
	store := openTestStore(t)

	ids := []string{"heavy_armor", "rear_guns"}
	if err := store.SaveLoadout("tank", ids, 3); err != nil {
		t.Fatalf("SaveLoadout() failed: %v", err)
	}

	l, err := store.Loadout("tank")
	if err != nil {
		t.Fatalf("Loadout() failed: %v", err)
	}

	if l.Name != "tank" {
		t.Errorf("Name = %q, expected tank", l.Name)
	}
	if !reflect.DeepEqual(l.Modifiers, ids) {
		t.Errorf("Modifiers = %v, expected %v", l.Modifiers, ids)
	}
	if l.Cost != 3 {
		t.Errorf("Cost = %d, expected 3", l.Cost)
	}
}

func TestStoreSaveEmptySelection(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveLoadout("bare", nil, 0); err != nil {
		t.Fatalf("SaveLoadout() failed: %v", err)
	}

	l, err := store.Loadout("bare")
	if err != nil {
		t.Fatalf("Loadout() failed: %v", err)
	}
	if len(l.Modifiers) != 0 {
		t.Errorf("Modifiers = %v, expected empty", l.Modifiers)
	}
}

func TestStoreSaveReplaces(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveLoadout("x", []string{"a"}, 1); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveLoadout("x", []string{"b", "c"}, -2); err != nil {
		t.Fatal(err)
	}

	all, err := store.Loadouts()
	if err != nil {
		t.Fatalf("Loadouts() failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("Expected 1 loadout after replace, got %d", len(all))
	}
	if all[0].Cost != -2 || !reflect.DeepEqual(all[0].Modifiers, []string{"b", "c"}) {
		t.Errorf("replaced loadout = %+v", all[0])
	}
}

func TestStoreSaveRejectsEmptyName(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveLoadout("  ", []string{"a"}, 0); err == nil {
		t.Error("SaveLoadout() with blank name should fail")
	}
}

func TestStoreLoadoutsOrdered(t *testing.T) {
	store := openTestStore(t)

	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := store.SaveLoadout(name, []string{"a"}, 0); err != nil {
			t.Fatal(err)
		}
	}

	all, err := store.Loadouts()
	if err != nil {
		t.Fatalf("Loadouts() failed: %v", err)
	}

	var names []string
	for _, l := range all {
		names = append(names, l.Name)
	}
	expected := []string{"alpha", "mid", "zeta"}
	if !reflect.DeepEqual(names, expected) {
		t.Errorf("Loadouts() names = %v, expected %v", names, expected)
	}
}

func TestStoreNotFound(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.Loadout("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Loadout() error = %v, expected ErrNotFound", err)
	}
	if err := store.DeleteLoadout("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteLoadout() error = %v, expected ErrNotFound", err)
	}
}

func TestStoreDelete(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveLoadout("gone", []string{"a"}, 1); err != nil {
		t.Fatal(err)
	}
	if err := store.DeleteLoadout("gone"); err != nil {
		t.Fatalf("DeleteLoadout() failed: %v", err)
	}
	if _, err := store.Loadout("gone"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Loadout() after delete error = %v, expected ErrNotFound", err)
	}
}

func TestStorePersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store1, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store1.SaveLoadout("keep", []string{"a", "b"}, 2); err != nil {
		t.Fatal(err)
	}
	store1.Close()

	store2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store2.Close()

	l, err := store2.Loadout("keep")
	if err != nil {
		t.Fatalf("Loadout() after reopen failed: %v", err)
	}
	if l.Cost != 2 {
		t.Errorf("Cost after reopen = %d, expected 2", l.Cost)
	}
}
