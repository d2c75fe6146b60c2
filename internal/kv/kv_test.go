package kv

import (
	"bytes"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

// Both media must behave identically; the cases run against each.
func media(t *testing.T) map[string]Store {
	t.Helper()
	sqlite, err := OpenSQLite(filepath.Join(t.TempDir(), "kv.db"), 0)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	t.Cleanup(func() { sqlite.Close() })
	return map[string]Store{
		"memory": NewMemory(0),
		"sqlite": sqlite,
	}
}

func TestStore_GetSetDelete(t *testing.T) {
	for name, medium := range media(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := medium.Get("absent"); err != ErrNoKey {
				t.Errorf("expected ErrNoKey for absent key, got %v", err)
			}

			if err := medium.Set("k", []byte("v1")); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			got, err := medium.Get("k")
			if err != nil || !bytes.Equal(got, []byte("v1")) {
				t.Fatalf("Get returned %q, %v", got, err)
			}

			// Overwrite replaces in place.
			if err := medium.Set("k", []byte("v2")); err != nil {
				t.Fatalf("overwrite failed: %v", err)
			}
			got, _ = medium.Get("k")
			if !bytes.Equal(got, []byte("v2")) {
				t.Errorf("expected overwritten value, got %q", got)
			}

			if err := medium.Delete("k"); err != nil {
				t.Fatalf("Delete failed: %v", err)
			}
			if _, err := medium.Get("k"); err != ErrNoKey {
				t.Errorf("expected ErrNoKey after delete, got %v", err)
			}
			// Deleting again is a no-op.
			if err := medium.Delete("k"); err != nil {
				t.Errorf("expected idempotent delete, got %v", err)
			}
		})
	}
}

func TestStore_KeysSorted(t *testing.T) {
	for name, medium := range media(t) {
		t.Run(name, func(t *testing.T) {
			for _, key := range []string{"c", "a", "b"} {
				if err := medium.Set(key, []byte("x")); err != nil {
					t.Fatalf("Set failed: %v", err)
				}
			}
			keys, err := medium.Keys()
			if err != nil {
				t.Fatalf("Keys failed: %v", err)
			}
			if !reflect.DeepEqual(keys, []string{"a", "b", "c"}) {
				t.Errorf("expected sorted keys, got %v", keys)
			}
		})
	}
}

func TestStore_QuotaEnforced(t *testing.T) {
	small := map[string]Store{"memory": NewMemory(32)}
	sqlite, err := OpenSQLite(filepath.Join(t.TempDir(), "kv.db"), 32)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	t.Cleanup(func() { sqlite.Close() })
	small["sqlite"] = sqlite

	for name, medium := range small {
		t.Run(name, func(t *testing.T) {
			if err := medium.Set("k", make([]byte, 16)); err != nil {
				t.Fatalf("write under quota failed: %v", err)
			}
			if err := medium.Set("big", make([]byte, 64)); !errors.Is(err, ErrQuotaExceeded) {
				t.Fatalf("expected quota error, got %v", err)
			}
			// Replacing an existing key frees its footprint first: a same-key
			// write that fits after the replacement must succeed.
			if err := medium.Set("k", make([]byte, 24)); err != nil {
				t.Errorf("expected in-place replacement to fit, got %v", err)
			}

			used, quota, err := medium.Usage()
			if err != nil {
				t.Fatalf("Usage failed: %v", err)
			}
			if quota != 32 {
				t.Errorf("expected quota 32, got %d", quota)
			}
			if used != int64(len("k")+24) {
				t.Errorf("expected usage %d, got %d", len("k")+24, used)
			}
		})
	}
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")
	first, err := OpenSQLite(path, 0)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	if err := first.Set("k", []byte("survives")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	second, err := OpenSQLite(path, 0)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer second.Close()
	got, err := second.Get("k")
	if err != nil || string(got) != "survives" {
		t.Errorf("expected value to survive reopen, got %q, %v", got, err)
	}
}
