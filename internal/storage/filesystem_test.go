package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx := context.Background()

	key, err := store.Write(ctx, "./tokens/access_token", []byte("abc"))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if key != "tokens/access_token" {
		t.Fatalf("key = %q, want tokens/access_token", key)
	}
	data, err := store.Read(ctx, key)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(data) != "abc" {
		t.Fatalf("data = %q, want abc", data)
	}
	info, err := os.Stat(filepath.Join(store.BasePath(), "tokens", "access_token"))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("perm = %o, want 600", perm)
	}

	if err := store.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Read(ctx, key); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Read after delete error = %v, want ErrNotFound", err)
	}
	if err := store.Delete(ctx, key); err != nil {
		t.Fatalf("Delete missing key: %v", err)
	}
}

func TestSanitizeKey(t *testing.T) {
	tests := []struct {
		key     string
		want    string
		wantErr bool
	}{
		{key: "a/b", want: "a/b"},
		{key: "/abs/path", want: "abs/path"},
		{key: `win\style`, want: "win/style"},
		{key: "a/../b", want: "b"},
		{key: "../escape", wantErr: true},
		{key: "..", wantErr: true},
		{key: "  ", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			got, err := sanitizeKey(tc.key)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("sanitizeKey(%q) expected error, got %q", tc.key, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("sanitizeKey(%q) unexpected error: %v", tc.key, err)
			}
			if got != tc.want {
				t.Fatalf("sanitizeKey(%q) = %q, want %q", tc.key, got, tc.want)
			}
		})
	}
}
