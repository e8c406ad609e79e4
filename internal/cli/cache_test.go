package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/floorsmith/pkg/cache"
)

func TestClearCache(t *testing.T) {
	dir := t.TempDir()
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	for _, k := range []string{"plan:a", "plan:b", "artifact:c"} {
		if err := fc.Set(ctx, k, []byte("{}"), time.Hour); err != nil {
			t.Fatal(err)
		}
	}

	n, err := clearCache(dir)
	if err != nil {
		t.Fatalf("clearCache: %v", err)
	}
	if n != 3 {
		t.Errorf("cleared %d entries, want 3", n)
	}
	if _, hit, _ := fc.Get(ctx, "plan:a"); hit {
		t.Error("entry survived clear")
	}
}

func TestCacheUsage(t *testing.T) {
	dir := t.TempDir()
	fc, _ := cache.NewFileCache(dir)
	ctx := context.Background()
	_ = fc.Set(ctx, "plan:a", []byte("{}"), 0)
	_ = fc.Set(ctx, "columns:b", []byte("[]"), 0)
	if err := os.WriteFile(filepath.Join(dir, "README"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	n, size, err := cacheUsage(dir)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 || size == 0 {
		t.Errorf("cacheUsage = %d entries, %d bytes; want 2 entries", n, size)
	}
}

func TestClearCacheMissingDir(t *testing.T) {
	n, err := clearCache(filepath.Join(t.TempDir(), "absent"))
	if err != nil || n != 0 {
		t.Errorf("clearCache(missing) = %d, %v; want 0, nil", n, err)
	}
}

func TestNewCache(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	c, err := newCache(true)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.(*cache.NullCache); !ok {
		t.Errorf("noCache = %T, want *cache.NullCache", c)
	}

	c, err = newCache(false)
	if err != nil {
		t.Fatal(err)
	}
	fc, ok := c.(*cache.FileCache)
	if !ok {
		t.Fatalf("cache = %T, want *cache.FileCache", c)
	}
	if _, err := os.Stat(fc.Dir()); err != nil {
		t.Errorf("cache dir not created: %v", err)
	}
}
