package cache

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"
)

// Set FLOORSMITH_TEST_REDIS=localhost:6379 to run against a live server.
func TestRedisCache(t *testing.T) {
	addr := os.Getenv("FLOORSMITH_TEST_REDIS")
	if addr == "" {
		t.Skip("FLOORSMITH_TEST_REDIS not set")
	}
	c, err := NewRedisCache(context.Background(), addr, "floorsmith-test:"+t.Name()+":")
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	testBackend(t, c)
}

func TestRedisCacheUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := NewRedisCache(ctx, "127.0.0.1:1", "")
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("err = %v, want ErrNetwork", err)
	}
}
