package cache

import (
	"context"
	"testing"

	"github.com/AbhishekM14/order-management-api/internal/config"
)

func TestNewCacheDisabledWithoutAddress(t *testing.T) {
	got, err := newCache(cacheParams{
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: testLogger(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := got.(NoopCache); !ok {
		t.Fatalf("expected NoopCache, got %T", got)
	}
}

func TestNewCacheUnreachableRedis(t *testing.T) {
	_, err := newCache(cacheParams{
		Ctx:    context.Background(),
		Config: &config.Config{RedisAddress: "127.0.0.1:1"},
		Logger: testLogger(),
	})
	if err == nil {
		t.Fatal("expected connection error")
	}
}
