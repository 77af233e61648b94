package redisdb

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client, func()) {
	t.Helper()
	s, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	cleanup := func() {
		client.Close()
		s.Close()
	}
	return s, client, cleanup
}

func TestCountersRepo_InitThenDecrement(t *testing.T) {
	s, client, cleanup := setupMiniredis(t)
	defer cleanup()

	repo := NewCountersRepo(client)
	ctx := context.Background()
	key := "quotas:1234:emails"

	got, err := repo.InitOrDecrement(ctx, key, 100, time.Hour)
	if err != nil {
		t.Fatalf("InitOrDecrement returned error: %v", err)
	}
	if got != 100 {
		t.Fatalf("expected first call to return the limit, got %d", got)
	}

	got, err = repo.InitOrDecrement(ctx, key, 100, time.Hour)
	if err != nil {
		t.Fatalf("InitOrDecrement returned error: %v", err)
	}
	if got != 99 {
		t.Fatalf("expected 99 after decrement, got %d", got)
	}

	if ttl := s.TTL(key); ttl != time.Hour {
		t.Fatalf("expected ttl of 1h, got %v", ttl)
	}
	if v, _ := s.Get(key); v != "99" {
		t.Fatalf("expected stored value 99, got %q", v)
	}
}

func TestCountersRepo_DecrementDoesNotRefreshTTL(t *testing.T) {
	s, client, cleanup := setupMiniredis(t)
	defer cleanup()

	repo := NewCountersRepo(client)
	ctx := context.Background()
	key := "quotas:u:sms"

	if _, err := repo.InitOrDecrement(ctx, key, 5, 10*time.Second); err != nil {
		t.Fatalf("init: %v", err)
	}
	s.FastForward(4 * time.Second)
	if _, err := repo.InitOrDecrement(ctx, key, 5, 10*time.Second); err != nil {
		t.Fatalf("decrement: %v", err)
	}

	if ttl := s.TTL(key); ttl != 6*time.Second {
		t.Fatalf("expected fixed window ttl 6s, got %v", ttl)
	}
}

func TestCountersRepo_WindowExpiry(t *testing.T) {
	s, client, cleanup := setupMiniredis(t)
	defer cleanup()

	repo := NewCountersRepo(client)
	ctx := context.Background()
	key := "quotas:u:sms"

	for i := 0; i < 3; i++ {
		if _, err := repo.InitOrDecrement(ctx, key, 10, time.Minute); err != nil {
			t.Fatalf("InitOrDecrement: %v", err)
		}
	}

	s.FastForward(time.Minute + time.Millisecond)
	if s.Exists(key) {
		t.Fatalf("expected key %s to expire", key)
	}

	got, err := repo.InitOrDecrement(ctx, key, 10, time.Minute)
	if err != nil {
		t.Fatalf("InitOrDecrement after expiry: %v", err)
	}
	if got != 10 {
		t.Fatalf("expected fresh counter after expiry, got %d", got)
	}
}

func TestCountersRepo_ConcurrentFirstCalls(t *testing.T) {
	_, client, cleanup := setupMiniredis(t)
	defer cleanup()

	repo := NewCountersRepo(client)
	ctx := context.Background()
	const (
		workers = 50
		limit   = int64(100)
	)

	results := make([]int64, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = repo.InitOrDecrement(ctx, "quotas:race:emails", limit, time.Hour)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("worker %d: %v", i, err)
		}
	}

	sort.Slice(results, func(i, j int) bool { return results[i] > results[j] })
	for i, got := range results {
		if want := limit - int64(i); got != want {
			t.Fatalf("expected results {%d..%d}, got %v", limit, limit-workers+1, results)
		}
	}
}

func TestCountersRepo_NonIntegerValue(t *testing.T) {
	s, client, cleanup := setupMiniredis(t)
	defer cleanup()

	repo := NewCountersRepo(client)
	key := "quotas:u:broken"
	if err := s.Set(key, "not-a-number"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, err := repo.InitOrDecrement(context.Background(), key, 10, time.Minute); err == nil {
		t.Fatalf("expected error decrementing a non-integer value")
	}
}

func TestCountersRepo_RejectsSubMillisecondTTL(t *testing.T) {
	_, client, cleanup := setupMiniredis(t)
	defer cleanup()

	repo := NewCountersRepo(client)
	for _, ttl := range []time.Duration{0, -time.Second, 500 * time.Microsecond} {
		if _, err := repo.InitOrDecrement(context.Background(), "k", 10, ttl); err == nil {
			t.Fatalf("expected error for ttl %s", ttl)
		}
	}
}

func TestCountersRepo_Get(t *testing.T) {
	_, client, cleanup := setupMiniredis(t)
	defer cleanup()

	repo := NewCountersRepo(client)
	ctx := context.Background()

	_, _, found, err := repo.Get(ctx, "quotas:nobody:emails")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if found {
		t.Fatalf("expected missing key to be reported as not found")
	}

	if _, err := repo.InitOrDecrement(ctx, "quotas:u:emails", 7, 30*time.Second); err != nil {
		t.Fatalf("InitOrDecrement: %v", err)
	}
	v, ttl, found, err := repo.Get(ctx, "quotas:u:emails")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if !found || v != 7 {
		t.Fatalf("expected value 7, got %d (found=%v)", v, found)
	}
	if ttl <= 0 || ttl > 30*time.Second {
		t.Fatalf("unexpected ttl: %v", ttl)
	}
}

func TestCountersRepo_KeysAndDelete(t *testing.T) {
	s, client, cleanup := setupMiniredis(t)
	defer cleanup()

	repo := NewCountersRepo(client)
	ctx := context.Background()

	for _, k := range []string{"quotas:a:emails", "quotas:b:sms", "other:a:emails"} {
		if err := s.Set(k, "1"); err != nil {
			t.Fatalf("seed %s: %v", k, err)
		}
	}

	keys, err := repo.Keys(ctx, "quotas:*")
	if err != nil {
		t.Fatalf("Keys returned error: %v", err)
	}
	sort.Strings(keys)
	if len(keys) != 2 || keys[0] != "quotas:a:emails" || keys[1] != "quotas:b:sms" {
		t.Fatalf("unexpected keys: %v", keys)
	}

	if err := repo.Delete(ctx, "quotas:a:emails"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if s.Exists("quotas:a:emails") {
		t.Fatalf("expected key to be deleted")
	}
	if !s.Exists("other:a:emails") {
		t.Fatalf("expected unrelated key to survive")
	}
}

func TestDial(t *testing.T) {
	s, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run: %v", err)
	}
	defer s.Close()

	repo, err := Dial("redis://" + s.Addr() + "/0")
	if err != nil {
		t.Fatalf("Dial returned error: %v", err)
	}
	defer repo.Close()

	if err := repo.Ping(context.Background()); err != nil {
		t.Fatalf("Ping returned error: %v", err)
	}

	if _, err := Dial("http://not-redis"); err == nil {
		t.Fatalf("expected error for invalid scheme")
	}
}
