package cache

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	c := NewNullCache()
	ctx := context.Background()
	if err := c.Set(ctx, "k", []byte("v"), time.Hour); err != nil {
		t.Fatal(err)
	}
	if _, ok, err := c.Get(ctx, "k"); ok || err != nil {
		t.Errorf("Get() = %v, %v; want miss", ok, err)
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Error(err)
	}
	if err := c.Close(); err != nil {
		t.Error(err)
	}
}

func TestFileCache(t *testing.T) {
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	if c.Dir() != dir {
		t.Errorf("Dir() = %q, want %q", c.Dir(), dir)
	}
	ctx := context.Background()

	if _, ok, _ := c.Get(ctx, "missing"); ok {
		t.Error("empty cache should miss")
	}
	if err := c.Set(ctx, "layout:1", []byte(`{"tags":[]}`), time.Hour); err != nil {
		t.Fatal(err)
	}
	data, ok, err := c.Get(ctx, "layout:1")
	if err != nil || !ok || string(data) != `{"tags":[]}` {
		t.Errorf("Get() = %q, %v, %v", data, ok, err)
	}

	if err := c.Delete(ctx, "layout:1"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := c.Get(ctx, "layout:1"); ok {
		t.Error("deleted entry should miss")
	}
	if err := c.Delete(ctx, "layout:1"); err != nil {
		t.Errorf("deleting twice: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	c.Set(ctx, "old", []byte("x"), time.Nanosecond)
	c.Set(ctx, "forever", []byte("y"), 0)
	time.Sleep(5 * time.Millisecond)

	if _, ok, _ := c.Get(ctx, "old"); ok {
		t.Error("expired entry should miss")
	}
	if _, err := os.Stat(c.path("old")); !os.IsNotExist(err) {
		t.Error("expired entry should be removed")
	}
	if _, ok, _ := c.Get(ctx, "forever"); !ok {
		t.Error("entry without ttl should not expire")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	c, _ := NewFileCache(t.TempDir())
	ctx := context.Background()
	c.Set(ctx, "k", []byte("v"), 0)
	if err := os.WriteFile(c.path("k"), []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, ok, err := c.Get(ctx, "k"); ok || err != nil {
		t.Errorf("corrupt entry: ok=%v err=%v, want silent miss", ok, err)
	}
}

func TestFileCacheClear(t *testing.T) {
	c, _ := NewFileCache(t.TempDir())
	ctx := context.Background()
	for i := range 5 {
		c.Set(ctx, fmt.Sprintf("k%d", i), []byte("v"), 0)
	}
	n, err := c.Clear()
	if err != nil {
		t.Fatal(err)
	}
	if n != 5 {
		t.Errorf("Clear() removed %d entries, want 5", n)
	}
	if _, ok, _ := c.Get(ctx, "k3"); ok {
		t.Error("cleared entry should miss")
	}
}

func TestHash(t *testing.T) {
	// sha256("abc")
	const want = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got := Hash([]byte("abc")); got != want {
		t.Errorf("Hash() = %s", got)
	}

	a, err := HashJSON([]int{1, 2})
	if err != nil {
		t.Fatal(err)
	}
	if a != Hash([]byte("[1,2]")) {
		t.Errorf("HashJSON() = %s, want hash of compact JSON", a)
	}
	if _, err := HashJSON(make(chan int)); err == nil {
		t.Error("expected error for unencodable value")
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()
	opts := LayoutKeyOpts{CenterX: 400, CenterY: 300, MaxDistance: 2048, Increment: 1.0 / 2048, MaxCycles: 6}

	key := k.LayoutKey("src", opts)
	if !strings.HasPrefix(key, "layout:") || len(key) != len("layout:")+64 {
		t.Errorf("LayoutKey() = %q", key)
	}
	if key != k.LayoutKey("src", opts) {
		t.Error("LayoutKey() should be deterministic")
	}

	moved := opts
	moved.CenterX++
	if k.LayoutKey("src", moved) == key {
		t.Error("center should change the key")
	}
	if k.LayoutKey("other", opts) == key {
		t.Error("source hash should change the key")
	}

	a := ArtifactKeyOpts{Format: "svg", Style: "simple", Margin: 20}
	svg := k.ArtifactKey("layout", a)
	if !strings.HasPrefix(svg, "artifact:") {
		t.Errorf("ArtifactKey() = %q", svg)
	}
	a.Format = "png"
	if k.ArtifactKey("layout", a) == svg {
		t.Error("format should change the key")
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	k := NewScopedKeyer(nil, "team-a:")
	opts := LayoutKeyOpts{MaxCycles: 6}

	if got, want := k.LayoutKey("h", opts), "team-a:"+inner.LayoutKey("h", opts); got != want {
		t.Errorf("LayoutKey() = %q, want %q", got, want)
	}
	a := ArtifactKeyOpts{Format: "svg"}
	if got, want := k.ArtifactKey("h", a), "team-a:"+inner.ArtifactKey("h", a); got != want {
		t.Errorf("ArtifactKey() = %q, want %q", got, want)
	}
}

func TestRetryable(t *testing.T) {
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should be nil")
	}
	base := fmt.Errorf("%w: dial", ErrNetwork)
	err := fmt.Errorf("connect: %w", Retryable(base))
	if !IsRetryable(err) {
		t.Error("wrapped retryable error not detected")
	}
	if !errors.Is(err, ErrNetwork) {
		t.Error("Retryable should keep the error chain")
	}
	if IsRetryable(base) {
		t.Error("plain error reported as retryable")
	}
}

func TestRetryWithBackoff(t *testing.T) {
	old := retryBaseDelay
	retryBaseDelay = time.Millisecond
	defer func() { retryBaseDelay = old }()

	ctx := context.Background()

	t.Run("succeeds after transient failures", func(t *testing.T) {
		calls := 0
		err := RetryWithBackoff(ctx, func() error {
			calls++
			if calls < 3 {
				return Retryable(ErrNetwork)
			}
			return nil
		})
		if err != nil || calls != 3 {
			t.Errorf("err = %v, calls = %d", err, calls)
		}
	})

	t.Run("gives up after three attempts", func(t *testing.T) {
		calls := 0
		err := RetryWithBackoff(ctx, func() error {
			calls++
			return Retryable(ErrNetwork)
		})
		if !errors.Is(err, ErrNetwork) || calls != 3 {
			t.Errorf("err = %v, calls = %d", err, calls)
		}
	})

	t.Run("permanent errors are not retried", func(t *testing.T) {
		calls := 0
		perm := errors.New("bad url")
		err := RetryWithBackoff(ctx, func() error {
			calls++
			return perm
		})
		if err != perm || calls != 1 {
			t.Errorf("err = %v, calls = %d", err, calls)
		}
	})

	t.Run("canceled context stops waiting", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		err := RetryWithBackoff(cctx, func() error { return Retryable(ErrNetwork) })
		if !errors.Is(err, context.Canceled) {
			t.Errorf("err = %v, want context.Canceled", err)
		}
	})
}
