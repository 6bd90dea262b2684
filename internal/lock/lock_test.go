package lock

import (
	"context"
	"testing"
	"time"
)

func TestLocal_TryLock(t *testing.T) {
	l := NewLocal()
	ctx := context.Background()

	ok, err := l.TryLock(ctx, "batch:1", time.Minute)
	if err != nil || !ok {
		t.Fatalf("first acquire: ok=%v err=%v", ok, err)
	}

	ok, err = l.TryLock(ctx, "batch:1", time.Minute)
	if err != nil || ok {
		t.Errorf("second acquire on held key: ok=%v err=%v", ok, err)
	}

	// A different key is independent.
	ok, err = l.TryLock(ctx, "batch:2", time.Minute)
	if err != nil || !ok {
		t.Errorf("independent key: ok=%v err=%v", ok, err)
	}

	if err := l.Unlock(ctx, "batch:1"); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	ok, err = l.TryLock(ctx, "batch:1", time.Minute)
	if err != nil || !ok {
		t.Errorf("reacquire after unlock: ok=%v err=%v", ok, err)
	}
}

// TestLocal_LeaseExpiry verifies a stale lease does not wedge the key.
func TestLocal_LeaseExpiry(t *testing.T) {
	l := NewLocal()
	ctx := context.Background()

	if ok, _ := l.TryLock(ctx, "batch:1", 10*time.Millisecond); !ok {
		t.Fatal("acquire failed")
	}
	time.Sleep(20 * time.Millisecond)

	ok, err := l.TryLock(ctx, "batch:1", time.Minute)
	if err != nil || !ok {
		t.Errorf("acquire after lease expiry: ok=%v err=%v", ok, err)
	}
}

func TestLocal_UnlockUnheldKey(t *testing.T) {
	l := NewLocal()
	if err := l.Unlock(context.Background(), "never-held"); err != nil {
		t.Errorf("unlock of unheld key: %v", err)
	}
}
