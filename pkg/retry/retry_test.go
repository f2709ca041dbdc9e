package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func noSleep(delays *[]time.Duration) Option {
	return WithSleep(func(_ context.Context, d time.Duration) error {
		*delays = append(*delays, d)
		return nil
	})
}

func TestDoSucceedsFirstAttempt(t *testing.T) {
	var delays []time.Duration
	calls := 0
	got, err := Do(context.Background(), func(context.Context) (string, error) {
		calls++
		return "ok", nil
	}, noSleep(&delays))
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if got != "ok" || calls != 1 {
		t.Fatalf("got %q after %d calls, want ok after 1", got, calls)
	}
	if len(delays) != 0 {
		t.Fatalf("slept %v, want no sleeps", delays)
	}
}

func TestDoRetriesUntilSuccess(t *testing.T) {
	var delays []time.Duration
	calls := 0
	got, err := Do(context.Background(), func(context.Context) (int, error) {
		calls++
		if calls < 3 {
			return 0, errors.New("transient")
		}
		return 42, nil
	}, noSleep(&delays))
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if got != 42 || calls != 3 {
		t.Fatalf("got %d after %d calls, want 42 after 3", got, calls)
	}
	want := []time.Duration{time.Second, 2 * time.Second}
	if diff := cmp.Diff(want, delays); diff != "" {
		t.Fatalf("backoff delays (-want +got):\n%s", diff)
	}
}

func TestDoExhaustsAttempts(t *testing.T) {
	var delays []time.Duration
	boom := errors.New("boom")
	calls := 0
	_, err := Do(context.Background(), func(context.Context) (int, error) {
		calls++
		return 0, boom
	}, noSleep(&delays))

	var exhausted *ExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("error = %v, want *ExhaustedError", err)
	}
	if exhausted.Attempts != DefaultMaxAttempts || calls != DefaultMaxAttempts {
		t.Fatalf("attempts = %d, calls = %d, want %d", exhausted.Attempts, calls, DefaultMaxAttempts)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("error %v does not wrap the last failure", err)
	}
	want := []time.Duration{time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second}
	if diff := cmp.Diff(want, delays); diff != "" {
		t.Fatalf("backoff delays (-want +got):\n%s", diff)
	}
}

func TestDoHonorsOptions(t *testing.T) {
	var delays []time.Duration
	calls := 0
	_, err := Do(context.Background(), func(context.Context) (int, error) {
		calls++
		return 0, errors.New("always")
	}, WithMaxAttempts(2), WithBaseDelay(10*time.Millisecond), noSleep(&delays))

	var exhausted *ExhaustedError
	if !errors.As(err, &exhausted) || exhausted.Attempts != 2 || calls != 2 {
		t.Fatalf("error = %v after %d calls, want 2-attempt exhaustion", err, calls)
	}
	want := []time.Duration{10 * time.Millisecond}
	if diff := cmp.Diff(want, delays); diff != "" {
		t.Fatalf("backoff delays (-want +got):\n%s", diff)
	}
}

func TestDoStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	calls := 0
	_, err := Do(ctx, func(context.Context) (int, error) {
		calls++
		return 0, errors.New("never reached")
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	if calls != 0 {
		t.Fatalf("fn called %d times on cancelled context", calls)
	}
}

func TestDoStopsWhenSleepCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	_, err := Do(ctx, func(context.Context) (int, error) {
		calls++
		cancel()
		return 0, errors.New("transient")
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	if calls != 1 {
		t.Fatalf("fn called %d times, want 1", calls)
	}
}
