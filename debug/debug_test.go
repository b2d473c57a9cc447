package debug

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer guards a bytes.Buffer shared with the logger goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func waitForLog(t *testing.T, buf *syncBuffer, needle string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(buf.String(), needle) {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("log %q not seen; got %s", needle, buf.String())
}

func TestGoroutineLogger(t *testing.T) {
	buf := &syncBuffer{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	StartGoroutineLogger(ctx, 5*time.Millisecond, slog.New(slog.NewJSONHandler(buf, nil)))
	waitForLog(t, buf, `"msg":"goroutine-stacks"`)
}

func TestMemLogger_RSSErrorLoggedOnce(t *testing.T) {
	buf := &syncBuffer{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	calls := make(chan struct{}, 16)
	failing := func() (uint64, error) {
		select {
		case calls <- struct{}{}:
		default:
		}
		return 0, errors.New("nope")
	}
	startMemLogger(ctx, 5*time.Millisecond, slog.New(slog.NewJSONHandler(buf, nil)), failing)
	for i := 0; i < 3; i++ {
		<-calls
	}
	waitForLog(t, buf, `"msg":"memstats"`)
	waitForLog(t, buf, `"peak_rss":"0 B"`)
	cancel()
	if n := strings.Count(buf.String(), "rss query failed"); n != 1 {
		t.Fatalf("expected one rss warning, got %d", n)
	}
}

func TestReadPeakRSS(t *testing.T) {
	rss, err := readPeakRSS()
	if err != nil {
		t.Skipf("rss unavailable: %v", err)
	}
	if rss == 0 {
		t.Fatalf("expected non-zero rss")
	}
}
