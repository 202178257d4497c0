package tracekv

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/unkn0wn-root/tracekv/internal/keys"
	"github.com/unkn0wn-root/tracekv/provider/memory"
)

func TestReplayTranscript(t *testing.T) {
	ctx := context.Background()
	p := memory.New()
	c := newTestCache(t, p)
	defer c.Close(ctx)

	k1, err := c.Store(ctx, "alpha")
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	k2, err := c.Store(ctx, 99)
	if err != nil {
		t.Fatalf("Store: %v", err)
	}

	var buf bytes.Buffer
	if err := Replay(ctx, &buf, p, OpStore); err != nil {
		t.Fatalf("Replay: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 lines, got %d:\n%s", len(lines), buf.String())
	}
	if lines[0] != "Cache.Store was called 2 times:" {
		t.Fatalf("header = %q", lines[0])
	}
	if want := "Cache.Store(*[alpha]) -> " + k1; lines[1] != want {
		t.Fatalf("line 1 = %q, want %q", lines[1], want)
	}
	if want := "Cache.Store(*[99]) -> " + k2; lines[2] != want {
		t.Fatalf("line 2 = %q, want %q", lines[2], want)
	}
}

func TestReplayZeroCalls(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	if err := Replay(ctx, &buf, memory.New(), OpStore); err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if got := buf.String(); got != "Cache.Store was called 0 times:\n" {
		t.Fatalf("zero-call replay = %q", got)
	}
}

func TestReplayDeadConnectionIsSilent(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	if err := Replay(ctx, &buf, memory.NewDisconnected(), OpStore); err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}

	buf.Reset()
	if err := Replay(ctx, &buf, nil, OpStore); err != nil || buf.Len() != 0 {
		t.Fatalf("nil provider: err=%v out=%q", err, buf.String())
	}
}

// TestReplayMismatchedLists: pairing stops at the shorter list instead of
// asserting equal lengths.
func TestReplayMismatchedLists(t *testing.T) {
	ctx := context.Background()
	p := memory.New()

	if _, err := p.Incr(ctx, keys.Counter(OpStore)); err != nil {
		t.Fatalf("Incr: %v", err)
	}
	for _, in := range []string{"[a]", "[b]"} {
		if err := p.RPush(ctx, keys.Inputs(OpStore), []byte(in)); err != nil {
			t.Fatalf("RPush: %v", err)
		}
	}
	if err := p.RPush(ctx, keys.Outputs(OpStore), []byte("k-1")); err != nil {
		t.Fatalf("RPush: %v", err)
	}

	var buf bytes.Buffer
	if err := Replay(ctx, &buf, p, OpStore); err != nil {
		t.Fatalf("Replay: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 paired line, got %d:\n%s", len(lines), buf.String())
	}
	if lines[1] != "Cache.Store(*[a]) -> k-1" {
		t.Fatalf("paired line = %q", lines[1])
	}
}
