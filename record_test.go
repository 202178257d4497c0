package tracekv

import (
	"context"
	"testing"
)

type callLog struct {
	events []string
}

func (l *callLog) rec(tag string) Recorder { return taggedRecorder{l: l, tag: tag} }

type taggedRecorder struct {
	l   *callLog
	tag string
}

func (r taggedRecorder) Before(_ context.Context, op string, _ []any) {
	r.l.events = append(r.l.events, r.tag+".before:"+op)
}

func (r taggedRecorder) After(_ context.Context, op string, _ []any, _ string) {
	r.l.events = append(r.l.events, r.tag+".after:"+op)
}

// TestMultiRecorderOrder: recorders fire in composition order on both sides.
func TestMultiRecorderOrder(t *testing.T) {
	ctx := context.Background()
	var l callLog
	m := MultiRecorder{l.rec("count"), l.rec("hist")}

	m.Before(ctx, "Op", []any{"x"})
	m.After(ctx, "Op", []any{"x"}, "k")

	want := []string{"count.before:Op", "hist.before:Op", "count.after:Op", "hist.after:Op"}
	if len(l.events) != len(want) {
		t.Fatalf("events = %v", l.events)
	}
	for i := range want {
		if l.events[i] != want[i] {
			t.Fatalf("events[%d] = %q, want %q", i, l.events[i], want[i])
		}
	}
}

func TestFormatArgs(t *testing.T) {
	cases := []struct {
		args []any
		want string
	}{
		{[]any{"hello"}, "[hello]"},
		{[]any{42}, "[42]"},
		{[]any{"a", 1, 2.5}, "[a 1 2.5]"},
		{nil, "[]"},
	}
	for _, tc := range cases {
		if got := FormatArgs(tc.args); got != tc.want {
			t.Fatalf("FormatArgs(%v) = %q, want %q", tc.args, got, tc.want)
		}
	}
}

// TestNilProviderRecordersAreInert: recorders built over a nil provider do
// nothing rather than panic.
func TestNilProviderRecordersAreInert(t *testing.T) {
	ctx := context.Background()
	NewCallCounter(nil).Before(ctx, "Op", nil)
	h := NewCallHistory(nil)
	h.Before(ctx, "Op", nil)
	h.After(ctx, "Op", nil, "k")
}
