package tracekv

import (
	"context"
	"fmt"

	"github.com/unkn0wn-root/tracekv/internal/keys"
	"github.com/unkn0wn-root/tracekv/provider"
)

// Recorder is instrumentation middleware around a store operation. Before
// runs with the operation name and its positional arguments; After runs with
// the same plus the operation's result. Implementations MUST be cheap and
// must never alter the operation's outcome - recording failures are
// swallowed, not returned.
//
// Counting and history are independent side effects: each is attempted on
// every call regardless of whether the other succeeded.
type Recorder interface {
	Before(ctx context.Context, op string, args []any)
	After(ctx context.Context, op string, args []any, result string)
}

// NopRecorder is the do-nothing default for callers that want no tracing.
type NopRecorder struct{}

func (NopRecorder) Before(context.Context, string, []any)        {}
func (NopRecorder) After(context.Context, string, []any, string) {}

// CallCounter increments the counter keyed by the operation name once per
// invocation. Skipped entirely when the provider does not report a live
// connection.
type CallCounter struct {
	p provider.Provider
}

func NewCallCounter(p provider.Provider) *CallCounter { return &CallCounter{p: p} }

func (r *CallCounter) Before(ctx context.Context, op string, _ []any) {
	if r.p == nil || !r.p.Live() {
		return
	}
	_, _ = r.p.Incr(ctx, keys.Counter(op))
}

func (r *CallCounter) After(context.Context, string, []any, string) {}

// CallHistory appends a display string of the arguments to "<op>:inputs"
// before the call and the raw result to "<op>:outputs" after it. Sequential
// invocations keep the two lists index-aligned; there is no atomicity across
// the two appends, so concurrent writers can interleave mismatched pairs.
type CallHistory struct {
	p provider.Provider
}

func NewCallHistory(p provider.Provider) *CallHistory { return &CallHistory{p: p} }

func (r *CallHistory) Before(ctx context.Context, op string, args []any) {
	if r.p == nil || !r.p.Live() {
		return
	}
	_ = r.p.RPush(ctx, keys.Inputs(op), []byte(FormatArgs(args)))
}

func (r *CallHistory) After(ctx context.Context, op string, _ []any, result string) {
	if r.p == nil || !r.p.Live() {
		return
	}
	_ = r.p.RPush(ctx, keys.Outputs(op), []byte(result))
}

// MultiRecorder fans out to several recorders in order.
type MultiRecorder []Recorder

func (m MultiRecorder) Before(ctx context.Context, op string, args []any) {
	for _, r := range m {
		r.Before(ctx, op, args)
	}
}

func (m MultiRecorder) After(ctx context.Context, op string, args []any, result string) {
	for _, r := range m {
		r.After(ctx, op, args, result)
	}
}

// FormatArgs renders positional arguments the way CallHistory records them
// and Replay prints them: fmt's default %v of the slice, e.g. "[hello 42]".
func FormatArgs(args []any) string {
	return fmt.Sprintf("%v", args)
}
