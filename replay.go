package tracekv

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/unkn0wn-root/tracekv/internal/keys"
	"github.com/unkn0wn-root/tracekv/provider"
)

// Replay prints the recorded transcript of an instrumented operation to w:
// a header with the invocation count, then one line per recorded call,
//
//	<op>(*<input>) -> <output>
//
// pairing the inputs and outputs lists positionally. If the two lists ever
// disagree in length, iteration stops at the shorter one rather than
// asserting them equal. A nil or not-live provider is a silent no-op, not an
// error; store errors on a live provider propagate.
func Replay(ctx context.Context, w io.Writer, p provider.Provider, op string) error {
	if p == nil || !p.Live() {
		return nil
	}

	var count int64
	exists, err := p.Exists(ctx, keys.Counter(op))
	if err != nil {
		return err
	}
	if exists {
		raw, ok, err := p.Get(ctx, keys.Counter(op))
		if err != nil {
			return err
		}
		if ok {
			count, err = strconv.ParseInt(string(raw), 10, 64)
			if err != nil {
				return fmt.Errorf("tracekv: counter for %s is not numeric: %w", op, err)
			}
		}
	}
	fmt.Fprintf(w, "%s was called %d times:\n", op, count)

	inputs, err := p.LRange(ctx, keys.Inputs(op), 0, -1)
	if err != nil {
		return err
	}
	outputs, err := p.LRange(ctx, keys.Outputs(op), 0, -1)
	if err != nil {
		return err
	}

	n := len(inputs)
	if len(outputs) < n {
		n = len(outputs)
	}
	for i := 0; i < n; i++ {
		fmt.Fprintf(w, "%s(*%s) -> %s\n", op, inputs[i], outputs[i])
	}
	return nil
}
