// Package slogrecord is a Recorder that logs instrumented calls through
// log/slog. Meant for composition via MultiRecorder next to the store-backed
// recorders, not as a replacement for them.
package slogrecord

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/tracekv"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	BeforeEvery uint64
	AfterEvery  uint64
}

type Recorder struct {
	l    *slog.Logger
	opts Options

	beforeCtr atomic.Uint64
	afterCtr  atomic.Uint64
}

var _ tracekv.Recorder = (*Recorder)(nil)

func New(l *slog.Logger, opts Options) *Recorder {
	return &Recorder{l: l, opts: opts}
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (r *Recorder) Before(ctx context.Context, op string, args []any) {
	if r.l == nil || !sample(r.opts.BeforeEvery, &r.beforeCtr) {
		return
	}
	r.l.LogAttrs(ctx, slog.LevelDebug, "tracekv.call",
		slog.String("op", op),
		slog.String("args", tracekv.FormatArgs(args)))
}

func (r *Recorder) After(ctx context.Context, op string, _ []any, result string) {
	if r.l == nil || !sample(r.opts.AfterEvery, &r.afterCtr) {
		return
	}
	r.l.LogAttrs(ctx, slog.LevelDebug, "tracekv.result",
		slog.String("op", op),
		slog.String("result", result))
}
