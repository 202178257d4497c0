// usage:
//
//	rec := asyncrecord.New(tracekv.NewCallHistory(p), 1, 1000) // 1 worker; queue 1000 events
//	defer rec.Close()
//
//	cache, _ := tracekv.New(tracekv.Options{
//	    Provider: p,
//	    Recorder: tracekv.MultiRecorder{tracekv.NewCallCounter(p), rec},
//	})
//
// Queued work runs with a background context since it may outlive the call
// that enqueued it. When the queue is full, events are dropped rather than
// blocking the hot path - index alignment of history lists is only
// guaranteed through the synchronous recorders.
package asyncrecord

import (
	"context"
	"sync"

	"github.com/unkn0wn-root/tracekv"
)

type Recorder struct {
	inner tracekv.Recorder
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ tracekv.Recorder = (*Recorder)(nil)

func New(inner tracekv.Recorder, workers, qlen int) *Recorder {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	r := &Recorder{inner: inner, q: make(chan func(), qlen)}
	r.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer r.wg.Done()
			for f := range r.q {
				f()
			}
		}()
	}
	return r
}

func (r *Recorder) Close() {
	r.once.Do(func() {
		close(r.q)
		r.wg.Wait()
	})
}

func (r *Recorder) try(f func()) {
	select {
	case r.q <- f:
	default: // drop
	}
}

func (r *Recorder) Before(_ context.Context, op string, args []any) {
	r.try(func() { r.inner.Before(context.Background(), op, args) })
}

func (r *Recorder) After(_ context.Context, op string, args []any, result string) {
	r.try(func() { r.inner.After(context.Background(), op, args, result) })
}
