package tracekv

import (
	"context"

	"github.com/unkn0wn-root/tracekv/provider"
)

// Operation names under which the façade's writes are instrumented. The
// counter lives at the bare name; history at "<name>:inputs" / ":outputs".
const (
	OpStore   = "Cache.Store"
	OpStoreAs = "Cache.StoreAs"
)

// Options tune the Cache. Only Provider is required.
type Options struct {
	// Required
	Provider provider.Provider

	Logger   Logger   // if nil, NopLogger is used
	Recorder Recorder // if nil, CallCounter + CallHistory against Provider

	// SkipFlush keeps pre-existing store contents. By default construction
	// wipes the connected store (FlushAll), so every Cache starts empty.
	SkipFlush bool
}

// New builds a Cache and, unless SkipFlush is set, wipes the connected store.
func New(opts Options) (*Cache, error) {
	return newCache(context.Background(), opts)
}

// NewContext is New with a caller-supplied context for the initial flush.
func NewContext(ctx context.Context, opts Options) (*Cache, error) {
	return newCache(ctx, opts)
}
