package tracekv

import (
	"context"

	"github.com/unkn0wn-root/tracekv/codec"
)

// FetchWith reads key and decodes through an explicit decode function.
// Absence short-circuits: decode never sees a missing key's nil bytes.
func FetchWith[V any](ctx context.Context, c *Cache, key string, decode func([]byte) (V, error)) (V, bool, error) {
	var zero V
	raw, ok, err := c.Fetch(ctx, key)
	if err != nil || !ok {
		return zero, ok, err
	}
	v, err := decode(raw)
	if err != nil {
		return zero, true, err
	}
	return v, true, nil
}

// StoreAs writes an arbitrary value through a pluggable codec under a fresh
// random key, traveling the same instrumented path as Store but counted
// under OpStoreAs.
func StoreAs[V any](ctx context.Context, c *Cache, value V, cd codec.Codec[V]) (string, error) {
	raw, err := cd.Encode(value)
	if err != nil {
		return "", err
	}
	return c.storeRaw(ctx, OpStoreAs, value, raw)
}

// FetchAs is the read side of StoreAs.
func FetchAs[V any](ctx context.Context, c *Cache, key string, cd codec.Codec[V]) (V, bool, error) {
	return FetchWith(ctx, c, key, cd.Decode)
}
