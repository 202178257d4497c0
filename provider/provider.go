// Package provider defines the storage abstraction used by tracekv.
//
// Implementations MUST be byte-for-byte transparent: Get must return exactly
// the same []byte that was previously passed to Set for a key (no prepended
// metadata, no re-encoding, no mutation). Counters created by Incr live in
// the same keyspace as plain values and must be readable back through Get as
// their decimal string representation, mirroring how Redis exposes INCR'd
// keys to GET.
//
// Important: tracekv owns the "<op>", "<op>:inputs" and "<op>:outputs" keys
// of every operation name it instruments. External code MUST NOT write under
// those names; foreign writes will surface as garbage in replay transcripts.
package provider

import "context"

// Provider is a minimal byte store with atomic counters and ordered lists.
// Get/Set/Incr/RPush/LRange are each individually atomic at the store level;
// nothing here coordinates sequences of calls.
type Provider interface {
	// Get returns (value, true, nil) on hit; (nil, false, nil) on miss.
	// If an IO/remote error happens, return (nil, false, err).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key, overwriting any previous value. No TTL.
	Set(ctx context.Context, key string, value []byte) error

	// Incr atomically increments the integer stored at key and returns the
	// new value. A missing key counts from zero. A key holding non-numeric
	// bytes is an error.
	Incr(ctx context.Context, key string) (int64, error)

	// RPush appends value to the tail of the list stored at key, creating
	// the list if it does not exist.
	RPush(ctx context.Context, key string, value []byte) error

	// LRange returns the list elements between start and stop inclusive.
	// Negative indices count from the tail (-1 is the last element), so
	// (0, -1) returns the whole list. A missing list is an empty result,
	// not an error.
	LRange(ctx context.Context, key string, start, stop int64) ([][]byte, error)

	// Exists reports whether key holds anything (value, counter, or list).
	Exists(ctx context.Context, key string) (bool, error)

	// FlushAll wipes every key in the connected store.
	FlushAll(ctx context.Context) error

	// Live reports whether this provider is backed by a usable connection.
	// Implementations determine this once at construction and cache it;
	// instrumentation and replay consult it instead of probing per call.
	Live() bool

	// Close releases resources.
	Close(ctx context.Context) error
}
