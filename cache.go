package tracekv

import (
	"context"
	"strconv"

	"github.com/google/uuid"

	"github.com/unkn0wn-root/tracekv/provider"
)

// Cache is the façade over a Provider: Store writes values under generated
// UUID keys through the configured Recorder; the Fetch variants read them
// back and decode. It holds one connection, takes no locks, and spawns no
// goroutines.
type Cache struct {
	provider provider.Provider
	rec      Recorder
	log      Logger
}

func newCache(ctx context.Context, opts Options) (*Cache, error) {
	if opts.Provider == nil {
		return nil, ErrNilProvider
	}

	c := &Cache{provider: opts.Provider}
	c.log = coalesce[Logger](opts.Logger, NopLogger{})
	if opts.Recorder != nil {
		c.rec = opts.Recorder
	} else {
		c.rec = MultiRecorder{
			NewCallCounter(opts.Provider),
			NewCallHistory(opts.Provider),
		}
	}

	if !opts.SkipFlush {
		if err := c.provider.FlushAll(ctx); err != nil {
			return nil, err
		}
		c.log.Debug("store flushed on init", nil)
	}
	return c, nil
}

// Store writes value under a fresh random key and returns the key.
// Supported values are strings, byte slices, integers and floats; anything
// else is ErrUnsupportedType. Key collisions are vanishingly unlikely and
// not checked. The write is counted and history-recorded under OpStore.
func (c *Cache) Store(ctx context.Context, value any) (string, error) {
	raw, err := encodeValue(value)
	if err != nil {
		return "", err
	}
	return c.storeRaw(ctx, OpStore, value, raw)
}

// storeRaw is the single instrumented write path. The counter and the input
// history entry land before the write; the output entry only after a
// successful write, so a failed call leaves inputs one longer than outputs
// (same as the counter, which also ticks for failed calls).
func (c *Cache) storeRaw(ctx context.Context, op string, arg any, raw []byte) (string, error) {
	args := []any{arg}
	c.rec.Before(ctx, op, args)

	key := uuid.NewString()
	if err := c.provider.Set(ctx, key, raw); err != nil {
		return "", err
	}

	c.rec.After(ctx, op, args, key)
	c.log.Debug("stored value", Fields{"op": op, "key": key, "bytes": len(raw)})
	return key, nil
}

// Fetch returns the raw bytes stored under key. A missing key is
// (nil, false, nil), never an error; every typed variant below shares that
// behavior and only decodes when the key is present.
func (c *Cache) Fetch(ctx context.Context, key string) ([]byte, bool, error) {
	return c.provider.Get(ctx, key)
}

// FetchString decodes the stored bytes as UTF-8 text.
func (c *Cache) FetchString(ctx context.Context, key string) (string, bool, error) {
	raw, ok, err := c.Fetch(ctx, key)
	if err != nil || !ok {
		return "", ok, err
	}
	return string(raw), true, nil
}

// FetchInt parses the stored bytes as a base-10 integer. Non-numeric bytes
// are a parse error, propagated as-is.
func (c *Cache) FetchInt(ctx context.Context, key string) (int64, bool, error) {
	raw, ok, err := c.Fetch(ctx, key)
	if err != nil || !ok {
		return 0, ok, err
	}
	n, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return 0, true, err
	}
	return n, true, nil
}

// FetchFloat parses the stored bytes as a float.
func (c *Cache) FetchFloat(ctx context.Context, key string) (float64, bool, error) {
	raw, ok, err := c.Fetch(ctx, key)
	if err != nil || !ok {
		return 0, ok, err
	}
	f, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return 0, true, err
	}
	return f, true, nil
}

// Flush wipes the connected store, same as construction does.
func (c *Cache) Flush(ctx context.Context) error {
	return c.provider.FlushAll(ctx)
}

// Close releases the provider.
func (c *Cache) Close(ctx context.Context) error {
	if c.provider != nil {
		return c.provider.Close(ctx)
	}
	return nil
}

// Provider exposes the underlying store, mainly for Replay.
func (c *Cache) Provider() provider.Provider { return c.provider }

// encodeValue maps a supported value onto its store representation: strings
// and bytes as-is, integers and floats as their decimal strings (the form
// Redis itself uses, so FetchInt/FetchFloat parse them straight back).
func encodeValue(value any) ([]byte, error) {
	switch v := value.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	case int:
		return strconv.AppendInt(nil, int64(v), 10), nil
	case int8:
		return strconv.AppendInt(nil, int64(v), 10), nil
	case int16:
		return strconv.AppendInt(nil, int64(v), 10), nil
	case int32:
		return strconv.AppendInt(nil, int64(v), 10), nil
	case int64:
		return strconv.AppendInt(nil, v, 10), nil
	case uint:
		return strconv.AppendUint(nil, uint64(v), 10), nil
	case uint8:
		return strconv.AppendUint(nil, uint64(v), 10), nil
	case uint16:
		return strconv.AppendUint(nil, uint64(v), 10), nil
	case uint32:
		return strconv.AppendUint(nil, uint64(v), 10), nil
	case uint64:
		return strconv.AppendUint(nil, v, 10), nil
	case float32:
		return strconv.AppendFloat(nil, float64(v), 'g', -1, 32), nil
	case float64:
		return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
	default:
		return nil, ErrUnsupportedType
	}
}
