package redis

import (
	"context"
	"errors"

	goredis "github.com/redis/go-redis/v9"

	pr "github.com/unkn0wn-root/tracekv/provider"
)

var ErrNilClient = errors.New("redis provider: nil client")

// DefaultAddr is where a locally running Redis listens out of the box.
const DefaultAddr = "localhost:6379"

// Redis adapts a go-redis client to the tracekv Provider contract.
// Liveness is probed once with PING at construction and cached; a provider
// built against an unreachable server is still usable (calls return the
// transport error) but reports Live() == false so instrumentation skips it.
type Redis struct {
	rdb         goredis.UniversalClient
	closeClient bool
	live        bool
}

var _ pr.Provider = (*Redis)(nil)

type Config struct {
	Client      goredis.UniversalClient
	CloseClient bool // set true only if this provider exclusively owns the client
}

func New(cfg Config) (*Redis, error) {
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	p := &Redis{rdb: cfg.Client, closeClient: cfg.CloseClient}
	p.live = p.rdb.Ping(context.Background()).Err() == nil
	return p, nil
}

// Dial builds a provider around a fresh client for addr. The provider owns
// the client. An empty addr means DefaultAddr.
func Dial(addr string) (*Redis, error) {
	if addr == "" {
		addr = DefaultAddr
	}
	return New(Config{
		Client:      goredis.NewClient(&goredis.Options{Addr: addr}),
		CloseClient: true,
	})
}

func (p *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := p.rdb.Get(ctx, key).Bytes()
	if err == goredis.Nil {
		return nil, false, nil // miss
	}
	if err != nil {
		return nil, false, err // transport/server error
	}
	return b, true, nil
}

func (p *Redis) Set(ctx context.Context, key string, value []byte) error {
	return p.rdb.Set(ctx, key, value, 0).Err()
}

func (p *Redis) Incr(ctx context.Context, key string) (int64, error) {
	return p.rdb.Incr(ctx, key).Result()
}

func (p *Redis) RPush(ctx context.Context, key string, value []byte) error {
	return p.rdb.RPush(ctx, key, value).Err()
}

func (p *Redis) LRange(ctx context.Context, key string, start, stop int64) ([][]byte, error) {
	vals, err := p.rdb.LRange(ctx, key, start, stop).Result()
	if err != nil {
		return nil, err
	}
	out := make([][]byte, len(vals))
	for i, v := range vals {
		out[i] = []byte(v)
	}
	return out, nil
}

func (p *Redis) Exists(ctx context.Context, key string) (bool, error) {
	n, err := p.rdb.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// FlushAll wipes the selected database (FLUSHDB), which for the default
// single-database setup is the whole store.
func (p *Redis) FlushAll(ctx context.Context) error {
	return p.rdb.FlushDB(ctx).Err()
}

func (p *Redis) Live() bool { return p.live }

// Close releases the underlying redis client only when this provider owns it.
// Safe to call multiple times; repeated calls become no-ops.
func (p *Redis) Close(context.Context) error {
	if p.closeClient {
		if err := p.rdb.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
			return err
		}
	}
	return nil
}
