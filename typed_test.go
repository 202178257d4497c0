package tracekv

import (
	"context"
	"errors"
	"testing"

	"github.com/unkn0wn-root/tracekv/codec"
	"github.com/unkn0wn-root/tracekv/internal/keys"
	"github.com/unkn0wn-root/tracekv/provider/memory"
)

type profile struct {
	ID   string `json:"id" msgpack:"id"`
	Age  int    `json:"age" msgpack:"age"`
	Tags []string
}

func TestStoreAsFetchAs(t *testing.T) {
	ctx := context.Background()
	p := memory.New()
	c := newTestCache(t, p)
	defer c.Close(ctx)

	v := profile{ID: "u1", Age: 30, Tags: []string{"a", "b"}}

	t.Run("json", func(t *testing.T) {
		key, err := StoreAs(ctx, c, v, codec.JSON[profile]{})
		if err != nil {
			t.Fatalf("StoreAs: %v", err)
		}
		got, ok, err := FetchAs(ctx, c, key, codec.JSON[profile]{})
		if err != nil || !ok {
			t.Fatalf("FetchAs: ok=%v err=%v", ok, err)
		}
		if got.ID != v.ID || got.Age != v.Age || len(got.Tags) != 2 {
			t.Fatalf("roundtrip mismatch: %+v", got)
		}
	})

	t.Run("msgpack", func(t *testing.T) {
		key, err := StoreAs(ctx, c, v, codec.Msgpack[profile]{})
		if err != nil {
			t.Fatalf("StoreAs: %v", err)
		}
		got, ok, err := FetchAs(ctx, c, key, codec.Msgpack[profile]{})
		if err != nil || !ok || got.ID != v.ID {
			t.Fatalf("FetchAs: ok=%v err=%v got=%+v", ok, err, got)
		}
	})

	// Typed writes are instrumented under their own operation name.
	if ok, _ := p.Exists(ctx, keys.Counter(OpStoreAs)); !ok {
		t.Fatalf("no counter recorded for %s", OpStoreAs)
	}
}

func TestFetchWithMissingKeySkipsDecode(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t, memory.New())
	defer c.Close(ctx)

	called := false
	v, ok, err := FetchWith(ctx, c, "absent", func(b []byte) (int, error) {
		called = true
		return 0, errors.New("decode should not run")
	})
	if called {
		t.Fatalf("decode ran for a missing key")
	}
	if v != 0 || ok || err != nil {
		t.Fatalf("FetchWith: v=%v ok=%v err=%v", v, ok, err)
	}
}

func TestFetchWithDecodeError(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t, memory.New())
	defer c.Close(ctx)

	key, err := c.Store(ctx, "raw")
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	wantErr := errors.New("boom")
	_, ok, err := FetchWith(ctx, c, key, func(b []byte) (int, error) {
		return 0, wantErr
	})
	if !ok || !errors.Is(err, wantErr) {
		t.Fatalf("FetchWith: ok=%v err=%v", ok, err)
	}
}

func TestLimitCodecGuardsDecode(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t, memory.New())
	defer c.Close(ctx)

	cd := codec.Limit[string]{Inner: codec.String{}, MaxDecode: 4}
	key, err := StoreAs(ctx, c, "way too long", cd)
	if err != nil {
		t.Fatalf("StoreAs: %v", err)
	}
	if _, ok, err := FetchAs(ctx, c, key, cd); !ok || err == nil {
		t.Fatalf("expected oversized decode rejection, ok=%v err=%v", ok, err)
	}
}
