// Package tracekv is a thin convenience layer over an external key-value
// store: it writes values under generated keys, records per-operation call
// counts and call history through composable instrumentation middleware, and
// replays recorded history as a human-readable transcript.
//
// Components:
//   - Provider: byte store with counters and lists (Redis, or in-memory).
//   - Recorder: before/after middleware around an instrumented operation.
//     CallCounter increments "<op>"; CallHistory appends to "<op>:inputs"
//     and "<op>:outputs".
//   - Cache: the façade. Store generates a UUID key and writes through the
//     recorder; typed fetch variants decode the raw bytes.
//   - Replay: prints "<op>(*<input>) -> <output>" per recorded invocation.
//
// All durability, persistence and concurrency behavior belongs to the store;
// this layer issues plain get/set/incr/rpush calls and never retries.
//
//	p, _ := redis.Dial("")
//	c, _ := tracekv.New(tracekv.Options{Provider: p})
//	key, _ := c.Store(ctx, "hello")
//	s, ok, _ := c.FetchString(ctx, key)
//	_ = tracekv.Replay(ctx, os.Stdout, p, tracekv.OpStore)
package tracekv
