/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package tracker

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"
	"weak"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"dirpx.dev/trax/apis"
	"dirpx.dev/trax/config"
	"dirpx.dev/trax/resolver"
	uref "dirpx.dev/trax/utils/reflect"
)

var (
	// ErrMissingLoad indicates that the tracked type's pointer type does not
	// implement apis.Loader for the tracker's id type.
	ErrMissingLoad = errors.New("trax(tracker): tracked type does not implement Load")
	// ErrMissingIdent indicates that the tracked type does not embed
	// tracker.Ident (by value) for the tracker's id type.
	ErrMissingIdent = errors.New("trax(tracker): tracked type does not embed tracker.Ident")
	// ErrNoReloadPath indicates that no reinitialization strategy handled a
	// live instance on a forced reload.
	ErrNoReloadPath = errors.New("trax(tracker): no reload path for live instance")
)

// New constructs the identity map for tracked type T with id type ID,
// configured by cfg (zero fields fall back to the config package defaults).
//
// Contract checks run here, once per tracked type and before any instance
// exists: *T must implement apis.Loader[ID] (ErrMissingLoad) and T must embed
// tracker.Ident[ID] by value within cfg.MaxEmbedDepth (ErrMissingIdent).
// Allocation and the id accessor are owned by the mechanism; they cannot be
// supplied by the tracked type.
func New[T any, ID comparable](cfg apis.Config) (*Tracker[T, ID], error) {
	if cfg.FlightKey == nil {
		cfg.FlightKey = config.DefaultFlightKey
	}
	if cfg.MaxEmbedDepth <= 0 {
		cfg.MaxEmbedDepth = config.DefaultMaxEmbedDepth
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	if _, ok := any((*T)(nil)).(apis.Loader[ID]); !ok {
		return nil, ErrMissingLoad
	}
	if _, ok := any((*T)(nil)).(binder[ID]); !ok {
		return nil, ErrMissingIdent
	}
	// The assertions above accept pointer embedding too; the structural check
	// insists on a by-value cell so the id's lifetime matches the instance's.
	if err := uref.FindEmbedded(reflect.TypeFor[T](), reflect.TypeFor[Ident[ID]](), cfg); err != nil {
		return nil, ErrMissingIdent
	}

	return &Tracker[T, ID]{
		cfg:     cfg,
		log:     cfg.Logger,
		res:     resolver.Default[ID](),
		entries: make(map[ID]weak.Pointer[T]),
	}, nil
}

// Must is like New but panics on a contract violation. Intended for
// package-level tracker variables.
func Must[T any, ID comparable](cfg apis.Config) *Tracker[T, ID] {
	t, err := New[T, ID](cfg)
	if err != nil {
		panic(err)
	}
	return t
}

// Tracker guarantees at most one live *T per id. The registry holds weak
// references only, so it never extends an instance's lifetime; a stale entry
// is treated as absent and overwritten by the next construction for its id.
//
// The mutex covers registry lookups and inserts only. User Load/Reload code
// always runs outside it, so a Load may construct other tracked objects (on
// this tracker or any other) without deadlocking. The one unsupported shape
// is a load cycle: constructing id X from inside X's own Load (directly or
// through a chain that leads back to X) blocks forever on X's flight.
type Tracker[T any, ID comparable] struct {
	cfg apis.Config
	log *zap.Logger
	res apis.Resolver[ID]

	// mu guards entries; never held across user Load/Reload code.
	mu      sync.Mutex
	entries map[ID]weak.Pointer[T]

	// flight collapses concurrent first constructions per id, so no caller
	// can observe an instance whose Load has not finished.
	flight singleflight.Group

	stats counters
}

// Ensure Tracker implements the apis contract.
var _ apis.Tracker[struct{ Ident[int] }, int] = (*Tracker[struct{ Ident[int] }, int])(nil)

// counters backs apis.Stats with atomics so hot paths never lock for stats.
type counters struct {
	hits           atomic.Uint64
	misses         atomic.Uint64
	loads          atomic.Uint64
	loadFailures   atomic.Uint64
	reloads        atomic.Uint64
	reloadFailures atomic.Uint64
	evictions      atomic.Uint64
}

// Construct returns the live instance for id or builds, binds, and loads a
// new one. Concurrent calls for the same new id share a single construction;
// every caller receives the same fully-initialized instance or the same
// error. Load errors propagate verbatim and leave nothing registered, so a
// failed id is immediately retryable.
func (t *Tracker[T, ID]) Construct(id ID, args ...any) (*T, error) {
	return t.construct(id, false, args)
}

// Reload is Construct with a forced reload. A live instance is re-initialized
// in place via its reload path (Reload if implemented, else Load) and
// returned; its identity and id are unchanged. When no live instance exists,
// Reload behaves exactly like a first construction. A reload error propagates
// to the caller but never evicts the live instance.
func (t *Tracker[T, ID]) Reload(id ID, args ...any) (*T, error) {
	return t.construct(id, true, args)
}

func (t *Tracker[T, ID]) construct(id ID, force bool, args []any) (*T, error) {
	if inst, ok := t.lookup(id); ok {
		t.count(&t.stats.hits)
		if force {
			return t.reload(inst, id, args)
		}
		t.log.Debug("trax: reused", zap.Any("id", id))
		return inst, nil
	}

	v, err, _ := t.flight.Do(t.cfg.FlightKey(id), func() (any, error) {
		// Re-check: a previous flight may have published between the fast
		// path miss and entering this one.
		if inst, ok := t.lookup(id); ok {
			t.count(&t.stats.hits)
			return inst, nil
		}
		return t.build(id, args)
	})
	if err != nil {
		return nil, err
	}
	// A forced reload that found no live instance collapses to a plain first
	// construction: the instance was just loaded, so no reload runs.
	return v.(*T), nil
}

// build performs a first construction: allocate, bind the identity, run the
// optional Init hook, run Load, and only then publish the weak entry. Nothing
// is visible to any other caller until Load has succeeded.
func (t *Tracker[T, ID]) build(id ID, args []any) (*T, error) {
	t.count(&t.stats.misses)

	inst := new(T)
	if !any(inst).(binder[ID]).bind(id) {
		// A fresh allocation is never pre-bound; an already-identified
		// instance must not have its Load re-run.
		return inst, nil
	}
	if ini, ok := any(inst).(apis.Initializer[ID]); ok {
		ini.Init(id)
	}
	if err := any(inst).(apis.Loader[ID]).Load(id, args...); err != nil {
		t.count(&t.stats.loadFailures)
		t.log.Debug("trax: load failed", zap.Any("id", id), zap.Error(err))
		return nil, err
	}

	t.mu.Lock()
	if old, ok := t.entries[id]; ok && old.Value() == nil {
		t.stats.evictions.Add(t.statsStep())
	}
	t.entries[id] = weak.Make(inst)
	t.mu.Unlock()

	t.count(&t.stats.loads)
	t.log.Debug("trax: constructed", zap.Any("id", id))
	return inst, nil
}

// reload runs the resolved reinitialization path on a live instance, outside
// all locks, exactly as the first-construction Load would run.
func (t *Tracker[T, ID]) reload(inst *T, id ID, args []any) (*T, error) {
	fn, ok := t.res.Resolve(inst, t.cfg)
	if !ok {
		return nil, ErrNoReloadPath
	}
	if err := fn(id, args...); err != nil {
		// The instance stays registered: a failed reload must not evict a
		// previously-live instance, even if it left it partially mutated.
		t.count(&t.stats.reloadFailures)
		t.log.Debug("trax: reload failed", zap.Any("id", id), zap.Error(err))
		return nil, err
	}
	t.count(&t.stats.reloads)
	t.log.Debug("trax: reloaded", zap.Any("id", id))
	return inst, nil
}

// Lookup returns the live instance for id without constructing.
func (t *Tracker[T, ID]) Lookup(id ID) (*T, bool) {
	return t.lookup(id)
}

func (t *Tracker[T, ID]) lookup(id ID) (*T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	p, ok := t.entries[id]
	if !ok {
		return nil, false
	}
	inst := p.Value()
	if inst == nil {
		// Stale entry: the instance was collected. Treated as absent; the
		// entry is overwritten by the next successful construction.
		return nil, false
	}
	return inst, true
}

// Len returns the number of registry entries, stale ones included.
func (t *Tracker[T, ID]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// LiveIDs returns a snapshot of ids whose instances are still live
// (order is unspecified).
func (t *Tracker[T, ID]) LiveIDs() []ID {
	t.mu.Lock()
	defer t.mu.Unlock()
	ids := make([]ID, 0, len(t.entries))
	for id, p := range t.entries {
		if p.Value() != nil {
			ids = append(ids, id)
		}
	}
	return ids
}

// Purge removes entries whose weak references no longer resolve and returns
// how many were dropped.
func (t *Tracker[T, ID]) Purge() int {
	t.mu.Lock()
	n := 0
	for id, p := range t.entries {
		if p.Value() == nil {
			delete(t.entries, id)
			n++
		}
	}
	t.mu.Unlock()

	if n > 0 {
		t.stats.evictions.Add(t.statsStep() * uint64(n))
		t.log.Debug("trax: purged", zap.Int("entries", n))
	}
	return n
}

// Forget drops the entry for id, live or stale, and reports whether one was
// present. A live instance itself is untouched; a later Construct for the
// same id builds a fresh one.
func (t *Tracker[T, ID]) Forget(id ID) bool {
	t.mu.Lock()
	_, ok := t.entries[id]
	if ok {
		delete(t.entries, id)
	}
	t.mu.Unlock()

	if ok {
		t.stats.evictions.Add(t.statsStep())
	}
	return ok
}

// Reset drops all entries.
func (t *Tracker[T, ID]) Reset() {
	t.mu.Lock()
	n := len(t.entries)
	t.entries = make(map[ID]weak.Pointer[T])
	t.mu.Unlock()

	t.stats.evictions.Add(t.statsStep() * uint64(n))
}

// Stats returns a snapshot of the tracker's counters. All counters stay zero
// when stats collection is disabled.
func (t *Tracker[T, ID]) Stats() apis.Stats {
	return apis.Stats{
		Hits:           t.stats.hits.Load(),
		Misses:         t.stats.misses.Load(),
		Loads:          t.stats.loads.Load(),
		LoadFailures:   t.stats.loadFailures.Load(),
		Reloads:        t.stats.reloads.Load(),
		ReloadFailures: t.stats.reloadFailures.Load(),
		Evictions:      t.stats.evictions.Load(),
	}
}

func (t *Tracker[T, ID]) count(c *atomic.Uint64) {
	if t.cfg.CollectStats {
		c.Add(1)
	}
}

// statsStep returns the increment unit for bulk counters: 0 disables them.
func (t *Tracker[T, ID]) statsStep() uint64 {
	if t.cfg.CollectStats {
		return 1
	}
	return 0
}
