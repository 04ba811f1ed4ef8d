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

package trax

import (
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/trax/apis"
	"dirpx.dev/trax/config"
	"dirpx.dev/trax/tracker"
)

// init initializes the global state.
func init() {
	st.Store(&state{cfg: config.DefaultConfig()})
}

// Construct resolves or builds the tracked instance of T for id using the
// process-wide tracker for (T, ID). The tracker is created on first use; a
// contract violation of T surfaces here as an error.
//
// This is a convenience wrapper around For:
//
//	w, err := trax.Construct[Widget](1)
func Construct[T any, ID comparable](id ID, args ...any) (*T, error) {
	t, err := For[T, ID]()
	if err != nil {
		return nil, err
	}
	return t.Construct(id, args...)
}

// Reload is Construct with a forced reload: a live instance is re-initialized
// in place before being returned; an absent id constructs normally.
// This is a convenience wrapper around For.
func Reload[T any, ID comparable](id ID, args ...any) (*T, error) {
	t, err := For[T, ID]()
	if err != nil {
		return nil, err
	}
	return t.Reload(id, args...)
}

// For returns the process-wide tracker for (T, ID), creating it on first use
// with the global configuration current at that moment. Every later call for
// the same pair returns the identical tracker, so the per-type registry is
// created exactly once.
func For[T any, ID comparable]() (*tracker.Tracker[T, ID], error) {
	key := poolKey{typ: reflect.TypeFor[T](), id: reflect.TypeFor[ID]()}
	if v, ok := pool.Load(key); ok {
		return v.(*tracker.Tracker[T, ID]), nil
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Re-check under lock in case another goroutine built meanwhile.
	if v, ok := pool.Load(key); ok {
		return v.(*tracker.Tracker[T, ID]), nil
	}
	t, err := tracker.New[T, ID](st.Load().cfg)
	if err != nil {
		return nil, err
	}
	pool.Store(key, t)
	return t, nil
}

// MustFor is like For but panics on a contract violation. Intended for
// package-level registration of tracked types:
//
//	var widgets = trax.MustFor[Widget, int]()
func MustFor[T any, ID comparable]() *tracker.Tracker[T, ID] {
	t, err := For[T, ID]()
	if err != nil {
		panic(err)
	}
	return t
}

// Config returns the global trax configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global trax configuration to cfg.
//
// Only trackers created after the call observe it. Existing trackers keep
// the configuration they were built with: their registries hold live
// identity entries that cannot be rebuilt without breaking the one-instance
// guarantee.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	st.Store(&state{cfg: cfg})
}

// Reset drops all process-wide trackers and restores the default
// configuration. Instances already handed out stay valid but are no longer
// reachable through the registry. Intended for tests that need a clean,
// deterministic state.
func Reset() {
	buildMu.Lock()
	defer buildMu.Unlock()

	pool.Range(func(k, _ any) bool {
		pool.Delete(k)
		return true
	})
	st.Store(&state{cfg: config.DefaultConfig()})
}

// buildMu serializes writers (reconfigurations and pool inserts) so we never
// publish partially-built state.
var buildMu sync.Mutex

// st is the global trax state.
var st atomic.Pointer[state]

// pool holds one tracker per (tracked type, id type) pair.
var pool sync.Map // poolKey -> *tracker.Tracker[T, ID]

// poolKey identifies a tracker by its tracked type and id type.
type poolKey struct {
	typ reflect.Type
	id  reflect.Type
}

// state is the global trax state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global trax configuration.
	cfg apis.Config
}
