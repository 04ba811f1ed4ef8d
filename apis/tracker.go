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

package apis

// Tracker is the identity map for one tracked type: at most one live *T per
// id. Construction is the only path to obtaining an instance; the tracker
// never holds a strong reference, so instances are reclaimable once callers
// drop theirs.
type Tracker[T any, ID comparable] interface {
	// Construct returns the live instance for id, or builds, binds, and loads
	// a new one. Concurrent calls for the same new id share one construction.
	Construct(id ID, args ...any) (*T, error)

	// Reload is Construct with a forced reload: a live instance is
	// re-initialized in place (Reload if implemented, else Load) and
	// returned; an absent id behaves exactly like a first construction.
	Reload(id ID, args ...any) (*T, error)

	// Lookup returns the live instance for id without constructing.
	Lookup(id ID) (*T, bool)

	// Len returns the number of registry entries, stale ones included.
	Len() int

	// LiveIDs returns a snapshot of ids whose instances are still live
	// (order is unspecified).
	LiveIDs() []ID

	// Purge removes entries whose weak references no longer resolve and
	// returns how many were dropped.
	Purge() int

	// Forget drops the entry for id, live or stale. It reports whether an
	// entry was present. The instance itself, if live, is untouched; a later
	// Construct for the same id builds a fresh one.
	Forget(id ID) bool

	// Reset drops all entries.
	Reset()

	// Stats returns a snapshot of the tracker's counters. Zero value when
	// stats collection is disabled.
	Stats() Stats
}

// Stats is a point-in-time snapshot of tracker accounting.
type Stats struct {
	// Hits counts constructions satisfied by a live registry entry.
	Hits uint64
	// Misses counts constructions that had to build a new instance.
	Misses uint64
	// Loads counts completed first-time initializations.
	Loads uint64
	// LoadFailures counts first-time initializations that returned an error.
	LoadFailures uint64
	// Reloads counts completed forced reloads of live instances.
	Reloads uint64
	// ReloadFailures counts forced reloads that returned an error.
	ReloadFailures uint64
	// Evictions counts stale entries dropped, by overwrite, Purge, Forget,
	// or Reset.
	Evictions uint64
}
