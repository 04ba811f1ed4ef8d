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

// Package trax provides a process-wide class-identity registry: at most one
// live instance per (tracked type, id) pair, with transparent re-use and
// optional forced reload.
//
// trax is responsible for making "give me the object with id X" always hand
// back the same object while anyone still holds it, and a freshly loaded one
// once nobody does. It is primarily meant for very light ORM-like layers,
// caches of expensive domain objects, and anywhere two parts of a process
// must agree on object identity.
//
// # Design
//
// The core of trax is the Tracker, one per tracked type. A tracker holds a
// registry mapping id -> weak reference to the live instance. Construction
// is the only path to an instance:
//
//   - Registry hit with a live weak reference: the same instance is
//     returned. With a forced reload it is first re-initialized in place.
//
//   - Miss, or a stale entry whose referent was collected: a new instance is
//     allocated, its identity is bound (set-once), the optional Init hook
//     runs, then Load runs. Only after Load succeeds is the weak entry
//     published, and the stale entry, if any, silently overwritten.
//
// The registry never holds a strong reference, so instance lifetime is
// governed entirely by the caller's references. Once the last one is
// dropped and the collector runs, the entry goes stale and the next
// construction for that id loads a fresh instance.
//
// A tracked type satisfies a small contract, checked once when its tracker
// is created (not on every construction):
//
//   - it embeds tracker.Ident[ID] by value, which owns the read-only ID()
//     accessor and the bind guard;
//   - its pointer type implements apis.Loader[ID] (mandatory Load);
//   - it may implement apis.Reloader[ID]; forced reloads resolve to Reload
//     when present and fall back to Load otherwise, via the
//     resolver/strategy chain;
//   - it may implement apis.Initializer[ID] for structural setup that is
//     distinct from population.
//
// Violations (no Load, no embedded identity cell) fail fast with
// tracker.ErrMissingLoad / tracker.ErrMissingIdent before any instance of
// the type is ever created.
//
// # Concurrency model
//
// Any number of goroutines may construct concurrently. The tracker mutex
// covers registry lookups and inserts only; user Load/Reload code always
// runs outside it, so loading one object may construct others (on the same
// tracker or another) without deadlock. First constructions of the same id
// are collapsed by a per-id flight: late arrivals block until the first
// caller's Load completes and then share the instance (or the error). No
// caller — fast path included — can observe an instance whose id is unbound
// or whose Load has not finished.
//
// Two shapes are deliberately unsupported: re-constructing an id from
// inside its own Load, and load cycles between ids; both block on the
// flight they are already part of.
//
// Load errors propagate to the caller verbatim and leave nothing registered,
// so a failed id is immediately retryable. Reload errors propagate too but
// never evict the live instance.
//
// # Global API
//
// The package root offers a process-wide tracker pool, one tracker per
// (tracked type, id type) pair, plus a configuration snapshot published via
// an atomic pointer:
//
//	w, err := trax.Construct[Widget](1)   // load on first use
//	w2, _  := trax.Construct[Widget](1)   // same instance: w2 == w
//	w3, _  := trax.Reload[Widget](1)      // same instance, re-initialized
//
//	widgets := trax.MustFor[Widget, int]() // the tracker itself
//	widgets.Stats()
//
// SetConfig applies to trackers created afterwards; Reset clears the pool
// for deterministic tests. Trackers can equally be created standalone with
// tracker.New and a config.NewConfig(...) — nothing forces the global pool.
//
// # Scope
//
// trax is intentionally small. It does not persist anything, talk to the
// network, or know about the domain objects built on top of it. It only
// solves one job:
//
//	"For any tracked type and id, there is at most one live instance,
//	 and constructing is the only way to get it."
//
// Everything else (where the data comes from, what Load does, how long
// callers keep instances) belongs to the collaborating domain types.
package trax
