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

import "go.uber.org/zap"

// Config carries read-only tracker knobs. It is passed by value and should
// be treated as immutable by implementations.
type Config struct {
	// FlightKey derives the in-flight deduplication key for an id. Two ids
	// that map to the same key share a construction flight, so the function
	// should be injective over the tracker's id space. If nil, a fmt-based
	// default is used.
	FlightKey func(id any) string

	// MaxEmbedDepth limits how deep the contract check searches for the
	// embedded identity cell in a tracked type. Acts as a safety guard
	// against pathological embedding chains.
	MaxEmbedDepth int

	// CollectStats enables hit/miss/reload/eviction accounting on a tracker.
	CollectStats bool

	// Logger receives debug-level lifecycle events (construct, reuse,
	// reload, load failure, purge). If nil, a no-op logger is used.
	Logger *zap.Logger
}
