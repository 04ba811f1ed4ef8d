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

package resolver

import (
	"dirpx.dev/trax/apis"
	"dirpx.dev/trax/strategy"
)

// New constructs an apis.Resolver that tries the given strategies in order.
// Nil strategies are ignored. The returned resolver is safe for concurrent
// use provided strategies themselves are safe for concurrent TryResolve calls.
func New[ID comparable](strategies ...apis.Strategy[ID]) apis.Resolver[ID] {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Strategy[ID], 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return chain[ID]{strats: out}
}

// Default constructs the standard reinitialization chain:
// Reloader first, Loader as the fallback.
func Default[ID comparable]() apis.Resolver[ID] {
	return New(
		strategy.NewReloaderStrategy[ID](),
		strategy.NewLoaderStrategy[ID](),
	)
}

// chain is an immutable, order-preserving resolver over a set of strategies.
type chain[ID comparable] struct {
	strats []apis.Strategy[ID]
}

// Resolve runs strategies in order until one handles the value.
// Returns (nil, false) if no strategy produced a reinitialization function.
func (r chain[ID]) Resolve(v any, cfg apis.Config) (apis.LoadFunc[ID], bool) {
	for _, s := range r.strats {
		if fn, ok := s.TryResolve(v, cfg); ok {
			return fn, true
		}
	}
	return nil, false
}
