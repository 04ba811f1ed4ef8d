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

// LoadFunc applies (re)initialization arguments to the instance it is bound to.
type LoadFunc[ID comparable] func(id ID, args ...any) error

// Strategy is a pluggable reinitialization step. A Resolver can chain multiple
// strategies in order (e.g., Reloader -> Loader) to decide how a live instance
// is re-initialized on a forced reload.
type Strategy[ID comparable] interface {
	// TryResolve attempts to produce a reinitialization function bound to v.
	// It returns (fn, true) if handled; otherwise (nil, false) to fall through.
	TryResolve(v any, cfg Config) (fn LoadFunc[ID], handled bool)
}
