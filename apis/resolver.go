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

// Resolver coordinates strategies to pick the reinitialization path for a
// live instance. Typical chain: ReloaderStrategy -> LoaderStrategy, which
// realizes "reload defaults to load" without dynamic attribute tricks.
type Resolver[ID comparable] interface {
	// Resolve returns a reinitialization function bound to v, or (nil, false)
	// if no strategy could handle v.
	Resolve(v any, cfg Config) (LoadFunc[ID], bool)
}
