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

package strategy

import (
	"dirpx.dev/trax/apis"
)

// NewReloaderStrategy creates an apis.Strategy that uses apis.Reloader.
func NewReloaderStrategy[ID comparable]() apis.Strategy[ID] {
	return reloaderStrategy[ID]{}
}

// reloaderStrategy is the fast path: if v implements apis.Reloader, its
// Reload method is the reinitialization function and the chain stops.
type reloaderStrategy[ID comparable] struct{}

// TryResolve checks if v implements apis.Reloader and returns its Reload.
func (reloaderStrategy[ID]) TryResolve(v any, _ apis.Config) (apis.LoadFunc[ID], bool) {
	if v == nil {
		return nil, false
	}
	if r, ok := v.(apis.Reloader[ID]); ok {
		return r.Reload, true
	}
	return nil, false
}
