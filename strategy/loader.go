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

// NewLoaderStrategy creates an apis.Strategy that falls back to apis.Loader.
// Chained after the reloader strategy, it makes "reload" an alias for "load"
// on types that never defined a Reload of their own.
func NewLoaderStrategy[ID comparable]() apis.Strategy[ID] {
	return loaderStrategy[ID]{}
}

// loaderStrategy resolves to the mandatory Load method.
type loaderStrategy[ID comparable] struct{}

// TryResolve checks if v implements apis.Loader and returns its Load.
func (loaderStrategy[ID]) TryResolve(v any, _ apis.Config) (apis.LoadFunc[ID], bool) {
	if v == nil {
		return nil, false
	}
	if l, ok := v.(apis.Loader[ID]); ok {
		return l.Load, true
	}
	return nil, false
}
