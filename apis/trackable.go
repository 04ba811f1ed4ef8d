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

// Loader is the mandatory half of the trackable contract. A tracked type's
// pointer type must implement it; Load (re)initializes the receiver from the
// given id and arguments.
//
// Load is invoked exactly once per instance during first construction, after
// the instance's identity has been bound. It must leave the receiver fully
// usable on nil return. A non-nil error aborts construction: nothing is
// published for the id and the error reaches the Construct caller verbatim.
type Loader[ID comparable] interface {
	// Load populates the receiver from id and optional extra arguments.
	Load(id ID, args ...any) error
}

// Reloader is the optional half of the trackable contract. When a tracked
// type implements it, a forced reload calls Reload on the live instance;
// otherwise the reload path falls back to Load. Reload mutates the receiver
// in place; the instance's identity never changes.
type Reloader[ID comparable] interface {
	// Reload re-populates an already-live receiver from id and arguments.
	Reload(id ID, args ...any) error
}

// Initializer is an optional pre-initialization hook, run after the identity
// is bound and before Load during first construction. It is the place for
// "build the object" setup that is distinct from "populate it" (Load).
type Initializer[ID comparable] interface {
	// Init performs one-time structural setup for a freshly allocated instance.
	Init(id ID)
}
