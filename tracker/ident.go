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

package tracker

// Ident is the identity cell every tracked type embeds (by value). It owns
// the id accessor and the set-once bind guard; tracked types must not shadow
// either. The cell is written exactly once, by the tracker, before the
// instance is published to any other goroutine.
//
//	type Widget struct {
//		tracker.Ident[int]
//		Color string
//	}
type Ident[ID comparable] struct {
	id    ID
	bound bool
}

// ID returns the identity value assigned at first construction.
func (c *Ident[ID]) ID() ID { return c.id }

// bind assigns the identity once. It reports false if the cell is already
// bound, which callers must treat as "initialization already happened".
func (c *Ident[ID]) bind(id ID) bool {
	if c.bound {
		return false
	}
	c.id = id
	c.bound = true
	return true
}

// binder is satisfied only by types embedding Ident: the unexported bind
// method cannot be implemented outside this package. This is what makes the
// identity cell and its accessor mechanism-owned.
type binder[ID comparable] interface {
	ID() ID
	bind(id ID) bool
}
