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

package reflect

import (
	"errors"
	"reflect"

	"dirpx.dev/trax/apis"
	"dirpx.dev/trax/config"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectNotStruct is returned when the inspected type is not a struct.
	ErrReflectNotStruct = errors.New("reflect: type is not a struct")
	// ErrReflectNotEmbedded indicates that the wanted type is not embedded
	// (by value) anywhere within the inspected struct, up to MaxEmbedDepth.
	ErrReflectNotEmbedded = errors.New("reflect: required type is not embedded")
)

// FindEmbedded reports whether the struct type t embeds want by value,
// directly or through a chain of embedded structs no deeper than
// cfg.MaxEmbedDepth.
//
// Search policy:
//   - a pointer t is unwrapped to its element first;
//   - only anonymous (embedded) fields are considered;
//   - pointer embedding does not count: the identity cell must live inside
//     the instance so its lifetime matches the instance's.
//
// If MaxEmbedDepth <= 0, DefaultMaxEmbedDepth is used.
func FindEmbedded(t, want reflect.Type, cfg apis.Config) error {
	if t == nil || want == nil {
		return ErrReflectNilType
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return ErrReflectNotStruct
	}

	maxDepth := cfg.MaxEmbedDepth
	if maxDepth <= 0 {
		maxDepth = config.DefaultMaxEmbedDepth
	}

	if findEmbedded(t, want, maxDepth) {
		return nil
	}
	return ErrReflectNotEmbedded
}

// findEmbedded walks embedded struct fields depth-first.
func findEmbedded(t, want reflect.Type, depth int) bool {
	if depth <= 0 {
		return false
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.Anonymous {
			continue
		}
		if f.Type == want {
			return true
		}
		if f.Type.Kind() == reflect.Struct && findEmbedded(f.Type, want, depth-1) {
			return true
		}
	}
	return false
}
