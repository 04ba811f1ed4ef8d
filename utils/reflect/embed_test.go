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

package reflect_test

import (
	"errors"
	"reflect"
	"testing"

	"dirpx.dev/trax/config"
	uref "dirpx.dev/trax/utils/reflect"
)

// Cell stands in for the identity cell in these tests.
type Cell struct{ n int }

type Direct struct {
	Cell
	X int
}

type mid struct {
	Cell
}

type Nested struct {
	mid
	X int
}

type deep3 struct{ mid }
type deep4 struct{ deep3 }
type deep5 struct{ deep4 }

// TooDeep buries the cell below the default depth of 4.
type TooDeep struct {
	deep5
}

type ByPointer struct {
	*Cell
}

type NamedField struct {
	C Cell // not embedded: a named field does not count
}

type NoCell struct {
	X int
}

func TestFindEmbedded(t *testing.T) {
	cfg := config.DefaultConfig()
	want := reflect.TypeOf(Cell{})

	if err := uref.FindEmbedded(reflect.TypeOf(Direct{}), want, cfg); err != nil {
		t.Fatalf("Direct: unexpected error: %v", err)
	}
	// Pointer types unwrap to their element first.
	if err := uref.FindEmbedded(reflect.TypeOf(&Direct{}), want, cfg); err != nil {
		t.Fatalf("*Direct: unexpected error: %v", err)
	}
	if err := uref.FindEmbedded(reflect.TypeOf(Nested{}), want, cfg); err != nil {
		t.Fatalf("Nested: unexpected error: %v", err)
	}

	if err := uref.FindEmbedded(reflect.TypeOf(ByPointer{}), want, cfg); !errors.Is(err, uref.ErrReflectNotEmbedded) {
		t.Fatalf("ByPointer: err = %v, want ErrReflectNotEmbedded", err)
	}
	if err := uref.FindEmbedded(reflect.TypeOf(NamedField{}), want, cfg); !errors.Is(err, uref.ErrReflectNotEmbedded) {
		t.Fatalf("NamedField: err = %v, want ErrReflectNotEmbedded", err)
	}
	if err := uref.FindEmbedded(reflect.TypeOf(NoCell{}), want, cfg); !errors.Is(err, uref.ErrReflectNotEmbedded) {
		t.Fatalf("NoCell: err = %v, want ErrReflectNotEmbedded", err)
	}
}

func TestFindEmbedded_DepthGuard(t *testing.T) {
	want := reflect.TypeOf(Cell{})

	// Below default depth: not found.
	cfg := config.DefaultConfig()
	if err := uref.FindEmbedded(reflect.TypeOf(TooDeep{}), want, cfg); !errors.Is(err, uref.ErrReflectNotEmbedded) {
		t.Fatalf("TooDeep at depth %d: err = %v, want ErrReflectNotEmbedded", cfg.MaxEmbedDepth, err)
	}

	// With enough depth it is found.
	deepCfg := config.NewConfig(config.WithMaxEmbedDepth(8))
	if err := uref.FindEmbedded(reflect.TypeOf(TooDeep{}), want, deepCfg); err != nil {
		t.Fatalf("TooDeep at depth 8: unexpected error: %v", err)
	}

	// Non-positive depth falls back to the default.
	zero := config.DefaultConfig()
	zero.MaxEmbedDepth = 0
	if err := uref.FindEmbedded(reflect.TypeOf(Nested{}), want, zero); err != nil {
		t.Fatalf("Nested with zero depth: unexpected error: %v", err)
	}
}

func TestFindEmbedded_Errors(t *testing.T) {
	cfg := config.DefaultConfig()
	want := reflect.TypeOf(Cell{})

	if err := uref.FindEmbedded(nil, want, cfg); !errors.Is(err, uref.ErrReflectNilType) {
		t.Fatalf("nil type: err = %v, want ErrReflectNilType", err)
	}
	if err := uref.FindEmbedded(reflect.TypeOf(Direct{}), nil, cfg); !errors.Is(err, uref.ErrReflectNilType) {
		t.Fatalf("nil want: err = %v, want ErrReflectNilType", err)
	}
	if err := uref.FindEmbedded(reflect.TypeOf(42), want, cfg); !errors.Is(err, uref.ErrReflectNotStruct) {
		t.Fatalf("int: err = %v, want ErrReflectNotStruct", err)
	}
}
