/*
Copyright 2023 Alexander Bartolomey (github@alexanderbartolomey.de)

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

package codec

import "testing"

func TestNestEqualBytes(t *testing.T) {
	a := NewBytes([]byte{1, 2, 3, 4})
	b := NewBytes([]byte{1, 2, 3, 4})
	if !a.Equal(b) {
		t.Errorf("expected equal bytes nests to be equal")
	}
}

func TestNestUnequalBytes(t *testing.T) {
	a := NewBytes([]byte{1, 2, 3, 4})
	b := NewBytes([]byte{4, 3, 2, 1})
	if a.Equal(b) {
		t.Errorf("expected unequal bytes nests to be unequal")
	}
}

func TestNestEqualNests(t *testing.T) {
	a := NewNests([]Nest{
		NewBytes([]byte{1, 2, 3, 4}),
		NewNests([]Nest{NewBytes([]byte{5, 6}), NewBytes([]byte{7, 8})}),
	})
	b := NewNests([]Nest{
		NewBytes([]byte{1, 2, 3, 4}),
		NewNests([]Nest{NewBytes([]byte{5, 6}), NewBytes([]byte{7, 8})}),
	})
	if !a.Equal(b) {
		t.Errorf("expected equal nests to be equal")
	}
}

func TestNestUnequalNests(t *testing.T) {
	a := NewNests([]Nest{
		NewBytes([]byte{1, 2, 3, 4}),
		NewNests([]Nest{NewBytes([]byte{5, 6}), NewBytes([]byte{7, 8})}),
	})
	b := NewNests([]Nest{
		NewBytes([]byte{1, 2, 3, 4}),
		NewNests([]Nest{NewBytes([]byte{5, 6}), NewBytes([]byte{7, 9})}),
	})
	if a.Equal(b) {
		t.Errorf("expected unequal nests to be unequal")
	}
}

func TestNestBytesNeverEqualsNests(t *testing.T) {
	a := NewBytes([]byte{1, 2, 3, 4})
	b := NewNests([]Nest{NewBytes([]byte{1, 2, 3, 4})})
	if a.Equal(b) || b.Equal(a) {
		t.Errorf("a Bytes nest must never equal a Nests nest")
	}
}

func TestNestEmptySequencesEqual(t *testing.T) {
	a := NewNests(nil)
	b := NewNests([]Nest{})
	if !a.Equal(b) {
		t.Errorf("expected two empty Nests sequences to be equal")
	}
}
