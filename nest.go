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

import (
	"bytes"
	"fmt"
	"strings"
)

// NestKind discriminates the two shapes a Nest can take.
type NestKind int

const (
	KindBytes NestKind = iota
	KindNests
)

// Nest is the in-memory value the codec operates over: either a leaf of
// raw bytes, or an ordered sequence of nested values. A Nest is immutable
// once constructed; the codec never mutates one in place.
type Nest struct {
	kind  NestKind
	bytes []byte
	nests []Nest
}

// NewBytes wraps a byte slice as a leaf Nest. The slice is stored as-is,
// not copied; callers that decode a Nest from a buffer they intend to
// reuse must copy it themselves.
func NewBytes(b []byte) Nest {
	return Nest{kind: KindBytes, bytes: b}
}

// NewNests wraps an ordered sequence of Nest values as a composite Nest.
func NewNests(nests []Nest) Nest {
	return Nest{kind: KindNests, nests: nests}
}

func (n Nest) Kind() NestKind {
	return n.kind
}

func (n Nest) IsBytes() bool {
	return n.kind == KindBytes
}

func (n Nest) IsNests() bool {
	return n.kind == KindNests
}

// Bytes returns the leaf byte slice. It panics if the Nest is not a Bytes
// nest; callers should check Kind/IsBytes first when the shape is not
// already known from context.
func (n Nest) Bytes() []byte {
	if n.kind != KindBytes {
		panic(fmt.Sprintf("codec: Bytes called on a %v nest", n.kind))
	}
	return n.bytes
}

// Nests returns the element sequence. It panics if the Nest is not a
// Nests nest.
func (n Nest) Nests() []Nest {
	if n.kind != KindNests {
		panic(fmt.Sprintf("codec: Nests called on a %v nest", n.kind))
	}
	return n.nests
}

// Equal reports whether two Nests are structurally and recursively equal:
// two Bytes nests are equal iff their byte sequences match element-wise,
// two Nests nests are equal iff they have equal length and equal elements
// in order, and a Bytes nest is never equal to a Nests nest.
func (n Nest) Equal(other Nest) bool {
	if n.kind != other.kind {
		return false
	}
	switch n.kind {
	case KindBytes:
		return bytes.Equal(n.bytes, other.bytes)
	case KindNests:
		if len(n.nests) != len(other.nests) {
			return false
		}
		for i := range n.nests {
			if !n.nests[i].Equal(other.nests[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func (n Nest) String() string {
	switch n.kind {
	case KindBytes:
		return fmt.Sprintf("Bytes(%x)", n.bytes)
	case KindNests:
		parts := make([]string, len(n.nests))
		for i, e := range n.nests {
			parts[i] = e.String()
		}
		return fmt.Sprintf("Nests(%s)", strings.Join(parts, ", "))
	default:
		return "<invalid nest>"
	}
}

func (k NestKind) String() string {
	switch k {
	case KindBytes:
		return "Bytes"
	case KindNests:
		return "Nests"
	default:
		return "unknown"
	}
}
