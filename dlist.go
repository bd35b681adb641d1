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
	"encoding/binary"
	"io"
)

// DlistEncoder encodes and decodes a count-prefixed sequence of
// sub-payloads, each produced by an owned inner Template. The inner
// Template's own template-id byte is part of each element's wire bytes:
// encode delegates to the inner Template's EncodeTo (not its raw encoder),
// so a Dlist element is indistinguishable on the wire from a standalone
// payload of that inner template.
type DlistEncoder struct {
	id         TemplateId
	countWidth int
	maxItems   int
	inner      *Template
}

var _ encoder = &DlistEncoder{}

// NewDlist dispatches id to its (countWidth, maxItems) pair and stores the
// owned inner template. inner must not be nil.
func NewDlist(id TemplateId, inner *Template) (*DlistEncoder, error) {
	bounds, ok := dynamicPrefixWidths[id]
	if !ok || !id.IsDlist() {
		return nil, ErrDlistNewInvalidTemplateId
	}
	return &DlistEncoder{id: id, countWidth: bounds.width, maxItems: bounds.max, inner: inner}, nil
}

func (e *DlistEncoder) TemplateId() TemplateId {
	return e.id
}

func (e *DlistEncoder) CountWidth() int {
	return e.countWidth
}

func (e *DlistEncoder) MaxItems() int {
	return e.maxItems
}

func (e *DlistEncoder) Inner() *Template {
	return e.inner
}

// EncodeTo writes |S| as a truncated little-endian count prefix, then each
// element of S in order via the inner template's own EncodeTo (id byte
// included), aborting and propagating on the first inner failure.
func (e *DlistEncoder) EncodeTo(nest Nest, w io.Writer) (int, error) {
	if !nest.IsNests() {
		return 0, ErrDlistEncodeUnsupportedKind
	}
	items := nest.Nests()
	if len(items) > e.maxItems {
		return 0, dlistEncodeTooManyItems(len(items), e.maxItems)
	}

	var full [4]byte
	binary.LittleEndian.PutUint32(full[:], uint32(len(items)))
	n, err := w.Write(full[:e.countWidth])
	if err != nil {
		return n, err
	}

	for _, item := range items {
		m, err := e.inner.EncodeTo(item, w)
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// DecodeWithRemainder reads the count prefix, then repeatedly invokes the
// inner template's DecodeWithRemainder that many times, threading the
// remainder through each call.
func (e *DlistEncoder) DecodeWithRemainder(in []byte) (Nest, []byte, error) {
	if len(in) < e.countWidth {
		return Nest{}, nil, dlistDecodeInsufficientPrefix(len(in), e.countWidth)
	}
	count := readLengthPrefix(in, e.countWidth)
	rest := in[e.countWidth:]

	// count comes straight off the wire and is not yet validated against
	// anything; every element consumes at least one byte of rest, so
	// preallocating more capacity than rest has bytes would let a short
	// malicious prefix (e.g. 0xFFFFFFFF) force a huge allocation before a
	// single byte of actual payload has been checked.
	capHint := count
	if capHint > len(rest) {
		capHint = len(rest)
	}
	items := make([]Nest, 0, capHint)
	for i := 0; i < count; i++ {
		item, remainder, err := e.inner.DecodeWithRemainder(rest)
		if err != nil {
			return Nest{}, nil, err
		}
		items = append(items, item)
		rest = remainder
	}
	return NewNests(items), rest, nil
}

// ExportSchemaTo writes the inner template's full schema (its id byte
// followed by its own schema payload), recursively.
func (e *DlistEncoder) ExportSchemaTo(w io.Writer) error {
	return e.inner.ExportSchemaTo(w)
}

func dlistFromSchema(id TemplateId, in []byte) (*DlistEncoder, []byte, error) {
	inner, rest, err := fromSchemaWithRemainder(in)
	if err != nil {
		return nil, nil, err
	}
	enc, err := NewDlist(id, inner)
	if err != nil {
		return nil, nil, err
	}
	return enc, rest, nil
}
