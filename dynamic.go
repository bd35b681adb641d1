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

// DynamicEncoder encodes and decodes a length-prefixed variable-length
// byte payload. The prefix width (1, 2, 3, or 4 bytes) and the maximum
// payload size it can therefore express are both fixed by the TemplateId.
type DynamicEncoder struct {
	id          TemplateId
	prefixWidth int
	maxPayload  int
}

var _ encoder = &DynamicEncoder{}

// NewDynamic dispatches id to its (prefixWidth, maxPayload) pair.
func NewDynamic(id TemplateId) (*DynamicEncoder, error) {
	bounds, ok := dynamicPrefixWidths[id]
	if !ok || !id.IsDynamic() {
		return nil, ErrDynamicNewInvalidTemplateId
	}
	return &DynamicEncoder{id: id, prefixWidth: bounds.width, maxPayload: bounds.max}, nil
}

func (e *DynamicEncoder) TemplateId() TemplateId {
	return e.id
}

func (e *DynamicEncoder) PrefixWidth() int {
	return e.prefixWidth
}

func (e *DynamicEncoder) MaxPayload() int {
	return e.maxPayload
}

// EncodeTo writes |B| as a truncated little-endian length prefix followed
// by B itself. nest must be a Bytes nest no longer than MaxPayload.
func (e *DynamicEncoder) EncodeTo(nest Nest, w io.Writer) (int, error) {
	if !nest.IsBytes() {
		return 0, ErrDynamicEncodeUnsupportedKind
	}
	b := nest.Bytes()
	if len(b) > e.maxPayload {
		return 0, dynamicEncodePayloadTooLarge(len(b), e.maxPayload)
	}
	var full [4]byte
	binary.LittleEndian.PutUint32(full[:], uint32(len(b)))

	n, err := w.Write(full[:e.prefixWidth])
	if err != nil {
		return n, err
	}
	m, err := w.Write(b)
	return n + m, err
}

// DecodeWithRemainder reads the length prefix, then returns a Bytes nest
// borrowing exactly that many bytes from in, plus the remainder.
func (e *DynamicEncoder) DecodeWithRemainder(in []byte) (Nest, []byte, error) {
	if len(in) < e.prefixWidth {
		return Nest{}, nil, dynamicDecodeInsufficientPrefix(len(in), e.prefixWidth)
	}
	length := readLengthPrefix(in, e.prefixWidth)
	if len(in) < e.prefixWidth+length {
		return Nest{}, nil, dynamicDecodeInsufficientPayload(len(in), e.prefixWidth+length)
	}
	p := e.prefixWidth
	return NewBytes(in[p : p+length]), in[p+length:], nil
}

// ExportSchemaTo writes nothing: a Dynamic schema is fully determined by
// the template-id byte the Template wrapper already wrote.
func (e *DynamicEncoder) ExportSchemaTo(w io.Writer) error {
	return nil
}

func dynamicFromSchema(id TemplateId, in []byte) (*DynamicEncoder, []byte, error) {
	enc, err := NewDynamic(id)
	if err != nil {
		return nil, nil, err
	}
	return enc, in, nil
}

// readLengthPrefix widens a little-endian prefix of the given width to an
// int, treating any bytes beyond the width as zero.
func readLengthPrefix(in []byte, width int) int {
	var full [4]byte
	copy(full[:width], in[:width])
	return int(binary.LittleEndian.Uint32(full[:]))
}
