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

// FixedEncoder encodes and decodes a payload of a compile-time-declared
// exact length. Fixed-α covers lengths 1..=256, Fixed-β covers lengths
// 257..=65792; the wider range is expressed by widening the schema's
// length field from 1 to 2 bytes, not by adding more TemplateIds.
type FixedEncoder struct {
	id     TemplateId
	length int
}

var _ encoder = &FixedEncoder{}

// NewFixed validates (id, length) against the Fixed-α/Fixed-β bounds and
// constructs a FixedEncoder.
func NewFixed(id TemplateId, length int) (*FixedEncoder, error) {
	switch id {
	case FixedAlpha:
		if length < 1 {
			return nil, fixedAlphaLengthTooSmall(length)
		}
		if length > 256 {
			return nil, fixedAlphaLengthTooBig(length)
		}
	case FixedBeta:
		if length < 257 {
			return nil, fixedBetaLengthTooSmall(length)
		}
		if length > 65792 {
			return nil, fixedBetaLengthTooBig(length)
		}
	default:
		return nil, ErrFixedNewInvalidTemplateId
	}
	return &FixedEncoder{id: id, length: length}, nil
}

func (e *FixedEncoder) TemplateId() TemplateId {
	return e.id
}

func (e *FixedEncoder) Length() int {
	return e.length
}

// EncodeTo appends the payload verbatim to w. nest must be a Bytes nest of
// exactly e.length bytes.
func (e *FixedEncoder) EncodeTo(nest Nest, w io.Writer) (int, error) {
	if !nest.IsBytes() {
		return 0, ErrFixedEncodeUnsupportedKind
	}
	b := nest.Bytes()
	if len(b) != e.length {
		return 0, fixedEncodeLengthMismatch(len(b), e.length)
	}
	return w.Write(b)
}

// DecodeWithRemainder returns a Bytes nest borrowing the first e.length
// bytes of in, plus the unconsumed tail.
func (e *FixedEncoder) DecodeWithRemainder(in []byte) (Nest, []byte, error) {
	if len(in) < e.length {
		return Nest{}, nil, fixedDecodeInsufficient(len(in), e.length)
	}
	return NewBytes(in[:e.length]), in[e.length:], nil
}

// ExportSchemaTo appends this encoder's schema payload (everything after
// the template-id byte) to w.
func (e *FixedEncoder) ExportSchemaTo(w io.Writer) error {
	switch e.id {
	case FixedAlpha:
		_, err := w.Write([]byte{byte(e.length - 1)})
		return err
	case FixedBeta:
		var b [2]byte
		binary.LittleEndian.PutUint16(b[:], uint16(e.length-257))
		_, err := w.Write(b[:])
		return err
	default:
		return ErrFixedNewInvalidTemplateId
	}
}

// fixedFromSchema parses a Fixed schema payload (the bytes following the
// id byte, already known to be id) and returns the constructed encoder
// plus the unconsumed remainder.
func fixedFromSchema(id TemplateId, in []byte) (*FixedEncoder, []byte, error) {
	switch id {
	case FixedAlpha:
		if len(in) < 1 {
			return nil, nil, ErrSchemaFixedAlphaInsufficient
		}
		length := int(in[0]) + 1
		enc, err := NewFixed(id, length)
		if err != nil {
			return nil, nil, err
		}
		return enc, in[1:], nil
	case FixedBeta:
		if len(in) < 2 {
			return nil, nil, ErrSchemaFixedBetaInsufficient
		}
		length := int(binary.LittleEndian.Uint16(in[:2])) + 257
		enc, err := NewFixed(id, length)
		if err != nil {
			return nil, nil, err
		}
		return enc, in[2:], nil
	default:
		return nil, nil, ErrFixedNewInvalidTemplateId
	}
}
