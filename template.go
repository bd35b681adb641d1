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
	"io"
)

// Template is the uniform façade over any of the three encoder variants.
// It owns its encoder exclusively; nothing else aliases it. A Template is
// immutable once constructed and is safe to share across goroutines for
// read-only use (Encode, Decode, ExportSchema).
type Template struct {
	enc      encoder
	observer Observer
}

// TemplateOption configures a Template at construction time.
type TemplateOption func(*Template)

// WithObserver attaches an Observer that is notified after every Encode/
// EncodeTo and Decode/DecodeWithRemainder call on this Template. Passed to
// FromSchema/FromSchemaWithRemainder, it is also notified of the top-level
// schema parse. ExportSchema/ExportSchemaTo do not notify it. A nil o
// leaves the NoopObserver in place.
func WithObserver(o Observer) TemplateOption {
	return func(t *Template) {
		if o == nil {
			o = NoopObserver{}
		}
		t.observer = o
	}
}

func newTemplate(enc encoder, opts ...TemplateOption) *Template {
	t := &Template{enc: enc, observer: NoopObserver{}}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewFixedTemplate constructs a Template wrapping a Fixed encoder.
func NewFixedTemplate(id TemplateId, length int, opts ...TemplateOption) (*Template, error) {
	enc, err := NewFixed(id, length)
	if err != nil {
		return nil, err
	}
	return newTemplate(enc, opts...), nil
}

// NewDynamicTemplate constructs a Template wrapping a Dynamic encoder.
func NewDynamicTemplate(id TemplateId, opts ...TemplateOption) (*Template, error) {
	enc, err := NewDynamic(id)
	if err != nil {
		return nil, err
	}
	return newTemplate(enc, opts...), nil
}

// NewDlistTemplate constructs a Template wrapping a Dlist encoder around
// the given inner Template.
func NewDlistTemplate(id TemplateId, inner *Template, opts ...TemplateOption) (*Template, error) {
	enc, err := NewDlist(id, inner)
	if err != nil {
		return nil, err
	}
	return newTemplate(enc, opts...), nil
}

// Id returns the template-id byte this Template frames its payloads with.
func (t *Template) Id() TemplateId {
	return t.enc.TemplateId()
}

// Encoder returns the concrete encoder this Template wraps. Callers that
// need variant-specific fields (Fixed's Length, Dynamic's MaxPayload,
// Dlist's Inner) should type-switch on the result.
func (t *Template) Encoder() encoder {
	return t.enc
}

// Encode prepends the template-id byte, delegates to the encoder, and
// returns a freshly allocated byte buffer.
func (t *Template) Encode(nest Nest) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := t.EncodeTo(nest, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeTo writes the template-id byte and the encoded body to w. On
// failure w may already contain a partial prefix; callers requiring
// transactional behavior should snapshot w's length beforehand and
// truncate on error.
func (t *Template) EncodeTo(nest Nest, w io.Writer) (int, error) {
	id := t.enc.TemplateId()
	n, err := w.Write([]byte{byte(id)})
	if err != nil {
		t.observer.OnEncode(id, n, err)
		return n, err
	}
	m, err := t.enc.EncodeTo(nest, w)
	total := n + m
	t.observer.OnEncode(id, total, err)
	Log.V(1).Info("encoded nest", "template_id", id, "byte_len", total, "error", err)
	return total, err
}

// Decode calls DecodeWithRemainder and fails with
// ErrTemplateDecodeUnexpectedRemainder if any bytes of in are left
// unconsumed.
func (t *Template) Decode(in []byte) (Nest, error) {
	nest, rest, err := t.DecodeWithRemainder(in)
	if err != nil {
		return Nest{}, err
	}
	if len(rest) > 0 {
		return Nest{}, ErrTemplateDecodeUnexpectedRemainder
	}
	return nest, nil
}

// DecodeWithRemainder reads the leading template-id byte that EncodeTo
// writes, fails with ErrSchemaInvalidTemplateId if it is not this
// Template's id, and delegates the bytes after it to the encoder. An empty
// in is handed to the encoder, which reports its own insufficient-bytes
// error. The returned Nest borrows from in; in must outlive the returned
// Nest.
func (t *Template) DecodeWithRemainder(in []byte) (Nest, []byte, error) {
	id := t.enc.TemplateId()
	var nest Nest
	var rest []byte
	var err error
	switch {
	case len(in) == 0:
		nest, rest, err = t.enc.DecodeWithRemainder(in)
	case TemplateId(in[0]) != id:
		err = fmt.Errorf("%w: payload id %d, template id %d", ErrSchemaInvalidTemplateId, in[0], id)
	default:
		nest, rest, err = t.enc.DecodeWithRemainder(in[1:])
	}
	consumed := len(in) - len(rest)
	t.observer.OnDecode(id, consumed, err)
	Log.V(1).Info("decoded nest", "template_id", id, "byte_len", consumed, "error", err)
	return nest, rest, err
}

// ExportSchema writes the template-id byte followed by the encoder's
// schema-specific bytes into a freshly allocated buffer.
func (t *Template) ExportSchema() []byte {
	var buf bytes.Buffer
	_ = t.ExportSchemaTo(&buf)
	return buf.Bytes()
}

// ExportSchemaTo writes this Template's schema bytes to w.
func (t *Template) ExportSchemaTo(w io.Writer) error {
	id := t.enc.TemplateId()
	if _, err := w.Write([]byte{byte(id)}); err != nil {
		return err
	}
	return t.enc.ExportSchemaTo(w)
}

// FromSchema reconstructs a Template from schema bytes, failing if any
// bytes remain unconsumed.
func FromSchema(schema []byte, opts ...TemplateOption) (*Template, error) {
	t, rest, err := FromSchemaWithRemainder(schema, opts...)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, ErrTemplateDecodeUnexpectedRemainder
	}
	return t, nil
}

// FromSchemaWithRemainder reads the id byte, dispatches to the matching
// encoder's schema parser, and reassembles the Template, recursing into
// the inner template for Dlist ids.
func FromSchemaWithRemainder(schema []byte, opts ...TemplateOption) (*Template, []byte, error) {
	return fromSchemaWithRemainderAndOpts(schema, opts)
}

func fromSchemaWithRemainder(schema []byte) (*Template, []byte, error) {
	return fromSchemaWithRemainderAndOpts(schema, nil)
}

func fromSchemaWithRemainderAndOpts(schema []byte, opts []TemplateOption) (*Template, []byte, error) {
	obs := resolveObserver(opts)

	if len(schema) < 1 {
		obs.OnSchemaParse(0, ErrSchemaInsufficientBytes)
		return nil, nil, ErrSchemaInsufficientBytes
	}
	id := TemplateId(schema[0])
	rest := schema[1:]

	var t *Template
	var err error

	switch {
	case id.IsFixed():
		var fe *FixedEncoder
		fe, rest, err = fixedFromSchema(id, rest)
		if err == nil {
			t = newTemplate(fe, opts...)
		}
	case id.IsDynamic():
		var de *DynamicEncoder
		de, rest, err = dynamicFromSchema(id, rest)
		if err == nil {
			t = newTemplate(de, opts...)
		}
	case id.IsDlist():
		var dle *DlistEncoder
		dle, rest, err = dlistFromSchema(id, rest)
		if err == nil {
			t = newTemplate(dle, opts...)
		}
	default:
		err = schemaInvalidTemplateId(schema[0])
	}

	obs.OnSchemaParse(id, err)
	if err != nil {
		return nil, nil, err
	}
	return t, rest, nil
}

// resolveObserver applies opts to a throwaway Template and returns the
// Observer they configured, so schema parsing can notify an Observer even
// on the failure path, before a real Template exists to own one.
func resolveObserver(opts []TemplateOption) Observer {
	t := &Template{observer: NoopObserver{}}
	for _, opt := range opts {
		opt(t)
	}
	return t.observer
}
