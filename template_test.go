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
	"errors"
	"testing"
)

func TestTemplateDecodeRejectsTrailingRemainder(t *testing.T) {
	tpl, err := NewFixedTemplate(FixedAlpha, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := tpl.Decode([]byte{0x00, 0x01, 0x02}); !errors.Is(err, ErrTemplateDecodeUnexpectedRemainder) {
		t.Errorf("expected unexpected-remainder error, got %v", err)
	}
}

func TestFromSchemaRejectsUnknownId(t *testing.T) {
	if _, err := FromSchema([]byte{200}); !errors.Is(err, ErrSchemaInvalidTemplateId) {
		t.Errorf("expected invalid-template-id error, got %v", err)
	}
}

func TestFromSchemaRejectsEmptyInput(t *testing.T) {
	if _, err := FromSchema(nil); !errors.Is(err, ErrSchemaInsufficientBytes) {
		t.Errorf("expected insufficient-bytes error, got %v", err)
	}
}

func TestFromSchemaRejectsTrailingRemainder(t *testing.T) {
	// FixedAlpha schema is 2 bytes (id, length-1); append a stray extra byte.
	if _, err := FromSchema([]byte{0, 0, 0xFF}); !errors.Is(err, ErrTemplateDecodeUnexpectedRemainder) {
		t.Errorf("expected unexpected-remainder error, got %v", err)
	}
}

type recordingObserver struct {
	encodeCalls, decodeCalls, schemaCalls int
	lastEncodeErr                         error
}

func (r *recordingObserver) OnEncode(id TemplateId, byteLen int, err error) {
	r.encodeCalls++
	r.lastEncodeErr = err
}
func (r *recordingObserver) OnDecode(id TemplateId, consumedLen int, err error) {
	r.decodeCalls++
}
func (r *recordingObserver) OnSchemaParse(id TemplateId, err error) {
	r.schemaCalls++
}

func TestTemplateObserverIsNotified(t *testing.T) {
	obs := &recordingObserver{}
	tpl, err := NewFixedTemplate(FixedAlpha, 1, WithObserver(obs))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := tpl.Encode(NewBytes([]byte{1})); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if obs.encodeCalls != 1 {
		t.Errorf("expected 1 encode notification, got %d", obs.encodeCalls)
	}

	if _, err := tpl.Decode([]byte{0, 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if obs.decodeCalls != 1 {
		t.Errorf("expected 1 decode notification, got %d", obs.decodeCalls)
	}

	if _, err := FromSchema([]byte{0, 0}, WithObserver(obs)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if obs.schemaCalls != 1 {
		t.Errorf("expected 1 schema notification, got %d", obs.schemaCalls)
	}

	if _, err := FromSchema([]byte{200}, WithObserver(obs)); err == nil {
		t.Fatalf("expected error for invalid id")
	}
	if obs.schemaCalls != 2 {
		t.Errorf("expected schema notification even on failure, got %d", obs.schemaCalls)
	}
}

func TestEncodeToPreservesPartialPrefixOnFailure(t *testing.T) {
	inner, _ := NewFixedTemplate(FixedAlpha, 2)
	outer, _ := NewDlistTemplate(DlistAlpha, inner)

	var buf bytes.Buffer
	nest := NewNests([]Nest{NewBytes([]byte{1})}) // wrong length, fails mid-list
	if _, err := outer.EncodeTo(nest, &buf); err == nil {
		t.Fatalf("expected error")
	}
	// per spec.md §4.6/§7, a failed EncodeTo may have appended a partial
	// prefix: here the outer id byte and the count prefix are written
	// before the inner encoder fails.
	if buf.Len() == 0 {
		t.Errorf("expected a partial prefix to have been written despite the failure")
	}
}
