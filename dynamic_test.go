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

func TestDynamicNewRejectsInvalidId(t *testing.T) {
	if _, err := NewDynamic(FixedAlpha); !errors.Is(err, ErrDynamicNewInvalidTemplateId) {
		t.Fatalf("expected ErrDynamicNewInvalidTemplateId, got %v", err)
	}
}

// Boundary scenario 3 from spec.md §8: Dynamic-α, empty payload.
func TestDynamicAlphaEmptyPayloadScenario(t *testing.T) {
	tpl, err := NewDynamicTemplate(DynamicAlpha)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	encoded, err := tpl.Encode(NewBytes(nil))
	if err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}
	if !bytes.Equal(encoded, []byte{0x02, 0x00}) {
		t.Errorf("expected [0x02 0x00], got %x", encoded)
	}

	decoded, err := tpl.Decode([]byte{0x02, 0x00})
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if !decoded.Equal(NewBytes(nil)) {
		t.Errorf("expected empty Bytes, got %v", decoded)
	}

	tooBig := bytes.Repeat([]byte{0x01}, 256)
	if _, err := tpl.Encode(NewBytes(tooBig)); !errors.Is(err, ErrDynamicEncodePayloadTooLarge) {
		t.Errorf("expected payload-too-large error, got %v", err)
	}
}

// Boundary scenario 4 from spec.md §8: Dynamic-β, 256-byte payload.
func TestDynamicBeta256BytePayloadScenario(t *testing.T) {
	tpl, err := NewDynamicTemplate(DynamicBeta)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	payload := bytes.Repeat([]byte{0x01}, 256)

	encoded, err := tpl.Encode(NewBytes(payload))
	if err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}
	want := append([]byte{0x03, 0x00, 0x01}, payload...)
	if !bytes.Equal(encoded, want) {
		t.Errorf("mismatch: got %x", encoded)
	}
}

// Boundary scenario 5 from spec.md §8: Dynamic-γ, 65536-byte payload.
func TestDynamicGamma65536BytePayloadScenario(t *testing.T) {
	de, err := NewDynamic(DynamicGamma)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	payload := bytes.Repeat([]byte{0x01}, 65536)

	var buf bytes.Buffer
	if _, err := de.EncodeTo(NewBytes(payload), &buf); err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}
	got := buf.Bytes()
	if !bytes.Equal(got[:3], []byte{0x00, 0x00, 0x01}) {
		t.Errorf("expected prefix [0x00 0x00 0x01], got %x", got[:3])
	}
	if !bytes.Equal(got[3:], payload) {
		t.Errorf("payload did not round-trip")
	}
}

func TestDynamicMaxPayloadBeta(t *testing.T) {
	de, err := NewDynamic(DynamicBeta)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if de.MaxPayload() != 65535 {
		t.Errorf("expected DynamicBeta max payload 65535 per spec.md §9 open question 2, got %d", de.MaxPayload())
	}
}

func TestDynamicDecodeInsufficientPrefix(t *testing.T) {
	de, _ := NewDynamic(DynamicBeta)
	if _, _, err := de.DecodeWithRemainder([]byte{0x01}); !errors.Is(err, ErrDynamicDecodeInsufficientPre) {
		t.Errorf("expected insufficient-prefix error, got %v", err)
	}
}

func TestDynamicDecodeInsufficientPayload(t *testing.T) {
	de, _ := NewDynamic(DynamicAlpha)
	// prefix says 5 bytes of payload, only 2 are present
	if _, _, err := de.DecodeWithRemainder([]byte{0x05, 0x01, 0x02}); !errors.Is(err, ErrDynamicDecodeInsufficientPay) {
		t.Errorf("expected insufficient-payload error, got %v", err)
	}
}

func TestDynamicDecodeExactBoundary(t *testing.T) {
	de, _ := NewDynamic(DynamicAlpha)

	// buffer length == prefix-width - 1 -> insufficient prefix
	if _, _, err := de.DecodeWithRemainder(nil); !errors.Is(err, ErrDynamicDecodeInsufficientPre) {
		t.Errorf("expected insufficient-prefix at 0 bytes, got %v", err)
	}

	// buffer length == prefix-width + declared-length - 1 -> insufficient payload
	if _, _, err := de.DecodeWithRemainder([]byte{0x02, 0xAA}); !errors.Is(err, ErrDynamicDecodeInsufficientPay) {
		t.Errorf("expected insufficient-payload, got %v", err)
	}

	// exact length present -> success with empty remainder
	nest, rest, err := de.DecodeWithRemainder([]byte{0x02, 0xAA, 0xBB})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !nest.Equal(NewBytes([]byte{0xAA, 0xBB})) {
		t.Errorf("unexpected decode result: %v", nest)
	}
	if len(rest) != 0 {
		t.Errorf("expected empty remainder, got %x", rest)
	}
}

func TestDynamicSchemaIsJustTheIdByte(t *testing.T) {
	tpl, err := NewDynamicTemplate(DynamicGamma)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	schema := tpl.ExportSchema()
	if !bytes.Equal(schema, []byte{byte(DynamicGamma)}) {
		t.Errorf("expected schema to be exactly the id byte, got %x", schema)
	}

	reconstructed, err := FromSchema(schema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reconstructed.Id() != DynamicGamma {
		t.Errorf("expected reconstructed id DynamicGamma, got %v", reconstructed.Id())
	}
}
