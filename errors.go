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
	"errors"
	"fmt"
)

// Sentinel errors for every failure kind the codec can produce. Use
// errors.Is against these to classify a failure; the wrapper functions
// below attach the offending values for diagnostics.
var (
	ErrFixedNewInvalidTemplateId  = errors.New("fixed: invalid template id")
	ErrFixedAlphaLengthTooSmall   = errors.New("fixed: alpha length too small")
	ErrFixedAlphaLengthTooBig     = errors.New("fixed: alpha length too big")
	ErrFixedBetaLengthTooSmall    = errors.New("fixed: beta length too small")
	ErrFixedBetaLengthTooBig      = errors.New("fixed: beta length too big")
	ErrFixedEncodeLengthMismatch  = errors.New("fixed: encode bytes length mismatch")
	ErrFixedEncodeUnsupportedKind = errors.New("fixed: encode requires a Bytes nest")
	ErrFixedDecodeInsufficient    = errors.New("fixed: insufficient bytes to decode")

	ErrDynamicNewInvalidTemplateId  = errors.New("dynamic: invalid template id")
	ErrDynamicEncodePayloadTooLarge = errors.New("dynamic: payload too large")
	ErrDynamicEncodeUnsupportedKind = errors.New("dynamic: encode requires a Bytes nest")
	ErrDynamicDecodeInsufficientPre = errors.New("dynamic: insufficient bytes for length prefix")
	ErrDynamicDecodeInsufficientPay = errors.New("dynamic: insufficient bytes for payload")

	ErrDlistNewInvalidTemplateId  = errors.New("dlist: invalid template id")
	ErrDlistEncodeTooManyItems    = errors.New("dlist: too many items")
	ErrDlistEncodeUnsupportedKind = errors.New("dlist: encode requires a Nests nest")
	ErrDlistDecodeInsufficientPre = errors.New("dlist: insufficient bytes for count prefix")

	ErrTemplateDecodeUnexpectedRemainder = errors.New("template: unexpected trailing remainder")

	ErrSchemaInvalidTemplateId        = errors.New("schema: invalid template id byte")
	ErrSchemaInsufficientBytes        = errors.New("schema: insufficient bytes")
	ErrSchemaFixedAlphaInsufficient   = errors.New("schema: insufficient bytes for fixed-alpha length")
	ErrSchemaFixedBetaInsufficient    = errors.New("schema: insufficient bytes for fixed-beta length")
)

func fixedAlphaLengthTooSmall(length int) error {
	return fmt.Errorf("%w: %d", ErrFixedAlphaLengthTooSmall, length)
}

func fixedAlphaLengthTooBig(length int) error {
	return fmt.Errorf("%w: %d", ErrFixedAlphaLengthTooBig, length)
}

func fixedBetaLengthTooSmall(length int) error {
	return fmt.Errorf("%w: %d", ErrFixedBetaLengthTooSmall, length)
}

func fixedBetaLengthTooBig(length int) error {
	return fmt.Errorf("%w: %d", ErrFixedBetaLengthTooBig, length)
}

func fixedEncodeLengthMismatch(got, want int) error {
	return fmt.Errorf("%w: got %d want %d", ErrFixedEncodeLengthMismatch, got, want)
}

func fixedDecodeInsufficient(have, want int) error {
	return fmt.Errorf("%w: have %d want %d", ErrFixedDecodeInsufficient, have, want)
}

func dynamicEncodePayloadTooLarge(got, max int) error {
	return fmt.Errorf("%w: got %d max %d", ErrDynamicEncodePayloadTooLarge, got, max)
}

func dynamicDecodeInsufficientPrefix(have, want int) error {
	return fmt.Errorf("%w: have %d want %d", ErrDynamicDecodeInsufficientPre, have, want)
}

func dynamicDecodeInsufficientPayload(have, want int) error {
	return fmt.Errorf("%w: have %d want %d", ErrDynamicDecodeInsufficientPay, have, want)
}

func dlistEncodeTooManyItems(got, max int) error {
	return fmt.Errorf("%w: got %d max %d", ErrDlistEncodeTooManyItems, got, max)
}

func dlistDecodeInsufficientPrefix(have, want int) error {
	return fmt.Errorf("%w: have %d want %d", ErrDlistDecodeInsufficientPre, have, want)
}

func schemaInvalidTemplateId(id byte) error {
	return fmt.Errorf("%w: %d", ErrSchemaInvalidTemplateId, id)
}
