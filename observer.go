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

// Observer receives notifications after Template operations complete,
// successfully or not. Implementations must not block or panic; they are
// called synchronously on the caller's goroutine. A nil Observer is valid
// and equivalent to NoopObserver.
type Observer interface {
	// OnEncode is called after Template.Encode/EncodeTo, with the number
	// of bytes appended to the sink; on failure, the bytes written before
	// the failure, together with the error.
	OnEncode(id TemplateId, byteLen int, err error)

	// OnDecode is called after Template.Decode/DecodeWithRemainder, with
	// the number of bytes consumed from the input on success.
	OnDecode(id TemplateId, consumedLen int, err error)

	// OnSchemaParse is called after Template.FromSchema/FromSchemaWithRemainder.
	OnSchemaParse(id TemplateId, err error)
}

// NoopObserver implements Observer by doing nothing. It is the default
// used by Template when no Observer is supplied.
type NoopObserver struct{}

func (NoopObserver) OnEncode(TemplateId, int, error)      {}
func (NoopObserver) OnDecode(TemplateId, int, error)      {}
func (NoopObserver) OnSchemaParse(TemplateId, error)      {}

var _ Observer = NoopObserver{}
