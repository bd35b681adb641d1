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

import "io"

// encoder is the variant-specific logic a Template wraps. The set of
// implementations is closed: FixedEncoder, DynamicEncoder, DlistEncoder.
// Template holds its encoder through this interface and dispatches
// EncodeTo/DecodeWithRemainder/ExportSchemaTo through it without type
// assertions; only schema parsing switches on TemplateId, to pick the
// variant's parser.
type encoder interface {
	TemplateId() TemplateId
	EncodeTo(nest Nest, w io.Writer) (int, error)
	DecodeWithRemainder(in []byte) (Nest, []byte, error)
	ExportSchemaTo(w io.Writer) error
}
