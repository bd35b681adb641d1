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

/*
Package codec implements a small, self-describing binary codec for
structured byte payloads.

# Overview

A Template wraps exactly one of three encoder kinds - Fixed, Dynamic, or
Dlist - and knows how to encode a Nest value to bytes, decode bytes back
into a Nest (returning any unconsumed remainder), and export/import its own
schema bytes so that a decoder holding only the schema can reconstruct the
exact Template that produced a payload.

# Template Kinds

Fixed encodes a payload of a compile-time-declared exact length. Dynamic
encodes a length-prefixed variable-length payload, with the prefix width
(1-4 bytes) fixed by the chosen TemplateId. Dlist encodes a count-prefixed
sequence of sub-payloads, each produced by an owned inner Template,
allowing templates to nest arbitrarily deep.

# Wire Format

All multi-byte integers are little-endian. Every payload begins with a
single template-id byte, followed by the body the corresponding encoder
produces. Schema bytes follow the same id-byte-first convention, followed
by whatever additional bytes that encoder's variant needs to reconstruct
itself (nothing for Dynamic, a length field for Fixed, a recursive schema
for Dlist).

# Zero-Copy Decoding

Decoded Bytes nests borrow their backing array from the input buffer
passed to Decode; callers must keep that buffer alive for as long as the
returned Nest is used. Encode always returns or appends freshly owned
bytes.
*/
package codec
