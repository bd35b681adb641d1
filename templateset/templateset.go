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

// Package templateset lets a caller describe a tree of codec.Template
// values declaratively in YAML instead of assembling schema bytes by
// hand, which is convenient for test fixtures and documentation examples.
package templateset

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/abartolomey/nestcodec"
)

// Spec is the declarative description of a single Template. Kind selects
// which codec constructor to use; Length is required for "fixed" and
// ignored otherwise; Inner is required for "dlist" and ignored otherwise.
type Spec struct {
	Kind   string `yaml:"kind"`
	Id     uint8  `yaml:"id"`
	Length int    `yaml:"length,omitempty"`
	Inner  *Spec  `yaml:"inner,omitempty"`
}

const (
	KindFixed   = "fixed"
	KindDynamic = "dynamic"
	KindDlist   = "dlist"
)

// Build constructs a live *codec.Template from a Spec tree, recursing into
// Inner for "dlist" specs.
func Build(s *Spec) (*codec.Template, error) {
	if s == nil {
		return nil, fmt.Errorf("templateset: nil spec")
	}
	id := codec.TemplateId(s.Id)
	switch s.Kind {
	case KindFixed:
		return codec.NewFixedTemplate(id, s.Length)
	case KindDynamic:
		return codec.NewDynamicTemplate(id)
	case KindDlist:
		inner, err := Build(s.Inner)
		if err != nil {
			return nil, fmt.Errorf("templateset: building inner of dlist %d: %w", s.Id, err)
		}
		return codec.NewDlistTemplate(id, inner)
	default:
		return nil, fmt.Errorf("templateset: unknown kind %q", s.Kind)
	}
}

// Describe walks a live Template and produces the Spec that would rebuild
// an equivalent one via Build, the inverse of Build for documentation and
// round-trip tests.
func Describe(t *codec.Template) (*Spec, error) {
	id := t.Id()
	switch {
	case id.IsFixed():
		fe, ok := t.Encoder().(*codec.FixedEncoder)
		if !ok {
			return nil, fmt.Errorf("templateset: template id %d claims Fixed but encoder is %T", id, t.Encoder())
		}
		return &Spec{Kind: KindFixed, Id: uint8(id), Length: fe.Length()}, nil
	case id.IsDynamic():
		return &Spec{Kind: KindDynamic, Id: uint8(id)}, nil
	case id.IsDlist():
		dle, ok := t.Encoder().(*codec.DlistEncoder)
		if !ok {
			return nil, fmt.Errorf("templateset: template id %d claims Dlist but encoder is %T", id, t.Encoder())
		}
		inner, err := Describe(dle.Inner())
		if err != nil {
			return nil, err
		}
		return &Spec{Kind: KindDlist, Id: uint8(id), Inner: inner}, nil
	default:
		return nil, fmt.Errorf("templateset: unrecognized template id %d", id)
	}
}

// ReadYAML decodes a Spec tree from r and builds the Template it
// describes. Unknown fields are rejected the same way the teacher
// package's information-element registry loader rejects them.
func ReadYAML(r io.Reader) (*codec.Template, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Spec
	if err := dec.Decode(&s); err != nil {
		return nil, err
	}
	return Build(&s)
}

// MustReadYAML is ReadYAML but panics on error, for use in test fixtures
// and init-time wiring where a malformed spec is a programmer error.
func MustReadYAML(r io.Reader) *codec.Template {
	t, err := ReadYAML(r)
	if err != nil {
		panic(err)
	}
	return t
}

// WriteYAML describes t and encodes the resulting Spec tree to w with a
// 2-space indent, matching the teacher package's registry dump format.
func WriteYAML(w io.Writer, t *codec.Template) error {
	s, err := Describe(t)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(s)
}
