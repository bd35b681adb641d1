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

// TemplateId is the single-byte wire tag identifying an encoder variant.
// The numeric value is part of the wire format and must never be
// renumbered.
type TemplateId uint8

const (
	FixedAlpha   TemplateId = 0
	FixedBeta    TemplateId = 1
	DynamicAlpha TemplateId = 2
	DynamicBeta  TemplateId = 3
	DynamicGamma TemplateId = 4
	DynamicDelta TemplateId = 5
	DlistAlpha   TemplateId = 6
	DlistBeta    TemplateId = 7
	DlistGamma   TemplateId = 8
	DlistDelta   TemplateId = 9
)

func (id TemplateId) String() string {
	switch id {
	case FixedAlpha:
		return "FixedAlpha"
	case FixedBeta:
		return "FixedBeta"
	case DynamicAlpha:
		return "DynamicAlpha"
	case DynamicBeta:
		return "DynamicBeta"
	case DynamicGamma:
		return "DynamicGamma"
	case DynamicDelta:
		return "DynamicDelta"
	case DlistAlpha:
		return "DlistAlpha"
	case DlistBeta:
		return "DlistBeta"
	case DlistGamma:
		return "DlistGamma"
	case DlistDelta:
		return "DlistDelta"
	default:
		return "Unknown"
	}
}

func (id TemplateId) IsFixed() bool {
	return id == FixedAlpha || id == FixedBeta
}

func (id TemplateId) IsDynamic() bool {
	return id >= DynamicAlpha && id <= DynamicDelta
}

func (id TemplateId) IsDlist() bool {
	return id >= DlistAlpha && id <= DlistDelta
}

// dynamicPrefixWidths maps a Dynamic or Dlist TemplateId to its
// length/count prefix width in bytes and the largest value that width can
// express. Dynamic-β and Dlist-β are capped at 65535, the largest value a
// 2-byte little-endian prefix can hold, per spec.md's resolution of the
// off-by-one present in the original implementation.
var dynamicPrefixWidths = map[TemplateId]struct {
	width int
	max   int
}{
	DynamicAlpha: {1, 255},
	DynamicBeta:  {2, 65535},
	DynamicGamma: {3, 16777215},
	DynamicDelta: {4, 4294967295},
	DlistAlpha:   {1, 255},
	DlistBeta:    {2, 65535},
	DlistGamma:   {3, 16777215},
	DlistDelta:   {4, 4294967295},
}
