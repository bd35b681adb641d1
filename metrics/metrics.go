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

// Package metrics exposes Prometheus collectors for codec.Template
// operations, wired in via a codec.Observer rather than imported directly
// by the codec package, keeping the codec's hot path dependency-free.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/abartolomey/nestcodec"
)

var (
	EncodeTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "nestcodec_encode_total",
		Help: "Total number of Template.Encode/EncodeTo calls per template id and outcome.",
	}, []string{"template_id", "outcome"})

	DecodeTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "nestcodec_decode_total",
		Help: "Total number of Template.Decode/DecodeWithRemainder calls per template id and outcome.",
	}, []string{"template_id", "outcome"})

	SchemaParseTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "nestcodec_schema_parse_total",
		Help: "Total number of Template schema parses per template id and outcome.",
	}, []string{"template_id", "outcome"})

	EncodedBytes = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "nestcodec_encoded_bytes",
		Help:    "Size in bytes of successfully encoded payloads, id byte included.",
		Buckets: prometheus.ExponentialBuckets(1, 4, 12),
	})

	DecodedBytes = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "nestcodec_decoded_bytes",
		Help:    "Size in bytes consumed by successful decodes, id byte included.",
		Buckets: prometheus.ExponentialBuckets(1, 4, 12),
	})
)

func init() {
	prometheus.MustRegister(EncodeTotal, DecodeTotal, SchemaParseTotal, EncodedBytes, DecodedBytes)
}

// PrometheusObserver implements codec.Observer by recording counts and
// size histograms against the package-level collectors above.
type PrometheusObserver struct{}

var _ codec.Observer = PrometheusObserver{}

func outcome(err error) string {
	if err == nil {
		return "success"
	}
	return "error"
}

func (PrometheusObserver) OnEncode(id codec.TemplateId, byteLen int, err error) {
	label := strconv.Itoa(int(id))
	EncodeTotal.WithLabelValues(label, outcome(err)).Inc()
	if err == nil {
		EncodedBytes.Observe(float64(byteLen))
	}
}

func (PrometheusObserver) OnDecode(id codec.TemplateId, consumedLen int, err error) {
	label := strconv.Itoa(int(id))
	DecodeTotal.WithLabelValues(label, outcome(err)).Inc()
	if err == nil {
		DecodedBytes.Observe(float64(consumedLen))
	}
}

func (PrometheusObserver) OnSchemaParse(id codec.TemplateId, err error) {
	label := strconv.Itoa(int(id))
	SchemaParseTotal.WithLabelValues(label, outcome(err)).Inc()
}
