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

// Package schemacache caches codec.Template values reconstructed from
// schema bytes, so a long-lived peer connection that keeps re-announcing
// the same schema does not keep re-parsing it. This is a convenience
// layer on top of codec.FromSchema, not a codec correctness requirement:
// FromSchema remains correct and cache-free on its own.
package schemacache

import (
	"sync"

	"github.com/abartolomey/nestcodec"
)

// Cache stores Templates keyed by their exported schema bytes.
type Cache interface {
	// Get returns the Template previously stored for schema, or false if
	// absent.
	Get(schema []byte) (*codec.Template, bool)

	// GetOrParse returns the cached Template for schema if present;
	// otherwise it parses schema via codec.FromSchema, stores the result
	// on success, and returns it.
	GetOrParse(schema []byte) (*codec.Template, error)

	// Add stores t under schema, overwriting any previous entry.
	Add(schema []byte, t *codec.Template)

	// Delete removes the entry for schema, if any.
	Delete(schema []byte)

	// Len returns the number of entries currently cached.
	Len() int
}

// Ephemeral is the most basic cache: an in-memory map guarded by a
// RWMutex, with no expiry of its own. It is memory-safe for concurrent
// use but never shrinks except via Delete.
type Ephemeral struct {
	mu        sync.RWMutex
	templates map[string]*codec.Template
}

var _ Cache = &Ephemeral{}

// NewEphemeral creates an empty Ephemeral cache.
func NewEphemeral() *Ephemeral {
	return &Ephemeral{templates: make(map[string]*codec.Template)}
}

func (c *Ephemeral) Get(schema []byte) (*codec.Template, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.templates[string(schema)]
	return t, ok
}

func (c *Ephemeral) GetOrParse(schema []byte) (*codec.Template, error) {
	if t, ok := c.Get(schema); ok {
		return t, nil
	}
	t, err := codec.FromSchema(schema)
	if err != nil {
		return nil, err
	}
	c.Add(schema, t)
	return t, nil
}

func (c *Ephemeral) Add(schema []byte, t *codec.Template) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.templates[string(schema)] = t
}

func (c *Ephemeral) Delete(schema []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.templates, string(schema))
}

func (c *Ephemeral) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.templates)
}
