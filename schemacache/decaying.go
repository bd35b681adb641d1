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

package schemacache

import (
	"sync"
	"time"

	"github.com/abartolomey/nestcodec"
)

type entry struct {
	template *codec.Template
	deadline time.Time
	expired  bool
}

// Decaying is a schema cache where entries expire after a fixed timeout
// from insertion. Expiry is evaluated lazily on access, the same way the
// teacher's decaying template cache evaluates deadlines: there is no
// background goroutine sweeping the map.
type Decaying struct {
	mu      sync.RWMutex
	entries map[string]entry
	timeout time.Duration
}

var _ Cache = &Decaying{}

// NewDecaying creates a Decaying cache whose entries expire timeout after
// insertion. A zero timeout means entries expire immediately on the next
// access after insertion.
func NewDecaying(timeout time.Duration) *Decaying {
	return &Decaying{
		entries: make(map[string]entry),
		timeout: timeout,
	}
}

// SetTimeout updates the duration used for future insertions. Existing
// entries keep the deadline they were given at insertion time.
func (c *Decaying) SetTimeout(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.timeout = d
}

func (c *Decaying) expireLocked() {
	now := time.Now()
	for k, e := range c.entries {
		if now.After(e.deadline) {
			delete(c.entries, k)
		}
	}
}

func (c *Decaying) Get(schema []byte) (*codec.Template, bool) {
	c.mu.Lock()
	c.expireLocked()
	e, ok := c.entries[string(schema)]
	c.mu.Unlock()
	if !ok || e.expired {
		return nil, false
	}
	return e.template, true
}

func (c *Decaying) GetOrParse(schema []byte) (*codec.Template, error) {
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

func (c *Decaying) Add(schema []byte, t *codec.Template) {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	c.entries[string(schema)] = entry{
		template: t,
		deadline: now.Add(c.timeout),
	}
}

func (c *Decaying) Delete(schema []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, string(schema))
}

func (c *Decaying) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expireLocked()
	n := 0
	for _, e := range c.entries {
		if !e.expired {
			n++
		}
	}
	return n
}
