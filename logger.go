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
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/go-logr/logr"
)

// SetLogger installs the logr.Logger that Log and every Template's internal
// logging delegate to. Call it once at program startup; until it is
// called, log output is discarded. Unlike controller-runtime's equivalent,
// there are no named or valued sub-loggers handed out before configuration
// for this to retroactively fix up: codec's only logging calls are the
// Log.V(1).Info calls in template.go, so a single atomically-swapped sink
// is enough.
func SetLogger(l logr.Logger) {
	logConfigured.Store(true)
	rootSink.set(l.GetSink())
}

func FromContext(ctx context.Context, keysAndValues ...interface{}) logr.Logger {
	log := Log
	if ctx != nil {
		if logger, err := logr.FromContext(ctx); err == nil {
			log = logger
		}
	}
	return log.WithValues(keysAndValues...)
}

func IntoContext(ctx context.Context, l logr.Logger) context.Context {
	return logr.NewContext(ctx, l)
}

var (
	logConfigured atomic.Bool
	rootCreated   = time.Now()
	rootSink      = newDelegatingLogSink(nullLogSink{})

	// Log is the package-level logger every Template logs through. It is
	// safe to use before SetLogger is called; output is simply discarded.
	Log = logr.New(rootSink)
)

// warnIfUnconfigured prints a one-time stderr warning, with the stack that
// first triggered a log call, once 30 seconds have elapsed without
// SetLogger ever being called. A library has no hook of its own into
// program startup, so a silently-discarding logger is otherwise
// indistinguishable from a broken one.
func warnIfUnconfigured() {
	if logConfigured.Load() {
		return
	}
	if time.Since(rootCreated) < 30*time.Second {
		return
	}
	if !logConfigured.CompareAndSwap(false, true) {
		return
	}

	stack := debug.Stack()
	stackLines := bytes.Count(stack, []byte{'\n'})
	sep := []byte{'\n', '\t', '>', ' ', ' '}

	fmt.Fprintf(os.Stderr,
		"codec.SetLogger(...) was never called; logs will not be displayed.\nDetected at:%s%s", sep,
		bytes.Replace(stack, []byte{'\n'}, sep, stackLines-1),
	)
	rootSink.set(nullLogSink{})
}

type nullLogSink struct{}

var _ logr.LogSink = nullLogSink{}

func (nullLogSink) Init(logr.RuntimeInfo) {}

func (nullLogSink) Info(_ int, _ string, _ ...interface{}) {}

func (nullLogSink) Error(_ error, _ string, _ ...interface{}) {}

func (nullLogSink) Enabled(_ int) bool {
	return false
}

func (log nullLogSink) WithName(_ string) logr.LogSink {
	return log
}

func (log nullLogSink) WithValues(_ ...interface{}) logr.LogSink {
	return log
}

// delegatingLogSink forwards every call to whichever logr.LogSink is
// currently installed. The sink is swapped with a single atomic pointer
// store, so concurrent readers never observe a torn value, and SetLogger
// needs no lock.
type delegatingLogSink struct {
	current atomic.Pointer[logr.LogSink]
}

func newDelegatingLogSink(initial logr.LogSink) *delegatingLogSink {
	d := &delegatingLogSink{}
	d.set(initial)
	return d
}

// set installs sink as the delegate. If sink supports call-depth
// adjustment, it is bumped by one to account for the extra frame this
// delegating layer adds, so file:line annotations in the underlying
// logger's output still point at the caller of Log, not at this file.
func (d *delegatingLogSink) set(sink logr.LogSink) {
	if sink == nil {
		sink = nullLogSink{}
	}
	if withCallDepth, ok := sink.(logr.CallDepthLogSink); ok {
		sink = withCallDepth.WithCallDepth(1)
	}
	d.current.Store(&sink)
}

func (d *delegatingLogSink) get() logr.LogSink {
	return *d.current.Load()
}

func (d *delegatingLogSink) Init(info logr.RuntimeInfo) {
	warnIfUnconfigured()
	d.get().Init(info)
}

func (d *delegatingLogSink) Enabled(level int) bool {
	warnIfUnconfigured()
	return d.get().Enabled(level)
}

func (d *delegatingLogSink) Info(level int, msg string, keysAndValues ...interface{}) {
	warnIfUnconfigured()
	d.get().Info(level, msg, keysAndValues...)
}

func (d *delegatingLogSink) Error(err error, msg string, keysAndValues ...interface{}) {
	warnIfUnconfigured()
	d.get().Error(err, msg, keysAndValues...)
}

func (d *delegatingLogSink) WithName(name string) logr.LogSink {
	return d.get().WithName(name)
}

func (d *delegatingLogSink) WithValues(tags ...interface{}) logr.LogSink {
	return d.get().WithValues(tags...)
}
