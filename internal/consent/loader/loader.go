/*
 * Copyright (c) 2026, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package loader

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/wso2/openbanking-selfcare-service/internal/system/cache"
	"github.com/wso2/openbanking-selfcare-service/internal/system/log"
	"golang.org/x/sync/singleflight"
)

type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateLoaded  State = "loaded"
	StateFailed  State = "failed"
)

// Completion results reported to Options.OnComplete.
const (
	ResultLoaded    = "loaded"
	ResultFailed    = "failed"
	ResultDiscarded = "discarded"
)

// Snapshot is the observable state of one key.
type Snapshot[T any] struct {
	State     State
	Data      T
	Err       error
	UpdatedAt time.Time
}

// FetchFunc loads the data of a key.
type FetchFunc[T any] func(ctx context.Context) (T, error)

type Options struct {
	// TTL bounds how long a settled entry is kept. It should exceed FetchTimeout, otherwise a
	// slow fetch finds its entry gone and its result is discarded.
	TTL          time.Duration
	FetchTimeout time.Duration
	OnComplete   func(result string)
}

type entry[T any] struct {
	snapshot Snapshot[T]
	token    uint64
}

// Loader keeps one {idle, loading, loaded, failed} state machine per key. Each fetch is tied
// to the entry it was started for, so a result that arrives after the key was reset is dropped
// and never overwrites newer state.
type Loader[T any] struct {
	name    string
	options Options
	entries *cache.Cache
	group   singleflight.Group
	mu      sync.Mutex
	tokens  atomic.Uint64
}

func New[T any](name string, options Options) *Loader[T] {
	if options.TTL <= 0 {
		options.TTL = 5 * time.Minute
	}
	if options.FetchTimeout <= 0 {
		options.FetchTimeout = 30 * time.Second
	}
	return &Loader[T]{
		name:    name,
		options: options,
		entries: cache.NewCache(options.TTL, 2*options.TTL),
	}
}

// Snapshot returns the current state of key without side effects.
func (l *Loader[T]) Snapshot(key string) Snapshot[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	if e, ok := l.lookup(key); ok {
		return e.snapshot
	}
	return Snapshot[T]{State: StateIdle}
}

// Trigger returns the loaded data of key, or starts a fetch for it. A key that is already
// loading is joined rather than fetched twice. When ctx ends before the fetch does, the
// loading snapshot is returned and the fetch carries on in the background.
func (l *Loader[T]) Trigger(ctx context.Context, key string, fetch FetchFunc[T]) Snapshot[T] {

	l.mu.Lock()
	current, ok := l.lookup(key)
	if ok && current.snapshot.State == StateLoaded {
		l.mu.Unlock()
		return current.snapshot
	}
	if !ok || current.snapshot.State != StateLoading {
		current = entry[T]{
			snapshot: Snapshot[T]{State: StateLoading, UpdatedAt: time.Now()},
			token:    l.tokens.Add(1),
		}
		l.entries.Set(key, current)
	}
	token := current.token
	l.mu.Unlock()

	flightKey := fmt.Sprintf("%s#%d", key, token)
	results := l.group.DoChan(flightKey, func() (interface{}, error) {
		return l.run(context.WithoutCancel(ctx), key, token, fetch), nil
	})

	select {
	case res := <-results:
		return res.Val.(Snapshot[T])
	case <-ctx.Done():
		return current.snapshot
	}
}

// Reset forgets key. A fetch still running for it completes without effect.
func (l *Loader[T]) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries.Delete(key)
}

func (l *Loader[T]) run(ctx context.Context, key string, token uint64, fetch FetchFunc[T]) Snapshot[T] {

	l.mu.Lock()
	e, ok := l.lookup(key)
	if !ok || e.token != token || e.snapshot.State != StateLoading {
		l.mu.Unlock()
		log.GetLogger().Debug(fmt.Sprintf("Skipping superseded %s fetch for key %s", l.name, key))
		l.report(ResultDiscarded)
		return l.Snapshot(key)
	}
	l.mu.Unlock()

	fetchCtx, cancel := context.WithTimeout(ctx, l.options.FetchTimeout)
	defer cancel()
	data, err := fetch(fetchCtx)

	return l.complete(key, token, data, err)
}

func (l *Loader[T]) complete(key string, token uint64, data T, err error) Snapshot[T] {

	l.mu.Lock()
	defer l.mu.Unlock()

	logger := log.GetLogger()
	e, ok := l.lookup(key)
	if !ok || e.token != token {
		logger.Debug(fmt.Sprintf("Discarding stale %s result for key %s", l.name, key))
		l.report(ResultDiscarded)
		if ok {
			return e.snapshot
		}
		return Snapshot[T]{State: StateIdle}
	}

	snapshot := Snapshot[T]{State: StateLoaded, Data: data, UpdatedAt: time.Now()}
	result := ResultLoaded
	if err != nil {
		logger.Debug(fmt.Sprintf("Fetching %s for key %s failed", l.name, key), log.Error(err))
		snapshot = Snapshot[T]{State: StateFailed, Err: err, UpdatedAt: time.Now()}
		result = ResultFailed
	}
	l.entries.Set(key, entry[T]{snapshot: snapshot, token: token})
	l.report(result)
	return snapshot
}

func (l *Loader[T]) lookup(key string) (entry[T], bool) {
	value, ok := l.entries.Get(key)
	if !ok {
		return entry[T]{}, false
	}
	e, ok := value.(entry[T])
	return e, ok
}

func (l *Loader[T]) report(result string) {
	if l.options.OnComplete != nil {
		l.options.OnComplete(result)
	}
}
