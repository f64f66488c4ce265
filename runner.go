/*
   Copyright 2021 Joseph Cumines

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

package behaviortree

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"
)

// Runner models a host loop that drives a single root Cursor off a
// time.Ticker, delivering an UpdateEvent once per tick interval: the
// interpreter itself has no built-in timer, only the accumulated delta
// time Runner supplies.
type Runner interface {
	// Done closes once the runner has stopped and Status/Err are final.
	Done() <-chan struct{}
	// Err returns any error encountered, including a root cursor leftover
	// dt that is non-finite or outside [0, dt] for the tick it answered.
	Err() error
	// Status returns the cursor's last reported Status.
	Status() Status
	// Push queues a non-update Event (e.g. a KeyPressEvent) to be
	// delivered ahead of the next UpdateEvent tick.
	Push(e Event)
	// Stop shuts the runner down asynchronously.
	Stop()
}

type runner struct {
	ctx    context.Context
	cancel context.CancelFunc
	cursor Cursor
	step   Step
	ticker *time.Ticker
	queue  chan Event
	done   chan struct{}
	stop   chan struct{}
	once   sync.Once
	mutex  sync.Mutex
	status Status
	err    error
}

// NewRunner constructs a Runner that spawns root and ticks it with
// UpdateEvent{Dt: duration.Seconds()} once per duration, using step to
// advance leaf actions, until the cursor reaches a terminal Status, an
// invalid Step return is detected, Stop is called, or ctx is canceled.
//
// Panics if ctx, root, or step is nil, or if duration <= 0.
func NewRunner(ctx context.Context, duration time.Duration, root Node, step Step) Runner {
	if ctx == nil {
		panic(errors.New("behaviortree.NewRunner: nil context"))
	}
	if duration <= 0 {
		panic(errors.New("behaviortree.NewRunner: duration <= 0"))
	}
	if root == nil {
		panic(errors.New("behaviortree.NewRunner: nil root"))
	}
	if step == nil {
		panic(errors.New("behaviortree.NewRunner: nil step"))
	}

	r := &runner{
		cursor: root.Spawn(),
		step:   step,
		ticker: time.NewTicker(duration),
		queue:  make(chan Event, 16),
		done:   make(chan struct{}),
		stop:   make(chan struct{}),
	}
	r.ctx, r.cancel = context.WithCancel(ctx)

	go r.run(duration)

	return r
}

func (r *runner) run(duration time.Duration) {
	var err error
runLoop:
	for err == nil {
		select {
		case <-r.ctx.Done():
			err = r.ctx.Err()
			break runLoop
		case <-r.stop:
			break runLoop
		case e := <-r.queue:
			if r.tick(e) {
				break runLoop
			}
		case <-r.ticker.C:
			if r.tick(UpdateEvent{Dt: duration.Seconds()}) {
				break runLoop
			}
		}
	}
	r.mutex.Lock()
	if r.err == nil {
		r.err = err
	}
	r.mutex.Unlock()
	r.Stop()
	r.cancel()
	close(r.done)
}

// tick runs one Update call, recording status/err, and reports whether the
// run loop should stop (terminal status or a contract violation).
func (r *runner) tick(e Event) (stop bool) {
	status, leftoverDt := r.cursor.Update(e, r.validatingStep(r.step))
	r.mutex.Lock()
	r.status = status
	r.mutex.Unlock()
	if dt, ok := eventDt(e); ok {
		if err := validateLeftoverDt(dt, leftoverDt); err != nil {
			r.mutex.Lock()
			r.err = err
			r.mutex.Unlock()
			return true
		}
	}
	return status.terminal()
}

// validatingStep wraps step so a non-finite dt reaching a leaf action is
// caught at this harness boundary, per this package's error handling
// design: the pure Cursor.Update dispatch itself performs no such check.
func (r *runner) validatingStep(step Step) Step {
	return func(dt float64, action Action, state interface{}) (Status, float64, interface{}) {
		if math.IsNaN(dt) || math.IsInf(dt, 0) {
			panic(fmt.Errorf("behaviortree.Runner: non-finite dt %v", dt))
		}
		return step(dt, action, state)
	}
}

func validateLeftoverDt(dt, leftoverDt float64) error {
	if math.IsNaN(leftoverDt) || math.IsInf(leftoverDt, 0) {
		return fmt.Errorf("behaviortree.Runner: non-finite leftover dt %v", leftoverDt)
	}
	if leftoverDt < 0 || leftoverDt > dt {
		return fmt.Errorf("behaviortree.Runner: leftover dt %v out of range [0, %v]", leftoverDt, dt)
	}
	return nil
}

func (r *runner) Done() <-chan struct{} { return r.done }

func (r *runner) Err() error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.err
}

func (r *runner) Status() Status {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.status
}

func (r *runner) Push(e Event) {
	select {
	case r.queue <- e:
	case <-r.stop:
	}
}

func (r *runner) Stop() {
	r.once.Do(func() {
		r.ticker.Stop()
		close(r.stop)
	})
}
