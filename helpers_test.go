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

// testAction lets tests define leaf behavior inline without writing a new
// Step dispatcher per test file; testStep is the single Step all test
// files in this package share, dispatching to whichever testAction was
// ticked.
type testAction interface {
	Action
	tick(dt float64, state interface{}) (Status, float64, interface{})
}

func testStep(dt float64, action Action, state interface{}) (Status, float64, interface{}) {
	return action.(testAction).tick(dt, state)
}

// scriptedAction returns a fixed, ordered sequence of results, one per
// Update(Update{...}) call, panicking if ticked more times than scripted.
type scriptedAction struct {
	results []scriptedResult
}

type scriptedResult struct {
	status     Status
	leftoverDt float64
}

func (a *scriptedAction) StartState() interface{} { return 0 }

func (a *scriptedAction) tick(dt float64, state interface{}) (Status, float64, interface{}) {
	i := state.(int)
	r := a.results[i]
	return r.status, r.leftoverDt, i + 1
}

// constantAction always reports the same Status, returning the given
// fraction of whatever dt it is given as leftover (leftoverFrac in [0, 1]).
type constantAction struct {
	status       Status
	leftoverFrac float64
}

func (a constantAction) StartState() interface{} { return nil }

func (a constantAction) tick(dt float64, state interface{}) (Status, float64, interface{}) {
	return a.status, dt * a.leftoverFrac, nil
}

// countingAction counts how many times it has been ticked, always running.
type countingAction struct{ ticks *int }

func (a countingAction) StartState() interface{} { return nil }

func (a countingAction) tick(dt float64, state interface{}) (Status, float64, interface{}) {
	*a.ticks++
	return Running, 0, nil
}
