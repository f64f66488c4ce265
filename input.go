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

// KeyCode identifies a host keyboard key. The core package treats it as an
// opaque comparable value; hosts are free to define their own named
// constants (this package defines none, deliberately, since keyboard
// hardware abstraction is the host's concern, not the interpreter's).
type KeyCode int

// Event is a host-supplied tick stimulus. The two built-in implementations
// are UpdateEvent (time-consuming) and KeyPressEvent (instantaneous); it is
// an open type so hosts can define further implementations for other
// instantaneous input kinds, which the cursor interpreter treats via its
// fallback rule (see Cursor.Update): anything that is not an UpdateEvent and
// that a given cursor variant does not explicitly handle leaves that cursor
// Running, having consumed none of the event.
type Event any

// UpdateEvent carries the elapsed wall-clock seconds since the previous
// tick. It is the only Event variant the interpreter treats as
// time-consuming.
type UpdateEvent struct {
	Dt float64
}

// withDt returns a copy of the event with a new elapsed time, used to
// cascade leftover dt from one sibling to the next within Select and
// Sequence.
func (e UpdateEvent) withDt(dt float64) UpdateEvent { return UpdateEvent{Dt: dt} }

// KeyPressEvent signals that a specific key was pressed. It is always
// instantaneous: no dt is consumed, regardless of which cursor observes it.
type KeyPressEvent struct {
	Key KeyCode
}

// eventDt returns the elapsed seconds of e if it is an UpdateEvent, and
// whether e was in fact an UpdateEvent.
func eventDt(e Event) (dt float64, ok bool) {
	u, ok := e.(UpdateEvent)
	if !ok {
		return 0, false
	}
	return u.Dt, true
}

// cascade returns the Event a composite should present to the next sibling
// given the current event e and a child's reported leftoverDt: for
// UpdateEvent, that means a fresh UpdateEvent carrying leftoverDt (timed
// events cascade leftover time between siblings); for any other Event, e is
// returned unchanged (non-time events are not attenuated - they are either
// fully consumed by whichever child observed them, or passed through
// as-is).
func cascade(e Event, leftoverDt float64) Event {
	if u, ok := e.(UpdateEvent); ok {
		return u.withDt(leftoverDt)
	}
	return e
}
