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

import "testing"

// TestInvertCursor_waitHalf checks that Invert flips a terminal Success
// to Failure while passing the leftover dt through unchanged:
// Invert(Wait(0.5)) ticked with Update(1.0) -> (Failure, 0.5).
func TestInvertCursor_waitHalf(t *testing.T) {
	c := Invert(Wait(0.5)).Spawn()
	status, leftoverDt := c.Update(UpdateEvent{Dt: 1}, testStep)
	if status != Failure || leftoverDt != 0.5 {
		t.Errorf("got (%v, %v), expected (Failure, 0.5)", status, leftoverDt)
	}
}

func TestInvertCursor_running(t *testing.T) {
	c := Invert(Wait(2)).Spawn()
	status, leftoverDt := c.Update(UpdateEvent{Dt: 1}, testStep)
	if status != Running || leftoverDt != 0 {
		t.Errorf("got (%v, %v), expected (Running, 0)", status, leftoverDt)
	}
}

// TestInvertCursor_involution checks that Invert(Invert(e)) behaves
// exactly like e.
func TestInvertCursor_involution(t *testing.T) {
	plain := Wait(0.5).Spawn()
	doubled := Invert(Invert(Wait(0.5))).Spawn()

	for _, dt := range []float64{0.2, 0.2, 0.2} {
		ps, pl := plain.Update(UpdateEvent{Dt: dt}, testStep)
		ds, dl := doubled.Update(UpdateEvent{Dt: dt}, testStep)
		if ps != ds || pl != dl {
			t.Fatalf("diverged: plain=(%v,%v) doubled=(%v,%v)", ps, pl, ds, dl)
		}
	}
}
