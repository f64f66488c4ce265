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

package main

import (
	"log"

	"github.com/ashgrove/behaviortree"
)

// demoAction is satisfied by every leaf action this program spawns; step
// dispatches to it by a type assertion, the same pattern the core
// package's own tests use for their Step implementations.
type demoAction interface {
	behaviortree.Action
	tick(dt float64, state interface{}) (behaviortree.Status, float64, interface{})
}

func step(dt float64, action behaviortree.Action, state interface{}) (behaviortree.Status, float64, interface{}) {
	return action.(demoAction).tick(dt, state)
}

// patrolWaypointAction represents time spent walking to one patrol
// waypoint; it succeeds once legSeconds have elapsed.
type patrolWaypointAction struct {
	name       string
	legSeconds float64
}

func (patrolWaypointAction) StartState() interface{} { return 0.0 }

func (a patrolWaypointAction) tick(dt float64, state interface{}) (behaviortree.Status, float64, interface{}) {
	elapsed := state.(float64) + dt
	if elapsed >= a.legSeconds {
		log.Printf("patrol: reached %s", a.name)
		return behaviortree.Success, elapsed - a.legSeconds, 0.0
	}
	return behaviortree.Running, 0, elapsed
}

// catchAction represents time spent closing the distance on an alerted
// target; it succeeds once durationSeconds have elapsed.
type catchAction struct {
	durationSeconds float64
}

func (catchAction) StartState() interface{} { return 0.0 }

func (a catchAction) tick(dt float64, state interface{}) (behaviortree.Status, float64, interface{}) {
	elapsed := state.(float64) + dt
	if elapsed >= a.durationSeconds {
		log.Printf("chase: target caught")
		return behaviortree.Success, elapsed - a.durationSeconds, 0.0
	}
	return behaviortree.Running, 0, elapsed
}
