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
	"errors"
	"fmt"
	"math"
)

// Node is a node of the static behavior tree: immutable, shared, and safe
// to spawn any number of concurrent Cursor instances from. The set of
// variants is fixed at eight (KeyPressed, Leaf, Invert, Wait, Select,
// Sequence, While, WhenAll); describe is unexported so no type outside this
// package may add a ninth.
type Node interface {
	// Spawn produces the initial Cursor for this subtree.
	Spawn() Cursor
	// describe returns a short label for the node and its logical
	// children, used only by the tree printer (printer.go).
	describe() (label string, children []Node)
}

// KeyPressed waits for a specific key press; it is instantaneous and
// consumes no time.
func KeyPressed(key KeyCode) Node {
	return keyPressedNode{key: key}
}

type keyPressedNode struct{ key KeyCode }

func (n keyPressedNode) Spawn() Cursor { return &keyPressedCursor{key: n.key} }

func (n keyPressedNode) describe() (string, []Node) {
	return fmt.Sprintf("KeyPressed(%v)", n.key), nil
}

// Leaf wraps an opaque, host-defined Action as a tree node. Panics if
// action is nil.
func Leaf(action Action) Node {
	if action == nil {
		panic(errors.New("behaviortree.Leaf: nil action"))
	}
	return leafNode{action: action}
}

type leafNode struct{ action Action }

func (n leafNode) Spawn() Cursor {
	return &stateCursor{action: n.action, state: n.action.StartState()}
}

func (n leafNode) describe() (string, []Node) {
	return fmt.Sprintf("Leaf(%T)", n.action), nil
}

// Invert inverts the terminal status of e: Success becomes Failure and
// vice versa; Running passes through unchanged. Panics if e is nil.
func Invert(e Node) Node {
	if e == nil {
		panic(errors.New("behaviortree.Invert: nil child"))
	}
	return invertNode{inner: e}
}

type invertNode struct{ inner Node }

func (n invertNode) Spawn() Cursor { return &invertCursor{inner: n.inner.Spawn()} }

func (n invertNode) describe() (string, []Node) { return "Invert", []Node{n.inner} }

// Wait succeeds once seconds of accumulated Update time have elapsed.
// Panics if seconds is negative or non-finite.
func Wait(seconds float64) Node {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		panic(fmt.Errorf("behaviortree.Wait: invalid duration %v", seconds))
	}
	return waitNode{target: seconds}
}

type waitNode struct{ target float64 }

func (n waitNode) Spawn() Cursor { return &waitCursor{target: n.target} }

func (n waitNode) describe() (string, []Node) {
	return fmt.Sprintf("Wait(%gs)", n.target), nil
}

// Select tries children in order, the first to succeed wins; it fails only
// once every child has failed. Panics if children is empty - an empty
// Select has undefined meaning and is forbidden by construction, per the
// spec this package implements.
func Select(children ...Node) Node {
	if len(children) == 0 {
		panic(errors.New("behaviortree.Select: no children"))
	}
	return selectNode{children: children}
}

type selectNode struct{ children []Node }

func (n selectNode) Spawn() Cursor {
	return &selectCursor{children: n.children, current: n.children[0].Spawn()}
}

func (n selectNode) describe() (string, []Node) { return "Select", n.children }

// Sequence ticks children in order, the first to fail wins; it succeeds
// only once every child has succeeded. Panics if children is empty.
func Sequence(children ...Node) Node {
	if len(children) == 0 {
		panic(errors.New("behaviortree.Sequence: no children"))
	}
	return sequenceNode{children: children}
}

type sequenceNode struct{ children []Node }

func (n sequenceNode) Spawn() Cursor {
	return &sequenceCursor{children: n.children, current: n.children[0].Spawn()}
}

func (n sequenceNode) describe() (string, []Node) { return "Sequence", n.children }

// While runs body as a cyclic Sequence for as long as cond reports
// Running, terminating with cond's terminal status the moment it stops
// being Running. Panics if cond is nil or body is empty.
func While(cond Node, body ...Node) Node {
	if cond == nil {
		panic(errors.New("behaviortree.While: nil condition"))
	}
	if len(body) == 0 {
		panic(errors.New("behaviortree.While: no body"))
	}
	return whileNode{cond: cond, body: body}
}

type whileNode struct {
	cond Node
	body []Node
}

func (n whileNode) Spawn() Cursor {
	return &whileCursor{cond: n.cond.Spawn(), body: n.body, current: n.body[0].Spawn()}
}

func (n whileNode) describe() (string, []Node) {
	return "While", append([]Node{n.cond}, n.body...)
}

// WhenAll runs every child concurrently on the same event, succeeding once
// all children have succeeded and failing fast the moment any child fails.
// An empty WhenAll is permitted and succeeds vacuously.
func WhenAll(children ...Node) Node {
	return whenAllNode{children: children}
}

type whenAllNode struct{ children []Node }

func (n whenAllNode) Spawn() Cursor {
	slots := make([]Cursor, len(n.children))
	for i, child := range n.children {
		slots[i] = child.Spawn()
	}
	return &whenAllCursor{slots: slots}
}

func (n whenAllNode) describe() (string, []Node) { return "WhenAll", n.children }
