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

// Named wraps n with a human-readable label, used only by the tree
// printer (printer.go); it has no effect on Spawn or evaluation.
func Named(name string, n Node) Node {
	return namedNode{Node: n, name: name}
}

type namedNode struct {
	Node
	name string
}

func (n namedNode) describe() (string, []Node) {
	label, children := n.Node.describe()
	return namePrefix(n.name) + label, children
}

func namePrefix(n string) string {
	if n == "" {
		return ""
	}
	return n + ": "
}
