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
	"github.com/xlab/treeprint"
)

// Print renders n as a human-readable tree, suitable for logging a
// behavior definition during development: a label per node (see
// Node.describe) and its logical children, indented one level per branch.
func Print(n Node) string {
	if n == nil {
		return "<nil>"
	}
	tree := treeprint.New()
	label, children := n.describe()
	tree.SetValue(label)
	for _, child := range children {
		appendNode(tree, child)
	}
	return tree.String()
}

func appendNode(parent treeprint.Tree, n Node) {
	if n == nil {
		parent.AddNode("<nil>")
		return
	}
	label, children := n.describe()
	branch := parent.AddBranch(label)
	for _, child := range children {
		appendNode(branch, child)
	}
}
