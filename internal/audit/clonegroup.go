// SPDX-License-Identifier: MPL-2.0

package audit

import (
	"strings"

	"varsweep/internal/document"
)

// cloneGroupName is the reserved internal name of the host-generated
// container that holds copy-derived object clones. Additional clone groups
// carry labels starting with the same reserved prefix.
const cloneGroupName = "CopyOnChangeGroup"

// CloneGroupNames collects the internal names of all clone-derived objects
// of the given type: objects reachable from a clone group through its
// membership or dependency-output relations. Callers subtract the result
// from catalog listings when clone exclusion is requested.
//
// Traversal is guarded by a visited set, so cyclic relations terminate, and
// missing or empty relations are treated as no children.
func CloneGroupNames(doc document.Document, typeID document.TypeID) map[string]bool {
	names := make(map[string]bool)
	visited := make(map[string]bool)
	for _, group := range cloneGroups(doc) {
		collectCloneNames(group, typeID, visited, names)
	}
	return names
}

// cloneGroups finds clone-group containers by exact reserved name or by
// display-label prefix.
func cloneGroups(doc document.Document) []document.Object {
	var groups []document.Object
	if direct, ok := doc.Object(cloneGroupName); ok {
		groups = append(groups, direct)
	}
	for _, obj := range doc.Objects() {
		if obj.Name() == cloneGroupName {
			continue // already collected by direct lookup
		}
		if strings.HasPrefix(obj.Label(), cloneGroupName) {
			groups = append(groups, obj)
		}
	}
	return groups
}

func collectCloneNames(obj document.Object, typeID document.TypeID, visited, names map[string]bool) {
	if visited[obj.Name()] {
		return
	}
	visited[obj.Name()] = true

	if obj.TypeID() == typeID {
		names[obj.Name()] = true
		return
	}
	for _, child := range obj.Members() {
		collectCloneNames(child, typeID, visited, names)
	}
	for _, child := range obj.Outputs() {
		collectCloneNames(child, typeID, visited, names)
	}
}
