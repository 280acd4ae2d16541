// SPDX-License-Identifier: MPL-2.0

package audit

import (
	"fmt"
	"sort"
	"strings"

	"varsweep/internal/document"
)

// VarSetSource exposes variable containers through the DataSource contract.
type VarSetSource struct {
	doc document.Document
}

// NewVarSetSource builds a variable-container data source over doc.
func NewVarSetSource(doc document.Document) *VarSetSource {
	return &VarSetSource{doc: doc}
}

// SortedParents lists container names sorted for display. A container whose
// variables span more than one property group is followed by virtual
// parents of the form "Container.Group", one per group.
func (s *VarSetSource) SortedParents(excludeClones bool) []string {
	var parents []string
	for _, name := range VarSetNames(s.doc, excludeClones) {
		parents = append(parents, name)

		groups := distinctGroups(VariableGroups(s.doc, name))
		if len(groups) <= 1 {
			continue
		}
		for _, group := range groups {
			parents = append(parents, name+"."+group)
		}
	}
	return parents
}

// ChildRefs lists the variable refs of the selected parents, sorted by
// their canonical text. Virtual "Container.Group" parents restrict the
// listing to that group's variables; an unrecognized group falls back to
// treating the selection text as a literal container name.
func (s *VarSetSource) ChildRefs(selectedParents []string) []ParentChildRef {
	var texts []string
	for _, parent := range selectedParents {
		varset, names := s.variablesForParent(parent)
		for _, name := range names {
			texts = append(texts, varset+"."+name)
		}
	}
	sort.Strings(texts)

	var refs []ParentChildRef
	for _, text := range texts {
		ref, err := ParseRef(text)
		if err != nil {
			continue
		}
		refs = append(refs, ref)
	}
	return refs
}

// ExpressionUsages returns the references to each selected variable and the
// per-variable reference counts. Malformed selection entries are skipped.
func (s *VarSetSource) ExpressionUsages(selectedChildren []string) ([]ExpressionUsage, map[string]int) {
	var usages []ExpressionUsage
	counts := make(map[string]int)
	for _, text := range selectedChildren {
		ref, err := ParseRef(text)
		if err != nil {
			continue
		}
		found := VariableReferences(s.doc, ref.Parent, ref.Child)
		counts[text] = len(found)
		usages = append(usages, found...)
	}
	sort.Slice(usages, func(i, j int) bool {
		return usages[i].DisplayText() < usages[j].DisplayText()
	})
	return usages, counts
}

// ReferenceCounts returns the per-variable reference counts for the
// selection.
func (s *VarSetSource) ReferenceCounts(selectedChildren []string) map[string]int {
	counts := make(map[string]int)
	for _, text := range selectedChildren {
		ref, err := ParseRef(text)
		if err != nil {
			continue
		}
		counts[text] = len(VariableReferences(s.doc, ref.Parent, ref.Child))
	}
	return counts
}

// RemoveUnusedChildren deletes the selected variables that have no
// references. Each item is re-checked against the live document right
// before deletion; items that gained references land in StillUsed, and
// parse or mutation errors land in Failed. The document is recomputed once
// when anything was deleted.
func (s *VarSetSource) RemoveUnusedChildren(selectedChildren []string) RemovalResult {
	result := RemovalResult{}
	for _, text := range selectedChildren {
		ref, err := ParseRef(text)
		if err != nil {
			result.Failed = append(result.Failed, RemovalFailure{Ref: text, Err: err})
			continue
		}
		if len(VariableReferences(s.doc, ref.Parent, ref.Child)) > 0 {
			result.StillUsed = append(result.StillUsed, text)
			continue
		}
		if err := s.doc.RemoveProperty(ref.Parent, ref.Child); err != nil {
			result.Failed = append(result.Failed, RemovalFailure{
				Ref: text,
				Err: fmt.Errorf("remove variable %s: %w", text, err),
			})
			continue
		}
		result.Removed = append(result.Removed, text)
	}
	if len(result.Removed) > 0 {
		s.doc.Recompute()
	}
	return result
}

// variablesForParent resolves one parent selection to a container name and
// its variable names, recognizing virtual "Container.Group" parents.
func (s *VarSetSource) variablesForParent(parent string) (string, []string) {
	if varset, group, ok := s.splitVirtualParent(parent); ok {
		return varset, VariableNamesForGroup(s.doc, varset, group)
	}
	return parent, VariableNames(s.doc, parent)
}

// splitVirtualParent recognizes "Container.Group" selections: the container
// must exist, span more than one group, and define the named group.
func (s *VarSetSource) splitVirtualParent(text string) (string, string, bool) {
	varset, group, ok := strings.Cut(text, ".")
	if !ok || varset == "" || group == "" {
		return "", "", false
	}
	groups := distinctGroups(VariableGroups(s.doc, varset))
	if len(groups) <= 1 {
		return "", "", false
	}
	for _, known := range groups {
		if known == group {
			return varset, group, true
		}
	}
	return "", "", false
}

func distinctGroups(byVariable map[string]string) []string {
	seen := make(map[string]bool)
	var groups []string
	for _, group := range byVariable {
		if seen[group] {
			continue
		}
		seen[group] = true
		groups = append(groups, group)
	}
	sort.Strings(groups)
	return groups
}
