// SPDX-License-Identifier: MPL-2.0

package audit

import (
	"sort"
	"strings"

	"varsweep/internal/document"
)

// builtinProperties are host-managed properties that never count as user
// variables of a container.
var builtinProperties = map[string]bool{
	"ExpressionEngine": true,
	"Label":            true,
	"Label2":           true,
	"Visibility":       true,
	"Placement":        true,
	"Group":            true,
	"Material":         true,
	"Proxy":            true,
	"Shape":            true,
	"State":            true,
	"ViewObject":       true,
}

// VarSetNames returns the sorted internal names of all variable containers,
// optionally excluding clone-derived containers.
func VarSetNames(doc document.Document, excludeClones bool) []string {
	var clones map[string]bool
	if excludeClones {
		clones = CloneGroupNames(doc, document.TypeVarSet)
	}

	var names []string
	for _, obj := range doc.Objects() {
		if obj.TypeID() != document.TypeVarSet {
			continue
		}
		if excludeClones && clones[obj.Name()] {
			continue
		}
		names = append(names, obj.Name())
	}
	sort.Strings(names)
	return names
}

// VariableNames returns the sorted user-variable names of a container,
// built-in host properties excluded. An unknown container yields nil.
func VariableNames(doc document.Document, varset string) []string {
	obj, ok := typedObject(doc, varset, document.TypeVarSet)
	if !ok {
		return nil
	}
	var names []string
	for _, prop := range obj.Properties() {
		if builtinProperties[prop] {
			continue
		}
		names = append(names, prop)
	}
	sort.Strings(names)
	return names
}

// VariableGroups maps each user variable of a container to its property
// group, defaulting to the host's "Base" group.
func VariableGroups(doc document.Document, varset string) map[string]string {
	obj, ok := typedObject(doc, varset, document.TypeVarSet)
	if !ok {
		return map[string]string{}
	}
	groups := make(map[string]string)
	for _, prop := range obj.Properties() {
		if builtinProperties[prop] {
			continue
		}
		group := strings.TrimSpace(obj.PropertyGroup(prop))
		if group == "" {
			group = document.DefaultPropertyGroup
		}
		groups[prop] = group
	}
	return groups
}

// VariableNamesForGroup returns the container's variable names restricted
// to one property group, sorted.
func VariableNamesForGroup(doc document.Document, varset, group string) []string {
	wanted := strings.TrimSpace(group)
	if wanted == "" {
		wanted = document.DefaultPropertyGroup
	}
	groups := VariableGroups(doc, varset)
	var names []string
	for _, name := range VariableNames(doc, varset) {
		if groups[name] == wanted {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// VariableReferences finds every expression binding that references a
// container variable. A binding matches when its expression contains the
// qualified reference in either surface form ("<<Container>>.Variable" or
// "Container.Variable") honoring word boundaries, or, for bindings owned
// by the container itself, the bare variable name.
//
// Usages are keyed by the binding's canonical "Object.Property" path;
// at most one usage is reported per path. The result is sorted by display
// text.
func VariableReferences(doc document.Document, varset, variable string) []ExpressionUsage {
	bracketed := "<<" + varset + ">>." + variable
	qualified := varset + "." + variable

	byPath := make(map[string]ExpressionUsage)
	for _, obj := range doc.Objects() {
		internal := obj.Name() == varset && obj.TypeID() == document.TypeVarSet
		for _, binding := range obj.Bindings() {
			text := binding.Expression
			matched := containsQualified(text, bracketed) ||
				containsWord(text, qualified) ||
				(internal && containsWord(text, variable))
			if !matched {
				continue
			}
			path := expressionKey(obj.Name(), binding.Target)
			byPath[path] = ExpressionUsage{
				Owner:      obj.Name(),
				Property:   path,
				Expression: text,
			}
		}
	}
	return sortedUsages(byPath)
}

// typedObject looks up an object and checks its type tag.
func typedObject(doc document.Document, name string, typeID document.TypeID) (document.Object, bool) {
	obj, ok := doc.Object(name)
	if !ok || obj.TypeID() != typeID {
		return nil, false
	}
	return obj, true
}

// expressionKey builds the canonical "Object.Property" path of a binding.
// A binding target that starts with a dot is the host's self-qualified
// form; anything after a space or assignment marker is trimmed off.
func expressionKey(owner, target string) string {
	trimmed := strings.TrimSpace(target)
	if i := strings.IndexAny(trimmed, " ="); i >= 0 {
		trimmed = trimmed[:i]
	}
	if strings.HasPrefix(trimmed, ".") {
		return owner + trimmed
	}
	return owner + "." + trimmed
}

func sortedUsages(byPath map[string]ExpressionUsage) []ExpressionUsage {
	usages := make([]ExpressionUsage, 0, len(byPath))
	for _, usage := range byPath {
		usages = append(usages, usage)
	}
	sort.Slice(usages, func(i, j int) bool {
		return usages[i].DisplayText() < usages[j].DisplayText()
	})
	return usages
}

// isIdentByte reports whether b can be part of a host identifier.
func isIdentByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

// containsWord reports whether text contains needle with no identifier
// character immediately before or after the occurrence. "Container.Len"
// therefore does not match inside "Container.Length".
func containsWord(text, needle string) bool {
	return scanBounded(text, needle, true)
}

// containsQualified is containsWord for needles that begin with their own
// non-identifier delimiter (the "<<" bracket form); only the trailing
// boundary needs checking.
func containsQualified(text, needle string) bool {
	return scanBounded(text, needle, false)
}

func scanBounded(text, needle string, checkBefore bool) bool {
	if needle == "" {
		return false
	}
	for from := 0; ; {
		i := strings.Index(text[from:], needle)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(needle)
		okBefore := !checkBefore || start == 0 || !isIdentByte(text[start-1])
		okAfter := end == len(text) || !isIdentByte(text[end])
		if okBefore && okAfter {
			return true
		}
		from = start + 1
	}
}
