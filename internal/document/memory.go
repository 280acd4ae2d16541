// SPDX-License-Identifier: MPL-2.0

package document

import (
	"fmt"
	"sort"
)

type (
	// Memory is an in-memory Document. It backs snapshot files loaded from
	// disk and serves as the fake host document in tests.
	Memory struct {
		order      []string
		objects    map[string]*memoryObject
		recomputes int
	}

	// PropertySpec declares one named property when building an object.
	PropertySpec struct {
		Name  string
		Group string
	}

	// ObjectSpec declares one object when building a Memory document.
	// Members and Outputs are object names; dangling names are tolerated
	// and resolve to no children, matching the host's loose relations.
	ObjectSpec struct {
		Name       string
		Label      string
		Type       TypeID
		Properties []PropertySpec
		Bindings   []Binding
		Members    []string
		Outputs    []string
		// Cells maps cell coordinates to raw cell text.
		Cells map[string]string
		// Aliases maps alias names to cell coordinates.
		Aliases map[string]string
		// InvertAliasTable makes AliasTable report cell→alias, emulating
		// host versions that enumerate the table in the other direction.
		InvertAliasTable bool
	}

	memoryObject struct {
		doc        *Memory
		spec       ObjectSpec
		properties []string
		groups     map[string]string
		aliases    map[string]string
	}
)

// NewMemory returns an empty in-memory document.
func NewMemory() *Memory {
	return &Memory{objects: make(map[string]*memoryObject)}
}

// Add inserts an object described by spec. Adding a duplicate or unnamed
// object returns an error; the document is unchanged in that case.
func (m *Memory) Add(spec ObjectSpec) error {
	if spec.Name == "" {
		return fmt.Errorf("add object: name is required")
	}
	if _, exists := m.objects[spec.Name]; exists {
		return fmt.Errorf("add object: duplicate name %q", spec.Name)
	}

	obj := &memoryObject{
		doc:     m,
		spec:    spec,
		groups:  make(map[string]string),
		aliases: make(map[string]string),
	}
	for _, prop := range spec.Properties {
		obj.properties = append(obj.properties, prop.Name)
		if prop.Group != "" {
			obj.groups[prop.Name] = prop.Group
		}
	}
	for alias, cell := range spec.Aliases {
		obj.aliases[alias] = cell
	}

	m.order = append(m.order, spec.Name)
	m.objects[spec.Name] = obj
	return nil
}

// MustAdd is Add for test fixtures; it panics on error.
func (m *Memory) MustAdd(spec ObjectSpec) *Memory {
	if err := m.Add(spec); err != nil {
		panic(err)
	}
	return m
}

// Objects returns every object in insertion order.
func (m *Memory) Objects() []Object {
	objs := make([]Object, 0, len(m.order))
	for _, name := range m.order {
		objs = append(objs, m.objects[name])
	}
	return objs
}

// Object looks an object up by internal name.
func (m *Memory) Object(name string) (Object, bool) {
	obj, ok := m.objects[name]
	if !ok {
		return nil, false
	}
	return obj, true
}

// RemoveProperty deletes a named property from an object.
func (m *Memory) RemoveProperty(object, property string) error {
	obj, ok := m.objects[object]
	if !ok {
		return &NotFoundError{Kind: "object", Name: object}
	}
	for i, name := range obj.properties {
		if name == property {
			obj.properties = append(obj.properties[:i], obj.properties[i+1:]...)
			delete(obj.groups, property)
			return nil
		}
	}
	return &NotFoundError{Kind: "property", Name: object + "." + property}
}

// ClearAlias removes an alias binding from a sheet.
func (m *Memory) ClearAlias(sheet, alias string) error {
	obj, ok := m.objects[sheet]
	if !ok || obj.TypeID() != TypeSheet {
		return &NotFoundError{Kind: "sheet", Name: sheet}
	}
	if _, ok := obj.aliases[alias]; !ok {
		return &NotFoundError{Kind: "alias", Name: sheet + "." + alias}
	}
	delete(obj.aliases, alias)
	return nil
}

// Recompute counts recompute requests; Memory has no derived state.
func (m *Memory) Recompute() {
	m.recomputes++
}

// Recomputes reports how many times Recompute has been called.
func (m *Memory) Recomputes() int {
	return m.recomputes
}

// --- memoryObject ---

func (o *memoryObject) Name() string   { return o.spec.Name }
func (o *memoryObject) Label() string  { return o.spec.Label }
func (o *memoryObject) TypeID() TypeID { return o.spec.Type }

func (o *memoryObject) Properties() []string {
	props := make([]string, len(o.properties))
	copy(props, o.properties)
	return props
}

func (o *memoryObject) PropertyGroup(property string) string {
	return o.groups[property]
}

func (o *memoryObject) Bindings() []Binding {
	bindings := make([]Binding, len(o.spec.Bindings))
	copy(bindings, o.spec.Bindings)
	return bindings
}

func (o *memoryObject) Members() []Object {
	return o.resolve(o.spec.Members)
}

func (o *memoryObject) Outputs() []Object {
	return o.resolve(o.spec.Outputs)
}

func (o *memoryObject) resolve(names []string) []Object {
	var objs []Object
	for _, name := range names {
		if child, ok := o.doc.objects[name]; ok {
			objs = append(objs, child)
		}
	}
	return objs
}

// AliasTable returns the raw alias enumeration, inverted when the object
// stores the legacy cell-to-alias direction.
func (o *memoryObject) AliasTable() map[string]string {
	table := make(map[string]string, len(o.aliases))
	for alias, cell := range o.aliases {
		if o.spec.InvertAliasTable {
			table[cell] = alias
		} else {
			table[alias] = cell
		}
	}
	return table
}

// UsedCells returns the coordinates of non-empty cells, sorted for
// deterministic iteration.
func (o *memoryObject) UsedCells() []string {
	cells := make([]string, 0, len(o.spec.Cells))
	for cell, text := range o.spec.Cells {
		if text != "" {
			cells = append(cells, cell)
		}
	}
	sort.Strings(cells)
	return cells
}

func (o *memoryObject) CellText(cell string) string {
	return o.spec.Cells[cell]
}
