// SPDX-License-Identifier: MPL-2.0

// Package document defines the minimal read/write capability that varsweep
// needs from a host document: object iteration and lookup, bound-expression
// tables, container/group relations, sheet cells and aliases, and the two
// mutations (remove a property, clear an alias).
//
// The host object model is loosely typed; this package narrows it to the
// operations the audit engine actually uses. Memory is the only in-tree
// implementation and doubles as the test fake.
package document

import (
	"errors"
	"fmt"
)

const (
	// TypeVarSet tags objects that hold named user variables as properties.
	TypeVarSet TypeID = "App::VarSet"
	// TypeSheet tags spreadsheet objects that hold cells and cell aliases.
	TypeSheet TypeID = "Spreadsheet::Sheet"
	// TypeGroup tags plain container objects (including clone groups).
	TypeGroup TypeID = "App::DocumentObjectGroup"

	// DefaultPropertyGroup is the group assigned to properties that carry
	// no explicit group in the host document.
	DefaultPropertyGroup = "Base"
)

var (
	// ErrNotFound is the sentinel error wrapped by NotFoundError.
	ErrNotFound = errors.New("not found in document")
)

type (
	// TypeID is the host's object type tag.
	TypeID string

	// Binding is one entry of an object's bound-expression table: a bound
	// property path (which may carry a leading dot or a sub-element
	// qualifier) and the expression text the host evaluates for it.
	Binding struct {
		Target     string
		Expression string
	}

	// Object is a single document object.
	Object interface {
		// Name returns the internal, unique object name.
		Name() string
		// Label returns the user-visible label, possibly empty.
		Label() string
		// TypeID returns the host type tag.
		TypeID() TypeID
		// Properties returns the names of all properties on the object,
		// built-in host properties included.
		Properties() []string
		// PropertyGroup returns the group a property is organized under,
		// or "" when the host defines none.
		PropertyGroup(property string) string
		// Bindings returns the object's bound-expression table.
		Bindings() []Binding
		// Members returns the declared membership relation (group children).
		Members() []Object
		// Outputs returns the dependency-output relation.
		Outputs() []Object
	}

	// Sheet extends Object with spreadsheet reads. Objects tagged TypeSheet
	// are expected to implement it.
	Sheet interface {
		Object
		// AliasTable returns the raw alias enumeration in whichever
		// direction the host version provides (alias→cell or cell→alias).
		AliasTable() map[string]string
		// UsedCells returns the coordinates of all non-empty cells.
		UsedCells() []string
		// CellText returns the raw text content of a cell, "" when empty.
		CellText(cell string) string
	}

	// Document is the full consumed capability.
	Document interface {
		// Objects returns every object in the document.
		Objects() []Object
		// Object looks an object up by internal name.
		Object(name string) (Object, bool)
		// RemoveProperty deletes a named property from an object.
		// Returns a NotFoundError when the object or property is gone.
		RemoveProperty(object, property string) error
		// ClearAlias removes an alias binding from a sheet.
		// Returns a NotFoundError when the sheet or alias is gone.
		ClearAlias(sheet, alias string) error
		// Recompute refreshes derived document state after mutations.
		Recompute()
	}

	// NotFoundError reports an entity that vanished between listing and
	// mutation. It wraps ErrNotFound for errors.Is compatibility.
	NotFoundError struct {
		Kind string // "object", "property", "sheet", "alias"
		Name string
	}
)

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found in document", e.Kind, e.Name)
}

// Unwrap returns ErrNotFound.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// AsSheet narrows an Object to Sheet when its type tag and dynamic type agree.
func AsSheet(obj Object) (Sheet, bool) {
	if obj == nil || obj.TypeID() != TypeSheet {
		return nil, false
	}
	sheet, ok := obj.(Sheet)
	return sheet, ok
}
