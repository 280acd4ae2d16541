// SPDX-License-Identifier: MPL-2.0

package audit

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedRef is the sentinel error wrapped by MalformedRefError.
	ErrMalformedRef = errors.New("malformed parent.child reference")
)

type (
	// ParentChildRef is the structured form of a "Parent.Child" identifier:
	// a variable inside its container, or an alias inside its sheet.
	ParentChildRef struct {
		Parent string
		Child  string
	}

	// MalformedRefError reports a "Parent.Child" string that is missing the
	// separator or has an empty side. It wraps ErrMalformedRef for
	// errors.Is compatibility.
	MalformedRefError struct {
		Text string
	}

	// ExpressionUsage is one discovered reference to a variable or alias.
	ExpressionUsage struct {
		// Owner is the internal name of the object holding the reference.
		Owner string
		// Property is the canonical "Object.Property" path of the binding
		// (or "Sheet.Cell" for a raw cell reference).
		Property string
		// Expression is the referencing expression text.
		Expression string
		// IsDefinition marks the binding that defines an alias, as opposed
		// to one that merely uses it. Definitions count as usages.
		IsDefinition bool
	}
)

// String returns the canonical "Parent.Child" text form.
func (r ParentChildRef) String() string {
	return r.Parent + "." + r.Child
}

// ParseRef parses a "Parent.Child" string. The child may itself contain
// dots; only the first separator splits. A missing separator or an empty
// side yields a MalformedRefError.
func ParseRef(text string) (ParentChildRef, error) {
	parent, child, ok := strings.Cut(text, ".")
	if !ok || parent == "" || child == "" {
		return ParentChildRef{}, &MalformedRefError{Text: text}
	}
	return ParentChildRef{Parent: parent, Child: child}, nil
}

// Error implements the error interface.
func (e *MalformedRefError) Error() string {
	return fmt.Sprintf("malformed parent.child reference %q", e.Text)
}

// Unwrap returns ErrMalformedRef.
func (e *MalformedRefError) Unwrap() error {
	return ErrMalformedRef
}

// Operator returns the infix operator shown between Property and Expression.
func (u ExpressionUsage) Operator() string {
	if u.IsDefinition {
		return ":="
	}
	return "="
}

// DisplayText returns the one-line rendering of the usage.
func (u ExpressionUsage) DisplayText() string {
	return u.Property + " " + u.Operator() + " " + u.Expression
}

// refTexts returns the canonical text form of each ref.
func refTexts(refs []ParentChildRef) []string {
	texts := make([]string, len(refs))
	for i, ref := range refs {
		texts[i] = ref.String()
	}
	return texts
}
