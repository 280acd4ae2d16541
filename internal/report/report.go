// SPDX-License-Identifier: MPL-2.0

package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"varsweep/internal/audit"
)

// Removal is the input for a removal report: the batch outcome plus the
// reference listing gathered for the selection before removal.
type Removal struct {
	// Title names the audited domain, e.g. "Variables" or "Aliases".
	Title string
	// Update is the removal outcome with the recomputed child view.
	Update audit.RemovalUpdate
	// Usages are the references discovered for the selection, shown for
	// items that were kept because they are still in use.
	Usages []audit.ExpressionUsage
}

// Markdown builds the markdown source of the removal report.
func (r Removal) Markdown() string {
	var sb strings.Builder

	title := r.Title
	if title == "" {
		title = "Removal"
	}
	fmt.Fprintf(&sb, "# %s Report\n\n", title)

	result := r.Update.Result
	fmt.Fprintf(&sb, "%d selected, %d removed, %d still used, %d failed\n",
		result.Len(), len(result.Removed), len(result.StillUsed), len(result.Failed))

	if len(result.Removed) > 0 {
		sb.WriteString("\n## Removed\n\n")
		for _, ref := range result.Removed {
			fmt.Fprintf(&sb, "- `%s`\n", ref)
		}
	}

	if len(result.StillUsed) > 0 {
		sb.WriteString("\n## Still Used\n\n")
		for _, ref := range result.StillUsed {
			fmt.Fprintf(&sb, "- `%s`\n", ref)
			for _, usage := range r.usagesOf(ref) {
				fmt.Fprintf(&sb, "  - `%s`\n", usage.DisplayText())
			}
		}
	}

	if len(result.Failed) > 0 {
		sb.WriteString("\n## Failed\n\n")
		for _, failure := range result.Failed {
			fmt.Fprintf(&sb, "- `%s`: %s\n", failure.Ref, failure.Err)
		}
	}

	if len(r.Update.ChildItems) > 0 {
		sb.WriteString("\n## Remaining Items\n\n")
		for _, item := range r.Update.ChildItems {
			fmt.Fprintf(&sb, "- `%s`\n", item)
		}
	}

	return sb.String()
}

// usagesOf filters the gathered usages down to one referenced child. The
// usage Property carries the referencing binding, so matching goes through
// the child's leaf name inside the expression owner listing built by the
// audit layer.
func (r Removal) usagesOf(ref string) []audit.ExpressionUsage {
	parsed, err := audit.ParseRef(ref)
	if err != nil {
		return nil
	}

	var matched []audit.ExpressionUsage
	for _, usage := range r.Usages {
		if usageMentions(usage, parsed) {
			matched = append(matched, usage)
		}
	}
	return matched
}

// usageMentions reports whether a usage expression references the child,
// in qualified or bare form.
func usageMentions(usage audit.ExpressionUsage, ref audit.ParentChildRef) bool {
	expr := usage.Expression
	if strings.Contains(expr, ref.String()) ||
		strings.Contains(expr, "<<"+ref.Parent+">>."+ref.Child) {
		return true
	}
	// Bare references only count inside the owning parent itself.
	return usage.Owner == ref.Parent && strings.Contains(expr, ref.Child)
}

// Render renders the report markdown for the terminal at the given wrap
// width. A non-positive width disables wrapping.
func (r Removal) Render(width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}

	renderer, err := newRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("failed to build report renderer: %w", err)
	}

	out, err := renderer.Render(r.Markdown())
	if err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return out, nil
}

// terminalRenderer abstracts glamour's renderer for tests.
type terminalRenderer interface {
	Render(in string) (string, error)
}

// newRenderer is overridable in tests.
var newRenderer = func(opts ...glamour.TermRendererOption) (terminalRenderer, error) {
	return glamour.NewTermRenderer(opts...)
}
