// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// DefaultReportWidth is the word-wrap width for rendered reports.
	DefaultReportWidth = 100
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidDocumentPath is returned when a DocumentPath value is whitespace-only.
	ErrInvalidDocumentPath = errors.New("invalid document path")
	// ErrInvalidReportWidth is returned when the report width is out of range.
	ErrInvalidReportWidth = errors.New("invalid report width")
	// ErrInvalidUIConfig is the sentinel error wrapped by InvalidUIConfigError.
	ErrInvalidUIConfig = errors.New("invalid UI config")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// DocumentPath represents a filesystem path to a document snapshot file.
	// The zero value ("") is valid and means "resolve at the command line".
	// Non-zero values must not be whitespace-only.
	DocumentPath string

	// InvalidDocumentPathError is returned when a DocumentPath value is
	// non-empty but whitespace-only. It wraps ErrInvalidDocumentPath for errors.Is().
	InvalidDocumentPathError struct {
		Value DocumentPath
	}

	// InvalidReportWidthError is returned when the report width is out of range.
	// It wraps ErrInvalidReportWidth for errors.Is() compatibility.
	InvalidReportWidthError struct {
		Value int
	}

	// InvalidUIConfigError is returned when a UIConfig has invalid fields.
	// It wraps ErrInvalidUIConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidUIConfigError struct {
		FieldErrors []error
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// Document is the default snapshot file audited when --doc is not given.
		Document DocumentPath `json:"document" mapstructure:"document"`
		// ExcludeClones hides clone-derived containers and sheets by default.
		ExcludeClones bool `json:"exclude_clones" mapstructure:"exclude_clones"`
		// UI configures the user interface
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// UIConfig configures user interface behavior.
	UIConfig struct {
		// ColorScheme controls terminal colors: "auto", "dark", or "light"
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables detailed logging output
		Verbose bool `json:"verbose" mapstructure:"verbose"`
		// ReportWidth sets the word-wrap width for rendered reports
		ReportWidth int `json:"report_width" mapstructure:"report_width"`
	}
)

// --- ColorScheme ---

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error {
	return ErrInvalidColorScheme
}

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined color schemes,
// and a list of validation errors if it is not.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// --- DocumentPath ---

// Error implements the error interface for InvalidDocumentPathError.
func (e *InvalidDocumentPathError) Error() string {
	return fmt.Sprintf("invalid document path %q (must not be whitespace-only)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidDocumentPathError) Unwrap() error {
	return ErrInvalidDocumentPath
}

// String returns the string representation of the DocumentPath.
func (p DocumentPath) String() string { return string(p) }

// IsValid returns whether the DocumentPath is empty or a usable path,
// and a list of validation errors if it is not.
func (p DocumentPath) IsValid() (bool, []error) {
	if p != "" && strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidDocumentPathError{Value: p}}
	}
	return true, nil
}

// --- report width ---

// Error implements the error interface for InvalidReportWidthError.
func (e *InvalidReportWidthError) Error() string {
	return fmt.Sprintf("invalid report width %d (valid: 40 to 200)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidReportWidthError) Unwrap() error {
	return ErrInvalidReportWidth
}

// --- UIConfig ---

// Error implements the error interface for InvalidUIConfigError.
func (e *InvalidUIConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid UI config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidUIConfigError) Unwrap() error {
	return ErrInvalidUIConfig
}

// IsValid returns whether every UIConfig field is valid, and a list of
// field-level validation errors if any are not.
func (c UIConfig) IsValid() (bool, []error) {
	var fieldErrors []error
	if ok, errs := c.ColorScheme.IsValid(); !ok {
		fieldErrors = append(fieldErrors, errs...)
	}
	if c.ReportWidth < 40 || c.ReportWidth > 200 {
		fieldErrors = append(fieldErrors, &InvalidReportWidthError{Value: c.ReportWidth})
	}
	if len(fieldErrors) > 0 {
		return false, []error{&InvalidUIConfigError{FieldErrors: fieldErrors}}
	}
	return true, nil
}

// --- Config ---

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// IsValid returns whether every Config field is valid, and a list of
// field-level validation errors if any are not.
func (c *Config) IsValid() (bool, []error) {
	var fieldErrors []error
	if ok, errs := c.Document.IsValid(); !ok {
		fieldErrors = append(fieldErrors, errs...)
	}
	if ok, errs := c.UI.IsValid(); !ok {
		fieldErrors = append(fieldErrors, errs...)
	}
	if len(fieldErrors) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: fieldErrors}}
	}
	return true, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Document:      "", // Resolved from --doc or the working directory
		ExcludeClones: true,
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
			ReportWidth: DefaultReportWidth,
		},
	}
}
