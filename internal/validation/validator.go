// =============================================================================
// Purchase Order Generator - Validation Engine
// =============================================================================
//
// This module checks a purchase order request before it is composed. It
// catches the mistakes the order form invites:
//   - No products selected
//   - Placeholder values left in the vendor or ship-to blocks
//   - Blank contact names
//   - Phone numbers with characters that are not part of a phone number
//   - Products whose quantities sum to zero
//   - A logo path that points nowhere
//
// ERROR HANDLING:
//   - Problems are collected, not returned immediately
//   - Each problem names the field and the offending value
//   - Only an empty product selection is fatal; everything else is a warning
//     that the caller may log and continue past
//
// =============================================================================

package validation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ginjaninja78/po-generator/internal/composer"
	"github.com/ginjaninja78/po-generator/internal/settings"
	"github.com/ginjaninja78/po-generator/pkg/utils"
)

// Severity levels.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// =============================================================================
// VALIDATION ERROR TYPES
// =============================================================================

// ValidationError represents a single validation problem.
type ValidationError struct {
	// Severity indicates the severity of the problem.
	// "error" = fatal, generation should stop
	// "warning" = non-fatal, generation can continue
	Severity string

	// Field is the dotted name of the field, e.g. "vendor.name".
	Field string

	// Value is the value that failed validation.
	Value string

	// Rule is the validation rule that was violated.
	Rule string

	// Message is a human-readable message.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] Field '%s': %s (value: '%s')",
		strings.ToUpper(e.Severity),
		e.Field,
		e.Message,
		e.Value,
	)
}

// =============================================================================
// VALIDATION RESULT
// =============================================================================

// ValidationResult contains the results of validation.
type ValidationResult struct {
	// IsValid is true if there are no fatal errors.
	IsValid bool

	// Errors contains all validation problems (including warnings).
	Errors []*ValidationError

	// ErrorCount is the number of fatal errors.
	ErrorCount int

	// WarningCount is the number of warnings.
	WarningCount int
}

// Warnings returns only the non-fatal problems.
func (r *ValidationResult) Warnings() []*ValidationError {
	var warnings []*ValidationError
	for _, err := range r.Errors {
		if err.Severity == SeverityWarning {
			warnings = append(warnings, err)
		}
	}
	return warnings
}

// =============================================================================
// VALIDATOR
// =============================================================================

// ValidationOptions contains options for validation.
type ValidationOptions struct {
	// TreatWarningsAsErrors makes any warning invalidate the request.
	// Default: false
	TreatWarningsAsErrors bool

	// CheckLogoFile verifies that a configured logo path exists.
	// Default: true
	CheckLogoFile bool
}

// DefaultValidationOptions returns the default validation options.
func DefaultValidationOptions() ValidationOptions {
	return ValidationOptions{
		TreatWarningsAsErrors: false,
		CheckLogoFile:         true,
	}
}

// Validator checks purchase order requests.
type Validator struct {
	options ValidationOptions
}

// NewValidator creates a new Validator with default options.
func NewValidator() *Validator {
	return &Validator{options: DefaultValidationOptions()}
}

// NewValidatorWithOptions creates a new Validator with custom options.
func NewValidatorWithOptions(options ValidationOptions) *Validator {
	return &Validator{options: options}
}

// =============================================================================
// MAIN VALIDATION FUNCTION
// =============================================================================

// Validate checks a request with default options and returns its problems.
func Validate(req composer.Request) []*ValidationError {
	return NewValidator().ValidateRequest(req).Errors
}

// ValidateRequest checks a request and returns a detailed result.
func (v *Validator) ValidateRequest(req composer.Request) *ValidationResult {
	var problems []*ValidationError

	problems = append(problems, v.validateProducts(req)...)
	problems = append(problems, v.validateContacts(req)...)
	problems = append(problems, v.validateLogo(req.LogoPath)...)

	result := &ValidationResult{
		IsValid: true,
		Errors:  make([]*ValidationError, 0, len(problems)),
	}
	for _, err := range problems {
		result.Errors = append(result.Errors, err)
		if err.Severity == SeverityError {
			result.ErrorCount++
			result.IsValid = false
		} else {
			result.WarningCount++
			if v.options.TreatWarningsAsErrors {
				result.IsValid = false
			}
		}
	}

	return result
}

func (v *Validator) validateProducts(req composer.Request) []*ValidationError {
	if len(req.Products) == 0 {
		return []*ValidationError{{
			Severity: SeverityError,
			Field:    "products",
			Rule:     "required",
			Message:  "no products selected",
		}}
	}

	var errors []*ValidationError
	for _, p := range req.Products {
		if p.Total() == 0 {
			errors = append(errors, &ValidationError{
				Severity: SeverityWarning,
				Field:    "products",
				Value:    p.Name,
				Rule:     "positive_total",
				Message:  "product has no units ordered",
			})
		}
	}
	return errors
}

func (v *Validator) validateContacts(req composer.Request) []*ValidationError {
	var errors []*ValidationError

	errors = appendIf(errors, strings.TrimSpace(req.Issuer.Name) == "", &ValidationError{
		Severity: SeverityWarning, Field: "company.name", Rule: "required",
		Message: "issuing company name is blank",
	})

	vendorName := strings.TrimSpace(req.Vendor.Name)
	errors = appendIf(errors, vendorName == "", &ValidationError{
		Severity: SeverityWarning, Field: "vendor.name", Rule: "required",
		Message: "vendor name is blank",
	})
	errors = appendIf(errors, vendorName == settings.VendorPlaceholder, &ValidationError{
		Severity: SeverityWarning, Field: "vendor.name", Value: vendorName, Rule: "placeholder",
		Message: "vendor name is still the placeholder",
	})

	attn := strings.TrimSpace(req.ShipTo.Attn)
	errors = appendIf(errors, attn == settings.AttnPlaceholder, &ValidationError{
		Severity: SeverityWarning, Field: "ship_to.attn", Value: attn, Rule: "placeholder",
		Message: "ship-to attention is still the placeholder",
	})

	phones := []struct{ field, value string }{
		{"company.phone", req.Issuer.Phone},
		{"company.fax", req.Issuer.Fax},
		{"vendor.phone", req.Vendor.Phone},
		{"ship_to.phone", req.ShipTo.Phone},
	}
	for _, p := range phones {
		if msg := validatePhone(p.value); msg != "" {
			errors = append(errors, &ValidationError{
				Severity: SeverityWarning, Field: p.field, Value: p.value, Rule: "phone",
				Message: msg,
			})
		}
	}

	return errors
}

func (v *Validator) validateLogo(path string) []*ValidationError {
	if !v.options.CheckLogoFile || path == "" {
		return nil
	}
	if !utils.FileExists(path) {
		return []*ValidationError{{
			Severity: SeverityWarning, Field: "logo_path", Value: path, Rule: "exists",
			Message: "logo file not found, a blank space is used instead",
		}}
	}
	if utils.IsDir(path) {
		return []*ValidationError{{
			Severity: SeverityWarning, Field: "logo_path", Value: path, Rule: "exists",
			Message: "logo path is a directory",
		}}
	}
	return nil
}

// =============================================================================
// FIELD VALIDATORS
// =============================================================================

// validatePhone allows digits, spaces and the usual phone punctuation.
// Blank values pass.
func validatePhone(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	digits := 0
	for _, r := range value {
		switch {
		case unicode.IsDigit(r):
			digits++
		case strings.ContainsRune(" -().+/x", r):
		default:
			return fmt.Sprintf("unexpected character '%c' in phone number", r)
		}
	}
	if digits == 0 {
		return "phone number has no digits"
	}
	return ""
}

func appendIf(errors []*ValidationError, cond bool, err *ValidationError) []*ValidationError {
	if cond {
		return append(errors, err)
	}
	return errors
}

// =============================================================================
// OUTPUT
// =============================================================================

// FormatErrors formats validation problems for display or logging.
//
// PARAMETERS:
//   - errors: The validation problems to format.
//
// RETURNS:
//   - A formatted string containing all problems.
func FormatErrors(errors []*ValidationError) string {
	if len(errors) == 0 {
		return "No validation errors."
	}

	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("Validation completed with %d problem(s):\n\n", len(errors)))

	for i, err := range errors {
		builder.WriteString(fmt.Sprintf("%d. %s\n", i+1, err.Error()))
	}

	return builder.String()
}
