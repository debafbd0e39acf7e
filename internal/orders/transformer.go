// =============================================================================
// Purchase Order Generator - Item Name Rules
// =============================================================================
//
// Exports from different shop setups spell the same variant differently,
// e.g. "Rashguard – M" (en dash) versus "Rashguard - M". Name rules are
// configured rewrites applied to each item name before size extraction so
// such exports can be normalised without touching the size grammar.
//
// No rules are configured by default; an empty Transformer is the identity.
//
// =============================================================================

package orders

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ginjaninja78/po-generator/internal/config"
)

// =============================================================================
// TRANSFORMER
// =============================================================================

// Transformer applies an ordered list of name rules.
type Transformer struct {
	rules    []config.TransformationRule
	compiled []*regexp.Regexp
}

// NewTransformer creates a Transformer and compiles its regex rules.
//
// RETURNS:
//   - The transformer.
//   - An error naming the first rule that has an invalid pattern.
func NewTransformer(rules []config.TransformationRule) (*Transformer, error) {
	t := &Transformer{
		rules:    rules,
		compiled: make([]*regexp.Regexp, len(rules)),
	}

	for i, rule := range rules {
		if rule.Type != "regex_replace" {
			continue
		}
		re, err := regexp.Compile(rule.Find)
		if err != nil {
			return nil, fmt.Errorf("rule %d: invalid regex pattern: %w", i, err)
		}
		t.compiled[i] = re
	}

	return t, nil
}

// Transform applies every rule to value, in order.
// A nil Transformer returns value unchanged.
func (t *Transformer) Transform(value string) string {
	if t == nil {
		return value
	}

	result := value
	for i, rule := range t.rules {
		result = t.apply(i, rule, result)
	}
	return result
}

// apply applies a single rule. Unknown types are rejected by config
// validation, so they are a no-op here.
func (t *Transformer) apply(index int, rule config.TransformationRule, value string) string {
	switch rule.Type {
	case "trim":
		return strings.TrimSpace(value)

	case "uppercase":
		return strings.ToUpper(value)

	case "lowercase":
		return strings.ToLower(value)

	case "replace":
		// EXAMPLE:
		//   Input: "Rashguard – M"
		//   Action: replace "–" with "-"
		//   Output: "Rashguard - M"
		return strings.ReplaceAll(value, rule.Find, rule.Value)

	case "regex_replace":
		// EXAMPLE:
		//   Input: "Gi (Blue) - A2"
		//   Action: regex_replace "\s*\(Blue\)" with ""
		//   Output: "Gi - A2"
		return t.compiled[index].ReplaceAllString(value, rule.Value)

	case "normalize_whitespace":
		return strings.Join(strings.Fields(value), " ")

	default:
		return value
	}
}

// Apply rewrites the Name of every row and returns a new slice.
func (t *Transformer) Apply(rows []RawRow) []RawRow {
	if t == nil || len(t.rules) == 0 {
		return rows
	}

	out := make([]RawRow, len(rows))
	for i, row := range rows {
		out[i] = RawRow{Name: t.Transform(row.Name), Quantity: row.Quantity}
	}
	return out
}
