// =============================================================================
// Purchase Order Generator - Size Extraction
// =============================================================================
//
// Shop exports encode the variant size in the item name, e.g.
//
//   "Competition Gi - A2"      -> base "Competition Gi", size "A2"
//   "Rashguard / XL"           -> base "Rashguard",      size "XL"
//   "Board Shorts - 2XL"       -> base "Board Shorts",   size "2XL"
//   "Belt"                     -> base "Belt",           no size
//
// The grammar is deliberately small and finite so false positives can be
// enumerated: a name that really ends in " - M" will be read as sized.
// Size letters must be uppercase.
//
// =============================================================================

package orders

import (
	"regexp"
	"strings"
)

// NoSize is the size bucket for items whose name carries no size suffix.
// It can never be produced by the size grammar.
const NoSize = "no size"

// sizePatterns are tried in order; the first match wins.
var sizePatterns = []*regexp.Regexp{
	// Apparel sizes after a dash: S, M, L, XL, XXL, 2XL, 3XL, ...
	regexp.MustCompile(`\s*-\s*(\d*X*[SML]+)\s*$`),
	// Apparel sizes after a slash.
	regexp.MustCompile(`\s*/\s*(\d*X*[SML]+)\s*$`),
	// Gi sizes: A0..A9 with optional long/heavy suffix (A2L, A3H).
	regexp.MustCompile(`\s*[-/]\s*(A\d[LH]?)\s*$`),
}

// ExtractSize splits an item name into its base name and size token.
//
// PARAMETERS:
//   - itemName: The item name as it appears in the export (already trimmed).
//
// RETURNS:
//   - base: The name with the size suffix removed and whitespace trimmed,
//     or itemName unchanged when no size was found.
//   - size: The size token, or "" when no size was found.
//   - ok: Whether a size was found.
func ExtractSize(itemName string) (base string, size string, ok bool) {
	for _, pattern := range sizePatterns {
		loc := pattern.FindStringSubmatchIndex(itemName)
		if loc == nil {
			continue
		}

		size = itemName[loc[2]:loc[3]]
		base = strings.TrimSpace(itemName[:loc[0]])
		return base, size, true
	}

	return itemName, "", false
}
