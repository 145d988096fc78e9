package agronomy

import "strings"

// gcpCompliantSubstances is the reference list of pest-control substances
// approved under the program's Good Coffee Practice checklist. The list is
// fixed program data, not user-editable at runtime.
var gcpCompliantSubstances = []string{
	"Imidacloprid",
	"Abamectin",
	"Spinosad",
	"Chlorantraniliprole",
	"Azoxystrobin",
	"Propiconazole",
	"Hexaconazole",
	"Metalaxyl",
	"Copper Hydroxide",
	"Copper Oxychloride",
	"Sulfur",
	"Validamycin",
}

// IsCompliant reports whether a pesticide name is on the GCP compliance
// list. An empty name is compliant: absence of input is never flagged.
// Matching is case-insensitive substring containment, so a commercial label
// like "Imidacloprid 600 WP" matches the listed active ingredient. Unrelated
// names that happen to contain a listed substance also match; the check is
// advisory, not authoritative.
func IsCompliant(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return true
	}

	lowered := strings.ToLower(name)
	for _, substance := range gcpCompliantSubstances {
		if strings.Contains(lowered, strings.ToLower(substance)) {
			return true
		}
	}
	return false
}
