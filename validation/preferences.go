package validation

import "karkhana/catalog"

// MaxSelections caps every preference multi-select.
const MaxSelections = 3

// ClampSelections enforces the selection cap by keeping the most recent
// choices: the oldest ones are evicted first.
func ClampSelections(values []string) []string {
	if len(values) <= MaxSelections {
		return values
	}
	return values[len(values)-MaxSelections:]
}

// FilterRoles drops roles not offered by any of the chosen industries,
// preserving the selection order of the survivors. Industries arrive on the
// wire as stored codes ("TEXTILE"), while the role catalog is keyed by
// display names; either form is accepted here.
func FilterRoles(industries, roles []string) []string {
	normalized := make([]string, 0, len(industries))
	for _, industry := range industries {
		if catalog.IsKnownIndustry(industry) {
			normalized = append(normalized, industry)
		} else if name := catalog.IndustryFromCode(industry); name != "" {
			normalized = append(normalized, name)
		}
	}
	available := make(map[string]struct{})
	for _, role := range catalog.RolesForAll(normalized) {
		available[role] = struct{}{}
	}
	var out []string
	for _, role := range roles {
		if _, ok := available[role]; ok {
			out = append(out, role)
		}
	}
	return out
}
