package catalog

// IndustryOptions is the ordered industry list offered in the forms.
var IndustryOptions = []string{
	"Textile Industry",
	"CNC (Computer Numerical Control)",
	"Packaging Industry",
	"Auto Parts Industry",
	"Printing Industry",
}

// PreferredLocationOptions is the ordered location list for job preferences.
var PreferredLocationOptions = []string{
	"Delhi NCR",
	"Haryana",
	"Rajasthan",
	"Uttar Pradesh (UP)",
	"Uttarakhand",
}

// industryCodes maps display names to the stored industry codes.
var industryCodes = map[string]string{
	"Textile Industry":                 "TEXTILE",
	"CNC (Computer Numerical Control)": "CNC",
	"Packaging Industry":               "PACKAGING",
	"Auto Parts Industry":              "AUTO_PARTS",
	"Printing Industry":                "PRINTING",
}

// IndustryCode returns the stored code for a display name, "" if unknown.
func IndustryCode(displayName string) string {
	return industryCodes[displayName]
}

var industryNamesByCode = func() map[string]string {
	m := make(map[string]string, len(industryCodes))
	for name, code := range industryCodes {
		m[code] = name
	}
	return m
}()

// IndustryFromCode returns the display name for a stored industry code,
// "" if unknown. Preference payloads carry codes, not display names.
func IndustryFromCode(code string) string {
	return industryNamesByCode[code]
}

var rolesByIndustry = map[string][]string{
	"Textile Industry": {
		"Spinner",
		"Weaver",
		"Knitter",
		"Dyer",
		"Cutter",
		"Sewer/Stitcher",
		"Quality Control Inspector",
		"Machine Operator",
		"Textile Technician",
		"Pattern Maker",
	},
	"CNC (Computer Numerical Control)": {
		"CNC Operator",
		"CNC Programmer",
		"CNC Setter",
		"CNC Machinist",
		"CNC Lathe Operator",
		"CNC Maintenance Technician",
	},
	"Packaging Industry": {
		"Packaging Machine Operator",
		"Production Line Leader",
		"Quality Control Inspector",
		"Inventory Clerk",
		"Maintenance Technician",
		"Order Picker",
		"Blister Pack Technician",
		"Packaging Designer",
		"Production Supervisor",
		"Process Engineer",
	},
	"Auto Parts Industry": {
		"Assembly Line Worker",
		"Machine Operator",
		"Quality Control Inspector",
		"Welder",
		"CNC Machinist",
		"Injection Molding Technician",
		"Press Operator",
		"Fabricator",
		"Paint Technician",
		"Maintenance Technician",
	},
	"Printing Industry": {
		"Press Operator",
		"Prepress Technician",
		"Bindery Worker",
		"Digital Printer Operator",
		"Screen Printer",
		"Flexographic Printer",
		"Lithographic Printer",
		"Gravure Printer",
		"Finishing Technician",
		"Quality Control Inspector",
	},
}

// RolesFor returns a copy of the role list for an industry. Unknown
// industries, including "Other", yield an empty list.
func RolesFor(industry string) []string {
	roles, ok := rolesByIndustry[industry]
	if !ok {
		return nil
	}
	out := make([]string, len(roles))
	copy(out, roles)
	return out
}

// RolesForAll unions the role lists of the given industries, preserving
// first-seen order across industries and dropping duplicates.
func RolesForAll(industries []string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, industry := range industries {
		for _, role := range rolesByIndustry[industry] {
			if _, dup := seen[role]; dup {
				continue
			}
			seen[role] = struct{}{}
			out = append(out, role)
		}
	}
	return out
}

// IsKnownIndustry reports whether industry has a role catalog.
func IsKnownIndustry(industry string) bool {
	_, ok := rolesByIndustry[industry]
	return ok
}
