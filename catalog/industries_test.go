package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRolesFor(t *testing.T) {
	roles := RolesFor("Textile Industry")
	assert.Contains(t, roles, "Weaver")

	// Returned slice is a copy; mutating it must not leak into the catalog.
	roles[0] = "mutated"
	assert.Equal(t, "Spinner", RolesFor("Textile Industry")[0])

	assert.Nil(t, RolesFor("Other"))
	assert.Nil(t, RolesFor("Aerospace"))
}

func TestRolesForAll(t *testing.T) {
	roles := RolesForAll([]string{"Packaging Industry", "Printing Industry"})

	// Quality Control Inspector appears in both lists but only once here,
	// at its first-seen position.
	count := 0
	for _, role := range roles {
		if role == "Quality Control Inspector" {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, "Packaging Machine Operator", roles[0])
	assert.Contains(t, roles, "Press Operator")

	assert.Empty(t, RolesForAll(nil))
	assert.Empty(t, RolesForAll([]string{"Other"}))
}

func TestIndustryCode(t *testing.T) {
	assert.Equal(t, "CNC", IndustryCode("CNC (Computer Numerical Control)"))
	assert.Equal(t, "", IndustryCode("Other"))
}

func TestIndustryFromCode(t *testing.T) {
	assert.Equal(t, "Textile Industry", IndustryFromCode("TEXTILE"))
	assert.Equal(t, "Auto Parts Industry", IndustryFromCode("AUTO_PARTS"))
	assert.Equal(t, "", IndustryFromCode("Textile Industry"))
	assert.Equal(t, "", IndustryFromCode("OTHER"))
}
