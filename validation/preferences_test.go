package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampSelections(t *testing.T) {
	assert.Equal(t, []string{"b", "c", "d"}, ClampSelections([]string{"a", "b", "c", "d"}))
	assert.Equal(t, []string{"a", "b", "c"}, ClampSelections([]string{"a", "b", "c"}))
	assert.Equal(t, []string{"a"}, ClampSelections([]string{"a"}))
	assert.Empty(t, ClampSelections(nil))
}

func TestFilterRoles(t *testing.T) {
	industries := []string{"CNC (Computer Numerical Control)"}
	roles := FilterRoles(industries, []string{"CNC Operator", "Weaver", "CNC Setter"})
	assert.Equal(t, []string{"CNC Operator", "CNC Setter"}, roles)

	// No chosen industries means no roles survive.
	assert.Empty(t, FilterRoles(nil, []string{"Weaver"}))
}

func TestFilterRolesAcceptsStoredIndustryCodes(t *testing.T) {
	// Clients submit industries as stored codes, not display names.
	roles := FilterRoles([]string{"TEXTILE"}, []string{"Weaver", "CNC Operator", "Spinner"})
	assert.Equal(t, []string{"Weaver", "Spinner"}, roles)

	roles = FilterRoles([]string{"CNC", "Printing Industry"}, []string{"Press Operator", "CNC Setter"})
	assert.Equal(t, []string{"Press Operator", "CNC Setter"}, roles)

	assert.Empty(t, FilterRoles([]string{"UNKNOWN_CODE"}, []string{"Weaver"}))
}
