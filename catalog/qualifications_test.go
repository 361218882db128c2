package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQualificationRank(t *testing.T) {
	assert.Equal(t, 4, QualificationRank(QualificationPG))
	assert.Equal(t, 3, QualificationRank(QualificationBachelor))
	assert.Equal(t, 2, QualificationRank(Qualification12th))
	assert.Equal(t, 2, QualificationRank(QualificationDiploma))
	assert.Equal(t, 1, QualificationRank(Qualification10th))
	assert.Equal(t, 0, QualificationRank("B.Tech"))
}

func TestNextLowerQualification(t *testing.T) {
	assert.Equal(t, QualificationBachelor, NextLowerQualification(QualificationPG))
	// 12th and Diploma tie at rank 2; the option listed first wins.
	assert.Equal(t, Qualification12th, NextLowerQualification(QualificationBachelor))
	assert.Equal(t, Qualification10th, NextLowerQualification(Qualification12th))
	assert.Equal(t, Qualification10th, NextLowerQualification(QualificationDiploma))
	assert.Equal(t, "", NextLowerQualification(Qualification10th))
	assert.Equal(t, "", NextLowerQualification("unknown"))
}

func TestSecondaryOptions(t *testing.T) {
	assert.Equal(t, []string{Qualification12th, Qualification10th}, SecondaryOptions(QualificationDiploma))
	assert.Equal(t, []string{QualificationBachelor, Qualification12th, QualificationDiploma, Qualification10th},
		SecondaryOptions(QualificationPG))
	assert.Equal(t, []string{Qualification10th}, SecondaryOptions(Qualification12th))
	assert.Empty(t, SecondaryOptions(Qualification10th))
	assert.Nil(t, SecondaryOptions("unknown"))
}

func TestIsKnownQualification(t *testing.T) {
	for _, option := range QualificationOptions {
		assert.True(t, IsKnownQualification(option))
	}
	assert.False(t, IsKnownQualification("Masters"))
}
