package agronomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCompliant_EmptyInput(t *testing.T) {
	for _, name := range []string{"", "   ", "\t"} {
		assert.True(t, IsCompliant(name), "empty input must never be flagged")
	}
}

func TestIsCompliant_ListedSubstances(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"exact match", "Imidacloprid"},
		{"commercial label with dosage", "Imidacloprid 600 WP"},
		{"lowercase", "imidacloprid"},
		{"uppercase", "ABAMECTIN"},
		{"surrounding text", "thuốc Spinosad loại mới"},
		{"two-word substance", "Copper Hydroxide 77WP"},
		{"mixed case label", "AzoxySTROBIN 250 SC"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, IsCompliant(tc.input))
		})
	}
}

func TestIsCompliant_UnlistedSubstances(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"banned organochlorine", "Endosulfan 35 EC"},
		{"arbitrary text", "homemade chili extract"},
		{"near miss", "Imidaclo"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, IsCompliant(tc.input))
		})
	}
}
