package agronomy

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPHAdvisory_NoReading(t *testing.T) {
	for _, raw := range []string{"", "  ", "0", "0.0"} {
		assert.Nil(t, PHAdvisory(raw, LocaleVI), "raw=%q", raw)
	}
}

func TestPHAdvisory_Unparsable(t *testing.T) {
	// A malformed reading yields no advisory rather than a misleading
	// "ideal" verdict.
	for _, raw := range []string{"abc", "4,5", "ph5"} {
		assert.Nil(t, PHAdvisory(raw, LocaleEN), "raw=%q", raw)
	}
}

func TestPHAdvisory_Bands(t *testing.T) {
	tests := []struct {
		raw      string
		severity Severity
	}{
		{"2.8", SeverityWarning},
		{"3.99", SeverityWarning},
		{"4.0", SeverityCaution},
		{"4.5", SeverityCaution},
		{"4.99", SeverityCaution},
		{"5.0", SeverityOK},
		{"6.2", SeverityOK},
		{"7.0", SeverityOK},
		{"7.01", SeverityWarning},
		{"8.5", SeverityWarning},
	}

	for _, tc := range tests {
		t.Run("ph "+tc.raw, func(t *testing.T) {
			advisory := PHAdvisory(tc.raw, LocaleVI)
			require.NotNil(t, advisory)
			assert.Equal(t, tc.severity, advisory.Severity)
			assert.NotEmpty(t, advisory.Message)
		})
	}
}

func TestPHAdvisory_DistinctBandMessages(t *testing.T) {
	// Each band must carry its own text within one locale.
	for _, loc := range []Locale{LocaleVI, LocaleEN, LocaleID} {
		seen := map[string]string{}
		for _, raw := range []string{"3.5", "4.5", "6.0", "8.0"} {
			advisory := PHAdvisory(raw, loc)
			require.NotNil(t, advisory)
			if prev, dup := seen[advisory.Message]; dup {
				t.Errorf("locale %s: ph %s and %s share a message", loc, prev, raw)
			}
			seen[advisory.Message] = raw
		}
	}
}

func TestPHAdvisory_WarningInEverySupportedLocale(t *testing.T) {
	for _, loc := range []Locale{LocaleVI, LocaleEN, LocaleID} {
		t.Run(fmt.Sprintf("locale %s", loc), func(t *testing.T) {
			low := PHAdvisory("3.2", loc)
			require.NotNil(t, low)
			assert.Equal(t, SeverityWarning, low.Severity)

			alkaline := PHAdvisory("7.8", loc)
			require.NotNil(t, alkaline)
			assert.Equal(t, SeverityWarning, alkaline.Severity)

			ideal := PHAdvisory("5.5", loc)
			require.NotNil(t, ideal)
			assert.Equal(t, SeverityOK, ideal.Severity)
		})
	}
}

func TestPHAdvisory_UnknownLocaleFallsBack(t *testing.T) {
	fallback := PHAdvisory("3.2", Locale("fr"))
	primary := PHAdvisory("3.2", LocaleVI)
	require.NotNil(t, fallback)
	require.NotNil(t, primary)
	assert.Equal(t, primary.Message, fallback.Message)
	assert.Equal(t, primary.Severity, fallback.Severity)
}
