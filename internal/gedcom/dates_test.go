package gedcom

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string // "2006-01-02", empty means nil expected
	}{
		{"full date", "12 JUN 1950", "1950-06-12"},
		{"full date mixed case", "2 mar 1925", "1925-03-02"},
		{"month and year", "JUN 1950", "1950-06-01"},
		{"year only", "1950", "1950-01-01"},
		{"iso date", "1950-06-12", "1950-06-12"},
		{"about qualifier", "ABT 1950", "1950-01-01"},
		{"estimated qualifier", "EST 12 JUN 1950", "1950-06-12"},
		{"before qualifier", "BEF 1900", "1900-01-01"},
		{"after qualifier", "AFT JUN 1910", "1910-06-01"},
		{"range takes first bound", "BET 1900 AND 1910", "1900-01-01"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"free text", "sometime in the spring", ""},
		{"nonsense month", "12 XYZ 1950", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDate(tt.input)
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Format("2006-01-02"))
		})
	}
}

func TestNormalizeDateNeverPanics(t *testing.T) {
	inputs := []string{"/", "@#$%", "BET AND", "32 JAN 1900", "JAN", "FROM TO"}
	for _, input := range inputs {
		assert.NotPanics(t, func() { NormalizeDate(input) }, "input %q", input)
	}
}

func TestNormalizeDateComponents(t *testing.T) {
	got := NormalizeDate("12 JUN 1950")
	require.NotNil(t, got)
	assert.Equal(t, time.June, got.Month())
	assert.Equal(t, 12, got.Day())
	assert.Equal(t, 1950, got.Year())
}
