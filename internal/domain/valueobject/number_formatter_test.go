package valueobject

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		format NumberFormat
		want   string
	}{
		{"currency groups thousands", 500000, NumberFormatCurrency, "500.000 €"},
		{"currency rounds to unit", 1234.56, NumberFormatCurrency, "1.235 €"},
		{"percentage", 25.4, NumberFormatPercentage, "25%"},
		{"negative percentage", -10, NumberFormatPercentage, "-10%"},
		{"decimal keeps one digit", 4.46, NumberFormatDecimal, "4,5"},
		{"number below thousand", 120, NumberFormatNumber, "120,0"},
		{"number thousands compacted", 10000, NumberFormatNumber, "10K"},
		{"number with fraction compacted", 1550, NumberFormatNumber, "1.6K"},
		{"number millions compacted", 2500000, NumberFormatNumber, "2.5M"},
		{"empty format means number", 7, "", "7,0"},
		{"NaN is zero", math.NaN(), NumberFormatNumber, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(tt.value, tt.format))
		})
	}
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "Gennaio", MonthName(1))
	assert.Equal(t, "Dicembre", MonthName(12))
	assert.Equal(t, "", MonthName(0))
	assert.Equal(t, "", MonthName(13))
}

func TestDepartmentIsValid(t *testing.T) {
	assert.True(t, Department("PM Company").IsValid())
	assert.False(t, Department("HR").IsValid())
	assert.Len(t, Departments(), 6)
}

func TestObjectiveTypeIsValid(t *testing.T) {
	for _, ot := range ObjectiveTypes() {
		assert.True(t, ot.IsValid(), string(ot))
	}
	assert.False(t, ObjectiveType("Trimestrale").IsValid())
}
