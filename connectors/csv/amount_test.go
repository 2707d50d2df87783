package csv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw    string
		value  float64
		status AmountStatus
	}{
		{"", 0, AmountEmpty},
		{"   ", 0, AmountEmpty},
		{"nan", 0, AmountEmpty},
		{"#DIV/0!", 0, AmountEmpty},
		{"$ 45,000", 45000, AmountParsed},
		{"$1,234.50", 1234.5, AmountParsed},
		{" 12 500", 12500, AmountParsed},
		{"-300", -300, AmountParsed},
		{"TBC", 0, AmountInvalid},
		{"$12k", 0, AmountInvalid},
	}
	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			got := ParseAmount(tc.raw)
			require.Equal(t, tc.status, got.Status)
			assert.InDelta(t, tc.value, got.Value, 1e-9)
			assert.Equal(t, tc.raw, got.Raw)
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1666.67", FormatAmount(25000.0/15))
	assert.Equal(t, "0", FormatAmount(0))
	assert.Equal(t, "45000", FormatAmount(45000))
}

func TestParseDate(t *testing.T) {
	for _, raw := range []string{"2025-01-10", "1/10/2025", "01/10/2025", "10-Jan-2025", "10 Jan 2025", "Jan 10, 2025", "2025-01-10T08:00:00Z", "2025-01-10 23:59:00"} {
		d, err := ParseDate(raw)
		require.NoError(t, err, raw)
		require.NotNil(t, d, raw)
		assert.Equal(t, "2025-01-10", d.Format(DateLayout), raw)
	}

	d, err := ParseDate(" ")
	require.NoError(t, err)
	assert.Nil(t, d)

	_, err = ParseDate("sometime in May")
	require.Error(t, err)
}
