package shared

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToFloat64(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  float64
	}{
		{"json number", 85.5, 85.5},
		{"int", 85, 85},
		{"numeric string", "92", 92},
		{"decimal string", "92.5", 92.5},
		{"json.Number", json.Number("70"), 70},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ToFloat64(tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("rejects non-numeric input", func(t *testing.T) {
		_, err := ToFloat64("abc")
		assert.Error(t, err)

		_, err = ToFloat64([]string{"1"})
		assert.Error(t, err)
	})
}

func TestToInt64(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  int64
	}{
		{"json number", 42.0, 42},
		{"truncates fractional", 42.9, 42},
		{"numeric string", "42", 42},
		{"fractional string", "42.9", 42},
		{"json.Number", json.Number("42"), 42},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ToInt64(tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("rejects non-numeric input", func(t *testing.T) {
		_, err := ToInt64("forty-two")
		assert.Error(t, err)

		_, err = ToInt64(nil)
		assert.Error(t, err)
	})
}

func TestToTime(t *testing.T) {
	t.Run("plain date", func(t *testing.T) {
		got, err := ToTime("2025-03-01")
		require.NoError(t, err)
		assert.Equal(t, 2025, got.Year())
		assert.Equal(t, time.March, got.Month())
	})

	t.Run("rfc3339", func(t *testing.T) {
		got, err := ToTime("2025-03-01T09:30:00Z")
		require.NoError(t, err)
		assert.Equal(t, 9, got.Hour())
	})

	t.Run("slash layout", func(t *testing.T) {
		got, err := ToTime("03/01/2025")
		require.NoError(t, err)
		assert.Equal(t, time.March, got.Month())
	})

	t.Run("epoch milliseconds", func(t *testing.T) {
		want := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
		got, err := ToTime(float64(want.UnixMilli()))
		require.NoError(t, err)
		assert.True(t, got.Equal(want))
	})

	t.Run("rejects unparseable input", func(t *testing.T) {
		_, err := ToTime("next tuesday")
		assert.Error(t, err)
	})
}
