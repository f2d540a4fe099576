package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want float64
	}{
		{"12.5", 12.5},
		{" 7 ", 7},
		{"$1,250.75", 1250.75},
		{"-3", -3},
		{"", 0},
		{"abc", 0},
		{"NaN", 0},
		{"Inf", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseNumber(tt.in), "input %q", tt.in)
	}
}

func TestParseInt(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 4, ParseInt("4"))
	assert.Equal(t, 4, ParseInt("4.9"))
	assert.Equal(t, 0, ParseInt("four"))
	assert.Equal(t, 0, ParseInt("1e20"))
}

func TestParseEnums(t *testing.T) {
	t.Parallel()

	r, err := ParseResult("win")
	require.NoError(t, err)
	assert.Equal(t, Win, r)

	_, err = ParseResult("draw")
	assert.Error(t, err)

	c, err := ParseCategory(" mindset ")
	require.NoError(t, err)
	assert.Equal(t, Mindset, c)

	_, err = ParseCategory("cooking")
	assert.Error(t, err)
}
