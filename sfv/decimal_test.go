package sfv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalMagnitudeBound(t *testing.T) {
	_, err := NewDecimal(999_999_999_999_999, -3)
	require.NoError(t, err)

	_, err = NewDecimal(1_000_000_000_000_000, -3)
	require.Error(t, err)
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, ErrInvalidIntegerOrDecimal, kind)
}

func TestDecimalExponentOutOfRange(t *testing.T) {
	_, err := NewDecimal(1, -4)
	assert.Error(t, err)
	_, err = NewDecimal(1, 1)
	assert.Error(t, err)
}

func TestDecimalCanonicalizeDropsTrailingZeros(t *testing.T) {
	d, err := NewDecimal(987654321120, -3)
	require.NoError(t, err)
	c := d.Canonicalize()
	assert.EqualValues(t, 98765432112, c.Mantissa())
	assert.EqualValues(t, -2, c.Exponent())
}

func TestDecimalCanonicalizeExponentZero(t *testing.T) {
	d, err := NewDecimal(5, 0)
	require.NoError(t, err)
	c := d.Canonicalize()
	assert.EqualValues(t, 50, c.Mantissa())
	assert.EqualValues(t, -1, c.Exponent())
}

func TestDecimalFormat(t *testing.T) {
	d, err := NewDecimal(987654321123, -3)
	require.NoError(t, err)
	s, err := d.Format()
	require.NoError(t, err)
	assert.Equal(t, "987654321.123", s)
}

func TestDecimalFormatLeadingZero(t *testing.T) {
	d, err := NewDecimal(-5, -1)
	require.NoError(t, err)
	s, err := d.Format()
	require.NoError(t, err)
	assert.Equal(t, "-0.5", s)
}

func TestDecimalFromFloat64(t *testing.T) {
	d, err := DecimalFromFloat64(0.5)
	require.NoError(t, err)
	s, err := d.Format()
	require.NoError(t, err)
	assert.Equal(t, "0.5", s)
}

func TestDecimalEqualCanonicalizesFirst(t *testing.T) {
	a, _ := NewDecimal(500, -3)
	b, _ := NewDecimal(5, -1)
	assert.True(t, a.Equal(b))
}
