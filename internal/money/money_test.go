package money

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDollarsToCents(t *testing.T) {
	cents, err := DollarsToCents(12.34)
	require.NoError(t, err)
	assert.Equal(t, int64(1234), cents)

	cents, err = DollarsToCents(0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), cents)

	// Rounding, not truncation
	cents, err = DollarsToCents(0.105)
	require.NoError(t, err)
	assert.Equal(t, int64(11), cents)
}

func TestDollarsToCentsRejectsInvalid(t *testing.T) {
	for _, v := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1), 1e17} {
		_, err := DollarsToCents(v)
		assert.ErrorIs(t, err, ErrInvalidMoney, "value %v should be rejected", v)
	}
}

func TestCentsToDollarsString(t *testing.T) {
	assert.Equal(t, "28.50", CentsToDollarsString(2850))
	assert.Equal(t, "-10.00", CentsToDollarsString(-1000))
	assert.Equal(t, "0.00", CentsToDollarsString(0))
	assert.Equal(t, "0.05", CentsToDollarsString(5))
}
