package numeric_test

import (
	"encoding/json"
	"testing"

	"github.com/curex-labs/currency_exchange_app/internal/apperrors"
	"github.com/curex-labs/currency_exchange_app/internal/utils/numeric"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDecimal_Float(t *testing.T) {
	// 0.1 has no exact binary representation; the shortest round-trip text
	// must win over the expanded float artifact.
	d, err := numeric.ToDecimal(0.1)
	require.NoError(t, err)
	assert.Equal(t, "0.1", d.String())

	d, err = numeric.ToDecimal(1.005)
	require.NoError(t, err)
	assert.Equal(t, "1.005", d.String())
}

func TestToDecimal_JSONNumber(t *testing.T) {
	d, err := numeric.ToDecimal(json.Number("1.23456789012345678901234567"))
	require.NoError(t, err)
	assert.Equal(t, "1.23456789012345678901234567", d.String())
}

func TestToDecimal_String(t *testing.T) {
	d, err := numeric.ToDecimal("42.0001")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("42.0001").Equal(d))

	_, err = numeric.ToDecimal("not-a-number")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTypeConversion)
}

func TestToDecimal_Integers(t *testing.T) {
	d, err := numeric.ToDecimal(7)
	require.NoError(t, err)
	assert.Equal(t, "7", d.String())

	d, err = numeric.ToDecimal(int64(-12))
	require.NoError(t, err)
	assert.Equal(t, "-12", d.String())
}

func TestToDecimal_Identity(t *testing.T) {
	in := decimal.RequireFromString("3.14")
	d, err := numeric.ToDecimal(in)
	require.NoError(t, err)
	assert.True(t, in.Equal(d))
}

func TestToDecimal_UnsupportedType(t *testing.T) {
	_, err := numeric.ToDecimal([]int{1, 2, 3})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTypeConversion)

	_, err = numeric.ToDecimal(nil)
	assert.ErrorIs(t, err, apperrors.ErrTypeConversion)
}

func TestDivisionPrecision(t *testing.T) {
	// Chained rate math relies on at least 28 digits of division precision.
	assert.GreaterOrEqual(t, decimal.DivisionPrecision, 28)
}
