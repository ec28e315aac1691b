// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgrid/matrix"
)

// 1) TestDefaultOptions_Documented verifies that NewOptions() equals documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.NewOptions()
	require.Equal(t, matrix.DefaultEpsilon, o.Epsilon())
	require.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf())
	require.Equal(t, matrix.DefaultPopulation, o.Population())
}

// 2) TestNewOptions_OrderAndIdempotence ensures each Option toggles exactly
// its intended field and the last writer wins.
func TestNewOptions_OrderAndIdempotence(t *testing.T) {
	o := matrix.NewOptions(matrix.WithPopulation(), matrix.WithSample())
	require.False(t, o.Population())

	o = matrix.NewOptions(matrix.WithNoValidateNaNInf(), nil, matrix.WithPopulation())
	require.False(t, o.ValidateNaNInf())
	require.True(t, o.Population())
	require.Equal(t, matrix.DefaultEpsilon, o.Epsilon())

	o = matrix.NewOptions(matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf(), matrix.WithEpsilon(1e-6))
	require.True(t, o.ValidateNaNInf())
	require.Equal(t, 1e-6, o.Epsilon())
}

// 3) TestWithEpsilon_Panics rejects negative and non-finite tolerances.
func TestWithEpsilon_Panics(t *testing.T) {
	require.NotPanics(t, func() { matrix.WithEpsilon(0) })
	require.Panics(t, func() { matrix.WithEpsilon(-1) })
	require.Panics(t, func() { matrix.WithEpsilon(math.NaN()) })
	require.Panics(t, func() { matrix.WithEpsilon(math.Inf(1)) })
}
