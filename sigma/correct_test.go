// SPDX-License-Identifier: MIT

package sigma_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphsim/sigma"
)

func TestValidateAndCorrect_Validation(t *testing.T) {
	t.Parallel()

	_, _, err := sigma.ValidateAndCorrect(nil)
	require.ErrorIs(t, err, sigma.ErrMatrixNil)

	_, _, err = sigma.ValidateAndCorrect(mat.NewDense(2, 3, nil))
	require.ErrorIs(t, err, sigma.ErrNonSquare)
}

func TestValidateAndCorrect_ValidPassesThrough(t *testing.T) {
	t.Parallel()

	valid := mat.NewDense(3, 3, []float64{
		1.0, 0.8, 0.0,
		0.8, 1.0, 0.8,
		0.0, 0.8, 1.0,
	})
	out, corrected, err := sigma.ValidateAndCorrect(valid)
	require.NoError(t, err)
	require.False(t, corrected)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.InDelta(t, valid.At(i, j), out.At(i, j), eps)
		}
	}
}

func TestValidateAndCorrect_SymmetrizesWithWarning(t *testing.T) {
	t.Parallel()

	obs, logs := observer.New(zap.WarnLevel)
	skew := mat.NewDense(2, 2, []float64{
		1.0, 0.6,
		0.4, 1.0,
	})
	out, corrected, err := sigma.ValidateAndCorrect(skew, sigma.WithLogger(zap.New(obs)))
	require.NoError(t, err)
	require.True(t, corrected)
	require.InDelta(t, 0.5, out.At(0, 1), eps)
	require.InDelta(t, 0.5, out.At(1, 0), eps)
	require.Equal(t, 1, logs.Len())
}

func TestValidateAndCorrect_RepairsIndefinite(t *testing.T) {
	t.Parallel()

	// r(A,B)=r(A,C)=0.9 with r(B,C)=-0.9 cannot come from any joint
	// distribution; the candidate is far outside the PSD cone.
	bad := mat.NewDense(3, 3, []float64{
		1.0, 0.9, 0.9,
		0.9, 1.0, -0.9,
		0.9, -0.9, 1.0,
	})
	obs, logs := observer.New(zap.WarnLevel)
	out, corrected, err := sigma.ValidateAndCorrect(bad, sigma.WithLogger(zap.New(obs)))
	require.NoError(t, err)
	require.True(t, corrected)
	require.Equal(t, 1, logs.Len())

	// Repaired matrix keeps a unit diagonal and is positive definite.
	for i := 0; i < 3; i++ {
		require.InDelta(t, 1.0, out.At(i, i), 1e-6)
	}
	var chol mat.Cholesky
	require.True(t, chol.Factorize(out))

	// Signs of the relationships survive the projection.
	require.Greater(t, out.At(0, 1), 0.0)
	require.Greater(t, out.At(0, 2), 0.0)
	require.Less(t, out.At(1, 2), 0.0)
}

func TestValidateAndCorrect_Idempotent(t *testing.T) {
	t.Parallel()

	bad := mat.NewDense(3, 3, []float64{
		1.0, 0.9, 0.9,
		0.9, 1.0, -0.9,
		0.9, -0.9, 1.0,
	})
	first, corrected, err := sigma.ValidateAndCorrect(bad)
	require.NoError(t, err)
	require.True(t, corrected)

	again, corrected, err := sigma.ValidateAndCorrect(mat.DenseCopyOf(first))
	require.NoError(t, err)
	require.False(t, corrected)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.InDelta(t, first.At(i, j), again.At(i, j), eps)
		}
	}
}

func TestValidateAndCorrect_PreservesCovarianceScale(t *testing.T) {
	t.Parallel()

	// Same indefinite structure scaled by sd 2 and 3 per node: the repair
	// must land back on the original diagonal, not on a unit one.
	sd := []float64{2, 3, 1}
	bad := mat.NewDense(3, 3, nil)
	corr := []float64{
		1.0, 0.9, 0.9,
		0.9, 1.0, -0.9,
		0.9, -0.9, 1.0,
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			bad.Set(i, j, sd[i]*sd[j]*corr[i*3+j])
		}
	}

	out, corrected, err := sigma.ValidateAndCorrect(bad)
	require.NoError(t, err)
	require.True(t, corrected)
	for i := 0; i < 3; i++ {
		require.InDelta(t, sd[i]*sd[i], out.At(i, i), 1e-6)
		require.False(t, math.IsNaN(out.At(i, i)))
	}
}
