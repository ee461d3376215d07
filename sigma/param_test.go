// SPDX-License-Identifier: MIT

package sigma_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphsim/sigma"
)

func TestParam_ScalarBroadcast(t *testing.T) {
	t.Parallel()

	vec, err := sigma.Scalar(2.5).Broadcast(4)
	require.NoError(t, err)
	require.Equal(t, []float64{2.5, 2.5, 2.5, 2.5}, vec)
}

func TestParam_PerNodeBroadcast(t *testing.T) {
	t.Parallel()

	src := []float64{1, 2, 3}
	p := sigma.PerNode(src)
	src[0] = 99 // caller mutation must not leak in

	vec, err := p.Broadcast(3)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, vec)

	_, err = p.Broadcast(5)
	require.ErrorIs(t, err, sigma.ErrDimensionMismatch)
}
