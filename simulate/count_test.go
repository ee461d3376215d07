// SPDX-License-Identifier: MIT

package simulate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphsim/simulate"
)

func TestParseCount(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		in        any
		want      int
		truncated bool
		wantErr   bool
	}{
		{name: "int", in: 100, want: 100},
		{name: "int64", in: int64(7), want: 7},
		{name: "uint32", in: uint32(3), want: 3},
		{name: "float whole", in: 50.0, want: 50},
		{name: "float fractional", in: 50.9, want: 50, truncated: true},
		{name: "negative fractional", in: -2.5, want: -2, truncated: true},
		{name: "numeric string", in: "25", want: 25},
		{name: "fractional string", in: "25.5", want: 25, truncated: true},
		{name: "non-numeric string", in: "many", wantErr: true},
		{name: "nil", in: nil, wantErr: true},
		{name: "slice", in: []int{5}, wantErr: true},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			n, truncated, err := simulate.ParseCount(tc.in)
			if tc.wantErr {
				require.ErrorIs(t, err, simulate.ErrBadCount)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, n)
			require.Equal(t, tc.truncated, truncated)
		})
	}
}
