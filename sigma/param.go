// SPDX-License-Identifier: MIT

package sigma

// Param is a parameter that may be supplied as a single scalar or as one
// value per node. Modeling the two shapes explicitly (instead of repeating
// ad hoc length checks at every call site) keeps broadcasting in one place:
// every consumer calls Broadcast with the node count it needs.
type Param struct {
	vec    []float64 // nil ⇒ scalar form
	scalar float64
}

// Scalar wraps a single value applied uniformly to every node.
func Scalar(v float64) Param {
	return Param{scalar: v}
}

// PerNode wraps one value per node in canonical node order.
// The input slice is copied, so later caller mutation cannot leak in.
func PerNode(values []float64) Param {
	vec := make([]float64, len(values))
	copy(vec, values)

	return Param{vec: vec}
}

// Broadcast expands the parameter to length n.
// A scalar fans out to n copies; a per-node vector must already have
// length n or ErrDimensionMismatch is returned.
// Complexity: O(n).
func (p Param) Broadcast(n int) ([]float64, error) {
	if p.vec != nil {
		if len(p.vec) != n {
			return nil, ErrDimensionMismatch
		}
		out := make([]float64, n)
		copy(out, p.vec)

		return out, nil
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = p.scalar
	}

	return out, nil
}
