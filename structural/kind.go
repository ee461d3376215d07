// SPDX-License-Identifier: MIT

package structural

import "strings"

// Kind selects the structural matrix family. It is a closed enum rather than
// a set of combinable booleans, so mutually exclusive selections cannot be
// expressed in the first place.
type Kind uint8

const (
	// Adjacency is the binary adjacency matrix: 1 for connected pairs.
	Adjacency Kind = iota

	// Laplacian is the graph Laplacian L = D − A on the undirected collapse.
	Laplacian

	// CommonNeighbor counts shared neighbors per pair (off-diagonal of A·Aᵀ).
	CommonNeighbor

	// Distance is the inverse path-distance matrix: diagonal exactly 1,
	// off-diagonal in (0,1] decaying with shortest-path length, 0 for
	// unreachable pairs.
	Distance
)

// kindNames maps enum values onto their canonical labels.
var kindNames = map[Kind]string{
	Adjacency:      "adjacency",
	Laplacian:      "laplacian",
	CommonNeighbor: "common",
	Distance:       "distance",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return "unknown"
}

// ParseKind maps a textual label onto a Kind.
// Accepted (case-insensitive): adjacency, laplacian, common, distance.
// Returns ErrUnknownKind for anything else.
func ParseKind(s string) (Kind, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == want {
			return k, nil
		}
	}

	return Adjacency, ErrUnknownKind
}
