// Package structural builds topology-only square matrices from a signed
// regulatory graph: binary adjacency, graph Laplacian, common-neighbor
// counts, and an inverse path-distance matrix.
//
// The structural package provides:
//
//   - Build, a single entry point selecting the matrix family via a closed
//     Kind enum (no combinable boolean selectors, so conflicting requests
//     are unrepresentable).
//   - Matrix, a *mat.Dense wrapper indexed by the graph's canonical
//     ascending node order, with ID↔index lookups.
//
// All builders are deterministic: vertex order is ID-ascending and the
// all-pairs shortest-path kernel uses a fixed k→i→j loop order. Matrices are
// dense, so builds cost O(V²) memory and up to O(V³) time (distance kind).
//
// Polarity never enters a structural matrix; signs are applied downstream
// from a separately built sign matrix.
package structural
