// Package fibonacci implements the Fibonacci toolkit: bounded-count and
// bounded-value sequence generation, single-term evaluation, membership
// testing through the 5n²±4 perfect-square identity, and golden-ratio
// convergence analysis.
//
// Every function is pure and synchronous. Terms are *big.Int values so that
// results stay exact past F(93), where uint64 overflows. Invalid arguments
// are reported with errors matching apperrors.ErrInvalidArgument.
package fibonacci
