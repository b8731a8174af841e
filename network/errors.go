// SPDX-License-Identifier: MIT
// Package: layover/network
//
// errors.go: sentinel errors for edge-list decoding.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Context (edge index, file path) is attached with %w at the failure site.

package network

import (
	"errors"
	"fmt"
)

// ErrEmptyNetwork indicates that a network document holds no edges.
// Usage: if errors.Is(err, ErrEmptyNetwork) { /* fall back to Airports() */ }.
var ErrEmptyNetwork = errors.New("network: no edges")

// ErrMissingEndpoint indicates an edge record without "from" or "to".
var ErrMissingEndpoint = errors.New("network: edge endpoint is missing")

// ErrDecode indicates that a network document is not valid YAML for the
// expected schema (unknown keys, wrong types).
var ErrDecode = errors.New("network: cannot decode document")

// edgeErrorf wraps err with the position of the offending edge record.
func edgeErrorf(index int, err error) error {
	return fmt.Errorf("edges[%d]: %w", index, err)
}
