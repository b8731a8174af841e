// SPDX-License-Identifier: MIT

// Package network provides edge lists for the route engine: the built-in
// airport sample and YAML documents of the form
//
//	edges:
//	  - from: Atlanta
//	    to: Chicago
//	    travel: 2.1
//	    surcharge: 0.5
//
// Every edge list is a []core.EdgeSpec ready for layover.BuildGraph.
package network

import "github.com/katalvlaran/layover/core"

// Airports returns the built-in flight network: travel hours plus the layover
// hours paid when taking each flight. A fresh slice is returned on every call.
func Airports() []core.EdgeSpec {
	return []core.EdgeSpec{
		{From: "Atlanta", To: "Chicago", Travel: 2.1, Surcharge: 0.5},
		{From: "Chicago", To: "San Francisco", Travel: 4.7, Surcharge: 1.0},
		{From: "San Francisco", To: "Newark", Travel: 6.2, Surcharge: 1.5},
		{From: "San Diego", To: "Newark", Travel: 5.8, Surcharge: 1.0},
		{From: "Atlanta", To: "Newark", Travel: 2.3, Surcharge: 0.3},
	}
}
