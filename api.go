// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lrmatch computes capital-constrained liberal radicalism
// (quadratic funding) matches.
//
// Given contributions from funders to recipients and a fixed matching
// budget, every recipient receives a share proportional to the square of
// the sum of square roots of its distinct funders' contributions, scaled
// so the shares add up to the budget.
package lrmatch

// Contribution is a single funder-to-recipient amount.
type Contribution[R, F comparable] struct {
	Recipient R
	Funder    F
	Amount    float64
}

// Grants maps recipient to funder to the summed amount of that funder's
// contributions to the recipient.
type Grants[R, F comparable] map[R]map[F]float64

// Sums maps recipient to the total it received from all funders.
type Sums[R comparable] map[R]float64

func (s Sums[R]) Total() float64 {
	total := 0.0
	for _, v := range s {
		total += v
	}
	return total
}

// Matches maps recipient to its match value.
type Matches[R comparable] map[R]float64

func (m Matches[R]) Total() float64 {
	total := 0.0
	for _, v := range m {
		total += v
	}
	return total
}
