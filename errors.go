// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lrmatch

import "errors"

// Callers match these with errors.Is; returned errors may wrap them with
// the offending lengths, recipient or value.
var (
	// ErrMalformedInput is returned when the recipient, funder and amount
	// sequences are not of equal length.
	ErrMalformedInput = errors.New("lrmatch: malformed input")

	// ErrNegativeContribution is returned when a funder's aggregated
	// contribution to a recipient is negative, which has no real square root.
	ErrNegativeContribution = errors.New("lrmatch: negative contribution")

	// ErrNonNumeric is returned when a match value comes out NaN or Inf.
	ErrNonNumeric = errors.New("lrmatch: non-numeric result")

	// ErrUndefinedDistribution is returned when the unconstrained matches of
	// a non-empty set of recipients sum to zero.
	ErrUndefinedDistribution = errors.New("lrmatch: undefined distribution")

	ErrInvalidBudget = errors.New("lrmatch: invalid budget")
)
