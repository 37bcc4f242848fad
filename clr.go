// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lrmatch

import (
	"fmt"
	"math"
)

// Pair zips the parallel recipient, funder and amount sequences into
// contributions, preserving order.
func Pair[R, F comparable](recipients []R, funders []F, amounts []float64) ([]Contribution[R, F], error) {
	if len(recipients) != len(funders) || len(recipients) != len(amounts) {
		return nil, fmt.Errorf("%w: %d recipients, %d funders, %d amounts",
			ErrMalformedInput, len(recipients), len(funders), len(amounts))
	}

	contribs := make([]Contribution[R, F], len(recipients))
	for i := range recipients {
		contribs[i] = Contribution[R, F]{
			Recipient: recipients[i],
			Funder:    funders[i],
			Amount:    amounts[i],
		}
	}
	return contribs, nil
}

// Aggregate groups contributions by recipient, then by funder, summing the
// amounts of every (recipient, funder) pair. Amounts are not validated.
func Aggregate[R, F comparable](contribs []Contribution[R, F]) Grants[R, F] {
	grants := make(Grants[R, F])

	for _, c := range contribs {
		funders, ok := grants[c.Recipient]
		if !ok {
			funders = make(map[F]float64)
			grants[c.Recipient] = funders
		}
		funders[c.Funder] += c.Amount
	}

	return grants
}

// RecipientSums returns the total each recipient received.
func RecipientSums[R, F comparable](grants Grants[R, F]) Sums[R] {
	sums := make(Sums[R], len(grants))
	for recipient, funders := range grants {
		sum := 0.0
		for _, amount := range funders {
			sum += amount
		}
		sums[recipient] = sum
	}
	return sums
}

// LRMatches returns the unconstrained liberal radicalism match of every
// recipient: the square of the sum of the square roots of its funders'
// aggregated contributions.
func LRMatches[R, F comparable](grants Grants[R, F]) (Matches[R], error) {
	matches := make(Matches[R], len(grants))

	for recipient, funders := range grants {
		sumSqrts := 0.0
		for funder, amount := range funders {
			if amount < 0 {
				return nil, fmt.Errorf("%w: recipient %v funder %v amount %g",
					ErrNegativeContribution, recipient, funder, amount)
			}
			sumSqrts += math.Sqrt(amount)
		}

		match := sumSqrts * sumSqrts
		if math.IsNaN(match) || math.IsInf(match, 0) {
			return nil, fmt.Errorf("%w: recipient %v match %g",
				ErrNonNumeric, recipient, match)
		}
		matches[recipient] = match
	}

	return matches, nil
}

// ConstrainByBudget rescales the matches so they add up to budget while
// keeping their proportions. No matches yield no matches.
func ConstrainByBudget[R comparable](matches Matches[R], budget float64) (Matches[R], error) {
	if budget < 0 || math.IsNaN(budget) || math.IsInf(budget, 0) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidBudget, budget)
	}

	constrained := make(Matches[R], len(matches))
	if len(matches) == 0 {
		return constrained, nil
	}

	total := matches.Total()
	if total == 0 {
		return nil, fmt.Errorf("%w: %d recipients with zero total match",
			ErrUndefinedDistribution, len(matches))
	}
	if math.IsInf(total, 0) || math.IsNaN(total) {
		return nil, fmt.Errorf("%w: total match %g", ErrNonNumeric, total)
	}

	for recipient, match := range matches {
		constrained[recipient] = match / total * budget
	}
	return constrained, nil
}

// CLR runs the whole pipeline over parallel recipient, funder and amount
// sequences. It returns the aggregated grants, the per-recipient sums and
// the budget-constrained matches, or nothing at all on error.
func CLR[R, F comparable](recipients []R, funders []F, amounts []float64, budget float64) (
	grants Grants[R, F], sums Sums[R], clr Matches[R], err error) {

	contribs, err := Pair(recipients, funders, amounts)
	if err != nil {
		return nil, nil, nil, err
	}

	grants = Aggregate(contribs)
	sums = RecipientSums(grants)

	lr, err := LRMatches(grants)
	if err != nil {
		return nil, nil, nil, err
	}

	clr, err = ConstrainByBudget(lr, budget)
	if err != nil {
		return nil, nil, nil, err
	}

	return grants, sums, clr, nil
}
