// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grant

import (
	"log/slog"
	"sort"

	"github.com/someonegg/lrmatch"
)

func (m *Matcher) init() {
	if m.Logger == nil {
		m.log = slog.Default()
	} else {
		m.log = m.Logger
	}
}

// Match computes the constrained match of every recipient in the round.
// Contributions missing a recipient or funder are skipped.
func (m *Matcher) Match(round *Round) (allocs []*Alloc, summary Summary, err error) {
	m.init()

	var summ Summary

	contribs, skipped, err := genContributions(m.log, round)
	if err != nil {
		return nil, Summary{}, err
	}
	summ.ContributionsCount = len(contribs)
	summ.SkippedCount = skipped
	summ.Budget = round.Budget

	recipients, funders, amounts := genColumns(contribs)

	grants, sums, clr, err := lrmatch.CLR(recipients, funders, amounts, round.Budget)
	if err != nil {
		return nil, Summary{}, err
	}
	lr, err := lrmatch.LRMatches(grants)
	if err != nil {
		return nil, Summary{}, err
	}

	summ.RecipientsCount = len(grants)
	summ.FundersCount = countFunders(grants)
	summ.Contributed = sums.Total()
	summ.Unconstrained = lr.Total()
	summ.Matched = clr.Total()

	allocs = genAllocs(grants, sums, lr, clr)

	if m.Verbose {
		for _, alloc := range allocs {
			m.log.Debug("alloc",
				"recipient", alloc.Recipient,
				"funders", len(alloc.Funders),
				"contributed", alloc.Contributed,
				"unconstrained", alloc.Unconstrained,
				"match", alloc.Match)
		}
	}
	m.log.Info("round matched",
		"round", round.Name,
		"recipients", summ.RecipientsCount,
		"funders", summ.FundersCount,
		"contributions", summ.ContributionsCount,
		"skipped", summ.SkippedCount,
		"budget", summ.Budget)

	return allocs, summ, nil
}

func genContributions(log *slog.Logger, round *Round) ([]lrmatch.Contribution[string, string], int, error) {
	columns, err := lrmatch.Pair(round.Recipients, round.Funders, round.Amounts)
	if err != nil {
		return nil, 0, err
	}

	all := make([]lrmatch.Contribution[string, string], 0, len(columns)+len(round.Contributions))
	all = append(all, columns...)
	for _, c := range round.Contributions {
		all = append(all, lrmatch.Contribution[string, string]{
			Recipient: c.Recipient,
			Funder:    c.Funder,
			Amount:    c.Amount,
		})
	}

	contribs := all[:0]
	skipped := 0
	for i, c := range all {
		if c.Recipient == "" || c.Funder == "" {
			log.Warn("contribution is incomplete",
				"index", i, "recipient", c.Recipient, "funder", c.Funder, "amount", c.Amount)
			skipped++
			continue
		}
		contribs = append(contribs, c)
	}

	return contribs, skipped, nil
}

func genColumns(contribs []lrmatch.Contribution[string, string]) ([]string, []string, []float64) {
	recipients := make([]string, len(contribs))
	funders := make([]string, len(contribs))
	amounts := make([]float64, len(contribs))

	for i, c := range contribs {
		recipients[i] = c.Recipient
		funders[i] = c.Funder
		amounts[i] = c.Amount
	}

	return recipients, funders, amounts
}

func countFunders(grants lrmatch.Grants[string, string]) int {
	seen := make(map[string]struct{})
	for _, funders := range grants {
		for funder := range funders {
			seen[funder] = struct{}{}
		}
	}
	return len(seen)
}

func genAllocs(grants lrmatch.Grants[string, string], sums lrmatch.Sums[string],
	lr, clr lrmatch.Matches[string]) []*Alloc {

	allocs := make([]*Alloc, 0, len(grants))

	for recipient, funders := range grants {
		alloc := &Alloc{
			Recipient:     recipient,
			Funders:       make([]Funding, 0, len(funders)),
			Contributed:   sums[recipient],
			Unconstrained: lr[recipient],
			Match:         clr[recipient],
		}
		for funder, amount := range funders {
			alloc.Funders = append(alloc.Funders, Funding{Funder: funder, Amount: amount})
		}
		sort.Slice(alloc.Funders, func(i, j int) bool {
			return alloc.Funders[i].Funder < alloc.Funders[j].Funder
		})
		allocs = append(allocs, alloc)
	}

	sort.Slice(allocs, func(i, j int) bool {
		return allocs[i].Recipient < allocs[j].Recipient
	})

	return allocs
}
