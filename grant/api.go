// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grant uses lrmatch to distribute a matching pool over a funding round.
package grant

import "log/slog"

type Contribution struct {
	Recipient string  `json:"recipient" yaml:"recipient" toml:"recipient"`
	Funder    string  `json:"funder" yaml:"funder" toml:"funder"`
	Amount    float64 `json:"amount" yaml:"amount" toml:"amount"`
}

// Round holds the contributions of one funding round. Contributions may be
// given as records, as parallel columns, or both; columns come first.
type Round struct {
	Name          string         `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Budget        float64        `json:"budget" yaml:"budget" toml:"budget"`
	Contributions []Contribution `json:"contributions,omitempty" yaml:"contributions,omitempty" toml:"contributions,omitempty"`

	Recipients []string  `json:"recipients,omitempty" yaml:"recipients,omitempty" toml:"recipients,omitempty"`
	Funders    []string  `json:"funders,omitempty" yaml:"funders,omitempty" toml:"funders,omitempty"`
	Amounts    []float64 `json:"amounts,omitempty" yaml:"amounts,omitempty" toml:"amounts,omitempty"`
}

type Funding struct {
	Funder string  `json:"funder" yaml:"funder" toml:"funder"`
	Amount float64 `json:"amount" yaml:"amount" toml:"amount"`
}

type Alloc struct {
	Recipient     string    `json:"recipient" yaml:"recipient" toml:"recipient"`
	Funders       []Funding `json:"funders" yaml:"funders" toml:"funders"`
	Contributed   float64   `json:"contributed" yaml:"contributed" toml:"contributed"`
	Unconstrained float64   `json:"unconstrained" yaml:"unconstrained" toml:"unconstrained"`
	Match         float64   `json:"match" yaml:"match" toml:"match"`
}

type Summary struct {
	RecipientsCount    int     `json:"recipients" yaml:"recipients" toml:"recipients"`
	FundersCount       int     `json:"funders" yaml:"funders" toml:"funders"`
	ContributionsCount int     `json:"contributions" yaml:"contributions" toml:"contributions"`
	SkippedCount       int     `json:"skipped" yaml:"skipped" toml:"skipped"`
	Contributed        float64 `json:"contributed" yaml:"contributed" toml:"contributed"`
	Unconstrained      float64 `json:"unconstrained" yaml:"unconstrained" toml:"unconstrained"`
	Budget             float64 `json:"budget" yaml:"budget" toml:"budget"`
	Matched            float64 `json:"matched" yaml:"matched" toml:"matched"`
}

// Report is the outcome of matching one round.
type Report struct {
	RunID   string   `json:"run_id" yaml:"run_id" toml:"run_id"`
	Round   string   `json:"round,omitempty" yaml:"round,omitempty" toml:"round,omitempty"`
	Summary Summary  `json:"summary" yaml:"summary" toml:"summary"`
	Allocs  []*Alloc `json:"allocs" yaml:"allocs" toml:"allocs"`
}

type Matcher struct {
	// Defaults to slog.Default().
	Logger *slog.Logger

	// When set, matcher logs every allocation at debug level.
	Verbose bool

	log *slog.Logger
}
