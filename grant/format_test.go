// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grant

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{
		"json": FormatJSON,
		"JSON": FormatJSON,
		"yaml": FormatYAML,
		"yml":  FormatYAML,
		"toml": FormatTOML,
		" csv": FormatCSV,
	}
	for name, want := range cases {
		got, err := ParseFormat(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFormatOf(t *testing.T) {
	f, err := FormatOf("rounds/2024-q1.yml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	f, err = FormatOf("round.TOML")
	require.NoError(t, err)
	assert.Equal(t, FormatTOML, f)

	_, err = FormatOf("round")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestDecodeRound(t *testing.T) {
	want := &Round{
		Name:   "q1",
		Budget: 100,
		Contributions: []Contribution{
			makeContribution("p1", "alice", 4),
			makeContribution("p2", "bob", 2.5),
		},
	}

	t.Run("JSON", func(t *testing.T) {
		data := `{"name":"q1","budget":100,"contributions":[
			{"recipient":"p1","funder":"alice","amount":4},
			{"recipient":"p2","funder":"bob","amount":2.5}]}`
		round, err := DecodeRound(strings.NewReader(data), FormatJSON)
		require.NoError(t, err)
		assert.Equal(t, want, round)
	})

	t.Run("YAML", func(t *testing.T) {
		data := `
name: q1
budget: 100
contributions:
  - recipient: p1
    funder: alice
    amount: 4
  - recipient: p2
    funder: bob
    amount: 2.5
`
		round, err := DecodeRound(strings.NewReader(data), FormatYAML)
		require.NoError(t, err)
		assert.Equal(t, want, round)
	})

	t.Run("TOML", func(t *testing.T) {
		data := `
name = "q1"
budget = 100.0

[[contributions]]
recipient = "p1"
funder = "alice"
amount = 4.0

[[contributions]]
recipient = "p2"
funder = "bob"
amount = 2.5
`
		round, err := DecodeRound(strings.NewReader(data), FormatTOML)
		require.NoError(t, err)
		assert.Equal(t, want, round)
	})

	t.Run("Columns", func(t *testing.T) {
		data := `{"budget":1,"recipients":["p1","p1"],"funders":["f7","f7"],"amounts":[4,9]}`
		round, err := DecodeRound(strings.NewReader(data), FormatJSON)
		require.NoError(t, err)
		assert.Equal(t, []string{"p1", "p1"}, round.Recipients)
		assert.Equal(t, []string{"f7", "f7"}, round.Funders)
		assert.Equal(t, []float64{4, 9}, round.Amounts)
	})

	t.Run("CSV", func(t *testing.T) {
		data := "funder, recipient, amount\nalice,p1,4\nbob,p2,2.5\n"
		round, err := DecodeRound(strings.NewReader(data), FormatCSV)
		require.NoError(t, err)
		assert.Equal(t, want.Contributions, round.Contributions)
		assert.Equal(t, 0.0, round.Budget)
	})

	t.Run("CSVErrors", func(t *testing.T) {
		cases := map[string]string{
			"Empty":         "",
			"MissingColumn": "recipient,funder\np1,alice\n",
			"BadAmount":     "recipient,funder,amount\np1,alice,lots\n",
			"ShortRow":      "recipient,funder,amount\np1,alice\n",
		}
		for name, data := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := DecodeRound(strings.NewReader(data), FormatCSV)
				assert.Error(t, err)
			})
		}
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := DecodeRound(strings.NewReader("{"), FormatJSON)
		assert.Error(t, err)
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		_, err := DecodeRound(strings.NewReader(""), Format("xml"))
		assert.ErrorIs(t, err, ErrUnknownFormat)
	})
}

func sampleReport() *Report {
	return &Report{
		RunID: "run-1",
		Round: "q1",
		Summary: Summary{
			RecipientsCount:    2,
			FundersCount:       2,
			ContributionsCount: 3,
			Contributed:        38,
			Unconstrained:      50,
			Budget:             100,
			Matched:            100,
		},
		Allocs: []*Alloc{
			{Recipient: "p1", Funders: []Funding{{"alice", 4}, {"bob", 9}}, Contributed: 13, Unconstrained: 25, Match: 50},
			{Recipient: "p2", Funders: []Funding{{"alice", 25}}, Contributed: 25, Unconstrained: 25, Match: 50},
		},
	}
}

func TestEncodeReport(t *testing.T) {
	rep := sampleReport()

	t.Run("JSON", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, EncodeReport(&buf, FormatJSON, rep))
		var got Report
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, *rep, got)
	})

	t.Run("YAML", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, EncodeReport(&buf, FormatYAML, rep))
		assert.Contains(t, buf.String(), "run_id: run-1")
		var got Report
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, *rep, got)
	})

	t.Run("TOML", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, EncodeReport(&buf, FormatTOML, rep))
		assert.Contains(t, buf.String(), "[[allocs]]")
		var got Report
		_, err := toml.Decode(buf.String(), &got)
		require.NoError(t, err)
		assert.Equal(t, rep.Allocs[0].Match, got.Allocs[0].Match)
		assert.Equal(t, rep.Summary, got.Summary)
	})

	t.Run("CSV", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, EncodeReport(&buf, FormatCSV, rep))
		assert.Equal(t,
			"recipient,funders,contributed,unconstrained,match\n"+
				"p1,2,13,25,50\n"+
				"p2,1,25,25,50\n",
			buf.String())
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		err := EncodeReport(&bytes.Buffer{}, Format("xml"), rep)
		assert.ErrorIs(t, err, ErrUnknownFormat)
	})
}
