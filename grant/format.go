// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grant

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatCSV  Format = "csv"
)

var ErrUnknownFormat = errors.New("grant: unknown format")

// ParseFormat accepts a format name, case-insensitively. "yml" is an alias
// of yaml.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatJSON, FormatYAML, FormatTOML, FormatCSV:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// FormatOf guesses the format from the file extension.
func FormatOf(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

func DecodeRound(r io.Reader, f Format) (*Round, error) {
	var round Round

	switch f {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&round); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&round); err != nil {
			return nil, err
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&round); err != nil {
			return nil, err
		}
	case FormatCSV:
		contribs, err := decodeCSV(r)
		if err != nil {
			return nil, err
		}
		round.Contributions = contribs
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}

	return &round, nil
}

var csvRoundHeader = []string{"recipient", "funder", "amount"}

// decodeCSV reads recipient,funder,amount rows. The header row is required
// and may list the columns in any order.
func decodeCSV(r io.Reader) ([]Contribution, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, errors.New("csv: missing header")
		}
		return nil, err
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	cols := make([]int, len(csvRoundHeader))
	for i, name := range csvRoundHeader {
		col, ok := index[name]
		if !ok {
			return nil, fmt.Errorf("csv: missing column %q", name)
		}
		cols[i] = col
	}

	var contribs []Contribution
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		amount, err := strconv.ParseFloat(strings.TrimSpace(record[cols[2]]), 64)
		if err != nil {
			return nil, fmt.Errorf("csv: line %d: invalid amount: %w", line, err)
		}
		contribs = append(contribs, Contribution{
			Recipient: strings.TrimSpace(record[cols[0]]),
			Funder:    strings.TrimSpace(record[cols[1]]),
			Amount:    amount,
		})
	}

	return contribs, nil
}

func EncodeReport(w io.Writer, f Format, rep *Report) error {
	switch f {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "   ")
		return encoder.Encode(rep)
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(rep); err != nil {
			return err
		}
		return encoder.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(rep)
	case FormatCSV:
		return encodeCSV(w, rep)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// encodeCSV writes one row per allocation; per-funder detail is dropped.
func encodeCSV(w io.Writer, rep *Report) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"recipient", "funders", "contributed", "unconstrained", "match"}); err != nil {
		return err
	}
	for _, alloc := range rep.Allocs {
		err := writer.Write([]string{
			alloc.Recipient,
			strconv.Itoa(len(alloc.Funders)),
			formatAmount(alloc.Contributed),
			formatAmount(alloc.Unconstrained),
			formatAmount(alloc.Match),
		})
		if err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
