// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/someonegg/lrmatch/grant"
)

// printAllocs writes a table of allocations followed by the totals.
// Colors are applied per line after alignment so escape codes do not
// count towards column widths.
func printAllocs(w io.Writer, rep *grant.Report, noColor bool) error {
	header := color.New(color.Bold)
	total := color.New(color.Bold, color.FgGreen)
	if noColor {
		header.DisableColor()
		total.DisableColor()
	}

	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "RECIPIENT\tFUNDERS\tCONTRIBUTED\tUNCONSTRAINED\tMATCH\tSHARE")
	for _, alloc := range rep.Allocs {
		share := 0.0
		if rep.Summary.Matched != 0 {
			share = alloc.Match / rep.Summary.Matched * 100
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%.2f%%\n",
			alloc.Recipient,
			len(alloc.Funders),
			formatAmount(alloc.Contributed),
			formatAmount(alloc.Unconstrained),
			formatAmount(alloc.Match),
			share)
	}
	fmt.Fprintf(tw, "TOTAL\t%d\t%s\t%s\t%s\n",
		rep.Summary.FundersCount,
		formatAmount(rep.Summary.Contributed),
		formatAmount(rep.Summary.Unconstrained),
		formatAmount(rep.Summary.Matched))
	if err := tw.Flush(); err != nil {
		return err
	}

	lines := make([]string, 0, len(rep.Allocs)+2)
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	for i, line := range lines {
		var err error
		switch i {
		case 0:
			_, err = header.Fprintln(w, line)
		case len(lines) - 1:
			_, err = total.Fprintln(w, line)
		default:
			_, err = fmt.Fprintln(w, line)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
