// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/panchayat/cliparse"
	"github.com/danielhkuo/panchayat/models"
	"github.com/danielhkuo/panchayat/region"
)

// Write renders rep in the given format
func Write(w io.Writer, rep models.Report, format string) error {
	switch format {
	case cliparse.FormatJSON:
		return WriteJSON(w, rep)
	case cliparse.FormatText, "":
		return WriteText(w, rep)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// WriteJSON writes v as indented JSON
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON report: %w", err)
	}
	return nil
}

func WriteText(w io.Writer, rep models.Report) error {
	var b strings.Builder

	name := rep.Name
	if name == "" {
		name = "Election"
	}
	fmt.Fprintf(&b, "%s (report %s)\n", name, rep.ID)
	fmt.Fprintf(&b, "Registered voters: %s of %s\n",
		humanize.Comma(int64(rep.Registered())), humanize.Comma(int64(len(rep.Registrations))))
	fmt.Fprintf(&b, "Ballots accepted: %s of %s\n\n",
		humanize.Comma(int64(rep.Accepted())), humanize.Comma(int64(len(rep.Ballots))))

	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tCANDIDATE\tPARTY\tVOTES")
	for _, res := range rep.Results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			humanize.Ordinal(res.Rank), res.Name, res.Party, humanize.Comma(int64(res.Votes)))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	b.WriteString("\n")
	if rep.Winner == nil {
		b.WriteString("Winner: none (no votes cast)\n")
	} else {
		fmt.Fprintf(&b, "Winner: %s (%s) with %s\n",
			rep.Winner.Name, rep.Winner.Party, Votes(rep.Winner.Votes))
	}

	if len(rep.Regions) > 0 {
		b.WriteString("\nRegions:\n")
		writeRegions(&b, rep.Regions)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteRegions prints a region breakdown followed by the overall total
func WriteRegions(w io.Writer, totals []region.Total) error {
	var b strings.Builder
	writeRegions(&b, totals)
	_, err := io.WriteString(w, b.String())
	return err
}

func writeRegions(b *strings.Builder, totals []region.Total) {
	for _, t := range totals {
		fmt.Fprintf(b, "%s%s: %s\n", strings.Repeat("  ", t.Depth+1), t.Name, Votes(t.Total))
	}
	if len(totals) > 0 {
		fmt.Fprintf(b, "Total: %s\n", Votes(totals[0].Total))
	}
}

// WriteVerdicts prints one line per screened voter record
func WriteVerdicts(w io.Writer, regs []models.Registration) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "VOTER\tVALID\tREASON")
	for _, reg := range regs {
		id := reg.VoterID
		if id == "" {
			id = "-"
		}
		fmt.Fprintf(tw, "%s\t%t\t%s\n", id, reg.Accepted, reg.Reason)
	}
	return tw.Flush()
}

// Votes formats a vote count, e.g. "1 vote" or "1,204 votes"
func Votes(n int) string {
	if n == 1 {
		return "1 vote"
	}
	return humanize.Comma(int64(n)) + " votes"
}
