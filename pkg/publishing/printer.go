package publishing

import (
	"context"
	"fmt"
	"io"
	"iter"
	"strings"
	"time"

	"github.com/go-logr/logr"
)

const day = 24 * time.Hour

// Printer renders publication records as either
// multi-line stanzas or single lines.
type Printer struct {
	out     io.Writer
	lineOut bool
}

func NewPrinter(out io.Writer, lineOut bool) *Printer {
	return &Printer{
		out:     out,
		lineOut: lineOut,
	}
}

// Print writes every record that passes the local date filters
// of c, in the order they are received. Ages are calculated
// relative to now. It returns the number of records written.
func (p *Printer) Print(ctx context.Context, records iter.Seq2[Record, error], c Criteria, now time.Time) (int, error) {
	log := logr.FromContextOrDiscard(ctx)

	var count, skipped int
	for r, err := range records {
		if err != nil {
			return count, err
		}
		published, err := time.Parse(time.RFC3339Nano, r.DatePublished())
		if err != nil {
			return count, fmt.Errorf("parsing publish date of %s %s: %w", r.SourcePackageName(), r.SourcePackageVersion(), err)
		}
		if !c.Matches(published) {
			log.V(4).Info("skipping record outside of date range", "name", r.SourcePackageName(), "version", r.SourcePackageVersion(), "published", published)
			skipped++
			continue
		}
		urls, err := r.BinaryFileURLs(ctx)
		if err != nil {
			return count, fmt.Errorf("listing binary files of %s %s: %w", r.SourcePackageName(), r.SourcePackageVersion(), err)
		}

		var s string
		if p.lineOut {
			s = formatLine(r, urls)
		} else {
			s = formatStanza(r, Age(now, published), urls)
		}
		if _, err := io.WriteString(p.out, s); err != nil {
			return count, fmt.Errorf("writing: %w", err)
		}
		count++
	}
	log.V(1).Info("finished printing records", "count", count, "skipped", skipped)
	return count, nil
}

// Matches reports whether a record published at t passes
// the filters that the archive cannot apply itself.
func (c Criteria) Matches(t time.Time) bool {
	if c.Date != nil && !sameDay(*c.Date, t) {
		return false
	}
	if c.Before != nil && !t.Before(*c.Before) {
		return false
	}
	return true
}

// Age returns the number of whole days between
// published and now, rounded down.
func Age(now, published time.Time) int {
	d := now.Sub(published)
	days := d / day
	if d%day < 0 {
		days--
	}
	return int(days)
}

// sameDay compares calendar dates, each in its own zone.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func formatLine(r Record, urls []string) string {
	sb := strings.Builder{}
	sb.WriteString(r.DatePublished())
	sb.WriteString(" " + r.SourcePackageName())
	sb.WriteString(" " + r.SourcePackageVersion())
	for _, u := range urls {
		sb.WriteString(" " + u)
	}
	sb.WriteString("\n")
	return sb.String()
}

func formatStanza(r Record, age int, urls []string) string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("Package: '%s'\n", r.SourcePackageName()))
	sb.WriteString(fmt.Sprintf("\tVersion: '%s'\n", r.SourcePackageVersion()))
	sb.WriteString(fmt.Sprintf("\tPublished: '%s'\n", r.DatePublished()))
	sb.WriteString(fmt.Sprintf("\tDays ago: %d\n", age))
	for _, u := range urls {
		sb.WriteString("\t" + u + "\n")
	}
	sb.WriteString("\n")
	return sb.String()
}
