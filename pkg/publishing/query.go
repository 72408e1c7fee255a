package publishing

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/go-logr/logr"
	version "github.com/knqyf263/go-deb-version"
)

// BuildQuery translates Criteria into a Query, resolving
// the series and architecture handles along the way.
func BuildQuery(ctx context.Context, archive Archive, c Criteria) (Query, error) {
	log := logr.FromContextOrDiscard(ctx).WithValues("series", c.Series)

	series, err := archive.Series(ctx, c.Series)
	if err != nil {
		return Query{}, fmt.Errorf("resolving series '%s': %w", c.Series, err)
	}
	log.V(2).Info("resolved series", "handle", series)

	q := Query{
		ExactMatch: true,
		BinaryName: c.Package,
		Version:    c.Version,
	}
	if c.Arch != "" {
		q.ArchSeries, err = archive.ArchSeries(ctx, series, c.Arch)
		if err != nil {
			return Query{}, fmt.Errorf("resolving architecture '%s': %w", c.Arch, err)
		}
		log.V(2).Info("resolved architecture", "arch", c.Arch, "handle", q.ArchSeries)
	}
	if c.Version != "" {
		if _, err := version.NewVersion(c.Version); err != nil {
			log.V(1).Info("version is not a complete debian version, the archive will treat it as a submatch", "version", c.Version)
		}
	}

	switch {
	case c.Date != nil:
		q.CreatedSince = startOfDay(*c.Date).Format(time.RFC3339)
	case c.After != nil:
		q.CreatedSince = c.After.Format(time.DateOnly)
	}

	log.V(1).Info("built query", "query", q)
	return q, nil
}

// Fetch builds the query for c and runs it against the archive.
func Fetch(ctx context.Context, archive Archive, c Criteria) (iter.Seq2[Record, error], error) {
	q, err := BuildQuery(ctx, archive, c)
	if err != nil {
		return nil, err
	}
	return archive.PublishedBinaries(ctx, q), nil
}
