package publishing

import (
	"context"
	"iter"
	"time"
)

// Criteria is the validated set of filters for a single
// lookup. Empty strings and nil times mean "not set".
type Criteria struct {
	Series  string
	Arch    string
	Package string
	Version string

	// Date restricts results to a single calendar day.
	Date *time.Time

	// After is the inclusive lower bound sent to the archive.
	// It has already been moved forward by a day so that the
	// user-supplied bound is exclusive.
	After *time.Time

	// Before is an exclusive upper bound that is only ever
	// applied locally.
	Before *time.Time

	LineOut bool
}

// Query holds the parameters of a published binaries
// lookup against an Archive.
type Query struct {
	ExactMatch   bool
	ArchSeries   string
	BinaryName   string
	Version      string
	CreatedSince string
}

// Record is a single binary publication.
type Record interface {
	SourcePackageName() string
	SourcePackageVersion() string
	// DatePublished returns the publication timestamp as
	// reported by the archive.
	DatePublished() string
	BinaryFileURLs(ctx context.Context) ([]string, error)
}

// Archive is the remote publishing history of a distribution.
type Archive interface {
	// Series resolves a series name or version into a handle.
	Series(ctx context.Context, nameOrVersion string) (string, error)
	// ArchSeries resolves an architecture tag within a series.
	ArchSeries(ctx context.Context, series, archTag string) (string, error)
	// PublishedBinaries runs the query. The sequence is
	// fetched lazily and can only be iterated once.
	PublishedBinaries(ctx context.Context, q Query) iter.Seq2[Record, error]
}
