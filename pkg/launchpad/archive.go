package launchpad

import (
	"context"
	"fmt"
	"iter"

	"github.com/djcass44/lpmadison/pkg/publishing"
	"github.com/go-logr/logr"
)

// Archive exposes the primary archive of a distribution
// as a publishing.Archive.
type Archive struct {
	client       *Client
	distribution *Distribution
}

// interface guard
var _ publishing.Archive = &Archive{}

func NewArchive(ctx context.Context, client *Client, distribution string) (*Archive, error) {
	log := logr.FromContextOrDiscard(ctx)

	d, err := client.Distribution(ctx, distribution)
	if err != nil {
		return nil, err
	}
	if d.MainArchiveLink == "" {
		return nil, fmt.Errorf("distribution '%s' has no main archive", distribution)
	}
	log.V(1).Info("using main archive", "distribution", d.Name, "archive", d.MainArchiveLink)
	return &Archive{
		client:       client,
		distribution: d,
	}, nil
}

func (a *Archive) Series(ctx context.Context, nameOrVersion string) (string, error) {
	s, err := a.client.Series(ctx, a.distribution, nameOrVersion)
	if err != nil {
		return "", err
	}
	return s.SelfLink, nil
}

func (a *Archive) ArchSeries(ctx context.Context, series, archTag string) (string, error) {
	das, err := a.client.DistroArchSeries(ctx, series, archTag)
	if err != nil {
		return "", err
	}
	return das.SelfLink, nil
}

func (a *Archive) PublishedBinaries(ctx context.Context, q publishing.Query) iter.Seq2[publishing.Record, error] {
	pubs := a.client.PublishedBinaries(ctx, a.distribution.MainArchiveLink, PublishedBinariesOptions{
		ExactMatch:       q.ExactMatch,
		DistroArchSeries: q.ArchSeries,
		BinaryName:       q.BinaryName,
		Version:          q.Version,
		CreatedSinceDate: q.CreatedSince,
	})
	return func(yield func(publishing.Record, error) bool) {
		for p, err := range pubs {
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(&record{client: a.client, pub: p}, nil) {
				return
			}
		}
	}
}

// record adapts a BinaryPublication to publishing.Record.
type record struct {
	client *Client
	pub    *BinaryPublication
}

func (r *record) SourcePackageName() string    { return r.pub.SourcePackageName }
func (r *record) SourcePackageVersion() string { return r.pub.SourcePackageVersion }
func (r *record) DatePublished() string        { return r.pub.DatePublished }

func (r *record) BinaryFileURLs(ctx context.Context) ([]string, error) {
	return r.client.BinaryFileURLs(ctx, r.pub.SelfLink)
}
