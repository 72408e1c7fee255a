package publishing

import (
	"context"
	"errors"
	"iter"
)

type fakeRecord struct {
	name      string
	version   string
	published string
	urls      []string
}

func (r *fakeRecord) SourcePackageName() string    { return r.name }
func (r *fakeRecord) SourcePackageVersion() string { return r.version }
func (r *fakeRecord) DatePublished() string        { return r.published }

func (r *fakeRecord) BinaryFileURLs(context.Context) ([]string, error) {
	return r.urls, nil
}

type fakeArchive struct {
	series   map[string]string
	arches   map[string]string
	records  []Record
	err      error
	queries  []Query
	resolved []string
}

func (a *fakeArchive) Series(_ context.Context, nameOrVersion string) (string, error) {
	a.resolved = append(a.resolved, nameOrVersion)
	s, ok := a.series[nameOrVersion]
	if !ok {
		return "", errors.New("no such distribution series")
	}
	return s, nil
}

func (a *fakeArchive) ArchSeries(_ context.Context, series, archTag string) (string, error) {
	s, ok := a.arches[series+"/"+archTag]
	if !ok {
		return "", errors.New("no such distro arch series")
	}
	return s, nil
}

func (a *fakeArchive) PublishedBinaries(_ context.Context, q Query) iter.Seq2[Record, error] {
	a.queries = append(a.queries, q)
	return func(yield func(Record, error) bool) {
		for _, r := range a.records {
			if !yield(r, nil) {
				return
			}
		}
		if a.err != nil {
			yield(nil, a.err)
		}
	}
}

func records(r ...Record) iter.Seq2[Record, error] {
	a := &fakeArchive{records: r}
	return a.PublishedBinaries(context.TODO(), Query{})
}
