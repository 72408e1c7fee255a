package launchpad

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
)

// fakeLaunchpad serves just enough of the Launchpad
// web service for the client to be exercised.
type fakeLaunchpad struct {
	*httptest.Server
	mu      sync.Mutex
	queries []url.Values

	// html forces every response to be served as html
	html atomic.Bool
}

func newFakeLaunchpad(t *testing.T) *fakeLaunchpad {
	f := &fakeLaunchpad{}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Close)
	return f
}

func (f *fakeLaunchpad) Queries() []url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]url.Values(nil), f.queries...)
}

func (f *fakeLaunchpad) root() string {
	return f.URL + "/devel/"
}

func (f *fakeLaunchpad) serve(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	op := q.Get("ws.op")
	base := f.URL + "/devel/ubuntu"

	switch {
	case r.URL.Path == "/devel/ubuntu" && op == "":
		f.json(w, Distribution{
			SelfLink:        base,
			Name:            "ubuntu",
			DisplayName:     "Ubuntu",
			MainArchiveLink: base + "/+archive/primary",
		})
	case r.URL.Path == "/devel/ubuntu" && op == "getSeries":
		switch q.Get("name_or_version") {
		case "jammy", "22.04":
			f.json(w, DistroSeries{SelfLink: base + "/jammy", Name: "jammy", Version: "22.04"})
		default:
			f.fail(w, http.StatusBadRequest, "No such distribution series: '"+q.Get("name_or_version")+"'.")
		}
	case r.URL.Path == "/devel/ubuntu/jammy" && op == "getDistroArchSeries":
		if q.Get("archtag") != "amd64" {
			f.fail(w, http.StatusBadRequest, "Unknown architecture "+q.Get("archtag"))
			return
		}
		f.json(w, DistroArchSeries{SelfLink: base + "/jammy/amd64", ArchitectureTag: "amd64"})
	case r.URL.Path == "/devel/ubuntu/+archive/primary" && op == "getPublishedBinaries":
		f.mu.Lock()
		f.queries = append(f.queries, q)
		f.mu.Unlock()
		f.publishedBinaries(w, q)
	case strings.HasPrefix(r.URL.Path, "/devel/ubuntu/+archive/primary/+binarypub/") && op == "binaryFileUrls":
		id := strings.TrimPrefix(r.URL.Path, "/devel/ubuntu/+archive/primary/+binarypub/")
		if id == "2" {
			f.json(w, []string{})
			return
		}
		f.json(w, []string{"https://launchpad.net/ubuntu/+archive/primary/+files/bash_5.1-6ubuntu1_amd64.deb"})
	default:
		f.fail(w, http.StatusNotFound, "Object: "+r.URL.Path)
	}
}

func (f *fakeLaunchpad) publishedBinaries(w http.ResponseWriter, q url.Values) {
	base := f.URL + "/devel/ubuntu/+archive/primary"
	if q.Get("ws.start") == "" {
		next := url.Values{}
		for k, v := range q {
			next[k] = v
		}
		next.Set("ws.start", "2")
		f.json(w, collection[BinaryPublication]{
			TotalSize: 3,
			Start:     0,
			Entries: []BinaryPublication{
				{
					SelfLink:             base + "/+binarypub/1",
					BinaryPackageName:    "bash",
					SourcePackageName:    "bash",
					SourcePackageVersion: "5.1-6ubuntu1",
					DatePublished:        "2024-01-15T03:00:00.123456+00:00",
				},
				{
					SelfLink:             base + "/+binarypub/2",
					BinaryPackageName:    "bash-doc",
					SourcePackageName:    "bash",
					SourcePackageVersion: "5.1-6ubuntu1",
					DatePublished:        "2024-01-15T23:00:00+00:00",
				},
			},
			NextCollectionLink: base + "?" + next.Encode(),
		})
		return
	}
	f.json(w, collection[BinaryPublication]{
		TotalSize: 3,
		Start:     2,
		Entries: []BinaryPublication{
			{
				SelfLink:             base + "/+binarypub/3",
				BinaryPackageName:    "bash",
				SourcePackageName:    "bash",
				SourcePackageVersion: "5.1-6ubuntu1.1",
				DatePublished:        "2024-01-16T00:01:00+00:00",
			},
		},
	})
}

func (f *fakeLaunchpad) json(w http.ResponseWriter, v any) {
	if f.html.Load() {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body>Launchpad is down for maintenance</body></html>"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func (*fakeLaunchpad) fail(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(msg))
}
