package launchpad

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/carlmjohnson/requests"
	"github.com/djcass44/lpmadison/pkg/requestutil"
	"github.com/go-logr/logr"
)

const userAgent = "lpmadison"

var ErrConsumed = errors.New("collection has already been iterated")

// NewClient creates an anonymous client for the versioned
// service root, e.g. https://api.launchpad.net/devel/
func NewClient(serviceRoot string, client *http.Client) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{
		root:   strings.TrimSuffix(serviceRoot, "/") + "/",
		client: client,
	}
}

func (c *Client) Distribution(ctx context.Context, name string) (*Distribution, error) {
	var out Distribution
	if err := c.get(ctx, c.root+url.PathEscape(name), nil, &out); err != nil {
		return nil, fmt.Errorf("getting distribution '%s': %w", name, err)
	}
	return &out, nil
}

// Series looks up a series of the distribution by
// name (e.g. "jammy") or version (e.g. "22.04").
func (c *Client) Series(ctx context.Context, distribution *Distribution, nameOrVersion string) (*DistroSeries, error) {
	var out DistroSeries
	if err := c.get(ctx, distribution.SelfLink, url.Values{
		"ws.op":           {"getSeries"},
		"name_or_version": {nameOrVersion},
	}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DistroArchSeries(ctx context.Context, seriesLink, archTag string) (*DistroArchSeries, error) {
	var out DistroArchSeries
	if err := c.get(ctx, seriesLink, url.Values{
		"ws.op":   {"getDistroArchSeries"},
		"archtag": {archTag},
	}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PublishedBinaries queries the binary publishing history of an
// archive. Pages are requested as the sequence is consumed and
// the sequence can only be iterated once.
func (c *Client) PublishedBinaries(ctx context.Context, archiveLink string, opts PublishedBinariesOptions) iter.Seq2[*BinaryPublication, error] {
	params := url.Values{
		"ws.op": {"getPublishedBinaries"},
	}
	if opts.ExactMatch {
		params.Set("exact_match", strconv.FormatBool(opts.ExactMatch))
	}
	if opts.DistroArchSeries != "" {
		params.Set("distro_arch_series", opts.DistroArchSeries)
	}
	if opts.BinaryName != "" {
		params.Set("binary_name", opts.BinaryName)
	}
	if opts.Version != "" {
		params.Set("version", opts.Version)
	}
	if opts.CreatedSinceDate != "" {
		params.Set("created_since_date", opts.CreatedSinceDate)
	}
	return iterate[*BinaryPublication](ctx, c, archiveLink, params)
}

// BinaryFileURLs lists the download URLs of the files
// belonging to a binary publication.
func (c *Client) BinaryFileURLs(ctx context.Context, publicationLink string) ([]string, error) {
	var out []string
	if err := c.get(ctx, publicationLink, url.Values{
		"ws.op": {"binaryFileUrls"},
	}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func iterate[T any](ctx context.Context, c *Client, link string, params url.Values) iter.Seq2[T, error] {
	var consumed bool
	return func(yield func(T, error) bool) {
		log := logr.FromContextOrDiscard(ctx)
		var zero T
		if consumed {
			yield(zero, ErrConsumed)
			return
		}
		consumed = true

		for link != "" {
			var page collection[T]
			if err := c.get(ctx, link, params, &page); err != nil {
				yield(zero, err)
				return
			}
			log.V(3).Info("fetched collection page", "start", page.Start, "count", len(page.Entries), "total", page.TotalSize)
			for _, e := range page.Entries {
				if !yield(e, nil) {
					return
				}
			}
			// the next link already carries the
			// original query
			link = page.NextCollectionLink
			params = nil
		}
	}
}

func (c *Client) get(ctx context.Context, link string, params url.Values, out any) error {
	log := logr.FromContextOrDiscard(ctx)
	log.V(2).Info("fetching resource", "url", link, "params", params.Encode())

	rb := requests.URL(link).
		Client(c.client).
		Accept("application/json").
		UserAgent(userAgent)
	for k, v := range params {
		rb.Param(k, v...)
	}

	var body string
	err := rb.
		AddValidator(requests.ValidatorHandler(requests.DefaultValidator, requests.ToString(&body))).
		AddValidator(requestutil.ExpectJSON).
		ToJSON(out).
		Fetch(ctx)
	if err != nil {
		log.V(1).Info("request failed", "url", link, "error", err.Error())
		if body = strings.TrimSpace(body); body != "" {
			return fmt.Errorf("%w: %s", err, body)
		}
		return err
	}
	return nil
}
