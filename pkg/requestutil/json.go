package requestutil

import (
	"fmt"
	"net/http"

	"github.com/carlmjohnson/requests"
	"github.com/gabriel-vasile/mimetype"
	"github.com/go-logr/logr"
)

var ContentTypesJSON = []string{
	"application/json",
}

// ExpectJSON rejects any response that does not declare
// a JSON body. Launchpad serves HTML error pages from
// some of its front-ends, which would otherwise surface
// as confusing decoding errors.
var ExpectJSON requests.ResponseHandler = func(response *http.Response) error {
	log := logr.FromContextOrDiscard(response.Request.Context())
	ct := response.Header.Get("Content-Type")
	if !isJSON(ct) {
		log.V(2).Info("rejecting response with unexpected content type", "contentType", ct, "url", response.Request.URL.String())
		return fmt.Errorf("unexpected content type: %q", ct)
	}
	return nil
}

func isJSON(s string) bool {
	return mimetype.EqualsAny(s, ContentTypesJSON...)
}
