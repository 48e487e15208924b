package handler

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/formcheck/pkg/binder"
)

const (
	// DataStarAcceptHeader is the Accept header value of a datastar request.
	DataStarAcceptHeader = "text/event-stream"

	// DataStarQueryParam carries signals on datastar GET requests.
	DataStarQueryParam = "datastar"
)

// Patch mode aliases
const (
	PatchOuter   = datastar.ElementPatchModeOuter   // Morphs element (default)
	PatchInner   = datastar.ElementPatchModeInner   // Replace inner HTML
	PatchReplace = datastar.ElementPatchModeReplace // Replace entire element
	PatchRemove  = datastar.ElementPatchModeRemove  // Remove element
	PatchAppend  = datastar.ElementPatchModeAppend  // Append inside element
	PatchPrepend = datastar.ElementPatchModePrepend // Prepend inside element
)

// IsDataStar reports whether the request expects a datastar SSE answer.
func IsDataStar(r *http.Request) bool {
	if binder.IsDatastar(r) {
		return true
	}
	if strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader) {
		return true
	}
	return r.URL.Query().Has(DataStarQueryParam)
}
