package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// TemplOption is an alias for datastar's PatchElementOption.
type TemplOption = datastar.PatchElementOption

// WithTarget sets the selector the component is patched into.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

// WithPatchMode sets how the component is merged into the DOM.
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

// TemplPatch is a component with its own patch options.
type TemplPatch struct {
	Component templ.Component
	Options   []TemplOption
}

// Patch creates a TemplPatch for TemplMulti.
func Patch(component templ.Component, opts ...TemplOption) TemplPatch {
	return TemplPatch{Component: component, Options: opts}
}

// Templ renders a component as HTML, or as one element patch for datastar:
//
//	return handler.Templ(render.Feedback(res), handler.WithTarget(render.Selector(res.ID)))
func Templ(component templ.Component, opts ...TemplOption) Response {
	return TemplMulti(Patch(component, opts...))
}

type templMultiResponse struct {
	patches []TemplPatch
}

// Render sends one SSE patch per component for datastar, otherwise the
// concatenated HTML.
func (t templMultiResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		return patchElements(datastar.NewSSE(w, r), t.patches)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	for _, patch := range t.patches {
		if err := patch.Component.Render(r.Context(), w); err != nil {
			return err
		}
	}
	return nil
}

// TemplMulti renders several components, each to its own target.
func TemplMulti(patches ...TemplPatch) Response {
	return templMultiResponse{patches: patches}
}

func patchElements(sse *datastar.ServerSentEventGenerator, patches []TemplPatch) error {
	for _, patch := range patches {
		if err := sse.PatchElementTempl(patch.Component, patch.Options...); err != nil {
			return err
		}
	}
	return nil
}
