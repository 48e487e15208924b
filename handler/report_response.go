package handler

import (
	"encoding/json"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/formcheck/pkg/render"
	"github.com/dmitrymomot/formcheck/pkg/validator"
)

type reportResponse struct {
	report      validator.Report
	successText string
}

// Report renders a validation report.
//
// Regular requests get the JSON envelope with the report as data: 200 when
// valid, 422 with per-field error details otherwise. Datastar requests get
// the report signals followed by one feedback patch per field and the
// form summary.
func Report(report validator.Report, successText string) Response {
	return reportResponse{report: report, successText: successText}
}

func (rr reportResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		return rr.renderDataStar(w, r)
	}

	if rr.report.Valid() {
		return JSON(rr.report, WithJSONMeta(map[string]any{"message": rr.successText})).Render(w, r)
	}

	fields := FromReport(rr.report)
	return JSON(rr.report,
		WithJSONStatus(http.StatusUnprocessableEntity),
		WithJSONError(&ErrorDetail{
			Code:    "validation_error",
			Message: fields.Error(),
			Details: fields,
		}),
	).Render(w, r)
}

func (rr reportResponse) renderDataStar(w http.ResponseWriter, r *http.Request) error {
	signals, err := json.Marshal(render.Signals(rr.report))
	if err != nil {
		return err
	}

	sse := datastar.NewSSE(w, r)
	if err := sse.PatchSignals(signals); err != nil {
		return err
	}

	fields := rr.report.Fields()
	patches := make([]TemplPatch, 0, len(fields)+1)
	for _, res := range fields {
		patches = append(patches, Patch(render.Feedback(res)))
	}
	patches = append(patches, Patch(render.Summary(rr.report, rr.successText)))
	return patchElements(sse, patches)
}
