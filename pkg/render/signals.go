package render

import "github.com/dmitrymomot/formcheck/pkg/validator"

// Signals builds a datastar signal payload:
//
//	{"valid": false, "fields": {"email": {"state": "error", "message": "..."}}}
func Signals(report validator.Report) map[string]any {
	fields := make(map[string]any)
	for _, st := range States(report) {
		fields[st.ID] = map[string]any{
			"state":   string(st.State),
			"message": st.Message,
		}
	}
	return map[string]any{
		"valid":  report.Valid(),
		"fields": fields,
	}
}
