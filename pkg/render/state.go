package render

import "github.com/dmitrymomot/formcheck/pkg/validator"

// State is the visual state of a field container.
type State string

const (
	StateError   State = "error"
	StateSuccess State = "success"
)

// FieldState is the renderable state of one field.
type FieldState struct {
	ID      string `json:"id"`
	State   State  `json:"state"`
	Message string `json:"message"`
}

// StateOf maps a result to its visual state. Valid fields never carry a message.
func StateOf(res validator.FieldResult) FieldState {
	if res.Valid {
		return FieldState{ID: res.ID, State: StateSuccess}
	}
	return FieldState{ID: res.ID, State: StateError, Message: res.Message}
}

// States maps every result of report in order.
func States(report validator.Report) []FieldState {
	fields := report.Fields()
	out := make([]FieldState, 0, len(fields))
	for _, res := range fields {
		out = append(out, StateOf(res))
	}
	return out
}

// Target receives per-field rendering callbacks.
type Target interface {
	ShowError(id, message string)
	ShowSuccess(id string)
}

// TargetFuncs adapts a pair of functions to Target. Nil functions are skipped.
type TargetFuncs struct {
	Error   func(id, message string)
	Success func(id string)
}

func (t TargetFuncs) ShowError(id, message string) {
	if t.Error != nil {
		t.Error(id, message)
	}
}

func (t TargetFuncs) ShowSuccess(id string) {
	if t.Success != nil {
		t.Success(id)
	}
}

// Apply calls exactly one Target method per field, in report order.
func Apply(report validator.Report, target Target) {
	if target == nil {
		return
	}
	for _, st := range States(report) {
		switch st.State {
		case StateError:
			target.ShowError(st.ID, st.Message)
		default:
			target.ShowSuccess(st.ID)
		}
	}
}
