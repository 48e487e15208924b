package render

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/formcheck/pkg/validator"
)

// SummaryID is the element id of the form-level message.
const SummaryID = "form-success-message"

// MessageID returns the element id of a field's message element.
func MessageID(fieldID string) string {
	return fieldID + "-error"
}

// GroupID returns the element id of a field's .input-group container.
func GroupID(fieldID string) string {
	return fieldID + "-group"
}

// Selector returns the CSS selector of a field's .input-group container.
func Selector(fieldID string) string {
	return "#" + GroupID(fieldID)
}

// Feedback renders the status container of one field. The container carries
// the state class and wraps the message element:
//
//	<div id="email-group" class="input-group error" data-state="error"><small id="email-error" class="error-message">Provide a valid email address</small></div>
//
// Patching it replaces the children of the group, so pages keep the control
// outside of it or use Message and toggle the class from signals.
func Feedback(res validator.FieldResult) templ.Component {
	st := StateOf(res)
	msg := Message(res)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div id="%s" class="input-group %s" data-state="%s">`,
			templ.EscapeString(GroupID(st.ID)), st.State, st.State); err != nil {
			return err
		}
		if err := msg.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// Message renders only the message element of one field.
func Message(res validator.FieldResult) templ.Component {
	st := StateOf(res)
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<small id="%s" class="error-message">%s</small>`,
			templ.EscapeString(MessageID(st.ID)),
			templ.EscapeString(st.Message),
		)
		return err
	})
}

// Summary renders the form-level message: successText when the report is
// valid, an empty element otherwise.
func Summary(report validator.Report, successText string) templ.Component {
	text := ""
	if report.Valid() {
		text = successText
	}
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<p id="%s">%s</p>`, SummaryID, templ.EscapeString(text))
		return err
	})
}
