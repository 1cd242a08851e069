package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kainoa/surftrack/pkg/client"
)

const (
	sessionFieldSpot = iota
	sessionFieldDate
	sessionFieldDuration
	sessionFieldWaves
	sessionFieldRating
	sessionFieldConditions
	sessionFieldNotes
	sessionFieldCount
)

type sessionForm struct {
	inputs []textinput.Model
	focus  int
}

func newSessionForm() sessionForm {
	inputs := make([]textinput.Model, sessionFieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 200
		ti.Width = 40
		inputs[i] = ti
	}
	inputs[sessionFieldSpot].Placeholder = "Spot name"
	inputs[sessionFieldDate].Placeholder = "Date (YYYY-MM-DD)"
	inputs[sessionFieldDuration].Placeholder = "Duration minutes (optional)"
	inputs[sessionFieldWaves].Placeholder = "Waves caught (optional)"
	inputs[sessionFieldRating].Placeholder = "Rating 1-10 (optional)"
	inputs[sessionFieldConditions].Placeholder = "Conditions rating 1-10 (optional)"
	inputs[sessionFieldNotes].Placeholder = "Notes"
	inputs[sessionFieldSpot].Focus()

	return sessionForm{inputs: inputs}
}

func (f *sessionForm) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.inputs[0].Focus()
}

func (f *sessionForm) next() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *sessionForm) prev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *sessionForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *sessionForm) onLastField() bool {
	return f.focus == len(f.inputs)-1
}

// input parses the form into a create request. The spot is sent by name and
// resolved server side; optional numeric fields stay nil when blank.
func (f *sessionForm) input() (client.CreateSessionInput, error) {
	var in client.CreateSessionInput

	in.SurfSpot = strings.TrimSpace(f.inputs[sessionFieldSpot].Value())
	if in.SurfSpot == "" {
		return in, fmt.Errorf("spot name is required")
	}
	in.Date = strings.TrimSpace(f.inputs[sessionFieldDate].Value())
	if in.Date == "" {
		return in, fmt.Errorf("date is required")
	}

	var err error
	if in.Duration, err = optionalInt(f.inputs[sessionFieldDuration].Value(), "duration"); err != nil {
		return in, err
	}
	if in.WaveCount, err = optionalInt(f.inputs[sessionFieldWaves].Value(), "waves caught"); err != nil {
		return in, err
	}
	if in.Rating, err = optionalInt(f.inputs[sessionFieldRating].Value(), "rating"); err != nil {
		return in, err
	}
	if in.ConditionsRating, err = optionalInt(f.inputs[sessionFieldConditions].Value(), "conditions rating"); err != nil {
		return in, err
	}
	in.Notes = strings.TrimSpace(f.inputs[sessionFieldNotes].Value())

	return in, nil
}

func optionalInt(raw, field string) (*int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be a whole number", field)
	}
	return &n, nil
}

func (f *sessionForm) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Log Surf Session"))
	b.WriteString("\n\n")

	labels := []string{"Spot", "Date", "Duration", "Waves", "Rating", "Conditions", "Notes"}
	for i, in := range f.inputs {
		b.WriteString(labelStyle.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("tab/enter next field · enter on last field submits · esc cancels"))
	return b.String()
}
