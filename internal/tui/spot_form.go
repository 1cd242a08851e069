package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kainoa/surftrack/pkg/client"
	"github.com/kainoa/surftrack/pkg/models"
)

const (
	spotFieldName = iota
	spotFieldLatitude
	spotFieldLongitude
	spotFieldBreakType
	spotFieldSkill
	spotFieldDescription
	spotFieldCount
)

// spotForm is the controlled input set for logging a new spot. Field values
// live in the inputs themselves; submit parses them in one pass.
type spotForm struct {
	inputs []textinput.Model
	focus  int
}

func newSpotForm() spotForm {
	inputs := make([]textinput.Model, spotFieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 100
		ti.Width = 40
		inputs[i] = ti
	}
	inputs[spotFieldName].Placeholder = "Spot name"
	inputs[spotFieldLatitude].Placeholder = "Latitude (e.g. 34.0375)"
	inputs[spotFieldLongitude].Placeholder = "Longitude (e.g. -118.677)"
	inputs[spotFieldBreakType].Placeholder = "Break type (beach, point, reef...)"
	inputs[spotFieldSkill].Placeholder = "Skill (beginner, intermediate...)"
	inputs[spotFieldDescription].Placeholder = "Description"
	inputs[spotFieldName].Focus()

	return spotForm{inputs: inputs}
}

func (f *spotForm) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.inputs[0].Focus()
}

func (f *spotForm) next() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *spotForm) prev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *spotForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *spotForm) onLastField() bool {
	return f.focus == len(f.inputs)-1
}

// input parses the form into a create request. Coordinates must be numeric;
// break type and skill fall back to defaults when left blank.
func (f *spotForm) input() (client.CreateSpotInput, error) {
	var in client.CreateSpotInput

	in.Name = strings.TrimSpace(f.inputs[spotFieldName].Value())
	if in.Name == "" {
		return in, fmt.Errorf("name is required")
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(f.inputs[spotFieldLatitude].Value()), 64)
	if err != nil {
		return in, fmt.Errorf("latitude must be a number")
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(f.inputs[spotFieldLongitude].Value()), 64)
	if err != nil {
		return in, fmt.Errorf("longitude must be a number")
	}
	in.Latitude = lat
	in.Longitude = lon

	in.BreakType = strings.TrimSpace(f.inputs[spotFieldBreakType].Value())
	if in.BreakType == "" {
		in.BreakType = string(models.BreakBeach)
	}
	in.SkillRequirement = strings.TrimSpace(f.inputs[spotFieldSkill].Value())
	if in.SkillRequirement == "" {
		in.SkillRequirement = string(models.SkillBeginner)
	}
	in.Description = strings.TrimSpace(f.inputs[spotFieldDescription].Value())

	return in, nil
}

func (f *spotForm) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("New Surf Spot"))
	b.WriteString("\n\n")

	labels := []string{"Name", "Latitude", "Longitude", "Break type", "Skill", "Description"}
	for i, in := range f.inputs {
		b.WriteString(labelStyle.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("tab/enter next field · enter on last field submits · esc cancels"))
	return b.String()
}
