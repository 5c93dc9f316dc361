package prompt

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/modulus-cli/modulus/cli/registry"
)

// Terminal is an interactive selector with menus.
type Terminal struct{}

var selectTemplates = &promptui.SelectTemplates{
	Label:    "{{ . }}",
	Active:   "▸ {{ .Name | cyan }}",
	Inactive: "  {{ .Name }}",
	Selected: "Template: {{ .Name | green }}",
	Details:  `{{ if .Description }}{{ .Description | faint }}{{ end }}`,
}

// SelectTemplate shows a menu in terminal to choose a template.
func (Terminal) SelectTemplate(templates []registry.Template) (registry.Template, error) {
	templateSelect := promptui.Select{
		Label:     "Template",
		Items:     templates,
		Templates: selectTemplates,
		Size:      10,
	}
	pos, _, err := templateSelect.Run()
	if err != nil {
		return registry.Template{}, canceled(err)
	}
	return templates[pos], nil
}

// Destination asks for the destination directory.
func (Terminal) Destination(def string) (string, error) {
	destPrompt := promptui.Prompt{
		Label:   "Destination",
		Default: def,
		Validate: func(input string) error {
			if input == "" && def == "" {
				return fmt.Errorf("please enter a value")
			}
			return nil
		},
	}
	dest, err := destPrompt.Run()
	if err != nil {
		return "", canceled(err)
	}
	if dest == "" {
		dest = def
	}
	return dest, nil
}

// Variable asks for the variable value using its prompt text.
func (Terminal) Variable(variable registry.Variable) (string, error) {
	label := variable.Prompt
	if label == "" {
		label = variable.Name
	}
	varPrompt := promptui.Prompt{Label: label}
	value, err := varPrompt.Run()
	if err != nil {
		return "", canceled(err)
	}
	return value, nil
}
