package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/modulus-cli/modulus/cli/registry"
)

// Console is a line based selector. It is used when stdin is not a terminal,
// so answers can be piped.
type Console struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewConsole creates new console selector.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{reader: bufio.NewReader(in), writer: out}
}

// readLine reads line from console. New-line symbol is trimmed.
// End of input without a pending line is a cancellation.
func (console *Console) readLine() (string, error) {
	input, err := console.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && input != "" {
			return strings.TrimSuffix(input, "\r"), nil
		}
		return "", canceled(err)
	}
	return strings.TrimSuffix(strings.TrimSuffix(input, "\n"), "\r"), nil
}

// SelectTemplate prints numbered templates list and reads template name or number.
func (console *Console) SelectTemplate(templates []registry.Template) (registry.Template,
	error) {
	for i, template := range templates {
		fmt.Fprintf(console.writer, "%d) %s\n", i+1, template.Name)
	}

	for {
		fmt.Fprint(console.writer, "Template: ")
		input, err := console.readLine()
		if err != nil {
			return registry.Template{}, err
		}
		input = strings.TrimSpace(input)

		if num, err := strconv.Atoi(input); err == nil && num >= 1 && num <= len(templates) {
			return templates[num-1], nil
		}
		for _, template := range templates {
			if template.Name == input {
				return template, nil
			}
		}
		fmt.Fprintf(console.writer, "Unknown template %q. Try again.\n", input)
	}
}

// Destination reads the destination directory.
func (console *Console) Destination(def string) (string, error) {
	fmt.Fprintf(console.writer, "Destination (default: %s): ", def)
	input, err := console.readLine()
	if err != nil {
		return "", err
	}
	if input = strings.TrimSpace(input); input == "" {
		return def, nil
	}
	return input, nil
}

// Variable reads the variable value. The value is not trimmed.
func (console *Console) Variable(variable registry.Variable) (string, error) {
	label := variable.Prompt
	if label == "" {
		label = variable.Name
	}
	fmt.Fprintf(console.writer, "%s: ", label)
	return console.readLine()
}
