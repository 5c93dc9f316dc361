// Package prompt collects template selection, destination and variable values
// from a user.
package prompt

import (
	"errors"
	"io"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
	"github.com/modulus-cli/modulus/cli/registry"
	"github.com/modulus-cli/modulus/cli/util"
)

// ErrCanceled is returned by a Selector if a user cancels a prompt.
// It is not a failure: nothing has been written yet.
var ErrCanceled = util.ErrCmdAbort

// Selector obtains user choices.
type Selector interface {
	// SelectTemplate returns the template chosen from templates.
	SelectTemplate(templates []registry.Template) (registry.Template, error)
	// Destination returns destination directory path. def is used if the
	// user enters nothing.
	Destination(def string) (string, error)
	// Variable returns a value of the variable.
	Variable(variable registry.Variable) (string, error)
}

// NewSelector returns terminal selector if stdin is a terminal. Line based
// console selector is returned otherwise.
func NewSelector() Selector {
	fd := os.Stdin.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return Terminal{}
	}
	return NewConsole(os.Stdin, os.Stdout)
}

// canceled converts prompt interruption errors to ErrCanceled.
func canceled(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) ||
		errors.Is(err, promptui.ErrAbort) || errors.Is(err, io.EOF) {
		return ErrCanceled
	}
	return err
}
