package steps

import (
	create_ctx "github.com/modulus-cli/modulus/cli/create/context"
)

const defaultDestination = "."

// SelectDestination represents destination directory selection step.
type SelectDestination struct{}

// Run asks a user for the destination directory.
func (SelectDestination) Run(ctx *create_ctx.CreateCtx, templateCtx *TemplateCtx) error {
	def := ctx.DefaultDestination
	if def == "" {
		def = defaultDestination
	}

	destination, err := ctx.Selector.Destination(def)
	if err != nil {
		return err
	}
	templateCtx.Destination = destination
	return nil
}
