package steps

import (
	"fmt"

	create_ctx "github.com/modulus-cli/modulus/cli/create/context"
)

// SelectTemplate represents template selection step.
type SelectTemplate struct{}

// Run asks a user to choose a template from the catalog.
func (SelectTemplate) Run(ctx *create_ctx.CreateCtx, templateCtx *TemplateCtx) error {
	if len(ctx.Catalog) == 0 {
		return fmt.Errorf("no templates to select from")
	}

	template, err := ctx.Selector.SelectTemplate(ctx.Catalog.Templates())
	if err != nil {
		return err
	}
	templateCtx.Template = template
	return nil
}
