package steps

import (
	create_ctx "github.com/modulus-cli/modulus/cli/create/context"
	"github.com/modulus-cli/modulus/cli/substitute"
)

// RenderTemplate represents variables substitution step.
type RenderTemplate struct{}

// Run substitutes variable values in the destination directory.
func (RenderTemplate) Run(ctx *create_ctx.CreateCtx, templateCtx *TemplateCtx) error {
	ignored := substitute.NewIgnoreSet(templateCtx.Template.IgnoredList()...)
	return substitute.Tree(templateCtx.Destination, ignored, templateCtx.Binding)
}
