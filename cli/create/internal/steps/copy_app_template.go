package steps

import (
	"github.com/apex/log"
	create_ctx "github.com/modulus-cli/modulus/cli/create/context"
	"github.com/modulus-cli/modulus/cli/materialize"
)

// CopyAppTemplate represents template copy step.
type CopyAppTemplate struct{}

// Run copies the template tree to the destination directory.
func (CopyAppTemplate) Run(ctx *create_ctx.CreateCtx, templateCtx *TemplateCtx) error {
	log.Infof("Using template from %s", templateCtx.Template.Path)
	return materialize.CopyDirectory(templateCtx.Template.Path, templateCtx.Destination)
}
