package steps

import (
	"fmt"

	"github.com/fatih/color"
	create_ctx "github.com/modulus-cli/modulus/cli/create/context"
	"github.com/modulus-cli/modulus/cli/util"
)

// PrintFollowUpMessage represents result summary step.
type PrintFollowUpMessage struct{}

// Run prints the created project location.
func (PrintFollowUpMessage) Run(ctx *create_ctx.CreateCtx, templateCtx *TemplateCtx) error {
	if ctx.Writer == nil {
		return nil
	}

	_, err := fmt.Fprintf(ctx.Writer, "%s template %s is instantiated in %s\n",
		color.GreenString("Done:"), util.Bold(templateCtx.Template.Name),
		templateCtx.Destination)
	return err
}
