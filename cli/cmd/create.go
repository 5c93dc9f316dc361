package cmd

import (
	"github.com/modulus-cli/modulus/cli/cmdcontext"
	"github.com/modulus-cli/modulus/cli/create"
	create_ctx "github.com/modulus-cli/modulus/cli/create/context"
)

// internalCreateModule is a default create module: an interactive run
// creating a project from a template.
func internalCreateModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	var createCtx create_ctx.CreateCtx
	if err := create.FillCtx(cmdCtx, cliOpts, &createCtx); err != nil {
		return err
	}

	return create.Run(&createCtx)
}
