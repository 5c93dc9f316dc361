package create

import (
	"errors"
	"os"

	"github.com/apex/log"
	"github.com/modulus-cli/modulus/cli/cmdcontext"
	"github.com/modulus-cli/modulus/cli/config"
	create_ctx "github.com/modulus-cli/modulus/cli/create/context"
	"github.com/modulus-cli/modulus/cli/create/internal/steps"
	"github.com/modulus-cli/modulus/cli/prompt"
	"github.com/modulus-cli/modulus/cli/registry"
)

// FillCtx fills create context: discovers templates and sets up user interaction.
func FillCtx(cmdCtx *cmdcontext.CmdCtx, cliOpts *config.CliOpts,
	createCtx *create_ctx.CreateCtx,
) error {
	createCtx.TemplatesDir = cmdCtx.Cli.TemplatesDir
	createCtx.DefaultDestination = cliOpts.Destination

	catalog, err := registry.Discover(createCtx.TemplatesDir)
	if err != nil {
		return err
	}
	createCtx.Catalog = catalog

	if createCtx.Selector == nil {
		createCtx.Selector = prompt.NewSelector()
	}
	if createCtx.Writer == nil {
		createCtx.Writer = os.Stdout
	}

	return nil
}

// Run creates a project from a template. User cancellation at any prompt
// stops the chain before anything is written and is not an error.
// Partially written destination is not removed on failure.
func Run(createCtx *create_ctx.CreateCtx) error {
	if len(createCtx.Catalog) == 0 {
		log.Info("No templates loaded!")
		log.Infof("Insert templates into %s", createCtx.TemplatesDir)
		return nil
	}

	stepsChain := []steps.Step{
		steps.SelectTemplate{},
		steps.SelectDestination{},
		steps.CollectTemplateVarsFromUser{},
		steps.CopyAppTemplate{},
		steps.RenderTemplate{},
		steps.PrintFollowUpMessage{},
	}

	templateCtx := steps.NewTemplateContext()
	for _, step := range stepsChain {
		if err := step.Run(createCtx, &templateCtx); err != nil {
			if errors.Is(err, prompt.ErrCanceled) {
				log.Info("Canceled.")
				return nil
			}
			return err
		}
	}

	return nil
}
