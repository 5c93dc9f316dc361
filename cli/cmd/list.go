package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/modulus-cli/modulus/cli/cmdcontext"
	"github.com/modulus-cli/modulus/cli/registry"
	"github.com/modulus-cli/modulus/cli/substitute"
	"github.com/modulus-cli/modulus/cli/util"
	"github.com/spf13/cobra"
)

// NewListCmd creates a new list command.
func NewListCmd() *cobra.Command {
	var listCmd = &cobra.Command{
		Use:   "list",
		Short: "List templates of the template store",
		Run: func(cmd *cobra.Command, args []string) {
			err := internalListModule(&cmdCtx, args)
			util.HandleCmdErr(cmd, err)
		},
		Args: cobra.NoArgs,
	}

	return listCmd
}

// internalListModule is a default list module function.
func internalListModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	catalog, err := registry.Discover(cmdCtx.Cli.TemplatesDir)
	if err != nil {
		return err
	}
	if len(catalog) == 0 {
		log.Infof("No templates loaded! Insert templates into %s", cmdCtx.Cli.TemplatesDir)
		return nil
	}

	printCatalog(os.Stdout, catalog)
	return nil
}

// printCatalog prints templates table.
func printCatalog(writer io.Writer, catalog registry.Catalog) {
	t := table.NewWriter()
	t.SetOutputMirror(writer)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"NAME", "DIRECTORY", "VARIABLES", "DESCRIPTION"})

	for _, template := range catalog.Templates() {
		tokens := make([]string, 0, len(template.Variables))
		for _, variable := range template.Variables {
			tokens = append(tokens, substitute.Token(variable.Name))
		}
		t.AppendRow(table.Row{
			template.Name,
			template.ID,
			strings.Join(tokens, " "),
			template.Description,
		})
	}
	t.Render()
	fmt.Fprintf(writer, "%d template(s)\n", len(catalog))
}
