package cmd

import (
	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/modulus-cli/modulus/cli/cmdcontext"
	"github.com/modulus-cli/modulus/cli/config"
	"github.com/modulus-cli/modulus/cli/configure"
	"github.com/modulus-cli/modulus/cli/util"
	"github.com/spf13/cobra"
)

var (
	cmdCtx  cmdcontext.CmdCtx
	cliOpts *config.CliOpts
	rootCmd *cobra.Command
)

// configureCli resolves modulus options and the template store directory.
func configureCli(cmd *cobra.Command, args []string) error {
	var err error
	cmdCtx.CommandName = cmd.Name()
	cliOpts, err = configure.Cli(&cmdCtx)
	return err
}

// NewCmdRoot creates a new root command.
func NewCmdRoot() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "modulus",
		Short: "Project scaffolding from local templates",
		Long: `Create a project from a template of the local template store.

Every subdirectory of the template store with a <dir>.meta.toml descriptor
is a template. The chosen template is copied to the destination directory
and every <variable> placeholder is replaced with the value entered by user.
The store location may be overridden with the ` + configure.TemplatesDirEnvName +
			` environment variable.`,
		Example: `$ modulus
  $ MODULUS_CONFIG_DIR=./templates modulus
  $ modulus list`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: configureCli,
		Run: func(cmd *cobra.Command, args []string) {
			err := internalCreateModule(&cmdCtx, args)
			util.HandleCmdErr(cmd, err)
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&cmdCtx.Cli.ConfigPath, "cfg", "c",
		"", "Path to configuration file")
	rootCmd.PersistentFlags().BoolVarP(&cmdCtx.Cli.Verbose, "verbose", "V",
		false, "Verbose output")

	rootCmd.AddCommand(
		NewListCmd(),
		NewVersionCmd(),
	)
	rootCmd.InitDefaultHelpCmd()

	log.SetHandler(cli.Default)

	return rootCmd
}

// Execute root command.
func Execute() {
	if rootCmd == nil {
		rootCmd = NewCmdRoot()
	}
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf(err.Error())
	}
}
