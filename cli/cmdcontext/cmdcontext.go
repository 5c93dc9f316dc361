package cmdcontext

// CmdCtx is the main structure of the program context.
// Contains within itself other structures of CLI modules.
type CmdCtx struct {
	// Cli - CLI context. Contains flags passed when starting
	// modulus and some other parameters.
	Cli CliCtx
	// CommandName contains name of the command.
	CommandName string
}

// CliCtx - CLI context. Contains flags passed when starting
// modulus and some other parameters.
type CliCtx struct {
	// Path to modulus.yaml config. Empty if the file is not found.
	ConfigPath string
	// TemplatesDir is a resolved template store directory.
	TemplatesDir string
	// Verbose logging flag. Enables debug log output.
	Verbose bool
}
