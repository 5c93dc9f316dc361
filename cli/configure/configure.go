package configure

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/mitchellh/mapstructure"
	"github.com/modulus-cli/modulus/cli/cmdcontext"
	"github.com/modulus-cli/modulus/cli/config"
	"github.com/modulus-cli/modulus/cli/util"
)

const (
	// ConfigName is a modulus options file name.
	ConfigName = "modulus.yaml"
	// appDirName is an application directory name inside the user config directory.
	appDirName = "modulus"
	// TemplatesDirEnvName is an environment variable that overrides template
	// store directory.
	TemplatesDirEnvName = "MODULUS_CONFIG_DIR"

	configHomeEnvName = "XDG_CONFIG_HOME"

	// defaultDestination is offered to a user if the options file has no
	// destination.
	defaultDestination    = "."
	defaultDirPermissions = os.FileMode(0755)
)

// GetDefaultCliOpts returns default modulus options.
func GetDefaultCliOpts() *config.CliOpts {
	return &config.CliOpts{
		Destination: defaultDestination,
	}
}

// GetConfigDir returns per-user modulus configuration directory:
// $XDG_CONFIG_HOME/modulus if $XDG_CONFIG_HOME is set, platform user
// configuration directory + /modulus otherwise.
// See: https://specifications.freedesktop.org/basedir-spec/basedir-spec-latest.html.
func GetConfigDir() (string, error) {
	if xdgConfigHome := os.Getenv(configHomeEnvName); xdgConfigHome != "" {
		return filepath.Join(xdgConfigHome, appDirName), nil
	}

	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not find a suitable configuration directory: %w", err)
	}
	return filepath.Join(userConfigDir, appDirName), nil
}

func decodeConfig(input map[string]any, cfg *config.CliOpts) error {
	decoderConfig := mapstructure.DecoderConfig{
		Result:      cfg,
		ErrorUnused: true,
	}
	decoder, err := mapstructure.NewDecoder(&decoderConfig)
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

// GetCliOpts returns modulus options from the config file located at
// configurePath. Missing file results in default options and empty path.
func GetCliOpts(configurePath string) (*config.CliOpts, string, error) {
	cfg := GetDefaultCliOpts()

	configPath, err := util.GetYamlFileName(configurePath, true)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, "", nil
		}
		return nil, "", fmt.Errorf("failed to get access to configuration file: %s", err)
	}

	if configPath, err = filepath.Abs(configPath); err != nil {
		return nil, "", fmt.Errorf("cannot determine config file path: %s", err)
	}
	rawConfigOpts, err := util.ParseYAML(configPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to parse modulus configuration: %s", err)
	}
	if err := decodeConfig(rawConfigOpts, cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse modulus configuration: %s", err)
	}

	if cfg.TemplatesDir != "" {
		if cfg.TemplatesDir, err = util.JoinAbspath(filepath.Dir(configPath),
			cfg.TemplatesDir); err != nil {
			return nil, "", err
		}
	}
	if cfg.Destination == "" {
		cfg.Destination = defaultDestination
	}

	return cfg, configPath, nil
}

// GetTemplatesDir returns template store directory. The directory is created
// if missing. Lookup order:
// 1) $MODULUS_CONFIG_DIR;
// 2) templates_dir from the options file;
// 3) the configuration directory.
func GetTemplatesDir(configDir string, cliOpts *config.CliOpts) (string, error) {
	templatesDir := configDir
	if dirFromEnv := os.Getenv(TemplatesDirEnvName); dirFromEnv != "" {
		templatesDir = dirFromEnv
	} else if cliOpts != nil && cliOpts.TemplatesDir != "" {
		templatesDir = cliOpts.TemplatesDir
	}

	if err := util.CreateDirectory(templatesDir, defaultDirPermissions); err != nil {
		return "", fmt.Errorf("could not create templates directory %q: %w", templatesDir, err)
	}
	return templatesDir, nil
}

// Cli performs initial CLI configuration: log level, options file location and
// template store directory.
func Cli(cmdCtx *cmdcontext.CmdCtx) (*config.CliOpts, error) {
	if cmdCtx.Cli.Verbose {
		log.SetLevel(log.DebugLevel)
	}
	log.Debugf("Configuring modulus for %q command", cmdCtx.CommandName)

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, err
	}

	configPath := cmdCtx.Cli.ConfigPath
	explicitConfig := configPath != ""
	if !explicitConfig {
		configPath = filepath.Join(configDir, ConfigName)
	}

	cliOpts, foundPath, err := GetCliOpts(configPath)
	if err != nil {
		return nil, err
	}
	if explicitConfig && foundPath == "" {
		return nil, fmt.Errorf("specified path to the configuration file is invalid: %s",
			configPath)
	}
	cmdCtx.Cli.ConfigPath = foundPath
	if foundPath != "" {
		log.Debugf("Using configuration file %s", foundPath)
	}

	if cmdCtx.Cli.TemplatesDir, err = GetTemplatesDir(configDir, cliOpts); err != nil {
		return nil, err
	}
	log.Debugf("Templates directory: %s", cmdCtx.Cli.TemplatesDir)

	return cliOpts, nil
}
