package configure

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/modulus-cli/modulus/cli/cmdcontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigDir(t *testing.T) {
	xdgDir := t.TempDir()
	t.Setenv(configHomeEnvName, xdgDir)

	configDir, err := GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(xdgDir, "modulus"), configDir)
}

func TestGetCliOpts(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, ConfigName)

	// Missing config is not an error.
	cfg, path, err := GetCliOpts(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "", path)
	assert.Equal(t, GetDefaultCliOpts(), cfg)

	require.NoError(t, os.WriteFile(cfgPath,
		[]byte("templates_dir: ./templates\ndestination: ./out\n"), 0644))
	cfg, path, err = GetCliOpts(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, cfgPath, path)
	assert.Equal(t, filepath.Join(tmpDir, "templates"), cfg.TemplatesDir)
	assert.Equal(t, "./out", cfg.Destination)

	require.NoError(t, os.WriteFile(cfgPath, []byte("templates_dir: /abs/templates\n"), 0644))
	cfg, _, err = GetCliOpts(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "/abs/templates", cfg.TemplatesDir)
	assert.Equal(t, ".", cfg.Destination)
}

func TestGetCliOptsErrors(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, ConfigName)

	require.NoError(t, os.WriteFile(cfgPath, []byte("unknown_key: 1\n"), 0644))
	_, _, err := GetCliOpts(cfgPath)
	assert.ErrorContains(t, err, "failed to parse modulus configuration")

	require.NoError(t, os.WriteFile(cfgPath, []byte("templates_dir: [\n"), 0644))
	_, _, err = GetCliOpts(cfgPath)
	assert.ErrorContains(t, err, "failed to parse modulus configuration")

	_, _, err = GetCliOpts(filepath.Join(tmpDir, "modulus.json"))
	assert.ErrorContains(t, err, "failed to get access to configuration file")
}

func TestGetTemplatesDir(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), "modulus")
	t.Setenv(TemplatesDirEnvName, "")

	dir, err := GetTemplatesDir(configDir, GetDefaultCliOpts())
	require.NoError(t, err)
	assert.Equal(t, configDir, dir)
	assert.DirExists(t, configDir)

	fromCfg := filepath.Join(t.TempDir(), "from_cfg")
	cliOpts := GetDefaultCliOpts()
	cliOpts.TemplatesDir = fromCfg
	dir, err = GetTemplatesDir(configDir, cliOpts)
	require.NoError(t, err)
	assert.Equal(t, fromCfg, dir)

	fromEnv := filepath.Join(t.TempDir(), "from_env")
	t.Setenv(TemplatesDirEnvName, fromEnv)
	dir, err = GetTemplatesDir(configDir, cliOpts)
	require.NoError(t, err)
	assert.Equal(t, fromEnv, dir)
	assert.DirExists(t, fromEnv)
}

func TestGetTemplatesDirIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte{}, 0644))
	t.Setenv(TemplatesDirEnvName, file)

	_, err := GetTemplatesDir(t.TempDir(), nil)
	assert.ErrorContains(t, err, "could not create templates directory")
}

func TestCli(t *testing.T) {
	xdgDir := t.TempDir()
	t.Setenv(configHomeEnvName, xdgDir)
	t.Setenv(TemplatesDirEnvName, "")

	var cmdCtx cmdcontext.CmdCtx
	cliOpts, err := Cli(&cmdCtx)
	require.NoError(t, err)
	assert.Equal(t, ".", cliOpts.Destination)
	assert.Equal(t, filepath.Join(xdgDir, "modulus"), cmdCtx.Cli.TemplatesDir)
	assert.Equal(t, "", cmdCtx.Cli.ConfigPath)

	cmdCtx = cmdcontext.CmdCtx{}
	cmdCtx.Cli.ConfigPath = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = Cli(&cmdCtx)
	assert.ErrorContains(t, err, "specified path to the configuration file is invalid")
}

func TestCliVerbose(t *testing.T) {
	t.Setenv(configHomeEnvName, t.TempDir())
	store := t.TempDir()
	t.Setenv(TemplatesDirEnvName, store)

	handler := memory.New()
	log.SetHandler(handler)
	t.Cleanup(func() { log.SetLevel(log.InfoLevel) })

	cmdCtx := cmdcontext.CmdCtx{CommandName: "list"}
	cmdCtx.Cli.Verbose = true
	_, err := Cli(&cmdCtx)
	require.NoError(t, err)

	messages := []string{}
	for _, entry := range handler.Entries {
		messages = append(messages, entry.Message)
	}
	assert.Contains(t, messages, `Configuring modulus for "list" command`)
	assert.Contains(t, messages, "Templates directory: "+store)
}
