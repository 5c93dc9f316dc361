package config

// CliOpts stores modulus options.
// Filled in when parsing the modulus.yaml configuration file.
//
// modulus.yaml file format:
//
//	templates_dir: path
//	destination: path
type CliOpts struct {
	// TemplatesDir is a template store directory. Every subdirectory
	// with a descriptor is a template.
	TemplatesDir string `mapstructure:"templates_dir" yaml:"templates_dir"`
	// Destination is a default destination directory offered to a user.
	Destination string `mapstructure:"destination" yaml:"destination"`
}
