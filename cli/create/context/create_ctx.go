package create_ctx

import (
	"io"

	"github.com/modulus-cli/modulus/cli/prompt"
	"github.com/modulus-cli/modulus/cli/registry"
)

// CreateCtx contains information for creating projects from templates.
type CreateCtx struct {
	// TemplatesDir is a template store directory.
	TemplatesDir string
	// Catalog is a set of discovered templates.
	Catalog registry.Catalog
	// DefaultDestination is a destination directory offered to a user.
	DefaultDestination string
	// Selector is used to get user choices.
	Selector prompt.Selector
	// Writer is used to print the result summary.
	Writer io.Writer
}
