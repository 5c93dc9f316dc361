package steps

import (
	"github.com/modulus-cli/modulus/cli/registry"
	"github.com/modulus-cli/modulus/cli/substitute"
)

// TemplateCtx contains an information required for template instantiation.
type TemplateCtx struct {
	// Template is a selected template.
	Template registry.Template
	// Destination is a directory the template is instantiated in.
	Destination string
	// Binding is a set of variable values collected from a user.
	Binding substitute.Binding
}

// NewTemplateContext creates new template context.
func NewTemplateContext() TemplateCtx {
	return TemplateCtx{}
}
