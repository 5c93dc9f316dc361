package steps

import (
	create_ctx "github.com/modulus-cli/modulus/cli/create/context"
	"github.com/modulus-cli/modulus/cli/substitute"
)

// CollectTemplateVarsFromUser represents variables collection step.
type CollectTemplateVarsFromUser struct{}

// Run asks a user for every template variable in declaration order.
func (CollectTemplateVarsFromUser) Run(ctx *create_ctx.CreateCtx,
	templateCtx *TemplateCtx,
) error {
	binding := make(substitute.Binding, 0, len(templateCtx.Template.Variables))
	for _, variable := range templateCtx.Template.Variables {
		value, err := ctx.Selector.Variable(variable)
		if err != nil {
			return err
		}
		binding = append(binding, substitute.Value{Name: variable.Name, Value: value})
	}
	templateCtx.Binding = binding
	return nil
}
