package cmd

import (
	"bytes"
	"testing"

	"github.com/modulus-cli/modulus/cli/registry"
	"github.com/stretchr/testify/assert"
)

func TestPrintCatalog(t *testing.T) {
	catalog := registry.Catalog{
		"service": {
			Name:        "service",
			ID:          "svc",
			Description: "HTTP service",
			Variables: []registry.Variable{
				{Name: "Name", Prompt: "Service name"},
				{Name: "port", Prompt: "Port"},
			},
		},
		"cli": {Name: "cli", ID: "cli"},
	}

	var buf bytes.Buffer
	printCatalog(&buf, catalog)
	out := buf.String()

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "svc")
	assert.Contains(t, out, "<name> <port>")
	assert.Contains(t, out, "HTTP service")
	assert.Contains(t, out, "2 template(s)")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("cli")),
		bytes.Index(buf.Bytes(), []byte("service")))
}
