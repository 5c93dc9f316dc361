package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/apex/log"
)

// DescriptorSuffix is appended to the template identifier to form the
// descriptor file name.
const DescriptorSuffix = ".meta.toml"

// Variable describes a value requested from a user.
type Variable struct {
	// Name is a variable name. Its lower-cased form in angle brackets is the
	// placeholder token.
	Name string
	// Prompt is a text shown to the user when the value is requested.
	Prompt string
}

// Template is a named directory tree plus its descriptor.
type Template struct {
	// Name is a display name, unique in the catalog.
	Name string
	// Description is an optional free-form description.
	Description string
	// ID is the template directory base name.
	ID string
	// Path is the template root directory.
	Path string
	// IgnoredFiles is a set of paths, directory names or glob patterns
	// excluded from token substitution.
	IgnoredFiles map[string]bool
	// Variables are requested from a user in declaration order.
	Variables []Variable
}

// descriptor is the on-disk format of <id>.meta.toml.
type descriptor struct {
	Name         string            `toml:"name"`
	Description  string            `toml:"description"`
	IgnoredFiles []string          `toml:"ignored_files"`
	Variables    map[string]string `toml:"variables"`
}

// DescriptorName returns descriptor file name for the template identifier.
func DescriptorName(id string) string {
	return id + DescriptorSuffix
}

// IgnoredList returns sorted ignored entries.
func (t Template) IgnoredList() []string {
	list := make([]string, 0, len(t.IgnoredFiles))
	for entry := range t.IgnoredFiles {
		list = append(list, entry)
	}
	sort.Strings(list)
	return list
}

// variablesOrder returns variable names in the order they are declared in
// the descriptor.
func variablesOrder(meta toml.MetaData) []string {
	var names []string
	for _, key := range meta.Keys() {
		if len(key) == 2 && key[0] == "variables" {
			names = append(names, key[1])
		}
	}
	return names
}

// LoadTemplate parses the descriptor of the template stored in dir.
func LoadTemplate(dir string) (Template, error) {
	id := filepath.Base(dir)
	descriptorPath := filepath.Join(dir, DescriptorName(id))

	var desc descriptor
	meta, err := toml.DecodeFile(descriptorPath, &desc)
	if err != nil {
		return Template{}, fmt.Errorf("failed to parse template descriptor %q: %w",
			descriptorPath, err)
	}
	if desc.Name == "" {
		return Template{}, fmt.Errorf("invalid template descriptor %q: missing template name",
			descriptorPath)
	}
	for _, key := range meta.Undecoded() {
		log.Warnf("Unknown key %q in template descriptor %s", key.String(), descriptorPath)
	}

	template := Template{
		Name:         desc.Name,
		Description:  desc.Description,
		ID:           id,
		Path:         dir,
		IgnoredFiles: make(map[string]bool, len(desc.IgnoredFiles)+1),
	}
	for _, entry := range desc.IgnoredFiles {
		template.IgnoredFiles[entry] = true
	}
	template.IgnoredFiles[DescriptorName(id)] = true

	for _, name := range variablesOrder(meta) {
		template.Variables = append(template.Variables, Variable{
			Name:   name,
			Prompt: desc.Variables[name],
		})
	}

	return template, nil
}

// isDescriptorPresent checks the template directory contains a descriptor.
func isDescriptorPresent(dir string) (bool, error) {
	stat, err := os.Stat(filepath.Join(dir, DescriptorName(filepath.Base(dir))))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return stat.Mode().IsRegular(), nil
}
