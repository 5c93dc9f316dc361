// Package registry discovers templates in a template store directory.
package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/apex/log"
)

// Catalog is a set of templates keyed by display name.
type Catalog map[string]Template

// Names returns sorted template names.
func (catalog Catalog) Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Templates returns templates sorted by name.
func (catalog Catalog) Templates() []Template {
	templates := make([]Template, 0, len(catalog))
	for _, name := range catalog.Names() {
		templates = append(templates, catalog[name])
	}
	return templates
}

// Discover scans immediate subdirectories of root and loads every template
// which has a descriptor. Subdirectories without a descriptor are skipped.
// Descriptor parse errors are returned.
func Discover(root string) (Catalog, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read templates directory %q: %w", root, err)
	}

	catalog := make(Catalog)
	for _, entry := range entries {
		dir := filepath.Join(root, entry.Name())
		if !entry.IsDir() {
			// Symlinked template directories are allowed.
			if entry.Type()&os.ModeSymlink == 0 {
				continue
			}
			if stat, err := os.Stat(dir); err != nil || !stat.IsDir() {
				continue
			}
		}

		present, err := isDescriptorPresent(dir)
		if err != nil {
			log.Warnf("Skipping template at %s: %s", dir, err)
			continue
		}
		if !present {
			log.Warnf("No descriptor %s found for template at %s",
				DescriptorName(entry.Name()), dir)
			continue
		}

		template, err := LoadTemplate(dir)
		if err != nil {
			return nil, err
		}
		if prev, found := catalog[template.Name]; found {
			log.Warnf("Template %q from %s overrides the one from %s",
				template.Name, dir, prev.Path)
		}
		log.Debugf("Found template %q at %s", template.Name, dir)
		catalog[template.Name] = template
	}

	return catalog, nil
}
