package npm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/apollo-gears/cli/internal/templates"
)

// ManifestFile is the npm package manifest file name.
const ManifestFile = "package.json"

// Scripts are the npm scripts of a new project.
type Scripts struct {
	Dev            string `json:"dev"`
	Build          string `json:"build"`
	Start          string `json:"start"`
	PrismaGenerate string `json:"prisma:generate"`
	PrismaMigrate  string `json:"prisma:migrate"`
}

// Manifest is a package.json document.
type Manifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Description     string            `json:"description,omitempty"`
	Main            string            `json:"main"`
	Scripts         Scripts           `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// DefaultScripts returns the scripts every new project starts with.
func DefaultScripts() Scripts {
	return Scripts{
		Dev:            "ts-node-dev --respawn --transpile-only src/server.ts",
		Build:          "tsc",
		Start:          "node dist/server.js",
		PrismaGenerate: "prisma generate",
		PrismaMigrate:  "prisma migrate dev",
	}
}

// NewManifest builds the manifest of a new project.
func NewManifest(name string, versions *Versions) *Manifest {
	m := &Manifest{
		Name:            name,
		Version:         "1.0.0",
		Main:            "dist/server.js",
		Scripts:         DefaultScripts(),
		Dependencies:    map[string]string{},
		DevDependencies: map[string]string{},
	}
	if versions != nil {
		for k, v := range versions.Dependencies {
			m.Dependencies[k] = v
		}
		for k, v := range versions.DevDependencies {
			m.DevDependencies[k] = v
		}
	}
	return m
}

// Marshal encodes the manifest with two-space indentation. Map keys are
// sorted, so output is deterministic.
func (m *Manifest) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("encoding %s: %w", ManifestFile, err)
	}
	return buf.Bytes(), nil
}

// Write writes package.json through w and returns its reported path.
func (m *Manifest) Write(w *templates.Writer) (string, error) {
	data, err := m.Marshal()
	if err != nil {
		return "", err
	}
	return w.Write(ManifestFile, data)
}
