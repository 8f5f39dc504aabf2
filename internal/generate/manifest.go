package generate

import "github.com/OctaEDLP00/cli-builder-core/internal/template"

// ManifestFileName is the manifest document written into every generated
// project.
const ManifestFileName = "package.json"

// manifestVersion is the version every new project starts at.
const manifestVersion = "0.1.0"

// Manifest is the generated project's manifest document. Field order and
// the version/private defaults are part of the output contract.
type Manifest struct {
	Name             string            `json:"name"`
	Version          string            `json:"version"`
	Private          bool              `json:"private"`
	Scripts          map[string]string `json:"scripts"`
	Dependencies     map[string]string `json:"dependencies"`
	DevDependencies  map[string]string `json:"devDependencies"`
	PeerDependencies map[string]string `json:"peerDependencies"`
}

// NewManifest composes the manifest for a project. Every map is non-nil so
// absent sections serialize as {} rather than null.
func NewManifest(projectName string, tpl *template.Definition) *Manifest {
	return &Manifest{
		Name:             projectName,
		Version:          manifestVersion,
		Private:          true,
		Scripts:          orEmpty(tpl.Scripts),
		Dependencies:     orEmpty(tpl.Dependencies.Runtime),
		DevDependencies:  orEmpty(tpl.Dependencies.Dev),
		PeerDependencies: orEmpty(tpl.Dependencies.Peer),
	}
}

func orEmpty(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}
