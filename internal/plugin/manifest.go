package plugin

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/OctaEDLP00/cli-builder-core/internal/clierr"
	"github.com/OctaEDLP00/cli-builder-core/internal/template"
)

// ManifestFile is the declarative plugin descriptor expected in a plugin
// directory.
const ManifestFile = "plugin.yaml"

//go:embed schema/plugin.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// Manifest is the declarative half of a plugin: metadata plus template
// contributions with literal file content. Hooks and validators are code
// and can only come from in-process registrations, not from a manifest.
type Manifest struct {
	Name        string             `yaml:"name" json:"name"`
	Version     string             `yaml:"version" json:"version"`
	Description string             `yaml:"description,omitempty" json:"description,omitempty"`
	Themes      map[string]string  `yaml:"themes,omitempty" json:"themes,omitempty"`
	Templates   []TemplateManifest `yaml:"templates,omitempty" json:"templates,omitempty"`
}

// TemplateManifest is a template contributed by a manifest.
type TemplateManifest struct {
	Name         string            `yaml:"name" json:"name"`
	Description  string            `yaml:"description,omitempty" json:"description,omitempty"`
	Files        []FileManifest    `yaml:"files" json:"files"`
	Scripts      map[string]string `yaml:"scripts,omitempty" json:"scripts,omitempty"`
	Dependencies DependencyBlock   `yaml:"dependencies,omitempty" json:"dependencies,omitempty"`
}

// FileManifest is one literal file of a manifest template.
type FileManifest struct {
	Path    string `yaml:"path" json:"path"`
	Content string `yaml:"content" json:"content"`
}

// DependencyBlock mirrors the three manifest dependency maps.
type DependencyBlock struct {
	Runtime map[string]string `yaml:"runtime,omitempty" json:"runtime,omitempty"`
	Dev     map[string]string `yaml:"dev,omitempty" json:"dev,omitempty"`
	Peer    map[string]string `yaml:"peer,omitempty" json:"peer,omitempty"`
}

// getSchema compiles the embedded JSON schema once and returns it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("plugin.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("plugin.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// LoadManifest reads and schema-validates the plugin.yaml inside dir.
func LoadManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, ManifestFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, clierr.Wrap(clierr.KindPlugin,
			fmt.Sprintf("reading plugin manifest at %s", path), err,
			clierr.Context{Operation: "loadManifest", FilePath: path})
	}
	return ParseManifest(data, path)
}

// ParseManifest validates raw YAML bytes against the plugin schema and
// unmarshals them. The path parameter is only used in error messages.
func ParseManifest(data []byte, path string) (*Manifest, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("loading plugin schema: %w", err)
	}

	// Unmarshal YAML to a generic structure, convert to JSON, and re-read
	// with json.Number support for the schema validator.
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, clierr.Wrap(clierr.KindPlugin, "parsing plugin manifest YAML", err,
			clierr.Context{Operation: "loadManifest", FilePath: path})
	}

	jsonData, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("converting manifest to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("preparing manifest for validation: %w", err)
	}

	if err := schema.Validate(inst); err != nil {
		ve, ok := err.(*jsonschema.ValidationError)
		if !ok {
			return nil, fmt.Errorf("unexpected validation error type: %w", err)
		}
		return nil, clierr.New(clierr.KindPlugin,
			fmt.Sprintf("invalid plugin manifest at %s:\n%s", path, formatIssues(ve)),
			clierr.Context{Operation: "loadManifest", FilePath: path})
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, clierr.Wrap(clierr.KindPlugin, "decoding plugin manifest", err,
			clierr.Context{Operation: "loadManifest", FilePath: path})
	}
	return &m, nil
}

// Definition converts the manifest into an installable plugin definition.
func (m *Manifest) Definition() *Definition {
	def := &Definition{
		Name:        m.Name,
		Version:     m.Version,
		Description: m.Description,
		Themes:      m.Themes,
	}

	for _, tm := range m.Templates {
		t := &template.Definition{
			Name:        tm.Name,
			Description: tm.Description,
			Scripts:     tm.Scripts,
			Dependencies: template.Dependencies{
				Runtime: tm.Dependencies.Runtime,
				Dev:     tm.Dependencies.Dev,
				Peer:    tm.Dependencies.Peer,
			},
		}
		for _, f := range tm.Files {
			t.Files = append(t.Files, template.FileSpec{Path: f.Path, Content: f.Content})
		}
		def.Templates = append(def.Templates, t)
	}

	return def
}

// formatIssues walks the validation error tree and renders the leaf issues,
// one per line.
func formatIssues(ve *jsonschema.ValidationError) string {
	var lines []string
	collectIssues(ve, &lines)
	if len(lines) == 0 {
		return ve.Error()
	}
	return strings.Join(lines, "\n")
}

func collectIssues(ve *jsonschema.ValidationError, lines *[]string) {
	if len(ve.Causes) == 0 {
		loc := "/" + strings.Join(ve.InstanceLocation, "/")
		*lines = append(*lines, fmt.Sprintf("  %s: %s", loc, ve.ErrorKind.LocalizedString(printer)))
		return
	}
	for _, cause := range ve.Causes {
		collectIssues(cause, lines)
	}
}
