package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"
	"unicode"

	"keys-generator/internal/common"
	"keys-generator/internal/schema"
	"keys-generator/options"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName overrides the definition file's package when set.
	PackageName string
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// RuntimeImport is the import path of the keys runtime package,
	// referenced by the emitted UnmarshalText error construction.
	RuntimeImport string
	// Features selects which optional method groups are emitted.
	Features options.FeatureEnum
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		OutputDir:     ".",
		RuntimeImport: "keys-generator/keys",
		Features:      options.FeatureAll,
	}
}

// Generator generates Go code from enum definitions.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "color_keys.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate generates one Go file per enum in the definition file.
// The definition is assumed validated (see schema.Validate); generation
// itself performs no validation and is fully deterministic.
func (g *Generator) Generate(df *schema.DefFile) ([]GeneratedFile, error) {
	var files []GeneratedFile

	for i := range df.Enums {
		file, err := g.generateEnum(df, &df.Enums[i])
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", df.Enums[i].Name, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// generateEnum generates the file for a single enum.
func (g *Generator) generateEnum(df *schema.DefFile, e *schema.EnumDef) (*GeneratedFile, error) {
	data := g.buildTemplateData(df, e)

	var buf bytes.Buffer
	if err := keysTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	// Format the generated code
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort: write unformatted code to a sidecar file to aid debugging.
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, data.Filename, buf.Bytes())
		}
		// Return unformatted code for debugging
		return &GeneratedFile{
			Filename: data.Filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Filename: data.Filename,
		Content:  formatted,
	}, nil
}

// templateData holds all data needed for the keys template.
type templateData struct {
	PackageName   string
	Filename      string
	TypeName      string
	Receiver      string
	EmitType      bool
	StringBacked  bool
	Values        []valueData
	EmitParse     bool
	EmitKeyList   bool
	EmitText      bool
	RuntimeImport string
	RuntimeAlias  string
}

// valueData represents a single variant in the template.
type valueData struct {
	ConstName string
	Key       string
}

// buildTemplateData constructs the template data for one enum.
func (g *Generator) buildTemplateData(df *schema.DefFile, e *schema.EnumDef) *templateData {
	pkgName := df.Package
	if g.config.PackageName != "" {
		pkgName = g.config.PackageName
	}

	filename := e.Output
	if filename == "" {
		filename = e.DefaultOutput()
	}

	features := g.config.Features.Normalize()

	data := &templateData{
		PackageName:  pkgName,
		Filename:     filename,
		TypeName:     e.Name,
		Receiver:     receiverName(e.Name),
		EmitType:     !e.External,
		StringBacked: e.StringBacked,
		EmitParse:    features.Has(options.FeatureParse),
		EmitKeyList:  features.Has(options.FeatureKeyList),
		EmitText:     features.Has(options.FeatureText),
	}

	if data.EmitText {
		data.RuntimeImport = g.config.RuntimeImport
		data.RuntimeAlias = common.PkgAlias(g.config.RuntimeImport)
	}

	for _, v := range e.Values {
		data.Values = append(data.Values, valueData{
			ConstName: e.ConstName(v),
			Key:       v.Key,
		})
	}

	return data
}

// receiverName derives a one-letter receiver from the type name.
func receiverName(typeName string) string {
	for _, r := range typeName {
		return string(unicode.ToLower(r))
	}

	return "x"
}

var keysTemplate = template.Must(template.New("keys").Parse(`// Code generated by keygen. DO NOT EDIT.

package {{.PackageName}}

import (
	"fmt"
{{if .EmitText}}
	"{{.RuntimeImport}}"
{{end}})

{{if .EmitType}}
// {{.TypeName}} is a keyed enumeration. Every variant is permanently bound
// to the canonical string in its line comment.
type {{.TypeName}} int

const (
	_ {{.TypeName}} = iota // skip zero value, use it as the invalid default
{{range .Values}}
	{{.ConstName}} // {{.Key}}{{end}}
)
{{end}}
{{if .EmitText}}
var _ {{.RuntimeAlias}}.Keys = {{(index .Values 0).ConstName}}
{{end}}
// Key returns the canonical string of {{.Receiver}}. A value outside the
// declared set is an internal-consistency violation and panics.
func ({{.Receiver}} {{.TypeName}}) Key() string {
	switch {{.Receiver}} {
{{range .Values}}	case {{.ConstName}}:
		return {{printf "%q" .Key}}
{{end}}	}

{{if .StringBacked}}	panic(fmt.Sprintf("invalid {{.TypeName}}: %q", string({{.Receiver}})))
{{else}}	panic(fmt.Sprintf("invalid {{.TypeName}}: %d", int({{.Receiver}})))
{{end}}}

// String returns the canonical string of {{.Receiver}}.
func ({{.Receiver}} {{.TypeName}}) String() string {
	return {{.Receiver}}.Key()
}

// IsValid reports whether {{.Receiver}} is one of the declared variants.
func ({{.Receiver}} {{.TypeName}}) IsValid() bool {
	switch {{.Receiver}} {
{{range .Values}}	case {{.ConstName}}:
		return true
{{end}}	}

	return false
}
{{if .EmitParse}}
// Parse{{.TypeName}} returns the variant whose canonical string equals s.
// An unrecognized string yields the zero value and false, never an error.
func Parse{{.TypeName}}(s string) ({{.TypeName}}, bool) {
	switch s {
{{range .Values}}	case {{printf "%q" .Key}}:
		return {{.ConstName}}, true
{{end}}	}

	var zero {{.TypeName}}

	return zero, false
}
{{end}}{{if .EmitKeyList}}
// {{.TypeName}}Keys returns every canonical string in declared order.
func {{.TypeName}}Keys() []string {
	return []string{
{{range .Values}}		{{printf "%q" .Key}},
{{end}}	}
}
{{end}}{{if .EmitText}}
// MarshalText implements encoding.TextMarshaler.
func ({{.Receiver}} {{.TypeName}}) MarshalText() ([]byte, error) {
	return []byte({{.Receiver}}.Key()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Decoding a string
// outside the canonical set fails with a {{.RuntimeAlias}}.UnknownKeyError
// naming the offending string and listing every accepted key.
func ({{.Receiver}} *{{.TypeName}}) UnmarshalText(text []byte) error {
	val, ok := Parse{{.TypeName}}(string(text))
	if !ok {
		return &{{.RuntimeAlias}}.UnknownKeyError{Key: string(text), Expected: {{.TypeName}}Keys()}
	}

	*{{.Receiver}} = val

	return nil
}
{{end}}`))
