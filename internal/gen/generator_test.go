package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keys-generator/internal/schema"
	"keys-generator/options"
)

func colorDef() *schema.DefFile {
	return &schema.DefFile{
		Version: "1",
		Package: "colors",
		Enums: []schema.EnumDef{
			{
				Name:   "Color",
				Output: "color_keys.go",
				Values: []schema.ValueDef{
					{Name: "Red", Key: "red"},
					{Name: "Green", Key: "green"},
					{Name: "Blue", Key: "blue"},
				},
			},
		},
	}
}

func TestGenerator_Generate_Color(t *testing.T) {
	gen := NewGenerator(DefaultGeneratorConfig())

	files, err := gen.Generate(colorDef())
	require.NoError(t, err)
	require.Len(t, files, 1)

	assert.Equal(t, "color_keys.go", files[0].Filename)

	content := string(files[0].Content)
	spew.Dump(files[0].Filename)

	// Header and package
	assert.Contains(t, content, "// Code generated by keygen. DO NOT EDIT.")
	assert.Contains(t, content, "package colors")

	// Type and const block with skip-zero idiom
	assert.Contains(t, content, "type Color int")
	assert.Contains(t, content, "_ Color = iota")
	assert.Contains(t, content, "ColorRed")
	assert.Contains(t, content, "ColorGreen")
	assert.Contains(t, content, "ColorBlue")

	// Contract methods
	assert.Contains(t, content, "func (c Color) Key() string")
	assert.Contains(t, content, "func (c Color) String() string")
	assert.Contains(t, content, "func (c Color) IsValid() bool")
	assert.Contains(t, content, `return "red"`)

	// Optional features (all by default)
	assert.Contains(t, content, "func ParseColor(s string) (Color, bool)")
	assert.Contains(t, content, "func ColorKeys() []string")
	assert.Contains(t, content, "func (c Color) MarshalText() ([]byte, error)")
	assert.Contains(t, content, "func (c *Color) UnmarshalText(text []byte) error")
	assert.Contains(t, content, "keys.UnknownKeyError{Key: string(text), Expected: ColorKeys()}")

	// Runtime import and interface assertion
	assert.Contains(t, content, `"keys-generator/keys"`)
	assert.Contains(t, content, "var _ keys.Keys = ColorRed")

	// Unreachable-variant panic
	assert.Contains(t, content, `panic(fmt.Sprintf("invalid Color: %d", int(c)))`)
}

func TestGenerator_Generate_Deterministic(t *testing.T) {
	gen := NewGenerator(DefaultGeneratorConfig())

	first, err := gen.Generate(colorDef())
	require.NoError(t, err)

	second, err := gen.Generate(colorDef())
	require.NoError(t, err)

	require.Len(t, second, len(first))
	assert.Equal(t, first[0].Filename, second[0].Filename)
	assert.Equal(t, first[0].Content, second[0].Content)
}

func TestGenerator_Generate_FeatureSubset(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.Features = options.FeatureParse

	gen := NewGenerator(cfg)

	files, err := gen.Generate(colorDef())
	require.NoError(t, err)
	require.Len(t, files, 1)

	content := string(files[0].Content)

	assert.Contains(t, content, "func ParseColor(s string) (Color, bool)")
	assert.NotContains(t, content, "MarshalText")
	assert.NotContains(t, content, "UnmarshalText")
	assert.NotContains(t, content, "func ColorKeys")
	assert.NotContains(t, content, "keys-generator/keys")
}

func TestGenerator_Generate_TextImpliesParseAndKeyList(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.Features = options.FeatureText

	gen := NewGenerator(cfg)

	files, err := gen.Generate(colorDef())
	require.NoError(t, err)

	content := string(files[0].Content)

	assert.Contains(t, content, "func ParseColor")
	assert.Contains(t, content, "func ColorKeys")
	assert.Contains(t, content, "func (c *Color) UnmarshalText")
}

func TestGenerator_Generate_External(t *testing.T) {
	df := &schema.DefFile{
		Package: "severity",
		Enums: []schema.EnumDef{
			{
				Name:         "Severity",
				Output:       "severity_keys.go",
				External:     true,
				StringBacked: true,
				Values: []schema.ValueDef{
					{Name: "SeverityLow", Key: "low"},
					{Name: "SeverityHigh", Key: "high"},
				},
			},
		},
	}

	gen := NewGenerator(DefaultGeneratorConfig())

	files, err := gen.Generate(df)
	require.NoError(t, err)

	content := string(files[0].Content)

	// Methods only: the type and consts already exist in source.
	assert.NotContains(t, content, "type Severity int")
	assert.NotContains(t, content, "iota")
	assert.Contains(t, content, "func (s Severity) Key() string")
	assert.Contains(t, content, "case SeverityLow:")
	assert.Contains(t, content, `panic(fmt.Sprintf("invalid Severity: %q", string(s)))`)
}

func TestGenerator_Generate_PackageOverride(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.PackageName = "palette"

	gen := NewGenerator(cfg)

	files, err := gen.Generate(colorDef())
	require.NoError(t, err)
	assert.Contains(t, string(files[0].Content), "package palette")
}

func TestGenerator_Generate_DefaultOutputName(t *testing.T) {
	df := colorDef()
	df.Enums[0].Output = ""
	df.Enums[0].Name = "OrderStatus"
	df.Enums[0].Values = []schema.ValueDef{{Name: "Pending", Key: "pending"}}

	gen := NewGenerator(DefaultGeneratorConfig())

	files, err := gen.Generate(df)
	require.NoError(t, err)
	assert.Equal(t, "order_status_keys.go", files[0].Filename)
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()

	gen := NewGenerator(DefaultGeneratorConfig())
	files, err := gen.Generate(colorDef())
	require.NoError(t, err)

	require.NoError(t, WriteFiles(files, dir))

	written, err := os.ReadFile(filepath.Join(dir, "color_keys.go"))
	require.NoError(t, err)
	assert.Equal(t, files[0].Content, written)
}
