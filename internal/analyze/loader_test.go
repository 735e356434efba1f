package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keys-generator/internal/schema"
)

func TestScanEnums_StringBacked(t *testing.T) {
	df, err := NewAnalyzer().ScanEnums("keys-generator/examples/severity", "Severity")

	require.NoError(t, err)
	require.Len(t, df.Enums, 1)

	enum := df.Enums[0]

	assert.Equal(t, "severity", df.Package)
	assert.Equal(t, "Severity", enum.Name)
	assert.True(t, enum.External)
	assert.True(t, enum.StringBacked)
	assert.Equal(t, "severity_keys.go", enum.Output)
	assert.Equal(t, []schema.ValueDef{
		{Name: "SeverityLow", Key: "low"},
		{Name: "SeverityMedium", Key: "medium"},
		{Name: "SeverityHigh", Key: "high"},
		{Name: "SeverityCritical", Key: "critical"},
	}, enum.Values)
}

func TestScanEnums_IntBackedLineComments(t *testing.T) {
	df, err := NewAnalyzer().ScanEnums("keys-generator/examples/colors", "Color")

	require.NoError(t, err)
	require.Len(t, df.Enums, 1)

	enum := df.Enums[0]

	assert.Equal(t, "colors", df.Package)
	assert.True(t, enum.External)
	assert.False(t, enum.StringBacked)
	assert.Equal(t, []string{"red", "green", "blue"}, enum.Keys())
}

func TestScanEnums_NoTypeNames(t *testing.T) {
	_, err := NewAnalyzer().ScanEnums("keys-generator/examples/colors")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no type names")
}

func TestScanEnums_UnknownType(t *testing.T) {
	_, err := NewAnalyzer().ScanEnums("keys-generator/examples/colors", "Hue")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
