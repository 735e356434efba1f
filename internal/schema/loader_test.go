package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
package: colors
enums:
  - name: Color
    values:
      - name: Red
        key: red
      - name: Green
        key: green
      - name: Blue
        key: blue
`

	df, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, df)

	assert.Equal(t, "1", df.Version)
	assert.Equal(t, "colors", df.Package)
	require.Len(t, df.Enums, 1)

	e := df.Enums[0]
	assert.Equal(t, "Color", e.Name)
	assert.Equal(t, "color_keys.go", e.Output)
	require.Len(t, e.Values, 3)
	assert.Equal(t, ValueDef{Name: "Red", Key: "red"}, e.Values[0])
	assert.Equal(t, []string{"red", "green", "blue"}, e.Keys())
}

func TestParse_Defaults(t *testing.T) {
	yaml := `
package: status
enums:
  - name: OrderStatus
    values:
      - name: Pending
      - name: Shipped
      - name: DeliveredToCustomer
        key: delivered
`

	df, err := Parse([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, "1", df.Version)
	require.Len(t, df.Enums, 1)

	e := df.Enums[0]
	assert.Equal(t, "order_status_keys.go", e.Output)
	assert.Equal(t, []string{"pending", "shipped", "delivered"}, e.Keys())
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("package: [unclosed"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keys.yaml")

	content := `
package: colors
enums:
  - name: Color
    values:
      - name: Red
        key: red
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	df, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "colors", df.Package)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestMarshal_RoundTrip(t *testing.T) {
	df := &DefFile{
		Version: "1",
		Package: "colors",
		Enums: []EnumDef{
			{
				Name:   "Color",
				Output: "color_keys.go",
				Values: []ValueDef{
					{Name: "Red", Key: "red"},
					{Name: "Blue", Key: "blue"},
				},
			},
		},
	}

	data, err := Marshal(df)
	require.NoError(t, err)

	parsed, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, df, parsed)
}

func TestEnumDef_ConstName(t *testing.T) {
	e := EnumDef{Name: "Color"}
	assert.Equal(t, "ColorRed", e.ConstName(ValueDef{Name: "Red"}))
}
