package styles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devboot/nvboot/pkg/ui/output/styles"
)

func TestStyleRegistry(t *testing.T) {
	for _, name := range []string{
		"Header", "Info", "Success", "Error", "Warning", "Command",
		"Muted", "Bold", "FilePath", "TableHeader", "Present", "Missing",
	} {
		t.Run(name, func(t *testing.T) {
			_, exists := styles.StyleRegistry[name]
			assert.True(t, exists, "Style %s should exist in registry", name)
		})
	}
}

func TestStyleAttributes(t *testing.T) {
	assert.True(t, styles.GetStyle("Command").GetUnderline())
	assert.True(t, styles.GetStyle("Info").GetBold())
	assert.True(t, styles.GetStyle("Error").GetBold())
}

func TestGetStyle_Unknown(t *testing.T) {
	style := styles.GetStyle("DoesNotExist")
	assert.False(t, style.GetBold())
	assert.Equal(t, "plain", style.Render("plain"))
}

func TestLoadStylesFromData(t *testing.T) {
	t.Cleanup(func() {
		// restore the embedded definitions for the other tests
		require.NoError(t, styles.LoadStylesFromData(mustEmbedded(t)))
	})

	err := styles.LoadStylesFromData([]byte(`
colors:
  accent: {light: "#000000", dark: "#FFFFFF"}
styles:
  Accent: {bold: true, foreground: accent}
`))
	require.NoError(t, err)
	assert.True(t, styles.GetStyle("Accent").GetBold())
	_, exists := styles.StyleRegistry["Header"]
	assert.False(t, exists)

	assert.Error(t, styles.LoadStylesFromData([]byte("styles: [not, a, map")))
}
