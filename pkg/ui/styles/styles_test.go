// pkg/ui/styles/styles_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Embedded style registry loading and lookup

package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStylesLoad(t *testing.T) {
	require.NotEmpty(t, StyleRegistry, "init should populate the registry")

	for _, name := range []string{"Move", "Copy", "Delete", "Create", "Link", "Exchange", "Comment"} {
		_, ok := StyleRegistry[name]
		assert.True(t, ok, "missing style %q", name)
	}
}

func TestGetStyleUnknownFallsBack(t *testing.T) {
	// Unknown names return a zero style instead of panicking.
	s := GetStyle("NoSuchStyle")
	assert.Equal(t, "plain", s.Render("plain"))
}

func TestLoadStylesRejectsBadYAML(t *testing.T) {
	err := LoadStyles([]byte("styles: ["))
	require.Error(t, err)

	// Restore the registry for other tests.
	require.NoError(t, LoadStyles(defaultStyles))
}
