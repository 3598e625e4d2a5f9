package avatar

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Minimal PNG header; enough for content-based MIME detection.
var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}

func TestEncode_Image(t *testing.T) {
	t.Parallel()

	uri, err := Encode(pngHeader)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))
}

func TestEncode_RejectsNonImage(t *testing.T) {
	t.Parallel()

	_, err := Encode([]byte("just some text, definitely not pixels"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an image")
}

func TestDataURI(t *testing.T) {
	t.Parallel()

	t.Run("reads and converts a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "avatar.png")
		require.NoError(t, os.WriteFile(path, pngHeader, 0o600))

		uri, err := DataURI(path)
		require.NoError(t, err)
		assert.Contains(t, uri, ";base64,")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := DataURI(filepath.Join(t.TempDir(), "nope.png"))
		assert.Error(t, err)
	})
}
