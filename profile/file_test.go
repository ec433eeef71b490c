package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/eglconfig"
)

const profilesTOML = `
[[profile]]
name = "es3-window-msaa4"
renderable_type = "ES3"
surface_type = "WINDOW"
attribs = [
    ["RED_SIZE", 8],
    ["GREEN_SIZE", 8],
    ["BLUE_SIZE", 8],
    ["EGL_SAMPLE_BUFFERS", 1],
    ["samples", 4],
]

[[profile]]
name = "any-rgb565"
attribs = [["RED_SIZE", 5], ["GREEN_SIZE", 6], ["BLUE_SIZE", "5"]]

[[profile]]
name = "raw-mask"
renderable_type = 64
surface_type = "WINDOW|PBUFFER"
`

func TestParse(t *testing.T) {
	reqs, err := Parse([]byte(profilesTOML))
	require.NoError(t, err)
	require.Len(t, reqs, 3)

	msaa := reqs[0]
	assert.Equal(t, "es3-window-msaa4", msaa.Name)
	assert.Equal(t, eglconfig.OpenGLES3Bit, msaa.RenderableType)
	assert.Equal(t, eglconfig.WindowBit, msaa.SurfaceType)
	assert.Equal(t, []eglconfig.Pair{
		{Attrib: eglconfig.RedSize, Value: 8},
		{Attrib: eglconfig.GreenSize, Value: 8},
		{Attrib: eglconfig.BlueSize, Value: 8},
		{Attrib: eglconfig.SampleBuffers, Value: 1},
		{Attrib: eglconfig.Samples, Value: 4},
	}, msaa.Attribs)

	rgb := reqs[1]
	assert.Zero(t, rgb.RenderableType)
	assert.Zero(t, rgb.SurfaceType)
	assert.Equal(t, int32(5), rgb.Attribs[2].Value)

	raw := reqs[2]
	assert.Equal(t, eglconfig.OpenGLES3Bit, raw.RenderableType)
	assert.Equal(t, eglconfig.WindowBit|eglconfig.PbufferBit, raw.SurfaceType)
	assert.Empty(t, raw.Attribs)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"missing name", "[[profile]]\nrenderable_type = \"ES3\"\n", ErrUnnamed},
		{"short pair", "[[profile]]\nname = \"x\"\nattribs = [[\"RED_SIZE\"]]\n", ErrMalformed},
		{"numeric name", "[[profile]]\nname = \"x\"\nattribs = [[1, 8]]\n", ErrMalformed},
		{"unknown attribute", "[[profile]]\nname = \"x\"\nattribs = [[\"HUE\", 8]]\n", eglconfig.ErrUnknownAttrib},
		{"bad mask", "[[profile]]\nname = \"x\"\nsurface_type = \"SCREEN\"\n", eglconfig.ErrInvalidValue},
		{"duplicate", "[[profile]]\nname = \"x\"\nattribs = [[\"RED_SIZE\", 8], [\"RED_SIZE\", 5]]\n", eglconfig.ErrInvalidRequirements},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegistryLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.toml")
	require.NoError(t, os.WriteFile(path, []byte(profilesTOML), 0o644))

	r := NewRegistry()
	names, err := r.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"es3-window-msaa4", "any-rgb565", "raw-mask"}, names)
	assert.Equal(t, []string{"any-rgb565", "es3-window-msaa4", "raw-mask"}, r.List())
}

func TestRegistryLoadFileMissing(t *testing.T) {
	_, err := NewRegistry().LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadDefault(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	assert.Equal(t, filepath.Join(dir, "eglselect", "profiles.toml"), DefaultPath())

	// No file: built-ins only, no error.
	names, err := LoadDefault()
	require.NoError(t, err)
	assert.Empty(t, names)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "eglselect"), 0o755))
	require.NoError(t, os.WriteFile(DefaultPath(), []byte(profilesTOML), 0o644))
	t.Cleanup(func() {
		for _, n := range []string{"es3-window-msaa4", "any-rgb565", "raw-mask"} {
			Unregister(n)
		}
	})

	names, err = LoadDefault()
	require.NoError(t, err)
	assert.Len(t, names, 3)

	_, ok := Get("es3-window-msaa4")
	assert.True(t, ok)
}
