package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scenekit/scenekit-go/pkg/record"
)

const sceneXML = `<?xml version="1.0" encoding="UTF-8"?>
<scene>
  <camera x="1" y="2" z="3"/>
  <light x="oops" y="1"/>
</scene>
`

func TestRunConvertByExtension(t *testing.T) {
	in := writeFile(t, "scene.xml", sceneXML)
	out := filepath.Join(t.TempDir(), "scene.yaml")

	err := RunConvert(ConvertOptions{Input: in, Output: out}, nil)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	root, err := record.Unmarshal(record.FormatYAML, data)
	require.NoError(t, err)

	assert.Equal(t, "scene", root.Name)
	cam := root.Child("camera")
	require.NotNil(t, cam)
	x, _ := cam.Attr("x")
	assert.Equal(t, "1", x)
	light := root.Child("light")
	require.NotNil(t, light)
	lx, _ := light.Attr("x")
	assert.Equal(t, "oops", lx)
}

func TestRunConvertToStdout(t *testing.T) {
	in := writeFile(t, "scene.xml", sceneXML)
	var buf bytes.Buffer

	err := RunConvert(ConvertOptions{Input: in, To: "json"}, &buf)
	require.NoError(t, err)

	root, err := record.Unmarshal(record.FormatJSON, buf.Bytes())
	require.NoError(t, err)
	assert.Len(t, root.Children, 2)
}

func TestRunConvertCBORRoundTrip(t *testing.T) {
	in := writeFile(t, "scene.xml", sceneXML)
	dir := t.TempDir()
	mid := filepath.Join(dir, "scene.cbor")
	out := filepath.Join(dir, "back.xml")

	require.NoError(t, RunConvert(ConvertOptions{Input: in, Output: mid}, nil))
	require.NoError(t, RunConvert(ConvertOptions{Input: mid, Output: out}, nil))

	orig, err := record.Unmarshal(record.FormatXML, []byte(sceneXML))
	require.NoError(t, err)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	back, err := record.Unmarshal(record.FormatXML, data)
	require.NoError(t, err)
	assert.Equal(t, orig, back)
}

func TestRunConvertUnencodableLeavesNoOutput(t *testing.T) {
	in := writeFile(t, "bad.yaml", "name: my vector\nattrs:\n  x: \"1\"\n")
	out := filepath.Join(t.TempDir(), "bad.xml")

	err := RunConvert(ConvertOptions{Input: in, Output: out}, nil)
	assert.ErrorIs(t, err, record.ErrInvalidElement)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "output file should not exist: %v", statErr)
}

func TestRunConvertErrors(t *testing.T) {
	in := writeFile(t, "scene.xml", sceneXML)
	var buf bytes.Buffer

	t.Run("stdout without format", func(t *testing.T) {
		assert.Error(t, RunConvert(ConvertOptions{Input: in}, &buf))
	})
	t.Run("unknown format", func(t *testing.T) {
		err := RunConvert(ConvertOptions{Input: in, To: "toml"}, &buf)
		assert.ErrorIs(t, err, record.ErrUnknownFormat)
	})
	t.Run("missing input", func(t *testing.T) {
		err := RunConvert(ConvertOptions{Input: filepath.Join(t.TempDir(), "nope.xml"), To: "xml"}, &buf)
		assert.Error(t, err)
	})
	t.Run("wrong input format", func(t *testing.T) {
		err := RunConvert(ConvertOptions{Input: in, From: "cbor", To: "xml"}, &buf)
		assert.Error(t, err)
	})
}
