package attrs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cndemo/loopview"
)

func TestParseYAML(t *testing.T) {
	t.Parallel()

	src := `showInnerCircle: true
innerRadius: 24dp
innerColor: 0xFF0000FF
topColor: "#FF2196F3"
angle: 135
outterWidth: 6
`
	a, err := ParseYAML(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, loopview.Attributes{
		"showInnerCircle": "true",
		"innerRadius":     "24dp",
		"innerColor":      "0xFF0000FF",
		"topColor":        "#FF2196F3",
		"angle":           "135",
		"outterWidth":     "6",
	}, a)
}

func TestParseYAML_Empty(t *testing.T) {
	t.Parallel()

	a, err := ParseYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, a)
}

func TestParseYAML_NotFlat(t *testing.T) {
	t.Parallel()

	_, err := ParseYAML(strings.NewReader("angle:\n  value: 10\n"))
	require.ErrorIs(t, err, ErrNotFlat)
	assert.Contains(t, err.Error(), "angle")
}

func TestParseYAML_NotMapping(t *testing.T) {
	t.Parallel()

	_, err := ParseYAML(strings.NewReader("- a\n- b\n"))
	assert.Error(t, err)
}

func TestParseXML(t *testing.T) {
	t.Parallel()

	src := `<?xml version="1.0" encoding="utf-8"?>
<!-- ring -->
<LoopView xmlns:app="http://schemas.android.com/apk/res-auto"
    app:showInnerCircle="true"
    app:innerRadius="24dp"
    app:bottomColor="@color/accent"
    angle="45"/>`
	a, err := ParseXML(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, loopview.Attributes{
		"showInnerCircle": "true",
		"innerRadius":     "24dp",
		"bottomColor":     "@color/accent",
		"angle":           "45",
	}, a)
}

func TestParseXML_NoElement(t *testing.T) {
	t.Parallel()

	_, err := ParseXML(strings.NewReader(`<?xml version="1.0"?>`))
	assert.Error(t, err)
}

func TestParseXML_Malformed(t *testing.T) {
	t.Parallel()

	_, err := ParseXML(strings.NewReader(`<LoopView angle="45`))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	yml := filepath.Join(dir, "ring.YML")
	require.NoError(t, os.WriteFile(yml, []byte("angle: 200\n"), 0o644))
	xmlPath := filepath.Join(dir, "ring.xml")
	require.NoError(t, os.WriteFile(xmlPath, []byte(`<LoopView angle="30"/>`), 0o644))

	a, err := Load(yml)
	require.NoError(t, err)
	assert.Equal(t, "200", a["angle"])

	a, err = Load(xmlPath)
	require.NoError(t, err)
	assert.Equal(t, "30", a["angle"])
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "ring.json"))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("angle: [1, 2]\n"), 0o644))
	_, err = Load(bad)
	assert.ErrorIs(t, err, ErrNotFlat)
	assert.Contains(t, err.Error(), bad)
}

func TestLoad_FeedsView(t *testing.T) {
	t.Parallel()

	a, err := ParseYAML(strings.NewReader("angle: 180\nouterWidth: 4dp\n"))
	require.NoError(t, err)

	v, err := loopview.NewWithAttributes(a, loopview.WithDisplayMetrics(loopview.DisplayMetrics{Density: 2}))
	require.NoError(t, err)
	assert.Equal(t, 180, v.Angle())
	assert.Equal(t, 8, v.OuterWidth())
}
