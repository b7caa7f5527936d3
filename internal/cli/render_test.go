package cli

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cndemo/loopview"
)

func TestOutputSize(t *testing.T) {
	t.Parallel()

	v := loopview.New()
	w, h := outputSize(v, 0, 0)
	assert.Equal(t, 160, w)
	assert.Equal(t, 160, h)

	w, h = outputSize(v, 300, 0)
	assert.Equal(t, 300, w)
	assert.Equal(t, 160, h)
}

func TestRenderImage(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 3} {
		v := loopview.New()
		v.SetShowInnerCircle(true)

		img, err := renderImage(v, renderFlags{supersample: n})
		require.NoError(t, err)
		assert.Equal(t, 160, img.Bounds().Dx(), "supersample %d", n)
		assert.Equal(t, 160, img.Bounds().Dy(), "supersample %d", n)

		p := color.NRGBAModel.Convert(img.At(80, 80)).(color.NRGBA)
		assert.Equal(t, uint8(255), p.A, "supersample %d", n)
		assert.Greater(t, p.G, uint8(240), "supersample %d", n)
		assert.Less(t, p.R, uint8(16), "supersample %d", n)
	}
}

func TestRenderImage_InvalidSupersample(t *testing.T) {
	t.Parallel()

	_, err := renderImage(loopview.New(), renderFlags{supersample: 0})
	assert.Error(t, err)
}

func TestRenderImage_EmptyView(t *testing.T) {
	t.Parallel()

	v := loopview.New()
	v.SetRadiusAndWidth(0, 0)
	_, err := renderImage(v, renderFlags{supersample: 1})
	assert.ErrorIs(t, err, loopview.ErrInvalidSize)
}

func TestScaledView(t *testing.T) {
	t.Parallel()

	v := loopview.New(loopview.WithPadding(loopview.Padding{Left: 1, Top: 2, Right: 3, Bottom: 4}))
	v.SetAngle(123)
	big := scaledView(v, 2)

	assert.Equal(t, 120, big.InnerRadius())
	assert.Equal(t, 40, big.OuterWidth())
	assert.Equal(t, 123, big.Angle())
	assert.Equal(t, loopview.Padding{Left: 2, Top: 4, Right: 6, Bottom: 8}, big.Padding())
}

func TestWriteRecording(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, writeRecording(&buf, loopview.New(), renderFlags{}))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "# 160x160\n"))
	assert.Contains(t, out, "  0 Save\n")
	assert.Contains(t, out, "StrokePath")
	assert.NotContains(t, out, "FillPath")
}

func TestRenderCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "loop.png")
	var stderr bytes.Buffer
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs([]string{"render", "--angle", "360", "--width", "200", "-o", out})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetErr(nil)
	})

	require.NoError(t, Execute())
	assert.Contains(t, stderr.String(), "200x160")

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 160, img.Bounds().Dy())

	// Full sweep: the lower-left of the ring is painted.
	p := color.NRGBAModel.Convert(img.At(50, 129)).(color.NRGBA)
	assert.Greater(t, p.A, uint8(200))
}
