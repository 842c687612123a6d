package invite

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitalcpa/invitebot/app/flow"
)

func testTemplate(w, h int) image.Image {
	tpl := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(tpl.Pix); i += 4 {
		tpl.Pix[i] = 0x10
		tpl.Pix[i+1] = 0x10
		tpl.Pix[i+2] = 0x30
		tpl.Pix[i+3] = 0xFF
	}
	return tpl
}

func testPhotoPNG(t *testing.T, w, h int, c color.NRGBA) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestComposeProducesOpaqueTemplateSizedPNG(t *testing.T) {
	c, err := NewFromImage(testTemplate(1080, 1920), Options{})
	require.NoError(t, err)

	photo := testPhotoPNG(t, 200, 300, color.NRGBA{R: 0xAA, G: 0x20, B: 0x20, A: 0xFF})
	out, err := c.Compose(photo, flow.Profile{FirstName: "Anna", LastName: "Petrova", Company: "Acme Corp"})
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 1080, img.Bounds().Dx())
	assert.Equal(t, 1920, img.Bounds().Dy())

	// Flattened output must be fully opaque.
	for _, pt := range []image.Point{{0, 0}, {1079, 0}, {540, 960}, {1079, 1919}} {
		_, _, _, a := img.At(pt.X, pt.Y).RGBA()
		assert.Equal(t, uint32(0xFFFF), a, "alpha at %v", pt)
	}

	// The avatar area should no longer show the template background.
	pos := image.Pt(1080-rightMargin-frameWidth, 1920-bottomMargin-frameHeight)
	r, _, b, _ := img.At(pos.X+frameWidth/2, pos.Y+frameHeight/2).RGBA()
	assert.Greater(t, r, b, "avatar red fill should replace the blue template background")
}

func TestComposeRejectsUndecodableBytes(t *testing.T) {
	c, err := NewFromImage(testTemplate(1080, 1920), Options{})
	require.NoError(t, err)

	_, err = c.Compose([]byte("definitely not an image"), flow.Profile{})
	assert.ErrorIs(t, err, ErrDecode)
}

func TestNewMissingTemplateFile(t *testing.T) {
	_, err := New(Options{TemplateFile: "testdata/does-not-exist.png"})
	assert.ErrorIs(t, err, ErrTemplateMissing)
}

func TestCoverCropAlwaysFillsFrame(t *testing.T) {
	cases := []struct{ w, h int }{
		{100, 100},
		{2000, 500},
		{500, 2000},
		{471, 613},
		{3, 7},
	}
	for _, tc := range cases {
		src := image.NewNRGBA(image.Rect(0, 0, tc.w, tc.h))
		got := coverCrop(src, frameWidth, frameHeight)
		assert.Equal(t, frameWidth, got.Bounds().Dx(), "src %dx%d", tc.w, tc.h)
		assert.Equal(t, frameHeight, got.Bounds().Dy(), "src %dx%d", tc.w, tc.h)
	}
}

func TestRoundedRectMaskCorners(t *testing.T) {
	m := roundedRectMask(100, 100, 40)

	assert.Zero(t, m.AlphaAt(0, 0).A, "corner outside the radius is transparent")
	assert.Zero(t, m.AlphaAt(99, 99).A)
	assert.Equal(t, uint8(0xFF), m.AlphaAt(50, 50).A, "center is opaque")
	assert.Equal(t, uint8(0xFF), m.AlphaAt(50, 0).A, "edge midpoint is opaque")
}

func TestRingMaskIsHollow(t *testing.T) {
	m := ringMask(100, 100, 40, 2)

	assert.Zero(t, m.AlphaAt(50, 50).A, "ring interior is empty")
	assert.NotZero(t, m.AlphaAt(50, 0).A, "stroke present at edge midpoint")
	assert.NotZero(t, m.AlphaAt(0, 50).A)
}

func TestRingMaskBottomRightInset(t *testing.T) {
	m := ringMask(100, 100, 40, 2)

	// The stroke's bounding box stops one pixel short of the bottom-right.
	assert.Zero(t, m.AlphaAt(99, 50).A, "last column stays empty")
	assert.Zero(t, m.AlphaAt(50, 99).A, "last row stays empty")
	assert.NotZero(t, m.AlphaAt(98, 50).A, "stroke sits just inside the right edge")
	assert.NotZero(t, m.AlphaAt(50, 98).A, "stroke sits just inside the bottom edge")
}
