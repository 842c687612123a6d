// Package invite renders the personalised invitation image: the guest's
// photo is cropped into a rounded frame with an accent ring, composited
// onto the event template, and captioned with the guest's name and company.
package invite

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	_ "image/gif"
	_ "image/jpeg"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	_ "golang.org/x/image/webp"

	"github.com/digitalcpa/invitebot/app/flow"
)

// Layout constants. These are product-specified and must not drift: the
// template artwork is designed around these exact offsets.
const (
	frameWidth  = 471
	frameHeight = 613

	cornerRadius = 40
	ringStroke   = 2

	rightMargin  = 80
	bottomMargin = 377

	nameOffsetY    = 50
	companyOffsetY = 100

	nameFontSize    = 35
	companyFontSize = 30
)

// ringColor is the accent stroke around the photo frame (#FD693C).
var ringColor = color.NRGBA{R: 0xFD, G: 0x69, B: 0x3C, A: 0xFF}

var (
	// ErrTemplateMissing means the template asset could not be loaded.
	ErrTemplateMissing = errors.New("invite: template missing")
	// ErrDecode means the source photo bytes are not a decodable image.
	ErrDecode = errors.New("invite: photo decode failed")
)

// Options configure asset locations for the compositor.
type Options struct {
	TemplateFile    string
	NameFontFile    string
	CompanyFontFile string
}

// Compositor produces invitation images from a fixed template.
// It is safe for concurrent use once constructed.
type Compositor struct {
	template    image.Image
	nameFace    font.Face
	companyFace font.Face
}

// New loads the template and font assets and returns a ready Compositor.
// A missing template is fatal; missing fonts fall back to a bundled face.
func New(opts Options) (*Compositor, error) {
	data, err := os.ReadFile(opts.TemplateFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateMissing, err)
	}
	tpl, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateMissing, err)
	}
	return NewFromImage(tpl, opts)
}

// NewFromImage builds a Compositor around an already decoded template.
func NewFromImage(tpl image.Image, opts Options) (*Compositor, error) {
	if tpl == nil {
		return nil, ErrTemplateMissing
	}
	nameFace, err := loadFace(opts.NameFontFile, nameFontSize, fallbackBoldTTF)
	if err != nil {
		return nil, fmt.Errorf("invite: name font: %w", err)
	}
	companyFace, err := loadFace(opts.CompanyFontFile, companyFontSize, fallbackMediumTTF)
	if err != nil {
		return nil, fmt.Errorf("invite: company font: %w", err)
	}
	return &Compositor{
		template:    tpl,
		nameFace:    nameFace,
		companyFace: companyFace,
	}, nil
}

// Compose renders the final invitation for one guest and returns PNG bytes.
func (c *Compositor) Compose(photo []byte, p flow.Profile) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(photo))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	avatar := coverCrop(src, frameWidth, frameHeight)
	maskAlpha(avatar, roundedRectMask(frameWidth, frameHeight, cornerRadius))

	framed := withRing(avatar)

	tb := c.template.Bounds()
	final := image.NewRGBA(tb)
	xdraw.Draw(final, tb, c.template, tb.Min, xdraw.Src)

	pos := image.Pt(
		tb.Dx()-rightMargin-frameWidth,
		tb.Dy()-bottomMargin-frameHeight,
	)
	fb := framed.Bounds()
	xdraw.Draw(final, fb.Add(pos), framed, fb.Min, xdraw.Over)

	white := image.NewUniform(color.White)
	drawLabel(final, c.nameFace, white, pos.X, pos.Y+frameHeight+nameOffsetY, p.FullName())
	drawLabel(final, c.companyFace, white, pos.X, pos.Y+frameHeight+companyOffsetY, p.Company)

	flattenOpaque(final)

	var buf bytes.Buffer
	if err := png.Encode(&buf, final); err != nil {
		return nil, fmt.Errorf("invite: encode: %w", err)
	}
	return buf.Bytes(), nil
}

// TemplateSize reports the template canvas dimensions.
func (c *Compositor) TemplateSize() (int, int) {
	b := c.template.Bounds()
	return b.Dx(), b.Dy()
}

// coverCrop scales src so it covers tw x th in both dimensions, then
// center-crops to exactly that size.
func coverCrop(src image.Image, tw, th int) *image.NRGBA {
	sb := src.Bounds()
	w, h := sb.Dx(), sb.Dy()

	scale := float64(tw) / float64(w)
	if s := float64(th) / float64(h); s > scale {
		scale = s
	}
	newW := int(float64(w) * scale)
	newH := int(float64(h) * scale)
	// Guard against float truncation under-covering the frame.
	if newW < tw {
		newW = tw
	}
	if newH < th {
		newH = th
	}

	scaled := image.NewNRGBA(image.Rect(0, 0, newW, newH))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), src, sb, xdraw.Src, nil)

	left := (newW - tw) / 2
	top := (newH - th) / 2
	out := image.NewNRGBA(image.Rect(0, 0, tw, th))
	xdraw.Draw(out, out.Bounds(), scaled, image.Pt(left, top), xdraw.Src)
	return out
}

// withRing places the masked avatar on a slightly larger layer with the
// accent ring drawn around it.
func withRing(avatar *image.NRGBA) *image.NRGBA {
	lw := frameWidth + 2*ringStroke
	lh := frameHeight + 2*ringStroke
	layer := image.NewNRGBA(image.Rect(0, 0, lw, lh))

	ring := ringMask(lw, lh, cornerRadius, ringStroke)
	xdraw.DrawMask(layer, layer.Bounds(), image.NewUniform(ringColor), image.Point{}, ring, image.Point{}, xdraw.Over)

	ab := avatar.Bounds()
	xdraw.Draw(layer, ab.Add(image.Pt(ringStroke, ringStroke)), avatar, ab.Min, xdraw.Over)
	return layer
}

// drawLabel renders text with its top edge at y (the face's ascent is added
// to place the baseline).
func drawLabel(dst *image.RGBA, face font.Face, src image.Image, x, y int, text string) {
	if text == "" {
		return
	}
	d := font.Drawer{
		Dst:  dst,
		Src:  src,
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(x),
			Y: fixed.I(y) + face.Metrics().Ascent,
		},
	}
	d.DrawString(text)
}

// maskAlpha multiplies the image's alpha channel by the mask.
func maskAlpha(img *image.NRGBA, mask *image.Alpha) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			ai := img.PixOffset(x, y) + 3
			m := mask.AlphaAt(x, y).A
			img.Pix[ai] = uint8(uint16(img.Pix[ai]) * uint16(m) / 255)
		}
	}
}

// flattenOpaque forces full alpha across the image, mirroring an RGB flatten.
func flattenOpaque(img *image.RGBA) {
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xFF
	}
}
